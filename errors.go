package mdpad

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrNotUTF8 indicates a file could not be opened as UTF-8 text.
	ErrNotUTF8 = errors.New("not valid UTF-8 text")

	// ErrNoDocument indicates an operation that needs a document got none.
	ErrNoDocument = errors.New("no document")
)
