// Package fs reads and writes markdown documents and lists markdown
// files for batch export.
package fs

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/awalczak/mdpad"
)

// ReadDocument reads the file at path as UTF-8 text. Files that are not
// valid UTF-8 are rejected rather than silently mangled.
func ReadDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("read %s: %w", path, mdpad.ErrNotUTF8)
	}
	return string(data), nil
}

// WriteDocument writes content to path as UTF-8 text, replacing any
// existing file.
func WriteDocument(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
