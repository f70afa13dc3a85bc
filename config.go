// Package mdpad holds the domain types for a terminal markdown editor
// with a live preview: the immutable startup configuration, the light and
// dark themes, and the capability interface for syntax-highlight CSS.
package mdpad

// Config is the immutable startup configuration. Created once at launch
// and read-only thereafter.
type Config struct {
	// Title is the application name shown in the terminal window title
	// and the status line.
	Title string

	// Extensions accepted by the open dialog's markdown filter.
	Extensions []string
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		Title:      "mdpad",
		Extensions: []string{".md", ".markdown"},
	}
}
