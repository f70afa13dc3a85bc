package bubbletea

import "github.com/charmbracelet/bubbles/key"

// KeyMap is the application-level key bindings. Editing keys belong to
// the textarea; these are the menu actions layered on top. The bindings
// deliberately avoid the textarea's emacs-style defaults (alt+d, ctrl+t,
// ctrl+e are taken by word and cursor operations).
type KeyMap struct {
	Open       key.Binding
	Save       key.Binding
	SaveAs     key.Binding
	ExportHTML key.Binding
	DarkMode   key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open:       key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open")),
		Save:       key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		SaveAs:     key.NewBinding(key.WithKeys("alt+s"), key.WithHelp("alt+s", "save as")),
		ExportHTML: key.NewBinding(key.WithKeys("alt+e"), key.WithHelp("alt+e", "export html")),
		DarkMode:   key.NewBinding(key.WithKeys("alt+t"), key.WithHelp("alt+t", "dark mode")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c", "ctrl+q"), key.WithHelp("ctrl+c", "quit")),
	}
}
