package bubbletea

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// Editor is the editing surface: a multi-line textarea plus an ordered
// list of change listeners. Listeners run synchronously after every
// content mutation, in registration order, keystrokes and programmatic
// SetValue alike. The first render of the preview relies on the
// notification fired when the initial document is seeded.
type Editor struct {
	// Area is the underlying textarea. Exported for test access.
	Area textarea.Model

	listeners []func(string)
	last      string
}

// NewEditor creates a focused editor with no content limits.
func NewEditor() Editor {
	ta := textarea.New()
	ta.Prompt = ""
	ta.Placeholder = ""
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Focus()
	return Editor{Area: ta}
}

// OnChange registers fn to be called with the full buffer contents after
// each mutation.
func (e *Editor) OnChange(fn func(string)) {
	e.listeners = append(e.listeners, fn)
}

// Value returns the buffer contents.
func (e *Editor) Value() string {
	return e.Area.Value()
}

// SetValue replaces the buffer contents and fires the change listeners.
func (e *Editor) SetValue(s string) {
	e.Area.SetValue(s)
	e.notify()
}

// Update forwards msg to the textarea and fires the change listeners if
// the contents changed.
func (e *Editor) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	e.Area, cmd = e.Area.Update(msg)
	if e.Area.Value() != e.last {
		e.notify()
	}
	return cmd
}

func (e *Editor) notify() {
	v := e.Area.Value()
	e.last = v
	for _, fn := range e.listeners {
		fn(v)
	}
}
