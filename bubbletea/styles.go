package bubbletea

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/awalczak/mdpad"
)

// Styles maps a theme's chrome palette to lipgloss styles.
type Styles struct {
	EditorPane  lipgloss.Style
	PreviewPane lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style
	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style
	ErrorText   lipgloss.Style
	Muted       lipgloss.Style
}

// NewStyles creates Styles from a Theme.
func NewStyles(t mdpad.Theme) Styles {
	border := lipgloss.Color(t.Chrome.Border)
	focus := lipgloss.Color(t.Chrome.BorderFocus)
	return Styles{
		EditorPane: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(focus),
		PreviewPane: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(border),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Chrome.Foreground)).
			Background(lipgloss.Color(t.Chrome.Background)),
		StatusError: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Chrome.Error)).
			Background(lipgloss.Color(t.Chrome.Background)),
		Dialog: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(focus),
		DialogTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Chrome.Accent)).
			Bold(true),
		ErrorText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Chrome.Error)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Chrome.Muted)).
			Faint(true),
	}
}
