// Package ansi renders markdown to styled terminal output for the live
// preview pane, using glamour with the active theme's standard style.
package ansi

import (
	"fmt"

	"github.com/charmbracelet/glamour"

	"github.com/awalczak/mdpad"
)

// Renderer renders markdown at a fixed wrap width and theme. Width and
// theme are baked in at construction; rebuild the Renderer when the pane
// is resized or the theme toggles.
type Renderer struct {
	tr *glamour.TermRenderer
}

// New creates a Renderer wrapping at width columns. Widths below one
// column are clamped.
func New(width int, theme mdpad.Theme) (*Renderer, error) {
	if width < 1 {
		width = 1
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(theme.PreviewStyle),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("preview renderer: %w", err)
	}
	return &Renderer{tr: tr}, nil
}

// Render returns the styled terminal rendition of source.
func (r *Renderer) Render(source string) (string, error) {
	out, err := r.tr.Render(source)
	if err != nil {
		return "", fmt.Errorf("render preview: %w", err)
	}
	return out, nil
}
