// Package goldmark converts markdown text to HTML fragments using
// goldmark with tables, strikethrough, and classed syntax highlighting
// for fenced code blocks.
package goldmark

import (
	"bytes"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
)

// Converter turns markdown source into an HTML fragment, a snippet
// without surrounding html/body tags. The extension set is fixed at
// construction; a Converter is stateless and safe to reuse for every
// render.
type Converter struct {
	md goldmark.Markdown
}

// New creates a Converter with fenced code blocks, tables, and
// strikethrough enabled. Code spans carry chroma classes rather than
// inline colors, so the active theme's stylesheet decides how they look.
func New() *Converter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			extension.Strikethrough,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
	)
	return &Converter{md: md}
}

// Convert returns the HTML fragment for source. Identical input yields
// identical output.
func (c *Converter) Convert(source string) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}
