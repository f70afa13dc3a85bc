// Package chroma supplies syntax-highlight stylesheets from the chroma
// style registry. It implements mdpad.Highlighter; wiring it in is
// optional; the application falls back to mdpad.NopHighlighter and
// renders code blocks unstyled.
package chroma

import (
	"bytes"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/awalczak/mdpad"
)

var _ mdpad.Highlighter = Highlighter{}

// Highlighter produces CSS for the classed token spans emitted by the
// markdown converter. The rules are scoped to the .chroma class selector.
type Highlighter struct{}

// CSS returns the stylesheet for the named chroma style. Unknown names
// fall back to chroma's default style, so the result is never empty.
func (Highlighter) CSS(style string) (string, error) {
	f := chromahtml.New(chromahtml.WithClasses(true))
	var buf bytes.Buffer
	if err := f.WriteCSS(&buf, styles.Get(style)); err != nil {
		return "", fmt.Errorf("stylesheet for %q: %w", style, err)
	}
	return buf.String(), nil
}
