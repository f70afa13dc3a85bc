// Package htmldoc assembles complete styled HTML documents from markdown.
// The document template is fixed: shared rules first, then the active
// theme's syntax and document rules, then the converted fragment in the
// body. Render is a pure function of its inputs.
package htmldoc

import (
	"strings"

	"github.com/awalczak/mdpad"
	"github.com/awalczak/mdpad/goldmark"
)

// sharedCSS applies in both themes: heading weight, link hover, code
// padding, table layout, and horizontal-rule sizing. Colors live in the
// theme stylesheets.
const sharedCSS = `
h1, h2, h3, h4, h5, h6 {
    font-weight: 600; line-height: 1.25; padding-bottom: .3em;
}
a:hover { text-decoration: underline; }
code {
    padding: .2em .4em; margin: 0;
    font-family: "SFMono-Regular", Consolas, "Liberation Mono", Menlo, Courier, monospace;
    font-size: 85%; border-radius: 6px;
}
.chroma { border-radius: 6px; }
blockquote { padding: 0 1em; margin-left: 0; }
body > table {
    border-collapse: collapse; margin: 1rem 0; display: block;
    width: 100%; overflow: auto;
}
hr { border: 0; height: .25em; padding: 0; margin: 24px 0; }
ul, ol { padding-left: 2em; }
`

// Renderer converts markdown into a full, styled HTML document.
type Renderer struct {
	conv *goldmark.Converter
}

// New creates a Renderer. The underlying converter is built once and
// reused for every render.
func New() *Renderer {
	return &Renderer{conv: goldmark.New()}
}

// Render converts markdown and wraps the fragment in the document
// template with theme's stylesheets. Identical inputs produce
// byte-identical output.
func (r *Renderer) Render(markdown string, theme mdpad.Theme) (string, error) {
	fragment, err := r.conv.Convert(markdown)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<style>\n")
	b.WriteString(sharedCSS)
	b.WriteString(theme.SyntaxCSS)
	b.WriteString(theme.DocumentCSS)
	b.WriteString("</style>\n</head>\n<body>\n")
	b.WriteString(fragment)
	b.WriteString("</body>\n</html>\n")
	return b.String(), nil
}
