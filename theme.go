package mdpad

// Highlighter supplies stylesheet rules for fenced code blocks. The rules
// target the class-based spans emitted by the markdown converter, so a
// theme's code styling is a pure CSS concern.
type Highlighter interface {
	// CSS returns the stylesheet for the named highlight style.
	CSS(style string) (string, error)
}

// NopHighlighter is the null Highlighter. Code blocks render unstyled but
// otherwise intact.
type NopHighlighter struct{}

// CSS implements Highlighter. It always returns the empty stylesheet.
func (NopHighlighter) CSS(string) (string, error) { return "", nil }

// Chrome is the terminal color palette for everything that isn't the
// rendered document: pane borders, the status line, dialogs. Values are
// hex colors.
type Chrome struct {
	Background  string
	Foreground  string
	Border      string
	BorderFocus string
	Accent      string
	Muted       string
	Error       string
}

// Theme bundles everything needed to present a document consistently in
// both render targets: CSS for the exported HTML document and a terminal
// palette for the live preview and chrome. Themes are built once at
// startup and never mutated.
type Theme struct {
	Name string
	Dark bool

	// SyntaxCSS styles fenced-code spans in exported HTML. Empty when no
	// highlighter is available.
	SyntaxCSS string

	// DocumentCSS styles the document body in exported HTML.
	DocumentCSS string

	// PreviewStyle is the glamour standard style used by the terminal
	// preview pane.
	PreviewStyle string

	Chrome Chrome
}

// Highlight styles per theme. "github" mirrors the light GitHub palette;
// "monokai" is the conventional dark companion.
const (
	lightHighlightStyle = "github"
	darkHighlightStyle  = "monokai"
)

const lightDocumentCSS = `
body {
    font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", "Noto Sans", Helvetica, Arial, sans-serif;
    line-height: 1.6; background-color: #ffffff; color: #24292e; padding: 10px;
}
h1, h2, h3, h4, h5, h6 { border-bottom: 1px solid #eaecef; color: #24292e; }
a { color: #0366d6; }
code { background-color: rgba(27,31,35,.05); }
blockquote { color: #6a737d; border-left: .25em solid #dfe2e5; }
body > table th, body > table td { border: 1px solid #dfe2e5; }
body > table tr { background-color: #fff; border-top: 1px solid #c6cbd1; }
body > table tr:nth-child(2n) { background-color: #f6f8fa; }
hr { background-color: #e1e4e8; }
`

const darkDocumentCSS = `
body {
    font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", "Noto Sans", Helvetica, Arial, sans-serif;
    line-height: 1.6; background-color: #2b2b2b; color: #f0f0f0; padding: 10px;
}
h1, h2, h3, h4, h5, h6 { border-bottom: 1px solid #444; color: #f0f0f0; }
a { color: #61afef; }
code { background-color: #3c3c3c; }
blockquote { color: #999; border-left: .25em solid #555; }
body > table th, body > table td { border: 1px solid #444; }
body > table tr { background-color: #2b2b2b; border-top: 1px solid #444; }
body > table tr:nth-child(2n) { background-color: #313131; }
hr { background-color: #444; }
`

// BuildThemes constructs the light and dark themes. Called once at
// startup. Highlighter failures degrade to an empty syntax stylesheet
// rather than erroring; a theme is always usable.
func BuildThemes(h Highlighter) (light, dark Theme) {
	lightSyntax, err := h.CSS(lightHighlightStyle)
	if err != nil {
		lightSyntax = ""
	}
	darkSyntax, err := h.CSS(darkHighlightStyle)
	if err != nil {
		darkSyntax = ""
	}

	light = Theme{
		Name:         "light",
		SyntaxCSS:    lightSyntax,
		DocumentCSS:  lightDocumentCSS,
		PreviewStyle: "light",
		Chrome: Chrome{
			Background:  "#f6f8fa",
			Foreground:  "#24292e",
			Border:      "#d1d5da",
			BorderFocus: "#0366d6",
			Accent:      "#0366d6",
			Muted:       "#6a737d",
			Error:       "#cb2431",
		},
	}

	dark = Theme{
		Name:         "dark",
		Dark:         true,
		SyntaxCSS:    darkSyntax,
		DocumentCSS:  darkDocumentCSS,
		PreviewStyle: "dark",
		Chrome: Chrome{
			Background:  "#2b2b2b",
			Foreground:  "#f0f0f0",
			Border:      "#444444",
			BorderFocus: "#61afef",
			Accent:      "#61afef",
			Muted:       "#999999",
			Error:       "#ff6b6b",
		},
	}

	return light, dark
}
