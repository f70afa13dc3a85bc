package goldmark_test

import (
	"strings"
	"testing"

	"github.com/awalczak/mdpad/goldmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	t.Parallel()

	c := goldmark.New()

	t.Run("plain text becomes an escaped paragraph", func(t *testing.T) {
		t.Parallel()
		out, err := c.Convert("a < b & c")
		require.NoError(t, err)
		assert.Contains(t, out, "<p>")
		assert.Contains(t, out, "a &lt; b &amp; c")
		assert.NotContains(t, out, "<table")
		assert.NotContains(t, out, "<pre")
	})

	t.Run("bold emphasis", func(t *testing.T) {
		t.Parallel()
		out, err := c.Convert("**bold**")
		require.NoError(t, err)
		assert.Contains(t, out, "<strong>bold</strong>")
	})

	t.Run("strikethrough", func(t *testing.T) {
		t.Parallel()
		out, err := c.Convert("~~gone~~")
		require.NoError(t, err)
		assert.Contains(t, out, "<del>gone</del>")
	})

	t.Run("table with header and data row", func(t *testing.T) {
		t.Parallel()
		src := "| A | B |\n|---|---|\n| 1 | 2 |\n"
		out, err := c.Convert(src)
		require.NoError(t, err)
		assert.Contains(t, out, "<table>")
		assert.Equal(t, 2, strings.Count(out, "<th>"))
		assert.Equal(t, 2, strings.Count(out, "<td>"))
		assert.Contains(t, out, "<th>A</th>")
		assert.Contains(t, out, "<td>2</td>")
	})

	t.Run("fenced code block carries chroma classes", func(t *testing.T) {
		t.Parallel()
		src := "```go\nfmt.Println(\"hi\")\n```\n"
		out, err := c.Convert(src)
		require.NoError(t, err)
		assert.Contains(t, out, `class="chroma"`)
		assert.Contains(t, out, "Println")
		// Classed output, not inline styles.
		assert.NotContains(t, out, "style=\"color")
	})

	t.Run("no surrounding html or body tags", func(t *testing.T) {
		t.Parallel()
		out, err := c.Convert("# Title")
		require.NoError(t, err)
		assert.NotContains(t, out, "<html")
		assert.NotContains(t, out, "<body")
		assert.Contains(t, out, "<h1>Title</h1>")
	})

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()
		src := "# T\n\n**b** ~~s~~\n\n| A |\n|---|\n| 1 |\n"
		a, err := c.Convert(src)
		require.NoError(t, err)
		b, err := c.Convert(src)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})
}
