package ansi_test

import (
	"strings"
	"testing"

	"github.com/awalczak/mdpad"
	"github.com/awalczak/mdpad/ansi"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Parallel()

	_, dark := mdpad.BuildThemes(mdpad.NopHighlighter{})

	t.Run("renders document content", func(t *testing.T) {
		t.Parallel()
		r, err := ansi.New(80, dark)
		require.NoError(t, err)
		out, err := r.Render("# Title\n\nhello world")
		require.NoError(t, err)
		plain := xansi.Strip(out)
		assert.Contains(t, plain, "Title")
		assert.Contains(t, plain, "hello world")
	})

	t.Run("wraps to the configured width", func(t *testing.T) {
		t.Parallel()
		r, err := ansi.New(30, dark)
		require.NoError(t, err)
		long := "word1 word2 word3 word4 word5 word6 word7 word8 word9 word10"
		out, err := r.Render(long)
		require.NoError(t, err)
		lines := strings.Split(xansi.Strip(out), "\n")
		assert.Greater(t, len(lines), 2)
	})

	t.Run("non-positive width is clamped", func(t *testing.T) {
		t.Parallel()
		r, err := ansi.New(0, dark)
		require.NoError(t, err)
		out, err := r.Render("hi")
		require.NoError(t, err)
		assert.Contains(t, xansi.Strip(out), "hi")
	})

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()
		r, err := ansi.New(60, dark)
		require.NoError(t, err)
		a, err := r.Render("**bold** and ~~struck~~")
		require.NoError(t, err)
		b, err := r.Render("**bold** and ~~struck~~")
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})
}
