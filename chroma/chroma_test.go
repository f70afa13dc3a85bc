package chroma_test

import (
	"strings"
	"testing"

	"github.com/awalczak/mdpad/chroma"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighlighter_CSS(t *testing.T) {
	t.Parallel()

	h := chroma.Highlighter{}

	t.Run("rules are scoped to the chroma class", func(t *testing.T) {
		t.Parallel()
		css, err := h.CSS("monokai")
		require.NoError(t, err)
		assert.Contains(t, css, ".chroma")
	})

	t.Run("light and dark styles differ", func(t *testing.T) {
		t.Parallel()
		light, err := h.CSS("github")
		require.NoError(t, err)
		dark, err := h.CSS("monokai")
		require.NoError(t, err)
		assert.NotEqual(t, light, dark)
	})

	t.Run("unknown style falls back to a usable stylesheet", func(t *testing.T) {
		t.Parallel()
		css, err := h.CSS("no-such-style")
		require.NoError(t, err)
		assert.True(t, strings.Contains(css, ".chroma"))
	})

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()
		a, err := h.CSS("github")
		require.NoError(t, err)
		b, err := h.CSS("github")
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})
}
