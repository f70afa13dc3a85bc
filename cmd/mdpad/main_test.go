package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awalczak/mdpad"
)

func TestPickTheme(t *testing.T) {
	t.Parallel()

	light, dark := mdpad.BuildThemes(mdpad.NopHighlighter{})

	got, err := pickTheme("light", light, dark)
	require.NoError(t, err)
	assert.False(t, got.Dark)

	got, err = pickTheme("dark", light, dark)
	require.NoError(t, err)
	assert.True(t, got.Dark)

	_, err = pickTheme("solarized", light, dark)
	assert.Error(t, err)
}

func TestLoadDocument(t *testing.T) {
	t.Parallel()

	t.Run("no argument starts on the placeholder, unbound", func(t *testing.T) {
		t.Parallel()

		path, content, err := loadDocument("")
		require.NoError(t, err)
		assert.Equal(t, "", path)
		assert.Equal(t, mdpad.Placeholder, content)
	})

	t.Run("existing file is read and bound", func(t *testing.T) {
		t.Parallel()

		p := filepath.Join(t.TempDir(), "doc.md")
		require.NoError(t, os.WriteFile(p, []byte("# Doc"), 0o644))

		path, content, err := loadDocument(p)
		require.NoError(t, err)
		assert.Equal(t, p, path)
		assert.Equal(t, "# Doc", content)
	})

	t.Run("missing file starts empty but bound", func(t *testing.T) {
		t.Parallel()

		p := filepath.Join(t.TempDir(), "new.md")

		path, content, err := loadDocument(p)
		require.NoError(t, err)
		assert.Equal(t, p, path)
		assert.Equal(t, "", content)
	})

	t.Run("unreadable file fails", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()

		_, _, err := loadDocument(dir)
		assert.Error(t, err)
	})
}

func TestExportTree(t *testing.T) {
	t.Parallel()

	t.Run("renders every markdown file to a sibling html file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte("# A"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "b.markdown"), []byte("**b**"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "skip.txt"), []byte("not markdown"), 0o644))

		_, dark := mdpad.BuildThemes(mdpad.NopHighlighter{})
		var out strings.Builder
		require.NoError(t, exportTree(&out, dir, dark))

		a, err := os.ReadFile(filepath.Join(dir, "a.html"))
		require.NoError(t, err)
		assert.Contains(t, string(a), "<h1>A</h1>")

		b, err := os.ReadFile(filepath.Join(dir, "sub", "b.html"))
		require.NoError(t, err)
		assert.Contains(t, string(b), "<strong>b</strong>")

		assert.NoFileExists(t, filepath.Join(dir, "skip.html"))
		assert.Equal(t, 2, strings.Count(out.String(), "\n"))
	})

	t.Run("missing directory fails", func(t *testing.T) {
		t.Parallel()

		_, dark := mdpad.BuildThemes(mdpad.NopHighlighter{})
		var out strings.Builder

		err := exportTree(&out, filepath.Join(t.TempDir(), "nope"), dark)
		assert.Error(t, err)
	})
}
