package fs

import (
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// markdownPattern matches the extensions accepted by the open dialog.
const markdownPattern = "**/*.{md,markdown}"

// ListMarkdown returns the markdown files under dir, as paths relative to
// dir, in walk order.
func ListMarkdown(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("list %s: not a directory", dir)
	}

	fsys := os.DirFS(dir)
	var matches []string
	err = doublestar.GlobWalk(fsys, markdownPattern, func(path string, d iofs.DirEntry) error {
		if d.IsDir() {
			return nil
		}
		matches = append(matches, filepath.FromSlash(path))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	return matches, nil
}
