package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/awalczak/mdpad"
	"github.com/awalczak/mdpad/fs"
	"github.com/awalczak/mdpad/htmldoc"
)

// exportTree renders every Markdown file under dir to a sibling .html
// file and writes one line per output file to w.
func exportTree(w io.Writer, dir string, theme mdpad.Theme) error {
	files, err := fs.ListMarkdown(dir)
	if err != nil {
		return err
	}

	renderer := htmldoc.New()
	for _, rel := range files {
		src := filepath.Join(dir, rel)
		content, err := fs.ReadDocument(src)
		if err != nil {
			return err
		}
		doc, err := renderer.Render(content, theme)
		if err != nil {
			return fmt.Errorf("render %s: %w", src, err)
		}
		out := strings.TrimSuffix(src, filepath.Ext(src)) + ".html"
		if err := fs.WriteDocument(out, doc); err != nil {
			return err
		}
		fmt.Fprintln(w, out)
	}
	return nil
}
