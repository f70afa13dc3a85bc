// Command mdpad is a live Markdown editor for the terminal: a split
// editor/preview pane with syntax-highlighted HTML export and light and
// dark themes.
//
// Usage:
//
//	mdpad [flags] [file.md]
//
// Flags:
//
//	-theme string   Color theme: light, dark (default "dark")
//	-html           Render the file to a standalone HTML document on stdout and exit
//	-export string  Render every Markdown file under the directory to sibling .html files and exit
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/awalczak/mdpad"
	bt "github.com/awalczak/mdpad/bubbletea"
	"github.com/awalczak/mdpad/chroma"
	"github.com/awalczak/mdpad/fs"
	"github.com/awalczak/mdpad/htmldoc"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "mdpad: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		themeFlag = flag.String("theme", "dark", "Color theme: light, dark")
		htmlFlag  = flag.Bool("html", false, "Render the file to HTML on stdout and exit")
		exportDir = flag.String("export", "", "Render every Markdown file under the directory and exit")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	light, dark := mdpad.BuildThemes(chroma.Highlighter{})
	theme, err := pickTheme(*themeFlag, light, dark)
	if err != nil {
		return err
	}

	if *exportDir != "" {
		return exportTree(os.Stdout, *exportDir, theme)
	}

	path, content, err := loadDocument(flag.Arg(0))
	if err != nil {
		return err
	}

	if *htmlFlag {
		doc, err := htmldoc.New().Render(content, theme)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(os.Stdout, doc)
		return err
	}

	m := bt.New(mdpad.DefaultConfig(), light, dark, theme.Dark)
	m.Load(path, content)

	if err := bt.Run(ctx, m); err != nil {
		return fmt.Errorf("TUI: %w", err)
	}
	return nil
}

func pickTheme(name string, light, dark mdpad.Theme) (mdpad.Theme, error) {
	switch name {
	case "light":
		return light, nil
	case "dark":
		return dark, nil
	}
	return mdpad.Theme{}, fmt.Errorf("unknown theme %q (want light or dark)", name)
}

// loadDocument resolves the optional file argument. With no argument the
// session starts on the placeholder document, unbound to any path. A
// named file that does not exist yet starts empty and bound, so the
// first save creates it.
func loadDocument(path string) (string, string, error) {
	if path == "" {
		return "", mdpad.Placeholder, nil
	}
	content, err := fs.ReadDocument(path)
	switch {
	case err == nil:
		return path, content, nil
	case errors.Is(err, os.ErrNotExist):
		return path, "", nil
	default:
		return "", "", err
	}
}
