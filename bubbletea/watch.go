package bubbletea

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/awalczak/mdpad/fs"
)

// fileEventMsg reports an on-disk change to the current file.
type fileEventMsg struct {
	path string
}

// watchErrMsg reports a watcher failure.
type watchErrMsg struct {
	err error
}

// watcher bridges fsnotify into the Bubble Tea message loop. A goroutine
// forwards filesystem events into msgs; waitForFileEvent turns the next
// one into a command result.
type watcher struct {
	fsw  *fsnotify.Watcher
	msgs chan tea.Msg
	done chan struct{}
}

// startWatching replaces the active watcher with one for path. The
// directory is watched rather than the file itself so that editors which
// save via rename-and-replace keep the watch alive.
func (m *Model) startWatching(path string) tea.Cmd {
	m.stopWatching()

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		m.renderErr = fmt.Errorf("watch %s: %w", path, err)
		return nil
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		m.renderErr = fmt.Errorf("watch %s: %w", path, err)
		return nil
	}

	w := &watcher{
		fsw:  fsw,
		msgs: make(chan tea.Msg),
		done: make(chan struct{}),
	}
	go w.loop(path)
	m.watch = w
	return m.waitForFileEvent()
}

func (m *Model) stopWatching() {
	if m.watch == nil {
		return
	}
	close(m.watch.done)
	m.watch.fsw.Close()
	m.watch = nil
}

func (w *watcher) loop(path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			evAbs, err := filepath.Abs(ev.Name)
			if err != nil || evAbs != abs {
				continue
			}
			select {
			case w.msgs <- fileEventMsg{path: path}:
			case <-w.done:
				return
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.msgs <- watchErrMsg{err: err}:
			case <-w.done:
				return
			}
		}
	}
}

// waitForFileEvent blocks on the next watcher message. The handler must
// re-issue it to keep listening.
func (m *Model) waitForFileEvent() tea.Cmd {
	w := m.watch
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case msg := <-w.msgs:
			return msg
		case <-w.done:
			return nil
		}
	}
}

// handleFileEvent reloads the buffer from disk unless there are unsaved
// changes; local edits always win over external ones.
func (m *Model) handleFileEvent(msg fileEventMsg) tea.Cmd {
	if m.modified || msg.path != m.path {
		return m.waitForFileEvent()
	}
	content, err := fs.ReadDocument(msg.path)
	if err != nil {
		m.renderErr = err
		return m.waitForFileEvent()
	}
	m.editor.SetValue(content)
	m.modified = false
	return m.waitForFileEvent()
}
