package bubbletea

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	runewidth "github.com/mattn/go-runewidth"

	"github.com/awalczak/mdpad"
	"github.com/awalczak/mdpad/ansi"
	"github.com/awalczak/mdpad/fs"
	"github.com/awalczak/mdpad/htmldoc"
)

const (
	statusHeight = 1
	minPaneWidth = 10
)

// mode is the modal state of the shell. Dialogs block the editor until
// dismissed, mirroring the blocking-dialog contract.
type mode int

const (
	modeEdit mode = iota
	modeOpen
	modeSaveAs
	modeExport
	modeError
)

var _ tea.Model = (*Model)(nil)

// Model is the Bubble Tea model for the mdpad shell. It owns the session
// state: the current file path, the unsaved-changes flag, and the
// dark-mode flag. Exactly one of the light/dark themes is active at any
// time.
type Model struct {
	cfg   mdpad.Config
	light mdpad.Theme
	dark  mdpad.Theme

	editor  Editor
	preview viewport.Model

	html     *htmldoc.Renderer
	renderer *ansi.Renderer

	keys   KeyMap
	styles Styles

	path     string
	modified bool
	darkMode bool

	mode      mode
	picker    filepicker.Model
	pickerAll bool
	pathInput textinput.Model
	errText   string

	// renderErr is a preview conversion failure, shown on the status line
	// rather than a modal: the editor stays usable and the next keystroke
	// retries the render.
	renderErr error

	watch        *watcher
	pendingWatch bool

	width        int
	height       int
	previewWidth int
	ready        bool
}

// New creates the shell model. The initial theme state is dark unless
// startLight is set. Seed content with Load before running the program.
func New(cfg mdpad.Config, light, dark mdpad.Theme, startDark bool) *Model {
	m := &Model{
		cfg:      cfg,
		light:    light,
		dark:     dark,
		darkMode: startDark,
		keys:     DefaultKeyMap(),
		html:     htmldoc.New(),
	}

	m.editor = NewEditor()
	m.editor.OnChange(func(v string) {
		m.modified = true
		m.refreshPreview(v)
	})

	picker := filepicker.New()
	picker.AllowedTypes = cfg.Extensions
	picker.FileAllowed = true
	picker.DirAllowed = false
	m.picker = picker

	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 0
	m.pathInput = input

	m.styles = NewStyles(m.theme())
	return m
}

// Load seeds the editor with content and binds path as the current file
// ("" for an unsaved document). Seeding fires the change notification;
// the unsaved-changes flag is cleared afterwards.
func (m *Model) Load(path, content string) {
	m.editor.SetValue(content)
	m.path = path
	m.modified = false
	m.pendingWatch = path != ""
}

// Path returns the current file path, empty until a successful open or
// save.
func (m *Model) Path() string { return m.path }

// Modified reports whether the buffer has unsaved changes.
func (m *Model) Modified() bool { return m.modified }

// DarkMode reports whether the dark theme is active.
func (m *Model) DarkMode() bool { return m.darkMode }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textarea.Blink, m.setTitle()}
	if m.pendingWatch {
		m.pendingWatch = false
		if cmd := m.startWatching(m.path); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case fileEventMsg:
		return m, m.handleFileEvent(msg)

	case watchErrMsg:
		// Watcher failures are non-fatal; keep editing, keep listening.
		m.renderErr = msg.err
		return m, m.waitForFileEvent()

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	// Remaining messages go to the component the mode owns: picker reads,
	// input blinks, cursor blinks.
	switch m.mode {
	case modeOpen:
		return m, m.updatePicker(msg)
	case modeSaveAs, modeExport:
		var cmd tea.Cmd
		m.pathInput, cmd = m.pathInput.Update(msg)
		return m, cmd
	}

	var cmds []tea.Cmd
	cmds = append(cmds, m.editor.Update(msg))
	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch m.mode {
	case modeError:
		// Any key dismisses the dialog.
		m.mode = modeEdit
		m.errText = ""
		return nil

	case modeOpen:
		switch msg.String() {
		case "esc":
			m.mode = modeEdit
			return nil
		case "a":
			// Toggle between the markdown filter and all files.
			m.pickerAll = !m.pickerAll
			if m.pickerAll {
				m.picker.AllowedTypes = nil
			} else {
				m.picker.AllowedTypes = m.cfg.Extensions
			}
			return m.picker.Init()
		}
		return m.updatePicker(msg)

	case modeSaveAs, modeExport:
		switch msg.Type {
		case tea.KeyEnter:
			path := strings.TrimSpace(m.pathInput.Value())
			if path == "" {
				return nil
			}
			saving := m.mode == modeSaveAs
			m.mode = modeEdit
			m.pathInput.Blur()
			if saving {
				return m.saveAs(path)
			}
			return m.exportHTML(path)
		case tea.KeyEsc:
			m.mode = modeEdit
			m.pathInput.Blur()
			return nil
		}
		var cmd tea.Cmd
		m.pathInput, cmd = m.pathInput.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Open):
		return m.openDialog()
	case key.Matches(msg, m.keys.Save):
		return m.save()
	case key.Matches(msg, m.keys.SaveAs):
		return m.saveAsDialog()
	case key.Matches(msg, m.keys.ExportHTML):
		return m.exportDialog()
	case key.Matches(msg, m.keys.DarkMode):
		m.toggleDarkMode()
		return nil
	}

	// Page keys scroll the preview; everything else edits.
	switch msg.Type {
	case tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.preview, cmd = m.preview.Update(msg)
		return cmd
	}

	return m.editor.Update(msg)
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	editorBox := m.styles.EditorPane.Render(m.editor.Area.View())
	previewBox := m.styles.PreviewPane.Render(m.preview.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, editorBox, previewBox)
	base := lipgloss.JoinVertical(lipgloss.Left, body, m.statusLine())

	switch m.mode {
	case modeOpen:
		dialog := m.styles.Dialog.Render(lipgloss.JoinVertical(lipgloss.Left,
			m.styles.DialogTitle.Render("Open File"),
			m.picker.View(),
			m.styles.Muted.Render("enter: open · a: all files · esc: cancel"),
		))
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, dialog)

	case modeSaveAs, modeExport:
		title := "Save File As"
		if m.mode == modeExport {
			title = "Export HTML"
		}
		dialog := m.styles.Dialog.Render(lipgloss.JoinVertical(lipgloss.Left,
			m.styles.DialogTitle.Render(title),
			m.pathInput.View(),
			m.styles.Muted.Render("enter: confirm · esc: cancel"),
		))
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, dialog)

	case modeError:
		dialog := m.styles.Dialog.Render(lipgloss.JoinVertical(lipgloss.Left,
			m.styles.DialogTitle.Render("Error"),
			m.styles.ErrorText.Render(m.errText),
			m.styles.Muted.Render("press any key"),
		))
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, dialog)
	}

	return base
}

func (m *Model) resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	m.width, m.height = w, h

	contentH := max(h-statusHeight, 3)
	innerH := max(contentH-2, 1) // pane borders
	editorW := max((w-4)/2, minPaneWidth)
	previewW := max(w-4-editorW, minPaneWidth)

	m.editor.Area.SetWidth(editorW)
	m.editor.Area.SetHeight(innerH)

	if !m.ready {
		m.preview = viewport.New(previewW, innerH)
		m.ready = true
	} else {
		m.preview.Width = previewW
		m.preview.Height = innerH
	}
	m.previewWidth = previewW

	m.picker.Height = min(innerH, 15)
	m.pathInput.Width = max(min(w-10, 60), 20)

	m.rebuildPreview()
}

// theme returns the active theme.
func (m *Model) theme() mdpad.Theme {
	if m.darkMode {
		return m.dark
	}
	return m.light
}

func (m *Model) toggleDarkMode() {
	m.darkMode = !m.darkMode
	m.styles = NewStyles(m.theme())
	m.rebuildPreview()
}

// rebuildPreview recreates the terminal renderer for the current width
// and theme, then re-renders. Toggling the theme twice restores
// byte-identical preview output.
func (m *Model) rebuildPreview() {
	if !m.ready {
		return
	}
	r, err := ansi.New(m.previewWidth, m.theme())
	if err != nil {
		m.renderErr = err
		return
	}
	m.renderer = r
	m.refreshPreview(m.editor.Value())
}

func (m *Model) refreshPreview(value string) {
	if m.renderer == nil {
		return
	}
	out, err := m.renderer.Render(value)
	if err != nil {
		m.renderErr = err
		return
	}
	m.renderErr = nil
	m.preview.SetContent(out)
}

func (m *Model) openDialog() tea.Cmd {
	m.mode = modeOpen
	m.picker.CurrentDirectory = m.dialogDir()
	return m.picker.Init()
}

func (m *Model) updatePicker(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.mode = modeEdit
		return tea.Batch(cmd, m.openPath(path))
	}
	return cmd
}

// openPath reads path into the editor. On failure the error dialog is
// shown and all state (path, buffer, preview) is left unchanged.
func (m *Model) openPath(path string) tea.Cmd {
	content, err := fs.ReadDocument(path)
	if err != nil {
		m.showError(fmt.Sprintf("Could not open file: %v", err))
		return nil
	}
	m.editor.SetValue(content)
	m.path = path
	m.modified = false
	return tea.Batch(m.setTitle(), m.startWatching(path))
}

func (m *Model) save() tea.Cmd {
	if m.path == "" {
		return m.saveAsDialog()
	}
	if err := fs.WriteDocument(m.path, m.editor.Value()); err != nil {
		m.showError(fmt.Sprintf("Could not save file: %v", err))
		return nil
	}
	m.modified = false
	return nil
}

func (m *Model) saveAsDialog() tea.Cmd {
	m.mode = modeSaveAs
	m.pathInput.SetValue(m.defaultSavePath())
	m.pathInput.CursorEnd()
	return m.pathInput.Focus()
}

// saveAs writes first and rebinds the current path only on success; a
// failed save to a new path leaves the previous binding in place.
func (m *Model) saveAs(path string) tea.Cmd {
	if err := fs.WriteDocument(path, m.editor.Value()); err != nil {
		m.showError(fmt.Sprintf("Could not save file: %v", err))
		return nil
	}
	m.path = path
	m.modified = false
	return tea.Batch(m.setTitle(), m.startWatching(path))
}

func (m *Model) exportDialog() tea.Cmd {
	m.mode = modeExport
	m.pathInput.SetValue(htmlPath(m.path))
	m.pathInput.CursorEnd()
	return m.pathInput.Focus()
}

func (m *Model) exportHTML(path string) tea.Cmd {
	doc, err := m.html.Render(m.editor.Value(), m.theme())
	if err != nil {
		m.showError(fmt.Sprintf("Could not render HTML: %v", err))
		return nil
	}
	if err := fs.WriteDocument(path, doc); err != nil {
		m.showError(fmt.Sprintf("Could not export HTML: %v", err))
		return nil
	}
	return nil
}

func (m *Model) showError(text string) {
	m.errText = text
	m.mode = modeError
}

func (m *Model) statusLine() string {
	if m.renderErr != nil {
		line := fmt.Sprintf("Error: %v", m.renderErr)
		return m.styles.StatusError.Width(m.width).Render(runewidth.Truncate(line, m.width, "…"))
	}

	name := m.path
	if name == "" {
		name = "untitled"
	}
	if m.modified {
		name += " *"
	}
	hints := "ctrl+o open · ctrl+s save · alt+s save as · alt+e html · alt+t theme · ctrl+c quit"
	line := fmt.Sprintf("%s · %s · %s", name, m.theme().Name, hints)
	return m.styles.Status.Width(m.width).Render(runewidth.Truncate(line, m.width, "…"))
}

func (m *Model) windowTitle() string {
	if m.path != "" {
		return m.path + " - " + m.cfg.Title
	}
	return m.cfg.Title
}

func (m *Model) setTitle() tea.Cmd {
	return tea.SetWindowTitle(m.windowTitle())
}

func (m *Model) dialogDir() string {
	if m.path != "" {
		return filepath.Dir(m.path)
	}
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	return dir
}

func (m *Model) defaultSavePath() string {
	if m.path != "" {
		return m.path
	}
	return "untitled.md"
}

func htmlPath(path string) string {
	if path == "" {
		return "untitled.html"
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".html"
}
