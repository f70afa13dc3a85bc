package bubbletea

import tea "github.com/charmbracelet/bubbletea"

// OpenPathForTest exports openPath for testing.
func (m *Model) OpenPathForTest(path string) tea.Cmd {
	return m.openPath(path)
}

// SaveForTest exports save for testing.
func (m *Model) SaveForTest() tea.Cmd {
	return m.save()
}

// SaveAsForTest exports saveAs for testing.
func (m *Model) SaveAsForTest(path string) tea.Cmd {
	return m.saveAs(path)
}

// ExportHTMLForTest exports exportHTML for testing.
func (m *Model) ExportHTMLForTest(path string) tea.Cmd {
	return m.exportHTML(path)
}

// ReloadForTest exports handleFileEvent for testing.
func (m *Model) ReloadForTest(path string) tea.Cmd {
	return m.handleFileEvent(fileEventMsg{path: path})
}

// ContentForTest returns the editor buffer contents.
func (m *Model) ContentForTest() string {
	return m.editor.Value()
}

// InErrorModeForTest reports whether the error dialog is showing.
func (m *Model) InErrorModeForTest() bool {
	return m.mode == modeError
}

// ErrorTextForTest returns the error dialog text.
func (m *Model) ErrorTextForTest() string {
	return m.errText
}

// StatusLineForTest exports statusLine for testing.
func (m *Model) StatusLineForTest() string {
	return m.statusLine()
}

// WindowTitleForTest exports windowTitle for testing.
func (m *Model) WindowTitleForTest() string {
	return m.windowTitle()
}

// HTMLPath exports htmlPath for testing.
func HTMLPath(path string) string {
	return htmlPath(path)
}
