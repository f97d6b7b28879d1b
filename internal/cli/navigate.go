package cli

import tea "github.com/charmbracelet/bubbletea"

// replaceViewMsg swaps the active view, e.g. when toggling between the
// compact strip and the expanded panel.
type replaceViewMsg struct {
	view View
}

// flashMsg shows a transient line in the status bar until the next key press.
type flashMsg struct {
	text string
}

func replaceView(v View) tea.Cmd {
	return func() tea.Msg { return replaceViewMsg{view: v} }
}

func flash(text string) tea.Cmd {
	return func() tea.Msg { return flashMsg{text: text} }
}
