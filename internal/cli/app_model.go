package cli

import (
	"strings"

	"github.com/alexanderramin/pomonotch/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// headerLines is the number of rows renderHeader occupies above the content.
const headerLines = 2

// appModel is the root bubbletea Model for the TUI. It hosts one active
// view, either the expanded panel or the compact strip, both of which render
// from the same timer snapshot.
type appModel struct {
	state       *SharedState
	active      View
	unsubscribe func()
	quitting    bool

	// Transient status line, cleared by the next key press.
	flash string
}

func newAppModel(state *SharedState, unsubscribe func(), compact bool) appModel {
	m := appModel{state: state, unsubscribe: unsubscribe}
	if compact {
		m.active = newCompactView(state)
	} else {
		m.active = newExpandedView(state)
	}
	return m
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	return m.active.Init()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		return m, nil

	case schedulerTickMsg:
		if m.state.Ticks != nil {
			m.state.Ticks.Dispatch(msg.id)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		msg.Y -= headerLines
		return m.forward(msg)

	case replaceViewMsg:
		m.active = msg.view
		return m, msg.view.Init()

	case flashMsg:
		m.flash = msg.text
		return m, nil
	}

	return m.forward(msg)
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.flash = ""

	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}

	if ev, ok := m.active.(*expandedView); ok && ev.capturesInput() {
		return m.forward(msg)
	}

	switch msg.String() {
	case "q":
		return m.quit()
	case "tab":
		if m.active.ID() == ViewCompact {
			return m, replaceView(newExpandedView(m.state))
		}
		return m, replaceView(newCompactView(m.state))
	}

	return m.forward(msg)
}

func (m appModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.active.Update(msg)
	m.active = updated.(View)
	return m, cmd
}

func (m appModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.state.Timer.Pause()
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	return m, tea.Quit
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.renderHeader(),
		m.active.View(),
		m.renderStatusBar(),
	}
	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}

	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	header := formatter.StylePurple.Render("pomonotch") + " " +
		formatter.Dim("›") + " " + formatter.Dim(m.active.Title())
	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	if m.flash != "" {
		hints = append(hints, formatter.StyleGreen.Render(m.flash))
	}
	for _, b := range m.active.ShortHelp() {
		hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
	}

	sepStyle := lipgloss.NewStyle().Foreground(formatter.ColorDim)
	sep := sepStyle.Render(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + strings.Join(hints, "  ")
}
