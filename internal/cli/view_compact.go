package cli

import (
	"github.com/alexanderramin/pomonotch/internal/cli/formatter"
	"github.com/alexanderramin/pomonotch/internal/timer"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const compactIcon = "◷"

// compactView is the minimized strip: a timer glyph colored by state class,
// a blank notch-colored center, and the remaining time. Its only state is
// whether the pointer is over it.
type compactView struct {
	state    *SharedState
	layout   LayoutProvider
	hovering bool
}

func newCompactView(state *SharedState) *compactView {
	return &compactView{state: state, layout: state}
}

func (v *compactView) ID() ViewID    { return ViewCompact }
func (v *compactView) Title() string { return "Compact" }

func (v *compactView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "expand")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *compactView) Init() tea.Cmd { return nil }

func (v *compactView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.MouseMsg); ok && msg.Action == tea.MouseActionMotion {
		v.hovering = v.contains(msg.Y)
	}
	return v, nil
}

// contains reports whether row y (relative to the content area) falls on the strip.
func (v *compactView) contains(y int) bool {
	return y >= 0 && y < v.height()
}

func (v *compactView) height() int {
	h := v.layout.Metrics().ClosedHeight
	if v.hovering {
		h++
	}
	return h
}

func (v *compactView) View() string {
	m := v.layout.Metrics()
	snap := v.state.Snapshot
	rowHeight := max(0, m.ClosedHeight)

	iconWidth := max(1, 2*m.ClosedHeight+1)
	icon := lipgloss.Place(iconWidth, rowHeight, lipgloss.Center, lipgloss.Center,
		formatter.ClassColor(snap.State.Class()).Render(compactIcon))

	center := lipgloss.NewStyle().
		Background(formatter.ColorNotch).
		Width(m.ClosedWidth).
		Height(rowHeight).
		Render("")

	text := timer.FormatTime(snap.Remaining)
	textWidth := max(lipgloss.Width(text), iconWidth+4)
	clock := lipgloss.Place(textWidth, rowHeight, lipgloss.Right, lipgloss.Center,
		formatter.StyleFg.Render(text))

	strip := lipgloss.JoinHorizontal(lipgloss.Center, icon, center, clock)
	return lipgloss.PlaceVertical(v.height(), lipgloss.Center, strip)
}
