package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pomonotch/internal/cli/formatter"
	"github.com/alexanderramin/pomonotch/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// editorField is a row of the inline settings editor.
type editorField int

const (
	fieldWork editorField = iota
	fieldShortBreak
)

type expandedKeyMap struct {
	Toggle   key.Binding
	Reset    key.Binding
	Settings key.Binding
	Up       key.Binding
	Down     key.Binding
	Inc      key.Binding
	Dec      key.Binding
	Save     key.Binding
	Close    key.Binding
}

var expandedKeys = expandedKeyMap{
	Toggle:   key.NewBinding(key.WithKeys(" ", "s"), key.WithHelp("space", "start/pause")),
	Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
	Settings: key.NewBinding(key.WithKeys(","), key.WithHelp(",", "settings")),
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "field")),
	Down:     key.NewBinding(key.WithKeys("down", "j")),
	Inc:      key.NewBinding(key.WithKeys("+", "=", "right", "l"), key.WithHelp("+/-", "adjust")),
	Dec:      key.NewBinding(key.WithKeys("-", "left", "h")),
	Save:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
	Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
}

// expandedView is the full control panel: status, large countdown,
// completed counter, Start/Pause and Reset, and the inline settings editor.
// Editor steppers write straight into the timer's in-memory settings; only
// Save persists them.
type expandedView struct {
	state *SharedState

	showingSettings bool
	field           editorField
}

func newExpandedView(state *SharedState) *expandedView {
	return &expandedView{state: state}
}

func (v *expandedView) ID() ViewID    { return ViewExpanded }
func (v *expandedView) Title() string { return "Pomodoro" }

func (v *expandedView) ShortHelp() []key.Binding {
	if v.showingSettings {
		return []key.Binding{expandedKeys.Up, expandedKeys.Inc, expandedKeys.Save, expandedKeys.Close}
	}
	return []key.Binding{
		expandedKeys.Toggle,
		expandedKeys.Reset,
		expandedKeys.Settings,
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "compact")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

// Init reloads the stored settings each time the panel appears.
func (v *expandedView) Init() tea.Cmd {
	v.state.Timer.LoadSettings(v.state.Ctx)
	return nil
}

// capturesInput reports whether the editor is open, so esc closes it instead
// of being treated as a global key.
func (v *expandedView) capturesInput() bool {
	return v.showingSettings
}

func (v *expandedView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	if v.showingSettings {
		if cmd, handled := v.handleEditorKey(keyMsg); handled {
			return v, cmd
		}
	}

	t := v.state.Timer
	switch {
	case key.Matches(keyMsg, expandedKeys.Toggle):
		if v.state.Snapshot.Running {
			t.Pause()
		} else {
			t.Start()
		}
	case key.Matches(keyMsg, expandedKeys.Reset):
		t.Reset()
	case key.Matches(keyMsg, expandedKeys.Settings):
		v.showingSettings = !v.showingSettings
		v.field = fieldWork
	}
	return v, nil
}

func (v *expandedView) handleEditorKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	t := v.state.Timer
	switch {
	case key.Matches(msg, expandedKeys.Up):
		v.field = fieldWork
	case key.Matches(msg, expandedKeys.Down):
		v.field = fieldShortBreak
	case key.Matches(msg, expandedKeys.Inc):
		t.UpdateSettings(func(s *domain.Settings) { v.step(s, 1) })
	case key.Matches(msg, expandedKeys.Dec):
		t.UpdateSettings(func(s *domain.Settings) { v.step(s, -1) })
	case key.Matches(msg, expandedKeys.Save):
		t.SaveSettings(v.state.Ctx)
		v.showingSettings = false
		return flash("Settings saved"), true
	case key.Matches(msg, expandedKeys.Close):
		v.showingSettings = false
	default:
		return nil, false
	}
	return nil, true
}

func (v *expandedView) step(s *domain.Settings, delta int) {
	if v.field == fieldWork {
		s.StepWork(delta)
	} else {
		s.StepShortBreak(delta)
	}
}

// ── rendering ────────────────────────────────────────────────────────────────

func (v *expandedView) View() string {
	snap := v.state.Snapshot
	width := v.panelWidth()
	inner := max(width-8, 10)

	var sections []string
	sections = append(sections, formatter.StatusIndicator(snap.State))
	sections = append(sections, "", formatter.Countdown(snap.Remaining, inner), "")
	sections = append(sections, formatter.RenderProgress(snap.Progress(), max(inner-8, 2), snap.State))
	sections = append(sections, formatter.Dim(fmt.Sprintf("Pomodoros: %d", snap.Completed)), "")
	sections = append(sections, v.renderControls())

	if v.showingSettings {
		sections = append(sections, "", v.renderSettings())
	} else {
		sections = append(sections, "", formatter.Dim("⚙ Settings"))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return formatter.RenderPanel("", content, width)
}

func (v *expandedView) panelWidth() int {
	if v.state.Width <= 0 {
		return 48
	}
	return min(v.state.Width, 60)
}

func (v *expandedView) renderControls() string {
	primary := "▶ Start"
	if v.state.Snapshot.Running {
		primary = "⏸ Pause"
	}
	button := lipgloss.NewStyle().Padding(0, 2).Border(lipgloss.RoundedBorder())
	return lipgloss.JoinHorizontal(lipgloss.Center,
		button.BorderForeground(formatter.ColorHeader).Render(formatter.Bold(primary)),
		"  ",
		button.BorderForeground(formatter.ColorDim).Render("↺ Reset"),
	)
}

func (v *expandedView) renderSettings() string {
	s := v.state.Snapshot.Settings
	rows := []struct {
		field editorField
		label string
		value int
	}{
		{fieldWork, "Work:", s.WorkDuration},
		{fieldShortBreak, "Break:", s.ShortBreakDuration},
	}

	var lines []string
	for _, r := range rows {
		cursor := "  "
		if r.field == v.field {
			cursor = formatter.StyleHeader.Render("› ")
		}
		lines = append(lines, fmt.Sprintf("%s%-7s %8s  %s",
			cursor, r.label, formatter.FormatDuration(r.value), formatter.Dim("‹ ›")))
	}
	lines = append(lines, "", "  "+formatter.StyleGreen.Render("[ Save ]"))

	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(formatter.ColorDim).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}
