package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pomonotch/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
	ColorNotch  = lipgloss.Color("#000000")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StateColor is the status dot color of the expanded panel: each break
// kind gets its own color.
func StateColor(state domain.TimerState) lipgloss.Style {
	switch state {
	case domain.StateWork:
		return StyleRed
	case domain.StateShortBreak:
		return StyleGreen
	case domain.StateLongBreak:
		return StyleBlue
	default:
		return StyleDim
	}
}

// ClassColor is the compact strip's icon color, which only tells work from break.
func ClassColor(class domain.StateClass) lipgloss.Style {
	switch class {
	case domain.ClassWork:
		return StyleRed
	case domain.ClassBreak:
		return StyleGreen
	default:
		return StyleDim
	}
}

// StatusIndicator returns a colored dot followed by the state label, e.g. "● Working".
func StatusIndicator(state domain.TimerState) string {
	return StateColor(state).Render("●") + " " + StyleBold.Render(state.Label())
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
