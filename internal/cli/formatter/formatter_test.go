package formatter

import (
	"strings"
	"testing"

	"github.com/alexanderramin/pomonotch/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestBigClock_ThreeRowsPerGlyph(t *testing.T) {
	out := BigClock("01:05")
	lines := strings.Split(out, "\n")

	assert.Len(t, lines, 3)
	assert.Equal(t, "┏━┓   ╻   ┏━┓ ┏━╸", lines[0])
	assert.Equal(t, "┃ ┃   ┃ ╏ ┃ ┃ ┗━┓", lines[1])
	assert.Equal(t, "┗━┛   ╹   ┗━┛ ╺━┛", lines[2])
}

func TestCountdown_FallsBackWhenNarrow(t *testing.T) {
	assert.Contains(t, Countdown(65, 10), "01:05")
	assert.Contains(t, Countdown(65, 80), "┏━┓")
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "25 min", FormatDuration(1500))
	assert.Equal(t, "0 min", FormatDuration(0))
	assert.Equal(t, "01:30", FormatDuration(90))
}

func TestFormatSettings(t *testing.T) {
	out := FormatSettings(domain.DefaultSettings(), false)

	assert.Contains(t, out, "SETTINGS")
	assert.Contains(t, out, "25 min")
	assert.Contains(t, out, "5 min")
	assert.Contains(t, out, "15 min")
	assert.Contains(t, out, "4 sessions")
	assert.Contains(t, out, "source: defaults")

	assert.Contains(t, FormatSettings(domain.DefaultSettings(), true), "source: saved")
}

func TestRenderProgress(t *testing.T) {
	assert.Contains(t, RenderProgress(0.5, 10, domain.StateWork), "█████░░░░░")
	assert.Contains(t, RenderProgress(0.5, 10, domain.StateWork), " 50%")
	assert.Contains(t, RenderProgress(-1, 4, domain.StateIdle), "░░░░")
	assert.Contains(t, RenderProgress(2, 4, domain.StateLongBreak), "████")
	assert.Contains(t, RenderProgress(2, 4, domain.StateLongBreak), "100%")
}

func TestStatusIndicator(t *testing.T) {
	out := StatusIndicator(domain.StateShortBreak)
	assert.Contains(t, out, "●")
	assert.Contains(t, out, "Short Break")
	assert.Contains(t, StatusIndicator(domain.StateIdle), "Ready")
}

func TestRenderPanel_HasTitleAndBorder(t *testing.T) {
	out := RenderPanel("Pomodoro", "body", 30)
	assert.Contains(t, out, "POMODORO")
	assert.Contains(t, out, "body")
	assert.Contains(t, out, "╭")
	assert.Equal(t, 30, lipgloss.Width(out))
}
