package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pomonotch/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders an interval progress bar like [████░░░░] 45%,
// colored by the state being timed.
func RenderProgress(pct float64, width int, state domain.TimerState) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}

	filled := min(int(pct*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	return fmt.Sprintf("[%s] %3.0f%%", StateColor(state).Render(bar), pct*100)
}
