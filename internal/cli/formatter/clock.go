package formatter

import (
	"strings"

	"github.com/alexanderramin/pomonotch/internal/timer"
	"github.com/charmbracelet/lipgloss"
)

// Three-row glyphs for the large countdown.
var bigGlyphs = map[rune][3]string{
	'0': {"┏━┓", "┃ ┃", "┗━┛"},
	'1': {"  ╻", "  ┃", "  ╹"},
	'2': {"╺━┓", "┏━┛", "┗━╸"},
	'3': {"╺━┓", " ━┫", "╺━┛"},
	'4': {"╻ ╻", "┗━┫", "  ╹"},
	'5': {"┏━╸", "┗━┓", "╺━┛"},
	'6': {"┏━╸", "┣━┓", "┗━┛"},
	'7': {"╺━┓", "  ┃", "  ╹"},
	'8': {"┏━┓", "┣━┫", "┗━┛"},
	'9': {"┏━┓", "┗━┫", "╺━┛"},
	':': {" ", "╏", " "},
}

// BigClock renders text (digits and colons) three rows tall. Unknown runes
// are rendered as blanks.
func BigClock(text string) string {
	var rows [3][]string
	for _, r := range text {
		g, ok := bigGlyphs[r]
		if !ok {
			g = [3]string{" ", " ", " "}
		}
		for i := range rows {
			rows[i] = append(rows[i], g[i])
		}
	}
	lines := make([]string, 3)
	for i := range rows {
		lines[i] = strings.Join(rows[i], " ")
	}
	return strings.Join(lines, "\n")
}

// Countdown renders remaining seconds as a large clock when there is room,
// falling back to plain MM:SS in narrow terminals.
func Countdown(seconds, width int) string {
	text := timer.FormatTime(seconds)
	big := BigClock(text)
	if width > 0 && lipgloss.Width(big) > width {
		return StyleBold.Render(text)
	}
	return StyleBold.Render(big)
}
