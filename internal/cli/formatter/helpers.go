package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderPanel wraps content in a rounded, dimmed border with an optional title.
func RenderPanel(title string, content string, width int) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(1, 2)
	if width > 4 {
		style = style.Width(width - 2)
	}

	if title != "" {
		return style.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return style.Render(content)
}
