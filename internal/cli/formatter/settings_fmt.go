package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pomonotch/internal/domain"
	"github.com/alexanderramin/pomonotch/internal/timer"
)

// FormatDuration renders seconds as "25 min" when they are whole minutes,
// otherwise as MM:SS.
func FormatDuration(seconds int) string {
	if seconds%60 == 0 {
		return fmt.Sprintf("%d min", seconds/60)
	}
	return timer.FormatTime(seconds)
}

// FormatSettings renders the settings record for the settings subcommands.
func FormatSettings(s domain.Settings, stored bool) string {
	rows := [][2]string{
		{"Work", FormatDuration(s.WorkDuration)},
		{"Short break", FormatDuration(s.ShortBreakDuration)},
		{"Long break", FormatDuration(s.LongBreakDuration)},
		{"Long break every", fmt.Sprintf("%d sessions", s.SessionsBeforeLongBreak)},
	}

	var b strings.Builder
	b.WriteString(Header("Settings"))
	b.WriteString("\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "%-18s %s\n", r[0], Bold(r[1]))
	}
	source := "defaults"
	if stored {
		source = "saved"
	}
	b.WriteString(Dim("source: " + source))
	return b.String()
}
