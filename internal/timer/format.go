package timer

import "fmt"

// FormatTime renders seconds as zero-padded MM:SS. Minutes are not capped,
// so 3661 renders as "61:01".
func FormatTime(totalSeconds int) string {
	return fmt.Sprintf("%02d:%02d", totalSeconds/60, totalSeconds%60)
}
