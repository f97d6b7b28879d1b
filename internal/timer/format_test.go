package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTime(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{65, "01:05"},
		{1500, "25:00"},
		{3661, "61:01"},
		{6000, "100:00"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatTime(tc.seconds), "seconds=%d", tc.seconds)
	}
}
