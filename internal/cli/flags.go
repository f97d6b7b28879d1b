package cli

import (
	"github.com/alexanderramin/pomonotch/internal/domain"
	"github.com/spf13/pflag"
)

// durationFlags are the settings overrides shared by "settings set" and "run".
// Durations are whole minutes.
type durationFlags struct {
	work    int
	short   int
	long    int
	cadence int
}

func (f *durationFlags) register(fs *pflag.FlagSet) {
	fs.IntVar(&f.work, "work", 0, "Work session length in minutes")
	fs.IntVar(&f.short, "short", 0, "Short break length in minutes")
	fs.IntVar(&f.long, "long", 0, "Long break length in minutes")
	fs.IntVar(&f.cadence, "cadence", 0, "Work sessions before a long break")
}

// anyChanged reports whether the user passed at least one override.
func (f *durationFlags) anyChanged(fs *pflag.FlagSet) bool {
	for _, name := range []string{"work", "short", "long", "cadence"} {
		if fs.Changed(name) {
			return true
		}
	}
	return false
}

// apply copies the overrides the user passed into s. Unset flags leave s alone.
func (f *durationFlags) apply(fs *pflag.FlagSet, s *domain.Settings) {
	if fs.Changed("work") {
		s.WorkDuration = f.work * 60
	}
	if fs.Changed("short") {
		s.ShortBreakDuration = f.short * 60
	}
	if fs.Changed("long") {
		s.LongBreakDuration = f.long * 60
	}
	if fs.Changed("cadence") {
		s.SessionsBeforeLongBreak = f.cadence
	}
}
