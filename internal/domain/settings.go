package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidSettings is returned by Settings.Validate.
var ErrInvalidSettings = errors.New("invalid settings")

// Default durations, in seconds.
const (
	DefaultWorkDuration       = 25 * 60
	DefaultShortBreakDuration = 5 * 60
	DefaultLongBreakDuration  = 15 * 60
	DefaultSessionsBeforeLong = 4
)

// Bounds and step for the inline settings editor.
const (
	WorkDurationMin       = 60
	WorkDurationMax       = 3600
	ShortBreakDurationMin = 60
	ShortBreakDurationMax = 1800
	EditorStep            = 60
)

// Settings is the persisted timer configuration. Durations are seconds.
// The JSON field names are the stored record's keys and must stay stable.
type Settings struct {
	WorkDuration            int `json:"workDuration"`
	ShortBreakDuration      int `json:"shortBreakDuration"`
	LongBreakDuration       int `json:"longBreakDuration"`
	SessionsBeforeLongBreak int `json:"pomodorosBeforeLongBreak"`
}

// DefaultSettings returns 25/5/15 minutes with a long break every 4 sessions.
func DefaultSettings() Settings {
	return Settings{
		WorkDuration:            DefaultWorkDuration,
		ShortBreakDuration:      DefaultShortBreakDuration,
		LongBreakDuration:       DefaultLongBreakDuration,
		SessionsBeforeLongBreak: DefaultSessionsBeforeLong,
	}
}

// Validate checks that every duration is positive and the cadence is at least 1.
func (s Settings) Validate() error {
	switch {
	case s.WorkDuration <= 0:
		return fmt.Errorf("work duration must be positive, got %d: %w", s.WorkDuration, ErrInvalidSettings)
	case s.ShortBreakDuration <= 0:
		return fmt.Errorf("short break duration must be positive, got %d: %w", s.ShortBreakDuration, ErrInvalidSettings)
	case s.LongBreakDuration <= 0:
		return fmt.Errorf("long break duration must be positive, got %d: %w", s.LongBreakDuration, ErrInvalidSettings)
	case s.SessionsBeforeLongBreak < 1:
		return fmt.Errorf("sessions before long break must be at least 1, got %d: %w", s.SessionsBeforeLongBreak, ErrInvalidSettings)
	}
	return nil
}

// DurationFor returns the configured duration of state, or 0 for idle.
func (s Settings) DurationFor(state TimerState) int {
	switch state {
	case StateWork:
		return s.WorkDuration
	case StateShortBreak:
		return s.ShortBreakDuration
	case StateLongBreak:
		return s.LongBreakDuration
	default:
		return 0
	}
}

// StepWork moves the work duration by delta steps, clamped to the editor bounds.
func (s *Settings) StepWork(delta int) {
	s.WorkDuration = clamp(s.WorkDuration+delta*EditorStep, WorkDurationMin, WorkDurationMax)
}

// StepShortBreak moves the short break duration by delta steps, clamped to the editor bounds.
func (s *Settings) StepShortBreak(delta int) {
	s.ShortBreakDuration = clamp(s.ShortBreakDuration+delta*EditorStep, ShortBreakDurationMin, ShortBreakDurationMax)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
