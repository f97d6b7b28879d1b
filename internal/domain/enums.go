package domain

// TimerState is the phase of the Pomodoro cycle.
type TimerState string

const (
	StateIdle       TimerState = "idle"
	StateWork       TimerState = "work"
	StateShortBreak TimerState = "shortBreak"
	StateLongBreak  TimerState = "longBreak"
)

// StateClass groups states for presentation: the compact strip only
// distinguishes work from any break.
type StateClass string

const (
	ClassIdle  StateClass = "idle"
	ClassWork  StateClass = "work"
	ClassBreak StateClass = "break"
)

// IsBreak reports whether s is a short or long break.
func (s TimerState) IsBreak() bool {
	return s == StateShortBreak || s == StateLongBreak
}

// Class returns the presentation class of s.
func (s TimerState) Class() StateClass {
	switch {
	case s == StateWork:
		return ClassWork
	case s.IsBreak():
		return ClassBreak
	default:
		return ClassIdle
	}
}

// Label returns the human-readable status text shown next to the status dot.
func (s TimerState) Label() string {
	switch s {
	case StateWork:
		return "Working"
	case StateShortBreak:
		return "Short Break"
	case StateLongBreak:
		return "Long Break"
	default:
		return "Ready"
	}
}
