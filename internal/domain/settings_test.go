package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, 1500, s.WorkDuration)
	assert.Equal(t, 300, s.ShortBreakDuration)
	assert.Equal(t, 900, s.LongBreakDuration)
	assert.Equal(t, 4, s.SessionsBeforeLongBreak)
	require.NoError(t, s.Validate())
}

func TestSettingsValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"zero work", func(s *Settings) { s.WorkDuration = 0 }},
		{"negative short", func(s *Settings) { s.ShortBreakDuration = -1 }},
		{"zero long", func(s *Settings) { s.LongBreakDuration = 0 }},
		{"zero cadence", func(s *Settings) { s.SessionsBeforeLongBreak = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := DefaultSettings()
			tc.mutate(&s)
			err := s.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSettings)
		})
	}
}

func TestSettingsDurationFor(t *testing.T) {
	s := Settings{WorkDuration: 10, ShortBreakDuration: 20, LongBreakDuration: 30, SessionsBeforeLongBreak: 2}
	assert.Equal(t, 10, s.DurationFor(StateWork))
	assert.Equal(t, 20, s.DurationFor(StateShortBreak))
	assert.Equal(t, 30, s.DurationFor(StateLongBreak))
	assert.Equal(t, 0, s.DurationFor(StateIdle))
}

func TestSettingsStep_ClampsToEditorBounds(t *testing.T) {
	s := DefaultSettings()

	s.StepWork(1)
	assert.Equal(t, 1560, s.WorkDuration)
	s.StepWork(-100)
	assert.Equal(t, WorkDurationMin, s.WorkDuration)
	s.StepWork(1000)
	assert.Equal(t, WorkDurationMax, s.WorkDuration)

	s.StepShortBreak(-1)
	assert.Equal(t, 240, s.ShortBreakDuration)
	s.StepShortBreak(1000)
	assert.Equal(t, ShortBreakDurationMax, s.ShortBreakDuration)
}

func TestTimerStateLabelAndClass(t *testing.T) {
	cases := []struct {
		state TimerState
		label string
		class StateClass
	}{
		{StateIdle, "Ready", ClassIdle},
		{StateWork, "Working", ClassWork},
		{StateShortBreak, "Short Break", ClassBreak},
		{StateLongBreak, "Long Break", ClassBreak},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.label, tc.state.Label(), "state=%s", tc.state)
		assert.Equal(t, tc.class, tc.state.Class(), "state=%s", tc.state)
	}
}
