package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/pomonotch/internal/domain"
	"github.com/alexanderramin/pomonotch/internal/timer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunHeadless_OneCycle(t *testing.T) {
	if testing.Short() {
		t.Skip("runs on the real one-second clock")
	}

	loop := timer.NewLoop(4)
	model := timer.New(nil, loop, timer.WithSettings(domain.Settings{
		WorkDuration:            1,
		ShortBreakDuration:      1,
		LongBreakDuration:       1,
		SessionsBeforeLongBreak: 4,
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var out bytes.Buffer
	require.NoError(t, runHeadless(ctx, loop, model, 1, &out))

	assert.Equal(t, 1, model.Completed())
	assert.Equal(t, domain.StateIdle, model.State())
	assert.False(t, model.Running())

	text := out.String()
	assert.Contains(t, text, "Working")
	assert.Contains(t, text, "Short Break")
	assert.Contains(t, text, "Ready")
	assert.Contains(t, text, "1 work sessions completed")
}

func TestRunHeadless_CancelledContext(t *testing.T) {
	loop := timer.NewLoop(4)
	model := timer.New(nil, loop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := runHeadless(ctx, loop, model, 1, &out)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, model.Completed())
}
