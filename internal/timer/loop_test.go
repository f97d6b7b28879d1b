package timer

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/pomonotch/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoop_RunsCallbacksUntilCancelled(t *testing.T) {
	loop := NewLoop(4)
	ctx, cancelCtx := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancelCtx()

	var ticks int
	var cancel Cancel
	cancel = loop.Schedule(time.Millisecond, func() {
		ticks++
		if ticks == 3 {
			cancel()
			cancelCtx()
		}
	})

	err := loop.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	loop.Wait()
	assert.Equal(t, 3, ticks)
}

func TestLoop_PostRunsOnLoop(t *testing.T) {
	loop := NewLoop(1)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	ran := false
	require.NoError(t, loop.Post(ctx, func() {
		ran = true
		cancel()
	}))
	_ = loop.Run(ctx)
	assert.True(t, ran)
}

func TestLoop_DrivesModelToBreak(t *testing.T) {
	loop := NewLoop(4)
	m := New(newMemStore(), loop, WithSettings(domain.Settings{
		WorkDuration: 1, ShortBreakDuration: 60, LongBreakDuration: 60, SessionsBeforeLongBreak: 4,
	}))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	m.Subscribe(func(s Snapshot) {
		if s.State == domain.StateShortBreak {
			m.Pause()
			cancel()
		}
	})
	require.NoError(t, loop.Post(ctx, m.Start))

	_ = loop.Run(ctx)
	loop.Wait()
	assert.Equal(t, domain.StateShortBreak, m.State())
	assert.Equal(t, 1, m.Completed())
}
