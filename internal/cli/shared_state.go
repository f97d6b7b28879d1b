package cli

import (
	"context"

	"github.com/alexanderramin/pomonotch/internal/timer"
)

// LayoutMetrics is the strip geometry the compact view is sized against,
// in terminal cells.
type LayoutMetrics struct {
	ClosedWidth  int // width of the blank center of the strip
	ClosedHeight int // rows of the strip when not hovered
}

// LayoutProvider supplies LayoutMetrics.
type LayoutProvider interface {
	Metrics() LayoutMetrics
}

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	Ctx   context.Context
	Timer *timer.Model
	Ticks *teaScheduler // nil when the timer is driven by another scheduler

	// Latest timer snapshot, refreshed by the timer subscription.
	Snapshot timer.Snapshot

	// Terminal dimensions
	Width  int
	Height int
}

// newSharedState subscribes to t so Snapshot always reflects the model.
// The returned func drops the subscription.
func newSharedState(ctx context.Context, t *timer.Model, ticks *teaScheduler) (*SharedState, func()) {
	s := &SharedState{Ctx: ctx, Timer: t, Ticks: ticks, Snapshot: t.Snapshot()}
	unsubscribe := t.Subscribe(func(snap timer.Snapshot) {
		s.Snapshot = snap
	})
	return s, unsubscribe
}

// Metrics derives the strip geometry from the terminal size: the center
// takes a quarter of the width, and tall terminals get a taller strip.
func (s *SharedState) Metrics() LayoutMetrics {
	return LayoutMetrics{
		ClosedWidth:  min(max(s.Width/4, 8), 40),
		ClosedHeight: min(max(s.Height/12, 1), 3),
	}
}

// ContentHeight returns the available height for view content,
// accounting for the header (2 lines) and status bar (2 lines).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
