package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/pomonotch/internal/teatest"
	"github.com/alexanderramin/pomonotch/internal/timer"
)

// TestDriver wraps teatest.Driver with access to appModel internals and a
// manual scheduler, so tests decide exactly when the timer ticks.
type TestDriver struct {
	*teatest.Driver
	Clock *timer.ManualScheduler
}

// NewTestDriver builds the appModel over a fresh timer model, sets the
// terminal size, and drains Init() (which loads settings from the store).
func NewTestDriver(t *testing.T, app *App, compact bool) *TestDriver {
	t.Helper()

	clock := timer.NewManualScheduler()
	model := timer.New(app.Store, clock, timer.WithLogger(app.Logger))
	state, unsubscribe := newSharedState(context.Background(), model, nil)
	t.Cleanup(unsubscribe)

	d := teatest.New(t, newAppModel(state, unsubscribe, compact), teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d, Clock: clock}
}

// Tick advances the timer by n seconds.
func (d *TestDriver) Tick(n int) {
	d.T.Helper()
	d.Clock.Advance(n)
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the active view.
func (d *TestDriver) ActiveViewID() ViewID {
	return d.appModel().active.ID()
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// Snapshot returns the timer snapshot the views render from.
func (d *TestDriver) Snapshot() timer.Snapshot {
	return d.State().Snapshot
}

// IsQuitting returns whether the app has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// Flash returns the transient status line.
func (d *TestDriver) Flash() string {
	return d.appModel().flash
}

// Expanded returns the active expanded view, or nil when compact.
func (d *TestDriver) Expanded() *expandedView {
	v, _ := d.appModel().active.(*expandedView)
	return v
}

// Compact returns the active compact view, or nil when expanded.
func (d *TestDriver) Compact() *compactView {
	v, _ := d.appModel().active.(*compactView)
	return v
}

// Timer returns the timer model behind the views.
func (d *TestDriver) Timer() *timer.Model {
	return d.State().Timer
}
