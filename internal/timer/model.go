package timer

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/alexanderramin/pomonotch/internal/domain"
)

// TickInterval is the countdown resolution.
const TickInterval = time.Second

// Snapshot is an immutable copy of the Model's observable fields.
type Snapshot struct {
	State     domain.TimerState
	Remaining int
	Completed int
	Running   bool
	Settings  domain.Settings
}

// Progress returns the elapsed fraction of the current interval in [0, 1].
func (s Snapshot) Progress() float64 {
	total := s.Settings.DurationFor(s.State)
	if total <= 0 {
		return 0
	}
	p := 1 - float64(s.Remaining)/float64(total)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Model is the Pomodoro state machine. It is not safe for concurrent use:
// all calls, including scheduler callbacks, must come from one goroutine.
type Model struct {
	store     SettingsStore
	scheduler Scheduler
	logger    *slog.Logger

	settings  domain.Settings
	state     domain.TimerState
	remaining int
	completed int
	running   bool
	cancel    Cancel

	subs    map[int]func(Snapshot)
	nextSub int
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger used for transitions and swallowed store errors.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithSettings replaces the default settings the Model starts with.
func WithSettings(s domain.Settings) Option {
	return func(m *Model) { m.settings = s }
}

// New creates an idle Model with default settings.
func New(store SettingsStore, scheduler Scheduler, opts ...Option) *Model {
	m := &Model{
		store:     store,
		scheduler: scheduler,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		settings:  domain.DefaultSettings(),
		state:     domain.StateIdle,
		subs:      make(map[int]func(Snapshot)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ── observation ──────────────────────────────────────────────────────────────

// Snapshot returns the current observable state.
func (m *Model) Snapshot() Snapshot {
	return Snapshot{
		State:     m.state,
		Remaining: m.remaining,
		Completed: m.completed,
		Running:   m.running,
		Settings:  m.settings,
	}
}

// Subscribe registers fn to receive a Snapshot after every observable change.
// The returned func removes the subscription.
func (m *Model) Subscribe(fn func(Snapshot)) func() {
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	return func() { delete(m.subs, id) }
}

func (m *Model) notify() {
	snap := m.Snapshot()
	for _, fn := range m.subs {
		fn(snap)
	}
}

func (m *Model) State() domain.TimerState { return m.state }
func (m *Model) Remaining() int           { return m.remaining }
func (m *Model) Completed() int           { return m.completed }
func (m *Model) Running() bool            { return m.running }

// Settings returns a copy of the active settings.
func (m *Model) Settings() domain.Settings { return m.settings }

// UpdateSettings edits the in-memory settings. Nothing is persisted until
// SaveSettings is called.
func (m *Model) UpdateSettings(fn func(*domain.Settings)) {
	fn(&m.settings)
	m.notify()
}

// ── controls ─────────────────────────────────────────────────────────────────

// Start begins a work session. Calling it during a work session restarts the
// work countdown from the full duration rather than resuming.
func (m *Model) Start() {
	m.transition(domain.StateWork, m.settings.WorkDuration)
	m.beginCountdown()
	m.notify()
}

// Pause stops the countdown, keeping state and remaining time.
func (m *Model) Pause() {
	if !m.running && m.cancel == nil {
		return
	}
	m.stop()
	m.logger.Debug("timer paused", "state", m.state, "remaining", m.remaining)
	m.notify()
}

// Reset stops the countdown and clears the session, including the completed count.
func (m *Model) Reset() {
	m.stop()
	m.state = domain.StateIdle
	m.remaining = 0
	m.completed = 0
	m.logger.Debug("timer reset")
	m.notify()
}

// ── countdown ────────────────────────────────────────────────────────────────

func (m *Model) stop() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.running = false
}

func (m *Model) transition(to domain.TimerState, remaining int) {
	m.logger.Debug("timer transition", "from", m.state, "to", to, "remaining", remaining)
	m.state = to
	m.remaining = remaining
}

// beginCountdown replaces any active callback. A non-positive remaining time
// completes the interval immediately.
func (m *Model) beginCountdown() {
	m.stop()
	if m.remaining <= 0 {
		m.complete()
		return
	}
	m.cancel = m.scheduler.Schedule(TickInterval, m.tick)
	m.running = true
}

func (m *Model) tick() {
	if m.remaining > 0 {
		m.remaining--
	}
	if m.remaining <= 0 {
		m.complete()
	}
	m.notify()
}

func (m *Model) complete() {
	m.stop()
	switch m.state {
	case domain.StateWork:
		m.completed++
		cadence := max(m.settings.SessionsBeforeLongBreak, 1)
		if m.completed%cadence == 0 {
			m.transition(domain.StateLongBreak, m.settings.LongBreakDuration)
		} else {
			m.transition(domain.StateShortBreak, m.settings.ShortBreakDuration)
		}
		m.logger.Info("work session completed", "completed", m.completed, "next", m.state)
		m.beginCountdown()
	case domain.StateShortBreak, domain.StateLongBreak:
		m.logger.Info("break completed", "state", m.state)
		m.transition(domain.StateIdle, 0)
	case domain.StateIdle:
	}
}

// ── persistence ──────────────────────────────────────────────────────────────

// LoadSettings replaces the settings with the stored record, if any. During a
// work session the remaining time is resynced to the new work duration; break
// countdowns keep their remaining time. Read and decode failures leave the
// settings unchanged.
func (m *Model) LoadSettings(ctx context.Context) {
	data, err := m.store.Get(ctx, SettingsKey)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			m.logger.Warn("loading settings", "error", err)
		}
		return
	}

	var loaded domain.Settings
	if err := json.Unmarshal(data, &loaded); err != nil {
		m.logger.Warn("decoding settings", "error", err)
		return
	}
	if err := loaded.Validate(); err != nil {
		m.logger.Warn("ignoring stored settings", "error", err)
		return
	}

	m.settings = loaded
	if m.state == domain.StateWork {
		m.remaining = m.settings.WorkDuration
	}
	m.notify()
}

// SaveSettings persists the current settings. Failures are logged and dropped.
func (m *Model) SaveSettings(ctx context.Context) {
	data, err := json.Marshal(m.settings)
	if err != nil {
		m.logger.Warn("encoding settings", "error", err)
		return
	}
	if err := m.store.Set(ctx, SettingsKey, data); err != nil {
		m.logger.Warn("saving settings", "error", err)
	}
}
