package timer

import (
	"sync"
	"time"
)

// Cancel stops a scheduled callback. Calling it more than once is safe.
type Cancel func()

// Scheduler registers periodic callbacks. Implementations must invoke fn on
// the same goroutine that drives the Model; the Model does no locking.
type Scheduler interface {
	Schedule(interval time.Duration, fn func()) Cancel
}

// ManualScheduler fires callbacks only when Advance is called. It lets tests
// drive a countdown without waiting on the wall clock.
type ManualScheduler struct {
	mu      sync.Mutex
	nextID  int
	entries []*manualEntry
}

type manualEntry struct {
	id       int
	interval time.Duration
	fn       func()
	active   bool
}

// NewManualScheduler returns an empty ManualScheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) Schedule(interval time.Duration, fn func()) Cancel {
	s.mu.Lock()
	s.nextID++
	e := &manualEntry{id: s.nextID, interval: interval, fn: fn, active: true}
	s.entries = append(s.entries, e)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		e.active = false
		s.compactLocked()
	}
}

// Advance fires every active callback n times, one round per tick.
// Callbacks scheduled during a round first fire on the following round.
func (s *ManualScheduler) Advance(n int) {
	for i := 0; i < n; i++ {
		s.mu.Lock()
		round := make([]*manualEntry, len(s.entries))
		copy(round, s.entries)
		s.mu.Unlock()

		for _, e := range round {
			s.mu.Lock()
			active := e.active
			s.mu.Unlock()
			if active {
				e.fn()
			}
		}
	}
}

// Active returns the number of callbacks that have not been cancelled.
func (s *ManualScheduler) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Scheduled returns the total number of Schedule calls so far.
func (s *ManualScheduler) Scheduled() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextID
}

func (s *ManualScheduler) compactLocked() {
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.active {
			kept = append(kept, e)
		}
	}
	s.entries = kept
}
