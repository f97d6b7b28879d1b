package cli

import (
	"sync"
	"time"

	"github.com/alexanderramin/pomonotch/internal/timer"
	tea "github.com/charmbracelet/bubbletea"
)

// schedulerTickMsg carries one tick of a scheduled callback into Update.
type schedulerTickMsg struct {
	id int
}

// teaScheduler implements timer.Scheduler for the TUI. Ticker goroutines only
// send messages; the callback runs when appModel.Update dispatches the
// message, so the timer is only ever touched on the bubbletea goroutine.
type teaScheduler struct {
	mu        sync.Mutex
	send      func(tea.Msg)
	nextID    int
	callbacks map[int]func()
}

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{callbacks: make(map[int]func())}
}

// Attach sets the function ticks are delivered through, normally tea.Program.Send.
func (s *teaScheduler) Attach(send func(tea.Msg)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.send = send
}

func (s *teaScheduler) Schedule(interval time.Duration, fn func()) timer.Cancel {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.callbacks[id] = fn
	s.mu.Unlock()

	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				s.mu.Lock()
				send := s.send
				s.mu.Unlock()
				if send != nil {
					send(schedulerTickMsg{id: id})
				}
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			ticker.Stop()
			close(done)
			s.mu.Lock()
			delete(s.callbacks, id)
			s.mu.Unlock()
		})
	}
}

// Dispatch runs the callback for id. Ticks that arrive after their callback
// was cancelled are dropped.
func (s *teaScheduler) Dispatch(id int) {
	s.mu.Lock()
	fn := s.callbacks[id]
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}
