package timer

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Loop is a Scheduler backed by time.Ticker. Ticker goroutines never run
// callbacks themselves; they enqueue them, and Run executes the queue on the
// caller's goroutine so every Model mutation happens on one goroutine.
type Loop struct {
	queue chan func()
	wg    sync.WaitGroup
}

// NewLoop creates a Loop with the given queue capacity.
func NewLoop(buffer int) *Loop {
	if buffer <= 0 {
		buffer = 16
	}
	return &Loop{queue: make(chan func(), buffer)}
}

func (l *Loop) Schedule(interval time.Duration, fn func()) Cancel {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	var cancelled atomic.Bool

	// A tick enqueued before Cancel must not fire after it.
	guarded := func() {
		if !cancelled.Load() {
			fn()
		}
	}

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		for {
			select {
			case <-ticker.C:
				select {
				case l.queue <- guarded:
				case <-done:
					return
				}
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancelled.Store(true)
			ticker.Stop()
			close(done)
		})
	}
}

// Post enqueues fn to run on the loop goroutine.
func (l *Loop) Post(ctx context.Context, fn func()) error {
	select {
	case l.queue <- fn:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run executes queued callbacks until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case fn := <-l.queue:
			fn()
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Wait blocks until every ticker goroutine has exited. Callers must cancel
// all scheduled callbacks first.
func (l *Loop) Wait() {
	l.wg.Wait()
}
