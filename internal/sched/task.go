// Package sched provides cancellable repeating tasks.
package sched

import (
	"context"
	"sync"
	"time"
)

// Task calls fn every interval on its own goroutine between Start and Stop.
type Task struct {
	interval time.Duration
	fn       func(ctx context.Context, now time.Time)

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewTask creates a stopped task. The context passed to fn is cancelled
// when the task stops, so a blocked fn can bail out.
func NewTask(interval time.Duration, fn func(ctx context.Context, now time.Time)) *Task {
	return &Task{
		interval: interval,
		fn:       fn,
	}
}

// Start begins the repeating loop. Starting a running task is a no-op.
func (t *Task) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel
	t.done = make(chan struct{})
	go t.loop(ctx, t.done)
}

// Stop cancels the loop without waiting for it to exit. It is safe to call
// from the goroutine that fn posts to.
func (t *Task) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel == nil {
		return
	}
	t.cancel()
	t.cancel = nil
}

// Running reports whether the task has been started and not stopped.
func (t *Task) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancel != nil
}

// Wait blocks until the most recently started loop has exited.
func (t *Task) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done != nil {
		<-done
	}
}

func (t *Task) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			// A tick and a cancel can be ready together; cancel wins.
			if ctx.Err() != nil {
				return
			}
			t.fn(ctx, now)
		}
	}
}
