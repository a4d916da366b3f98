package scheduler

import (
	"context"
	"sync"
	"time"
)

// Ticker owns one goroutine that calls fn on every tick. Calls never
// overlap: a slow fn delays the next tick instead of running concurrently.
type Ticker struct {
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewTicker creates a stopped ticker. Non-positive intervals default to one
// second.
func NewTicker(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = time.Second
	}
	return &Ticker{interval: interval}
}

// Start launches the loop. It is a no-op when already running.
func (t *Ticker) Start(ctx context.Context, fn func(now time.Time)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	t.cancel = cancel
	t.done = done

	go func() {
		defer close(done)
		tk := time.NewTicker(t.interval)
		defer tk.Stop()

		for {
			select {
			case now := <-tk.C:
				fn(now)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop cancels the loop and waits for the goroutine to exit. After Stop
// returns fn is not called again. Stop on a stopped ticker is a no-op.
func (t *Ticker) Stop() {
	t.mu.Lock()
	cancel, done := t.cancel, t.done
	t.cancel, t.done = nil, nil
	t.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}
