package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/MrSnakeDoc/launchdeck/internal/logger"
	"github.com/MrSnakeDoc/launchdeck/internal/service"
)

// Fetcher is the part of the launch service the refresher drives.
type Fetcher interface {
	FetchAll(ctx context.Context) (service.Snapshot, error)
}

// Refresher keeps the cached snapshot warm by calling FetchAll on an
// interval and whenever the trigger channel fires.
type Refresher struct {
	fetcher       Fetcher
	logger        logger.Logger
	interval      time.Duration
	manualTrigger <-chan struct{}

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu   sync.RWMutex
	last Result
}

// Result describes the outcome of the most recent refresh.
type Result struct {
	At        time.Time     `json:"at"`
	Duration  time.Duration `json:"duration"`
	Launches  int           `json:"launches"`
	HasNext   bool          `json:"has_next"`
	HasLatest bool          `json:"has_latest"`
	Err       string        `json:"error,omitempty"`
}

// NewRefresher creates a refresher. An interval of zero disables periodic
// refreshes; the manual trigger keeps working.
func NewRefresher(fetcher Fetcher, log logger.Logger, interval time.Duration, manualTrigger <-chan struct{}) *Refresher {
	return &Refresher{
		fetcher:       fetcher,
		logger:        log,
		interval:      interval,
		manualTrigger: manualTrigger,
		stopCh:        make(chan struct{}),
	}
}

// Start runs one refresh immediately, then loops in the background. A failed
// first refresh is logged, not returned: the API may be down while a cached
// snapshot still serves.
func (r *Refresher) Start(ctx context.Context) {
	r.Refresh(ctx)

	var ticker *time.Ticker
	var tick <-chan time.Time
	if r.interval > 0 {
		ticker = time.NewTicker(r.interval)
		tick = ticker.C
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		if ticker != nil {
			defer ticker.Stop()
		}
		r.loop(ctx, tick)
	}()
}

func (r *Refresher) loop(ctx context.Context, tick <-chan time.Time) {
	for {
		select {
		case <-tick:
			r.Refresh(ctx)
		case <-r.manualTrigger:
			r.logger.Info("manual refresh triggered")
			r.Refresh(ctx)
		case <-r.stopCh:
			return
		case <-ctx.Done():
			return
		}
	}
}

// Stop ends the loop and waits for an in-flight refresh to finish.
func (r *Refresher) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
	r.wg.Wait()
}

// Refresh runs FetchAll once and records the result.
func (r *Refresher) Refresh(ctx context.Context) Result {
	start := time.Now()
	snap, err := r.fetcher.FetchAll(ctx)

	res := Result{At: start, Duration: time.Since(start)}
	if err != nil {
		res.Err = err.Error()
		r.logger.Warn("launch refresh failed", logger.Error(err))
	} else {
		res.Launches = len(snap.Launches)
		res.HasNext = snap.Next != nil
		res.HasLatest = snap.Latest != nil
		r.logger.Info("launches refreshed",
			logger.Int("count", res.Launches),
			logger.Bool("has_next", res.HasNext),
			logger.Bool("has_latest", res.HasLatest),
			logger.Duration("took", res.Duration))
	}

	r.mu.Lock()
	r.last = res
	r.mu.Unlock()
	return res
}

// Last returns the most recent result, zero before the first refresh.
func (r *Refresher) Last() Result {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.last
}
