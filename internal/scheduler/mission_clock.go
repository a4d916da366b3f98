package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/MrSnakeDoc/launchdeck/internal/domain"
)

// MissionClock advances the elapsed counter of every ongoing mission once
// per tick.
type MissionClock struct {
	ticker *Ticker

	mu       sync.RWMutex
	missions []domain.Mission
}

// NewMissionClock starts from the given counter states.
func NewMissionClock(missions []domain.Mission, interval time.Duration) *MissionClock {
	cp := make([]domain.Mission, len(missions))
	copy(cp, missions)
	return &MissionClock{ticker: NewTicker(interval), missions: cp}
}

// Start acquires the ticker.
func (c *MissionClock) Start(ctx context.Context) {
	c.ticker.Start(ctx, func(time.Time) { c.Advance() })
}

// Stop releases the ticker. No counter moves after Stop returns.
func (c *MissionClock) Stop() {
	c.ticker.Stop()
}

// Advance applies one tick to every mission.
func (c *MissionClock) Advance() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.missions {
		c.missions[i].Elapsed = domain.Tick(c.missions[i].Elapsed)
	}
}

// Missions returns a copy of the current state.
func (c *MissionClock) Missions() []domain.Mission {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Mission, len(c.missions))
	copy(out, c.missions)
	return out
}
