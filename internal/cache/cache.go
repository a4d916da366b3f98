// Package cache persists the last successfully fetched launch data so it can
// be served when the API is unreachable.
package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MrSnakeDoc/launchdeck/internal/domain"
	"github.com/MrSnakeDoc/launchdeck/internal/logger"
	"github.com/MrSnakeDoc/launchdeck/internal/store"
)

// LaunchCache reads and writes the three launch snapshots.
//
// Reads never fail: a missing key, a backend error and an undecodable value
// are all reported as a miss, the latter two with a log line.
type LaunchCache struct {
	kv  store.KV
	log logger.Logger
}

// New binds a cache to kv.
func New(kv store.KV, log logger.Logger) *LaunchCache {
	return &LaunchCache{kv: kv, log: log}
}

// SaveLaunches overwrites the cached list.
func (c *LaunchCache) SaveLaunches(ctx context.Context, launches []domain.Launch) error {
	if launches == nil {
		launches = []domain.Launch{}
	}
	return c.save(ctx, store.KeyLaunches, launches)
}

// Launches returns the cached list.
func (c *LaunchCache) Launches(ctx context.Context) ([]domain.Launch, bool) {
	var launches []domain.Launch
	if !c.load(ctx, store.KeyLaunches, &launches) {
		return nil, false
	}
	return launches, true
}

// SaveNext overwrites the cached next launch.
func (c *LaunchCache) SaveNext(ctx context.Context, l domain.Launch) error {
	return c.save(ctx, store.KeyNextLaunch, l)
}

// Next returns the cached next launch.
func (c *LaunchCache) Next(ctx context.Context) (domain.Launch, bool) {
	var l domain.Launch
	ok := c.load(ctx, store.KeyNextLaunch, &l)
	return l, ok
}

// SaveLatest overwrites the cached latest launch.
func (c *LaunchCache) SaveLatest(ctx context.Context, l domain.Launch) error {
	return c.save(ctx, store.KeyLatestLaunch, l)
}

// Latest returns the cached latest launch.
func (c *LaunchCache) Latest(ctx context.Context) (domain.Launch, bool) {
	var l domain.Launch
	ok := c.load(ctx, store.KeyLatestLaunch, &l)
	return l, ok
}

func (c *LaunchCache) save(ctx context.Context, key store.Key, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := c.kv.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (c *LaunchCache) load(ctx context.Context, key store.Key, dst any) bool {
	raw, ok, err := c.kv.Get(ctx, key)
	if err != nil {
		c.log.Warn("cache read failed", logger.String("key", string(key)), logger.Error(err))
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		err = domain.NewError(domain.DeserializationError, "cache.load", err)
		c.log.Warn("cached value is corrupt, ignoring it",
			logger.String("key", string(key)),
			logger.Error(err))
		return false
	}
	return true
}
