// Package service fetches launch data live and falls back to the last
// known-good snapshot when the API cannot be reached.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/MrSnakeDoc/launchdeck/internal/domain"
	"github.com/MrSnakeDoc/launchdeck/internal/logger"
	"golang.org/x/sync/errgroup"
)

// Source is the remote side of the service.
type Source interface {
	Launches(ctx context.Context) ([]domain.Launch, error)
	Launch(ctx context.Context, id string) (domain.Launch, error)
	Next(ctx context.Context) (domain.Launch, error)
	Latest(ctx context.Context) (domain.Launch, error)
}

// Cache is the last known-good side of the service.
type Cache interface {
	SaveLaunches(ctx context.Context, launches []domain.Launch) error
	Launches(ctx context.Context) ([]domain.Launch, bool)
	SaveNext(ctx context.Context, l domain.Launch) error
	Next(ctx context.Context) (domain.Launch, bool)
	SaveLatest(ctx context.Context, l domain.Launch) error
	Latest(ctx context.Context) (domain.Launch, bool)
}

// Snapshot is the aggregate returned by FetchAll. Next and Latest are nil
// when neither the API nor the cache could provide them.
type Snapshot struct {
	Launches  []domain.Launch `json:"launches"`
	Next      *domain.Launch  `json:"next"`
	Latest    *domain.Launch  `json:"latest"`
	FetchedAt time.Time       `json:"fetched_at"`
}

// Launches orchestrates Source and Cache. Every error it returns is a
// *domain.Error of kind DataUnavailable.
type Launches struct {
	source Source
	cache  Cache
	log    logger.Logger

	// Now is the reference clock for deriving next/latest from the cache.
	Now func() time.Time

	mu          sync.RWMutex
	lastRefresh time.Time
}

// New wires a service.
func New(source Source, cache Cache, log logger.Logger) *Launches {
	return &Launches{
		source: source,
		cache:  cache,
		log:    log,
		Now:    time.Now,
	}
}

// FetchLaunches returns the live list, caching it, or the cached list when
// the API fails.
func (s *Launches) FetchLaunches(ctx context.Context) ([]domain.Launch, error) {
	launches, err := s.source.Launches(ctx)
	if err == nil {
		if err := s.cache.SaveLaunches(ctx, launches); err != nil {
			s.log.Warn("failed to cache launches", logger.Error(err))
		}
		s.markRefreshed()
		return launches, nil
	}

	s.log.Warn("launch list fetch failed, falling back to cache", logger.Error(err))
	if cached, ok := s.cache.Launches(ctx); ok {
		return cached, nil
	}
	return nil, domain.NewError(domain.DataUnavailable, "service.FetchLaunches", err)
}

// FetchLaunch returns one launch live, or from the cached list.
func (s *Launches) FetchLaunch(ctx context.Context, id string) (domain.Launch, error) {
	l, err := s.source.Launch(ctx, id)
	if err == nil {
		return l, nil
	}

	s.log.Warn("launch fetch failed, searching cached list",
		logger.String("id", id),
		logger.Error(err))
	if cached, ok := s.cache.Launches(ctx); ok {
		if l, found := domain.FindByID(cached, id); found {
			return l, nil
		}
	}
	return domain.Launch{}, domain.NewError(domain.DataUnavailable, "service.FetchLaunch", err)
}

// FetchNextLaunch returns the next launch from the API, then its cache
// entry, then the earliest cached launch strictly after now.
func (s *Launches) FetchNextLaunch(ctx context.Context) (domain.Launch, error) {
	l, err := s.source.Next(ctx)
	if err == nil {
		if err := s.cache.SaveNext(ctx, l); err != nil {
			s.log.Warn("failed to cache next launch", logger.Error(err))
		}
		return l, nil
	}

	s.log.Warn("next launch fetch failed, falling back to cache", logger.Error(err))
	if cached, ok := s.cache.Next(ctx); ok {
		return cached, nil
	}
	if all, ok := s.cache.Launches(ctx); ok {
		if derived, found := domain.NextAfter(all, s.Now()); found {
			return derived, nil
		}
	}
	return domain.Launch{}, domain.NewError(domain.DataUnavailable, "service.FetchNextLaunch", err)
}

// FetchLatestLaunch mirrors FetchNextLaunch for the most recent launch at or
// before now.
func (s *Launches) FetchLatestLaunch(ctx context.Context) (domain.Launch, error) {
	l, err := s.source.Latest(ctx)
	if err == nil {
		if err := s.cache.SaveLatest(ctx, l); err != nil {
			s.log.Warn("failed to cache latest launch", logger.Error(err))
		}
		return l, nil
	}

	s.log.Warn("latest launch fetch failed, falling back to cache", logger.Error(err))
	if cached, ok := s.cache.Latest(ctx); ok {
		return cached, nil
	}
	if all, ok := s.cache.Launches(ctx); ok {
		if derived, found := domain.LatestUntil(all, s.Now()); found {
			return derived, nil
		}
	}
	return domain.Launch{}, domain.NewError(domain.DataUnavailable, "service.FetchLatestLaunch", err)
}

// FetchAll runs the three fetches concurrently. Only a failure of the list
// fails the aggregate; next and latest degrade to nil.
func (s *Launches) FetchAll(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		launches, err := s.FetchLaunches(gctx)
		if err != nil {
			return err
		}
		snap.Launches = launches
		return nil
	})

	// The optional fetches use the parent context so a list failure does not
	// cancel them mid-flight.
	g.Go(func() error {
		if l, err := s.FetchNextLaunch(ctx); err == nil {
			snap.Next = &l
		} else {
			s.log.Warn("next launch unavailable", logger.Error(err))
		}
		return nil
	})
	g.Go(func() error {
		if l, err := s.FetchLatestLaunch(ctx); err == nil {
			snap.Latest = &l
		} else {
			s.log.Warn("latest launch unavailable", logger.Error(err))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}
	snap.FetchedAt = s.Now()
	return snap, nil
}

// LastRefresh returns when the launch list was last fetched live, zero if
// never.
func (s *Launches) LastRefresh() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastRefresh
}

func (s *Launches) markRefreshed() {
	s.mu.Lock()
	s.lastRefresh = s.Now()
	s.mu.Unlock()
}
