package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MrSnakeDoc/launchdeck/internal/cache"
	"github.com/MrSnakeDoc/launchdeck/internal/domain"
	"github.com/MrSnakeDoc/launchdeck/internal/logger"
	"github.com/MrSnakeDoc/launchdeck/internal/store"
	"github.com/MrSnakeDoc/launchdeck/internal/store/memory"
	"github.com/google/go-cmp/cmp"
)

var errOffline = domain.NewError(domain.TransportError, "fake", errors.New("network unreachable"))

// fakeSource serves fixed data until failing is set.
type fakeSource struct {
	mu       sync.Mutex
	failing  bool
	launches []domain.Launch
	next     domain.Launch
	latest   domain.Launch
	calls    int
}

func (f *fakeSource) setFailing(v bool) {
	f.mu.Lock()
	f.failing = v
	f.mu.Unlock()
}

func (f *fakeSource) fail() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.failing
}

func (f *fakeSource) Launches(context.Context) ([]domain.Launch, error) {
	if f.fail() {
		return nil, errOffline
	}
	return f.launches, nil
}

func (f *fakeSource) Launch(_ context.Context, id string) (domain.Launch, error) {
	if f.fail() {
		return domain.Launch{}, errOffline
	}
	if l, ok := domain.FindByID(f.launches, id); ok {
		return l, nil
	}
	return domain.Launch{}, domain.NewError(domain.TransportError, "fake", errors.New("status 404"))
}

func (f *fakeSource) Next(context.Context) (domain.Launch, error) {
	if f.fail() {
		return domain.Launch{}, errOffline
	}
	return f.next, nil
}

func (f *fakeSource) Latest(context.Context) (domain.Launch, error) {
	if f.fail() {
		return domain.Launch{}, errOffline
	}
	return f.latest, nil
}

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestService(src Source) (*Launches, *memory.Store) {
	kv := memory.NewStore()
	svc := New(src, cache.New(kv, logger.Nop()), logger.Nop())
	svc.Now = func() time.Time { return now }
	return svc, kv
}

func threeLaunches() []domain.Launch {
	return []domain.Launch{
		{ID: "1", Name: "Alpha", DateUTC: now.Add(-time.Hour)},
		{ID: "2", Name: "Bravo", DateUTC: now.Add(5 * time.Hour)},
		{ID: "3", Name: "Charlie", DateUTC: now.Add(10 * time.Hour)},
	}
}

func TestFetchLaunchesCachesThenFallsBack(t *testing.T) {
	ctx := context.Background()
	src := &fakeSource{launches: threeLaunches()}
	svc, kv := newTestService(src)

	got, err := svc.FetchLaunches(ctx)
	if err != nil {
		t.Fatalf("FetchLaunches() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("FetchLaunches() returned %d launches, want 3", len(got))
	}
	if _, ok, _ := kv.Get(ctx, store.KeyLaunches); !ok {
		t.Errorf("launch list was not cached")
	}
	if !svc.LastRefresh().Equal(now) {
		t.Errorf("LastRefresh() = %v, want %v", svc.LastRefresh(), now)
	}

	src.setFailing(true)
	fallback, err := svc.FetchLaunches(ctx)
	if err != nil {
		t.Fatalf("FetchLaunches() with API down error = %v", err)
	}
	if diff := cmp.Diff(got, fallback); diff != "" {
		t.Errorf("cached launches differ from fetched (-fetched +cached):\n%s", diff)
	}
}

func TestFetchLaunchesNoCache(t *testing.T) {
	svc, _ := newTestService(&fakeSource{failing: true})

	_, err := svc.FetchLaunches(context.Background())
	if !errors.Is(err, domain.ErrDataUnavailable) {
		t.Errorf("FetchLaunches() error = %v, want DataUnavailable", err)
	}
	if errors.Is(err, domain.ErrTransport) {
		t.Errorf("FetchLaunches() leaked the transport kind: %v", err)
	}
}

func TestFetchLaunchesCorruptCache(t *testing.T) {
	ctx := context.Background()
	svc, kv := newTestService(&fakeSource{failing: true})
	_ = kv.Set(ctx, store.KeyLaunches, `{{{`)

	if _, err := svc.FetchLaunches(ctx); !errors.Is(err, domain.ErrDataUnavailable) {
		t.Errorf("FetchLaunches() with corrupt cache error = %v, want DataUnavailable", err)
	}
}

func TestFetchLaunch(t *testing.T) {
	ctx := context.Background()
	src := &fakeSource{launches: threeLaunches()}
	svc, _ := newTestService(src)

	l, err := svc.FetchLaunch(ctx, "2")
	if err != nil || l.Name != "Bravo" {
		t.Fatalf("FetchLaunch() = %q, %v", l.Name, err)
	}

	// Nothing cached yet.
	src.setFailing(true)
	if _, err := svc.FetchLaunch(ctx, "2"); !errors.Is(err, domain.ErrDataUnavailable) {
		t.Errorf("FetchLaunch() without cache error = %v, want DataUnavailable", err)
	}

	src.setFailing(false)
	_, _ = svc.FetchLaunches(ctx)
	src.setFailing(true)

	l, err = svc.FetchLaunch(ctx, "3")
	if err != nil || l.Name != "Charlie" {
		t.Errorf("FetchLaunch() from cache = %q, %v", l.Name, err)
	}
	if _, err := svc.FetchLaunch(ctx, "missing"); !errors.Is(err, domain.ErrDataUnavailable) {
		t.Errorf("FetchLaunch(missing) error = %v, want DataUnavailable", err)
	}
}

func TestFetchNextLaunchFallbacks(t *testing.T) {
	ctx := context.Background()

	t.Run("derived from cached list", func(t *testing.T) {
		svc, kv := newTestService(&fakeSource{failing: true})
		_ = cache.New(kv, logger.Nop()).SaveLaunches(ctx, []domain.Launch{
			{ID: "t+10", DateUTC: now.Add(10 * time.Hour)},
			{ID: "t-1", DateUTC: now.Add(-time.Hour)},
			{ID: "t+5", DateUTC: now.Add(5 * time.Hour)},
		})

		l, err := svc.FetchNextLaunch(ctx)
		if err != nil {
			t.Fatalf("FetchNextLaunch() error = %v", err)
		}
		if l.ID != "t+5" {
			t.Errorf("FetchNextLaunch() = %q, want t+5", l.ID)
		}
	})

	t.Run("dedicated entry wins", func(t *testing.T) {
		src := &fakeSource{launches: threeLaunches(), next: domain.Launch{ID: "api-next"}}
		svc, _ := newTestService(src)
		_, _ = svc.FetchLaunches(ctx)
		_, _ = svc.FetchNextLaunch(ctx)

		src.setFailing(true)
		l, err := svc.FetchNextLaunch(ctx)
		if err != nil || l.ID != "api-next" {
			t.Errorf("FetchNextLaunch() = %q, %v; want api-next", l.ID, err)
		}
	})

	t.Run("only past launches cached", func(t *testing.T) {
		svc, kv := newTestService(&fakeSource{failing: true})
		_ = cache.New(kv, logger.Nop()).SaveLaunches(ctx, []domain.Launch{
			{ID: "old", DateUTC: now.Add(-time.Hour)},
		})

		if _, err := svc.FetchNextLaunch(ctx); !errors.Is(err, domain.ErrDataUnavailable) {
			t.Errorf("FetchNextLaunch() error = %v, want DataUnavailable", err)
		}
	})
}

func TestFetchLatestLaunchFallbacks(t *testing.T) {
	ctx := context.Background()
	svc, kv := newTestService(&fakeSource{failing: true})

	if _, err := svc.FetchLatestLaunch(ctx); !errors.Is(err, domain.ErrDataUnavailable) {
		t.Errorf("FetchLatestLaunch() with empty cache error = %v", err)
	}

	_ = cache.New(kv, logger.Nop()).SaveLaunches(ctx, []domain.Launch{
		{ID: "t-3", DateUTC: now.Add(-3 * time.Hour)},
		{ID: "t0", DateUTC: now},
		{ID: "t+1", DateUTC: now.Add(time.Hour)},
	})

	l, err := svc.FetchLatestLaunch(ctx)
	if err != nil || l.ID != "t0" {
		t.Errorf("FetchLatestLaunch() = %q, %v; want t0", l.ID, err)
	}
}

func TestFetchAll(t *testing.T) {
	ctx := context.Background()
	launches := threeLaunches()
	src := &fakeSource{launches: launches, next: launches[1], latest: launches[0]}
	svc, _ := newTestService(src)

	snap, err := svc.FetchAll(ctx)
	if err != nil {
		t.Fatalf("FetchAll() error = %v", err)
	}
	if len(snap.Launches) != 3 || snap.Next == nil || snap.Latest == nil {
		t.Fatalf("FetchAll() = %+v", snap)
	}
	if snap.Next.ID != "2" || snap.Latest.ID != "1" {
		t.Errorf("FetchAll() next=%q latest=%q", snap.Next.ID, snap.Latest.ID)
	}
	if !snap.FetchedAt.Equal(now) {
		t.Errorf("FetchedAt = %v", snap.FetchedAt)
	}
}

// listOnlySource fails next/latest with nothing cached for them.
type listOnlySource struct{ fakeSource }

func (l *listOnlySource) Next(context.Context) (domain.Launch, error) {
	return domain.Launch{}, errOffline
}

func (l *listOnlySource) Latest(context.Context) (domain.Launch, error) {
	return domain.Launch{}, errOffline
}

func TestFetchAllDegrades(t *testing.T) {
	ctx := context.Background()

	t.Run("next and latest derived from fresh list", func(t *testing.T) {
		src := &listOnlySource{fakeSource{launches: threeLaunches()}}
		svc, _ := newTestService(src)

		snap, err := svc.FetchAll(ctx)
		if err != nil {
			t.Fatalf("FetchAll() error = %v", err)
		}
		if len(snap.Launches) != 3 {
			t.Errorf("FetchAll() launches = %d", len(snap.Launches))
		}
		// The list may or may not be cached before next/latest fall back,
		// so they are either derived or nil, never an error.
		if snap.Next != nil && snap.Next.ID != "2" {
			t.Errorf("FetchAll() next = %q", snap.Next.ID)
		}
	})

	t.Run("nothing available", func(t *testing.T) {
		src := &listOnlySource{fakeSource{launches: nil}}
		src.setFailing(true)
		svc, _ := newTestService(src)

		if _, err := svc.FetchAll(ctx); !errors.Is(err, domain.ErrDataUnavailable) {
			t.Errorf("FetchAll() error = %v, want DataUnavailable", err)
		}
	})

	t.Run("next and latest nil with empty list", func(t *testing.T) {
		src := &listOnlySource{fakeSource{launches: []domain.Launch{}}}
		svc, _ := newTestService(src)

		snap, err := svc.FetchAll(ctx)
		if err != nil {
			t.Fatalf("FetchAll() error = %v", err)
		}
		if snap.Next != nil || snap.Latest != nil {
			t.Errorf("FetchAll() next=%v latest=%v, want both nil", snap.Next, snap.Latest)
		}
	})
}
