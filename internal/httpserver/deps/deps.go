package deps

import (
	"context"
	"time"

	"github.com/MrSnakeDoc/launchdeck/internal/bookmarks"
	"github.com/MrSnakeDoc/launchdeck/internal/domain"
	"github.com/MrSnakeDoc/launchdeck/internal/logger"
	"github.com/MrSnakeDoc/launchdeck/internal/scheduler"
	"github.com/MrSnakeDoc/launchdeck/internal/service"
	"github.com/MrSnakeDoc/launchdeck/internal/store"
)

// LaunchService is the fetch-with-fallback layer.
type LaunchService interface {
	FetchLaunches(ctx context.Context) ([]domain.Launch, error)
	FetchLaunch(ctx context.Context, id string) (domain.Launch, error)
	FetchNextLaunch(ctx context.Context) (domain.Launch, error)
	FetchLatestLaunch(ctx context.Context) (domain.Launch, error)
	FetchAll(ctx context.Context) (service.Snapshot, error)
	LastRefresh() time.Time
}

// BookmarkStore manages the bookmarked launch IDs.
type BookmarkStore interface {
	Bookmarks(ctx context.Context) bookmarks.Set
	Toggle(ctx context.Context, id string) (bookmarks.Set, error)
}

// MissionSource exposes the ongoing missions and their elapsed counters.
type MissionSource interface {
	Missions() []domain.Mission
}

// RefreshStatus reports the last background refresh.
type RefreshStatus interface {
	Last() scheduler.Result
}

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	TimeNow   func() time.Time // for testing, defaults to time.Now

	Launches         LaunchService
	Bookmarks        BookmarkStore
	Missions         MissionSource
	Store            store.KV      // pinged by /readyz and /infra
	StoreKind        string        // "redis" | "memory"
	Refresher        RefreshStatus // nil when the refresher is not running
	RefreshTrigger   chan struct{} // manual refresh, buffered by one
	PlaceholderImage string

	RequestTimeout   time.Duration // per-request deadline
	AllowedHosts     []string      // Host headers allowed to access the server
	AllowedCIDRS     []string      // IPs allowed on operational endpoints
	TrustProxy       bool          // true if running behind a trusted reverse proxy
	RateBurst        int
	RateRefillPerMin int
}

// Now returns d.TimeNow() or time.Now().
func (d Deps) Now() time.Time {
	if d.TimeNow != nil {
		return d.TimeNow()
	}
	return time.Now()
}
