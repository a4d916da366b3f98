// Package app wires the configured components into a running server.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/MrSnakeDoc/launchdeck/internal/config"
	"github.com/MrSnakeDoc/launchdeck/internal/httpserver"
	"github.com/MrSnakeDoc/launchdeck/internal/httpserver/deps"
	"github.com/MrSnakeDoc/launchdeck/internal/logger"
	"github.com/MrSnakeDoc/launchdeck/internal/scheduler"
	"github.com/MrSnakeDoc/launchdeck/internal/version"
)

type App struct {
	core      *Core
	server    *httpserver.Server
	refresher *scheduler.Refresher
	clock     *scheduler.MissionClock
}

// New builds the server and its background jobs on top of a fresh Core.
func New(ctx context.Context, cfg *config.Config, log logger.Logger) (*App, error) {
	core, err := NewCore(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	trigger := make(chan struct{}, 1)
	refresher := scheduler.NewRefresher(core.Launches, log.With(logger.String("component", "refresher")), cfg.RefreshInterval, trigger)
	clock := scheduler.NewMissionClock(core.Missions, time.Second)

	d := deps.Deps{
		Logger:           log,
		StartTime:        time.Now(),
		Version:          version.Version,
		Commit:           version.Commit,
		BuildDate:        version.BuildDate,
		GoVersion:        version.GoVersion,
		TimeNow:          time.Now,
		Launches:         core.Launches,
		Bookmarks:        core.Bookmarks,
		Missions:         clock,
		Store:            core.Store,
		StoreKind:        cfg.Store,
		Refresher:        refresher,
		RefreshTrigger:   trigger,
		PlaceholderImage: cfg.PlaceholderImage,
		AllowedHosts:     cfg.AllowedHosts,
		AllowedCIDRS:     cfg.AllowedCIDRS,
		TrustProxy:       cfg.TrustProxy,
		RateBurst:        cfg.RateBurst,
		RateRefillPerMin: cfg.RateRefillPerMin,
	}

	return &App{
		core:      core,
		server:    httpserver.New(cfg.ListenPort, d),
		refresher: refresher,
		clock:     clock,
	}, nil
}

// Run serves until ctx is cancelled or the server fails, then shuts every
// component down in reverse order.
func (a *App) Run(ctx context.Context) error {
	log := a.core.Logger
	cfg := a.core.Config
	log.Info("🚀 starting "+version.String(), logger.String("addr", cfg.ListenPort))

	a.refresher.Start(ctx)
	log.Info("launch refresher started", logger.Duration("interval", cfg.RefreshInterval))
	a.clock.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		log.Info("⏳ shutting down gracefully...")
	case runErr = <-errCh:
	}

	a.refresher.Stop()
	a.clock.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil && runErr == nil {
		runErr = fmt.Errorf("failed to stop server: %w", err)
	}

	a.core.Close()
	if runErr == nil {
		log.Info("✅ launchdeck stopped cleanly")
	}
	return runErr
}
