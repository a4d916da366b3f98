package app

import (
	"context"
	"fmt"

	"github.com/MrSnakeDoc/launchdeck/internal/bookmarks"
	"github.com/MrSnakeDoc/launchdeck/internal/cache"
	"github.com/MrSnakeDoc/launchdeck/internal/config"
	"github.com/MrSnakeDoc/launchdeck/internal/domain"
	"github.com/MrSnakeDoc/launchdeck/internal/logger"
	"github.com/MrSnakeDoc/launchdeck/internal/service"
	"github.com/MrSnakeDoc/launchdeck/internal/sources/missions"
	"github.com/MrSnakeDoc/launchdeck/internal/sources/spacex"
	"github.com/MrSnakeDoc/launchdeck/internal/store"
	"github.com/MrSnakeDoc/launchdeck/internal/store/memory"
	redisstore "github.com/MrSnakeDoc/launchdeck/internal/store/redis"
)

// Core is everything both the server and the CLI commands need: the store,
// the fetch-with-fallback service and the bookmarks.
type Core struct {
	Config    *config.Config
	Logger    logger.Logger
	Store     store.KV
	Launches  *service.Launches
	Bookmarks *bookmarks.Store
	Missions  []domain.Mission
}

// NewCore opens the configured store and wires the service on top of it.
// Callers must Close the returned Core.
func NewCore(ctx context.Context, cfg *config.Config, log logger.Logger) (*Core, error) {
	kv, err := openStore(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	client := spacex.NewClient(spacex.Config{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.APITimeout,
		RPS:     cfg.APIRPS,
		Burst:   cfg.APIBurst,
	})
	svc := service.New(client, cache.New(kv, log), log.With(logger.String("component", "service")))

	return &Core{
		Config:    cfg,
		Logger:    log,
		Store:     kv,
		Launches:  svc,
		Bookmarks: bookmarks.New(kv, log),
		Missions:  loadMissions(cfg.MissionsFile, log),
	}, nil
}

// Close releases the store.
func (c *Core) Close() {
	if err := c.Store.Close(); err != nil {
		c.Logger.Warn("failed to close store", logger.Error(err))
		return
	}
	c.Logger.Debug("store closed", logger.String("kind", c.Config.Store))
}

func openStore(ctx context.Context, cfg *config.Config, log logger.Logger) (store.KV, error) {
	if cfg.Store == config.StoreMemory {
		log.Info("using in-memory store, cached launches and bookmarks are lost on exit")
		return memory.NewStore(), nil
	}

	kv, err := redisstore.Connect(ctx, redisstore.ConnectOptions{
		Addr:           cfg.RedisAddr,
		User:           cfg.RedisUser,
		Password:       cfg.RedisPassword,
		DB:             cfg.RedisDB,
		DialTimeout:    cfg.RedisDT,
		ReadTimeout:    cfg.RedisRT,
		WriteTimeout:   cfg.RedisWT,
		PoolSize:       cfg.RedisPoolSize,
		ConnectTimeout: cfg.RedisConnectTimeout,
		RetryInterval:  cfg.RedisRetryInterval,
		MaxWait:        cfg.RedisMaxWait,
		PingTimeout:    cfg.RedisPingTimeout,
		WarnThreshold:  cfg.RedisWarnThreshold,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return kv, nil
}

// loadMissions reads the missions file, falling back to the built-in list
// when none is configured or it cannot be read.
func loadMissions(path string, log logger.Logger) []domain.Mission {
	if path == "" {
		return missions.Defaults()
	}

	list, err := missions.NewLoader(path).Load()
	if err != nil {
		log.Warn("failed to load missions file, using built-in list",
			logger.String("file", path),
			logger.Error(err))
		return missions.Defaults()
	}
	log.Info("missions loaded", logger.String("file", path), logger.Int("count", len(list)))
	return list
}
