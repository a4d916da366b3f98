package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store backends.
const (
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	// SpaceX API
	APIBaseURL       string        // ex: https://api.spacexdata.com/v4
	APITimeout       time.Duration // per request
	APIRPS           float64       // outbound requests per second, 0 = unlimited
	APIBurst         int
	PlaceholderImage string        // patch image used when a launch has none
	RefreshInterval  time.Duration // background FetchAll period, 0 = disabled
	MissionsFile     string        // optional missions.yaml, empty = built-in list

	// Storage
	Store               string // "redis" | "memory"
	RedisAddr           string // ex: "localhost:6379", required when Store is redis
	RedisUser           string
	RedisPassword       string
	RedisDB             int
	RedisDT             time.Duration // dial timeout
	RedisRT             time.Duration // read timeout
	RedisWT             time.Duration // write timeout
	RedisMaxWait        time.Duration // max wait between retries
	RedisPingTimeout    time.Duration
	RedisPoolSize       int
	RedisConnectTimeout time.Duration // total time to retry connecting
	RedisRetryInterval  time.Duration // initial wait between retries, doubled each time
	RedisWarnThreshold  int

	// Access restrictions
	AllowedHosts     []string // optional, restrict Host headers
	AllowedCIDRS     []string // optional, guards POST /api/refresh
	TrustProxy       bool     // true => trust X-Forwarded-For / X-Real-IP
	RateBurst        int      // per-IP token bucket size
	RateRefillPerMin int      // per-IP tokens regained per minute
}

// Load reads .env (when present) then the environment. Invalid required
// values panic, like a misconfigured deployment should.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("[WARN] failed to read .env: %v", err)
	}

	cfg := &Config{
		ListenPort:      getenv("LAUNCHDECK_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("LAUNCHDECK_SHUTDOWN_TIMEOUT", 5*time.Second),

		LogLevel:  getenv("LAUNCHDECK_LOG_LEVEL", "info"),
		PrettyLog: mustBool("LAUNCHDECK_PRETTY_LOG", true),

		APIBaseURL:       getenv("LAUNCHDECK_API_BASE_URL", "https://api.spacexdata.com/v4"),
		APITimeout:       mustDuration("LAUNCHDECK_API_TIMEOUT", 10*time.Second),
		APIRPS:           getenvFloat("LAUNCHDECK_API_RPS", 5),
		APIBurst:         getenvInt("LAUNCHDECK_API_BURST", 10),
		PlaceholderImage: getenv("LAUNCHDECK_PLACEHOLDER_IMAGE", "https://images2.imgbox.com/placeholder/patch.png"),
		RefreshInterval:  mustDuration("LAUNCHDECK_REFRESH_INTERVAL", 15*time.Minute),
		MissionsFile:     getenv("LAUNCHDECK_MISSIONS_FILE", ""),

		Store:               strings.ToLower(getenv("LAUNCHDECK_STORE", StoreRedis)),
		RedisUser:           getenv("LAUNCHDECK_REDIS_USERNAME", "default"),
		RedisPassword:       getenv("LAUNCHDECK_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("LAUNCHDECK_REDIS_DB", 0),
		RedisDT:             mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:             mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:             mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:        mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:       getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:  getenvInt("REDIS_WARN_THRESHOLD", 3),

		AllowedHosts:     splitAndTrim(getenv("LAUNCHDECK_ALLOWED_HOSTS", "")),
		AllowedCIDRS:     splitAndTrim(getenv("LAUNCHDECK_ALLOWED_CIDRS", "")),
		TrustProxy:       mustBool("LAUNCHDECK_TRUST_PROXY", false),
		RateBurst:        getenvInt("LAUNCHDECK_RATE_BURST", 30),
		RateRefillPerMin: getenvInt("LAUNCHDECK_RATE_REFILL_PER_MIN", 120),
	}

	switch cfg.Store {
	case StoreRedis:
		cfg.RedisAddr = requireEnv("LAUNCHDECK_REDIS_ADDR")
	case StoreMemory:
	default:
		panic(fmt.Sprintf("❌ FATAL: LAUNCHDECK_STORE must be %q or %q, got %q", StoreRedis, StoreMemory, cfg.Store))
	}

	if cfg.RefreshInterval < 0 {
		panic("❌ FATAL: LAUNCHDECK_REFRESH_INTERVAL must not be negative")
	}

	if cfg.LogLevel == "debug" {
		log.Printf("[DEBUG] cfg: %+v\n", cfg.Redacted())
	}

	return cfg
}

// Redacted returns a copy safe to log.
func (c Config) Redacted() Config {
	if c.RedisPassword != "" {
		c.RedisPassword = "***REDACTED***"
	}
	if c.RedisUser != "" {
		c.RedisUser = "***REDACTED***"
	}
	return c
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			return f
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.Trim(strings.TrimSpace(part), `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
