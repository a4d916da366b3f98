package mw

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/MrSnakeDoc/launchdeck/internal/utils"
)

type RateLimitConfig struct {
	Burst             int
	RefillPerIPPerMin int
	MaxEntries        int
	IdleTTL           time.Duration
	TrustProxy        bool
}

type client struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// clientLimiter keeps one token bucket per client IP.
type clientLimiter struct {
	cfg     RateLimitConfig
	every   rate.Limit
	mu      sync.Mutex
	clients map[string]*client
	now     func() time.Time
}

func newClientLimiter(cfg RateLimitConfig) *clientLimiter {
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = 15 * time.Minute
	}
	if cfg.Burst < 1 {
		cfg.Burst = 1
	}
	if cfg.RefillPerIPPerMin < 1 {
		cfg.RefillPerIPPerMin = 1
	}
	return &clientLimiter{
		cfg:     cfg,
		every:   rate.Limit(float64(cfg.RefillPerIPPerMin) / 60.0),
		clients: make(map[string]*client),
		now:     time.Now,
	}
}

func (l *clientLimiter) get(key string, now time.Time) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	c := l.clients[key]
	if c == nil {
		if l.cfg.MaxEntries > 0 && len(l.clients) >= l.cfg.MaxEntries {
			l.evictIdleLocked(now)
		}
		c = &client{lim: rate.NewLimiter(l.every, l.cfg.Burst)}
		l.clients[key] = c
	}
	c.lastSeen = now
	return c.lim
}

func (l *clientLimiter) evictIdleLocked(now time.Time) {
	for k, c := range l.clients {
		if now.Sub(c.lastSeen) > l.cfg.IdleTTL {
			delete(l.clients, k)
		}
	}
}

// allow consumes one token for key. When refused, retryAfter is the whole
// number of seconds until a token is available.
func (l *clientLimiter) allow(key string) (ok bool, remaining int, retryAfter int) {
	now := l.now()
	lim := l.get(key, now)

	if lim.AllowN(now, 1) {
		return true, int(math.Floor(lim.TokensAt(now))), 0
	}

	missing := 1 - lim.TokensAt(now)
	retryAfter = int(math.Ceil(missing / float64(l.every)))
	if retryAfter < 1 {
		retryAfter = 1
	}
	return false, 0, retryAfter
}

// RateLimit refuses requests with 429 once a client IP exhausts its bucket.
func RateLimit(cfg RateLimitConfig) func(http.Handler) http.Handler {
	l := newClientLimiter(cfg)
	return rateLimit(l)
}

func rateLimit(l *clientLimiter) func(http.Handler) http.Handler {
	limit := strconv.Itoa(l.cfg.Burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ok, remaining, retry := l.allow(utils.ClientIP(r, l.cfg.TrustProxy))

			w.Header().Set("X-RateLimit-Limit", limit)
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			if !ok {
				w.Header().Set("Retry-After", strconv.Itoa(retry))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":"rate limit exceeded"}` + "\n"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
