package redis

import (
	"context"
	"testing"
	"time"

	"github.com/MrSnakeDoc/launchdeck/internal/logger"
	"github.com/MrSnakeDoc/launchdeck/internal/store"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s := NewStore(client)
	t.Cleanup(func() { _ = s.Close() })
	return s, mr
}

func TestStoreGetSet(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestStore(t)

	if _, ok, err := s.Get(ctx, store.KeyNextLaunch); ok || err != nil {
		t.Errorf("Get() on missing key = ok %v, err %v; want miss", ok, err)
	}

	if err := s.Set(ctx, store.KeyNextLaunch, `{"id":"n"}`); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	v, ok, err := s.Get(ctx, store.KeyNextLaunch)
	if err != nil || !ok || v != `{"id":"n"}` {
		t.Errorf("Get() = %q, %v, %v", v, ok, err)
	}

	raw, err := mr.Get("launchdeck:launch:next")
	if err != nil || raw != `{"id":"n"}` {
		t.Errorf("raw key = %q, %v; want prefixed key in redis", raw, err)
	}
	if ttl := mr.TTL("launchdeck:launch:next"); ttl != 0 {
		t.Errorf("TTL = %v, want no expiry", ttl)
	}
}

func TestStoreDelete(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestStore(t)

	_ = s.Set(ctx, store.KeyBookmarks, `["a"]`)
	if err := s.Delete(ctx, store.KeyBookmarks); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if mr.Exists("launchdeck:bookmarks") {
		t.Errorf("key still present after Delete()")
	}
}

func TestStoreUnavailable(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestStore(t)

	mr.Close()

	if _, _, err := s.Get(ctx, store.KeyLaunches); err == nil {
		t.Errorf("Get() with redis down should fail")
	}
	if err := s.Ping(ctx); err == nil {
		t.Errorf("Ping() with redis down should fail")
	}
}

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)

	opts := ConnectOptions{
		Addr:           mr.Addr(),
		ConnectTimeout: time.Second,
		RetryInterval:  10 * time.Millisecond,
		MaxWait:        50 * time.Millisecond,
		PingTimeout:    200 * time.Millisecond,
	}

	s, err := Connect(context.Background(), opts, logger.Nop())
	if err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	defer func() { _ = s.Close() }()

	if err := s.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
}

func TestConnectInvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts ConnectOptions
	}{
		{name: "empty address", opts: ConnectOptions{ConnectTimeout: time.Second, RetryInterval: time.Second, MaxWait: time.Second, PingTimeout: time.Second}},
		{name: "zero connect timeout", opts: ConnectOptions{Addr: "x:1", RetryInterval: time.Second, MaxWait: time.Second, PingTimeout: time.Second}},
		{name: "negative warn threshold", opts: ConnectOptions{Addr: "x:1", ConnectTimeout: time.Second, RetryInterval: time.Second, MaxWait: time.Second, PingTimeout: time.Second, WarnThreshold: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Connect(context.Background(), tt.opts, logger.Nop()); err == nil {
				t.Errorf("Connect() = nil error, want validation failure")
			}
		})
	}
}

func TestConnectTimeout(t *testing.T) {
	opts := ConnectOptions{
		Addr:           "127.0.0.1:1",
		DialTimeout:    20 * time.Millisecond,
		ConnectTimeout: 150 * time.Millisecond,
		RetryInterval:  10 * time.Millisecond,
		MaxWait:        20 * time.Millisecond,
		PingTimeout:    20 * time.Millisecond,
	}

	if _, err := Connect(context.Background(), opts, logger.Nop()); err == nil {
		t.Errorf("Connect() to closed port should fail")
	}
}
