package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/MrSnakeDoc/launchdeck/internal/store"
)

func TestNewStore(t *testing.T) {
	s := NewStore()
	if s == nil {
		t.Fatal("NewStore() returned nil")
	}
	if s.Len() != 0 {
		t.Errorf("NewStore() should start empty, got %d keys", s.Len())
	}
}

func TestGetSetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	if _, ok, err := s.Get(ctx, store.KeyLaunches); ok || err != nil {
		t.Errorf("Get() on empty store = ok %v, err %v; want miss", ok, err)
	}

	if err := s.Set(ctx, store.KeyLaunches, `[]`); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := s.Set(ctx, store.KeyLaunches, `[{"id":"a"}]`); err != nil {
		t.Fatalf("Set() overwrite error = %v", err)
	}

	v, ok, err := s.Get(ctx, store.KeyLaunches)
	if err != nil || !ok || v != `[{"id":"a"}]` {
		t.Errorf("Get() = %q, %v, %v; want last written value", v, ok, err)
	}

	if err := s.Delete(ctx, store.KeyLaunches); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := s.Delete(ctx, store.KeyLaunches); err != nil {
		t.Errorf("Delete() of missing key error = %v", err)
	}
	if _, ok, _ := s.Get(ctx, store.KeyLaunches); ok {
		t.Errorf("Get() after Delete() still found the key")
	}
}

func TestClose(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	_ = s.Set(ctx, store.KeyBookmarks, `["x"]`)

	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if _, _, err := s.Get(ctx, store.KeyBookmarks); !errors.Is(err, store.ErrClosed) {
		t.Errorf("Get() after Close() error = %v, want ErrClosed", err)
	}
	if err := s.Set(ctx, store.KeyBookmarks, `[]`); !errors.Is(err, store.ErrClosed) {
		t.Errorf("Set() after Close() error = %v, want ErrClosed", err)
	}
	if err := s.Ping(ctx); !errors.Is(err, store.ErrClosed) {
		t.Errorf("Ping() after Close() error = %v, want ErrClosed", err)
	}
}

func TestConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = s.Set(ctx, store.Key(fmt.Sprintf("k%d", i)), "v")
		}(i)
		go func(i int) {
			defer wg.Done()
			_, _, _ = s.Get(ctx, store.Key(fmt.Sprintf("k%d", i)))
		}(i)
	}
	wg.Wait()

	if s.Len() != 10 {
		t.Errorf("Len() = %d, want 10", s.Len())
	}
}
