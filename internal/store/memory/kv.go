// Package memory is the process-local store.KV used when no redis is
// configured and in tests.
package memory

import (
	"context"
	"sync"

	"github.com/MrSnakeDoc/launchdeck/internal/store"
)

// Store keeps values in a map guarded by an RWMutex.
type Store struct {
	mu     sync.RWMutex
	values map[store.Key]string
	closed bool
}

var _ store.KV = (*Store)(nil)

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{values: make(map[store.Key]string)}
}

func (s *Store) Get(_ context.Context, key store.Key) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return "", false, store.ErrClosed
	}
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *Store) Set(_ context.Context, key store.Key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return store.ErrClosed
	}
	s.values[key] = value
	return nil
}

func (s *Store) Delete(_ context.Context, key store.Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return store.ErrClosed
	}
	delete(s.values, key)
	return nil
}

func (s *Store) Ping(context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return store.ErrClosed
	}
	return nil
}

// Close drops every value. Later calls return store.ErrClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.values = nil
	return nil
}

// Len returns the number of stored keys.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}
