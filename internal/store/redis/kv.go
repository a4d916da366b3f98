package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/MrSnakeDoc/launchdeck/internal/store"
	"github.com/redis/go-redis/v9"
)

// Store is a store.KV backed by redis. Keys are written without TTL so the
// cached launch data survives until the next successful fetch.
type Store struct {
	client *redis.Client
}

var _ store.KV = (*Store)(nil)

// NewStore wraps an already connected client.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Get returns the value at key. A missing key is not an error.
func (s *Store) Get(ctx context.Context, key store.Key) (string, bool, error) {
	val, err := s.client.Get(ctx, string(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return val, true, nil
}

// Set overwrites key with value.
func (s *Store) Set(ctx context.Context, key store.Key, value string) error {
	if err := s.client.Set(ctx, string(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key succeeds.
func (s *Store) Delete(ctx context.Context, key store.Key) error {
	if err := s.client.Del(ctx, string(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Ping checks the connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}
