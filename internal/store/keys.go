// Package store defines the key space and the key/value contract shared by
// the redis and in-memory backends.
package store

import (
	"context"
	"errors"
)

// Key is a fully prefixed storage key.
type Key string

// KeyPrefix namespaces every key written by launchdeck.
const KeyPrefix = "launchdeck:"

const (
	// KeyLaunches holds the last successfully fetched launch list.
	KeyLaunches Key = KeyPrefix + "launches"
	// KeyNextLaunch holds the last successfully fetched next launch.
	KeyNextLaunch Key = KeyPrefix + "launch:next"
	// KeyLatestLaunch holds the last successfully fetched latest launch.
	KeyLatestLaunch Key = KeyPrefix + "launch:latest"
	// KeyBookmarks holds the bookmarked launch IDs.
	KeyBookmarks Key = KeyPrefix + "bookmarks"
)

// ErrClosed is returned by backends used after Close.
var ErrClosed = errors.New("store closed")

// KV is a durable string store. Values survive restarts for the redis
// backend and live for the process lifetime for the memory backend.
//
// Get reports ok=false with a nil error when the key was never written.
type KV interface {
	Get(ctx context.Context, key Key) (value string, ok bool, err error)
	Set(ctx context.Context, key Key, value string) error
	Delete(ctx context.Context, key Key) error
	Ping(ctx context.Context) error
	Close() error
}
