// Package bookmarks persists the set of launch IDs the user marked.
package bookmarks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/MrSnakeDoc/launchdeck/internal/domain"
	"github.com/MrSnakeDoc/launchdeck/internal/logger"
	"github.com/MrSnakeDoc/launchdeck/internal/store"
)

// ErrEmptyID is returned when toggling a blank launch ID.
var ErrEmptyID = errors.New("bookmark id is empty")

// Set is a set of launch IDs.
type Set map[string]struct{}

// NewSet builds a set from ids, dropping duplicates and blanks.
func NewSet(ids ...string) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			s[id] = struct{}{}
		}
	}
	return s
}

func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the members in lexical order.
func (s Set) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Store reads and mutates the persisted set. Mutations are serialized so
// overlapping toggles never lose an update.
type Store struct {
	mu  sync.Mutex
	kv  store.KV
	log logger.Logger
}

// New binds a bookmark store to kv.
func New(kv store.KV, log logger.Logger) *Store {
	return &Store{kv: kv, log: log}
}

// Bookmarks returns the persisted set. Absence, backend errors and corrupt
// data all yield an empty set.
func (s *Store) Bookmarks(ctx context.Context) Set {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(ctx)
}

// IsBookmarked reports whether id is in the set.
func (s *Store) IsBookmarked(ctx context.Context, id string) bool {
	return s.Bookmarks(ctx).Has(id)
}

// Toggle adds id when absent and removes it when present, persists the
// result and returns it. Two toggles of the same id restore the original set.
func (s *Store) Toggle(ctx context.Context, id string) (Set, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrEmptyID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.read(ctx)
	if set.Has(id) {
		delete(set, id)
	} else {
		set[id] = struct{}{}
	}

	if err := s.persist(ctx, set); err != nil {
		return nil, err
	}

	s.log.Debug("bookmark toggled",
		logger.String("id", id),
		logger.Bool("bookmarked", set.Has(id)),
		logger.Int("total", len(set)))
	return set, nil
}

// persist writes set as a sorted JSON array. An empty set removes the key.
func (s *Store) persist(ctx context.Context, set Set) error {
	if len(set) == 0 {
		if err := s.kv.Delete(ctx, store.KeyBookmarks); err != nil {
			return fmt.Errorf("failed to clear bookmarks: %w", err)
		}
		return nil
	}

	data, err := json.Marshal(set.IDs())
	if err != nil {
		return fmt.Errorf("failed to encode bookmarks: %w", err)
	}
	if err := s.kv.Set(ctx, store.KeyBookmarks, string(data)); err != nil {
		return fmt.Errorf("failed to save bookmarks: %w", err)
	}
	return nil
}

func (s *Store) read(ctx context.Context) Set {
	raw, ok, err := s.kv.Get(ctx, store.KeyBookmarks)
	if err != nil {
		s.log.Warn("failed to read bookmarks", logger.Error(err))
		return Set{}
	}
	if !ok {
		return Set{}
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		s.log.Warn("stored bookmarks are corrupt, starting empty",
			logger.Error(domain.NewError(domain.DeserializationError, "bookmarks.read", err)))
		return Set{}
	}
	return NewSet(ids...)
}
