// Package store provides the in-memory keyed collections backing every
// stateful resource of the mock server. Nothing is persisted; process exit is
// the only garbage collector.
package store

import (
	"errors"
	"sync"
)

// ErrNotFound is returned by lookups and updates for unknown IDs.
var ErrNotFound = errors.New("store: not found")

// Entity is anything addressable by an opaque ID.
type Entity interface {
	Key() string
}

// Store is a mutex-guarded keyed collection that preserves insertion order for
// listing. The store exclusively owns its entities; handlers obtain transient
// references via Get and mutate only through Update, which runs the mutation
// under the store lock so timer-driven transitions and HTTP handlers cannot
// interleave mid-change.
type Store[T Entity] struct {
	mu    sync.RWMutex
	order []string
	items map[string]T
}

func New[T Entity]() *Store[T] {
	return &Store[T]{items: make(map[string]T)}
}

func (s *Store[T]) Insert(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := v.Key()
	if _, exists := s.items[id]; !exists {
		s.order = append(s.order, id)
	}
	s.items[id] = v
}

func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[id]
	return v, ok
}

// Update applies fn to the entity under the store lock. fn returning an error
// aborts nothing that fn already did; callers are expected to validate before
// mutating (fail-fast, no partial application).
func (s *Store[T]) Update(id string, fn func(T) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.items[id]
	if !ok {
		return ErrNotFound
	}
	return fn(v)
}

func (s *Store[T]) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	for i, k := range s.order {
		if k == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// List returns entities in insertion order, optionally filtered, then cursor
// paginated. A nil filter keeps everything.
func (s *Store[T]) List(filter func(T) bool, after string, limit int) ([]T, bool) {
	s.mu.RLock()
	all := make([]T, 0, len(s.order))
	for _, id := range s.order {
		v := s.items[id]
		if filter == nil || filter(v) {
			all = append(all, v)
		}
	}
	s.mu.RUnlock()

	return Paginate(all, after, limit)
}

// Paginate applies cursor pagination: the slice resumes immediately after the
// entity whose ID equals after, or from the start when the cursor matches
// nothing. has_more is an approximation: true iff the page is exactly full,
// which can be a false positive when the remainder ends precisely at the page
// boundary. Callers tolerate that.
func Paginate[T Entity](items []T, after string, limit int) ([]T, bool) {
	if after != "" {
		for i, v := range items {
			if v.Key() == after {
				items = items[i+1:]
				break
			}
		}
	}
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, limit > 0 && len(items) == limit
}
