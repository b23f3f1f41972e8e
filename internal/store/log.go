package store

import "sync"

// Log is an append-only per-parent event sequence. Events are never mutated or
// removed once appended; listing uses the same cursor semantics as Store.List.
// Existence of the parent resource is the owner's concern, not the log's: a
// parent with no events simply lists empty.
type Log[T Entity] struct {
	mu     sync.RWMutex
	events map[string][]T
}

func NewLog[T Entity]() *Log[T] {
	return &Log[T]{events: make(map[string][]T)}
}

func (l *Log[T]) Append(parentID string, e T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events[parentID] = append(l.events[parentID], e)
}

func (l *Log[T]) List(parentID, after string, limit int) ([]T, bool) {
	l.mu.RLock()
	events := l.events[parentID]
	// Copy under the read lock so a concurrent append cannot alias the page.
	page := make([]T, len(events))
	copy(page, events)
	l.mu.RUnlock()

	return Paginate(page, after, limit)
}
