package history

import (
	"context"
	"sync"

	"cnpj-toolkit/internal/domain"
)

// History is an in-memory Store capped at a fixed capacity.
type History[T comparable] struct {
	mu       sync.RWMutex
	entries  []Entry[T] // most recent first
	capacity int
	clock    domain.Clock
}

// New creates a History holding at most capacity entries.
// A non-positive capacity falls back to DefaultCapacity.
func New[T comparable](capacity int, clock domain.Clock) *History[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &History[T]{
		entries:  make([]Entry[T], 0, capacity),
		capacity: capacity,
		clock:    clock,
	}
}

// Push prepends item, evicting the oldest entries beyond capacity.
// Pushing the value already at the head is a no-op.
func (h *History[T]) Push(ctx context.Context, item T) error {
	return h.PushAll(ctx, item)
}

// PushAll pushes items in order under a single lock, so either all of
// them are recorded or, when ctx is already done, none are.
func (h *History[T]) PushAll(ctx context.Context, items ...T) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	now := h.clock.Now()
	for _, item := range items {
		h.prepend(Entry[T]{Value: item, RecordedAt: now})
	}
	return nil
}

// prepend must be called with mu held.
func (h *History[T]) prepend(entry Entry[T]) {
	if len(h.entries) > 0 && h.entries[0].Value == entry.Value {
		return
	}

	if len(h.entries) < h.capacity {
		h.entries = append(h.entries, Entry[T]{})
	}
	copy(h.entries[1:], h.entries)
	h.entries[0] = entry
}

// List returns a copy of the entries, most recent first.
func (h *History[T]) List(ctx context.Context) ([]Entry[T], error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]Entry[T], len(h.entries))
	copy(out, h.entries)
	return out, nil
}

// Latest returns the most recent entry.
func (h *History[T]) Latest(ctx context.Context) (Entry[T], error) {
	select {
	case <-ctx.Done():
		return Entry[T]{}, ctx.Err()
	default:
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.entries) == 0 {
		return Entry[T]{}, domain.ErrHistoryEmpty
	}
	return h.entries[0], nil
}

// Clear removes all entries.
func (h *History[T]) Clear(ctx context.Context) (int, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	default:
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	removed := len(h.entries)
	h.entries = h.entries[:0]
	return removed, nil
}

// Len returns the number of entries held.
func (h *History[T]) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}

// Capacity returns the maximum number of entries held.
func (h *History[T]) Capacity() int {
	return h.capacity
}
