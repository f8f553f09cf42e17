package history

import (
	"context"
	"time"
)

// DefaultCapacity is the number of entries kept when no capacity is configured.
const DefaultCapacity = 100

// Entry is a recorded value and the time it was pushed.
type Entry[T any] struct {
	Value      T
	RecordedAt time.Time
}

// Store defines the contract for a bounded, most-recent-first history.
// All implementations must be safe for concurrent use.
type Store[T comparable] interface {
	// Push prepends item unless it equals the current most-recent value.
	// Entries beyond capacity are evicted oldest first.
	Push(ctx context.Context, item T) error

	// PushAll pushes items in order as one operation.
	PushAll(ctx context.Context, items ...T) error

	// List returns a copy of all entries, most recent first.
	List(ctx context.Context) ([]Entry[T], error)

	// Latest returns the most recent entry.
	// Returns domain.ErrHistoryEmpty when nothing was pushed.
	Latest(ctx context.Context) (Entry[T], error)

	// Clear removes every entry and returns how many were removed.
	Clear(ctx context.Context) (int, error)

	Len() int
}
