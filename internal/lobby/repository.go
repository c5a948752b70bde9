package lobby

import "context"

// Repo abstracts the quick-match queue.
type Repo interface {
	// Enqueue adds a player to the queue.
	Enqueue(ctx context.Context, playerID string, ttlSeconds int) error
	// PopTable atomically pops n queued players when at least n are waiting.
	PopTable(ctx context.Context, n int) ([]string, error)
	// Remove takes a queued player out (cancel).
	Remove(ctx context.Context, playerID string) error
	// Count returns the queue length.
	Count(ctx context.Context) (int64, error)
}
