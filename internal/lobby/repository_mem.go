package lobby

import (
	"context"
	"math/rand"
	"sync"
)

type memRepo struct {
	mu    sync.Mutex
	queue map[string]struct{}
}

// NewMemoryRepo is the in-process queue, used when no redis is configured
// and in tests.
func NewMemoryRepo() Repo {
	return &memRepo{queue: make(map[string]struct{})}
}

func (m *memRepo) Enqueue(ctx context.Context, playerID string, ttlSeconds int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	// TTL ignored; the memory queue lives and dies with the process.
	m.queue[playerID] = struct{}{}
	return nil
}

func (m *memRepo) PopTable(ctx context.Context, n int) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.queue) < n {
		return []string{}, nil
	}

	ids := make([]string, 0, len(m.queue))
	for id := range m.queue {
		ids = append(ids, id)
	}
	rand.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })

	chosen := ids[:n]
	for _, id := range chosen {
		delete(m.queue, id)
	}
	return chosen, nil
}

func (m *memRepo) Remove(ctx context.Context, playerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.queue, playerID)
	return nil
}

func (m *memRepo) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.queue)), nil
}
