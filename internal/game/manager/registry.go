package manager

import (
	"sync"

	"github.com/SanjeevViswambharan/bridge-backend/internal/game/room"
)

// Registry is the room table. It is constructed, not global, so tests can
// run isolated instances.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]*room.Room
}

func NewRegistry() *Registry {
	return &Registry{rooms: make(map[string]*room.Room)}
}

// Resolve returns the room for id, creating it in Waiting with all seats
// empty on first reference. Idempotent per id.
func (g *Registry) Resolve(id string) *room.Room {
	g.mu.Lock()
	defer g.mu.Unlock()
	if r, ok := g.rooms[id]; ok {
		return r
	}
	r := room.New(id)
	g.rooms[id] = r
	return r
}

func (g *Registry) Get(id string) (*room.Room, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	r, ok := g.rooms[id]
	return r, ok
}

// Remove drops a room from the table. Rooms are reaped when their last
// seat empties so the table does not grow for the life of the process.
func (g *Registry) Remove(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.rooms, id)
}

// Rooms returns a snapshot of every live room.
func (g *Registry) Rooms() []*room.Room {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*room.Room, 0, len(g.rooms))
	for _, r := range g.rooms {
		out = append(out, r)
	}
	return out
}

func (g *Registry) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.rooms)
}
