package room

import (
	"errors"
	"sync"
)

// Phase of a room: waiting for seats to fill, or playing a deal.
type Phase string

const (
	Waiting Phase = "waiting"
	Playing Phase = "playing"
)

var ErrRoomFull = errors.New("room full")

// Room is one isolated game session. All mutation happens under the room
// mutex; callers lock around a whole operation so no two events on the
// same room interleave. Invariants: a seat holds at most one player and a
// player holds exactly one seat; Trick is non-nil iff Phase is Playing.
type Room struct {
	ID string

	mu      sync.Mutex
	Seats   map[Seat]string    // seat -> player id, "" when empty
	Players map[string]*Player // player id -> player
	Phase   Phase
	Trick   *Trick
}

func New(id string) *Room {
	r := &Room{
		ID:      id,
		Seats:   make(map[Seat]string, NumSeats),
		Players: make(map[string]*Player, NumSeats),
		Phase:   Waiting,
	}
	for _, s := range SeatOrder {
		r.Seats[s] = ""
	}
	return r
}

func (r *Room) Lock()   { r.mu.Lock() }
func (r *Room) Unlock() { r.mu.Unlock() }

// AssignSeat seats the player at the first empty seat in N,E,S,W order.
// A player already seated keeps their seat. Returns ErrRoomFull with the
// room untouched when every seat is taken.
func (r *Room) AssignSeat(playerID, name string) (Seat, error) {
	if p, ok := r.Players[playerID]; ok {
		return p.Seat, nil
	}
	for _, s := range SeatOrder {
		if r.Seats[s] == "" {
			r.Seats[s] = playerID
			r.Players[playerID] = &Player{ID: playerID, Name: name, Seat: s}
			return s, nil
		}
	}
	return "", ErrRoomFull
}

// PlayerFor returns the seated player for a connection identity.
func (r *Room) PlayerFor(playerID string) (*Player, bool) {
	p, ok := r.Players[playerID]
	return p, ok
}

// Occupied counts filled seats.
func (r *Room) Occupied() int {
	n := 0
	for _, s := range SeatOrder {
		if r.Seats[s] != "" {
			n++
		}
	}
	return n
}

// MemberIDs lists the seated player ids in seat order.
func (r *Room) MemberIDs() []string {
	ids := make([]string, 0, NumSeats)
	for _, s := range SeatOrder {
		if id := r.Seats[s]; id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// StartDeal moves the room into Playing: hands are handed to the seated
// players and a fresh trick opens with North leading.
func (r *Room) StartDeal(hands map[Seat][]Card) {
	for _, s := range SeatOrder {
		if id := r.Seats[s]; id != "" {
			r.Players[id].Hand = hands[s]
		}
	}
	r.Phase = Playing
	r.Trick = NewTrick(North)
}

// RemovePlayer frees the player's seat and abandons any deal in progress:
// the room falls back to Waiting and the current trick is discarded.
// Reports whether the player was present.
func (r *Room) RemovePlayer(playerID string) bool {
	p, ok := r.Players[playerID]
	if !ok {
		return false
	}
	r.Seats[p.Seat] = ""
	delete(r.Players, playerID)
	r.Phase = Waiting
	r.Trick = nil
	for _, rest := range r.Players {
		rest.Hand = nil
	}
	return true
}
