package room

// Player is one seated occupant of a room, keyed by the player id of the
// underlying connection. Hand shrinks as cards are played within a deal.
type Player struct {
	ID   string
	Name string
	Seat Seat
	Hand []Card
}

// Holds reports whether c is currently in the player's hand.
func (p *Player) Holds(c Card) bool {
	for _, h := range p.Hand {
		if h == c {
			return true
		}
	}
	return false
}

// Remove takes c out of the hand, reporting whether it was held.
func (p *Player) Remove(c Card) bool {
	for i, h := range p.Hand {
		if h == c {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return true
		}
	}
	return false
}
