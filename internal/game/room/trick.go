package room

// Trick is one round of four plays. Order starts at the lead seat and runs
// clockwise; Index counts the seats that have played so far. A finished
// trick is replaced wholesale by NewTrick, never rewound.
type Trick struct {
	Lead  Seat
	Order [4]Seat
	Cards map[Seat]Card
	Index int
}

func NewTrick(lead Seat) *Trick {
	t := &Trick{
		Lead:  lead,
		Cards: make(map[Seat]Card, NumSeats),
	}
	s := lead
	for i := range t.Order {
		t.Order[i] = s
		s = s.Next()
	}
	return t
}

// CurrentSeat returns the seat expected to play next. Only meaningful
// while the trick is incomplete.
func (t *Trick) CurrentSeat() Seat {
	return t.Order[t.Index]
}

// Record stores seat's card and advances the turn.
func (t *Trick) Record(seat Seat, c Card) {
	t.Cards[seat] = c
	t.Index++
}

func (t *Trick) Complete() bool {
	return t.Index == NumSeats
}
