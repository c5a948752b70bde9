package room

// Seat is one of the four fixed table positions.
type Seat string

const (
	North Seat = "N"
	East  Seat = "E"
	South Seat = "S"
	West  Seat = "W"
)

// SeatOrder is the clockwise rotation of the table. Seat scanning on join
// and lead rotation both follow this order.
var SeatOrder = [4]Seat{North, East, South, West}

// NumSeats is the table size; the game always plays four-handed.
const NumSeats = 4

// Next returns the seat clockwise of s.
func (s Seat) Next() Seat {
	for i, v := range SeatOrder {
		if v == s {
			return SeatOrder[(i+1)%NumSeats]
		}
	}
	return North
}

// ValidSeat reports whether s names one of the four seats.
func ValidSeat(s Seat) bool {
	return s == North || s == East || s == South || s == West
}
