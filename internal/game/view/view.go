// Package view projects room state into what clients are allowed to see.
// The public projection never carries a hand; the private projection adds
// exactly one hand, the recipient's own.
package view

import "github.com/SanjeevViswambharan/bridge-backend/internal/game/room"

type PlayerInfo struct {
	Name string    `json:"name"`
	Seat room.Seat `json:"seat"`
}

// Public is the room-wide projection sent on membership or phase changes.
type Public struct {
	RoomID  string                `json:"roomId"`
	Seats   map[room.Seat]string  `json:"seats"`
	Players map[string]PlayerInfo `json:"players"`
	Phase   room.Phase            `json:"phase"`
}

// TrickView is the board of the trick in progress. Played cards are public
// once on the table, so every seat's slot appears here.
type TrickView struct {
	Lead  room.Seat               `json:"lead"`
	Turn  room.Seat               `json:"turn"`
	Cards map[room.Seat]room.Card `json:"cards"`
}

// Private is one player's projection: public fields plus the trick board,
// their own seat and their own remaining hand.
type Private struct {
	Public
	Trick    *TrickView  `json:"trick,omitempty"`
	YourSeat room.Seat   `json:"yourSeat"`
	YourHand []room.Card `json:"yourHand"`
}

// PublicOf builds the public projection. Caller holds the room lock.
func PublicOf(r *room.Room) Public {
	seats := make(map[room.Seat]string, room.NumSeats)
	for s, id := range r.Seats {
		seats[s] = id
	}
	players := make(map[string]PlayerInfo, len(r.Players))
	for id, p := range r.Players {
		players[id] = PlayerInfo{Name: p.Name, Seat: p.Seat}
	}
	return Public{
		RoomID:  r.ID,
		Seats:   seats,
		Players: players,
		Phase:   r.Phase,
	}
}

// PrivateOf builds p's projection. Caller holds the room lock.
func PrivateOf(r *room.Room, p *room.Player) Private {
	v := Private{
		Public:   PublicOf(r),
		YourSeat: p.Seat,
		YourHand: append([]room.Card(nil), p.Hand...),
	}
	if r.Trick != nil {
		cards := make(map[room.Seat]room.Card, len(r.Trick.Cards))
		for s, c := range r.Trick.Cards {
			cards[s] = c
		}
		tv := &TrickView{Lead: r.Trick.Lead, Cards: cards}
		if !r.Trick.Complete() {
			tv.Turn = r.Trick.CurrentSeat()
		}
		v.Trick = tv
	}
	return v
}
