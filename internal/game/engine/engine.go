package engine

import (
	"time"

	"github.com/SanjeevViswambharan/bridge-backend/internal/game/deck"
	"github.com/SanjeevViswambharan/bridge-backend/internal/game/room"
	"github.com/SanjeevViswambharan/bridge-backend/internal/game/view"
	"github.com/SanjeevViswambharan/bridge-backend/internal/utils"
	"github.com/SanjeevViswambharan/bridge-backend/internal/websocket"
)

// Engine applies join, play and disconnect events to rooms and pushes the
// resulting projections out through the hub. Each method takes the room
// lock for its whole duration, so events on one room never interleave;
// distinct rooms proceed independently.
type Engine struct {
	Hub    websocket.HubInterface
	Dealer *deck.Dealer
}

func New(hub websocket.HubInterface) *Engine {
	return &Engine{
		Hub:    hub,
		Dealer: deck.NewDealer(time.Now().UnixNano()),
	}
}

// Join seats the player in r, or answers room_full when no seat is open.
// Filling the last seat starts the deal.
func (e *Engine) Join(r *room.Room, playerID, name string) {
	r.Lock()
	defer r.Unlock()

	seat, err := r.AssignSeat(playerID, name)
	if err != nil {
		e.Hub.SendToPlayer(playerID, websocket.OutgoingMessage{
			Event: "room_full",
			Data:  map[string]any{"roomId": r.ID},
		})
		return
	}

	utils.Log.Info("player joined", "room", r.ID, "player", playerID, "seat", seat)

	if r.Phase == room.Waiting && r.Occupied() == room.NumSeats {
		e.startDeal(r)
	}

	e.broadcastRoomState(r)
	if r.Phase == room.Playing {
		e.broadcastGameState(r)
	}
}

// startDeal shuffles, hands out four sorted 13-card hands and opens the
// first trick with North on lead. Caller holds the room lock.
func (e *Engine) startDeal(r *room.Room) {
	hands := deck.Deal(e.Dealer.Shuffle())
	r.StartDeal(hands)
	utils.Log.Info("deal started", "room", r.ID, "lead", r.Trick.Lead)
}

// PlayCard validates and applies one play. Structurally impossible
// requests (wrong phase, unseated player) are dropped without a reply;
// playing out of turn or a card not held answers the requester only and
// leaves the room untouched.
func (e *Engine) PlayCard(r *room.Room, playerID string, c room.Card) {
	r.Lock()
	defer r.Unlock()

	if r.Phase != room.Playing || r.Trick == nil {
		return
	}
	p, ok := r.PlayerFor(playerID)
	if !ok {
		return
	}

	if cur := r.Trick.CurrentSeat(); p.Seat != cur {
		e.sendError(playerID, "not your turn")
		return
	}
	if !p.Remove(c) {
		e.sendError(playerID, "you do not hold that card")
		return
	}

	r.Trick.Record(p.Seat, c)
	utils.Log.Info("card played", "room", r.ID, "seat", p.Seat, "card", c.String())
	e.broadcastGameState(r)

	if r.Trick.Complete() {
		// Lead passes to the next seat clockwise. No winner evaluation.
		next := r.Trick.Lead.Next()
		r.Trick = room.NewTrick(next)
		e.Hub.BroadcastToPlayers(r.MemberIDs(), websocket.OutgoingMessage{
			Event: "new_trick",
			Data:  map[string]any{"leadSeat": next},
		})
		e.broadcastGameState(r)
	}
}

// Disconnect removes the player from r if seated there. Any deal in
// progress is abandoned: the seat empties, the room drops to Waiting and
// the trick is discarded. Reports whether the player was removed and
// whether the room is now empty.
func (e *Engine) Disconnect(r *room.Room, playerID string) (removed, empty bool) {
	r.Lock()
	defer r.Unlock()

	if !r.RemovePlayer(playerID) {
		return false, false
	}
	utils.Log.Info("player left", "room", r.ID, "player", playerID)

	if members := r.MemberIDs(); len(members) > 0 {
		e.broadcastRoomState(r)
	}
	return true, r.Occupied() == 0
}

func (e *Engine) sendError(playerID, text string) {
	e.Hub.SendToPlayer(playerID, websocket.OutgoingMessage{
		Event: "error_message",
		Data:  map[string]any{"message": text},
	})
}

// broadcastRoomState sends the public projection to everyone seated.
func (e *Engine) broadcastRoomState(r *room.Room) {
	e.Hub.BroadcastToPlayers(r.MemberIDs(), websocket.OutgoingMessage{
		Event: "room_state",
		Data:  view.PublicOf(r),
	})
}

// broadcastGameState sends each seated player their own projection. The
// payloads differ per recipient; nobody ever sees another hand.
func (e *Engine) broadcastGameState(r *room.Room) {
	for _, id := range r.MemberIDs() {
		p, ok := r.PlayerFor(id)
		if !ok {
			continue
		}
		e.Hub.SendToPlayer(id, websocket.OutgoingMessage{
			Event: "game_state",
			Data:  view.PrivateOf(r, p),
		})
	}
}
