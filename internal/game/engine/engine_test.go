package engine

import (
	"testing"

	"github.com/SanjeevViswambharan/bridge-backend/internal/game/deck"
	"github.com/SanjeevViswambharan/bridge-backend/internal/game/room"
	"github.com/SanjeevViswambharan/bridge-backend/internal/game/view"
	"github.com/SanjeevViswambharan/bridge-backend/internal/websocket"
)

// mockHub implements HubInterface and records every message.
type mockHub struct {
	sentToPlayer map[string][]websocket.OutgoingMessage
	broadcasts   []websocket.OutgoingMessage
	recipients   [][]string
}

func newMockHub() *mockHub {
	return &mockHub{
		sentToPlayer: make(map[string][]websocket.OutgoingMessage),
	}
}

func (h *mockHub) BroadcastToPlayers(ids []string, msg websocket.OutgoingMessage) {
	h.broadcasts = append(h.broadcasts, msg)
	h.recipients = append(h.recipients, ids)
}

func (h *mockHub) SendToPlayer(id string, msg websocket.OutgoingMessage) {
	h.sentToPlayer[id] = append(h.sentToPlayer[id], msg)
}

func (h *mockHub) ClientByID(id string) (*websocket.Client, bool) {
	return nil, false
}

func (h *mockHub) Close() {}

func (h *mockHub) lastEvent(id string) string {
	msgs := h.sentToPlayer[id]
	if len(msgs) == 0 {
		return ""
	}
	return msgs[len(msgs)-1].Event
}

func (h *mockHub) lastGameState(t *testing.T, id string) view.Private {
	t.Helper()
	msgs := h.sentToPlayer[id]
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Event == "game_state" {
			return msgs[i].Data.(view.Private)
		}
	}
	t.Fatalf("no game_state delivered to %s", id)
	return view.Private{}
}

var players = []string{"connA", "connB", "connC", "connD"}

func startedRoom(t *testing.T) (*Engine, *mockHub, *room.Room) {
	t.Helper()
	h := newMockHub()
	eng := New(h)
	eng.Dealer = deck.NewDealer(42) // deterministic deal for tests

	r := room.New("R1")
	for _, id := range players {
		eng.Join(r, id, "player-"+id)
	}
	if r.Phase != room.Playing {
		t.Fatalf("room should be playing after 4 joins, got %s", r.Phase)
	}
	return eng, h, r
}

func TestJoinSeatsInOrderAndStartsGame(t *testing.T) {
	_, h, r := startedRoom(t)

	wantSeats := map[string]room.Seat{
		"connA": room.North, "connB": room.East, "connC": room.South, "connD": room.West,
	}
	for id, want := range wantSeats {
		p, ok := r.PlayerFor(id)
		if !ok {
			t.Fatalf("player %s missing", id)
		}
		if p.Seat != want {
			t.Fatalf("player %s seated at %s, want %s", id, p.Seat, want)
		}
		if len(p.Hand) != deck.HandSize {
			t.Fatalf("player %s has %d cards, want %d", id, len(p.Hand), deck.HandSize)
		}
	}

	if r.Trick == nil || r.Trick.Lead != room.North || r.Trick.Index != 0 {
		t.Fatalf("first trick should open empty with North on lead")
	}

	// every join emitted a public room_state to the members
	states := 0
	for _, b := range h.broadcasts {
		if b.Event == "room_state" {
			states++
		}
	}
	if states != 4 {
		t.Fatalf("expected 4 room_state broadcasts, got %d", states)
	}

	// each player got their own game_state once the deal started
	for _, id := range players {
		gs := h.lastGameState(t, id)
		if gs.Phase != room.Playing {
			t.Fatalf("game_state for %s should be playing", id)
		}
		if len(gs.YourHand) != deck.HandSize {
			t.Fatalf("game_state for %s carries %d cards", id, len(gs.YourHand))
		}
	}
}

func TestPrivateViewsNeverLeakOtherHands(t *testing.T) {
	_, h, _ := startedRoom(t)

	seen := make(map[room.Card]string)
	for _, id := range players {
		gs := h.lastGameState(t, id)
		for _, c := range gs.YourHand {
			if owner, dup := seen[c]; dup {
				t.Fatalf("card %v appears in hands of both %s and %s", c, owner, id)
			}
			seen[c] = id
		}
	}
	if len(seen) != 52 {
		t.Fatalf("union of private hands should cover the deck, got %d cards", len(seen))
	}
}

func TestFifthJoinGetsRoomFull(t *testing.T) {
	eng, h, r := startedRoom(t)

	eng.Join(r, "connE", "latecomer")

	if h.lastEvent("connE") != "room_full" {
		t.Fatalf("expected room_full for the fifth join, got %q", h.lastEvent("connE"))
	}
	if _, ok := r.PlayerFor("connE"); ok {
		t.Fatalf("rejected join must not seat the player")
	}
	if r.Phase != room.Playing {
		t.Fatalf("rejected join must not disturb the game")
	}
}

func TestOutOfTurnPlayRejected(t *testing.T) {
	eng, h, r := startedRoom(t)

	south, _ := r.PlayerFor("connC")
	before := len(south.Hand)

	eng.PlayCard(r, "connC", south.Hand[0])

	if h.lastEvent("connC") != "error_message" {
		t.Fatalf("expected error_message, got %q", h.lastEvent("connC"))
	}
	if len(south.Hand) != before {
		t.Fatalf("rejected play must not touch the hand")
	}
	if r.Trick.Index != 0 || len(r.Trick.Cards) != 0 {
		t.Fatalf("rejected play must not touch the trick")
	}
	// nobody else hears about it
	for _, id := range []string{"connA", "connB", "connD"} {
		if h.lastEvent(id) == "error_message" {
			t.Fatalf("error leaked to %s", id)
		}
	}
}

func TestCardNotHeldRejected(t *testing.T) {
	eng, h, r := startedRoom(t)

	east, _ := r.PlayerFor("connB")
	notMine := east.Hand[0] // belongs to East, played by North

	eng.PlayCard(r, "connA", notMine)

	if h.lastEvent("connA") != "error_message" {
		t.Fatalf("expected error_message, got %q", h.lastEvent("connA"))
	}
	if r.Trick.Index != 0 {
		t.Fatalf("rejected play must not advance the trick")
	}
}

func TestValidPlayMovesCardFromHandToTrick(t *testing.T) {
	eng, h, r := startedRoom(t)

	north, _ := r.PlayerFor("connA")
	card := north.Hand[0]

	eng.PlayCard(r, "connA", card)

	if north.Holds(card) {
		t.Fatalf("played card still in hand")
	}
	if got := r.Trick.Cards[room.North]; got != card {
		t.Fatalf("trick slot N = %v, want %v", got, card)
	}
	if r.Trick.Index != 1 {
		t.Fatalf("trick index = %d, want 1", r.Trick.Index)
	}
	if r.Trick.CurrentSeat() != room.East {
		t.Fatalf("turn should pass to East")
	}

	// everyone received a fresh view with the board showing the card
	for _, id := range players {
		gs := h.lastGameState(t, id)
		if gs.Trick == nil {
			t.Fatalf("game_state for %s missing trick", id)
		}
		if gs.Trick.Cards[room.North] != card {
			t.Fatalf("played card not public in %s's view", id)
		}
	}
}

func TestCompletedTrickRotatesLead(t *testing.T) {
	eng, h, r := startedRoom(t)

	order := []string{"connA", "connB", "connC", "connD"} // N,E,S,W
	for _, id := range order {
		p, _ := r.PlayerFor(id)
		eng.PlayCard(r, id, p.Hand[0])
	}

	if r.Trick.Lead != room.East {
		t.Fatalf("new lead = %s, want E", r.Trick.Lead)
	}
	if r.Trick.Index != 0 || len(r.Trick.Cards) != 0 {
		t.Fatalf("new trick should be empty")
	}
	if r.Trick.CurrentSeat() != room.East {
		t.Fatalf("East must play first in the new trick")
	}

	var notice websocket.OutgoingMessage
	found := false
	for _, b := range h.broadcasts {
		if b.Event == "new_trick" {
			notice = b
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a new_trick broadcast")
	}
	data := notice.Data.(map[string]any)
	if data["leadSeat"] != room.East {
		t.Fatalf("new_trick leadSeat = %v, want E", data["leadSeat"])
	}

	for _, id := range players {
		p, _ := r.PlayerFor(id)
		if len(p.Hand) != deck.HandSize-1 {
			t.Fatalf("player %s has %d cards after one trick", id, len(p.Hand))
		}
	}
}

func TestSecondTrickCyclesFromNewLead(t *testing.T) {
	eng, _, r := startedRoom(t)

	for _, id := range []string{"connA", "connB", "connC", "connD"} {
		p, _ := r.PlayerFor(id)
		eng.PlayCard(r, id, p.Hand[0])
	}

	// North tries to lead the second trick; it's East's lead now
	h2 := eng.Hub.(*mockHub)
	north, _ := r.PlayerFor("connA")
	eng.PlayCard(r, "connA", north.Hand[0])
	if h2.lastEvent("connA") != "error_message" {
		t.Fatalf("North must not lead the second trick")
	}

	east, _ := r.PlayerFor("connB")
	eng.PlayCard(r, "connB", east.Hand[0])
	if r.Trick.Index != 1 {
		t.Fatalf("East's lead should advance the second trick")
	}
}

func TestCardsConservedDuringTrick(t *testing.T) {
	eng, _, r := startedRoom(t)

	check := func() {
		seen := make(map[room.Card]int)
		for _, id := range players {
			p, _ := r.PlayerFor(id)
			for _, c := range p.Hand {
				seen[c]++
			}
		}
		for _, c := range r.Trick.Cards {
			seen[c]++
		}
		if len(seen) != 52 {
			t.Fatalf("hands+trick cover %d cards, want 52", len(seen))
		}
		for c, n := range seen {
			if n != 1 {
				t.Fatalf("card %v counted %d times", c, n)
			}
		}
	}

	check()
	for _, id := range []string{"connA", "connB", "connC"} {
		p, _ := r.PlayerFor(id)
		eng.PlayCard(r, id, p.Hand[0])
		check()
	}
}

func TestDisconnectWhilePlayingResetsRoom(t *testing.T) {
	eng, h, r := startedRoom(t)

	north, _ := r.PlayerFor("connA")
	eng.PlayCard(r, "connA", north.Hand[0])

	removed, empty := eng.Disconnect(r, "connC")
	if !removed || empty {
		t.Fatalf("removed=%v empty=%v, want removed and not empty", removed, empty)
	}
	if r.Phase != room.Waiting || r.Trick != nil {
		t.Fatalf("disconnect must force Waiting and drop the trick")
	}
	if r.Seats[room.South] != "" {
		t.Fatalf("South should be vacant")
	}

	last := h.broadcasts[len(h.broadcasts)-1]
	if last.Event != "room_state" {
		t.Fatalf("remaining players should get room_state, got %s", last.Event)
	}
	pub := last.Data.(view.Public)
	if pub.Phase != room.Waiting {
		t.Fatalf("broadcast phase = %s, want waiting", pub.Phase)
	}
}

func TestDisconnectLastPlayerReportsEmpty(t *testing.T) {
	eng, _, r := startedRoom(t)

	for i, id := range players {
		removed, empty := eng.Disconnect(r, id)
		if !removed {
			t.Fatalf("player %s not removed", id)
		}
		if wantEmpty := i == len(players)-1; empty != wantEmpty {
			t.Fatalf("after removing %s empty=%v, want %v", id, empty, wantEmpty)
		}
	}
}

func TestUnknownPlayerPlayIsSilentNoop(t *testing.T) {
	eng, h, r := startedRoom(t)

	sentBefore := len(h.sentToPlayer["ghost"])
	eng.PlayCard(r, "ghost", room.Card{Suit: 0, Rank: 2})
	if len(h.sentToPlayer["ghost"]) != sentBefore {
		t.Fatalf("unseated connection must get no reply")
	}
	if r.Trick.Index != 0 {
		t.Fatalf("unseated play must not mutate the trick")
	}
}

func TestPlayWhileWaitingIsSilentNoop(t *testing.T) {
	h := newMockHub()
	eng := New(h)
	r := room.New("R1")
	eng.Join(r, "connA", "alice")

	eng.PlayCard(r, "connA", room.Card{Suit: 0, Rank: 2})
	if h.lastEvent("connA") == "error_message" {
		t.Fatalf("play before the deal must be dropped silently")
	}
}
