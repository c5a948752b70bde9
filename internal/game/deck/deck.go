package deck

import (
	"math/rand"
	"sort"

	"github.com/SanjeevViswambharan/bridge-backend/internal/game/room"
)

// HandSize is cards per seat after a full deal.
const HandSize = 13

// Dealer shuffles and deals. No rule knowledge lives here.
type Dealer struct {
	rnd *rand.Rand
}

func NewDealer(seed int64) *Dealer {
	return &Dealer{rnd: rand.New(rand.NewSource(seed))}
}

// Shuffle returns a fresh uniformly random permutation of the 52-card deck.
func (d *Dealer) Shuffle() []room.Card {
	cards := newDeck()
	d.rnd.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return cards
}

func newDeck() []room.Card {
	cards := make([]room.Card, 0, 52)
	for s := 0; s < 4; s++ {
		for r := 2; r <= 14; r++ {
			cards = append(cards, room.Card{Suit: s, Rank: r})
		}
	}
	return cards
}

// Deal partitions a shuffled deck into four 13-card hands, one contiguous
// block per seat in N,E,S,W order. Each hand comes back sorted for
// display; the ordering carries no gameplay meaning.
func Deal(cards []room.Card) map[room.Seat][]room.Card {
	hands := make(map[room.Seat][]room.Card, room.NumSeats)
	for i, s := range room.SeatOrder {
		hand := make([]room.Card, HandSize)
		copy(hand, cards[i*HandSize:(i+1)*HandSize])
		SortHand(hand)
		hands[s] = hand
	}
	return hands
}

// SortHand orders a hand by suit, then rank high to low within the suit.
func SortHand(hand []room.Card) {
	sort.Slice(hand, func(i, j int) bool {
		if hand[i].Suit != hand[j].Suit {
			return hand[i].Suit < hand[j].Suit
		}
		return hand[i].Rank > hand[j].Rank
	})
}
