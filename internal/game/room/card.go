package room

import "fmt"

// Card identifies one of the 52 cards (suit 0-3, rank 2-14).
type Card struct {
	Suit int `json:"suit"`
	Rank int `json:"rank"`
}

// Valid reports whether c is one of the 52 cards of the deck.
func (c Card) Valid() bool {
	return c.Suit >= 0 && c.Suit <= 3 && c.Rank >= 2 && c.Rank <= 14
}

func (c Card) String() string {
	suits := []string{"♣", "♦", "♥", "♠"}
	ranks := map[int]string{
		11: "J",
		12: "Q",
		13: "K",
		14: "A",
	}
	rankStr, ok := ranks[c.Rank]
	if !ok {
		rankStr = fmt.Sprintf("%d", c.Rank)
	}
	suitStr := "?"
	if c.Suit >= 0 && c.Suit < len(suits) {
		suitStr = suits[c.Suit]
	}
	return rankStr + suitStr
}
