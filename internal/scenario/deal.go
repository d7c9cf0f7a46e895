package scenario

import (
	"fmt"
	"time"

	"github.com/lox/pokerbasics/internal/deck"
)

// Deal is one generated practice hand: two hole cards and the five community
// cards in reveal order. A deal is never modified after it is generated.
type Deal struct {
	Scenario  string
	Hole      [2]deck.Card
	Community [5]deck.Card
	DealtAt   time.Time
	Forced    bool // chosen by the must-show schedule rather than by weight
}

// Cards returns all seven cards, hole first.
func (d Deal) Cards() []deck.Card {
	return d.Visible(len(d.Community))
}

// Visible returns the hole cards followed by the first n community cards.
func (d Deal) Visible(n int) []deck.Card {
	n = max(0, min(n, len(d.Community)))
	cards := make([]deck.Card, 0, len(d.Hole)+n)
	cards = append(cards, d.Hole[:]...)
	return append(cards, d.Community[:n]...)
}

// Validate checks that the deal holds seven valid, distinct cards.
func (d Deal) Validate() error {
	var seen deck.CardSet
	for i, card := range d.Cards() {
		if !card.Valid() {
			return fmt.Errorf("card %d is not a valid card: %+v", i, card)
		}
		if seen.Contains(card) {
			return fmt.Errorf("card %s dealt twice", card)
		}
		seen.Add(card)
	}
	return nil
}

func (d Deal) String() string {
	return fmt.Sprintf("%s: hole %v board %v", d.Scenario, d.Hole, d.Community)
}
