package deck

import (
	"math/bits"
	"strings"
)

// CardSet is a bitset over the 52-card universe keyed by Card.Index.
type CardSet uint64

// NewCardSet builds a set from cards.
func NewCardSet(cards ...Card) CardSet {
	var cs CardSet
	for _, card := range cards {
		cs.Add(card)
	}
	return cs
}

// Add inserts a card into the set
func (cs *CardSet) Add(card Card) {
	*cs |= 1 << uint(card.Index())
}

// Remove deletes a card from the set
func (cs *CardSet) Remove(card Card) {
	*cs &^= 1 << uint(card.Index())
}

// Contains checks if a card is in the set
func (cs CardSet) Contains(card Card) bool {
	return cs&(1<<uint(card.Index())) != 0
}

// Len returns the number of cards in the set.
func (cs CardSet) Len() int {
	return bits.OnesCount64(uint64(cs))
}

// Cards returns the members of the set in suit-major order.
func (cs CardSet) Cards() []Card {
	var cards []Card
	for _, card := range AllCards() {
		if cs.Contains(card) {
			cards = append(cards, card)
		}
	}
	return cards
}

// String lists the set's cards, e.g. "{A♠ 10♥}".
func (cs CardSet) String() string {
	cards := cs.Cards()
	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = card.String()
	}
	return "{" + strings.Join(parts, " ") + "}"
}
