package deck

import (
	"fmt"
	rand "math/rand/v2"
)

// AllCards returns the 52-card universe in suit-major order.
func AllCards() []Card {
	cards := make([]Card, 0, 52)
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, NewCard(suit, rank))
		}
	}
	return cards
}

// Shuffle randomizes cards in place using Fisher-Yates
func Shuffle(rng *rand.Rand, cards []Card) {
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// Remaining returns every card of the universe that is not in used, in
// suit-major order.
func Remaining(used CardSet) []Card {
	cards := make([]Card, 0, 52-used.Len())
	for _, card := range AllCards() {
		if !used.Contains(card) {
			cards = append(cards, card)
		}
	}
	return cards
}

// RandomCard picks one card uniformly from the universe minus excluding.
// It returns false only when every card is excluded.
func RandomCard(rng *rand.Rand, excluding CardSet) (Card, bool) {
	available := Remaining(excluding)
	if len(available) == 0 {
		return Card{}, false
	}
	return available[rng.IntN(len(available))], true
}

// SampleRemaining shuffles the cards not in used and returns the first n.
// Asking for more cards than remain is a programming error and panics.
func SampleRemaining(rng *rand.Rand, used CardSet, n int) []Card {
	available := Remaining(used)
	if n > len(available) {
		panic(fmt.Sprintf("deck: sample of %d cards requested, only %d remain", n, len(available)))
	}
	Shuffle(rng, available)
	return available[:n]
}
