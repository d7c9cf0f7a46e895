package scenario

import (
	"github.com/lox/pokerbasics/internal/deck"
	"github.com/lox/pokerbasics/internal/evaluator"
)

// evolvingBranch is one outcome of the evolving hand. Upper is the exclusive
// upper bound of the branch on a roll in [0,100).
type evolvingBranch struct {
	Upper  float64
	Target evaluator.Category
	build  buildFunc
}

// evolvingBranches approximates how often a hand that sees the river ends up
// in each category.
var evolvingBranches = []evolvingBranch{
	{Upper: 40, Target: evaluator.OnePair, build: evolvingPair},
	{Upper: 65, Target: evaluator.TwoPair, build: evolvingTwoPair},
	{Upper: 80, Target: evaluator.ThreeOfAKind, build: evolvingTrips},
	{Upper: 88, Target: evaluator.Straight, build: evolvingStraight},
	{Upper: 94, Target: evaluator.Flush, build: evolvingFlush},
	{Upper: 98, Target: evaluator.FullHouse, build: evolvingFullHouse},
	{Upper: 100, Target: evaluator.FourOfAKind, build: evolvingQuads},
}

// evolvingBranchFor returns the branch a roll in [0,100) selects.
func evolvingBranchFor(roll float64) evolvingBranch {
	for _, branch := range evolvingBranches {
		if roll < branch.Upper {
			return branch
		}
	}
	return evolvingBranches[len(evolvingBranches)-1]
}

// evolvingHand rolls a category and builds a deal that reaches it. Flops are
// dealt in construction order so the made part of the hand shows early.
func evolvingHand(b *builder, hitRate float64) ([2]deck.Card, [5]deck.Card) {
	return evolvingBranchFor(b.rng.Float64()*100).build(b, hitRate)
}

func evolvingPair(b *builder, _ float64) ([2]deck.Card, [5]deck.Card) {
	rank := b.rank()
	hole := []deck.Card{b.cardOf(rank)}
	hole = append(hole, b.cardOf(b.rank(rank)))
	flop := []deck.Card{
		b.cardOf(rank),
		b.cardOf(b.rank(rank, hole[1].Rank)),
		b.cardOf(b.rank(rank, hole[1].Rank)),
	}
	return b.hand(hole, flop, b.fill(2))
}

func evolvingTwoPair(b *builder, _ float64) ([2]deck.Card, [5]deck.Card) {
	hole, flop := pairedFlop(b)
	return b.hand(hole, flop, b.fill(2))
}

func evolvingTrips(b *builder, _ float64) ([2]deck.Card, [5]deck.Card) {
	rank := b.rank()
	suits := b.suits()
	hole := []deck.Card{b.card(rank, suits[0]), b.card(rank, suits[1])}
	flop := []deck.Card{
		b.card(rank, suits[2]),
		b.cardOf(b.rank(rank)),
		b.cardOf(b.rank(rank)),
	}
	return b.hand(hole, flop, b.fill(2))
}

// evolvingStraight completes a king-high to six-high straight on the river.
func evolvingStraight(b *builder, _ float64) ([2]deck.Card, [5]deck.Card) {
	ranks := b.straightRanks(1+b.rng.IntN(8), 5)
	hole := []deck.Card{b.cardOf(ranks[0]), b.cardOf(ranks[1])}
	flop := []deck.Card{
		b.cardOf(ranks[2]),
		b.cardOf(ranks[3]),
		b.cardOf(b.rank(ranks...)),
	}
	turn := b.cardOf(b.rank(ranks...))
	river := b.cardOf(ranks[4])
	return b.hand(hole, flop, []deck.Card{turn, river})
}

// evolvingFlush completes a flush on the river.
func evolvingFlush(b *builder, _ float64) ([2]deck.Card, [5]deck.Card) {
	suit := b.suit()
	all := deck.Ranks
	b.rng.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })
	ranks := all[:5]

	hole := []deck.Card{b.card(ranks[0], suit), b.card(ranks[1], suit)}
	flop := []deck.Card{
		b.card(ranks[2], suit),
		b.card(ranks[3], suit),
		b.cardOf(b.rank(ranks...), suit),
	}
	turn := b.cardOf(b.rank(ranks...), suit)
	river := b.card(ranks[4], suit)
	return b.hand(hole, flop, []deck.Card{turn, river})
}

func evolvingFullHouse(b *builder, _ float64) ([2]deck.Card, [5]deck.Card) {
	trip := b.rank()
	pair := b.rank(trip)
	suits := b.suits()
	hole := []deck.Card{b.card(trip, suits[0]), b.card(trip, suits[1])}
	flop := []deck.Card{b.card(trip, suits[2]), b.cardOf(pair), b.cardOf(pair)}
	return b.hand(hole, flop, b.fill(2))
}

func evolvingQuads(b *builder, _ float64) ([2]deck.Card, [5]deck.Card) {
	rank := b.rank()
	hole := []deck.Card{b.card(rank, deck.Spades), b.card(rank, deck.Hearts)}
	flop := []deck.Card{
		b.card(rank, deck.Diamonds),
		b.card(rank, deck.Clubs),
		b.cardOf(b.rank(rank)),
	}
	return b.hand(hole, flop, b.fill(2))
}
