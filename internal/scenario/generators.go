package scenario

import (
	"slices"

	"github.com/lox/pokerbasics/internal/deck"
)

// buildFunc constructs one deal. hitRate is the scenario's chance of
// completing a draw; made-hand builders ignore it.
type buildFunc func(b *builder, hitRate float64) ([2]deck.Card, [5]deck.Card)

var premiumRanks = []deck.Rank{deck.Ace, deck.King, deck.Queen, deck.Jack}

// premiumPair deals a pocket pair of aces down to jacks and a random board.
func premiumPair(b *builder, _ float64) ([2]deck.Card, [5]deck.Card) {
	rank := premiumRanks[b.rng.IntN(len(premiumRanks))]
	suits := b.suits()
	hole := []deck.Card{b.card(rank, suits[0]), b.card(rank, suits[1])}
	return b.hand(hole, b.fill(5))
}

// flushDraw deals two suited hole cards with two more of the suit on the
// flop. With probability hitRate the turn completes the flush; otherwise
// turn and river both miss the suit.
func flushDraw(b *builder, hitRate float64) ([2]deck.Card, [5]deck.Card) {
	suit := b.suit()
	ranks := deck.Ranks
	b.rng.Shuffle(len(ranks), func(i, j int) { ranks[i], ranks[j] = ranks[j], ranks[i] })

	hole := []deck.Card{b.card(ranks[0], suit), b.card(ranks[1], suit)}
	flop := []deck.Card{
		b.card(ranks[2], suit),
		b.card(ranks[3], suit),
		b.cardOf(b.rank(ranks[:4]...), suit),
	}

	onSuit := func(c deck.Card) bool { return c.Suit == suit }
	offSuit := func(c deck.Card) bool { return c.Suit != suit }

	var turn, river deck.Card
	if b.chance(hitRate) {
		turn = b.draw(onSuit)
		river = b.fill(1)[0]
	} else {
		turn = b.draw(offSuit)
		river = b.draw(offSuit)
	}
	return b.hand(hole, b.shuffle(flop), []deck.Card{turn, river})
}

// straightDraw deals an open-ended draw: four consecutive ranks split
// between hole and flop. With probability hitRate the turn fills one end.
func straightDraw(b *builder, hitRate float64) ([2]deck.Card, [5]deck.Card) {
	start := 1 + b.rng.IntN(8)
	draw := b.straightRanks(start, 4)

	hole := []deck.Card{b.cardOf(draw[0]), b.cardOf(draw[1])}
	flop := []deck.Card{
		b.cardOf(draw[2]),
		b.cardOf(draw[3]),
		b.cardOf(b.rank(draw...)),
	}

	var rest []deck.Card
	if b.chance(hitRate) {
		// start is in [1,8] so both ends of the window exist
		hitRank := deck.Ranks[start+4]
		if b.rng.Float64() > 0.5 {
			hitRank = deck.Ranks[start-1]
		}
		rest = append(rest, b.cardOf(hitRank), b.fill(1)[0])
	} else {
		rest = b.fill(2)
	}
	return b.hand(hole, b.shuffle(flop), rest)
}

// setOnFlop deals a pocket pair below aces that flops a set.
func setOnFlop(b *builder, _ float64) ([2]deck.Card, [5]deck.Card) {
	rank := b.rank(deck.Ace)
	suits := b.suits()
	hole := []deck.Card{b.card(rank, suits[0]), b.card(rank, suits[1])}
	flop := []deck.Card{
		b.card(rank, suits[2]),
		b.cardOf(b.rank(rank)),
		b.cardOf(b.rank(rank)),
	}
	return b.hand(hole, b.shuffle(flop), b.fill(2))
}

// twoPair deals two unpaired hole cards that both pair on the flop.
func twoPair(b *builder, _ float64) ([2]deck.Card, [5]deck.Card) {
	hole, flop := pairedFlop(b)
	return b.hand(hole, b.shuffle(flop), b.fill(2))
}

func pairedFlop(b *builder) (hole, flop []deck.Card) {
	first := b.rank()
	second := b.rank(first)
	hole = []deck.Card{b.cardOf(first), b.cardOf(second)}
	flop = []deck.Card{
		b.cardOf(first),
		b.cardOf(second),
		b.cardOf(b.rank(first, second)),
	}
	return hole, flop
}

// suitedConnectors deals two suited consecutive ranks between queen-jack
// and four-three with a random board.
func suitedConnectors(b *builder, _ float64) ([2]deck.Card, [5]deck.Card) {
	suit := b.suit()
	start := 2 + b.rng.IntN(8)
	hole := []deck.Card{b.card(deck.Ranks[start], suit), b.card(deck.Ranks[start+1], suit)}
	return b.hand(hole, b.fill(5))
}

// random deals seven unconstrained cards.
func random(b *builder, _ float64) ([2]deck.Card, [5]deck.Card) {
	cards := b.fill(7)
	return b.hand(cards[:2], cards[2:])
}

// royalFlush puts two royal cards in the hole and the other three on the
// flop.
func royalFlush(b *builder, _ float64) ([2]deck.Card, [5]deck.Card) {
	return suitedRun(b, b.straightRanks(0, 5))
}

// straightFlush does the same for a straight flush from king-high down to
// six-high.
func straightFlush(b *builder, _ float64) ([2]deck.Card, [5]deck.Card) {
	return suitedRun(b, b.straightRanks(1+b.rng.IntN(8), 5))
}

func suitedRun(b *builder, ranks []deck.Rank) ([2]deck.Card, [5]deck.Card) {
	suit := b.suit()
	picked := slices.Clone(ranks)
	b.rng.Shuffle(len(picked), func(i, j int) { picked[i], picked[j] = picked[j], picked[i] })

	hole := []deck.Card{b.card(picked[0], suit), b.card(picked[1], suit)}
	flop := make([]deck.Card, 0, 3)
	for _, r := range picked[2:] {
		flop = append(flop, b.card(r, suit))
	}
	return b.hand(hole, flop, b.fill(2))
}

// fourOfAKind deals a pocket pair with the other two of the rank on the
// flop.
func fourOfAKind(b *builder, _ float64) ([2]deck.Card, [5]deck.Card) {
	rank := b.rank()
	suits := b.suits()
	hole := []deck.Card{b.card(rank, suits[0]), b.card(rank, suits[1])}
	flop := []deck.Card{b.card(rank, suits[2]), b.card(rank, suits[3]), b.cardOf(b.rank(rank))}
	return b.hand(hole, b.shuffle(flop), b.fill(2))
}

// fullHouse deals a pocket pair that flops trips on a paired board.
func fullHouse(b *builder, _ float64) ([2]deck.Card, [5]deck.Card) {
	trip := b.rank()
	pair := b.rank(trip)
	suits := b.suits()
	hole := []deck.Card{b.card(trip, suits[0]), b.card(trip, suits[1])}
	flop := []deck.Card{b.card(trip, suits[2]), b.cardOf(pair), b.cardOf(pair)}
	return b.hand(hole, b.shuffle(flop), b.fill(2))
}
