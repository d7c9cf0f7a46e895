package scenario

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"slices"

	"github.com/lox/pokerbasics/internal/deck"
)

// errDegenerate marks a construction that could not place a card. The
// scenario is retried with fresh draws.
var errDegenerate = errors.New("degenerate configuration")

// builder hands out cards for one deal and remembers every card it has
// handed out, so a deal can never contain the same card twice. The first
// failure sticks; later calls return zero cards and the caller checks err
// once at the end.
type builder struct {
	rng  *rand.Rand
	used deck.CardSet
	err  error
}

func newBuilder(rng *rand.Rand) *builder {
	return &builder{rng: rng}
}

func (b *builder) fail(format string, args ...any) {
	if b.err == nil {
		b.err = fmt.Errorf("%w: %s", errDegenerate, fmt.Sprintf(format, args...))
	}
}

// chance reports true with probability p.
func (b *builder) chance(p float64) bool {
	return b.rng.Float64() < p
}

// rank picks a random rank not in exclude.
func (b *builder) rank(exclude ...deck.Rank) deck.Rank {
	available := make([]deck.Rank, 0, len(deck.Ranks))
	for _, r := range deck.Ranks {
		if !slices.Contains(exclude, r) {
			available = append(available, r)
		}
	}
	if len(available) == 0 {
		b.fail("no rank left outside %v", exclude)
		return deck.Two
	}
	return available[b.rng.IntN(len(available))]
}

// suit picks a random suit not in exclude.
func (b *builder) suit(exclude ...deck.Suit) deck.Suit {
	available := make([]deck.Suit, 0, len(deck.Suits))
	for _, s := range deck.Suits {
		if !slices.Contains(exclude, s) {
			available = append(available, s)
		}
	}
	if len(available) == 0 {
		b.fail("no suit left outside %v", exclude)
		return deck.Spades
	}
	return available[b.rng.IntN(len(available))]
}

// suits returns the four suits in random order.
func (b *builder) suits() [4]deck.Suit {
	suits := deck.Suits
	b.rng.Shuffle(len(suits), func(i, j int) { suits[i], suits[j] = suits[j], suits[i] })
	return suits
}

// card takes a specific card.
func (b *builder) card(rank deck.Rank, suit deck.Suit) deck.Card {
	c := deck.NewCard(suit, rank)
	if b.used.Contains(c) {
		b.fail("%s already dealt", c)
	}
	b.used.Add(c)
	return c
}

// cardOf takes a card of the given rank in a random suit that is still free
// and not in exclude.
func (b *builder) cardOf(rank deck.Rank, exclude ...deck.Suit) deck.Card {
	free := make([]deck.Suit, 0, len(deck.Suits))
	for _, s := range deck.Suits {
		if !slices.Contains(exclude, s) && !b.used.Contains(deck.NewCard(s, rank)) {
			free = append(free, s)
		}
	}
	if len(free) == 0 {
		b.fail("no free %s outside %v", rank, exclude)
		return deck.NewCard(deck.Spades, rank)
	}
	return b.card(rank, free[b.rng.IntN(len(free))])
}

// draw takes a random unused card matching match.
func (b *builder) draw(match func(deck.Card) bool) deck.Card {
	remaining := deck.Remaining(b.used)
	deck.Shuffle(b.rng, remaining)
	for _, c := range remaining {
		if match(c) {
			b.used.Add(c)
			return c
		}
	}
	b.fail("no card left matching the draw")
	return deck.Card{}
}

// fill takes n random unused cards.
func (b *builder) fill(n int) []deck.Card {
	cards := deck.SampleRemaining(b.rng, b.used, n)
	for _, c := range cards {
		b.used.Add(c)
	}
	return cards
}

// straightRanks returns n consecutive ranks starting at index start of
// deck.Ranks, lowest first.
func (b *builder) straightRanks(start, n int) []deck.Rank {
	if start < 0 || start+n > len(deck.Ranks) {
		b.fail("straight window %d+%d out of range", start, n)
		return make([]deck.Rank, n)
	}
	ranks := slices.Clone(deck.Ranks[start : start+n])
	slices.Reverse(ranks)
	return ranks
}

func (b *builder) shuffle(cards []deck.Card) []deck.Card {
	deck.Shuffle(b.rng, cards)
	return cards
}

// hand assembles hole and community slices into fixed arrays.
func (b *builder) hand(hole []deck.Card, community ...[]deck.Card) ([2]deck.Card, [5]deck.Card) {
	board := slices.Concat(community...)
	if len(hole) != 2 || len(board) != 5 {
		b.fail("built %d hole and %d community cards", len(hole), len(board))
		return [2]deck.Card{}, [5]deck.Card{}
	}
	return [2]deck.Card(hole), [5]deck.Card(board)
}
