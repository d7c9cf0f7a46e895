package evaluator

// Category is one of the ten hand categories, ordered from weakest to strongest.
type Category int

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// Categories lists every category from strongest to weakest, the order of a
// hand ranking chart.
var Categories = [...]Category{
	RoyalFlush, StraightFlush, FourOfAKind, FullHouse, Flush,
	Straight, ThreeOfAKind, TwoPair, OnePair, HighCard,
}

// categoryStep separates the strength ranges of adjacent categories. Every
// tie-break formula below stays under it.
const categoryStep = 1_000_000

// MaxStrength is the strength of a royal flush, the strongest possible hand.
const MaxStrength = 10 * categoryStep

// String returns the readable name of the category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// ChartRank returns the category's position on a ranking chart: 1 for a
// royal flush down to 10 for high card.
func (c Category) ChartRank() int {
	return int(RoyalFlush-c) + 1
}

// Base returns the lowest strength a hand of this category can have.
func (c Category) Base() int {
	return int(c+1) * categoryStep
}

// CategoryOf returns the category a strength value belongs to.
func CategoryOf(strength int) Category {
	c := Category(strength/categoryStep - 1)
	switch {
	case c < HighCard:
		return HighCard
	case c > RoyalFlush:
		return RoyalFlush
	}
	return c
}

// ParseCategory looks a category up by its name.
func ParseCategory(name string) (Category, bool) {
	for _, c := range Categories {
		if c.String() == name {
			return c, true
		}
	}
	return 0, false
}
