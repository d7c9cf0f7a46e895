package scenario

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"strings"

	"github.com/lox/pokerbasics/internal/evaluator"
)

// ErrUnknownScenario is returned when a scenario name is not in the catalog.
var ErrUnknownScenario = errors.New("unknown scenario")

// NoTarget is the target of scenarios that aim at no particular category.
const NoTarget evaluator.Category = -1

// maxAttempts bounds the retries of a degenerate construction. Valid
// generators never come close.
const maxAttempts = 1000

// Scenario is a named deal generator and its selection weight.
type Scenario struct {
	Name     string
	Weight   int
	MustShow bool // forced once per session when not drawn naturally
	Target   evaluator.Category
	HitRate  float64 // chance a draw completes; zero for made hands
	build    buildFunc
}

// Generate builds a deal, retrying with fresh draws until the construction
// succeeds.
func (s Scenario) Generate(rng *rand.Rand) Deal {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		b := newBuilder(rng)
		hole, community := s.build(b, s.HitRate)
		if b.err != nil {
			continue
		}

		deal := Deal{Scenario: s.Name, Hole: hole, Community: community}
		if err := deal.Validate(); err != nil {
			panic(fmt.Sprintf("scenario %q built an invalid deal: %v", s.Name, err))
		}
		return deal
	}
	panic(fmt.Sprintf("scenario %q failed %d attempts", s.Name, maxAttempts))
}

// IsDraw reports whether the scenario may or may not complete its target.
func (s Scenario) IsDraw() bool {
	return s.HitRate > 0
}

// Catalog is an ordered set of scenarios.
type Catalog struct {
	scenarios []Scenario
}

// NewCatalog returns a catalog holding scenarios in order.
func NewCatalog(scenarios ...Scenario) *Catalog {
	return &Catalog{scenarios: append([]Scenario(nil), scenarios...)}
}

// DefaultCatalog returns a fresh copy of the built-in scenarios. Royal and
// straight flushes have no weight and only appear when forced; suited
// connectors and random deals are only dealt by name.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		Scenario{Name: "Royal Flush", MustShow: true, Target: evaluator.RoyalFlush, build: royalFlush},
		Scenario{Name: "Straight Flush", MustShow: true, Target: evaluator.StraightFlush, build: straightFlush},
		Scenario{Name: "Four of a Kind", Weight: 10, Target: evaluator.FourOfAKind, build: fourOfAKind},
		Scenario{Name: "Full House", Weight: 10, Target: evaluator.FullHouse, build: fullHouse},
		Scenario{Name: "Flush", Weight: 10, Target: evaluator.Flush, HitRate: 0.6, build: flushDraw},
		Scenario{Name: "Straight", Weight: 10, Target: evaluator.Straight, HitRate: 0.65, build: straightDraw},
		Scenario{Name: "Three of a Kind", Weight: 10, Target: evaluator.ThreeOfAKind, build: setOnFlop},
		Scenario{Name: "Two Pair", Weight: 10, Target: evaluator.TwoPair, build: twoPair},
		Scenario{Name: "One Pair", Weight: 10, Target: evaluator.OnePair, build: premiumPair},
		Scenario{Name: "Evolving Hand", Weight: 25, Target: NoTarget, build: evolvingHand},
		Scenario{Name: "Suited Connectors", Target: NoTarget, build: suitedConnectors},
		Scenario{Name: "Random", Target: NoTarget, build: random},
	)
}

// Scenarios returns the scenarios in catalog order.
func (c *Catalog) Scenarios() []Scenario {
	return append([]Scenario(nil), c.scenarios...)
}

// Len returns the number of scenarios.
func (c *Catalog) Len() int {
	return len(c.scenarios)
}

// Names returns the scenario names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.scenarios))
	for i, s := range c.scenarios {
		names[i] = s.Name
	}
	return names
}

// Lookup finds a scenario by name, ignoring case.
func (c *Catalog) Lookup(name string) (Scenario, bool) {
	i := c.index(name)
	if i < 0 {
		return Scenario{}, false
	}
	return c.scenarios[i], true
}

// Get is Lookup returning ErrUnknownScenario for a missing name.
func (c *Catalog) Get(name string) (Scenario, error) {
	s, ok := c.Lookup(name)
	if !ok {
		return Scenario{}, fmt.Errorf("%w: %q", ErrUnknownScenario, name)
	}
	return s, nil
}

func (c *Catalog) index(name string) int {
	for i, s := range c.scenarios {
		if strings.EqualFold(s.Name, name) {
			return i
		}
	}
	return -1
}

// TotalWeight returns the sum of all weights.
func (c *Catalog) TotalWeight() int {
	total := 0
	for _, s := range c.scenarios {
		total += s.Weight
	}
	return total
}

// Probability returns the chance that weighted selection picks the named
// scenario. Forced picks are not included.
func (c *Catalog) Probability(name string) float64 {
	s, ok := c.Lookup(name)
	total := c.TotalWeight()
	if !ok || total == 0 {
		return 0
	}
	return float64(s.Weight) / float64(total)
}

// MustShow returns the scenarios that are forced once per session.
func (c *Catalog) MustShow() []Scenario {
	var forced []Scenario
	for _, s := range c.scenarios {
		if s.MustShow {
			forced = append(forced, s)
		}
	}
	return forced
}

// Tune holds overrides for one scenario. Nil fields are left alone.
type Tune struct {
	Weight   *int
	HitRate  *float64
	MustShow *bool
}

// Tune applies overrides to the named scenario.
func (c *Catalog) Tune(name string, t Tune) error {
	i := c.index(name)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownScenario, name)
	}

	s := &c.scenarios[i]
	if t.Weight != nil {
		if *t.Weight < 0 {
			return fmt.Errorf("scenario %q: weight must be non-negative, got %d", s.Name, *t.Weight)
		}
		s.Weight = *t.Weight
	}
	if t.HitRate != nil {
		if !s.IsDraw() {
			return fmt.Errorf("scenario %q is not a draw and has no hit rate", s.Name)
		}
		if *t.HitRate <= 0 || *t.HitRate > 1 {
			return fmt.Errorf("scenario %q: hit rate must be in (0,1], got %g", s.Name, *t.HitRate)
		}
		s.HitRate = *t.HitRate
	}
	if t.MustShow != nil {
		s.MustShow = *t.MustShow
	}
	return nil
}
