package practice

import (
	"slices"

	"github.com/charmbracelet/log"

	"github.com/lox/pokerbasics/internal/evaluator"
	"github.com/lox/pokerbasics/internal/scenario"
)

// Tally counts the final hands of a practice run.
type Tally struct {
	Dealt      int
	Completed  int
	ByCategory map[evaluator.Category]int
	ByScenario map[string]int
}

func newTally() Tally {
	return Tally{
		ByCategory: make(map[evaluator.Category]int),
		ByScenario: make(map[string]int),
	}
}

// Record adds a hand that reached the river.
func (t *Tally) Record(deal scenario.Deal, final evaluator.Hand) {
	t.Completed++
	t.ByCategory[final.Category]++
	t.ByScenario[deal.Scenario]++
}

// Categories returns the categories seen at least once, strongest first.
func (t Tally) Categories() []evaluator.Category {
	var seen []evaluator.Category
	for _, c := range evaluator.Categories {
		if t.ByCategory[c] > 0 {
			seen = append(seen, c)
		}
	}
	return seen
}

// Missing returns the categories never made, strongest first.
func (t Tally) Missing() []evaluator.Category {
	var missing []evaluator.Category
	for _, c := range evaluator.Categories {
		if t.ByCategory[c] == 0 {
			missing = append(missing, c)
		}
	}
	return missing
}

// Trainer runs practice hands from a session and tallies the results.
type Trainer struct {
	session *scenario.Session
	logger  *log.Logger
	current *Hand
	tally   Tally
}

// NewTrainer creates a trainer dealing from session.
func NewTrainer(session *scenario.Session, logger *log.Logger) *Trainer {
	return &Trainer{
		session: session,
		logger:  logger.WithPrefix("practice"),
		tally:   newTally(),
	}
}

// Deal starts a new hand, abandoning the current one.
func (t *Trainer) Deal() *Hand {
	t.current = NewHand(t.session.NewDeal())
	t.tally.Dealt++
	t.logger.Debug("New hand", "hand", t.session.Hands(), "scenario", t.current.deal.Scenario)
	return t.current
}

// Current returns the hand in progress, or nil before the first deal.
func (t *Trainer) Current() *Hand {
	return t.current
}

// Advance reveals the next street of the current hand, dealing a hand first
// when none is in progress. Reaching the river records the final hand.
func (t *Trainer) Advance() Stage {
	if t.current == nil {
		t.Deal()
		return t.current.Stage()
	}
	if !t.current.Advance() {
		return t.current.Stage()
	}

	if t.current.Done() {
		if final, ok := t.current.Evaluate(); ok {
			t.tally.Record(t.current.deal, final)
			t.logger.Debug("Final hand", "scenario", t.current.deal.Scenario, "hand", final.Name())
		}
	}
	return t.current.Stage()
}

// Tally returns a copy of the results so far.
func (t *Trainer) Tally() Tally {
	c := newTally()
	c.Dealt, c.Completed = t.tally.Dealt, t.tally.Completed
	for k, v := range t.tally.ByCategory {
		c.ByCategory[k] = v
	}
	for k, v := range t.tally.ByScenario {
		c.ByScenario[k] = v
	}
	return c
}

// Session returns the trainer's session.
func (t *Trainer) Session() *scenario.Session {
	return t.session
}

// ScenarioNames returns the scenarios dealt so far, sorted.
func (t Tally) ScenarioNames() []string {
	names := make([]string, 0, len(t.ByScenario))
	for name := range t.ByScenario {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
