package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/pokerbasics/internal/evaluator"
	"github.com/lox/pokerbasics/internal/scenario"
)

// DealResult represents the outcome of a single generated practice hand
type DealResult struct {
	Scenario string
	Seed     int64              // session seed (for replay)
	Hand     int                // hand number within the session
	Target   evaluator.Category // scenario.NoTarget for untargeted scenarios
	Draw     bool               // the target may miss
	Flop     evaluator.Category // best hand once the flop is out
	Final    evaluator.Category // best hand at the river
	FlopDraw bool               // holding a straight or flush draw on the flop
	Forced   bool               // picked by the must-show schedule
}

// Targeted reports whether the deal aimed at a category.
func (r DealResult) Targeted() bool {
	return r.Target != scenario.NoTarget
}

// Hit reports whether the deal reached its target category or better.
func (r DealResult) Hit() bool {
	return r.Targeted() && r.Final >= r.Target
}

// ScenarioStats tracks statistics for one scenario
type ScenarioStats struct {
	Deals     int
	Targeted  int
	Hits      int
	Forced    int
	FlopDraws int
}

// HitRate returns the fraction of targeted deals that reached the target
func (s *ScenarioStats) HitRate() float64 {
	if s.Targeted == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Targeted)
}

// FlopDrawRate returns the fraction of deals holding a draw on the flop
func (s *ScenarioStats) FlopDrawRate() float64 {
	if s.Deals == 0 {
		return 0
	}
	return float64(s.FlopDraws) / float64(s.Deals)
}

// StdError returns the standard error of the hit rate
func (s *ScenarioStats) StdError() float64 {
	if s.Targeted == 0 {
		return 0
	}
	p := s.HitRate()
	return math.Sqrt(p * (1 - p) / float64(s.Targeted))
}

// ConfidenceInterval95 returns the 95% confidence interval for the hit rate
func (s *ScenarioStats) ConfidenceInterval95() (float64, float64) {
	p := s.HitRate()
	margin := 1.96 * s.StdError() // 95% confidence
	return math.Max(0, p-margin), math.Min(1, p+margin)
}

// Statistics tracks the distribution of generated deals
type Statistics struct {
	Deals int

	// Category counts indexed by evaluator.Category
	Final [len(evaluator.Categories)]int
	Flop  [len(evaluator.Categories)]int

	Improved  int // final category beat the flop category
	Scenarios map[string]*ScenarioStats
}

// New returns empty statistics.
func New() *Statistics {
	return &Statistics{Scenarios: make(map[string]*ScenarioStats)}
}

// Add incorporates a new deal result into the statistics
func (s *Statistics) Add(result DealResult) {
	if s.Scenarios == nil {
		s.Scenarios = make(map[string]*ScenarioStats)
	}

	s.Deals++
	s.Final[result.Final]++
	s.Flop[result.Flop]++
	if result.Final > result.Flop {
		s.Improved++
	}

	ss := s.scenario(result.Scenario)
	ss.Deals++
	if result.Forced {
		ss.Forced++
	}
	if result.FlopDraw {
		ss.FlopDraws++
	}
	if result.Targeted() {
		ss.Targeted++
		if result.Hit() {
			ss.Hits++
		}
	}
}

func (s *Statistics) scenario(name string) *ScenarioStats {
	ss, ok := s.Scenarios[name]
	if !ok {
		ss = &ScenarioStats{}
		s.Scenarios[name] = ss
	}
	return ss
}

// Merge adds other into s
func (s *Statistics) Merge(other *Statistics) {
	if s.Scenarios == nil {
		s.Scenarios = make(map[string]*ScenarioStats)
	}

	s.Deals += other.Deals
	s.Improved += other.Improved
	for i := range s.Final {
		s.Final[i] += other.Final[i]
		s.Flop[i] += other.Flop[i]
	}
	for name, o := range other.Scenarios {
		ss := s.scenario(name)
		ss.Deals += o.Deals
		ss.Targeted += o.Targeted
		ss.Hits += o.Hits
		ss.Forced += o.Forced
		ss.FlopDraws += o.FlopDraws
	}
}

// Share returns the fraction of deals that finished as category c
func (s *Statistics) Share(c evaluator.Category) float64 {
	if s.Deals == 0 {
		return 0
	}
	return float64(s.Final[c]) / float64(s.Deals)
}

// FlopShare returns the fraction of deals that flopped category c
func (s *Statistics) FlopShare(c evaluator.Category) float64 {
	if s.Deals == 0 {
		return 0
	}
	return float64(s.Flop[c]) / float64(s.Deals)
}

// ImprovementRate returns the fraction of deals that improved after the flop
func (s *Statistics) ImprovementRate() float64 {
	if s.Deals == 0 {
		return 0
	}
	return float64(s.Improved) / float64(s.Deals)
}

// ScenarioNames returns the scenarios seen, by deal count then name
func (s *Statistics) ScenarioNames() []string {
	names := make([]string, 0, len(s.Scenarios))
	for name := range s.Scenarios {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := s.Scenarios[names[i]], s.Scenarios[names[j]]
		if a.Deals != b.Deals {
			return a.Deals > b.Deals
		}
		return names[i] < names[j]
	})
	return names
}

// Validate performs consistency checks on the accounting
func (s *Statistics) Validate() error {
	if s.Deals <= 0 {
		return fmt.Errorf("invalid deals count: %d", s.Deals)
	}

	finalTotal, flopTotal := 0, 0
	for i := range s.Final {
		finalTotal += s.Final[i]
		flopTotal += s.Flop[i]
	}
	if finalTotal != s.Deals || flopTotal != s.Deals {
		return fmt.Errorf("category totals (final %d, flop %d) do not match deals (%d)",
			finalTotal, flopTotal, s.Deals)
	}

	scenarioTotal := 0
	for name, ss := range s.Scenarios {
		scenarioTotal += ss.Deals
		if ss.Hits > ss.Targeted || ss.Targeted > ss.Deals || ss.FlopDraws > ss.Deals {
			return fmt.Errorf("scenario %s: inconsistent counts: hits %d, targeted %d, deals %d",
				name, ss.Hits, ss.Targeted, ss.Deals)
		}
		if ss.Forced > ss.Deals {
			return fmt.Errorf("scenario %s: forced (%d) exceeds deals (%d)", name, ss.Forced, ss.Deals)
		}
	}
	if scenarioTotal != s.Deals {
		return fmt.Errorf("scenario deals total (%d) does not match deals (%d)", scenarioTotal, s.Deals)
	}

	return nil
}
