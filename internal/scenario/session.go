package scenario

import (
	"fmt"
	rand "math/rand/v2"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/pokerbasics/internal/sessionid"
)

// ForceSchedule decides on which hands an unseen must-show scenario is
// forced. Hand numbers start at 1.
type ForceSchedule struct {
	Checkpoints []int // specific hand numbers
	Every       int   // every multiple of this hand number; zero disables
}

// DefaultForceSchedule forces on hands 3 and 6 and every eighth hand.
func DefaultForceSchedule() ForceSchedule {
	return ForceSchedule{Checkpoints: []int{3, 6}, Every: 8}
}

// Due reports whether hand is a forcing point.
func (f ForceSchedule) Due(hand int) bool {
	if slices.Contains(f.Checkpoints, hand) {
		return true
	}
	return f.Every > 0 && hand%f.Every == 0
}

// Session holds the selection state of one practice run: how many hands
// have been dealt and which must-show scenarios have appeared. A Session is
// not safe for concurrent use.
type Session struct {
	catalog   *Catalog
	rng       *rand.Rand
	clock     quartz.Clock
	logger    *log.Logger
	schedule  ForceSchedule
	hands     int
	seen      map[string]bool
	startedAt time.Time
	id        sessionid.ID
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithClock sets the clock used to stamp deals.
func WithClock(clock quartz.Clock) SessionOption {
	return func(s *Session) {
		s.clock = clock
	}
}

// WithLogger sets the session logger.
func WithLogger(logger *log.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithForceSchedule replaces the default forcing schedule.
func WithForceSchedule(schedule ForceSchedule) SessionOption {
	return func(s *Session) {
		s.schedule = schedule
	}
}

// NewSession starts a session over catalog. The RNG is required so callers
// decide between reproducible and non-seeded randomness.
func NewSession(catalog *Catalog, rng *rand.Rand, opts ...SessionOption) *Session {
	if catalog == nil || catalog.Len() == 0 {
		panic("scenario: session needs a non-empty catalog")
	}
	if rng == nil {
		panic("scenario: rng is required for a session")
	}

	s := &Session{
		catalog:  catalog,
		rng:      rng,
		clock:    quartz.NewReal(),
		logger:   log.Default(),
		schedule: DefaultForceSchedule(),
		seen:     make(map[string]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.startedAt = s.clock.Now()
	s.id = sessionid.MustNew(s.startedAt)
	s.logger = s.logger.WithPrefix("scenario").With("session", s.id.Short())
	return s
}

// Pick counts a new hand and chooses its scenario. An unseen must-show
// scenario is forced when the hand is a forcing point; otherwise the choice
// is weighted, so zero-weight scenarios are only reached by forcing.
func (s *Session) Pick() Scenario {
	sc, _ := s.pick()
	return sc
}

func (s *Session) pick() (Scenario, bool) {
	s.hands++

	var unseen []Scenario
	for _, sc := range s.catalog.MustShow() {
		if !s.seen[sc.Name] {
			unseen = append(unseen, sc)
		}
	}

	if len(unseen) > 0 && s.schedule.Due(s.hands) {
		forced := unseen[s.rng.IntN(len(unseen))]
		s.seen[forced.Name] = true
		s.logger.Debug("Forcing must-show scenario", "hand", s.hands, "scenario", forced.Name, "unseen", len(unseen))
		return forced, true
	}

	picked := s.weighted()
	if picked.MustShow {
		s.seen[picked.Name] = true
	}
	return picked, false
}

func (s *Session) weighted() Scenario {
	scenarios := s.catalog.scenarios
	total := s.catalog.TotalWeight()
	if total == 0 {
		return scenarios[len(scenarios)-1]
	}

	r := s.rng.IntN(total)
	for _, sc := range scenarios {
		if r < sc.Weight {
			return sc
		}
		r -= sc.Weight
	}
	return scenarios[len(scenarios)-1]
}

// NewDeal picks a scenario and generates its deal.
func (s *Session) NewDeal() Deal {
	sc, forced := s.pick()
	deal := s.generate(sc)
	deal.Forced = forced
	return deal
}

// DealScenario generates a deal from the named scenario. It counts as a
// hand and marks a must-show scenario as seen.
func (s *Session) DealScenario(name string) (Deal, error) {
	sc, err := s.catalog.Get(name)
	if err != nil {
		return Deal{}, err
	}
	s.hands++
	if sc.MustShow {
		s.seen[sc.Name] = true
	}
	return s.generate(sc), nil
}

func (s *Session) generate(sc Scenario) Deal {
	deal := sc.Generate(s.rng)
	deal.DealtAt = s.clock.Now()
	s.logger.Debug("Dealt hand", "hand", s.hands, "scenario", sc.Name, "hole", fmt.Sprint(deal.Hole), "board", fmt.Sprint(deal.Community))
	return deal
}

// Hands returns how many hands the session has dealt.
func (s *Session) Hands() int {
	return s.hands
}

// Seen returns the must-show scenarios shown so far, sorted by name.
func (s *Session) Seen() []string {
	names := make([]string, 0, len(s.seen))
	for name := range s.seen {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ID returns the session identifier, stamped with the start time.
func (s *Session) ID() sessionid.ID {
	return s.id
}

// Catalog returns the session's catalog.
func (s *Session) Catalog() *Catalog {
	return s.catalog
}

// StartedAt returns when the session started.
func (s *Session) StartedAt() time.Time {
	return s.startedAt
}

// Elapsed returns how long the session has been running.
func (s *Session) Elapsed() time.Duration {
	return s.clock.Since(s.startedAt)
}
