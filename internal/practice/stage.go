package practice

// Stage is how far the community cards of a practice hand are revealed.
type Stage int

const (
	Preflop Stage = iota
	Flop
	Turn
	River
)

func (s Stage) String() string {
	return [...]string{"preflop", "flop", "turn", "river"}[s]
}

// Title returns the display name of the stage.
func (s Stage) Title() string {
	return [...]string{"Pre-Flop", "Flop", "Turn", "River"}[s]
}

// VisibleCommunity returns how many community cards the stage shows.
func (s Stage) VisibleCommunity() int {
	return [...]int{0, 3, 4, 5}[s]
}

// Next returns the following stage. ok is false at the river.
func (s Stage) Next() (next Stage, ok bool) {
	if s >= River {
		return River, false
	}
	return s + 1, true
}

// NextAction labels the action that reveals the next stage, e.g. "Deal Flop".
// It is empty at the river.
func (s Stage) NextAction() string {
	next, ok := s.Next()
	if !ok {
		return ""
	}
	return "Deal " + next.Title()
}
