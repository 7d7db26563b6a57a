package game

type Shot int

const (
	Unshot Shot = iota
	Hit
	Miss
)

func (s Shot) String() string {
	switch s {
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	default:
		return "unshot"
	}
}

type Outcome int

const (
	OutcomeMiss Outcome = iota
	OutcomeHit
	OutcomeSunk
	OutcomeAlready // Rejected shot: already fired at or off the grid
)

// Result is what a board reports back for a single shot.
type Result struct {
	Outcome Outcome
	Ship    string // Name of the sunk ship, only set for OutcomeSunk
}

func (r Result) String() string {
	switch r.Outcome {
	case OutcomeHit:
		return "hit"
	case OutcomeSunk:
		return "sunk:" + r.Ship
	case OutcomeAlready:
		return "already"
	default:
		return "miss"
	}
}

// Accepted reports whether the shot was resolved, i.e. consumed a turn.
func (r Result) Accepted() bool {
	return r.Outcome != OutcomeAlready
}

// IsHit is true for both hit and sunk outcomes.
func (r Result) IsHit() bool {
	return r.Outcome == OutcomeHit || r.Outcome == OutcomeSunk
}
