package metrics

import (
	"battleship/agent"
	"battleship/game"
	"time"
)

type AgentConfig struct {
	ID   int        `yaml:"id"`
	Kind agent.Kind `yaml:"kind"`
	Name string     `yaml:"name"`
}

// Label is the name used in logs, falling back to the strategy title.
func (c AgentConfig) Label() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Kind.Title()
}

type MoveMetric struct {
	Step     int
	Player   int // Player ID
	Target   game.Coord
	Result   string
	Phase    string        // Agent phase when the shot was chosen, empty for stateless agents and humans
	Duration time.Duration // Time spent choosing the shot
}

type GameMetric struct {
	Match          string
	StartingPlayer int    // Player ID
	Winner         string // Player name
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalShots     int
	ShotsPlayer1   int
	ShotsPlayer2   int
	Hits           int
	Sinks          int
}

type Collector interface {
	Start(match string, startingPlayer int)
	AddShot(step, player int, target game.Coord, result game.Result, phase string, elapsed time.Duration)
	Complete(winner string, shotsPlayer1, shotsPlayer2 int) GameMetric
	Moves() []MoveMetric
}

type collector struct {
	match          string
	startingPlayer int
	startTime      time.Time
	hits           int
	sinks          int
	moves          []MoveMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(match string, startingPlayer int) {
	m.match = match
	m.startingPlayer = startingPlayer
	m.startTime = time.Now()
	m.hits = 0
	m.sinks = 0
	m.moves = nil
}

func (m *collector) AddShot(step, player int, target game.Coord, result game.Result, phase string, elapsed time.Duration) {
	if result.IsHit() {
		m.hits++
	}
	if result.Outcome == game.OutcomeSunk {
		m.sinks++
	}
	m.moves = append(m.moves, MoveMetric{
		Step:     step,
		Player:   player,
		Target:   target,
		Result:   result.String(),
		Phase:    phase,
		Duration: elapsed,
	})
}

func (m *collector) Complete(winner string, shotsPlayer1, shotsPlayer2 int) GameMetric {
	endTime := time.Now()
	return GameMetric{
		Match:          m.match,
		StartingPlayer: m.startingPlayer,
		Winner:         winner,
		StartTime:      m.startTime,
		EndTime:        endTime,
		Duration:       endTime.Sub(m.startTime),
		TotalShots:     shotsPlayer1 + shotsPlayer2,
		ShotsPlayer1:   shotsPlayer1,
		ShotsPlayer2:   shotsPlayer2,
		Hits:           m.hits,
		Sinks:          m.sinks,
	}
}

func (m *collector) Moves() []MoveMetric {
	return append([]MoveMetric(nil), m.moves...)
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(string, int)                                                {}
func (m *dummyCollector) AddShot(int, int, game.Coord, game.Result, string, time.Duration) {}
func (m *dummyCollector) Complete(string, int, int) GameMetric                             { return GameMetric{} }
func (m *dummyCollector) Moves() []MoveMetric                                              { return nil }
