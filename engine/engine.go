package engine

import (
	"battleship/agent"
	"battleship/experiments/metrics"
	"battleship/game"
	"errors"
	"time"

	"golang.org/x/exp/rand"
)

var (
	ErrPlayerCount   = errors.New("a match needs exactly two players")
	ErrGameOver      = errors.New("match is over")
	ErrNotYourTurn   = errors.New("not the human player's turn")
	ErrHumanTurn     = errors.New("current player is human")
	ErrInvalidPlayer = errors.New("invalid player id")
)

type Runner interface {
	// Run plays until there's a winner or the turn cap is reached
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

// Player is a seat at the match. A nil Agent is a human, whose shots come in through Engine.Fire.
type Player struct {
	Name  string
	Agent agent.Agent
}

func (p Player) IsHuman() bool {
	return p.Agent == nil
}

// Move is one resolved (or rejected) shot.
type Move struct {
	Player int // Player ID, 1-based
	Target game.Coord
	Result game.Result
}

type Option func(e *Engine)

func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithStartingPlayer sets who fires first by player ID (1 or 2).
func WithStartingPlayer(id int) Option {
	return func(e *Engine) {
		if id == 1 || id == 2 {
			e.current = id - 1
		}
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func WithMetrics() Option {
	return func(e *Engine) {
		e.metrics = metrics.NewCollector()
	}
}

// WithBoards uses pre-placed boards instead of placing the fleet randomly.
// boards[i] belongs to player i+1; nil entries are placed randomly.
func WithBoards(boards ...*game.Board) Option {
	return func(e *Engine) {
		for i, b := range boards {
			if i < len(e.boards) && b != nil {
				e.boards[i] = b
			}
		}
	}
}

func defaultRand() *rand.Rand {
	return rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
}
