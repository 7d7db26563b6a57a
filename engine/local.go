package engine

import (
	"battleship/agent"
	"battleship/experiments/metrics"
	"battleship/game"
	"battleship/meta"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const noWinner = -1

// Engine runs a match between two players, each firing at the other's board in turn.
type Engine struct {
	id       string
	players  []Player
	boards   []*game.Board // boards[i] belongs to players[i]
	rng      *rand.Rand
	current  int // Index of the player about to fire
	shots    []int
	turns    int // Shot attempts, rejected ones included
	maxTurns int
	winner   int
	metrics  metrics.Collector
}

var _ Runner = (*Engine)(nil)

// LocalEngine sets up a match and places the fleet on every board not supplied through WithBoards.
func LocalEngine(players []Player, fleet game.Fleet, options ...Option) (*Engine, error) {
	if len(players) != 2 {
		return nil, fmt.Errorf("%w: got %d", ErrPlayerCount, len(players))
	}

	e := &Engine{ // Default values
		id:       uuid.NewString(),
		players:  append([]Player(nil), players...),
		boards:   make([]*game.Board, len(players)),
		shots:    make([]int, len(players)),
		maxTurns: meta.MaxTurns,
		winner:   noWinner,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	if e.rng == nil {
		e.rng = defaultRand()
	}

	for i, board := range e.boards {
		if board != nil {
			continue
		}
		board = game.NewBoard()
		if err := board.PlaceFleet(fleet, e.rng); err != nil {
			return nil, fmt.Errorf("placing fleet for %s: %w", e.players[i].Name, err)
		}
		e.boards[i] = board
	}

	e.metrics.Start(e.id, e.current+1)
	log.Info().Msgf("match %s: %s vs %s, %s fires first", e.id, e.players[0].Name, e.players[1].Name, e.players[e.current].Name)
	return e, nil
}

// Fire takes the human player's shot at the opponent's board.
// Rejected shots do not use up the turn.
func (e *Engine) Fire(c game.Coord) (game.Result, error) {
	if e.Over() {
		return game.Result{Outcome: game.OutcomeAlready}, ErrGameOver
	}
	if !e.players[e.current].IsHuman() {
		return game.Result{Outcome: game.OutcomeAlready}, ErrNotYourTurn
	}
	return e.shoot(c, "", 0)
}

// Step lets the agent whose turn it is choose a shot, resolves it and feeds the result back.
func (e *Engine) Step() (Move, error) {
	if e.Over() {
		return Move{}, ErrGameOver
	}
	player := e.players[e.current]
	if player.IsHuman() {
		return Move{}, ErrHumanTurn
	}

	id := e.current + 1
	target := e.boards[1-e.current]
	start := time.Now()
	c, err := player.Agent.ChooseShot(target)
	if err != nil {
		return Move{Player: id}, fmt.Errorf("%s choosing a shot: %w", player.Name, err)
	}

	phase := ""
	if phased, ok := player.Agent.(agent.Phased); ok {
		phase = phased.Phase().String()
	}

	result, err := e.shoot(c, phase, time.Since(start))
	player.Agent.ReceiveResult(c, result)
	move := Move{Player: id, Target: c, Result: result}
	if err != nil {
		log.Warn().Err(err).Msgf("%s fired at %v, shot rejected", player.Name, c)
		return move, err
	}
	return move, nil
}

func (e *Engine) shoot(c game.Coord, phase string, elapsed time.Duration) (game.Result, error) {
	target := e.boards[1-e.current]
	e.turns++

	result, err := target.ResolveShot(c)
	if err != nil {
		return result, err
	}

	e.shots[e.current]++
	e.metrics.AddShot(e.turns, e.current+1, c, result, phase, elapsed)
	log.Debug().Msgf("%s fired at %v: %s", e.players[e.current].Name, c, result)

	if target.AllSunk() {
		e.winner = e.current
		log.Info().Msgf("match %s: %s wins after %d shots", e.id, e.players[e.current].Name, e.shots[e.current])
	} else {
		e.current = 1 - e.current
	}
	return result, nil
}

// Run plays agent turns until one fleet is sunk or the turn cap is hit.
// It stops early when a human is to move.
func (e *Engine) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	for !e.Over() && e.turns < e.maxTurns {
		if e.players[e.current].IsHuman() {
			log.Warn().Msgf("match %s: %s is human, stopping automatic play", e.id, e.players[e.current].Name)
			break
		}
		_, err := e.Step()
		if err != nil && !errors.Is(err, game.ErrAlreadyShot) && !errors.Is(err, game.ErrOutOfBounds) {
			log.Error().Err(err).Msgf("match %s stopped", e.id)
			break
		}
	}

	winner := e.Winner()
	if winner == "" {
		log.Warn().Msgf("match %s: stopped after %d turns without a winner", e.id, e.turns)
	}
	return winner, e.metrics.Complete(winner, e.shots[0], e.shots[1]), e.metrics.Moves()
}

func (e *Engine) ID() string {
	return e.id
}

// Turn is the ID of the player about to fire, or of the winner once the match is over.
func (e *Engine) Turn() int {
	return e.current + 1
}

func (e *Engine) Over() bool {
	return e.winner != noWinner
}

// Winner is the winning player's name, empty while the match is running.
func (e *Engine) Winner() string {
	if e.winner == noWinner {
		return ""
	}
	return e.players[e.winner].Name
}

// ShotCount is the number of accepted shots fired by the player with the given ID.
func (e *Engine) ShotCount(id int) int {
	if id < 1 || id > len(e.shots) {
		return 0
	}
	return e.shots[id-1]
}

// Board returns the board owned by the player with the given ID.
func (e *Engine) Board(id int) (*game.Board, error) {
	if id < 1 || id > len(e.boards) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPlayer, id)
	}
	return e.boards[id-1], nil
}

func (e *Engine) Players() []Player {
	return append([]Player(nil), e.players...)
}
