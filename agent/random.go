package agent

import (
	"battleship/game"

	"golang.org/x/exp/rand"
)

// RandomAgent fires uniformly at cells it has not fired at yet. It keeps no
// memory of outcomes.
type RandomAgent struct {
	rng     *rand.Rand
	untried []game.Coord // Shuffled candidate pool, compacted lazily against the board
}

var _ Agent = (*RandomAgent)(nil)

func NewRandomAgent(rng *rand.Rand) *RandomAgent {
	untried := game.AllCoords()
	rng.Shuffle(len(untried), func(i, j int) {
		untried[i], untried[j] = untried[j], untried[i]
	})
	return &RandomAgent{
		rng:     rng,
		untried: untried,
	}
}

func (a *RandomAgent) ChooseShot(view game.View) (game.Coord, error) {
	unshot := game.UnshotCoords(view)
	available := a.untried[:0]
	for _, c := range a.untried {
		if view.ShotAt(c) == game.Unshot {
			available = append(available, c)
		}
	}

	if len(available) != len(unshot) {
		// Pool exhausted or out of sync with the board, rebuild it from a full scan
		available = unshot
	}
	a.untried = available

	if len(available) == 0 {
		return game.Coord{}, ErrNoTargets
	}
	return available[a.rng.Intn(len(available))], nil
}

func (a *RandomAgent) ReceiveResult(game.Coord, game.Result) {}
