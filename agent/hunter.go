package agent

import (
	"battleship/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Phase int

const (
	Hunting Phase = iota
	Targeting
)

func (p Phase) String() string {
	if p == Targeting {
		return "targeting"
	}
	return "hunting"
}

// Neighbour order when probing around a hit: up, down, left, right
var neighbours = []game.Coord{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}}

// HuntTargetAgent hunts with a placement density map until it wounds a ship,
// then targets the cells around and in line with its hits until the ship sinks.
type HuntTargetAgent struct {
	fleet game.Fleet
	rng   *rand.Rand
	phase Phase
	hits  []game.Coord // Hits on ships not yet sunk, in the order they landed
}

var (
	_ Agent  = (*HuntTargetAgent)(nil)
	_ Phased = (*HuntTargetAgent)(nil)
)

// NewHuntTargetAgent creates an agent hunting for the given fleet.
func NewHuntTargetAgent(fleet game.Fleet, rng *rand.Rand) *HuntTargetAgent {
	return &HuntTargetAgent{
		fleet: append(game.Fleet(nil), fleet...),
		rng:   rng,
		phase: Hunting,
	}
}

func (a *HuntTargetAgent) Phase() Phase {
	return a.phase
}

// Hits returns a copy of the confirmed hits still being followed up.
func (a *HuntTargetAgent) Hits() []game.Coord {
	return append([]game.Coord(nil), a.hits...)
}

func (a *HuntTargetAgent) ChooseShot(view game.View) (game.Coord, error) {
	if a.phase == Targeting && len(a.hits) > 0 {
		if c, ok := a.target(view); ok {
			return c, nil
		}
		log.Debug().Msgf("no cell left around %d hits, resuming hunt", len(a.hits))
		a.reset()
	}
	return a.hunt(view)
}

func (a *HuntTargetAgent) ReceiveResult(c game.Coord, result game.Result) {
	switch result.Outcome {
	case game.OutcomeHit:
		if a.phase == Hunting {
			log.Debug().Msgf("hit at %v, targeting", c)
		}
		a.phase = Targeting
		a.hits = append(a.hits, c)
	case game.OutcomeSunk:
		log.Debug().Msgf("sunk %s at %v, hunting", result.Ship, c)
		a.reset()
	}
}

func (a *HuntTargetAgent) reset() {
	a.phase = Hunting
	a.hits = nil
}

func (a *HuntTargetAgent) target(view game.View) (game.Coord, bool) {
	if len(a.hits) >= 2 {
		if c, ok := a.extendLine(view); ok {
			return c, true
		}
	}

	for i := len(a.hits) - 1; i >= 0; i-- {
		hit := a.hits[i]
		for _, d := range neighbours {
			c := game.Coord{Row: hit.Row + d.Row, Col: hit.Col + d.Col}
			if c.InBounds() && view.ShotAt(c) == game.Unshot {
				return c, true
			}
		}
	}
	return game.Coord{}, false
}

// extendLine continues a line of hits past either end, lower end first.
func (a *HuntTargetAgent) extendLine(view game.View) (game.Coord, bool) {
	rows := map[int]bool{}
	cols := map[int]bool{}
	first := a.hits[0]
	minRow, maxRow, minCol, maxCol := first.Row, first.Row, first.Col, first.Col
	for _, hit := range a.hits {
		rows[hit.Row] = true
		cols[hit.Col] = true
		minRow, maxRow = min(minRow, hit.Row), max(maxRow, hit.Row)
		minCol, maxCol = min(minCol, hit.Col), max(maxCol, hit.Col)
	}

	var candidates []game.Coord
	if len(rows) == 1 {
		candidates = []game.Coord{{Row: minRow, Col: minCol - 1}, {Row: minRow, Col: maxCol + 1}}
	} else if len(cols) == 1 {
		candidates = []game.Coord{{Row: minRow - 1, Col: minCol}, {Row: maxRow + 1, Col: minCol}}
	}

	for _, c := range candidates {
		if c.InBounds() && view.ShotAt(c) == game.Unshot {
			return c, true
		}
	}
	return game.Coord{}, false
}

func (a *HuntTargetAgent) hunt(view game.View) (game.Coord, error) {
	remaining := a.fleet.Without(view.SunkShips())
	density := Density(view, remaining.Lengths())

	candidates, score := density.Best(view)
	if score == 0 {
		// No consistent placement left anywhere
		candidates = game.UnshotCoords(view)
	}
	if len(candidates) == 0 {
		return game.Coord{}, ErrNoTargets
	}
	return candidates[a.rng.Intn(len(candidates))], nil
}
