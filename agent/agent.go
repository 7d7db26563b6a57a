package agent

import (
	"battleship/game"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/rand"
	"gopkg.in/yaml.v3"
)

var (
	ErrNoTargets   = errors.New("no unshot cells left")
	ErrUnknownKind = errors.New("unknown agent kind")
)

// Agent picks shots against an opponent's board and learns from their outcomes.
// The view is read-only: agents never see where the opponent's ships are.
type Agent interface {
	ChooseShot(view game.View) (game.Coord, error)
	ReceiveResult(c game.Coord, result game.Result)
}

// Phased is implemented by agents that switch between search phases.
type Phased interface {
	Phase() Phase
}

type Kind string

const (
	KindRandom Kind = "random"
	KindHunt   Kind = "hunt"
)

// ParseKind also accepts the strategy names "reflex" and "goal".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "random", "reflex":
		return KindRandom, nil
	case "hunt", "goal", "hunt-target":
		return KindHunt, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

func (k *Kind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	kind, err := ParseKind(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*k = kind
	return nil
}

// Title is a human-readable name of the strategy.
func (k Kind) Title() string {
	switch k {
	case KindRandom:
		return "Simple Reflex Agent"
	case KindHunt:
		return "Goal-Based Agent"
	default:
		return string(k)
	}
}

// New builds an agent of the given kind. The fleet is the public list of
// ship names and lengths the opponent plays with.
func New(kind Kind, fleet game.Fleet, rng *rand.Rand) (Agent, error) {
	switch kind {
	case KindRandom:
		return NewRandomAgent(rng), nil
	case KindHunt:
		return NewHuntTargetAgent(fleet, rng), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
	}
}
