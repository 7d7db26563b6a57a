package experiments

import (
	"battleship/agent"
	"battleship/experiments/metrics"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultName  = "experiment"
	DefaultGames = 100
)

var ErrInvalidConfig = errors.New("invalid experiment config")

type Config struct {
	Name      string                `yaml:"name"`
	Games     int                   `yaml:"games"` // Per match up
	Seed      uint64                `yaml:"seed"`
	OutputDir string                `yaml:"output_dir"` // Empty disables CSV output
	Agents    []metrics.AgentConfig `yaml:"agents"`
	MatchUps  [][]int               `yaml:"matchups"` // Pairs of agent IDs, the first plays as Player1
}

// DefaultConfig pits the random shooter against the hunter, and each against itself.
func DefaultConfig() Config {
	return Config{
		Name:  "strength",
		Games: DefaultGames,
		Seed:  1,
		Agents: []metrics.AgentConfig{
			{ID: 1, Kind: agent.KindRandom},
			{ID: 2, Kind: agent.KindHunt},
		},
		MatchUps: [][]int{{1, 2}, {1, 1}, {2, 2}},
	}
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Name == "" {
		cfg.Name = DefaultName
	}
	if cfg.Games == 0 {
		cfg.Games = DefaultGames
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: name must be set", ErrInvalidConfig)
	}
	if c.Games <= 0 {
		return fmt.Errorf("%w: games must be > 0", ErrInvalidConfig)
	}
	if len(c.Agents) == 0 {
		return fmt.Errorf("%w: no agents", ErrInvalidConfig)
	}

	ids := map[int]bool{}
	for _, a := range c.Agents {
		if ids[a.ID] {
			return fmt.Errorf("%w: duplicate agent id %d", ErrInvalidConfig, a.ID)
		}
		if _, err := agent.ParseKind(string(a.Kind)); err != nil {
			return fmt.Errorf("%w: agent %d: %v", ErrInvalidConfig, a.ID, err)
		}
		ids[a.ID] = true
	}

	if len(c.MatchUps) == 0 {
		return fmt.Errorf("%w: no matchups", ErrInvalidConfig)
	}
	for i, matchup := range c.MatchUps {
		if len(matchup) != 2 {
			return fmt.Errorf("%w: matchup %d must name two agents", ErrInvalidConfig, i+1)
		}
		for _, id := range matchup {
			if !ids[id] {
				return fmt.Errorf("%w: matchup %d references unknown agent %d", ErrInvalidConfig, i+1, id)
			}
		}
	}
	return nil
}

func (c Config) agent(id int) metrics.AgentConfig {
	for _, a := range c.Agents {
		if a.ID == id {
			return a
		}
	}
	return metrics.AgentConfig{}
}
