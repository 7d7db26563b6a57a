package experiments

import (
	"battleship/agent"
	"battleship/engine"
	"battleship/experiments/metrics"
	"battleship/game"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var players = []string{"Player1", "Player2"}

// Run plays every matchup of the config the configured number of times and,
// when an output directory is set, stores the agent configs, game records and
// move records as CSV files.
func Run(cfg Config) (Summary, error) {
	if err := cfg.validate(); err != nil {
		return Summary{}, err
	}

	// Every game gets its own seed so any single game can be replayed
	seeds := rand.New(rand.NewSource(cfg.Seed))
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	summary := Summary{Name: cfg.Name}

	log.Info().Msgf("starting %s experiment...", cfg.Name)

	for mi, matchup := range cfg.MatchUps {
		config1 := cfg.agent(matchup[0])
		config2 := cfg.agent(matchup[1])
		result := MatchUpResult{Agent1: config1, Agent2: config2}

		log.Info().Msgf("starting matchup %d of %d between agent1=%s and agent2=%s...", mi+1, len(cfg.MatchUps), config1.Label(), config2.Label())

		for i := 0; i < cfg.Games; i++ {
			// Alternate the starting player
			starting := i%2 + 1
			winner, gameMetric, moveMetrics, err := runGame(config1, config2, starting, seeds.Uint64())
			if err != nil {
				return summary, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}
			result.add(winner, gameMetric, moveMetrics)

			log.Debug().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(cfg.MatchUps), i+1, winner)
		}

		log.Info().Msgf("completed matchup %d of %d: %s", mi+1, len(cfg.MatchUps), result)
		summary.MatchUps = append(summary.MatchUps, result)
	}

	log.Info().Msgf("completed %s experiment", cfg.Name)

	if cfg.OutputDir == "" {
		return summary, nil
	}
	dir, err := store(cfg, gameRecords, moveRecords)
	summary.Dir = dir
	return summary, err
}

func store(cfg Config, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(cfg.OutputDir, cfg.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(cfg.Agents)
	if err != nil {
		return writer.Dir(), fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return writer.Dir(), fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return writer.Dir(), fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())

	return writer.Dir(), nil
}

// runGame plays a single game between two agents and returns the winner's player name
func runGame(config1, config2 metrics.AgentConfig, starting int, seed uint64) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	rng := rand.New(rand.NewSource(seed))
	fleet := game.StandardFleet()

	agent1, err := agent.New(config1.Kind, fleet, rand.New(rand.NewSource(rng.Uint64())))
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	agent2, err := agent.New(config2.Kind, fleet, rand.New(rand.NewSource(rng.Uint64())))
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}

	e, err := engine.LocalEngine(
		[]engine.Player{{Name: players[0], Agent: agent1}, {Name: players[1], Agent: agent2}},
		fleet,
		engine.WithRand(rng),
		engine.WithStartingPlayer(starting),
		engine.WithMetrics(),
	)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}

	winner, gameMetric, moveMetrics := e.Run()
	return winner, gameMetric, moveMetrics, nil
}
