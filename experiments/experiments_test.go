package experiments

import (
	"battleship/agent"
	"battleship/experiments/metrics"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("reads the bundled config", func(t *testing.T) {
		cfg, err := LoadConfig("strength.yaml")
		require.NoError(t, err)
		require.Equal(t, "strength", cfg.Name)
		require.Equal(t, 200, cfg.Games)
		require.Equal(t, uint64(7), cfg.Seed)
		require.Equal(t, []metrics.AgentConfig{
			{ID: 1, Kind: agent.KindRandom},
			{ID: 2, Kind: agent.KindHunt, Name: "hunter"},
		}, cfg.Agents)
		require.Equal(t, [][]int{{1, 2}, {2, 1}, {2, 2}}, cfg.MatchUps)
	})

	t.Run("fills in defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "minimal.yaml")
		content := "agents:\n  - id: 1\n    kind: hunt\nmatchups:\n  - [1, 1]\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		require.Equal(t, DefaultName, cfg.Name)
		require.Equal(t, DefaultGames, cfg.Games)
	})

	t.Run("rejects unknown agent kinds", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		content := "agents:\n  - id: 1\n    kind: psychic\nmatchups:\n  - [1, 1]\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		_, err := LoadConfig(path)
		require.ErrorIs(t, err, agent.ErrUnknownKind)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestConfigValidate(t *testing.T) {
	for name, mutate := range map[string]func(*Config){
		"no games":          func(c *Config) { c.Games = 0 },
		"no agents":         func(c *Config) { c.Agents = nil },
		"duplicate ids":     func(c *Config) { c.Agents = append(c.Agents, c.Agents[0]) },
		"empty kind":        func(c *Config) { c.Agents[0].Kind = "" },
		"no matchups":       func(c *Config) { c.MatchUps = nil },
		"unknown agent":     func(c *Config) { c.MatchUps = [][]int{{1, 9}} },
		"three-way matchup": func(c *Config) { c.MatchUps = [][]int{{1, 2, 1}} },
	} {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			require.ErrorIs(t, cfg.validate(), ErrInvalidConfig)
		})
	}

	require.NoError(t, DefaultConfig().validate())
}

func TestRun(t *testing.T) {
	t.Run("plays every game and writes the records", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Name = "unit"
		cfg.Games = 2
		cfg.OutputDir = t.TempDir()

		summary, err := Run(cfg)
		require.NoError(t, err)
		require.Len(t, summary.MatchUps, len(cfg.MatchUps))
		for _, result := range summary.MatchUps {
			require.Equal(t, 2, result.Games)
			require.Equal(t, 0, result.Unfinished)
			require.Equal(t, 2, result.Wins[0]+result.Wins[1])
		}

		require.NotEmpty(t, summary.Dir)
		for _, file := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
			info, err := os.Stat(filepath.Join(summary.Dir, file))
			require.NoError(t, err, file)
			require.NotZero(t, info.Size(), file)
		}
	})

	t.Run("hunter beats the random shooter", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Games = 20
		cfg.MatchUps = [][]int{{1, 2}}

		summary, err := Run(cfg)
		require.NoError(t, err)
		require.Empty(t, summary.Dir, "Nothing is stored without an output directory")

		result := summary.MatchUps[0]
		require.Greater(t, result.Wins[1], result.Wins[0])
		require.Less(t, result.AverageShotsToWin(2), 100.0)
	})

	t.Run("same seed gives the same results", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Games = 4

		a, err := Run(cfg)
		require.NoError(t, err)
		b, err := Run(cfg)
		require.NoError(t, err)
		for i := range a.MatchUps {
			require.Equal(t, a.MatchUps[i].Wins, b.MatchUps[i].Wins)
			require.Equal(t, a.MatchUps[i].AverageShotsToWin(1), b.MatchUps[i].AverageShotsToWin(1))
			require.Equal(t, a.MatchUps[i].AverageShotsToWin(2), b.MatchUps[i].AverageShotsToWin(2))
		}
	})

	t.Run("invalid config is rejected before playing", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Games = -1
		_, err := Run(cfg)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}
