package main

import (
	"battleship/agent"
	"battleship/engine"
	"battleship/experiments"
	"battleship/game"
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

func main() {
	mode := flag.String("mode", "play", "play (agent vs agent), human (you vs an agent) or experiment")
	p1 := flag.String("p1", "random", "Player1's agent: random|reflex or hunt|goal")
	p2 := flag.String("p2", "hunt", "Player2's agent: random|reflex or hunt|goal")
	seed := flag.Uint64("seed", 0, "Random seed (0 = time-based)")
	configPath := flag.String("config", "", "YAML experiment config (experiment mode)")
	games := flag.Int("games", 0, "Games per matchup, overrides the config")
	out := flag.String("out", "", "Directory for experiment CSV files, overrides the config and BATTLESHIP_OUTPUT_DIR")
	level := flag.String("log-level", "", "Log level, overrides BATTLESHIP_LOG_LEVEL")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
	}
	setupLogging(firstNonEmpty(*level, os.Getenv("BATTLESHIP_LOG_LEVEL"), "info"))

	seedSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" && *seed != 0 {
			seedSet = true
		}
	})
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	var err error
	switch *mode {
	case "play":
		err = play(*p1, *p2, *seed, os.Stdout)
	case "human":
		err = playHuman(*p2, *seed, os.Stdin, os.Stdout)
	case "experiment":
		err = experiment(*configPath, *games, *seed, seedSet, firstNonEmpty(*out, os.Getenv("BATTLESHIP_OUTPUT_DIR")))
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("battleship failed")
	}
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		log.Warn().Msgf("unknown log level %q, using info", level)
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// play runs one agent-vs-agent match and prints both boards
func play(kind1, kind2 string, seed uint64, w io.Writer) error {
	rng := rand.New(rand.NewSource(seed))
	fleet := game.StandardFleet()

	players := make([]engine.Player, 2)
	for i, name := range []string{kind1, kind2} {
		kind, err := agent.ParseKind(name)
		if err != nil {
			return err
		}
		a, err := agent.New(kind, fleet, rand.New(rand.NewSource(rng.Uint64())))
		if err != nil {
			return err
		}
		players[i] = engine.Player{Name: fmt.Sprintf("Player%d (%s)", i+1, kind.Title()), Agent: a}
	}

	e, err := engine.LocalEngine(players, fleet, engine.WithRand(rng))
	if err != nil {
		return err
	}
	winner, _, _ := e.Run()

	for id, player := range e.Players() {
		board, err := e.Board(id + 1)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s fleet, %d shots fired at it:\n%s\n", player.Name, board.Fired(), board.Render(true))
	}
	fmt.Fprintf(w, "Winner: %s (%d shots to %d)\n", winner, e.ShotCount(1), e.ShotCount(2))
	return nil
}

// playHuman reads the human's shots from r, one coordinate per line, until the match ends or input runs out
func playHuman(kind string, seed uint64, r io.Reader, w io.Writer) error {
	k, err := agent.ParseKind(kind)
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(seed))
	fleet := game.StandardFleet()
	opponent, err := agent.New(k, fleet, rand.New(rand.NewSource(rng.Uint64())))
	if err != nil {
		return err
	}

	e, err := engine.LocalEngine(
		[]engine.Player{{Name: "You"}, {Name: k.Title(), Agent: opponent}},
		fleet,
		engine.WithRand(rng),
	)
	if err != nil {
		return err
	}
	own, _ := e.Board(1)
	target, _ := e.Board(2)

	fmt.Fprintf(w, "Your fleet:\n%s\n", own.Render(true))
	scanner := bufio.NewScanner(r)
	for !e.Over() {
		fmt.Fprintf(w, "Enemy waters:\n%s\nFire (e.g. C5): ", target.Render(false))
		if !scanner.Scan() {
			fmt.Fprintln(w)
			return scanner.Err()
		}

		c, err := game.ParseCoord(scanner.Text())
		if err != nil {
			fmt.Fprintf(w, "%v\n", err)
			continue
		}
		result, err := e.Fire(c)
		if err != nil {
			fmt.Fprintf(w, "%s: %v\n", result, err)
			continue
		}
		fmt.Fprintf(w, "%v: %s\n", c, result)
		if e.Over() {
			break
		}

		move, err := e.Step()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s fires at %v: %s\n", k.Title(), move.Target, move.Result)
	}

	fmt.Fprintf(w, "Your fleet:\n%s\nWinner: %s after %d shots\n", own.Render(true), e.Winner(), e.ShotCount(e.Turn()))
	return nil
}

func experiment(configPath string, games int, seed uint64, seedSet bool, out string) error {
	cfg, err := experimentConfig(configPath, games, seed, seedSet, out)
	if err != nil {
		return err
	}

	summary, err := experiments.Run(cfg)
	if err != nil {
		return err
	}
	for i, result := range summary.MatchUps {
		log.Info().Msgf("matchup %d: %s", i+1, result)
	}
	return nil
}

// experimentConfig loads the config file, or the default config without one,
// and applies the command line overrides. A loaded file keeps its own seed
// unless -seed was given.
func experimentConfig(configPath string, games int, seed uint64, seedSet bool, out string) (experiments.Config, error) {
	cfg := experiments.DefaultConfig()
	if configPath != "" {
		loaded, err := experiments.LoadConfig(configPath)
		if err != nil {
			return experiments.Config{}, err
		}
		cfg = loaded
	}
	if configPath == "" || seedSet {
		cfg.Seed = seed
	}
	if games > 0 {
		cfg.Games = games
	}
	if out != "" {
		cfg.OutputDir = out
	}
	return cfg, nil
}
