// Package arena parses arena flags and runs self-play matches.
package arena

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/IlikeChooros/go-minimax/internal/config"
	"github.com/IlikeChooros/go-minimax/pkg/bench"
)

const (
	OpponentEngine = "engine"
	OpponentRandom = "random"
)

// Config holds arena command configuration.
type Config struct {
	Games    int    `env:"ARENA_GAMES" envDefault:"100"`
	Workers  int    `env:"ARENA_WORKERS" envDefault:"4"`
	Opponent string `env:"ARENA_OPPONENT" envDefault:"random"`
	Seed     int64  `env:"ARENA_SEED" envDefault:"0"`
	Verbose  bool   `env:"ARENA_VERBOSE" envDefault:"false"`
	JSON     bool   `env:"ARENA_JSON" envDefault:"false"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.IntVar(&cfg.Games, "games", cfg.Games, "Number of games to play")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Number of games played in parallel")
	fs.StringVar(&cfg.Opponent, "opponent", cfg.Opponent, "Opponent of the engine: engine or random")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Seed of the random opponent (0 = time based)")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Log every finished game")
	fs.BoolVar(&cfg.JSON, "json", cfg.JSON, "Print the summary as JSON")
	if err := config.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}

	switch cfg.Opponent {
	case OpponentEngine, OpponentRandom:
	default:
		return Config{}, fmt.Errorf("invalid opponent %q, expected %s or %s", cfg.Opponent, OpponentEngine, OpponentRandom)
	}
	if cfg.Games < 0 || cfg.Workers < 1 {
		return Config{}, fmt.Errorf("invalid games=%d workers=%d", cfg.Games, cfg.Workers)
	}
	return cfg, nil
}

// Run plays the configured match and writes the summary to 'out'.
func Run(ctx context.Context, cfg Config, out io.Writer, logger *log.Logger) (bench.VersusSummary, error) {
	var opponent bench.Player = bench.NewEnginePlayer()
	if cfg.Opponent == OpponentRandom {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		opponent = bench.NewRandomPlayer(seed)
	}

	arena := bench.NewVersusArena(bench.NewEnginePlayer(), opponent).Setup(cfg.Games, cfg.Workers)
	if cfg.Verbose && logger != nil {
		arena.SetListener(bench.NewLogListener(logger))
	}

	start := time.Now()
	summary, err := arena.Run(ctx)
	if err != nil {
		return summary, err
	}
	if logger != nil {
		logger.Printf("played %d games in %s", summary.TotalGames, time.Since(start).Round(time.Millisecond))
	}

	if cfg.JSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return summary, encoder.Encode(summary)
	}
	_, err = fmt.Fprintln(out, summary)
	return summary, err
}
