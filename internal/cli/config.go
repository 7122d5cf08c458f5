// Package cli runs the interactive human vs engine game.
package cli

import (
	"flag"
	"fmt"

	"github.com/IlikeChooros/go-minimax/internal/config"
	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

const (
	FirstRandom = "random"
	FirstHuman  = "human"
	FirstAI     = "ai"
)

// Config holds tictactoe command configuration.
type Config struct {
	// Seed for choosing the starting player, 0 uses the current time
	Seed    int64  `env:"TICTACTOE_SEED" envDefault:"0"`
	First   string `env:"TICTACTOE_FIRST" envDefault:"random"`
	Board   string `env:"TICTACTOE_BOARD" envDefault:"3/3/3"`
	NoColor bool   `env:"TICTACTOE_NO_COLOR" envDefault:"false"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Seed used to pick the starting player (0 = time based)")
	fs.StringVar(&cfg.First, "first", cfg.First, "Who moves first: random, human or ai")
	fs.StringVar(&cfg.Board, "board", cfg.Board, "Starting position, e.g. xx1/oo1/3")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable colored output")
	if err := config.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg Config) Validate() error {
	switch cfg.First {
	case FirstRandom, FirstHuman, FirstAI:
	default:
		return fmt.Errorf("invalid first player %q, expected one of: %s, %s, %s",
			cfg.First, FirstRandom, FirstHuman, FirstAI)
	}

	if _, err := ttt.ParseBoard(cfg.Board); err != nil {
		return fmt.Errorf("invalid board: %w", err)
	}
	return nil
}
