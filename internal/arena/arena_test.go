package arena

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"log"
	"strings"
	"testing"

	"github.com/IlikeChooros/go-minimax/pkg/bench"
)

func TestParseConfig(t *testing.T) {
	t.Setenv("ARENA_GAMES", "20")

	cfg, err := ParseConfig(flag.NewFlagSet("test", flag.ContinueOnError), []string{"-opponent", "engine", "-workers", "2"})
	if err != nil {
		t.Fatal(err)
	}
	want := Config{Games: 20, Workers: 2, Opponent: OpponentEngine}
	if cfg != want {
		t.Fatalf("got %+v, want %+v", cfg, want)
	}
}

func TestParseConfigInvalid(t *testing.T) {
	for _, args := range [][]string{
		{"-opponent", "human"},
		{"-workers", "0"},
		{"-games", "-1"},
	} {
		if _, err := ParseConfig(flag.NewFlagSet("test", flag.ContinueOnError), args); err == nil {
			t.Errorf("args %v: expected error", args)
		}
	}
}

func TestRunRandom(t *testing.T) {
	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	cfg := Config{Games: 10, Workers: 2, Opponent: OpponentRandom, Seed: 3, Verbose: true}

	summary, err := Run(context.Background(), cfg, out, log.New(logs, "", 0))
	if err != nil {
		t.Fatal(err)
	}
	if summary.TotalGames != 10 || summary.P2Wins != 0 {
		t.Fatalf("unexpected summary %s", summary)
	}
	if !strings.Contains(out.String(), "minimax vs random") {
		t.Errorf("unexpected output %q", out.String())
	}
	if n := strings.Count(logs.String(), "\n"); n != 11 {
		t.Errorf("expected 10 game lines and a timing line, got %d lines:\n%s", n, logs.String())
	}
}

func TestRunEngineJSON(t *testing.T) {
	out := &bytes.Buffer{}
	cfg := Config{Games: 2, Workers: 1, Opponent: OpponentEngine, JSON: true}

	if _, err := Run(context.Background(), cfg, out, nil); err != nil {
		t.Fatal(err)
	}

	var summary bench.VersusSummary
	if err := json.Unmarshal(out.Bytes(), &summary); err != nil {
		t.Fatalf("invalid json %q: %v", out.String(), err)
	}
	if summary.Draws != 2 || summary.P2Name != "minimax" {
		t.Fatalf("unexpected summary %+v", summary)
	}
}
