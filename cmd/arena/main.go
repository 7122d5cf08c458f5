// Package main plays the minimax engine against an opponent many times and
// prints the match summary.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/IlikeChooros/go-minimax/internal/arena"
)

func main() {
	cfg, err := arena.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[ARENA] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := arena.Run(ctx, cfg, os.Stdout, log.Default()); err != nil {
		log.Fatalf("arena failed: %v", err)
	}
}
