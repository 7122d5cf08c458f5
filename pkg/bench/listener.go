package bench

import (
	"log"
)

// Receives every finished game, may be called from several workers at once
type Listener interface {
	OnGameEnd(record GameRecord)
}

type DefaultListener struct{}

func (DefaultListener) OnGameEnd(GameRecord) {}

// Writes one line per game
type LogListener struct {
	Logger *log.Logger
}

func NewLogListener(logger *log.Logger) *LogListener {
	return &LogListener{Logger: logger}
}

func (l *LogListener) OnGameEnd(record GameRecord) {
	first := "player2"
	if record.P1WentFirst {
		first = "player1"
	}
	l.Logger.Printf("worker %d game %d: %s (first %s) moves %v board %s",
		record.WorkerID, record.Game, record.Result, first, record.Moves, record.Notation)
}
