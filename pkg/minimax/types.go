package minimax

import (
	"fmt"

	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

// Game theoretic value of a position, from the engine's perspective
type Score int8

const (
	ScoreLoss Score = -1
	ScoreDraw Score = 0
	ScoreWin  Score = 1

	// lower than any real score, so the first candidate always replaces it
	scoreNone Score = -2
)

func (s Score) String() string {
	switch s {
	case ScoreWin:
		return "win"
	case ScoreLoss:
		return "loss"
	case ScoreDraw:
		return "draw"
	}
	return "none"
}

// Score of a single root move
type MoveScore struct {
	Move  ttt.Move
	Score Score
}

// Result of a root search
type Result struct {
	BestMove ttt.Move
	Score    Score
	Nodes    uint64
	TimeMs   int
}

func (r Result) String() string {
	return fmt.Sprintf("bestmove %s score %d (%s) nodes %d time %dms",
		r.BestMove, r.Score, r.Score, r.Nodes, r.TimeMs)
}
