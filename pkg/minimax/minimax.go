package minimax

import (
	"errors"

	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

var ErrNoLegalMove = errors.New("minimax: no legal move, position is terminal")

// Exhaustive minimax search for one side of the board.
//
// The engine mutates the given board during the search and restores it before
// returning, it never allocates a copy per ply. It keeps a node counter, so a
// single Engine must not be used by several goroutines at once.
type Engine struct {
	mark     ttt.Mark
	opponent ttt.Mark
	nodes    uint64
}

// Create an engine maximizing the score for 'mark' (ttt.Cross or ttt.Circle)
func NewEngine(mark ttt.Mark) *Engine {
	if mark != ttt.Circle {
		mark = ttt.Cross
	}
	return &Engine{mark: mark, opponent: mark.Opponent()}
}

// The side this engine plays
func (e *Engine) Mark() ttt.Mark {
	return e.mark
}

// Number of positions visited by the last Evaluate/BestMove/Search/Analyze call
func (e *Engine) Nodes() uint64 {
	return e.nodes
}

// Evaluate returns the value of the position with perfect play from both sides,
// 'maximizing' tells whether the engine's mark is the one to move.
// Terminal positions are scored regardless of 'maximizing'.
func (e *Engine) Evaluate(board *ttt.Board, maximizing bool) Score {
	e.nodes = 0
	return e.evaluate(board, maximizing)
}

func (e *Engine) evaluate(board *ttt.Board, maximizing bool) Score {
	e.nodes++

	switch board.Winner() {
	case e.mark:
		return ScoreWin
	case e.opponent:
		return ScoreLoss
	}
	if board.IsFull() {
		return ScoreDraw
	}

	moves := board.EmptyPositions()
	if maximizing {
		best := ScoreLoss
		for _, move := range moves.Slice() {
			board.Place(move, e.mark)
			score := e.evaluate(board, false)
			board.Clear(move)
			best = max(best, score)
		}
		return best
	}

	best := ScoreWin
	for _, move := range moves.Slice() {
		board.Place(move, e.opponent)
		score := e.evaluate(board, true)
		board.Clear(move)
		best = min(best, score)
	}
	return best
}

// BestMove returns the optimal move for the engine's mark. Among equally scored
// moves the one with the lowest index is chosen. The engine doesn't prefer
// faster wins: every win scores the same.
func (e *Engine) BestMove(board *ttt.Board) (ttt.Move, error) {
	move, _, err := e.bestMove(board)
	return move, err
}

func (e *Engine) bestMove(board *ttt.Board) (ttt.Move, Score, error) {
	e.nodes = 0
	if board.IsTerminal() {
		return ttt.MoveIllegal, scoreNone, ErrNoLegalMove
	}

	bestMove, bestScore := ttt.MoveIllegal, scoreNone
	moves := board.EmptyPositions()
	for _, move := range moves.Slice() {
		board.Place(move, e.mark)
		score := e.evaluate(board, false)
		board.Clear(move)

		// strictly greater, so the earliest move keeps ties
		if score > bestScore {
			bestScore = score
			bestMove = move
		}
	}

	return bestMove, bestScore, nil
}
