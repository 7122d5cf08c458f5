package minimax

import (
	"time"

	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

type _Timer struct {
	start time.Time
}

func _NewTimer() *_Timer {
	return &_Timer{time.Now()}
}

// Elapsed time in milliseconds
func (t *_Timer) Deltatime() int {
	return int(time.Since(t.start).Milliseconds())
}

// Search the position and return the best move along with its score and search statistics
func (e *Engine) Search(board *ttt.Board) (Result, error) {
	timer := _NewTimer()
	move, score, err := e.bestMove(board)
	if err != nil {
		return Result{BestMove: ttt.MoveIllegal}, err
	}

	return Result{
		BestMove: move,
		Score:    score,
		Nodes:    e.nodes,
		TimeMs:   timer.Deltatime(),
	}, nil
}

// Analyze scores every legal move of the engine, in ascending move order
func (e *Engine) Analyze(board *ttt.Board) ([]MoveScore, error) {
	e.nodes = 0
	if board.IsTerminal() {
		return nil, ErrNoLegalMove
	}

	moves := board.EmptyPositions()
	scores := make([]MoveScore, 0, moves.Size)
	for _, move := range moves.Slice() {
		board.Place(move, e.mark)
		scores = append(scores, MoveScore{Move: move, Score: e.evaluate(board, false)})
		board.Clear(move)
	}
	return scores, nil
}
