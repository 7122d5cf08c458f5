package bench

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

type Player interface {
	Name() string
	// Play returns the move for 'mark' on the board, the board must be
	// left unchanged
	Play(ctx context.Context, board *ttt.Board, mark ttt.Mark) (ttt.Move, error)
	// Clone itself, without any shared memory with the other object
	Clone() Player
}

// Perfect play, backed by the minimax engine
type EnginePlayer struct {
	engines [3]*minimax.Engine
}

func NewEnginePlayer() *EnginePlayer {
	return &EnginePlayer{}
}

func (p *EnginePlayer) Name() string {
	return "minimax"
}

func (p *EnginePlayer) Play(_ context.Context, board *ttt.Board, mark ttt.Mark) (ttt.Move, error) {
	if mark != ttt.Cross && mark != ttt.Circle {
		return ttt.MoveIllegal, fmt.Errorf("bench: invalid mark %q", mark)
	}
	if p.engines[mark] == nil {
		p.engines[mark] = minimax.NewEngine(mark)
	}
	return p.engines[mark].BestMove(board)
}

func (p *EnginePlayer) Clone() Player {
	return NewEnginePlayer()
}

// Plays a uniformly random empty cell
type RandomPlayer struct {
	rand *rand.Rand
}

func NewRandomPlayer(seed int64) *RandomPlayer {
	return &RandomPlayer{rand: rand.New(rand.NewSource(seed))}
}

func (p *RandomPlayer) Name() string {
	return "random"
}

func (p *RandomPlayer) Play(_ context.Context, board *ttt.Board, _ ttt.Mark) (ttt.Move, error) {
	moves := board.EmptyPositions()
	if moves.Size == 0 || board.IsTerminal() {
		return ttt.MoveIllegal, minimax.ErrNoLegalMove
	}
	return moves.Moves[p.rand.Intn(int(moves.Size))], nil
}

// The clone gets its own generator, seeded from this one
func (p *RandomPlayer) Clone() Player {
	return NewRandomPlayer(p.rand.Int63())
}
