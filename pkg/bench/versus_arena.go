package bench

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

/*
Arena benchmark subpackage, plays a series of tic tac toe games between two players.
The first mover alternates every game and always plays ttt.Cross.
*/

type VersusArena struct {
	VersusArenaStats
	Player1  Player
	Player2  Player
	NGames   int
	NWorkers int
	listener Listener
}

func NewVersusArena(player1, player2 Player) *VersusArena {
	return &VersusArena{
		Player1:  player1,
		Player2:  player2,
		NGames:   100,
		NWorkers: 2,
		listener: DefaultListener{},
	}
}

func (va *VersusArena) Setup(nGames, nWorkers int) *VersusArena {
	va.NGames = max(0, nGames)
	va.NWorkers = max(1, nWorkers)
	return va
}

func (va *VersusArena) SetListener(listener Listener) *VersusArena {
	if listener == nil {
		listener = DefaultListener{}
	}
	va.listener = listener
	return va
}

func (va *VersusArena) Summary() VersusSummary {
	return VersusSummary{
		TotalGames:       va.Total(),
		P1Wins:           va.P1Wins(),
		P2Wins:           va.P2Wins(),
		FirstToMoveWins:  va.FirstToMoveWins(),
		SecondToMoveWins: va.SecondToMoveWins(),
		Draws:            va.Draws(),
		Workers:          va.NWorkers,
		P1Name:           va.Player1.Name(),
		P2Name:           va.Player2.Name(),
	}
}

// Run plays all games, equally distributed between the workers, and blocks until
// they are done. Every worker gets its own clones of the players and its own board.
// Cancelling the context stops the workers between moves; unfinished games are not counted.
func (va *VersusArena) Run(ctx context.Context) (VersusSummary, error) {
	va.reset()

	// The fields are exported, so they may bypass Setup
	va.NGames = max(0, va.NGames)
	va.NWorkers = max(1, va.NWorkers)

	group, ctx := errgroup.WithContext(ctx)
	nGames := va.NGames / va.NWorkers
	rest := va.NGames % va.NWorkers
	start := 0

	for id := 0; id < va.NWorkers; id++ {
		count := nGames
		if rest > 0 {
			count++
			rest--
		}

		// Clone here, so the players are never shared between goroutines
		p1, p2 := va.Player1.Clone(), va.Player2.Clone()
		id, first := id, start
		group.Go(func() error {
			return va.worker(ctx, id, first, count, p1, p2)
		})
		start += count
	}

	err := group.Wait()
	return va.Summary(), err
}

func (va *VersusArena) worker(ctx context.Context, id, first, nGames int, p1, p2 Player) error {
	board := ttt.NewBoard()

	for game := first; game < first+nGames; game++ {
		record, err := playGame(ctx, board, p1, p2, game%2 == 0)
		if err != nil {
			return fmt.Errorf("worker %d game %d: %w", id, game, err)
		}

		record.WorkerID = id
		record.Game = game
		va.add(record)
		va.listener.OnGameEnd(record)
	}
	return nil
}

func playGame(ctx context.Context, board *ttt.Board, p1, p2 Player, p1WentFirst bool) (GameRecord, error) {
	board.Reset()
	moves := make([]ttt.Move, 0, 9)

	players := [2]Player{p2, p1}
	if p1WentFirst {
		players = [2]Player{p1, p2}
	}

	mark := ttt.Cross
	for turn := 0; !board.IsTerminal(); turn++ {
		if err := ctx.Err(); err != nil {
			return GameRecord{}, err
		}

		player := players[turn%2]
		move, err := player.Play(ctx, board, mark)
		if err != nil {
			return GameRecord{}, fmt.Errorf("%s: %w", player.Name(), err)
		}
		if err := board.MakeLegalMove(move, mark); err != nil {
			return GameRecord{}, fmt.Errorf("%s: %w", player.Name(), err)
		}

		moves = append(moves, move)
		mark = mark.Opponent()
	}

	outcome := board.Outcome()
	return GameRecord{
		P1WentFirst: p1WentFirst,
		Moves:       moves,
		Outcome:     outcome,
		Result:      toAgentResult(outcome, p1WentFirst),
		Notation:    board.Notation(),
	}, nil
}
