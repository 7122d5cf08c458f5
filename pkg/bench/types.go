package bench

import (
	"fmt"
	"sync/atomic"

	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

type VersusMatchResult int

const (
	VersusPl1Win VersusMatchResult = 1
	VersusPl2Win VersusMatchResult = -1
	VersusDraw   VersusMatchResult = 0
)

func (r VersusMatchResult) String() string {
	switch r {
	case VersusPl1Win:
		return "player1"
	case VersusPl2Win:
		return "player2"
	}
	return "draw"
}

type VersusArenaStats struct {
	p1Wins           atomic.Uint32
	p2Wins           atomic.Uint32
	draws            atomic.Uint32
	firstToMoveWins  atomic.Uint32
	secondToMoveWins atomic.Uint32
}

func (vas *VersusArenaStats) Total() int {
	return vas.P1Wins() + vas.P2Wins() + vas.Draws()
}

func (vas *VersusArenaStats) P1Wins() int {
	return int(vas.p1Wins.Load())
}

func (vas *VersusArenaStats) P2Wins() int {
	return int(vas.p2Wins.Load())
}

func (vas *VersusArenaStats) Draws() int {
	return int(vas.draws.Load())
}

func (vas *VersusArenaStats) FirstToMoveWins() int {
	return int(vas.firstToMoveWins.Load())
}

func (vas *VersusArenaStats) SecondToMoveWins() int {
	return int(vas.secondToMoveWins.Load())
}

func (vas *VersusArenaStats) reset() {
	vas.p1Wins.Store(0)
	vas.p2Wins.Store(0)
	vas.draws.Store(0)
	vas.firstToMoveWins.Store(0)
	vas.secondToMoveWins.Store(0)
}

func (vas *VersusArenaStats) add(record GameRecord) {
	switch record.Result {
	case VersusPl1Win:
		vas.p1Wins.Add(1)
	case VersusPl2Win:
		vas.p2Wins.Add(1)
	default:
		vas.draws.Add(1)
		return
	}

	if record.firstPlayerWon() {
		vas.firstToMoveWins.Add(1)
	} else {
		vas.secondToMoveWins.Add(1)
	}
}

type VersusSummary struct {
	TotalGames       int    `json:"total_games"`
	P1Wins           int    `json:"player1_wins"`
	P2Wins           int    `json:"player2_wins"`
	FirstToMoveWins  int    `json:"first_to_move_wins"`
	SecondToMoveWins int    `json:"second_to_move_wins"`
	Draws            int    `json:"draws"`
	Workers          int    `json:"workers"`
	P1Name           string `json:"player1_name"`
	P2Name           string `json:"player2_name"`
}

func (s VersusSummary) String() string {
	return fmt.Sprintf("%s vs %s: games %d, %s wins %d, %s wins %d, draws %d (first to move won %d, second %d)",
		s.P1Name, s.P2Name, s.TotalGames, s.P1Name, s.P1Wins, s.P2Name, s.P2Wins, s.Draws,
		s.FirstToMoveWins, s.SecondToMoveWins)
}

// Single finished game
type GameRecord struct {
	WorkerID    int
	Game        int
	P1WentFirst bool
	Moves       []ttt.Move
	Outcome     ttt.Outcome
	Result      VersusMatchResult
	Notation    string
}

func (r GameRecord) firstPlayerWon() bool {
	return r.P1WentFirst == (r.Result == VersusPl1Win)
}

// maps a game outcome to which agent won, the first mover always plays ttt.Cross
func toAgentResult(outcome ttt.Outcome, p1WentFirst bool) VersusMatchResult {
	switch outcome {
	case ttt.CrossWon:
		if p1WentFirst {
			return VersusPl1Win
		}
		return VersusPl2Win
	case ttt.CircleWon:
		if p1WentFirst {
			return VersusPl2Win
		}
		return VersusPl1Win
	}
	return VersusDraw
}
