package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

const (
	HumanMark = ttt.Circle
	AIMark    = ttt.Cross
)

var ErrInputClosed = errors.New("cli: input closed before the game ended")

// Single human vs engine game
type Game struct {
	board    *ttt.Board
	engine   *minimax.Engine
	input    *bufio.Scanner
	out      io.Writer
	renderer *Renderer
	turn     ttt.Mark
	lines    chan inputLine
}

// Line read from the input, err is set on the last one
type inputLine struct {
	text string
	err  error
}

// Prepare a new game from the config, reading the human moves from 'in'
func NewGame(cfg Config, in io.Reader, out io.Writer) (*Game, error) {
	board, err := ttt.ParseBoard(cfg.Board)
	if err != nil {
		return nil, fmt.Errorf("invalid board: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Game{
		board:    board,
		engine:   minimax.NewEngine(AIMark),
		input:    bufio.NewScanner(in),
		out:      out,
		renderer: NewRenderer(out, !cfg.NoColor),
		turn:     startingMark(board, cfg.First, rand.New(rand.NewSource(seed))),
	}, nil
}

// Whoever has fewer marks on the board moves, otherwise use the configured first player
func startingMark(board *ttt.Board, first string, r *rand.Rand) ttt.Mark {
	cross, circle := board.Count(ttt.Cross), board.Count(ttt.Circle)
	switch {
	case cross > circle:
		return ttt.Circle
	case circle > cross:
		return ttt.Cross
	}

	switch first {
	case FirstHuman:
		return HumanMark
	case FirstAI:
		return AIMark
	}

	if r.Intn(2) == 0 {
		return AIMark
	}
	return HumanMark
}

func (g *Game) Board() *ttt.Board {
	return g.board
}

// Mark of the player to move
func (g *Game) Turn() ttt.Mark {
	return g.turn
}

// Play the game until it ends, returns the final outcome
func (g *Game) Play(ctx context.Context) (ttt.Outcome, error) {
	// Stops the input reader once the game is over
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fmt.Fprintln(g.out, "Welcome to unbeatable Tic-Tac-Toe!")
	fmt.Fprintf(g.out, "You play as '%s', AI plays as '%s'\n", HumanMark, AIMark)
	fmt.Fprint(g.out, "Positions: 0|1|2\n         3|4|5\n         6|7|8\n\n")

	for !g.board.IsTerminal() {
		if err := ctx.Err(); err != nil {
			return g.board.Outcome(), err
		}

		fmt.Fprint(g.out, g.renderer.Board(g.board))

		if g.turn == AIMark {
			if err := g.aiMove(); err != nil {
				return g.board.Outcome(), err
			}
		} else if err := g.humanMove(ctx); err != nil {
			return g.board.Outcome(), err
		}

		g.turn = g.turn.Opponent()
	}

	fmt.Fprint(g.out, g.renderer.Board(g.board))
	outcome := g.board.Outcome()
	fmt.Fprintln(g.out, g.renderer.Bold("\n"+outcomeMessage(outcome)))
	return outcome, nil
}

func (g *Game) aiMove() error {
	fmt.Fprintln(g.out, "\nAI is thinking...")

	move, err := g.engine.BestMove(g.board)
	if err != nil {
		return err
	}
	g.board.Place(move, AIMark)
	fmt.Fprintf(g.out, "AI plays at position %s\n", move)
	return nil
}

// Ask until the human enters a legal move
func (g *Game) humanMove(ctx context.Context) error {
	for {
		fmt.Fprint(g.out, "\nYour move (0-8): ")
		text, err := g.readLine(ctx)
		if err != nil {
			return err
		}

		move, err := ttt.ParseMove(text)
		if errors.Is(err, ttt.ErrNotNumeric) {
			fmt.Fprintln(g.out, "Enter a number between 0-8!")
			continue
		}
		if err != nil || !g.board.Place(move, HumanMark) {
			fmt.Fprintln(g.out, "Invalid move! Try again.")
			continue
		}
		return nil
	}
}

// Waits for the next input line or the context, whichever comes first.
// The scanner blocks on the reader, so it runs in its own goroutine.
func (g *Game) readLine(ctx context.Context) (string, error) {
	if g.lines == nil {
		g.lines = make(chan inputLine)
		go g.scan(ctx)
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line := <-g.lines:
		return line.text, line.err
	}
}

func (g *Game) scan(ctx context.Context) {
	send := func(line inputLine) bool {
		select {
		case g.lines <- line:
			return true
		case <-ctx.Done():
			return false
		}
	}

	for g.input.Scan() {
		if !send(inputLine{text: g.input.Text()}) {
			return
		}
	}

	err := ErrInputClosed
	if scanErr := g.input.Err(); scanErr != nil {
		err = fmt.Errorf("read move: %w", scanErr)
	}
	send(inputLine{err: err})
}

func outcomeMessage(outcome ttt.Outcome) string {
	switch outcome {
	case ttt.CrossWon:
		return "AI wins! (Unbeatable!)"
	case ttt.CircleWon:
		return "You win! (Rare against perfect AI)"
	}
	return "It's a tie!"
}

// Run plays a single game with the given configuration
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) (ttt.Outcome, error) {
	game, err := NewGame(cfg, in, out)
	if err != nil {
		return ttt.InProgress, err
	}
	return game.Play(ctx)
}
