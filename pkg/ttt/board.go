package ttt

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

var (
	ErrInvalidMove     = errors.New("ttt: invalid move, cell is occupied")
	ErrOutOfRange      = errors.New("ttt: move out of range [0, 8]")
	ErrNotNumeric      = errors.New("ttt: move is not a number")
	ErrInvalidNotation = errors.New("ttt: invalid board notation")
)

// 3x3 tic tac toe board, the cells and bitboards always describe the same position.
// The board doesn't track whose turn it is, callers are responsible for alternating
// the marks.
type Board struct {
	cells     [9]Mark
	bitboards [2]uint16
}

// Create an empty board
func NewBoard() *Board {
	return &Board{}
}

// Mark at given cell, Empty for out of range moves
func (b *Board) Cell(move Move) Mark {
	if !move.Valid() {
		return Empty
	}
	return b.cells[move]
}

// Cells returns a copy of the grid
func (b *Board) Cells() [9]Mark {
	return b.cells
}

// Number of cells occupied by given mark
func (b *Board) Count(mark Mark) int {
	if mark == Empty {
		return 9 - bits.OnesCount16(b.bitboards[0]|b.bitboards[1])
	}
	return bits.OnesCount16(b.bitboards[bitboardIndex(mark)])
}

// Place puts 'mark' on the cell if it's empty, otherwise leaves the board
// unchanged and returns false
func (b *Board) Place(move Move, mark Mark) bool {
	if !move.Valid() || (mark != Cross && mark != Circle) || b.cells[move] != Empty {
		return false
	}

	b.cells[move] = mark
	b.bitboards[bitboardIndex(mark)] |= 1 << move
	return true
}

// Same as Place, but reports why the move was rejected
func (b *Board) MakeLegalMove(move Move, mark Mark) error {
	if !move.Valid() {
		return fmt.Errorf("%w: %d", ErrOutOfRange, move)
	}
	if !b.Place(move, mark) {
		return fmt.Errorf("%w: %s already on %s", ErrInvalidMove, b.cells[move], move)
	}
	return nil
}

// Clear resets the cell to Empty, used to undo a move made with Place
func (b *Board) Clear(move Move) {
	if !move.Valid() {
		return
	}

	mark := b.cells[move]
	if mark == Empty {
		return
	}
	b.bitboards[bitboardIndex(mark)] &^= 1 << move
	b.cells[move] = Empty
}

// Remove every mark from the board
func (b *Board) Reset() {
	*b = Board{}
}

// Make a copy of the board (no shared memory)
func (b *Board) Clone() *Board {
	clone := *b
	return &clone
}

// Whose turn it is, given the mark that opened the game
func (b *Board) SideToMove(first Mark) Mark {
	if b.Count(first) > b.Count(first.Opponent()) {
		return first.Opponent()
	}
	return first
}

// Text grid, rows separated with a line
func (b *Board) String() string {
	builder := strings.Builder{}
	for i := 0; i < 9; i += 3 {
		fmt.Fprintf(&builder, "%s | %s | %s\n", b.cells[i], b.cells[i+1], b.cells[i+2])
		if i < 6 {
			builder.WriteString("---------\n")
		}
	}
	return builder.String()
}
