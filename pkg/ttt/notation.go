package ttt

import (
	"fmt"
	"strings"
)

const (
	EmptyBoardNotation string = "3/3/3"
)

// String notation of the board, similar to a FEN string of a chessboard:
// three rows separated with '/', top row first. 'x' and 'o' are the marks,
// a digit stands for that many empty cells in a row.
//
// For example:
//
//	X | X |
//	---------
//	O | O |
//	---------
//	  |   |
//
// is written as
//
//	xx1/oo1/3
func (b *Board) Notation() string {
	builder := strings.Builder{}

	for row := 0; row < 3; row++ {
		counter := 0
		for col := 0; col < 3; col++ {
			switch mark := b.cells[row*3+col]; mark {
			case Cross, Circle:
				if counter > 0 {
					fmt.Fprintf(&builder, "%d", counter)
					counter = 0
				}
				builder.WriteString(strings.ToLower(mark.String()))
			default:
				counter++
			}
		}

		if counter > 0 {
			fmt.Fprintf(&builder, "%d", counter)
		}
		if row != 2 {
			builder.WriteByte('/')
		}
	}

	return builder.String()
}

// Set the board from the notation (see Notation), on error the board is left unchanged
func (b *Board) FromNotation(notation string) error {
	rows := strings.Split(strings.TrimSpace(notation), "/")
	if len(rows) != 3 {
		return fmt.Errorf("%w: expected 3 rows, got %d in %q", ErrInvalidNotation, len(rows), notation)
	}

	var board Board
	for row, str := range rows {
		col := 0
		for _, r := range str {
			if col >= 3 {
				return fmt.Errorf("%w: row %d is too long in %q", ErrInvalidNotation, row+1, notation)
			}

			switch {
			case r == 'x' || r == 'X':
				board.Place(Move(row*3+col), Cross)
				col++
			case r == 'o' || r == 'O':
				board.Place(Move(row*3+col), Circle)
				col++
			case r >= '1' && r <= '3':
				col += int(r - '0')
			default:
				return fmt.Errorf("%w: unexpected character %q in %q", ErrInvalidNotation, r, notation)
			}
		}

		if col != 3 {
			return fmt.Errorf("%w: row %d has %d cells in %q", ErrInvalidNotation, row+1, col, notation)
		}
	}

	*b = board
	return nil
}

// Create a board from the notation
func ParseBoard(notation string) (*Board, error) {
	b := NewBoard()
	if err := b.FromNotation(notation); err != nil {
		return nil, err
	}
	return b, nil
}
