package ttt

import (
	"fmt"
	"strconv"
	"strings"
)

// Move is a cell index in range [0, 9), cells are stored row-major:
//
//	0 | 1 | 2
//	3 | 4 | 5
//	6 | 7 | 8
type Move uint8

const (
	MoveIllegal Move = 255
)

func (m Move) Valid() bool {
	return m < 9
}

func (m Move) Row() int {
	return int(m) / 3
}

func (m Move) Col() int {
	return int(m) % 3
}

func (m Move) String() string {
	if !m.Valid() {
		return "-"
	}
	return strconv.Itoa(int(m))
}

// Parse user input into a move, accepts only integers in range [0, 9)
func ParseMove(s string) (Move, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return MoveIllegal, fmt.Errorf("%w: %q", ErrNotNumeric, s)
	}
	if n < 0 || n > 8 {
		return MoveIllegal, fmt.Errorf("%w: %d", ErrOutOfRange, n)
	}
	return Move(n), nil
}

// Fixed size list of moves, returned by value so generating moves doesn't allocate
type MoveList struct {
	Moves [9]Move
	Size  uint8
}

func (ml *MoveList) AppendMove(mv Move) {
	ml.Moves[ml.Size] = mv
	ml.Size++
}

func (ml *MoveList) Slice() []Move {
	return ml.Moves[:ml.Size]
}

func (ml MoveList) String() string {
	parts := make([]string, ml.Size)
	for i := 0; i < int(ml.Size); i++ {
		parts[i] = ml.Moves[i].String()
	}
	return strings.Join(parts, " ")
}
