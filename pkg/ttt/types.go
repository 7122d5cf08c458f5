package ttt

// Mark is the content of a single cell
type Mark uint8

const (
	Empty  Mark = 0
	Cross  Mark = 1
	Circle Mark = 2
)

// Opponent returns the other side, Empty stays Empty
func (m Mark) Opponent() Mark {
	switch m {
	case Cross:
		return Circle
	case Circle:
		return Cross
	}
	return Empty
}

func (m Mark) String() string {
	switch m {
	case Cross:
		return "X"
	case Circle:
		return "O"
	}
	return " "
}

const (
	_bitboardCrossIdx  = 0
	_bitboardCircleIdx = 1

	_fullBoard uint16 = 0b111111111
)

// bitboard index of given mark, marks other than Cross/Circle are not valid here
func bitboardIndex(m Mark) int {
	if m == Circle {
		return _bitboardCircleIdx
	}
	return _bitboardCrossIdx
}
