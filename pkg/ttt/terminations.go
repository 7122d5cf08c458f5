package ttt

// Outcome of the game, derived from the board on demand
type Outcome int

const (
	InProgress Outcome = iota
	CrossWon
	CircleWon
	Draw
)

func (o Outcome) String() string {
	switch o {
	case CrossWon:
		return "X won"
	case CircleWon:
		return "O won"
	case Draw:
		return "draw"
	}
	return "in progress"
}

// rows (top to bottom), columns (left to right), then both diagonals,
// the order decides which mark is reported if more than one line is complete
var _winningBitboardPatterns = [8]uint16{
	0b000000111, 0b000111000, 0b111000000,
	0b001001001, 0b010010010, 0b100100100,
	0b100010001, 0b001010100,
}

// Winner returns the mark of the first complete line, or Empty if there is none.
// On a legal board at most one mark can own a line; an injected board with
// several complete lines reports the first one in scan order.
func (b *Board) Winner() Mark {
	crossbb := b.bitboards[_bitboardCrossIdx]
	circlebb := b.bitboards[_bitboardCircleIdx]

	for _, pattern := range _winningBitboardPatterns {
		if crossbb&pattern == pattern {
			return Cross
		}
		if circlebb&pattern == pattern {
			return Circle
		}
	}
	return Empty
}

// No empty cells left
func (b *Board) IsFull() bool {
	return b.bitboards[_bitboardCrossIdx]|b.bitboards[_bitboardCircleIdx] == _fullBoard
}

// Either someone won or the board is full
func (b *Board) IsTerminal() bool {
	return b.Winner() != Empty || b.IsFull()
}

func (b *Board) Outcome() Outcome {
	switch b.Winner() {
	case Cross:
		return CrossWon
	case Circle:
		return CircleWon
	}
	if b.IsFull() {
		return Draw
	}
	return InProgress
}
