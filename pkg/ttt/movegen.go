package ttt

import "math/bits"

// EmptyPositions returns every empty cell, always in ascending index order
func (b *Board) EmptyPositions() MoveList {
	var movelist MoveList

	free := uint(_fullBoard ^ (b.bitboards[_bitboardCrossIdx] | b.bitboards[_bitboardCircleIdx]))
	for free != 0 {
		movelist.AppendMove(Move(bits.TrailingZeros(free)))
		free &= free - 1
	}

	return movelist
}
