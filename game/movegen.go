package game

import "connect4/meta"

// LegalMoves returns the allowed columns that still have room, in ascending
// order. Both searches explore children in this order.
func LegalMoves(b Board) []int {
	moves := make([]int, 0, len(meta.AllowedColumns))
	for _, c := range meta.AllowedColumns {
		if !b.IsFull(c) {
			moves = append(moves, c)
		}
	}
	return moves
}
