package game

import "connect4/meta"

// Evaluate scores a position by its exact outcome only: +WinScore when the
// maximizing player has four aligned, -WinScore when the minimizing player
// has, 0 otherwise.
func Evaluate(b Board) int {
	if Win(b, Max) {
		return meta.WinScore
	}
	if Win(b, Min) {
		return -meta.WinScore
	}
	return 0
}

// Classify evaluates the board once and reports whether the node ends the
// branch: either the depth limit is reached or someone has already won,
// whoever made the last move.
func Classify(b Board, depth, limit int) (score int, terminal bool) {
	score = Evaluate(b)
	return score, depth >= limit || score != 0
}

func IsTerminal(b Board, depth, limit int) bool {
	_, terminal := Classify(b, depth, limit)
	return terminal
}
