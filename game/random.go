package game

import "golang.org/x/exp/rand"

// RandomBoard drops up to tokens alternating tokens, starting with Max, into
// random non-full columns. The result always satisfies the gravity invariant
// but may already contain a win.
func RandomBoard(rng *rand.Rand, tokens int) Board {
	var b Board
	player := Max
	for i := 0; i < tokens; i++ {
		open := make([]int, 0, Columns)
		for c := 0; c < Columns; c++ {
			if !b.IsFull(c) {
				open = append(open, c)
			}
		}
		if len(open) == 0 {
			break
		}
		b = Drop(b, open[rng.Intn(len(open))], player)
		player = player.Opponent()
	}
	return b
}
