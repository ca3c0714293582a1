package game

import "strings"

// InitialBoard returns the fixed starting position. Columns 0-2 hold three
// tokens each; the tokens in columns 3, 5 and 6 sit outside the playable
// range and never change.
func InitialBoard() Board {
	var b Board

	// Column 0, bottom up: O X X
	b[5][0] = Min
	b[4][0] = Max
	b[3][0] = Max

	// Column 1, bottom up: X O X
	b[5][1] = Max
	b[4][1] = Min
	b[3][1] = Max

	// Column 2, bottom up: X X X
	b[5][2] = Max
	b[4][2] = Max
	b[3][2] = Max

	b[5][3] = Min
	b[5][5] = Min
	b[5][6] = Min
	b[4][6] = Min

	return b
}

// Drop returns a copy of the board with player's token in the lowest empty
// cell of col. A full or out of range column returns the board unchanged.
func Drop(b Board, col int, player Player) Board {
	if col < 0 || col >= Columns {
		return b
	}
	for r := Rows - 1; r >= 0; r-- {
		if b[r][col] == Empty {
			b[r][col] = player
			break
		}
	}
	return b
}

// IsFull reports whether col has no empty cell left.
func (b *Board) IsFull(col int) bool {
	return b[0][col] != Empty
}

// Height returns the number of tokens stacked in col.
func (b *Board) Height(col int) int {
	h := 0
	for r := Rows - 1; r >= 0 && b[r][col] != Empty; r-- {
		h++
	}
	return h
}

// Win checks whether player has Connect tokens aligned horizontally,
// vertically or on either diagonal.
func Win(b Board, player Player) bool {
	// Horizontal
	for r := 0; r < Rows; r++ {
		for c := 0; c <= Columns-Connect; c++ {
			if b.line(r, c, 0, 1, player) {
				return true
			}
		}
	}
	// Vertical
	for c := 0; c < Columns; c++ {
		for r := 0; r <= Rows-Connect; r++ {
			if b.line(r, c, 1, 0, player) {
				return true
			}
		}
	}
	// Diagonal down-right
	for r := 0; r <= Rows-Connect; r++ {
		for c := 0; c <= Columns-Connect; c++ {
			if b.line(r, c, 1, 1, player) {
				return true
			}
		}
	}
	// Diagonal up-right
	for r := Connect - 1; r < Rows; r++ {
		for c := 0; c <= Columns-Connect; c++ {
			if b.line(r, c, -1, 1, player) {
				return true
			}
		}
	}
	return false
}

func (b *Board) line(r, c, dr, dc int, player Player) bool {
	for i := 0; i < Connect; i++ {
		if b[r+i*dr][c+i*dc] != player {
			return false
		}
	}
	return true
}

// Valid checks the gravity invariant: no token sits above an empty cell.
func Valid(b Board) bool {
	for c := 0; c < Columns; c++ {
		for r := 1; r < Rows; r++ {
			if b[r][c] == Empty && b[r-1][c] != Empty {
				return false
			}
		}
	}
	return true
}

func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b[r][c].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
