package game

const (
	Rows    = 6
	Columns = 7
	Connect = 4
)

// Player is the content of a cell: the maximizing player's tokens are +1,
// the minimizing player's -1.
type Player int8

const (
	Empty Player = 0
	Max   Player = 1
	Min   Player = -1
)

func (p Player) Opponent() Player {
	return -p
}

func (p Player) String() string {
	switch p {
	case Max:
		return "X"
	case Min:
		return "O"
	default:
		return "."
	}
}

// Board is a value type: assigning it copies every cell, so positions derived
// from a board never share storage with it. Row 0 is the top row.
type Board [Rows][Columns]Player
