package engine

import "connect4/searcher"

type Algorithm string

const (
	Minimax   Algorithm = "minimax"
	AlphaBeta Algorithm = "alphabeta"
)

// Result is the outcome of one search over the engine's board.
type Result struct {
	Algorithm Algorithm
	Value     int
	Nodes     []searcher.Record
	Metrics   searcher.SearchMetrics
}

func (r Result) Terminals() int {
	n := 0
	for _, node := range r.Nodes {
		if node.Kind == searcher.Terminal {
			n++
		}
	}
	return n
}

type Comparison struct {
	Depth     int
	Minimax   Result
	AlphaBeta Result
}

// Agree reports whether both searches reached the same decision value.
func (c Comparison) Agree() bool {
	return c.Minimax.Value == c.AlphaBeta.Value
}

type Engine interface {
	RunMinimax() Result
	RunAlphaBeta() Result
	// Run searches the board with both algorithms, Minimax first
	Run() Comparison
}
