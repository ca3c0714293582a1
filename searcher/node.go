package searcher

import (
	"math"
	"strconv"
	"strings"

	"connect4/game"

	"github.com/samber/lo"
)

// Infinity stands in for an unbounded window edge.
const Infinity = math.MaxInt

type NodeKind int

const (
	Terminal NodeKind = iota
	Maximizing
	Minimizing
)

// KindAt returns the kind of a non-terminal node: even depths maximize, odd
// depths minimize.
func KindAt(depth int) NodeKind {
	if depth%2 == 0 {
		return Maximizing
	}
	return Minimizing
}

func (k NodeKind) String() string {
	switch k {
	case Maximizing:
		return "max"
	case Minimizing:
		return "min"
	default:
		return "terminal"
	}
}

// Player returns whose token is dropped when leaving a node of this kind.
func (k NodeKind) Player() game.Player {
	if k == Minimizing {
		return game.Min
	}
	return game.Max
}

// Initial is the running value before any child has been seen.
func (k NodeKind) Initial() int {
	if k == Minimizing {
		return Infinity
	}
	return -Infinity
}

// Prefer folds a child value into the running value.
func (k NodeKind) Prefer(running, val int) int {
	if k == Minimizing {
		return min(running, val)
	}
	return max(running, val)
}

// Tighten moves this node's own bound of the window toward value: alpha for
// maximizing nodes, beta for minimizing ones.
func (k NodeKind) Tighten(value, alpha, beta int) (int, int) {
	if k == Minimizing {
		if value < beta {
			beta = value
		}
		return alpha, beta
	}
	if value > alpha {
		alpha = value
	}
	return alpha, beta
}

// Record is the audit entry of one visited node. Records are immutable once
// emitted.
type Record struct {
	Path        []int
	State       string
	Depth       int
	Kind        NodeKind
	Value       int
	Moves       []int // legal moves, internal nodes only
	ChildValues []int // in exploration order

	// Alpha-Beta only
	Windowed bool
	Explored []int
	Pruned   bool
	Alpha    int
	Beta     int
}

// StateOf names a node by the columns played from the root.
func StateOf(path []int) string {
	if len(path) == 0 {
		return "Root"
	}
	return strings.Join(lo.Map(path, func(c int, _ int) string {
		return strconv.Itoa(c)
	}), "-")
}

func extend(path []int, move int) []int {
	child := make([]int, len(path)+1)
	copy(child, path)
	child[len(path)] = move
	return child
}
