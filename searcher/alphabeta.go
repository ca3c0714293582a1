package searcher

import (
	"connect4/game"

	"github.com/rs/zerolog/log"
)

/*
function alphabeta(node, depth, α, β, maximizingPlayer) is
    if depth = 0 or node is a terminal node then
        return the value of node
    if maximizingPlayer then
        value := −∞
        for each child of node do
            value := max(value, alphabeta(child, depth − 1, α, β, FALSE))
            α := max(α, value)
            if α ≥ β then
                break (* β cut-off *)
        return value
    else
        value := +∞
        for each child of node do
            value := min(value, alphabeta(child, depth − 1, α, β, TRUE))
            β := min(β, value)
            if α ≥ β then
                break (* α cut-off *)
        return value
*/

// AlphaBeta returns the same root value as Minimax, skipping the remaining
// children of a node as soon as its window closes.
func AlphaBeta(board game.Board, limit int, options ...Option) int {
	return AlphaBetaWindow(board, limit, -Infinity, Infinity, options...)
}

// AlphaBetaWindow searches from the root with an explicit initial window.
func AlphaBetaWindow(board game.Board, limit int, alpha, beta int, options ...Option) int {
	s := newSearch(limit, options)
	s.metrics.Start()

	value := s.alphabeta(board, 0, []int{}, alpha, beta)

	log.Debug().
		Str("algorithm", "alphabeta").
		Int("limit", limit).
		Int("value", value).
		Msg("search-returning")
	return value
}

// CollectAlphaBeta runs AlphaBeta and also returns every visited node's
// record, pruning information included.
func CollectAlphaBeta(board game.Board, limit int, options ...Option) (int, []Record) {
	options, nodes := collect(options)
	value := AlphaBeta(board, limit, options...)
	return value, *nodes
}

// alpha and beta are this call's own copies: updates made while exploring
// children never reach siblings or the caller.
func (s *search) alphabeta(board game.Board, depth int, path []int, alpha, beta int) int {
	kind, score, moves := s.expand(board, depth)
	state := StateOf(path)

	s.tracer.Enter(Frame{
		Path:     path,
		State:    state,
		Depth:    depth,
		Kind:     kind,
		Board:    board,
		Moves:    moves,
		Windowed: true,
		Alpha:    alpha,
		Beta:     beta,
	})

	if kind == Terminal {
		s.emit(Record{
			Path:     path,
			State:    state,
			Depth:    depth,
			Kind:     Terminal,
			Value:    score,
			Windowed: true,
			Alpha:    alpha,
			Beta:     beta,
		})
		return score
	}

	value := kind.Initial()
	children := make([]int, 0, len(moves))
	explored := make([]int, 0, len(moves))
	pruned := false
	for _, m := range moves {
		child := game.Drop(board, m, kind.Player())
		val := s.alphabeta(child, depth+1, extend(path, m), alpha, beta)
		children = append(children, val)
		explored = append(explored, m)

		value = kind.Prefer(value, val)
		alpha, beta = kind.Tighten(value, alpha, beta)
		pruned = alpha >= beta

		s.tracer.Step(Step{
			State:      state,
			Depth:      depth,
			Kind:       kind,
			Move:       m,
			ChildValue: val,
			Value:      value,
			Windowed:   true,
			Alpha:      alpha,
			Beta:       beta,
			Pruned:     pruned,
		})

		if pruned {
			s.metrics.AddCutoff()
			break
		}
	}

	s.emit(Record{
		Path:        path,
		State:       state,
		Depth:       depth,
		Kind:        kind,
		Value:       value,
		Moves:       moves,
		ChildValues: children,
		Windowed:    true,
		Explored:    explored,
		Pruned:      pruned,
		Alpha:       alpha,
		Beta:        beta,
	})
	return value
}
