package searcher

import (
	"connect4/game"

	"github.com/rs/zerolog/log"
)

// Minimax explores every node down to limit and returns the root value.
// Every child of every internal node is evaluated; nothing is pruned.
func Minimax(board game.Board, limit int, options ...Option) int {
	s := newSearch(limit, options)
	s.metrics.Start()

	value := s.minimax(board, 0, []int{})

	log.Debug().
		Str("algorithm", "minimax").
		Int("limit", limit).
		Int("value", value).
		Msg("search-returning")
	return value
}

// CollectMinimax runs Minimax and also returns every visited node's record.
func CollectMinimax(board game.Board, limit int, options ...Option) (int, []Record) {
	options, nodes := collect(options)
	value := Minimax(board, limit, options...)
	return value, *nodes
}

func (s *search) minimax(board game.Board, depth int, path []int) int {
	kind, score, moves := s.expand(board, depth)
	state := StateOf(path)

	s.tracer.Enter(Frame{
		Path:  path,
		State: state,
		Depth: depth,
		Kind:  kind,
		Board: board,
		Moves: moves,
	})

	if kind == Terminal {
		s.emit(Record{
			Path:  path,
			State: state,
			Depth: depth,
			Kind:  Terminal,
			Value: score,
		})
		return score
	}

	value := kind.Initial()
	children := make([]int, 0, len(moves))
	for _, m := range moves {
		child := game.Drop(board, m, kind.Player())
		val := s.minimax(child, depth+1, extend(path, m))
		children = append(children, val)
		value = kind.Prefer(value, val)

		s.tracer.Step(Step{
			State:      state,
			Depth:      depth,
			Kind:       kind,
			Move:       m,
			ChildValue: val,
			Value:      value,
		})
	}

	s.emit(Record{
		Path:        path,
		State:       state,
		Depth:       depth,
		Kind:        kind,
		Value:       value,
		Moves:       moves,
		ChildValues: children,
	})
	return value
}
