package engine

import (
	"connect4/game"
	"connect4/searcher"

	"github.com/rs/zerolog/log"
)

type Option func(e *localEngine)

// TracerFactory builds the tracer following one algorithm's run.
type TracerFactory func(Algorithm) searcher.Tracer

type localEngine struct {
	board  game.Board
	depth  int
	tracer TracerFactory
}

func WithTracer(factory TracerFactory) Option {
	return func(e *localEngine) {
		e.tracer = factory
	}
}

func NewLocalEngine(board game.Board, depth int, options ...Option) Engine {
	if depth < 0 {
		panic("search depth cannot be negative")
	}
	e := &localEngine{
		board: board,
		depth: depth,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

type collectFn func(game.Board, int, ...searcher.Option) (int, []searcher.Record)

func (e *localEngine) RunMinimax() Result {
	return e.run(Minimax, searcher.CollectMinimax)
}

func (e *localEngine) RunAlphaBeta() Result {
	return e.run(AlphaBeta, searcher.CollectAlphaBeta)
}

func (e *localEngine) Run() Comparison {
	c := Comparison{
		Depth:     e.depth,
		Minimax:   e.RunMinimax(),
		AlphaBeta: e.RunAlphaBeta(),
	}

	if !c.Agree() {
		log.Error().
			Int("minimax", c.Minimax.Value).
			Int("alphabeta", c.AlphaBeta.Value).
			Msg("decision values differ")
	}
	log.Info().
		Int("depth", e.depth).
		Int("minimax-terminals", c.Minimax.Terminals()).
		Int("alphabeta-terminals", c.AlphaBeta.Terminals()).
		Int("cutoffs", c.AlphaBeta.Metrics.Cutoffs).
		Bool("agree", c.Agree()).
		Msg("comparison complete")
	return c
}

func (e *localEngine) run(algorithm Algorithm, collect collectFn) Result {
	metrics := searcher.NewMetricsCollector()
	options := []searcher.Option{searcher.WithMetrics(metrics)}
	if e.tracer != nil {
		options = append(options, searcher.WithTracer(e.tracer(algorithm)))
	}

	log.Info().Msgf("starting %s search to depth %d...", algorithm, e.depth)
	value, nodes := collect(e.board, e.depth, options...)
	result := Result{
		Algorithm: algorithm,
		Value:     value,
		Nodes:     nodes,
		Metrics:   metrics.Complete(),
	}
	log.Info().
		Str("algorithm", string(algorithm)).
		Int("value", value).
		Int("nodes", result.Metrics.Nodes).
		Int("terminals", result.Metrics.Terminals).
		Dur("duration", result.Metrics.Duration).
		Msg("search complete")
	return result
}
