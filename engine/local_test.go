package engine

import (
	"testing"

	"connect4/game"
	"connect4/searcher"

	"github.com/stretchr/testify/require"
)

type countingTracer struct {
	entered int
}

func (c *countingTracer) Enter(searcher.Frame) { c.entered++ }
func (c *countingTracer) Step(searcher.Step)   {}
func (c *countingTracer) Exit(searcher.Record) {}

func TestLocalEngineRun(t *testing.T) {
	e := NewLocalEngine(game.InitialBoard(), 3)
	c := e.Run()

	require.True(t, c.Agree(), "Both searches should reach the same value")
	require.Equal(t, 3, c.Depth)
	require.Equal(t, 100, c.Minimax.Value)
	require.Equal(t, Minimax, c.Minimax.Algorithm)
	require.Equal(t, AlphaBeta, c.AlphaBeta.Algorithm)
	require.LessOrEqual(t, c.AlphaBeta.Terminals(), c.Minimax.Terminals())
	require.Equal(t, len(c.Minimax.Nodes), c.Minimax.Metrics.Nodes)
	require.Equal(t, len(c.AlphaBeta.Nodes), c.AlphaBeta.Metrics.Nodes)
	require.Equal(t, c.Minimax.Terminals(), c.Minimax.Metrics.Terminals)
	require.Zero(t, c.Minimax.Metrics.Cutoffs)
}

func TestLocalEngineTracer(t *testing.T) {
	tracers := map[Algorithm]*countingTracer{}
	e := NewLocalEngine(game.InitialBoard(), 2, WithTracer(func(a Algorithm) searcher.Tracer {
		tracers[a] = &countingTracer{}
		return tracers[a]
	}))

	mm := e.RunMinimax()
	ab := e.RunAlphaBeta()

	require.Len(t, tracers, 2, "Each algorithm should get its own tracer")
	require.Equal(t, len(mm.Nodes), tracers[Minimax].entered)
	require.Equal(t, len(ab.Nodes), tracers[AlphaBeta].entered)
}

func TestLocalEngineDepthZero(t *testing.T) {
	c := NewLocalEngine(game.InitialBoard(), 0).Run()

	require.Equal(t, 0, c.Minimax.Value)
	require.Equal(t, 0, c.AlphaBeta.Value)
	require.Equal(t, 1, c.Minimax.Terminals())
	require.Equal(t, 1, c.AlphaBeta.Terminals())
}

func TestNewLocalEngine(t *testing.T) {
	require.Panics(t, func() {
		NewLocalEngine(game.InitialBoard(), -1)
	}, "Should panic with a negative depth")
}
