// Package experiments measures how much Alpha-Beta saves over Minimax on
// random positions.
package experiments

import (
	"fmt"
	"strconv"

	"connect4/engine"
	"connect4/game"
	"connect4/report"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Trial is the outcome of searching one position with both algorithms.
type Trial struct {
	ID                 int
	Depth              int
	Value              int
	MinimaxNodes       int
	AlphaBetaNodes     int
	MinimaxTerminals   int
	AlphaBetaTerminals int
	Cutoffs            int
	Agree              bool
}

// Saving is the fraction of Minimax nodes that Alpha-Beta did not visit.
func (t Trial) Saving() float64 {
	if t.MinimaxNodes == 0 {
		return 0
	}
	return 1 - float64(t.AlphaBetaNodes)/float64(t.MinimaxNodes)
}

// RandomBoards draws n positions with the given number of tokens each.
func RandomBoards(seed uint64, n, tokens int) []game.Board {
	rng := rand.New(rand.NewSource(seed))
	boards := make([]game.Board, 0, n)
	for i := 0; i < n; i++ {
		boards = append(boards, game.RandomBoard(rng, tokens))
	}
	return boards
}

func RunPruningExperiment(boards []game.Board, depth int) []Trial {
	log.Info().Msgf("starting pruning experiment on %d boards at depth %d...", len(boards), depth)

	trials := make([]Trial, 0, len(boards))
	for i, board := range boards {
		c := engine.NewLocalEngine(board, depth).Run()
		trials = append(trials, Trial{
			ID:                 i + 1,
			Depth:              depth,
			Value:              c.Minimax.Value,
			MinimaxNodes:       len(c.Minimax.Nodes),
			AlphaBetaNodes:     len(c.AlphaBeta.Nodes),
			MinimaxTerminals:   c.Minimax.Terminals(),
			AlphaBetaTerminals: c.AlphaBeta.Terminals(),
			Cutoffs:            c.AlphaBeta.Metrics.Cutoffs,
			Agree:              c.Agree(),
		})
		log.Debug().Msgf("completed board %d of %d", i+1, len(boards))
	}

	log.Info().
		Int("boards", len(trials)).
		Float64("mean-saving", MeanSaving(trials)).
		Msg("completed pruning experiment")
	return trials
}

func MeanSaving(trials []Trial) float64 {
	if len(trials) == 0 {
		return 0
	}
	total := 0.0
	for _, t := range trials {
		total += t.Saving()
	}
	return total / float64(len(trials))
}

func WriteTrials(w *report.Writer, trials []Trial) error {
	header := []string{"id", "depth", "value", "minimax_nodes", "alphabeta_nodes",
		"minimax_terminals", "alphabeta_terminals", "cutoffs", "agree", "saving"}
	rows := make([][]string, 0, len(trials))
	for _, t := range trials {
		rows = append(rows, []string{
			strconv.Itoa(t.ID),
			strconv.Itoa(t.Depth),
			strconv.Itoa(t.Value),
			strconv.Itoa(t.MinimaxNodes),
			strconv.Itoa(t.AlphaBetaNodes),
			strconv.Itoa(t.MinimaxTerminals),
			strconv.Itoa(t.AlphaBetaTerminals),
			strconv.Itoa(t.Cutoffs),
			strconv.FormatBool(t.Agree),
			strconv.FormatFloat(t.Saving(), 'f', 4, 64),
		})
	}
	err := w.WriteCSV("trials.csv", header, rows)
	if err != nil {
		return fmt.Errorf("failed to store trials: %w", err)
	}
	log.Info().Msg("stored trials")
	return nil
}
