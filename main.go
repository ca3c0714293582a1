package main

import (
	"fmt"
	"os"

	"connect4/config"
	"connect4/engine"
	"connect4/experiments"
	"connect4/game"
	"connect4/report"
	"connect4/searcher"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	runID := uuid.NewString()
	zerolog.SetGlobalLevel(cfg.Level())
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().
		Timestamp().
		Str("run", runID).
		Logger()

	if cfg.Experiment > 0 {
		runExperiment(cfg, runID)
		return
	}
	runComparison(cfg, runID)
}

func startingBoard(cfg *config.Config) game.Board {
	if !cfg.RandomBoard() {
		return game.InitialBoard()
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	return game.RandomBoard(rng, cfg.Tokens)
}

// runComparison prints the full transcript of both searches on one board.
func runComparison(cfg *config.Config, runID string) {
	board := startingBoard(cfg)
	p := report.NewPrinter(os.Stdout, cfg.Color)

	p.Configuration(cfg.Depth)
	p.InitialBoard(board)

	var options []engine.Option
	if cfg.Trace {
		options = append(options, engine.WithTracer(func(algorithm engine.Algorithm) searcher.Tracer {
			p.RunHeader(algorithm, cfg.Depth)
			return p.Transcript()
		}))
	}
	e := engine.NewLocalEngine(board, cfg.Depth, options...)

	minimax := e.RunMinimax()
	p.RootValue(engine.Minimax, minimax.Value)
	alphabeta := e.RunAlphaBeta()
	p.RootValue(engine.AlphaBeta, alphabeta.Value)

	c := engine.Comparison{
		Depth:     cfg.Depth,
		Minimax:   minimax,
		AlphaBeta: alphabeta,
	}
	if !c.Agree() {
		log.Error().
			Int("minimax", minimax.Value).
			Int("alphabeta", alphabeta.Value).
			Msg("decision values differ")
	}

	p.Tree(minimax.Nodes, fmt.Sprintf("COMPLETE MINIMAX TREE (DEPTH %d)", cfg.Depth))
	p.Tree(alphabeta.Nodes, fmt.Sprintf("ALPHA-BETA TREE WITH PRUNING (DEPTH %d)", cfg.Depth))
	p.TerminalSummary(minimax.Nodes)
	p.TerminalSummary(alphabeta.Nodes)
	p.FinalComparison(c)

	if cfg.ExportDir == "" {
		return
	}
	w, err := report.NewWriter(cfg.ExportDir, runID)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create export writer")
	}
	err = w.WriteComparison(board, c)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to export comparison")
	}
	log.Info().Str("dir", w.Dir()).Msg("stored comparison")
}

func runExperiment(cfg *config.Config, runID string) {
	seed := cfg.Seed
	if seed == 0 {
		seed = 1
	}
	trials := experiments.RunPruningExperiment(experiments.RandomBoards(seed, cfg.Experiment, cfg.Tokens), cfg.Depth)
	fmt.Printf("Pruning experiment: %d boards at depth %d, mean node saving %.1f%%\n",
		len(trials), cfg.Depth, 100*experiments.MeanSaving(trials))

	if cfg.ExportDir == "" {
		return
	}
	w, err := report.NewWriter(cfg.ExportDir, runID)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create export writer")
	}
	err = experiments.WriteTrials(w, trials)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to export trials")
	}
}
