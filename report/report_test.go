package report

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"connect4/engine"
	"connect4/game"
	"connect4/meta"
	"connect4/searcher"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func comparison(t *testing.T, tracer engine.TracerFactory) engine.Comparison {
	t.Helper()
	var options []engine.Option
	if tracer != nil {
		options = append(options, engine.WithTracer(tracer))
	}
	return engine.NewLocalEngine(game.InitialBoard(), meta.MaxDepth, options...).Run()
}

func TestBoard(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)
	p.Board(game.InitialBoard(), "> ")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, game.Rows)
	require.Equal(t, "> X X X . . . .", lines[3])
	require.Equal(t, "> X O X . . . O", lines[4])
	require.Equal(t, "> O X X O . O O", lines[5])
}

func TestColoredBoard(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true)
	p.Board(game.InitialBoard(), "")
	require.Contains(t, buf.String(), "\x1b[")
}

func TestFormatting(t *testing.T) {
	require.Equal(t, "inf", formatValue(searcher.Infinity))
	require.Equal(t, "-inf", formatValue(-searcher.Infinity))
	require.Equal(t, "-100", formatValue(-100))
	require.Equal(t, "[0, 1, 2]", formatMoves([]int{0, 1, 2}))
	require.Equal(t, "[]", formatMoves(nil))
	require.Equal(t, "  ab  ", center("ab", 6))
	require.Equal(t, "Alpha-Beta", algorithmName(engine.AlphaBeta))
	require.Equal(t, "Minimax", algorithmName(engine.Minimax))
}

func TestConfiguration(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false).Configuration(3)
	out := buf.String()
	require.Contains(t, out, "Maximum depth: 3")
	require.Contains(t, out, "Board dimensions: 6x7")
	require.Contains(t, out, "Allowed columns: [0, 1, 2]")
}

func TestTranscript(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)
	comparison(t, func(engine.Algorithm) searcher.Tracer { return p.Transcript() })
	out := buf.String()

	t.Run("minimax lines", func(t *testing.T) {
		require.Contains(t, out, "Node [Root] - Current board:")
		require.Contains(t, out, "Max Node [Root], moves = [0, 1, 2]")
		require.Contains(t, out, "Terminal [2], eval = 100")
		require.Contains(t, out, "Max Node [Root] children values = ")
	})

	t.Run("alpha-beta lines", func(t *testing.T) {
		require.Contains(t, out, "Max Node [Root] (α=-inf, β=inf), moves = [0, 1, 2]")
		require.Contains(t, out, "After child 2, Max Node [Root] sees value = 100")
		require.Contains(t, out, "Max Node [Root] returns 100")
	})

	t.Run("children are indented below their parent", func(t *testing.T) {
		require.Contains(t, out, "\n  Node [0] - Current board:")
		require.Contains(t, out, "\n    Node [0-0] - Current board:")
	})
}

func TestTree(t *testing.T) {
	c := comparison(t, nil)

	var buf bytes.Buffer
	p := NewPrinter(&buf, false)
	p.Tree(c.Minimax.Nodes, "COMPLETE MINIMAX TREE (DEPTH 3)")
	p.Tree(c.AlphaBeta.Nodes, "ALPHA-BETA TREE WITH PRUNING (DEPTH 3)")
	out := buf.String()

	require.Contains(t, out, "COMPLETE MINIMAX TREE (DEPTH 3)")
	require.Contains(t, out, "Level 0 (MAX):")
	require.Contains(t, out, "Level 1 (MIN):")
	require.Contains(t, out, "  MAX [Root] = 100")
	require.Contains(t, out, "    Moves: [0, 1, 2]")
	require.Contains(t, out, "  MAX [Root] (α=100, β=inf) = 100")
	require.Contains(t, out, "    Explored moves: [0, 1, 2]")
	require.Contains(t, out, "  Terminal [2] = 100")
	require.Less(t, strings.Index(out, "Level 0 (MAX):"), strings.Index(out, "Level 1 (MIN):"))
}

func TestSummarize(t *testing.T) {
	nodes := []searcher.Record{
		{State: "0-0", Kind: searcher.Terminal, Value: 0},
		{State: "0-1", Kind: searcher.Terminal, Value: -100},
		{State: "0", Kind: searcher.Minimizing, Value: -100, Pruned: true},
		{State: "1", Kind: searcher.Terminal, Value: 100},
		{State: "2", Kind: searcher.Terminal, Value: 100},
		{State: "Root", Kind: searcher.Maximizing, Value: 100},
	}

	s := Summarize(nodes)
	require.Equal(t, 4, s.Total)
	require.Equal(t, 1, s.Pruned)
	require.Equal(t, []int{100, 0, -100}, s.Values())
	require.Equal(t, []string{"1", "2"}, s.ByValue[100])

	var buf bytes.Buffer
	NewPrinter(&buf, false).TerminalSummary(nodes)
	out := buf.String()
	require.Contains(t, out, "Total terminal states: 4")
	require.Contains(t, out, "Value 100 (MAX wins): 2 states\n  - Path: 1\n  - Path: 2\n")
	require.Contains(t, out, "Value 0 (Draw): 1 states")
	require.Contains(t, out, "Value -100 (MIN wins): 1 states")
	require.Less(t, strings.Index(out, "Value 100"), strings.Index(out, "Value -100"))
}

func TestFinalComparison(t *testing.T) {
	c := comparison(t, nil)

	var buf bytes.Buffer
	NewPrinter(&buf, false).FinalComparison(c)
	out := buf.String()

	require.Contains(t, out, "FINAL COMPARISON (DEPTH 3)")
	require.Contains(t, out, "Minimax value: 100")
	require.Contains(t, out, "Alpha-Beta value: 100")
	require.Contains(t, out, "Theoretical terminal nodes: 27")
	require.Equal(t, 1, TheoreticalTerminals(0))
	require.Equal(t, 9, TheoreticalTerminals(2))
}

func TestWriter(t *testing.T) {
	c := comparison(t, nil)
	board := game.InitialBoard()

	w, err := NewWriter(t.TempDir(), "test-run")
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(w.Dir(), "-test-run"))
	require.NoError(t, w.WriteComparison(board, c))

	t.Run("node files", func(t *testing.T) {
		for _, r := range []engine.Result{c.Minimax, c.AlphaBeta} {
			f, err := os.Open(filepath.Join(w.Dir(), string(r.Algorithm)+"_nodes.csv"))
			require.NoError(t, err)
			rows, err := csv.NewReader(f).ReadAll()
			f.Close()
			require.NoError(t, err)

			require.Len(t, rows, len(r.Nodes)+1)
			require.Equal(t, "state", rows[0][0])
			last := rows[len(rows)-1]
			require.Equal(t, "Root", last[0])
			require.Equal(t, "100", last[3])
		}
	})

	t.Run("summary", func(t *testing.T) {
		raw, err := os.ReadFile(filepath.Join(w.Dir(), "summary.yaml"))
		require.NoError(t, err)

		var summary RunSummary
		require.NoError(t, yaml.Unmarshal(raw, &summary))
		require.Equal(t, "test-run", summary.RunID)
		require.Equal(t, 3, summary.Depth)
		require.True(t, summary.Agree)
		require.Len(t, summary.Board, game.Rows)
		require.Len(t, summary.Algorithms, 2)
		require.Equal(t, "minimax", summary.Algorithms[0].Name)
		require.Equal(t, 100, summary.Algorithms[1].Value)
		require.Equal(t, c.Minimax.Terminals(), summary.Algorithms[0].Terminals)
	})
}
