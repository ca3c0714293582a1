package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"connect4/engine"
	"connect4/game"
	"connect4/searcher"

	"gopkg.in/yaml.v3"
)

// Writer stores the records of a run under its own directory.
type Writer struct {
	runID   string
	baseDir string
}

type AlgorithmSummary struct {
	Name      string      `yaml:"name"`
	Value     int         `yaml:"value"`
	Nodes     int         `yaml:"nodes"`
	Terminals int         `yaml:"terminals"`
	Cutoffs   int         `yaml:"cutoffs"`
	Duration  string      `yaml:"duration"`
	Outcomes  map[int]int `yaml:"outcomes"`
}

type RunSummary struct {
	RunID      string             `yaml:"run_id"`
	Depth      int                `yaml:"depth"`
	Board      []string           `yaml:"board"`
	Agree      bool               `yaml:"agree"`
	Algorithms []AlgorithmSummary `yaml:"algorithms"`
}

// NewWriter creates <root>/<timestamp>-<runID>.
func NewWriter(root, runID string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, timestamp+"-"+runID)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		runID:   runID,
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatValue(v)
	}
	return strings.Join(parts, " ")
}

// WriteCSV writes header and rows to name inside the run directory.
func (w *Writer) WriteCSV(name string, header []string, rows [][]string) error {
	// Create a file
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	// Write header
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}

	// Write each row
	for _, row := range rows {
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteNodes writes one row per record, in visit order.
func (w *Writer) WriteNodes(algorithm engine.Algorithm, nodes []searcher.Record) error {
	header := []string{"state", "depth", "kind", "value", "moves", "explored", "children", "pruned", "alpha", "beta"}
	rows := make([][]string, 0, len(nodes))
	for _, r := range nodes {
		row := []string{
			r.State,
			strconv.Itoa(r.Depth),
			r.Kind.String(),
			formatValue(r.Value),
			joinInts(r.Moves),
			joinInts(r.Explored),
			joinInts(r.ChildValues),
			strconv.FormatBool(r.Pruned),
			"",
			"",
		}
		if r.Windowed {
			row[8] = formatValue(r.Alpha)
			row[9] = formatValue(r.Beta)
		}
		rows = append(rows, row)
	}
	return w.WriteCSV(string(algorithm)+"_nodes.csv", header, rows)
}

func summarizeResult(r engine.Result) AlgorithmSummary {
	outcomes := map[int]int{}
	for value, states := range Summarize(r.Nodes).ByValue {
		outcomes[value] = len(states)
	}
	return AlgorithmSummary{
		Name:      string(r.Algorithm),
		Value:     r.Value,
		Nodes:     r.Metrics.Nodes,
		Terminals: r.Terminals(),
		Cutoffs:   r.Metrics.Cutoffs,
		Duration:  r.Metrics.Duration.String(),
		Outcomes:  outcomes,
	}
}

// WriteSummary writes the comparison of both searches as summary.yaml.
func (w *Writer) WriteSummary(board game.Board, c engine.Comparison) error {
	summary := RunSummary{
		RunID: w.runID,
		Depth: c.Depth,
		Board: strings.Split(strings.TrimRight(board.String(), "\n"), "\n"),
		Agree: c.Agree(),
		Algorithms: []AlgorithmSummary{
			summarizeResult(c.Minimax),
			summarizeResult(c.AlphaBeta),
		},
	}

	out, err := yaml.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	err = os.WriteFile(filepath.Join(w.baseDir, "summary.yaml"), out, 0644)
	if err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}

// WriteComparison stores both node lists and the summary.
func (w *Writer) WriteComparison(board game.Board, c engine.Comparison) error {
	for _, r := range []engine.Result{c.Minimax, c.AlphaBeta} {
		if err := w.WriteNodes(r.Algorithm, r.Nodes); err != nil {
			return err
		}
	}
	return w.WriteSummary(board, c)
}
