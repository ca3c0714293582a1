// Package report renders search results as the console transcript: boards,
// the live trace of each search, tree dumps and summaries.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"connect4/engine"
	"connect4/game"
	"connect4/meta"
	"connect4/searcher"

	"github.com/muesli/termenv"
	"github.com/samber/lo"
)

const (
	wideRule   = 80
	narrowRule = 60
	nodeRule   = 50
)

type Printer struct {
	w   io.Writer
	out *termenv.Output
}

// NewPrinter writes to w. Without color, tokens are plain X and O.
func NewPrinter(w io.Writer, color bool) *Printer {
	profile := termenv.Ascii
	if color {
		profile = termenv.ANSI256
	}
	return &Printer{
		w:   w,
		out: termenv.NewOutput(w, termenv.WithProfile(profile)),
	}
}

func (p *Printer) printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) cell(player game.Player) string {
	switch player {
	case game.Max:
		return p.out.String("X").Foreground(p.out.Color("9")).Bold().String()
	case game.Min:
		return p.out.String("O").Foreground(p.out.Color("11")).Bold().String()
	default:
		return "."
	}
}

// Board prints one line per row, each prefixed by indent.
func (p *Printer) Board(b game.Board, indent string) {
	for r := 0; r < game.Rows; r++ {
		cells := make([]string, game.Columns)
		for c := 0; c < game.Columns; c++ {
			cells[c] = p.cell(b[r][c])
		}
		p.printf("%s%s\n", indent, strings.Join(cells, " "))
	}
}

func (p *Printer) Configuration(depth int) {
	p.printf("\n=== CONFIGURATION ===\n")
	p.printf("Maximum depth: %d\n", depth)
	p.printf("Board dimensions: %dx%d\n", game.Rows, game.Columns)
	p.printf("Allowed columns: %s\n", formatMoves(meta.AllowedColumns))
	p.printf("=====================\n\n")
}

func (p *Printer) InitialBoard(b game.Board) {
	p.printf("\nInitial board (X = MAX, O = MIN):\n\n")
	p.Board(b, "")
	p.printf("\n")
}

func (p *Printer) RunHeader(algorithm engine.Algorithm, depth int) {
	p.printf("\n--- Running %s (depth %d) ---\n\n", algorithmName(algorithm), depth)
}

func (p *Printer) RootValue(algorithm engine.Algorithm, value int) {
	p.printf("\n%s root decision value: %s\n\n", algorithmName(algorithm), formatValue(value))
}

func (p *Printer) banner(title string) {
	rule := strings.Repeat("=", wideRule)
	p.printf("\n%s\n%s\n%s\n", rule, center(title, wideRule), rule)
}

func algorithmName(algorithm engine.Algorithm) string {
	if algorithm == engine.AlphaBeta {
		return "Alpha-Beta"
	}
	return "Minimax"
}

// kindLabel names the side to move at depth, as shown in node headers.
func kindLabel(kind searcher.NodeKind) string {
	if kind == searcher.Minimizing {
		return "Min"
	}
	return "Max"
}

func formatValue(v int) string {
	switch {
	case v >= searcher.Infinity:
		return "inf"
	case v <= -searcher.Infinity:
		return "-inf"
	default:
		return strconv.Itoa(v)
	}
}

func formatMoves(values []int) string {
	return "[" + strings.Join(lo.Map(values, func(v int, _ int) string {
		return formatValue(v)
	}), ", ") + "]"
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
