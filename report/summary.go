package report

import (
	"slices"
	"strings"

	"connect4/engine"
	"connect4/meta"
	"connect4/searcher"

	"github.com/samber/lo"
)

// Summary tallies the terminal positions of one search by outcome.
type Summary struct {
	Total   int
	ByValue map[int][]string // terminal states per value, in visit order
	Pruned  int
}

func Summarize(nodes []searcher.Record) Summary {
	terminals := lo.Filter(nodes, func(r searcher.Record, _ int) bool {
		return r.Kind == searcher.Terminal
	})
	byValue := lo.MapValues(
		lo.GroupBy(terminals, func(r searcher.Record) int { return r.Value }),
		func(group []searcher.Record, _ int) []string {
			return lo.Map(group, func(r searcher.Record, _ int) string { return r.State })
		},
	)
	return Summary{
		Total:   len(terminals),
		ByValue: byValue,
		Pruned:  lo.CountBy(nodes, func(r searcher.Record) bool { return r.Pruned }),
	}
}

// Values returns the distinct terminal values, best for MAX first.
func (s Summary) Values() []int {
	values := lo.Keys(s.ByValue)
	slices.Sort(values)
	slices.Reverse(values)
	return values
}

func interpret(value int) string {
	switch {
	case value > 0:
		return "MAX wins"
	case value < 0:
		return "MIN wins"
	default:
		return "Draw"
	}
}

func (p *Printer) TerminalSummary(nodes []searcher.Record) {
	p.banner("TERMINAL STATES SUMMARY")
	s := Summarize(nodes)

	p.printf("Total terminal states: %d\n\n", s.Total)
	for _, value := range s.Values() {
		states := s.ByValue[value]
		p.printf("Value %s (%s): %d states\n", formatValue(value), interpret(value), len(states))
		for _, state := range states {
			p.printf("  - Path: %s\n", state)
		}
		p.printf("\n")
	}
}

// TheoreticalTerminals is the leaf count of a full tree over the allowed
// columns.
func TheoreticalTerminals(depth int) int {
	n := 1
	for i := 0; i < depth; i++ {
		n *= len(meta.AllowedColumns)
	}
	return n
}

func (p *Printer) FinalComparison(c engine.Comparison) {
	rule := strings.Repeat("=", wideRule)
	p.printf("\n%s\n", rule)
	p.printf("FINAL COMPARISON (DEPTH %d)\n", c.Depth)
	p.printf("%s\n", rule)
	p.printf("Minimax value: %s\n", formatValue(c.Minimax.Value))
	p.printf("Alpha-Beta value: %s\n", formatValue(c.AlphaBeta.Value))
	p.printf("Minimax terminal states: %d\n", c.Minimax.Terminals())
	p.printf("Alpha-Beta terminal states: %d\n", c.AlphaBeta.Terminals())
	p.printf("Nodes with pruning: %d\n", Summarize(c.AlphaBeta.Nodes).Pruned)
	p.printf("Theoretical terminal nodes: %d\n", TheoreticalTerminals(c.Depth))
	p.printf("%s\n", rule)
}
