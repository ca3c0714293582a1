package report

import (
	"slices"
	"strings"

	"connect4/searcher"

	"github.com/samber/lo"
)

// Tree prints the collected nodes level by level, in the order they were
// recorded within each level.
func (p *Printer) Tree(nodes []searcher.Record, title string) {
	p.banner(title)

	levels := lo.GroupBy(nodes, func(r searcher.Record) int { return r.Depth })
	depths := lo.Keys(levels)
	slices.Sort(depths)

	for _, depth := range depths {
		side := "MAX"
		if searcher.KindAt(depth) == searcher.Minimizing {
			side = "MIN"
		}
		p.printf("\nLevel %d (%s):\n", depth, side)
		p.printf("%s\n", strings.Repeat("-", narrowRule))

		for _, r := range levels[depth] {
			p.node(r)
		}
		p.printf("\n")
	}
}

func (p *Printer) node(r searcher.Record) {
	if r.Kind == searcher.Terminal {
		p.printf("  Terminal [%s] = %s\n", r.State, formatValue(r.Value))
		return
	}

	kind := strings.ToUpper(r.Kind.String())
	if r.Windowed {
		p.printf("  %s [%s] (α=%s, β=%s) = %s\n", kind, r.State, formatValue(r.Alpha), formatValue(r.Beta), formatValue(r.Value))
		p.printf("    Possible moves: %s\n", formatMoves(r.Moves))
		p.printf("    Explored moves: %s\n", formatMoves(r.Explored))
		p.printf("    Children values: %s\n", formatMoves(r.ChildValues))
		if r.Pruned {
			p.printf("    >>> PRUNING PERFORMED <<<\n")
		}
		return
	}
	p.printf("  %s [%s] = %s\n", kind, r.State, formatValue(r.Value))
	p.printf("    Moves: %s\n", formatMoves(r.Moves))
	p.printf("    Children values: %s\n", formatMoves(r.ChildValues))
}
