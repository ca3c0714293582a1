package report

import (
	"strings"

	"connect4/searcher"
)

type transcript struct {
	p *Printer
}

// Transcript returns a tracer printing every node as the search visits it.
func (p *Printer) Transcript() searcher.Tracer {
	return &transcript{p: p}
}

func indentAt(depth int) string {
	return strings.Repeat("  ", depth)
}

func (t *transcript) Enter(f searcher.Frame) {
	indent := indentAt(f.Depth)
	rule := strings.Repeat("=", nodeRule)

	t.p.printf("%s%s\n", indent, rule)
	t.p.printf("%sNode [%s] - Current board:\n", indent, f.State)
	t.p.Board(f.Board, "  "+indent)
	t.p.printf("%s%s\n", indent, rule)

	if f.Kind == searcher.Terminal {
		return
	}
	if f.Windowed {
		t.p.printf("%s%s Node [%s] (α=%s, β=%s), moves = %s\n",
			indent, kindLabel(f.Kind), f.State, formatValue(f.Alpha), formatValue(f.Beta), formatMoves(f.Moves))
	} else {
		t.p.printf("%s%s Node [%s], moves = %s\n", indent, kindLabel(f.Kind), f.State, formatMoves(f.Moves))
	}
}

func (t *transcript) Step(s searcher.Step) {
	if !s.Windowed {
		return
	}
	indent := indentAt(s.Depth)
	t.p.printf("%s  After child %d, %s Node [%s] sees value = %s, α=%s, β=%s\n",
		indent, s.Move, kindLabel(s.Kind), s.State, formatValue(s.Value), formatValue(s.Alpha), formatValue(s.Beta))
	if s.Pruned {
		t.p.printf("%s  Prune at %s Node [%s] (α=%s ≥ β=%s)\n",
			indent, kindLabel(s.Kind), s.State, formatValue(s.Alpha), formatValue(s.Beta))
	}
}

func (t *transcript) Exit(r searcher.Record) {
	indent := indentAt(r.Depth)
	switch {
	case r.Kind == searcher.Terminal:
		t.p.printf("%sTerminal [%s], eval = %s\n", indent, r.State, formatValue(r.Value))
	case r.Windowed:
		t.p.printf("%s%s Node [%s] returns %s\n", indent, kindLabel(r.Kind), r.State, formatValue(r.Value))
	default:
		t.p.printf("%s%s Node [%s] children values = %s, chosen = %s\n",
			indent, kindLabel(r.Kind), r.State, formatMoves(r.ChildValues), formatValue(r.Value))
	}
}
