package searcher

import (
	"connect4/game"

	"github.com/rs/zerolog/log"
)

// Observer receives every visited node's finalized record, children before
// their parent, the root last.
type Observer func(Record)

// Frame describes a node when the search enters it. Moves is empty for
// terminal nodes. Alpha and Beta are the window the node was called with.
type Frame struct {
	Path     []int
	State    string
	Depth    int
	Kind     NodeKind
	Board    game.Board
	Moves    []int
	Windowed bool
	Alpha    int
	Beta     int
}

// Step describes an internal node right after one of its children returned.
type Step struct {
	State      string
	Depth      int
	Kind       NodeKind
	Move       int
	ChildValue int
	Value      int // running value after folding the child in
	Windowed   bool
	Alpha      int
	Beta       int
	Pruned     bool // remaining moves are skipped
}

// Tracer follows the search as it happens, e.g. to print a transcript.
type Tracer interface {
	Enter(f Frame)
	Step(s Step)
	Exit(r Record)
}

type noTracer struct{}

func (noTracer) Enter(Frame) {}
func (noTracer) Step(Step)   {}
func (noTracer) Exit(Record) {}

type Option func(s *search)

type search struct {
	limit     int
	observers []Observer
	tracer    Tracer
	metrics   MetricsCollector
}

func WithObserver(observer Observer) Option {
	return func(s *search) {
		if observer != nil {
			s.observers = append(s.observers, observer)
		}
	}
}

func WithTracer(tracer Tracer) Option {
	return func(s *search) {
		if tracer != nil {
			s.tracer = tracer
		}
	}
}

func WithMetrics(metrics MetricsCollector) Option {
	return func(s *search) {
		if metrics != nil {
			s.metrics = metrics
		}
	}
}

func newSearch(limit int, options []Option) *search {
	if limit < 0 {
		panic("depth limit cannot be negative")
	}
	s := &search{ // Default values
		limit:   limit,
		tracer:  noTracer{},
		metrics: NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// expand classifies a node once, before any move is generated. A node whose
// allowed columns are all full has nothing to aggregate and is scored like a
// terminal.
func (s *search) expand(board game.Board, depth int) (kind NodeKind, score int, moves []int) {
	score, terminal := game.Classify(board, depth, s.limit)
	if terminal {
		return Terminal, score, nil
	}
	moves = game.LegalMoves(board)
	if len(moves) == 0 {
		return Terminal, score, nil
	}
	return KindAt(depth), score, moves
}

func (s *search) emit(r Record) {
	s.metrics.AddNode(r.Kind, r.Depth)
	for _, observer := range s.observers {
		observer(r)
	}
	s.tracer.Exit(r)

	log.Trace().
		Str("state", r.State).
		Stringer("kind", r.Kind).
		Int("value", r.Value).
		Bool("pruned", r.Pruned).
		Msg("node")
}

// collect appends an observer gathering records into a slice, without
// touching the caller's options.
func collect(options []Option) ([]Option, *[]Record) {
	nodes := &[]Record{}
	all := make([]Option, 0, len(options)+1)
	all = append(all, options...)
	all = append(all, WithObserver(func(r Record) {
		*nodes = append(*nodes, r)
	}))
	return all, nodes
}
