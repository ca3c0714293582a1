package searcher

import "time"

type SearchMetrics struct {
	Duration  time.Duration
	Nodes     int
	Internal  int
	Terminals int
	Cutoffs   int
	MaxDepth  int
}

type MetricsCollector interface {
	Start()
	AddNode(kind NodeKind, depth int)
	AddCutoff()
	Complete() SearchMetrics
}

// The search is single-threaded, so plain counters suffice.
type metricsCollector struct {
	startTime time.Time
	metrics   SearchMetrics
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.metrics = SearchMetrics{}
}

func (m *metricsCollector) AddNode(kind NodeKind, depth int) {
	m.metrics.Nodes++
	if kind == Terminal {
		m.metrics.Terminals++
	} else {
		m.metrics.Internal++
	}
	if depth > m.metrics.MaxDepth {
		m.metrics.MaxDepth = depth
	}
}

func (m *metricsCollector) AddCutoff() {
	m.metrics.Cutoffs++
}

func (m *metricsCollector) Complete() SearchMetrics {
	metrics := m.metrics
	metrics.Duration = time.Since(m.startTime)
	return metrics
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                           {}
func (m *noMetricsCollector) AddNode(kind NodeKind, depth int) {}
func (m *noMetricsCollector) AddCutoff()                       {}
func (m *noMetricsCollector) Complete() SearchMetrics          { return SearchMetrics{} }
