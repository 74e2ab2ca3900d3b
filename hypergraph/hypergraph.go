package hypergraph

import (
	"fmt"

	"github.com/katalvlaran/mldwidth/dem"
	"github.com/katalvlaran/mldwidth/diag"
)

// Hypergraph is the immutable result of Build.
type Hypergraph struct {
	nodes           []Node
	hyperedges      []Hyperedge
	weights         []float64
	detectorCount   int
	observableCount int
	withObservables bool
}

// Build projects every error event onto nodes and returns the hypergraph.
//
// Stages:
//  1. Validate counts (≥ 0).
//  2. Enumerate D0..D(detectorCount-1), then L0..L(observableCount-1) if requested.
//  3. For every error event: require targets and a probability, project the
//     targets (detectors always, observables only if requested, separators
//     never), append the hyperedge and its weight. Other event types are skipped.
//
// Any invalid event aborts the build with ErrInvalidInput naming the event index.
func Build(events []dem.Event, detectorCount, observableCount int, opts ...Option) (*Hypergraph, error) {
	o := options{sink: diag.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if detectorCount < 0 || observableCount < 0 {
		return nil, fmt.Errorf("%w: negative count (detectors=%d, observables=%d)", ErrInvalidInput, detectorCount, observableCount)
	}

	h := &Hypergraph{
		nodes:           enumerateNodes(detectorCount, observableCount, o.withObservables),
		detectorCount:   detectorCount,
		observableCount: observableCount,
		withObservables: o.withObservables,
	}

	empty := 0
	for i, e := range events {
		if !e.IsError() {
			continue
		}
		edge, weight, err := h.project(i, e)
		if err != nil {
			return nil, err
		}
		if len(edge) == 0 {
			empty++
		}
		h.hyperedges = append(h.hyperedges, edge)
		h.weights = append(h.weights, weight)
	}

	o.sink.Record(diag.Event{
		Level:     diag.LevelInfo,
		Component: "hypergraph",
		Name:      "built",
		Attrs: []diag.Attr{
			diag.Int("nodes", len(h.nodes)),
			diag.Int("hyperedges", len(h.hyperedges)),
			diag.Int("empty", empty),
		},
	})
	if empty > 0 {
		o.sink.Record(diag.Event{
			Level:     diag.LevelWarn,
			Component: "hypergraph",
			Name:      "empty_hyperedges",
			Attrs:     []diag.Attr{diag.Int("count", empty)},
		})
	}

	return h, nil
}

// FromModel builds the hypergraph of a parsed detector error model.
func FromModel(m *dem.Model, opts ...Option) (*Hypergraph, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil model", ErrInvalidInput)
	}
	return Build(m.Events, m.DetectorCount, m.ObservableCount, opts...)
}

func enumerateNodes(detectors, observables int, withObservables bool) []Node {
	n := detectors
	if withObservables {
		n += observables
	}
	nodes := make([]Node, 0, n)
	for i := 0; i < detectors; i++ {
		nodes = append(nodes, D(i))
	}
	if withObservables {
		for i := 0; i < observables; i++ {
			nodes = append(nodes, L(i))
		}
	}
	return nodes
}

// project validates one error event and maps its targets onto nodes. The
// event's probability is returned as the hyperedge weight.
func (h *Hypergraph) project(idx int, e dem.Event) (Hyperedge, float64, error) {
	if len(e.Targets) == 0 {
		return nil, 0, fmt.Errorf("%w: event %d has an empty target list", ErrInvalidInput, idx)
	}
	weight, err := e.Probability()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: event %d: %w", ErrInvalidInput, idx, err)
	}

	edge := make(Hyperedge, 0, len(e.Targets))
	for _, t := range e.Targets {
		switch t.Kind {
		case dem.TargetDetector:
			if t.Index < 0 || t.Index >= h.detectorCount {
				return nil, 0, fmt.Errorf("%w: event %d: detector %d outside [0,%d)", ErrInvalidInput, idx, t.Index, h.detectorCount)
			}
			edge = append(edge, D(t.Index))
		case dem.TargetObservable:
			if t.Index < 0 || t.Index >= h.observableCount {
				return nil, 0, fmt.Errorf("%w: event %d: observable %d outside [0,%d)", ErrInvalidInput, idx, t.Index, h.observableCount)
			}
			if h.withObservables {
				edge = append(edge, L(t.Index))
			}
		}
	}
	return edge, weight, nil
}

// Nodes returns a copy of the node set: detectors first, then observables (if included).
func (h *Hypergraph) Nodes() []Node {
	return append([]Node(nil), h.nodes...)
}

// Hyperedges returns the hyperedges in event order. The slice is shared; treat it as read-only.
func (h *Hypergraph) Hyperedges() []Hyperedge { return h.hyperedges }

// Weights returns the per-hyperedge weights. The slice is shared; treat it as read-only.
func (h *Hypergraph) Weights() []float64 { return h.weights }

// NodeCount returns len(Nodes()).
func (h *Hypergraph) NodeCount() int { return len(h.nodes) }

// HyperedgeCount returns len(Hyperedges()).
func (h *Hypergraph) HyperedgeCount() int { return len(h.hyperedges) }

// DetectorCount returns the number of detectors.
func (h *Hypergraph) DetectorCount() int { return h.detectorCount }

// ObservableCount returns the number of logical observables in the source model,
// whether or not they are included as nodes.
func (h *Hypergraph) ObservableCount() int { return h.observableCount }

// IncludesObservables reports whether L<k> nodes were requested.
func (h *Hypergraph) IncludesObservables() bool { return h.withObservables }

// NonEmpty returns the hyperedges that contain at least one node, with their weights.
func (h *Hypergraph) NonEmpty() ([]Hyperedge, []float64) {
	edges := make([]Hyperedge, 0, len(h.hyperedges))
	weights := make([]float64, 0, len(h.weights))
	for i, e := range h.hyperedges {
		if len(e) > 0 {
			edges = append(edges, e)
			weights = append(weights, h.weights[i])
		}
	}
	return edges, weights
}
