package connectivity

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/mldwidth/diag"
	"github.com/katalvlaran/mldwidth/hypergraph"
)

// adjacency is a sparse variable → neighbor-set accumulator.
type adjacency map[int]map[int]struct{}

func (a adjacency) link(u, v int) {
	nb, ok := a[u]
	if !ok {
		nb = make(map[int]struct{})
		a[u] = nb
	}
	nb[v] = struct{}{}
}

// Build derives the connectivity Map of hyperedges over detectorCount detectors.
//
// Every unordered pair of distinct variables inside one hyperedge becomes an
// undirected edge. Observable nodes are skipped unless WithLogicalObservables is set.
// Returns ErrInvalidInput on negative detectorCount or out-of-range nodes.
func Build(hyperedges []hypergraph.Hyperedge, detectorCount int, opts ...Option) (*Map, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if detectorCount < 0 {
		return nil, fmt.Errorf("%w: negative detector count %d", ErrInvalidInput, detectorCount)
	}

	m := newMap(detectorCount, o.observables)

	workers := o.workers
	if workers > len(hyperedges) {
		workers = len(hyperedges)
	}

	var err error
	if workers <= 1 {
		acc := make(adjacency)
		if err = m.accumulate(acc, hyperedges, 0); err == nil {
			m.merge(acc)
		}
	} else {
		err = m.buildSharded(hyperedges, workers)
	}
	if err != nil {
		return nil, err
	}

	o.sink.Record(diag.Event{
		Level:     diag.LevelInfo,
		Component: "connectivity",
		Name:      "built",
		Attrs: []diag.Attr{
			diag.Int("variables", m.Len()),
			diag.Int("hyperedges", len(hyperedges)),
			diag.Int("edges", m.EdgeCount()),
			diag.Int("workers", o.workers),
		},
	})

	return m, nil
}

// FromHypergraph builds the Map of h's hyperedges over h's detectors.
func FromHypergraph(h *hypergraph.Hypergraph, opts ...Option) (*Map, error) {
	if h == nil {
		return nil, fmt.Errorf("%w: nil hypergraph", ErrInvalidInput)
	}
	return Build(h.Hyperedges(), h.DetectorCount(), opts...)
}

// FromAdjacency builds a Map over variableCount detectors from raw neighbor
// lists. Lists are symmetrized; self references and out-of-range indices
// yield ErrInvalidInput.
func FromAdjacency(variableCount int, adj map[int][]int) (*Map, error) {
	if variableCount < 0 {
		return nil, fmt.Errorf("%w: negative variable count %d", ErrInvalidInput, variableCount)
	}
	m := newMap(variableCount, 0)
	acc := make(adjacency)
	for u, nbrs := range adj {
		if u < 0 || u >= variableCount {
			return nil, fmt.Errorf("%w: variable %d outside [0,%d)", ErrInvalidInput, u, variableCount)
		}
		for _, v := range nbrs {
			if v < 0 || v >= variableCount {
				return nil, fmt.Errorf("%w: neighbor %d of %d outside [0,%d)", ErrInvalidInput, v, u, variableCount)
			}
			if u == v {
				return nil, fmt.Errorf("%w: variable %d lists itself as a neighbor", ErrInvalidInput, u)
			}
			acc.link(u, v)
			acc.link(v, u)
		}
	}
	m.merge(acc)
	return m, nil
}

// buildSharded runs accumulate on contiguous shards concurrently, then merges
// the partial adjacencies in shard order.
func (m *Map) buildSharded(hyperedges []hypergraph.Hyperedge, workers int) error {
	parts := make([]adjacency, workers)
	errs := make([]error, workers)
	size := (len(hyperedges) + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * size
		hi := lo + size
		if hi > len(hyperedges) {
			hi = len(hyperedges)
		}
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			acc := make(adjacency)
			errs[w] = m.accumulate(acc, hyperedges[lo:hi], lo)
			parts[w] = acc
		}(w, lo, hi)
	}
	wg.Wait()

	// report the error of the lowest shard, i.e. the first bad hyperedge in input order
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	for _, acc := range parts {
		m.merge(acc)
	}
	return nil
}

// accumulate links every pair of distinct variables of each hyperedge into acc.
// base is the index of hyperedges[0] in the caller's slice (error messages only).
// It reads only immutable fields of m and may run concurrently.
func (m *Map) accumulate(acc adjacency, hyperedges []hypergraph.Hyperedge, base int) error {
	vars := make([]int, 0, 8)
	for i, edge := range hyperedges {
		vars = vars[:0]
		for _, n := range edge {
			v, ok, err := m.variableOf(n)
			if err != nil {
				return fmt.Errorf("%w: hyperedge %d: %v", ErrInvalidInput, base+i, err)
			}
			if ok {
				vars = append(vars, v)
			}
		}
		for a := 0; a < len(vars); a++ {
			for b := a + 1; b < len(vars); b++ {
				if vars[a] == vars[b] {
					continue
				}
				acc.link(vars[a], vars[b])
				acc.link(vars[b], vars[a])
			}
		}
	}
	return nil
}

// variableOf maps a node onto its variable index; ok is false for excluded observables.
func (m *Map) variableOf(n hypergraph.Node) (int, bool, error) {
	if n.IsDetector() {
		if n.Index < 0 || n.Index >= m.detectorCount {
			return 0, false, fmt.Errorf("node %s outside %d detectors", n, m.detectorCount)
		}
		return n.Index, true, nil
	}
	if m.observableCount == 0 {
		return 0, false, nil
	}
	if n.Index < 0 || n.Index >= m.observableCount {
		return 0, false, fmt.Errorf("node %s outside %d observables", n, m.observableCount)
	}
	return m.detectorCount + n.Index, true, nil
}

// merge unions acc into m and recounts edges.
func (m *Map) merge(acc adjacency) {
	for u, nbrs := range acc {
		row := m.adj[u]
		if row == nil {
			row = make(map[int]struct{}, len(nbrs))
			m.adj[u] = row
		}
		for v := range nbrs {
			if _, seen := row[v]; !seen {
				row[v] = struct{}{}
				if u < v {
					m.edges++
				}
			}
		}
	}
}
