package connectivity

import (
	"fmt"
	"sort"
	"strconv"
)

// Map is the read-only connectivity graph: variable index → neighbor set.
type Map struct {
	detectorCount   int
	observableCount int
	adj             []map[int]struct{} // nil row = isolated variable
	edges           int
}

func newMap(detectors, observables int) *Map {
	return &Map{
		detectorCount:   detectors,
		observableCount: observables,
		adj:             make([]map[int]struct{}, detectors+observables),
	}
}

// Len returns the number of variables (detectors plus included observables).
func (m *Map) Len() int { return len(m.adj) }

// DetectorCount returns the number of detector variables.
func (m *Map) DetectorCount() int { return m.detectorCount }

// ObservableCount returns the number of observable variables (0 unless included).
func (m *Map) ObservableCount() int { return m.observableCount }

// EdgeCount returns the number of undirected connectivity edges.
func (m *Map) EdgeCount() int { return m.edges }

// Degree returns |Neighbors(i)|, or 0 for an index outside [0, Len()).
func (m *Map) Degree(i int) int {
	if i < 0 || i >= len(m.adj) {
		return 0
	}
	return len(m.adj[i])
}

// Neighbors returns the neighbors of i in ascending order (a fresh slice).
// Out-of-range indices yield nil.
func (m *Map) Neighbors(i int) []int {
	if i < 0 || i >= len(m.adj) {
		return nil
	}
	out := make([]int, 0, len(m.adj[i]))
	for v := range m.adj[i] {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// ForEachNeighbor calls fn for every neighbor of i, in unspecified order.
// It does not allocate; use it on hot paths where order is irrelevant.
func (m *Map) ForEachNeighbor(i int, fn func(j int)) {
	if i < 0 || i >= len(m.adj) {
		return
	}
	for v := range m.adj[i] {
		fn(v)
	}
}

// HasEdge reports whether a and b are neighbors.
func (m *Map) HasEdge(a, b int) bool {
	if a < 0 || a >= len(m.adj) {
		return false
	}
	_, ok := m.adj[a][b]
	return ok
}

// Isolated returns the variables with no neighbors, ascending.
func (m *Map) Isolated() []int {
	var out []int
	for i, row := range m.adj {
		if len(row) == 0 {
			out = append(out, i)
		}
	}
	return out
}

// MaxDegree returns the largest neighbor-set size (0 for an empty Map).
func (m *Map) MaxDegree() int {
	best := 0
	for _, row := range m.adj {
		if len(row) > best {
			best = len(row)
		}
	}
	return best
}

// Label formats variable i as "D<i>" or "L<k>".
func (m *Map) Label(i int) string {
	if i >= m.detectorCount {
		return "L" + strconv.Itoa(i-m.detectorCount)
	}
	return "D" + strconv.Itoa(i)
}

// AdjacencyList returns a label-keyed copy of the Map with sorted neighbor labels,
// matching the display form used by decoders and logs.
func (m *Map) AdjacencyList() map[string][]string {
	out := make(map[string][]string, len(m.adj))
	for i := range m.adj {
		nbrs := m.Neighbors(i)
		labels := make([]string, len(nbrs))
		for k, v := range nbrs {
			labels[k] = m.Label(v)
		}
		out[m.Label(i)] = labels
	}
	return out
}

// Validate checks the Map invariants: every neighbor in range, no self-loops,
// symmetry, and the cached edge count. Returns ErrInconsistentState on violation.
func (m *Map) Validate() error {
	half := 0
	for u, row := range m.adj {
		for v := range row {
			switch {
			case v < 0 || v >= len(m.adj):
				return fmt.Errorf("%w: %s has neighbor %d outside [0,%d)", ErrInconsistentState, m.Label(u), v, len(m.adj))
			case v == u:
				return fmt.Errorf("%w: %s is its own neighbor", ErrInconsistentState, m.Label(u))
			case !m.HasEdge(v, u):
				return fmt.Errorf("%w: %s→%s has no mirror", ErrInconsistentState, m.Label(u), m.Label(v))
			}
			half++
		}
	}
	if half != 2*m.edges {
		return fmt.Errorf("%w: edge count %d does not match %d adjacency entries", ErrInconsistentState, m.edges, half)
	}
	return nil
}
