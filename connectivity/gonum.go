package connectivity

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Graph exports m as a gonum undirected graph. Node IDs equal variable
// indices; every variable is present, isolated ones included.
func (m *Map) Graph() *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := range m.adj {
		g.AddNode(simple.Node(int64(i)))
	}
	for u, row := range m.adj {
		for v := range row {
			if u < v {
				g.SetEdge(simple.Edge{F: simple.Node(int64(u)), T: simple.Node(int64(v))})
			}
		}
	}
	return g
}

// Components returns the connected components of m. Each component is sorted
// ascending and components are ordered by their smallest variable.
func (m *Map) Components() [][]int {
	cc := topo.ConnectedComponents(m.Graph())
	out := make([][]int, 0, len(cc))
	for _, comp := range cc {
		out = append(out, nodeIndices(comp))
	}
	sort.Slice(out, func(a, b int) bool { return out[a][0] < out[b][0] })
	return out
}

func nodeIndices(nodes []graph.Node) []int {
	idx := make([]int, len(nodes))
	for i, n := range nodes {
		idx[i] = int(n.ID())
	}
	sort.Ints(idx)
	return idx
}
