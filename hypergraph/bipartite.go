package hypergraph

import (
	"strconv"

	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"
)

// Bipartite node classes.
const (
	ClassNode      = 0 // detector or observable
	ClassHyperedge = 1 // one error mechanism
)

// BipartiteNode is the gonum node type used by Bipartite.
// It implements graph.Node, dot.Node and encoding.Attributer.
type BipartiteNode struct {
	NodeID int64
	Name   string  // "D3", "L0", or "edge_7"
	Class  int     // ClassNode or ClassHyperedge
	Weight float64 // hyperedge weight; zero for ClassNode
}

// ID implements graph.Node.
func (n BipartiteNode) ID() int64 { return n.NodeID }

// DOTID implements dot.Node.
func (n BipartiteNode) DOTID() string { return n.Name }

// Attributes implements encoding.Attributer.
func (n BipartiteNode) Attributes() []encoding.Attribute {
	if n.Class == ClassHyperedge {
		weight := strconv.FormatFloat(n.Weight, 'g', -1, 64)
		return []encoding.Attribute{
			{Key: "label", Value: n.Name + "\n" + weight},
			{Key: "shape", Value: "box"},
			{Key: "style", Value: "filled"},
			{Key: "fillcolor", Value: "lightgreen"},
			{Key: "tooltip", Value: weight},
		}
	}
	return []encoding.Attribute{
		{Key: "style", Value: "filled"},
		{Key: "fillcolor", Value: "lightblue"},
	}
}

// Bipartite returns the node/hyperedge incidence graph.
//
// Node IDs: the i-th element of Nodes() has ID i; hyperedge j has ID
// NodeCount()+j. Every hyperedge node is joined to each distinct member node.
func (h *Hypergraph) Bipartite() *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()

	ids := make(map[Node]int64, len(h.nodes))
	for i, n := range h.nodes {
		id := int64(i)
		ids[n] = id
		g.AddNode(BipartiteNode{NodeID: id, Name: n.String(), Class: ClassNode})
	}

	base := int64(len(h.nodes))
	for j, edge := range h.hyperedges {
		he := BipartiteNode{
			NodeID: base + int64(j),
			Name:   "edge_" + strconv.Itoa(j),
			Class:  ClassHyperedge,
			Weight: h.weights[j],
		}
		g.AddNode(he)
		for _, n := range edge {
			member := g.Node(ids[n])
			// a mechanism may list the same target twice; simple graphs hold one edge
			if !g.HasEdgeBetween(he.ID(), member.ID()) {
				g.SetEdge(g.NewEdge(he, member))
			}
		}
	}

	return g
}

// MarshalDOT renders Bipartite() as a Graphviz DOT document named name.
func (h *Hypergraph) MarshalDOT(name string) ([]byte, error) {
	return dot.Marshal(h.Bipartite(), name, "", "  ")
}
