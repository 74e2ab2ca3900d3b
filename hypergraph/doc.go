// Package hypergraph turns the error mechanisms of a detector error model into
// a weighted hypergraph over detector (and optionally logical-observable) nodes.
//
// What
//
//   - Nodes: D0..D(n-1) for the n detectors; L0..L(k-1) are appended only when
//     WithLogicalObservables is given.
//   - Hyperedges: one per error mechanism, listing the nodes it flips in target
//     order. Hyperedges are never deduplicated; two mechanisms flipping the same
//     set stay two hyperedges with their own weights.
//   - Weights: the mechanism's first argument (its probability), untransformed.
//     Weights()[i] always belongs to Hyperedges()[i].
//
// Empty hyperedges
//
//	A mechanism whose targets are all excluded (e.g. "error(p) L0" without
//	WithLogicalObservables) still produces a hyperedge so the pairing with
//	Weights holds, but that hyperedge is empty. It carries no connectivity;
//	NonEmpty returns the filtered view.
//
// Visualization
//
//	Bipartite returns a gonum graph with one node per hypergraph node and one
//	per hyperedge ("edge_<i>"), joined by membership. MarshalDOT renders it as
//	Graphviz DOT with the classic colouring: lightblue nodes, lightgreen
//	hyperedges labelled with their name and weight.
//
// Errors
//
//   - ErrInvalidInput for negative counts, an error event without targets or
//     probability, or a target index outside [0, count). Build never returns a
//     partial hypergraph.
//
// Complexity: O(E·t) to build, where E is the number of events and t the
// average number of targets per event.
package hypergraph
