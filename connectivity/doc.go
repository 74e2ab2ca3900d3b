// Package connectivity derives the pairwise detector connectivity graph from
// the hyperedges of a detector error model.
//
// Two detectors are neighbors iff they appear together in at least one
// hyperedge. The result is a Map from variable index to the set of neighbor
// indices, built once and read-only afterwards.
//
// Representation
//
//	Variables are plain integers: detector D<i> is variable i. Logical
//	observables are excluded unless WithLogicalObservables(k) is given, in which
//	case L<j> becomes variable detectorCount+j. Label formats an index back into
//	"D<i>"/"L<j>" for display; nothing inside the package uses strings.
//
// Guarantees
//
//   - Symmetric: b ∈ Neighbors(a) ⇔ a ∈ Neighbors(b).
//   - No self-loops: a detector listed twice in one hyperedge is not its own neighbor.
//   - Order independent: insertion into sets is commutative, so hyperedge order,
//     duplicates, and sharding never change the result.
//   - Deterministic queries: Neighbors, Isolated and Components return ascending indices.
//   - Isolated detectors are valid and have an empty neighbor set.
//
// Parallel build
//
//	WithWorkers(n) splits the hyperedges into n contiguous shards, accumulates
//	each shard into a private adjacency on its own goroutine and merges the
//	shards in shard order. The merged Map is identical to the sequential one.
//
// gonum bridge
//
//	Graph exports the Map as a gonum simple.UndirectedGraph (node ID = variable
//	index); Components uses gonum's topo.ConnectedComponents on that graph.
//
// Errors
//
//   - ErrInvalidInput       negative counts, nil hypergraph, node outside range.
//   - ErrInconsistentState  returned by Validate if the symmetry or range invariant is broken.
//
// Complexity: Build is O(Σ|h|²) over hyperedges h; Neighbors(i) is O(d log d).
package connectivity
