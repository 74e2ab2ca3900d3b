// Package mldwidth estimates how expensive exact maximum-likelihood decoding
// of a quantum error-correcting code would be, starting from its detector
// error model (DEM).
//
// 🚀 What is mldwidth?
//
//	A small pipeline that turns a DEM into a single number: the peak frontier
//	width of a variable-elimination order. Holding the largest intermediate
//	probability table costs 2^width entries, so the width is a direct proxy for
//	decoder memory and time.
//		• DEM text: parse and write the instruction format (errors, detectors, shifts, repeat blocks)
//		• Hypergraph: one weighted hyperedge per error mechanism, detectors and observables as nodes
//		• Connectivity: the pairwise graph induced by shared mechanisms
//		• Frontier: Greedy (minimum-new-neighbor) and Sequential elimination orders
//		• Analysis: the whole pipeline with tracing, logging and metrics hooks
//
// ✨ Why mldwidth?
//
//   - Deterministic – ties always go to the smallest detector index
//   - Observable – every step can be logged, traced or counted
//   - Testable – builder fixtures produce DEMs with known structure
//
// Packages:
//
//	dem/          — DEM model, parser and writer
//	hypergraph/   — detector/observable hypergraph and its bipartite DOT view
//	connectivity/ — detector connectivity Map (gonum-backed components)
//	frontier/     — elimination-order width estimator
//	analysis/     — end-to-end Analyze with otel spans
//	builder/      — synthetic DEM fixtures (paths, grids, repetition codes, …)
//	diag/         — diagnostic events, log and Prometheus sinks
//	cmd/mldwidth/ — command-line front end
//
// Quick ASCII example:
//
//	    D1
//	    │
//	D2──D0──D3
//
//	A star: Sequential opens the hub first and peaks at width 3; Greedy starts
//	at a leaf and peaks at width 2.
//
//	go install github.com/katalvlaran/mldwidth/cmd/mldwidth@latest
package mldwidth
