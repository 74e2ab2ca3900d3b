// Package frontier estimates the cost of exact maximum-likelihood decoding by
// simulating a variable-elimination order over a detector connectivity Map.
//
// What
//
//	Detectors are summed out one at a time. After each step the estimator knows
//
//	  eliminated  the detectors processed so far (append-only)
//	  related     every eliminated detector plus all of their neighbors (never shrinks)
//	  frontier    related − eliminated
//
//	The frontier width |related| − |eliminated| is the number of variables the
//	intermediate probability table depends on; holding that table costs
//	2^width entries. The estimator reports the peak width of a whole order and
//	how many steps reach it. Result.TableSize exponentiates for callers that
//	want the table size itself.
//
// Strategies
//
//   - Greedy: step 0 eliminates the detector with the fewest neighbors; every
//     later step eliminates the frontier member with the fewest neighbors not
//     yet in related. If the frontier is empty (the engaged component is
//     exhausted) the same rule is applied to all remaining detectors.
//   - Sequential: D0, D1, …, D(n-1), ignoring connectivity. A non-adaptive baseline.
//
//	Ties always go to the smallest detector index, so a run is a pure function
//	of (Map, n, Strategy). Greedy is a minimum-new-neighbor heuristic for a
//	treewidth-like quantity; it is not optimal.
//
// Step semantics (both strategies)
//
//  1. select the next detector
//  2. append it to eliminated and add it to related
//  3. union into related the neighbor sets of every eliminated detector
//  4. recompute frontier = related − eliminated
//  5. width = |related| − |eliminated|
//  6. width > max: max = width, count = 1; width == max: count++
//
//	Both strategies run exactly n steps; n == 0 yields MaxWidth 0.
//
// Options
//
//   - WithContext(ctx): cancellation/deadline checked between steps.
//   - WithOnStep(fn):   called after every step; a non-nil error aborts the run.
//   - WithSink(s):      per-step debug events and a per-run summary.
//
// Errors
//
//   - ErrInvalidInput       negative n, nil Map, Map with variables ≥ n,
//     empty selection set, unknown Strategy.
//   - ErrInconsistentState  a detector eliminated twice, or a width outside
//     [0, n-(t+1)] at step t. Indicates a defect, never bad input.
//   - ErrOptionViolation    nil context passed to WithContext.
//   - context errors and wrapped OnStep errors.
//
// Complexity
//
//	Step 3 re-scans all eliminated detectors, so a run costs O(n·E) time for E
//	connectivity edges (O(n²·d) worst case) and O(n) memory.
package frontier
