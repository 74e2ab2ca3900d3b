// Package analysis runs the whole estimation pipeline for one detector error
// model:
//
//	dem.Model ─► hypergraph.Hypergraph ─► connectivity.Map ─► frontier.Result per Strategy
//
// and condenses it into a Report: model sizes, connectivity statistics
// (edges, components, isolated detectors) and one frontier.Result per
// requested strategy. Report.Best picks the cheapest order.
//
// Every stage runs inside an OpenTelemetry span named "analysis.<stage>"
// under a parent "analysis.Analyze" span. With no TracerProvider installed the
// spans are no-ops. Diagnostics from every stage go to the Sink passed with
// WithSink.
//
// Options:
//
//   - WithStrategies(s...):       strategies to run, in order (default: all).
//   - WithLogicalObservables():   observables become elimination variables.
//   - WithWorkers(n):             shard connectivity construction over n goroutines.
//   - WithSink(s):                diagnostics for every stage.
//
// Errors: ErrInvalidInput for a nil model, ErrOptionViolation for an empty
// strategy list, context errors, and stage errors wrapped with the stage name
// (callers can still match hypergraph.ErrInvalidInput and friends).
package analysis
