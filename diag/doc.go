// Package diag provides the diagnostic sink injected into every mldwidth component.
//
// What
//
//   - Sink is a single-method interface: Record(Event).
//   - Components never log through a process-wide logger; callers pass a Sink
//     through each package's WithSink option.
//   - Ready-made sinks:
//   - Nop()            discards everything (the default everywhere)
//   - NewLogSink(l)    forwards to a charmbracelet/log Logger
//   - NewMetricsSink() counts events and observes "width" attributes (Prometheus)
//   - Multi(s...)      fans one event out to several sinks
//   - Recorder         keeps events in memory (tests, post-run inspection)
//
// Why
//
//	Elimination runs are long CPU-bound loops; diagnostics are useful while
//	tuning an order but must never become a hidden dependency of the result.
//	Keeping the sink explicit makes every run reproducible and side-effect free
//	unless the caller asks otherwise.
//
// Usage
//
//	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.DebugLevel})
//	sink := diag.Multi(diag.NewLogSink(logger), diag.NewMetricsSink(reg))
//	res, err := frontier.Estimate(m, n, frontier.Greedy, frontier.WithSink(sink))
package diag
