package connectivity

import (
	"errors"

	"github.com/katalvlaran/mldwidth/diag"
)

// Sentinel errors for connectivity construction.
var (
	// ErrInvalidInput indicates malformed counts or hyperedges referencing unknown nodes.
	ErrInvalidInput = errors.New("connectivity: invalid input")

	// ErrInconsistentState indicates a broken Map invariant (asymmetry, self-loop, range).
	ErrInconsistentState = errors.New("connectivity: inconsistent state")
)

// Option configures Build.
type Option func(*options)

type options struct {
	observables int // number of L<k> variables appended after detectors; 0 = excluded
	workers     int
	sink        diag.Sink
}

func defaultOptions() options {
	return options{workers: 1, sink: diag.Nop()}
}

// WithLogicalObservables makes L<k> nodes (0 ≤ k < count) participate in
// connectivity as variables detectorCount+k. Panics if count < 0.
func WithLogicalObservables(count int) Option {
	if count < 0 {
		panic("connectivity: WithLogicalObservables(count<0)")
	}
	return func(o *options) { o.observables = count }
}

// WithWorkers shards the build across n goroutines. n ≤ 0 panics; 1 is sequential.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic("connectivity: WithWorkers(n<=0)")
	}
	return func(o *options) { o.workers = n }
}

// WithSink routes build diagnostics to s. nil is ignored.
func WithSink(s diag.Sink) Option {
	return func(o *options) {
		if s != nil {
			o.sink = s
		}
	}
}
