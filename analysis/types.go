package analysis

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mldwidth/connectivity"
	"github.com/katalvlaran/mldwidth/diag"
	"github.com/katalvlaran/mldwidth/frontier"
	"github.com/katalvlaran/mldwidth/hypergraph"
)

// Sentinel errors for the pipeline.
var (
	// ErrInvalidInput indicates a nil model.
	ErrInvalidInput = errors.New("analysis: invalid input")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("analysis: invalid option supplied")
)

// Option configures Analyze.
type Option func(*Options)

// Options holds the pipeline configuration.
type Options struct {
	// Strategies run in this order; duplicates are dropped.
	Strategies []frontier.Strategy

	// LogicalObservables makes L<k> an elimination variable after the detectors.
	LogicalObservables bool

	// Workers shards connectivity construction.
	Workers int

	// Sink receives diagnostics from every stage.
	Sink diag.Sink

	err error
}

// DefaultOptions runs every strategy on detectors only, single-threaded, silently.
func DefaultOptions() Options {
	return Options{
		Strategies: frontier.Strategies(),
		Workers:    1,
		Sink:       diag.Nop(),
	}
}

// WithStrategies selects the strategies to run. An empty list is an option
// violation; unknown strategies are rejected by frontier.Estimate.
func WithStrategies(s ...frontier.Strategy) Option {
	return func(o *Options) {
		if len(s) == 0 {
			o.err = fmt.Errorf("%w: no strategies", ErrOptionViolation)
			return
		}
		seen := make(map[frontier.Strategy]bool, len(s))
		o.Strategies = o.Strategies[:0:0]
		for _, st := range s {
			if !seen[st] {
				seen[st] = true
				o.Strategies = append(o.Strategies, st)
			}
		}
	}
}

// WithLogicalObservables includes logical observables as variables.
func WithLogicalObservables() Option {
	return func(o *Options) { o.LogicalObservables = true }
}

// WithWorkers shards connectivity construction over n goroutines. n ≤ 0 panics.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic("analysis: WithWorkers(n<=0)")
	}
	return func(o *Options) { o.Workers = n }
}

// WithSink routes diagnostics to s. nil is ignored.
func WithSink(s diag.Sink) Option {
	return func(o *Options) {
		if s != nil {
			o.Sink = s
		}
	}
}

// Report summarizes one pipeline run.
type Report struct {
	DetectorCount   int `json:"detectors"`
	ObservableCount int `json:"observables"`

	// VariableCount is the number of eliminated variables: detectors, plus
	// observables when they were included.
	VariableCount int `json:"variables"`

	HyperedgeCount  int `json:"hyperedges"`
	EmptyHyperedges int `json:"empty_hyperedges"`

	ConnectivityEdges int `json:"connectivity_edges"`
	MaxDegree         int `json:"max_degree"`
	Components        int `json:"components"`
	LargestComponent  int `json:"largest_component"`
	Isolated          int `json:"isolated"`

	// Results holds one entry per requested strategy, in request order.
	Results []*frontier.Result `json:"results"`

	// Hypergraph and Map are the intermediate structures, kept for DOT export
	// and further inspection.
	Hypergraph *hypergraph.Hypergraph `json:"-"`
	Map        *connectivity.Map      `json:"-"`
}

// Best returns the result with the smallest MaxWidth; ties go to the earlier
// result. nil when there are no results.
func (r *Report) Best() *frontier.Result {
	var best *frontier.Result
	for _, res := range r.Results {
		if best == nil || res.MaxWidth < best.MaxWidth {
			best = res
		}
	}
	return best
}

// Result returns the result for strategy s, or nil if it was not run.
func (r *Report) Result(s frontier.Strategy) *frontier.Result {
	for _, res := range r.Results {
		if res.Strategy == s {
			return res
		}
	}
	return nil
}
