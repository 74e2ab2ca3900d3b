package frontier

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/katalvlaran/mldwidth/diag"
)

// Sentinel errors for frontier estimation.
var (
	// ErrInvalidInput indicates a bad detector count, Map, or Strategy.
	ErrInvalidInput = errors.New("frontier: invalid input")

	// ErrInconsistentState indicates a violated elimination invariant (a defect).
	ErrInconsistentState = errors.New("frontier: inconsistent state")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("frontier: invalid option supplied")
)

// Strategy selects the elimination order.
type Strategy uint8

const (
	// Greedy eliminates the candidate with the fewest not-yet-related neighbors.
	Greedy Strategy = iota
	// Sequential eliminates D0, D1, … in index order.
	Sequential
)

// Strategies lists every Strategy in declaration order.
func Strategies() []Strategy { return []Strategy{Greedy, Sequential} }

// String returns "greedy" or "sequential".
func (s Strategy) String() string {
	switch s {
	case Greedy:
		return "greedy"
	case Sequential:
		return "sequential"
	default:
		return fmt.Sprintf("strategy(%d)", uint8(s))
	}
}

// ParseStrategy is the case-insensitive inverse of Strategy.String.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "greedy":
		return Greedy, nil
	case "sequential":
		return Sequential, nil
	default:
		return 0, fmt.Errorf("%w: unknown strategy %q", ErrInvalidInput, name)
	}
}

func (s Strategy) valid() bool { return s == Greedy || s == Sequential }

// MarshalText encodes s by name, so JSON and YAML carry "greedy", not 0.
func (s Strategy) MarshalText() ([]byte, error) {
	if !s.valid() {
		return nil, fmt.Errorf("%w: unknown strategy %d", ErrInvalidInput, uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (s *Strategy) UnmarshalText(b []byte) error {
	v, err := ParseStrategy(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Step describes the state right after one elimination.
type Step struct {
	Index      int   // zero-based step number t
	Detector   int   // detector eliminated at this step
	Width      int   // |related| − |eliminated|
	Related    int   // |related|
	Eliminated int   // |eliminated| (always Index+1)
	Frontier   []int // related − eliminated, ascending; a copy owned by the callee
}

// Option configures an estimation run.
// Invalid values are recorded and surfaced as ErrOptionViolation by Estimate.
type Option func(*Options)

// Options holds the run configuration.
type Options struct {
	// Ctx is checked for cancellation before every step.
	Ctx context.Context

	// OnStep, if set, is called after every step; an error aborts the run.
	OnStep func(Step) error

	// Sink receives per-step and per-run diagnostics. nil disables them.
	Sink diag.Sink

	err error
}

// DefaultOptions returns background context, no hook and no sink.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context. A nil ctx is an option violation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithOnStep registers a per-step hook. nil is ignored.
func WithOnStep(fn func(Step) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithSink routes diagnostics to s. nil is ignored.
func WithSink(s diag.Sink) Option {
	return func(o *Options) {
		if s != nil {
			o.Sink = s
		}
	}
}

// Result is the outcome of one elimination run.
type Result struct {
	Strategy      Strategy `json:"strategy"`
	DetectorCount int      `json:"detectors"`

	// MaxWidth is the peak frontier width over the run.
	MaxWidth int `json:"max_width"`

	// MaxWidthCount is the number of steps whose width equals MaxWidth.
	// Informational; no decision in this module depends on it.
	MaxWidthCount int `json:"max_width_count"`

	// Order is the elimination order; Order[t] was eliminated at step t.
	Order []int `json:"order,omitempty"`

	// Widths[t] is the frontier width right after step t.
	Widths []int `json:"widths,omitempty"`
}

// TableSize returns 2^MaxWidth, the entry count of the largest intermediate table.
func (r *Result) TableSize() *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(r.MaxWidth))
}

// PeakSteps returns the step indices whose width equals MaxWidth.
func (r *Result) PeakSteps() []int {
	var out []int
	for t, w := range r.Widths {
		if w == r.MaxWidth {
			out = append(out, t)
		}
	}
	return out
}

// OrderLabels formats Order with label (e.g. connectivity.Map.Label).
func (r *Result) OrderLabels(label func(int) string) []string {
	out := make([]string, len(r.Order))
	for i, d := range r.Order {
		out[i] = label(d)
	}
	return out
}
