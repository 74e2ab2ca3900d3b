package dem

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for DEM parsing.
var (
	// ErrSyntax indicates a malformed line, argument list, or repeat count.
	ErrSyntax = errors.New("dem: syntax error")

	// ErrUnknownInstruction indicates an instruction name the parser does not know.
	ErrUnknownInstruction = errors.New("dem: unknown instruction")

	// ErrBadTarget indicates a target token that is not D<k>, L<k>, or "^".
	ErrBadTarget = errors.New("dem: bad target")

	// ErrMissingProbability indicates an error instruction without its probability argument.
	ErrMissingProbability = errors.New("dem: missing probability")

	// ErrUnbalancedBlock indicates an unmatched "{" or "}".
	ErrUnbalancedBlock = errors.New("dem: unbalanced block")

	// ErrTooManyEvents indicates that flattening exceeded the configured event cap.
	ErrTooManyEvents = errors.New("dem: too many events")

	// ErrIndexTooLarge indicates a detector or observable index (after shifts)
	// at or beyond the configured index limit.
	ErrIndexTooLarge = errors.New("dem: index too large")
)

// TargetKind classifies a flip target.
type TargetKind uint8

const (
	// TargetDetector is a detector target "D<k>".
	TargetDetector TargetKind = iota
	// TargetObservable is a logical-observable target "L<k>".
	TargetObservable
	// TargetSeparator is the "^" separator between suggested decomposition parts.
	TargetSeparator
)

// Target is one flip target of an instruction.
type Target struct {
	Kind  TargetKind
	Index int // absolute index; zero for separators
}

// Detector returns the detector target D<k>.
func Detector(k int) Target { return Target{Kind: TargetDetector, Index: k} }

// Observable returns the logical-observable target L<k>.
func Observable(k int) Target { return Target{Kind: TargetObservable, Index: k} }

// Separator returns the "^" target.
func Separator() Target { return Target{Kind: TargetSeparator} }

// IsDetector reports whether t is a detector target.
func (t Target) IsDetector() bool { return t.Kind == TargetDetector }

// IsObservable reports whether t is a logical-observable target.
func (t Target) IsObservable() bool { return t.Kind == TargetObservable }

// String renders the target in DEM syntax.
func (t Target) String() string {
	switch t.Kind {
	case TargetDetector:
		return "D" + strconv.Itoa(t.Index)
	case TargetObservable:
		return "L" + strconv.Itoa(t.Index)
	default:
		return "^"
	}
}

// InstructionType classifies a flattened Event.
type InstructionType uint8

const (
	// InstructionError is an error mechanism: error(p) targets...
	InstructionError InstructionType = iota
	// InstructionDetector is a detector declaration (annotation only).
	InstructionDetector
	// InstructionLogicalObservable is a logical-observable declaration (annotation only).
	InstructionLogicalObservable
)

// String returns the DEM instruction name.
func (t InstructionType) String() string {
	switch t {
	case InstructionError:
		return "error"
	case InstructionDetector:
		return "detector"
	case InstructionLogicalObservable:
		return "logical_observable"
	default:
		return "unknown"
	}
}

// Event is one flattened instruction of a Model.
type Event struct {
	Type    InstructionType
	Args    []float64
	Targets []Target
}

// IsError reports whether e is an error mechanism.
func (e Event) IsError() bool { return e.Type == InstructionError }

// Probability returns the first numeric argument of e.
func (e Event) Probability() (float64, error) {
	if len(e.Args) == 0 {
		return 0, fmt.Errorf("%w: %s event has no arguments", ErrMissingProbability, e.Type)
	}
	return e.Args[0], nil
}

// Model is a flattened detector error model.
type Model struct {
	// Events in file order, repeat blocks expanded.
	Events []Event

	// DetectorCount is one more than the largest detector index seen.
	DetectorCount int

	// ObservableCount is one more than the largest observable index seen.
	ObservableCount int
}

// ErrorEvents returns only the error-type events, in order.
func (m *Model) ErrorEvents() []Event {
	out := make([]Event, 0, len(m.Events))
	for _, e := range m.Events {
		if e.IsError() {
			out = append(out, e)
		}
	}
	return out
}

// Append adds e to the model and grows DetectorCount/ObservableCount to cover its targets.
func (m *Model) Append(e Event) {
	m.Events = append(m.Events, e)
	for _, t := range e.Targets {
		switch t.Kind {
		case TargetDetector:
			if t.Index+1 > m.DetectorCount {
				m.DetectorCount = t.Index + 1
			}
		case TargetObservable:
			if t.Index+1 > m.ObservableCount {
				m.ObservableCount = t.Index + 1
			}
		}
	}
}

// Option configures Parse.
type Option func(*parseOptions)

type parseOptions struct {
	maxEvents    int
	maxDetectors int
}

const (
	// DefaultMaxEvents bounds repeat-block expansion unless WithMaxEvents overrides it.
	DefaultMaxEvents = 1 << 24

	// DefaultMaxDetectors bounds detector and observable indices unless
	// WithMaxDetectors overrides it.
	DefaultMaxDetectors = 1 << 24
)

// WithMaxEvents caps the number of flattened events. The same cap applies,
// counted separately, to repeat iterations plus executed non-event
// instructions, so a repeat over shifts or empty blocks is bounded too.
// n ≤ 0 panics.
func WithMaxEvents(n int) Option {
	if n <= 0 {
		panic("dem: WithMaxEvents(n<=0)")
	}
	return func(o *parseOptions) { o.maxEvents = n }
}

// WithMaxDetectors rejects any detector or observable whose absolute index
// is n or more, and any shift_detectors offset beyond n. n ≤ 0 panics.
func WithMaxDetectors(n int) Option {
	if n <= 0 {
		panic("dem: WithMaxDetectors(n<=0)")
	}
	return func(o *parseOptions) { o.maxDetectors = n }
}
