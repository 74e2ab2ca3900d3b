package hypergraph

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/mldwidth/diag"
)

// ErrInvalidInput indicates malformed counts or error events.
var ErrInvalidInput = errors.New("hypergraph: invalid input")

// NodeKind distinguishes detectors from logical observables.
type NodeKind uint8

const (
	// KindDetector marks a detector node "D<i>".
	KindDetector NodeKind = iota
	// KindObservable marks a logical-observable node "L<i>".
	KindObservable
)

// Node identifies one hypergraph node. Nodes are plain values; two Nodes are
// the same node iff they compare equal.
type Node struct {
	Kind  NodeKind
	Index int
}

// D returns the detector node D<i>.
func D(i int) Node { return Node{Kind: KindDetector, Index: i} }

// L returns the logical-observable node L<i>.
func L(i int) Node { return Node{Kind: KindObservable, Index: i} }

// IsDetector reports whether n is a detector node.
func (n Node) IsDetector() bool { return n.Kind == KindDetector }

// String renders "D<i>" or "L<i>".
func (n Node) String() string {
	if n.Kind == KindObservable {
		return "L" + strconv.Itoa(n.Index)
	}
	return "D" + strconv.Itoa(n.Index)
}

// ParseNode is the inverse of Node.String.
func ParseNode(s string) (Node, error) {
	if len(s) < 2 || s[1] < '0' || s[1] > '9' {
		return Node{}, fmt.Errorf("%w: node %q", ErrInvalidInput, s)
	}
	idx, err := strconv.Atoi(s[1:])
	if err != nil {
		return Node{}, fmt.Errorf("%w: node %q", ErrInvalidInput, s)
	}
	switch s[0] {
	case 'D':
		return D(idx), nil
	case 'L':
		return L(idx), nil
	default:
		return Node{}, fmt.Errorf("%w: node %q", ErrInvalidInput, s)
	}
}

// Hyperedge is the ordered list of nodes flipped by one error mechanism.
type Hyperedge []Node

// Detectors returns the detector indices of h in order.
func (h Hyperedge) Detectors() []int {
	out := make([]int, 0, len(h))
	for _, n := range h {
		if n.IsDetector() {
			out = append(out, n.Index)
		}
	}
	return out
}

// Option configures Build.
type Option func(*options)

type options struct {
	withObservables bool
	sink            diag.Sink
}

// WithLogicalObservables includes L<k> nodes in the node set and in hyperedges.
func WithLogicalObservables() Option {
	return func(o *options) { o.withObservables = true }
}

// WithSink routes build diagnostics to s. nil is ignored.
func WithSink(s diag.Sink) Option {
	return func(o *options) {
		if s != nil {
			o.sink = s
		}
	}
}
