package dem

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// nodeKind tags a parsed (not yet flattened) line.
type nodeKind uint8

const (
	kindEvent nodeKind = iota
	kindShift
	kindRepeat
	kindSkip
)

// node is one parsed instruction; repeat nodes own their body.
type node struct {
	line    int
	kind    nodeKind
	typ     InstructionType
	args    []float64
	targets []Target // detector indices are still relative to the shift offset
	shift   int
	count   int
	body    []node
}

// Parse reads a detector error model from r and flattens it into a Model.
// Returns ErrSyntax, ErrUnknownInstruction, ErrBadTarget, ErrMissingProbability,
// ErrUnbalancedBlock, ErrTooManyEvents, or ErrIndexTooLarge (wrapped with the
// offending line).
func Parse(r io.Reader, opts ...Option) (*Model, error) {
	o := parseOptions{maxEvents: DefaultMaxEvents, maxDetectors: DefaultMaxDetectors}
	for _, opt := range opts {
		opt(&o)
	}

	root, err := parseTree(r)
	if err != nil {
		return nil, err
	}

	x := &expander{model: &Model{}, maxEvents: o.maxEvents, maxDetectors: o.maxDetectors}
	if err = x.run(root); err != nil {
		return nil, err
	}
	return x.model, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string, opts ...Option) (*Model, error) {
	return Parse(strings.NewReader(s), opts...)
}

// parseTree builds the block tree line by line using an explicit stack of open repeat blocks.
func parseTree(r io.Reader) ([]node, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	bodies := [][]node{nil} // bodies[0] is the top level
	var open []node         // repeat headers awaiting their "}"
	lineNo := 0

	for sc.Scan() {
		lineNo++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		if text == "}" {
			if len(open) == 0 {
				return nil, fmt.Errorf("%w: line %d: unexpected '}'", ErrUnbalancedBlock, lineNo)
			}
			rep := open[len(open)-1]
			open = open[:len(open)-1]
			rep.body = bodies[len(bodies)-1]
			bodies = bodies[:len(bodies)-1]
			bodies[len(bodies)-1] = append(bodies[len(bodies)-1], rep)
			continue
		}

		opensBlock := strings.HasSuffix(text, "{")
		if opensBlock {
			text = strings.TrimSpace(strings.TrimSuffix(text, "{"))
		}

		n, err := parseLine(lineNo, text)
		if err != nil {
			return nil, err
		}
		switch {
		case opensBlock && n.kind != kindRepeat:
			return nil, fmt.Errorf("%w: line %d: only repeat opens a block", ErrSyntax, lineNo)
		case !opensBlock && n.kind == kindRepeat:
			return nil, fmt.Errorf("%w: line %d: repeat without '{'", ErrSyntax, lineNo)
		case opensBlock:
			open = append(open, n)
			bodies = append(bodies, nil)
		default:
			bodies[len(bodies)-1] = append(bodies[len(bodies)-1], n)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dem: read: %w", err)
	}
	if len(open) > 0 {
		return nil, fmt.Errorf("%w: repeat opened on line %d is never closed", ErrUnbalancedBlock, open[len(open)-1].line)
	}

	return bodies[0], nil
}

// parseLine splits "name(args) tokens..." and validates it per instruction.
func parseLine(lineNo int, text string) (node, error) {
	i := 0
	for i < len(text) && isNameByte(text[i]) {
		i++
	}
	if i == 0 {
		return node{}, fmt.Errorf("%w: line %d: missing instruction name in %q", ErrSyntax, lineNo, text)
	}
	name := strings.ToLower(text[:i])
	rest := strings.TrimSpace(text[i:])

	var (
		args    []float64
		hasArgs bool
		err     error
	)
	if strings.HasPrefix(rest, "(") {
		end := strings.IndexByte(rest, ')')
		if end < 0 {
			return node{}, fmt.Errorf("%w: line %d: unclosed '('", ErrSyntax, lineNo)
		}
		if args, err = parseArgs(rest[1:end]); err != nil {
			return node{}, fmt.Errorf("%w: line %d: %v", ErrSyntax, lineNo, err)
		}
		hasArgs = true
		rest = rest[end+1:]
	}
	tokens := strings.Fields(rest)

	n := node{line: lineNo, args: args}
	switch name {
	case "error":
		if !hasArgs || len(args) == 0 {
			return node{}, fmt.Errorf("%w: line %d", ErrMissingProbability, lineNo)
		}
		if p := args[0]; p < 0 || p > 1 {
			return node{}, fmt.Errorf("%w: line %d: probability %v outside [0,1]", ErrSyntax, lineNo, p)
		}
		n.kind, n.typ = kindEvent, InstructionError
		n.targets, err = parseTargets(lineNo, tokens, true, true, true)

	case "detector":
		n.kind, n.typ = kindEvent, InstructionDetector
		n.targets, err = parseTargets(lineNo, tokens, true, false, false)

	case "logical_observable":
		n.kind, n.typ = kindEvent, InstructionLogicalObservable
		n.targets, err = parseTargets(lineNo, tokens, false, true, false)

	case "shift_detectors":
		n.kind = kindShift
		n.shift, err = parseSingleInt(lineNo, name, tokens, 0)

	case "repeat":
		n.kind = kindRepeat
		n.count, err = parseSingleInt(lineNo, name, tokens, 1)

	case "detector_separator":
		n.kind = kindSkip

	default:
		return node{}, fmt.Errorf("%w: line %d: %q", ErrUnknownInstruction, lineNo, name)
	}
	if err != nil {
		return node{}, err
	}

	return n, nil
}

func isNameByte(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// parseArgs parses a comma separated float list; an all-blank list yields no args.
func parseArgs(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad argument %q", strings.TrimSpace(p))
		}
		out = append(out, v)
	}
	return out, nil
}

// parseTargets converts tokens into Targets, allowing only the permitted kinds.
func parseTargets(lineNo int, tokens []string, allowD, allowL, allowSep bool) ([]Target, error) {
	out := make([]Target, 0, len(tokens))
	for _, tok := range tokens {
		switch {
		case tok == "^" && allowSep:
			out = append(out, Separator())
		case len(tok) > 1 && (tok[0] == 'D' || tok[0] == 'd') && allowD:
			k, err := parseIndex(tok[1:])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %q", ErrBadTarget, lineNo, tok)
			}
			out = append(out, Detector(k))
		case len(tok) > 1 && (tok[0] == 'L' || tok[0] == 'l') && allowL:
			k, err := parseIndex(tok[1:])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %q", ErrBadTarget, lineNo, tok)
			}
			out = append(out, Observable(k))
		default:
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadTarget, lineNo, tok)
		}
	}
	return out, nil
}

// parseIndex accepts only unsigned decimal digits.
func parseIndex(s string) (int, error) {
	if s == "" || s[0] < '0' || s[0] > '9' {
		return 0, fmt.Errorf("not an index: %q", s)
	}
	return strconv.Atoi(s)
}

func parseSingleInt(lineNo int, name string, tokens []string, min int) (int, error) {
	if len(tokens) != 1 {
		return 0, fmt.Errorf("%w: line %d: %s expects exactly one integer, got %d tokens", ErrSyntax, lineNo, name, len(tokens))
	}
	v, err := parseIndex(tokens[0])
	if err != nil || v < min {
		return 0, fmt.Errorf("%w: line %d: %s count %q", ErrSyntax, lineNo, name, tokens[0])
	}
	return v, nil
}

// expander flattens the block tree into a Model, tracking the detector offset.
type expander struct {
	model        *Model
	offset       int
	steps        int // repeat iterations plus executed non-event instructions
	maxEvents    int
	maxDetectors int
}

func (x *expander) run(nodes []node) error {
	for i := range nodes {
		n := &nodes[i]
		switch n.kind {
		case kindRepeat:
			for k := 0; k < n.count; k++ {
				if err := x.step(n); err != nil {
					return err
				}
				if err := x.run(n.body); err != nil {
					return err
				}
			}
		case kindShift:
			if err := x.step(n); err != nil {
				return err
			}
			if n.shift > x.maxDetectors-x.offset {
				return fmt.Errorf("%w: line %d: detector offset exceeds %d", ErrIndexTooLarge, n.line, x.maxDetectors)
			}
			x.offset += n.shift
		case kindSkip:
			if err := x.step(n); err != nil {
				return err
			}
		default:
			if len(x.model.Events) >= x.maxEvents {
				return fmt.Errorf("%w: limit %d reached at line %d", ErrTooManyEvents, x.maxEvents, n.line)
			}
			e, err := x.materialize(n)
			if err != nil {
				return err
			}
			x.model.Append(e)
		}
	}
	return nil
}

// step charges one unit of non-event work against the cap.
func (x *expander) step(n *node) error {
	if x.steps >= x.maxEvents {
		return fmt.Errorf("%w: expansion exceeds %d steps at line %d", ErrTooManyEvents, x.maxEvents, n.line)
	}
	x.steps++
	return nil
}

// materialize copies n into an Event with absolute detector indices.
func (x *expander) materialize(n *node) (Event, error) {
	e := Event{Type: n.typ}
	if len(n.args) > 0 {
		e.Args = append([]float64(nil), n.args...)
	}
	e.Targets = make([]Target, len(n.targets))
	for i, t := range n.targets {
		switch t.Kind {
		case TargetDetector:
			if t.Index >= x.maxDetectors-x.offset {
				return Event{}, fmt.Errorf("%w: line %d: detector D%d (offset %d) beyond limit %d",
					ErrIndexTooLarge, n.line, t.Index, x.offset, x.maxDetectors)
			}
			t.Index += x.offset
		case TargetObservable:
			if t.Index >= x.maxDetectors {
				return Event{}, fmt.Errorf("%w: line %d: observable L%d beyond limit %d",
					ErrIndexTooLarge, n.line, t.Index, x.maxDetectors)
			}
		}
		e.Targets[i] = t
	}
	return e, nil
}
