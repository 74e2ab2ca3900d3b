package frontier

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/katalvlaran/mldwidth/connectivity"
	"github.com/katalvlaran/mldwidth/diag"
)

// walker owns the elimination state of exactly one run.
type walker struct {
	m        *connectivity.Map
	n        int
	strategy Strategy
	opts     Options
	ctx      context.Context

	eliminated   []int  // append-only elimination order
	isEliminated []bool // membership mirror of eliminated
	inRelated    []bool
	related      []int // related set in insertion order
	frontier     []int // related − eliminated, ascending

	res *Result
}

// Estimate runs strategy s over the first n detectors of m and returns the
// peak frontier width and its multiplicity.
//
// m may describe fewer than n variables (the missing ones are isolated) but
// never more. Returns ErrInvalidInput, ErrInconsistentState, ErrOptionViolation,
// a context error, or a wrapped OnStep error.
func Estimate(m *connectivity.Map, n int, s Strategy, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := validate(m, n, s); err != nil {
		return nil, err
	}

	w := &walker{
		m:            m,
		n:            n,
		strategy:     s,
		opts:         o,
		ctx:          o.Ctx,
		eliminated:   make([]int, 0, n),
		isEliminated: make([]bool, n),
		inRelated:    make([]bool, n),
		related:      make([]int, 0, n),
		res: &Result{
			Strategy:      s,
			DetectorCount: n,
			Order:         make([]int, 0, n),
			Widths:        make([]int, 0, n),
		},
	}
	if err := w.loop(); err != nil {
		return nil, err
	}
	w.recordDone()

	return w.res, nil
}

// Compare runs Greedy and Sequential on the same input.
func Compare(m *connectivity.Map, n int, opts ...Option) (greedy, sequential *Result, err error) {
	if greedy, err = Estimate(m, n, Greedy, opts...); err != nil {
		return nil, nil, err
	}
	if sequential, err = Estimate(m, n, Sequential, opts...); err != nil {
		return nil, nil, err
	}
	return greedy, sequential, nil
}

func validate(m *connectivity.Map, n int, s Strategy) error {
	if n < 0 {
		return fmt.Errorf("%w: negative detector count %d", ErrInvalidInput, n)
	}
	if m == nil {
		return fmt.Errorf("%w: nil connectivity map", ErrInvalidInput)
	}
	if !s.valid() {
		return fmt.Errorf("%w: unknown strategy %s", ErrInvalidInput, s)
	}
	if m.Len() > n {
		return fmt.Errorf("%w: map references detector %d but detector count is %d", ErrInvalidInput, m.Len()-1, n)
	}
	return nil
}

// loop performs exactly n steps, checking for cancellation before each.
func (w *walker) loop() error {
	for t := 0; t < w.n; t++ {
		select {
		case <-w.ctx.Done():
			return fmt.Errorf("frontier: cancelled before step %d: %w", t, w.ctx.Err())
		default:
		}

		d, err := w.selectNext(t)
		if err != nil {
			return err
		}
		if err = w.eliminate(t, d); err != nil {
			return err
		}
	}
	return nil
}

// selectNext dispatches on the strategy tag.
func (w *walker) selectNext(t int) (int, error) {
	if w.strategy == Sequential {
		return t, nil
	}
	if t > 0 && len(w.frontier) > 0 {
		return w.minNewNeighbors(w.frontier)
	}

	// step 0, or the engaged component is exhausted: consider every remaining detector
	remaining := make([]int, 0, w.n-len(w.eliminated))
	for d := 0; d < w.n; d++ {
		if !w.isEliminated[d] {
			remaining = append(remaining, d)
		}
	}
	return w.minNewNeighbors(remaining)
}

// minNewNeighbors returns the first candidate (candidates are ascending) with the
// fewest neighbors outside related. At step 0 related is empty, so the score is
// the plain degree.
func (w *walker) minNewNeighbors(candidates []int) (int, error) {
	if len(candidates) == 0 {
		return 0, fmt.Errorf("%w: empty selection set at step %d", ErrInvalidInput, len(w.eliminated))
	}
	best, bestScore := -1, -1
	for _, c := range candidates {
		score := 0
		w.m.ForEachNeighbor(c, func(v int) {
			if !w.inRelated[v] {
				score++
			}
		})
		if best < 0 || score < bestScore {
			best, bestScore = c, score
		}
	}
	return best, nil
}

// eliminate applies steps 2–6 for detector d.
func (w *walker) eliminate(t, d int) error {
	if d < 0 || d >= w.n || w.isEliminated[d] {
		return fmt.Errorf("%w: step %d selected detector %d twice or out of range", ErrInconsistentState, t, d)
	}
	w.eliminated = append(w.eliminated, d)
	w.isEliminated[d] = true
	w.relate(d)

	// full re-scan over every eliminated detector; set union keeps it idempotent
	for _, e := range w.eliminated {
		w.m.ForEachNeighbor(e, w.relate)
	}

	w.frontier = w.frontier[:0]
	for _, v := range w.related {
		if !w.isEliminated[v] {
			w.frontier = append(w.frontier, v)
		}
	}
	sort.Ints(w.frontier)

	width := len(w.related) - len(w.eliminated)
	if width < 0 || width > w.n-(t+1) || width != len(w.frontier) {
		return fmt.Errorf("%w: step %d width %d outside [0,%d] (frontier %d)",
			ErrInconsistentState, t, width, w.n-(t+1), len(w.frontier))
	}

	switch {
	case width > w.res.MaxWidth:
		w.res.MaxWidth = width
		w.res.MaxWidthCount = 1
	case width == w.res.MaxWidth:
		w.res.MaxWidthCount++
	}
	w.res.Order = append(w.res.Order, d)
	w.res.Widths = append(w.res.Widths, width)

	return w.report(t, d, width)
}

// label formats d; detectors beyond the Map are isolated and always "D<d>".
func (w *walker) label(d int) string {
	if d < w.m.Len() {
		return w.m.Label(d)
	}
	return "D" + strconv.Itoa(d)
}

func (w *walker) relate(v int) {
	if !w.inRelated[v] {
		w.inRelated[v] = true
		w.related = append(w.related, v)
	}
}

// report feeds the sink and the OnStep hook.
func (w *walker) report(t, d, width int) error {
	if w.opts.Sink != nil {
		w.opts.Sink.Record(diag.Event{
			Level:     diag.LevelDebug,
			Component: "frontier",
			Name:      "step",
			Attrs: []diag.Attr{
				diag.String("strategy", w.strategy.String()),
				diag.Int("step", t),
				diag.String("detector", w.label(d)),
				diag.Int("width", width),
				diag.Int("related", len(w.related)),
			},
		})
	}
	if w.opts.OnStep == nil {
		return nil
	}
	step := Step{
		Index:      t,
		Detector:   d,
		Width:      width,
		Related:    len(w.related),
		Eliminated: len(w.eliminated),
		Frontier:   append([]int(nil), w.frontier...),
	}
	if err := w.opts.OnStep(step); err != nil {
		return fmt.Errorf("frontier: OnStep error at step %d: %w", t, err)
	}
	return nil
}

func (w *walker) recordDone() {
	if w.opts.Sink == nil {
		return
	}
	w.opts.Sink.Record(diag.Event{
		Level:     diag.LevelInfo,
		Component: "frontier",
		Name:      "done",
		Attrs: []diag.Attr{
			diag.String("strategy", w.strategy.String()),
			diag.Int("detectors", w.n),
			diag.Int("max_width", w.res.MaxWidth),
			diag.Int("max_width_count", w.res.MaxWidthCount),
		},
	})
}
