package frontier_test

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/mldwidth/connectivity"
	"github.com/katalvlaran/mldwidth/diag"
	"github.com/katalvlaran/mldwidth/frontier"
)

func mustMap(t *testing.T, n int, adj map[int][]int) *connectivity.Map {
	t.Helper()
	m, err := connectivity.FromAdjacency(n, adj)
	require.NoError(t, err)
	return m
}

func randomMap(t *testing.T, seed int64, n int, p float64) *connectivity.Map {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	adj := make(map[int][]int)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if rng.Float64() < p {
				adj[u] = append(adj[u], v)
			}
		}
	}
	return mustMap(t, n, adj)
}

type FrontierSuite struct {
	suite.Suite

	isolated *connectivity.Map // 4 detectors, no edges
	path     *connectivity.Map // D0–D1–D2–D3
	star     *connectivity.Map // D0 joined to D1, D2, D3
}

func TestFrontierSuite(t *testing.T) {
	suite.Run(t, new(FrontierSuite))
}

func (s *FrontierSuite) SetupTest() {
	s.isolated = mustMap(s.T(), 4, nil)
	s.path = mustMap(s.T(), 4, map[int][]int{0: {1}, 1: {2}, 2: {3}})
	s.star = mustMap(s.T(), 4, map[int][]int{0: {1, 2, 3}})
}

// TestIsolated: every step has width 0, so the peak is reached four times.
func (s *FrontierSuite) TestIsolated() {
	for _, st := range frontier.Strategies() {
		res, err := frontier.Estimate(s.isolated, 4, st)
		require.NoError(s.T(), err, st.String())
		s.Equal(0, res.MaxWidth, st.String())
		s.Equal(4, res.MaxWidthCount, st.String())
		s.Equal([]int{0, 1, 2, 3}, res.Order, st.String())
		s.Equal([]int{0, 0, 0, 0}, res.Widths, st.String())
	}
}

// TestPath: both strategies walk the chain left to right.
func (s *FrontierSuite) TestPath() {
	for _, st := range frontier.Strategies() {
		res, err := frontier.Estimate(s.path, 4, st)
		require.NoError(s.T(), err, st.String())
		s.Equal(1, res.MaxWidth, st.String())
		s.Equal(3, res.MaxWidthCount, st.String())
		s.Equal([]int{0, 1, 2, 3}, res.Order, st.String())
		s.Equal([]int{1, 1, 1, 0}, res.Widths, st.String())
	}
}

// TestStar: Sequential opens the hub first, Greedy starts at a leaf.
func (s *FrontierSuite) TestStar() {
	seq, err := frontier.Estimate(s.star, 4, frontier.Sequential)
	require.NoError(s.T(), err)
	s.Equal(3, seq.MaxWidth)
	s.Equal(1, seq.MaxWidthCount)
	s.Equal([]int{3, 2, 1, 0}, seq.Widths)

	gr, err := frontier.Estimate(s.star, 4, frontier.Greedy)
	require.NoError(s.T(), err)
	s.Equal([]int{1, 0, 2, 3}, gr.Order)
	s.Equal([]int{1, 2, 1, 0}, gr.Widths)
	s.Equal(2, gr.MaxWidth)
	s.Equal(1, gr.MaxWidthCount)
	s.Equal([]string{"D1", "D0", "D2", "D3"}, gr.OrderLabels(s.star.Label))
}

// TestZeroDetectors: an empty run is valid and has no steps.
func (s *FrontierSuite) TestZeroDetectors() {
	empty := mustMap(s.T(), 0, nil)
	for _, st := range frontier.Strategies() {
		res, err := frontier.Estimate(empty, 0, st)
		require.NoError(s.T(), err)
		s.Equal(0, res.MaxWidth)
		s.Equal(0, res.MaxWidthCount)
		s.Empty(res.Order)
	}
}

// TestMissingDetectorsAreIsolated: a Map shorter than n pads with isolated detectors.
func (s *FrontierSuite) TestMissingDetectorsAreIsolated() {
	short := mustMap(s.T(), 2, map[int][]int{0: {1}})
	rec := &diag.Recorder{}
	res, err := frontier.Estimate(short, 4, frontier.Greedy, frontier.WithSink(rec))
	require.NoError(s.T(), err)
	s.Equal([]int{2, 3, 0, 1}, res.Order, "degree-0 padding goes first")
	s.Equal([]int{0, 0, 1, 0}, res.Widths)

	steps := rec.Named("frontier", "step")
	require.Len(s.T(), steps, 4)
	label, _ := steps[1].Lookup("detector")
	s.Equal("D3", label)
}

// TestGreedyRestartsAfterComponent: two components; Greedy finishes one before
// entering the other.
func (s *FrontierSuite) TestGreedyRestartsAfterComponent() {
	m := mustMap(s.T(), 6, map[int][]int{0: {1, 2}, 1: {2}, 3: {4}, 4: {5}})
	res, err := frontier.Estimate(m, 6, frontier.Greedy)
	require.NoError(s.T(), err)

	s.Equal([]int{3, 4, 5, 0, 1, 2}, res.Order, "lowest-degree detector first, then its component")
	s.Equal([]int{1, 1, 0, 2, 1, 0}, res.Widths)
	s.Equal(2, res.MaxWidth)
}

// TestProperties checks order coverage, width bounds and monotone related over
// random inputs.
func (s *FrontierSuite) TestProperties() {
	for seed := int64(1); seed <= 20; seed++ {
		const n = 30
		m := randomMap(s.T(), seed, n, 0.12)
		for _, st := range frontier.Strategies() {
			prevRelated := 0
			res, err := frontier.Estimate(m, n, st, frontier.WithOnStep(func(step frontier.Step) error {
				s.GreaterOrEqual(step.Related, prevRelated)
				prevRelated = step.Related
				s.Equal(step.Index+1, step.Eliminated)
				s.Equal(step.Width, len(step.Frontier))
				s.True(sort.IntsAreSorted(step.Frontier))
				return nil
			}))
			require.NoError(s.T(), err, "seed %d %s", seed, st)

			seen := make(map[int]bool, n)
			for _, d := range res.Order {
				s.False(seen[d], "seed %d: %d eliminated twice", seed, d)
				seen[d] = true
			}
			s.Len(seen, n)

			peak, count := 0, 0
			for t, w := range res.Widths {
				s.GreaterOrEqual(w, 0)
				s.LessOrEqual(w, n-(t+1))
				switch {
				case w > peak:
					peak, count = w, 1
				case w == peak:
					count++
				}
			}
			s.Equal(peak, res.MaxWidth)
			s.Equal(count, res.MaxWidthCount)
			s.Equal(0, res.Widths[n-1], "last step empties the frontier")
		}
	}
}

// TestDeterminism: repeated runs agree exactly.
func (s *FrontierSuite) TestDeterminism() {
	m := randomMap(s.T(), 99, 50, 0.08)
	a, err := frontier.Estimate(m, 50, frontier.Greedy)
	require.NoError(s.T(), err)
	b, err := frontier.Estimate(m, 50, frontier.Greedy)
	require.NoError(s.T(), err)
	s.Equal(a, b)
}

// TestCompare returns both results for one Map.
func (s *FrontierSuite) TestCompare() {
	gr, seq, err := frontier.Compare(s.star, 4)
	require.NoError(s.T(), err)
	s.Equal(frontier.Greedy, gr.Strategy)
	s.Equal(frontier.Sequential, seq.Strategy)
	s.Less(gr.MaxWidth, seq.MaxWidth)

	_, _, err = frontier.Compare(nil, 4)
	s.ErrorIs(err, frontier.ErrInvalidInput)
}

// TestErrors covers rejected input, options and hook failures.
func (s *FrontierSuite) TestErrors() {
	_, err := frontier.Estimate(s.path, -1, frontier.Greedy)
	s.ErrorIs(err, frontier.ErrInvalidInput)

	_, err = frontier.Estimate(nil, 4, frontier.Greedy)
	s.ErrorIs(err, frontier.ErrInvalidInput)

	_, err = frontier.Estimate(s.path, 3, frontier.Sequential)
	s.ErrorIs(err, frontier.ErrInvalidInput, "map larger than n")

	_, err = frontier.Estimate(s.path, 4, frontier.Strategy(9))
	s.ErrorIs(err, frontier.ErrInvalidInput)

	//nolint:staticcheck // nil context on purpose
	_, err = frontier.Estimate(s.path, 4, frontier.Greedy, frontier.WithContext(nil))
	s.ErrorIs(err, frontier.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = frontier.Estimate(s.path, 4, frontier.Greedy, frontier.WithContext(ctx))
	s.ErrorIs(err, context.Canceled)

	boom := errors.New("boom")
	_, err = frontier.Estimate(s.path, 4, frontier.Sequential, frontier.WithOnStep(func(step frontier.Step) error {
		if step.Index == 2 {
			return boom
		}
		return nil
	}))
	s.ErrorIs(err, boom)
	s.Contains(err.Error(), "step 2")
}

// TestSinkEvents checks one debug event per step and one summary.
func (s *FrontierSuite) TestSinkEvents() {
	rec := &diag.Recorder{}
	_, err := frontier.Estimate(s.star, 4, frontier.Sequential, frontier.WithSink(rec))
	require.NoError(s.T(), err)

	s.Len(rec.Named("frontier", "step"), 4)
	done := rec.Named("frontier", "done")
	require.Len(s.T(), done, 1)
	s.Equal(diag.LevelInfo, done[0].Level)
	v, _ := done[0].Lookup("max_width")
	s.Equal(3, v)
	v, _ = done[0].Lookup("strategy")
	s.Equal("sequential", v)
}

func TestParseStrategy(t *testing.T) {
	for _, st := range frontier.Strategies() {
		got, err := frontier.ParseStrategy(st.String())
		require.NoError(t, err)
		assert.Equal(t, st, got)
	}
	got, err := frontier.ParseStrategy("  GREEDY ")
	require.NoError(t, err)
	assert.Equal(t, frontier.Greedy, got)

	_, err = frontier.ParseStrategy("optimal")
	assert.ErrorIs(t, err, frontier.ErrInvalidInput)
	assert.Equal(t, "strategy(7)", frontier.Strategy(7).String())

	raw, err := json.Marshal(frontier.Result{Strategy: frontier.Sequential, MaxWidth: 3})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"strategy":"sequential"`)
	var back frontier.Result
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, frontier.Sequential, back.Strategy)

	_, err = json.Marshal(frontier.Result{Strategy: frontier.Strategy(7)})
	assert.Error(t, err)
}

func TestResultHelpers(t *testing.T) {
	r := &frontier.Result{MaxWidth: 70, Widths: []int{3, 70, 1, 70, 0}}
	want := new(big.Int).Lsh(big.NewInt(1), 70)
	assert.Equal(t, 0, want.Cmp(r.TableSize()))
	assert.Equal(t, []int{1, 3}, r.PeakSteps())

	zero := &frontier.Result{}
	assert.Equal(t, int64(1), zero.TableSize().Int64())
}
