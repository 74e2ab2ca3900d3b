package dem_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mldwidth/dem"
)

const repetitionDEM = `
# distance-3 repetition code, two rounds
error(0.1) D0 L0
error(0.1) D0 D1
error(0.1) D1
detector(1, 0) D0
detector(3, 0) D1
repeat 2 {
    error(0.02) D0 D2
    error(0.02) D1 D3
    shift_detectors(0, 1) 2
}
logical_observable L0
`

func TestParse_FlattensRepeatAndShift(t *testing.T) {
	m, err := dem.ParseString(repetitionDEM)
	require.NoError(t, err)

	// 3 errors + 2 detectors + 2*2 repeated errors + 1 observable declaration
	require.Len(t, m.Events, 10)
	assert.Equal(t, 6, m.DetectorCount, "second repeat shifts D2/D3 to D4/D5")
	assert.Equal(t, 1, m.ObservableCount)

	errs := m.ErrorEvents()
	require.Len(t, errs, 7)
	assert.Equal(t, []dem.Target{dem.Detector(0), dem.Detector(2)}, errs[3].Targets)
	assert.Equal(t, []dem.Target{dem.Detector(2), dem.Detector(4)}, errs[5].Targets)
	assert.Equal(t, []dem.Target{dem.Detector(3), dem.Detector(5)}, errs[6].Targets)

	p, err := errs[0].Probability()
	require.NoError(t, err)
	assert.Equal(t, 0.1, p)

	assert.Equal(t, dem.InstructionDetector, m.Events[3].Type)
	assert.Equal(t, []float64{1, 0}, m.Events[3].Args)
}

func TestParse_NestedRepeatAndSeparator(t *testing.T) {
	src := `
REPEAT 2 {
  repeat 3 {
    error(0.5) D0 ^ D1 L1
    shift_detectors 1
  }
}
detector_separator 0
`
	m, err := dem.ParseString(src)
	require.NoError(t, err)
	require.Len(t, m.Events, 6)
	last := m.Events[5]
	assert.Equal(t, []dem.Target{dem.Detector(5), dem.Separator(), dem.Detector(6), dem.Observable(1)}, last.Targets)
	assert.Equal(t, 7, m.DetectorCount)
	assert.Equal(t, 2, m.ObservableCount)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"unknown instruction", "flip(0.1) D0", dem.ErrUnknownInstruction},
		{"missing probability", "error D0 D1", dem.ErrMissingProbability},
		{"empty probability", "error() D0", dem.ErrMissingProbability},
		{"probability range", "error(1.5) D0", dem.ErrSyntax},
		{"bad argument", "error(abc) D0", dem.ErrSyntax},
		{"unclosed paren", "error(0.1 D0", dem.ErrSyntax},
		{"bad target", "error(0.1) X3", dem.ErrBadTarget},
		{"negative target", "error(0.1) D-1", dem.ErrBadTarget},
		{"observable on detector", "detector L0", dem.ErrBadTarget},
		{"detector on observable", "logical_observable D0", dem.ErrBadTarget},
		{"stray close", "}", dem.ErrUnbalancedBlock},
		{"unclosed repeat", "repeat 2 {\nerror(0.1) D0", dem.ErrUnbalancedBlock},
		{"repeat without block", "repeat 2", dem.ErrSyntax},
		{"block without repeat", "error(0.1) D0 {", dem.ErrSyntax},
		{"zero repeat", "repeat 0 {\n}", dem.ErrSyntax},
		{"shift arity", "shift_detectors 1 2", dem.ErrSyntax},
		{"no name", "(0.1) D0", dem.ErrSyntax},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dem.ParseString(tc.src)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v, want %v", err, tc.want)
		})
	}
}

func TestParse_MaxEvents(t *testing.T) {
	src := "repeat 100 {\nerror(0.1) D0\n}"
	_, err := dem.ParseString(src, dem.WithMaxEvents(10))
	assert.ErrorIs(t, err, dem.ErrTooManyEvents)

	m, err := dem.ParseString(src, dem.WithMaxEvents(100))
	require.NoError(t, err)
	assert.Len(t, m.Events, 100)

	assert.Panics(t, func() { dem.WithMaxEvents(0) })
}

func TestParse_MaxEventsBoundsEventFreeRepeats(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"shift only", "repeat 999999999999 {\n shift_detectors 1\n}\n"},
		{"empty body", "repeat 999999999999 {\n}\n"},
		{"nested empty", "repeat 999999999 {\n repeat 999999999 {\n }\n}\n"},
		{"separators", "repeat 999999999999 {\n detector_separator 0\n}\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dem.ParseString(tc.src, dem.WithMaxEvents(10))
			assert.ErrorIs(t, err, dem.ErrTooManyEvents)
		})
	}

	m, err := dem.ParseString("repeat 5 {\n shift_detectors 1\n}\nerror(0.1) D0\n", dem.WithMaxEvents(10))
	require.NoError(t, err)
	assert.Equal(t, 6, m.DetectorCount)
}

func TestParse_MaxDetectors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		opts []dem.Option
	}{
		{"huge detector", "error(0.1) D4000000000\n", nil},
		{"huge observable", "error(0.1) D0 L4000000000\n", nil},
		{"declared detector", "detector D16777216\n", nil},
		{"shifted past limit", "shift_detectors 8\nerror(0.1) D2\n", []dem.Option{dem.WithMaxDetectors(10)}},
		{"huge shift", "shift_detectors 9223372036854775807\nerror(0.1) D0\n", nil},
		{"repeated shifts", "repeat 100 {\n shift_detectors 1\n}\n", []dem.Option{dem.WithMaxDetectors(50)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := dem.ParseString(tc.src, tc.opts...)
			assert.ErrorIs(t, err, dem.ErrIndexTooLarge)
			assert.Nil(t, m)
		})
	}

	m, err := dem.ParseString("shift_detectors 7\nerror(0.1) D2 L9\n", dem.WithMaxDetectors(10))
	require.NoError(t, err)
	assert.Equal(t, 10, m.DetectorCount)
	assert.Equal(t, 10, m.ObservableCount)

	assert.Panics(t, func() { dem.WithMaxDetectors(0) })
}

func TestParse_ErrorWithoutTargetsIsKept(t *testing.T) {
	// target validation of empty mechanisms belongs to the hypergraph builder
	m, err := dem.ParseString("error(0.25)")
	require.NoError(t, err)
	require.Len(t, m.Events, 1)
	assert.Empty(t, m.Events[0].Targets)
}

func TestWriteTo_RoundTrip(t *testing.T) {
	m, err := dem.ParseString(repetitionDEM)
	require.NoError(t, err)

	var sb strings.Builder
	n, err := m.WriteTo(&sb)
	require.NoError(t, err)
	assert.Equal(t, int64(sb.Len()), n)
	assert.True(t, strings.HasPrefix(sb.String(), "error(0.1) D0 L0\n"), sb.String())
	assert.Contains(t, sb.String(), "detector(1, 0) D0\n")

	again, err := dem.ParseString(sb.String())
	require.NoError(t, err)
	assert.Equal(t, m, again)
}

func TestEvent_ProbabilityMissing(t *testing.T) {
	_, err := dem.Event{Type: dem.InstructionError}.Probability()
	assert.ErrorIs(t, err, dem.ErrMissingProbability)
	assert.Equal(t, "error D3 ^ L1", dem.Event{
		Type:    dem.InstructionError,
		Targets: []dem.Target{dem.Detector(3), dem.Separator(), dem.Observable(1)},
	}.String())
}
