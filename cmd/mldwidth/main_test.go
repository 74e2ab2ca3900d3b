package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const starDEM = `# star: D0 shares a mechanism with each leaf
error(0.01) D0 D1
error(0.01) D0 D2
error(0.01) D0 D3 L0
`

// invoke runs the command in-process and returns exit code, stdout and stderr.
func invoke(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun_TextFromFile(t *testing.T) {
	path := writeFile(t, "star.dem", starDEM)
	code, out, errOut := invoke(t, "", "--dem", path)
	require.Equal(t, 0, code, errOut)

	assert.Contains(t, out, "detectors    4")
	assert.Contains(t, out, "greedy       max_width=2 count=1 table=2^2")
	assert.Contains(t, out, "sequential   max_width=3 count=1 table=2^3")
	assert.Contains(t, out, "best         greedy")
	assert.Contains(t, errOut, "model loaded")
}

func TestRun_JSONFromStdin(t *testing.T) {
	code, out, errOut := invoke(t, starDEM, "--format", "json", "--strategy", "sequential", "--observables")
	require.Equal(t, 0, code, errOut)

	var got struct {
		Detectors int    `json:"detectors"`
		Variables int    `json:"variables"`
		Best      string `json:"best"`
		Results   []struct {
			Strategy string `json:"strategy"`
			MaxWidth int    `json:"max_width"`
			Order    []int  `json:"order"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 4, got.Detectors)
	assert.Equal(t, 5, got.Variables, "L0 included")
	assert.Equal(t, "sequential", got.Best)
	require.Len(t, got.Results, 1)
	assert.Equal(t, "sequential", got.Results[0].Strategy)
	assert.Len(t, got.Results[0].Order, 5)
}

func TestRun_FixtureWithArtifacts(t *testing.T) {
	dir := t.TempDir()
	metrics := filepath.Join(dir, "mldwidth.prom")
	dot := filepath.Join(dir, "mechanisms.dot")

	code, out, errOut := invoke(t, "",
		"--fixture", "repetition:3x2+isolated:2",
		"--metrics-file", metrics,
		"--dot", dot,
		"--workers", "2",
	)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "detectors    6")
	assert.Contains(t, out, "components   3 (largest 4, isolated 2)")

	prom, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(prom), `mldwidth_peak_width{strategy="greedy"}`)
	assert.Contains(t, string(prom), "mldwidth_events_total")

	graph, err := os.ReadFile(dot)
	require.NoError(t, err)
	assert.Contains(t, string(graph), "mechanisms")
	assert.Contains(t, string(graph), "edge_0")
}

func TestRun_EnvAndConfigFile(t *testing.T) {
	path := writeFile(t, "star.dem", starDEM)

	t.Setenv("MLDWIDTH_FORMAT", "json")
	code, out, errOut := invoke(t, "", "--dem", path)
	require.Equal(t, 0, code, errOut)
	assert.True(t, json.Valid([]byte(out)), out)

	conf := writeFile(t, "mldwidth.yaml", "format: text\nstrategy:\n  - greedy\n")
	code, out, errOut = invoke(t, "", "--dem", path, "--config", conf, "--format", "text")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "greedy")
	assert.NotContains(t, out, "sequential")
}

func TestRun_DebugLogsSteps(t *testing.T) {
	code, _, errOut := invoke(t, starDEM, "--log-level", "debug", "--strategy", "greedy")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, errOut, "frontier.step")
	assert.Contains(t, errOut, "frontier.done")
}

func TestRun_Errors(t *testing.T) {
	cases := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"missing file", "", []string{"--dem", filepath.Join(t.TempDir(), "nope.dem")}, "no such file"},
		{"syntax", "error(0.1) X9\n", nil, "dem"},
		{"strategy", starDEM, []string{"--strategy", "optimal"}, "unknown strategy"},
		{"format", starDEM, []string{"--format", "xml"}, "--format"},
		{"workers", starDEM, []string{"--workers", "0"}, "--workers"},
		{"log level", starDEM, []string{"--log-level", "loud"}, "--log-level"},
		{"fixture kind", "", []string{"--fixture", "torus:3"}, "unknown kind"},
		{"fixture arity", "", []string{"--fixture", "grid:3"}, "takes 2"},
		{"fixture size", "", []string{"--fixture", "path:1"}, "too small"},
		{"positional", "", []string{"extra"}, "unexpected arguments"},
		{"unknown flag", "", []string{"--bogus"}, "bogus"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, _, errOut := invoke(t, tc.stdin, tc.args...)
			assert.Equal(t, 1, code)
			assert.Contains(t, errOut, tc.want)
		})
	}
}

func TestRun_Help(t *testing.T) {
	code, _, errOut := invoke(t, "", "--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, errOut, "--fixture")
}
