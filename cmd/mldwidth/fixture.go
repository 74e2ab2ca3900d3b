package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/mldwidth/builder"
	"github.com/katalvlaran/mldwidth/dem"
)

// fixtureKinds maps a --fixture kind to the number of integer parameters and
// the constructor taking them.
var fixtureKinds = map[string]struct {
	arity int
	ctor  func(p []int) builder.Constructor
}{
	"path":       {1, func(p []int) builder.Constructor { return builder.Path(p[0]) }},
	"cycle":      {1, func(p []int) builder.Constructor { return builder.Cycle(p[0]) }},
	"star":       {1, func(p []int) builder.Constructor { return builder.Star(p[0]) }},
	"wheel":      {1, func(p []int) builder.Constructor { return builder.Wheel(p[0]) }},
	"complete":   {1, func(p []int) builder.Constructor { return builder.Complete(p[0]) }},
	"isolated":   {1, func(p []int) builder.Constructor { return builder.Isolated(p[0]) }},
	"grid":       {2, func(p []int) builder.Constructor { return builder.Grid(p[0], p[1]) }},
	"regular":    {2, func(p []int) builder.Constructor { return builder.RandomRegular(p[0], p[1]) }},
	"repetition": {2, func(p []int) builder.Constructor { return builder.RepetitionCode(p[0], p[1]) }},
}

// buildFixture turns "kind:AxB" into a model, e.g. "repetition:5x3" for
// distance 5 over 3 rounds. Several fixtures may be joined with "+"; each
// gets its own detector block.
func buildFixture(desc string, probability float64, seed int64) (*dem.Model, error) {
	var cons []builder.Constructor
	for _, part := range strings.Split(desc, "+") {
		c, err := parseFixture(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		cons = append(cons, c)
	}
	opts := []builder.Option{builder.WithSeed(seed), builder.WithProbability(probability)}
	return builder.BuildModel(opts, cons...)
}

func parseFixture(desc string) (builder.Constructor, error) {
	kind, args, ok := strings.Cut(strings.ToLower(desc), ":")
	if !ok {
		return nil, fmt.Errorf("fixture %q: want kind:params", desc)
	}
	k, known := fixtureKinds[kind]
	if !known {
		return nil, fmt.Errorf("fixture %q: unknown kind %q", desc, kind)
	}
	fields := strings.Split(args, "x")
	if len(fields) != k.arity {
		return nil, fmt.Errorf("fixture %q: %s takes %d parameter(s)", desc, kind, k.arity)
	}
	params := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("fixture %q: %w", desc, err)
		}
		params[i] = n
	}
	return k.ctor(params), nil
}
