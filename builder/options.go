// SPDX-License-Identifier: MIT
// Package: mldwidth/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// Option customizes fixture construction by mutating a builderConfig before
// any constructor runs.
type Option func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithProbability sets a constant error probability for every mechanism.
// Panics if p is outside [0,1].
func WithProbability(p float64) Option {
	fn := ConstantProbabilityFn(p)
	return func(c *builderConfig) {
		c.probFn = fn
	}
}

// WithProbabilityFn overrides the per-mechanism probability generator.
// The function receives the (possibly nil) RNG. Panics on nil.
func WithProbabilityFn(fn ProbabilityFn) Option {
	if fn == nil {
		panic("builder: WithProbabilityFn(nil)")
	}
	return func(c *builderConfig) {
		c.probFn = fn
	}
}
