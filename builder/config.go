// SPDX-License-Identifier: MIT
// Package: mldwidth/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • newBuilderConfig applies options in order (later overrides earlier).
//
// Deterministic defaults:
//   • rng    = nil                    (pure/deterministic unless seeded)
//   • probFn = DefaultProbabilityFn   (constant DefaultProbability)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand

	// Probability generator, called once per emitted mechanism.
	probFn ProbabilityFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		rng:    nil,
		probFn: DefaultProbabilityFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// probability draws the next mechanism probability and validates it, so a
// misbehaving ProbabilityFn surfaces as ErrInvalidProbability.
func (c builderConfig) probability(method string) (float64, error) {
	p := c.probFn(c.rng)
	if err := validateProbability(method, p); err != nil {
		return 0, err
	}
	return p, nil
}
