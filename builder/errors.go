// SPDX-License-Identifier: MIT
// Package: mldwidth/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w ("Path: n=1 < min=2: ...").
//   • Option constructors panic on meaningless values; constructors never panic.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, degree,
// distance, rounds, target count) is below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1], either a
// constructor parameter or a value produced by the configured ProbabilityFn.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor, a negative detector index,
// or exhausted retries (RandomRegular stub matching).
var ErrConstructFailed = errors.New("builder: construction failed")
