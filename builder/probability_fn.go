// Package builder provides probability generators for emitted error mechanisms.
package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// ProbabilityFn produces an error probability given an optional *rand.Rand.
// It must be deterministic for a given RNG seed. Values outside [0,1] are
// rejected by the constructor that requested them.
type ProbabilityFn func(rng *rand.Rand) float64

// DefaultProbabilityFn always returns DefaultProbability.
func DefaultProbabilityFn(_ *rand.Rand) float64 {
	return DefaultProbability
}

// ConstantProbabilityFn returns a ProbabilityFn that always yields p.
// Panics if p is outside [0,1].
func ConstantProbabilityFn(p float64) ProbabilityFn {
	if p != p || p < MinProbability || p > MaxProbability {
		panic(fmt.Sprintf("ConstantProbabilityFn: p must be in [0,1], got %g", p))
	}
	return func(_ *rand.Rand) float64 {
		return p
	}
}

// UniformProbabilityFn samples uniformly in [lo, hi).
// Panics unless 0 ≤ lo ≤ hi ≤ 1. A nil rng yields lo.
func UniformProbabilityFn(lo, hi float64) ProbabilityFn {
	if lo < MinProbability || hi > MaxProbability || hi < lo {
		panic(fmt.Sprintf("UniformProbabilityFn: require 0 ≤ lo ≤ hi ≤ 1, got lo=%g, hi=%g", lo, hi))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil || hi == lo {
			return lo
		}
		return lo + rng.Float64()*(hi-lo)
	}
}

// LogUniformProbabilityFn samples log10(p) uniformly in [log10(lo), log10(hi)),
// which spreads mechanisms across orders of magnitude the way circuit-level
// models do. Panics unless 0 < lo ≤ hi ≤ 1. A nil rng yields lo.
func LogUniformProbabilityFn(lo, hi float64) ProbabilityFn {
	if lo <= 0 || hi > MaxProbability || hi < lo {
		panic(fmt.Sprintf("LogUniformProbabilityFn: require 0 < lo ≤ hi ≤ 1, got lo=%g, hi=%g", lo, hi))
	}
	a, b := math.Log10(lo), math.Log10(hi)
	return func(rng *rand.Rand) float64 {
		if rng == nil || hi == lo {
			return lo
		}
		return math.Pow(10, a+rng.Float64()*(b-a))
	}
}
