// SPDX-License-Identifier: MIT
// Package: mldwidth/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model:
//   - Erdős–Rényi-like: each unordered pair {i,j}, i<j, gets a two-detector
//     mechanism independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource);
//     p ∈ {0,1} is deterministic and needs no RNG.
//
// Determinism:
//   - Trial order: i asc, j asc (j > i). The inclusion trial is drawn before
//     the mechanism probability, so both come from one stream in a fixed order.
//
// Complexity: O(n²) Bernoulli trials, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mldwidth/dem"
)

const minRandomSparseVertices = 1

// RandomSparse returns a Constructor that samples a sparse random pairing
// graph over n fresh detectors. p is the pair inclusion probability, not the
// error probability (see WithProbability).
func RandomSparse(n int, p float64) Constructor {
	return func(m *dem.Model, cfg builderConfig) error {
		if err := validateMin(MethodRandomSparse, "n", n, minRandomSparseVertices); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		b := reserve(m, cfg, MethodRandomSparse, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !include(cfg, p) {
					continue
				}
				if err := b.pair(i, j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// include runs one Bernoulli(p) trial; p ∈ {0,1} never touches the RNG.
func include(cfg builderConfig, p float64) bool {
	switch p {
	case MinProbability:
		return false
	case MaxProbability:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
