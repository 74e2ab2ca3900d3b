// SPDX-License-Identifier: MIT
// Package: mldwidth/builder
//
// impl_random_regular.go - implementation of RandomRegular(n, d) constructor.
//
// Model:
//   - Stub matching: every detector contributes d stubs; a shuffled stub list
//     is paired consecutively. A pairing with a self-pair or a repeated pair
//     is rejected and reshuffled, up to maxStubMatchingAttempts times.
//   - Each accepted pair becomes one two-detector mechanism, so every detector
//     ends with exactly d connectivity neighbors (an LDPC-like check graph).
//
// Contract:
//   - n ≥ 1, 0 ≤ d < n, n*d even (else ErrTooFewVertices).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Validation happens before any mutation; the model is untouched on
//     ErrConstructFailed.
//
// Complexity: ~O(n*d) per attempt; attempts are constant-bounded.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mldwidth/dem"
)

const (
	minRRVertices           = 1
	maxStubMatchingAttempts = 64
)

// RandomRegular returns a Constructor that builds a d-regular pairing graph over
// n fresh detectors.
func RandomRegular(n, d int) Constructor {
	return func(m *dem.Model, cfg builderConfig) error {
		if err := validateMin(MethodRandomRegular, "n", n, minRRVertices); err != nil {
			return err
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w",
				MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomRegular, ErrNeedRandSource)
		}

		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		pairs, ok := matchStubs(cfg, stubs)
		if !ok {
			return fmt.Errorf("%s: failed to construct after %d attempts: %w",
				MethodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
		}

		b := reserve(m, cfg, MethodRandomRegular, n)
		for _, pr := range pairs {
			if err := b.pair(pr[0], pr[1]); err != nil {
				return err
			}
		}
		return nil
	}
}

// matchStubs shuffles stubs until consecutive pairs form a simple graph.
// Pairs are normalized (u<v) and returned in stub order.
func matchStubs(cfg builderConfig, stubs []int) ([][2]int, bool) {
	if len(stubs) == 0 {
		return nil, true
	}
	for attempt := 0; attempt < maxStubMatchingAttempts; attempt++ {
		cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

		pairs := make([][2]int, 0, len(stubs)/2)
		seen := make(map[[2]int]struct{}, len(stubs)/2)
		valid := true
		for i := 0; i < len(stubs); i += 2 {
			u, v := stubs[i], stubs[i+1]
			if u == v {
				valid = false
				break
			}
			if u > v {
				u, v = v, u
			}
			key := [2]int{u, v}
			if _, dup := seen[key]; dup {
				valid = false
				break
			}
			seen[key] = struct{}{}
			pairs = append(pairs, key)
		}
		if valid {
			return pairs, true
		}
	}
	return nil, false
}
