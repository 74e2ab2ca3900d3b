// SPDX-License-Identifier: MIT
// Package: mldwidth/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits the path mechanisms 0–1 … (n-2)–(n-1), then the closing (n-1)–0.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "github.com/katalvlaran/mldwidth/dem"

// Cycle returns a Constructor that builds a ring of n detectors.
func Cycle(n int) Constructor {
	return func(m *dem.Model, cfg builderConfig) error {
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}

		b := reserve(m, cfg, MethodCycle, n)
		for i := 0; i < n; i++ {
			if err := b.pair(i, (i+1)%n); err != nil {
				return err
			}
		}
		return nil
	}
}
