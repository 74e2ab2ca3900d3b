// SPDX-License-Identifier: MIT
// Package: mldwidth/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); n == 1 is one isolated detector.
//   - Emits one mechanism per unordered pair {i,j}, i<j, in lexicographic order.
//
// Complexity: O(n²) time, O(1) extra space.

package builder

import "github.com/katalvlaran/mldwidth/dem"

// minCompleteNodes is the smallest complete fixture.
const minCompleteNodes = 1

// Complete returns a Constructor that pairs every two of n detectors.
func Complete(n int) Constructor {
	return func(m *dem.Model, cfg builderConfig) error {
		if err := validateMin(MethodComplete, "n", n, minCompleteNodes); err != nil {
			return err
		}

		b := reserve(m, cfg, MethodComplete, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := b.pair(i, j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
