// SPDX-License-Identifier: MIT
// Package: mldwidth/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Reserves n detectors; emits error(p) D(i-1) D(i) for i=1..n-1 in increasing order.
//
// Complexity:
//   - Time: O(n) declarations + O(n-1) mechanisms.
//   - Space: O(1) extra.

package builder

import "github.com/katalvlaran/mldwidth/dem"

// Path returns a Constructor that builds a chain of n detectors.
func Path(n int) Constructor {
	return func(m *dem.Model, cfg builderConfig) error {
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return err
		}

		b := reserve(m, cfg, MethodPath, n)
		for i := 1; i < n; i++ {
			if err := b.pair(i-1, i); err != nil {
				return err
			}
		}
		return nil
	}
}
