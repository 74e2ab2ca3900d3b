// SPDX-License-Identifier: MIT
// Package: mldwidth/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Local detector 0 is the center; emits center–leaf mechanisms for leaves 1..n-1.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "github.com/katalvlaran/mldwidth/dem"

// centerIndex is the local index of the hub in Star.
const centerIndex = 0

// Star returns a Constructor that builds one center detector joined to n-1 leaves.
func Star(n int) Constructor {
	return func(m *dem.Model, cfg builderConfig) error {
		if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
			return err
		}

		b := reserve(m, cfg, MethodStar, n)
		for leaf := 1; leaf < n; leaf++ {
			if err := b.pair(centerIndex, leaf); err != nil {
				return err
			}
		}
		return nil
	}
}
