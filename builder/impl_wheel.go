// SPDX-License-Identifier: MIT
// Package: mldwidth/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices).
//   - Local detectors 0..n-2 form a ring; local n-1 is the hub.
//   - Ring mechanisms first (as Cycle), then spokes hub–i for i ascending.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "github.com/katalvlaran/mldwidth/dem"

// Wheel returns a Constructor that builds W_n = C_{n-1} + hub.
func Wheel(n int) Constructor {
	return func(m *dem.Model, cfg builderConfig) error {
		if err := validateMin(MethodWheel, "n", n, MinWheelNodes); err != nil {
			return err
		}

		b := reserve(m, cfg, MethodWheel, n)
		ring, hub := n-1, n-1
		for i := 0; i < ring; i++ {
			if err := b.pair(i, (i+1)%ring); err != nil {
				return err
			}
		}
		for i := 0; i < ring; i++ {
			if err := b.pair(hub, i); err != nil {
				return err
			}
		}
		return nil
	}
}
