// SPDX-License-Identifier: MIT
// Package: mldwidth/builder
//
// impl_isolated.go - implementation of Isolated(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Reserves n detectors and emits one single-detector mechanism on each,
//     so every detector is touched yet none shares a mechanism.

package builder

import "github.com/katalvlaran/mldwidth/dem"

const minIsolatedNodes = 1

// Isolated returns a Constructor that builds n mutually unconnected detectors.
func Isolated(n int) Constructor {
	return func(m *dem.Model, cfg builderConfig) error {
		if err := validateMin(MethodIsolated, "n", n, minIsolatedNodes); err != nil {
			return err
		}

		b := reserve(m, cfg, MethodIsolated, n)
		for i := 0; i < n; i++ {
			if err := b.mechanism(b.detector(i)); err != nil {
				return err
			}
		}
		return nil
	}
}
