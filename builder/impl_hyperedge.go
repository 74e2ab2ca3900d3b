// SPDX-License-Identifier: MIT
// Package: mldwidth/builder
//
// impl_hyperedge.go - implementation of Hyperedge(detectors...) constructor.
//
// Contract:
//   - At least one detector (else ErrTooFewVertices).
//   - Indices are ABSOLUTE and non-negative (else ErrConstructFailed); the
//     model's DetectorCount grows to cover the largest one.
//   - Emits exactly one mechanism with targets in argument order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mldwidth/dem"
)

const minHyperedgeTargets = 1

// Hyperedge returns a Constructor that emits a single mechanism flipping the
// given detectors. Use it to join blocks from earlier constructors.
func Hyperedge(detectors ...int) Constructor {
	ds := append([]int(nil), detectors...)
	return func(m *dem.Model, cfg builderConfig) error {
		if err := validateMin(MethodHyperedge, "targets", len(ds), minHyperedgeTargets); err != nil {
			return err
		}
		targets := make([]dem.Target, len(ds))
		for i, d := range ds {
			if d < 0 {
				return fmt.Errorf("%s: negative detector %d: %w", MethodHyperedge, d, ErrConstructFailed)
			}
			targets[i] = dem.Detector(d)
		}
		return emit(m, cfg, MethodHyperedge, targets)
	}
}
