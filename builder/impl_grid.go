// SPDX-License-Identifier: MIT
// Package: mldwidth/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices); 1×1 is valid (one isolated detector).
//   - Local index of cell (r,c) is r*cols + c (row-major).
//   - Emission order: for each r asc, c asc: right neighbor, then down neighbor.
//
// Complexity: O(rows*cols) time, O(1) extra space.

package builder

import "github.com/katalvlaran/mldwidth/dem"

// Grid returns a Constructor that builds a rows×cols nearest-neighbor lattice,
// the detector layout of one surface-code round.
func Grid(rows, cols int) Constructor {
	return func(m *dem.Model, cfg builderConfig) error {
		if err := validateMin(MethodGrid, "rows", rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, "cols", cols, MinGridDim); err != nil {
			return err
		}

		b := reserve(m, cfg, MethodGrid, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					if err := b.pair(u, u+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := b.pair(u, u+cols); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}
