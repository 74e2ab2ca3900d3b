// SPDX-License-Identifier: MIT
// Package: mldwidth/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildModel(opts, cons...). Creates the model, resolves cfg, runs cons in order.
//   - Functional options resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical models.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mldwidth/dem"
)

// Constructor applies a deterministic model mutation using the resolved
// builderConfig. Constructors MUST validate parameters before mutating m and
// return sentinel errors (no panics).
type Constructor func(m *dem.Model, cfg builderConfig) error

// BuildModel creates an empty dem.Model, resolves the builder configuration
// from opts and applies all constructors in order. Any constructor error is
// wrapped with "BuildModel: %w" and returned immediately.
//
// Complexity: O(len(opts)) + Σ cost of each constructor.
func BuildModel(opts []Option, cons ...Constructor) (*dem.Model, error) {
	m := &dem.Model{}
	if err := apply(m, "BuildModel", opts, cons); err != nil {
		return nil, err
	}
	return m, nil
}

// Extend runs constructors against an existing model, appending new detector
// blocks after its current ones. m is left partially extended on error.
func Extend(m *dem.Model, opts []Option, cons ...Constructor) error {
	if m == nil {
		return fmt.Errorf("Extend: nil model: %w", ErrConstructFailed)
	}
	return apply(m, "Extend", opts, cons)
}

func apply(m *dem.Model, method string, opts []Option, cons []Constructor) error {
	cfg := newBuilderConfig(opts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("%s: nil constructor at index %d: %w", method, i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
	}
	return nil
}
