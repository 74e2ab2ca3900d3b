// Package builder provides validation helpers shared by the constructors.
package builder

import "fmt"

// validateMin ensures got ≥ min, wrapping ErrTooFewVertices otherwise.
func validateMin(method, param string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewVertices)
	}
	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// NaN fails both comparisons and is rejected explicitly.
func validateProbability(method string, p float64) error {
	if p != p || p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: p=%g not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}
	return nil
}
