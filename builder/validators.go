// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
//
// Each function returns the sentinel wrapped with the constructor name
// when its precondition is violated.
package builder

import "fmt"

// validateMin ensures that the provided integer got is ≥ lo.
// Returns "<Method>: <name>=<got> < min=<lo>: builder: parameter too small" otherwise.
// Complexity: O(1) time and space.
func validateMin(method, name string, got, lo int) error {
	if got < lo {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, lo, ErrTooFewRows)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// NaN fails both comparisons and is rejected explicitly.
// Complexity: O(1) time and space.
func validateProbability(method string, p float64) error {
	if !(p >= MinProbability && p <= MaxProbability) {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}
