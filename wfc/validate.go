// Package wfc - input validation for New.
//
// The solver assumes a well-formed compatibility table; a malformed one would
// silently corrupt support counts. New therefore validates everything once,
// up front, and refuses to build a Model on bad input.
//
// Design principles:
//   - Deterministic, side-effect free.
//   - No panics on user input - only sentinel errors from types.go.
package wfc

import (
	"fmt"
	"math"
)

// validateAll verifies Options, weights and the compatibility table.
// It returns the pattern count on success.
//
// Stages:
//  1. Options recorded by functional arguments.
//  2. Weight table: non-empty, positive and finite.
//  3. Compatibility: shape, range, symmetry (Compatibility.Validate).
//  4. Ground pattern range.
//
// Complexity: O(T + E·k), T patterns, E compatibility entries.
func validateAll(weights []float64, compat Compatibility, opts Options) (int, error) {
	// Stage 1: option errors surface first.
	if opts.err != nil {
		return 0, opts.err
	}

	// Stage 2: weights.
	n := len(weights)
	if n == 0 {
		return 0, ErrNoPatterns
	}
	if compat.PatternCount() != n {
		return 0, fmt.Errorf("%w: %d weights, %d patterns", ErrWeightCount, n, compat.PatternCount())
	}
	for t, w := range weights {
		if !(w > 0) || math.IsInf(w, 1) {
			return 0, fmt.Errorf("%w: pattern %d has weight %v", ErrBadWeight, t, w)
		}
	}

	// Stage 3: compatibility relation.
	if err := compat.Validate(n); err != nil {
		return 0, err
	}

	// Stage 4: ground.
	if opts.Ground >= n {
		return 0, fmt.Errorf("%w: %d with %d patterns", ErrGroundRange, opts.Ground, n)
	}

	return n, nil
}
