// Package wfc provides a Wave Function Collapse constraint solver over a
// rectangular grid: every cell ends up holding one pattern from a finite set
// such that each pair of neighbouring cells respects a caller-supplied
// directional adjacency relation.
//
// What
//
//   - Model keeps, per cell, the set of still-possible ("live") patterns plus a
//     support counter for every (cell, pattern, direction).
//   - Run repeats three steps until no eligible cell is undetermined:
//   - select a cell (Entropy, MRV or Scanline heuristic)
//   - observe it: collapse to one pattern drawn by weight among the live ones
//   - propagate: remove patterns that lost all support, cascading (AC-3 style)
//   - The attempt ends in Success, Failure (some domain emptied) or
//     BudgetExhausted (step limit reached). There is no backtracking.
//   - Attempts retries with derived seeds, optionally in parallel, and returns
//     the lowest-indexed success.
//
// Why
//
//   - Procedural content: textures, tile maps and levels that look like a
//     small example but are arbitrarily large.
//   - The solver is pattern-agnostic; see package overlap for the classic
//     "overlapping model" that learns patterns and adjacency from a bitmap.
//
// Determinism
//
//	Given the same weights, compatibility table, options and seed, Run yields
//	the same Outcome and the same observed grid on every platform. All random
//	choices (tie-breaking jitter, weighted draws) come from a *rand.Rand built
//	from the seed; there is no package-level random state.
//
// Bounded outputs
//
//	With Periodic=false and Footprint=N > 1, a cell (x, y) is only selected or
//	propagated through when x+N ≤ Width and y+N ≤ Height: its N×N block must
//	fit inside the output. The other cells keep their domains and report
//	Undetermined in Observed.
//
// Complexity (C = Width×Height cells, T patterns, k = longest adjacency list)
//
//   - Memory: O(C·T) booleans + O(C·T·4) counters.
//   - Time:   O(C²) for selection + O(C·T·4·k) total propagation per attempt.
//
// Usage
//
//	compat := wfc.NewCompatibility(2)
//	for _, d := range grid.Directions {
//	    compat.Allow(d, 0, 1) // 0 and 1 must alternate
//	    compat.Allow(d, 1, 0)
//	}
//	m, err := wfc.New([]float64{1, 1}, compat,
//	    wfc.WithSize(8, 8),
//	    wfc.WithPeriodic(true),
//	)
//	if err != nil {
//	    // ErrNoPatterns, ErrWeightCount, ErrBadWeight, ErrCompatibilityShape,
//	    // ErrPatternRange, ErrAsymmetric, ErrGroundRange or ErrOptionViolation
//	}
//	if m.Run(42, wfc.Unbounded) == wfc.Success {
//	    cells, _ := m.Observed()
//	    _ = cells
//	}
//
// See also: grid for the lattice geometry, overlap for pattern extraction
// and rendering.
package wfc
