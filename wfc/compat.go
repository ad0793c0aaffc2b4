package wfc

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/wfc/grid"
)

// Compatibility is the adjacency relation the solver enforces.
//
// c[d][p] lists, in ascending order, the patterns allowed in the neighbour
// in direction d of a cell holding p. Lists are ragged: sparse relations
// cost O(edges), not O(patterns²).
//
// A well-formed table is symmetric: q ∈ c[d][p] ⇔ p ∈ c[d.Opposite()][q].
type Compatibility [grid.NumDirections][][]int

// NewCompatibility returns an empty relation over n patterns (nothing is
// allowed anywhere). Use Allow to populate it.
// Complexity: O(n).
func NewCompatibility(n int) Compatibility {
	var c Compatibility
	for d := range c {
		c[d] = make([][]int, n)
	}

	return c
}

// PatternCount returns the number of patterns the table describes.
func (c Compatibility) PatternCount() int {
	return len(c[grid.West])
}

// Allowed returns the patterns allowed next to p in direction d.
// The slice is shared with the table and must not be modified.
func (c Compatibility) Allowed(d grid.Direction, p int) []int {
	return c[d][p]
}

// Allow records that b may sit next to a in direction d, and the mirrored
// fact that a may sit next to b in the opposite direction, so the table
// stays symmetric by construction. Duplicates are ignored.
//
// Complexity: O(k) where k is the length of the touched lists.
func (c Compatibility) Allow(d grid.Direction, a, b int) {
	c[d][a] = insertSorted(c[d][a], b)
	o := d.Opposite()
	c[o][b] = insertSorted(c[o][b], a)
}

// AllowAll permits every ordered pair in every direction.
// Complexity: O(n²).
func (c Compatibility) AllowAll() {
	n := c.PatternCount()
	for _, d := range grid.Directions {
		for a := 0; a < n; a++ {
			list := make([]int, n)
			for b := range list {
				list[b] = b
			}
			c[d][a] = list
		}
	}
}

// Validate checks shape, index range and opposite-direction symmetry for
// a relation over n patterns.
//
// Errors: ErrCompatibilityShape, ErrPatternRange, ErrAsymmetric (wrapped with
// the offending direction and patterns).
//
// Complexity: O(E·k) where E is the number of entries and k the longest list.
func (c Compatibility) Validate(n int) error {
	for _, d := range grid.Directions {
		if len(c[d]) != n {
			return fmt.Errorf("%w: %s has %d entries, want %d", ErrCompatibilityShape, d, len(c[d]), n)
		}
	}
	for _, d := range grid.Directions {
		o := d.Opposite()
		for p, list := range c[d] {
			for _, q := range list {
				if q < 0 || q >= n {
					return fmt.Errorf("%w: %s of %d lists %d", ErrPatternRange, d, p, q)
				}
				if !slices.Contains(c[o][q], p) {
					return fmt.Errorf("%w: %d allows %d to the %s but not the reverse", ErrAsymmetric, p, q, d)
				}
			}
		}
	}

	return nil
}

// clone deep-copies c so the solver never aliases caller-owned slices.
func (c Compatibility) clone() Compatibility {
	var out Compatibility
	for d := range c {
		out[d] = make([][]int, len(c[d]))
		for p, list := range c[d] {
			out[d][p] = slices.Clone(list)
		}
	}

	return out
}

func insertSorted(list []int, v int) []int {
	i, found := slices.BinarySearch(list, v)
	if found {
		return list
	}

	return slices.Insert(list, i, v)
}
