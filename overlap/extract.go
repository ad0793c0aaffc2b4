package overlap

import (
	"bytes"
	"fmt"

	"github.com/katalvlaran/wfc/grid"
	"github.com/katalvlaran/wfc/wfc"
	"github.com/zeebo/xxh3"
)

// symmetries is the number of dihedral variants of a square.
const symmetries = 8

// Extract learns the pattern catalogue of s.
//
// Every N×N window anchored at (x, y) is read, with x, y ranging over the
// whole sample when PeriodicInput (windows wrap) and over the anchors whose
// window fits otherwise. The first Symmetry dihedral variants of each window
// are counted. Patterns are numbered in discovery order.
//
// Errors: ErrBadPatternSize, ErrBadSymmetry.
func Extract(s *Sample, opts Options) (*Set, error) {
	n := opts.N
	if n <= 0 {
		return nil, fmt.Errorf("%w: N=%d", ErrBadPatternSize, n)
	}
	if opts.Symmetry < 1 || opts.Symmetry > symmetries {
		return nil, fmt.Errorf("%w: got %d", ErrBadSymmetry, opts.Symmetry)
	}

	xmax, ymax := s.Width, s.Height
	if !opts.PeriodicInput {
		xmax, ymax = s.Width-n+1, s.Height-n+1
		if xmax <= 0 || ymax <= 0 {
			return nil, fmt.Errorf("%w: N=%d exceeds %dx%d bounded sample", ErrBadPatternSize, n, s.Width, s.Height)
		}
	}

	set := &Set{N: n, Palette: s.Palette}
	// hash → indices of patterns with that hash
	buckets := make(map[uint64][]int)
	var variants [symmetries][]byte
	var x, y, k int
	for y = 0; y < ymax; y++ {
		for x = 0; x < xmax; x++ {
			variants[0] = window(s, x, y, n)
			variants[1] = reflect(variants[0], n)
			variants[2] = rotate(variants[0], n)
			variants[3] = reflect(variants[2], n)
			variants[4] = rotate(variants[2], n)
			variants[5] = reflect(variants[4], n)
			variants[6] = rotate(variants[4], n)
			variants[7] = reflect(variants[6], n)

			for k = 0; k < opts.Symmetry; k++ {
				set.add(buckets, variants[k])
			}
		}
	}

	return set, nil
}

// add counts p, appending it as a new pattern if unseen.
func (set *Set) add(buckets map[uint64][]int, p []byte) {
	h := xxh3.Hash(p)
	for _, idx := range buckets[h] {
		if bytes.Equal(set.Patterns[idx], p) {
			set.Weights[idx]++
			return
		}
	}
	buckets[h] = append(buckets[h], len(set.Patterns))
	set.Patterns = append(set.Patterns, p)
	set.Weights = append(set.Weights, 1)
}

// Compatibility builds the adjacency table: q is allowed in direction d of
// p iff p and q agree on their overlap when q is shifted by d's offset.
// Lists come out sorted and the relation is symmetric.
//
// Complexity: O(4·P²·N²).
func (set *Set) Compatibility() wfc.Compatibility {
	count := len(set.Patterns)
	c := wfc.NewCompatibility(count)
	var p, q int
	for _, d := range grid.Directions {
		dx, dy := d.Offset()
		for p = 0; p < count; p++ {
			for q = 0; q < count; q++ {
				if agrees(set.Patterns[p], set.Patterns[q], dx, dy, set.N) {
					c[d][p] = append(c[d][p], q)
				}
			}
		}
	}

	return c
}

// Ground returns the index of the last pattern discovered, the conventional
// ground for samples drawn with a distinct bottom strip.
func (set *Set) Ground() int {
	return len(set.Patterns) - 1
}

// NewModel builds a solver for the catalogue. The footprint is fixed to N;
// opts supply size, periodicity, heuristic, ground and hooks.
func (set *Set) NewModel(opts ...wfc.Option) (*wfc.Model, error) {
	all := make([]wfc.Option, 0, len(opts)+1)
	all = append(all, wfc.WithFootprint(set.N))
	all = append(all, opts...)

	return wfc.New(set.Weights, set.Compatibility(), all...)
}

// agrees reports whether p1 and p2 match on their overlap when p2 sits at
// offset (dx, dy) from p1.
func agrees(p1, p2 []byte, dx, dy, n int) bool {
	xmin, xmax := dx, n
	if dx < 0 {
		xmin, xmax = 0, dx+n
	}
	ymin, ymax := dy, n
	if dy < 0 {
		ymin, ymax = 0, dy+n
	}

	var x, y int
	for y = ymin; y < ymax; y++ {
		for x = xmin; x < xmax; x++ {
			if p1[x+n*y] != p2[x-dx+n*(y-dy)] {
				return false
			}
		}
	}

	return true
}

// pattern builds an N×N pattern from f(x, y).
func pattern(f func(x, y int) byte, n int) []byte {
	out := make([]byte, n*n)
	var x, y int
	for y = 0; y < n; y++ {
		for x = 0; x < n; x++ {
			out[x+y*n] = f(x, y)
		}
	}

	return out
}

// window reads the N×N block of s anchored at (x0, y0), wrapping.
func window(s *Sample, x0, y0, n int) []byte {
	return pattern(func(x, y int) byte { return s.At(x0+x, y0+y) }, n)
}

// rotate turns p a quarter.
func rotate(p []byte, n int) []byte {
	return pattern(func(x, y int) byte { return p[n-1-y+x*n] }, n)
}

// reflect mirrors p left to right.
func reflect(p []byte, n int) []byte {
	return pattern(func(x, y int) byte { return p[n-1-x+y*n] }, n)
}
