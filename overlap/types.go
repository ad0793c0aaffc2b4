package overlap

import (
	"errors"
	"image/color"
)

// Sentinel errors returned by the overlap front end.
var (
	// ErrEmptySample indicates an image with no pixels.
	ErrEmptySample = errors.New("overlap: sample has no pixels")

	// ErrTooManyColors indicates a sample with more distinct colours than a
	// byte-indexed palette can hold.
	ErrTooManyColors = errors.New("overlap: sample has more than 256 colours")

	// ErrBadPatternSize indicates N <= 0, or a bounded sample too small to
	// hold a single N×N window.
	ErrBadPatternSize = errors.New("overlap: invalid pattern size")

	// ErrBadSymmetry indicates a symmetry count outside [1, 8].
	ErrBadSymmetry = errors.New("overlap: symmetry must be in [1, 8]")
)

// MaxColors is the palette capacity of a Sample.
const MaxColors = 256

// Sample is a palette-indexed bitmap.
// Pixels[x+y*Width] indexes Palette.
type Sample struct {
	Width, Height int
	Pixels        []byte
	Palette       []color.RGBA
}

// Options configures Extract.
//
// N             – pattern side (> 0).
// Symmetry      – how many dihedral variants of each window count, in [1, 8].
// PeriodicInput – windows wrap around the sample edges.
type Options struct {
	N             int
	Symmetry      int
	PeriodicInput bool
}

// DefaultOptions returns 3×3 patterns, full symmetry, wrapping input.
func DefaultOptions() Options {
	return Options{
		N:             3,
		Symmetry:      8,
		PeriodicInput: true,
	}
}

// Set is the pattern catalogue learnt from a Sample.
//
// Patterns[p][x+y*N] is a palette index; Weights[p] counts how often p was
// seen (including symmetric variants).
type Set struct {
	N        int
	Patterns [][]byte
	Weights  []float64
	Palette  []color.RGBA
}
