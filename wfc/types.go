// Package wfc defines the options, outcomes and sentinel errors of the solver.
package wfc

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the solver.
var (
	// ErrNoPatterns indicates an empty weight table.
	ErrNoPatterns = errors.New("wfc: at least one pattern is required")

	// ErrWeightCount indicates that len(weights) differs from the number of
	// patterns described by the compatibility table.
	ErrWeightCount = errors.New("wfc: weight count does not match compatibility table")

	// ErrBadWeight indicates a weight that is zero, negative, NaN or infinite.
	ErrBadWeight = errors.New("wfc: weights must be positive and finite")

	// ErrCompatibilityShape indicates a direction table whose length differs
	// from the pattern count.
	ErrCompatibilityShape = errors.New("wfc: compatibility table has the wrong shape")

	// ErrPatternRange indicates a compatibility entry outside [0, patternCount).
	ErrPatternRange = errors.New("wfc: pattern index out of range")

	// ErrAsymmetric indicates that b is allowed next to a in direction d but
	// a is not allowed next to b in the opposite direction.
	ErrAsymmetric = errors.New("wfc: compatibility table is not symmetric")

	// ErrGroundRange indicates a ground pattern outside [0, patternCount).
	ErrGroundRange = errors.New("wfc: ground pattern out of range")

	// ErrOptionViolation is returned by New when an Option was given an invalid value.
	ErrOptionViolation = errors.New("wfc: invalid option supplied")

	// ErrNotSolved indicates that no observed grid exists: the last Run did
	// not end in Success, or Run was never called.
	ErrNotSolved = errors.New("wfc: model has not been solved")

	// ErrNoSolution indicates that every attempt ended without Success.
	ErrNoSolution = errors.New("wfc: no attempt produced a solution")
)

// Unbounded disables the step limit of Run.
const Unbounded = -1

// Undetermined marks an observed cell that holds no single pattern, i.e. a
// cell excluded from selection by the footprint rule of a bounded grid.
const Undetermined = -1

// Heuristic selects the next cell to collapse.
type Heuristic int

const (
	// Entropy picks the undetermined cell with the lowest Shannon entropy
	// of its weighted domain.
	Entropy Heuristic = iota

	// MRV (minimum remaining values) picks the undetermined cell with the
	// fewest live patterns.
	MRV

	// Scanline picks the first undetermined cell in raster order.
	Scanline
)

// String returns the flag-friendly name of h.
func (h Heuristic) String() string {
	switch h {
	case Entropy:
		return "entropy"
	case MRV:
		return "mrv"
	case Scanline:
		return "scanline"
	default:
		return "unknown"
	}
}

// ParseHeuristic converts a name produced by Heuristic.String back to a Heuristic.
// Matching is case-insensitive.
func ParseHeuristic(name string) (Heuristic, error) {
	switch strings.ToLower(name) {
	case "entropy":
		return Entropy, nil
	case "mrv":
		return MRV, nil
	case "scanline":
		return Scanline, nil
	default:
		return Entropy, fmt.Errorf("%w: unknown heuristic %q", ErrOptionViolation, name)
	}
}

// Outcome is the terminal state of one solve attempt.
type Outcome int

const (
	// Success means every eligible cell holds exactly one pattern.
	Success Outcome = iota

	// Failure means some cell's domain emptied. There is no backtracking;
	// the caller may retry with another seed.
	Failure

	// BudgetExhausted means the step limit ran out with undetermined cells
	// left and no contradiction observed.
	BudgetExhausted
)

// String returns a lower-case name of o.
func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case Failure:
		return "failure"
	case BudgetExhausted:
		return "budget exhausted"
	default:
		return "unknown"
	}
}

// Options configures a Model.
//
// Width, Height – output dimensions (> 0).
// Periodic      – wrap neighbours across the edges.
// Footprint     – block side used by the bounded-output eligibility rule (> 0).
// Heuristic     – cell selection policy.
// Ground        – pattern forced on the bottom row; negative disables it.
type Options struct {
	Width, Height int
	Periodic      bool
	Footprint     int
	Heuristic     Heuristic
	Ground        int

	// OnCollapse is called after a cell is committed to pattern.
	OnCollapse func(cell, pattern int)

	// OnContradiction is called when a cell's domain becomes empty.
	OnContradiction func(cell int)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring a Model.
type Option func(*Options)

// DefaultOptions returns Options with defaults:
//   - 1×1 bounded output, footprint 1
//   - Entropy heuristic
//   - no ground pattern
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Width:           1,
		Height:          1,
		Periodic:        false,
		Footprint:       1,
		Heuristic:       Entropy,
		Ground:          -1,
		OnCollapse:      func(int, int) {},
		OnContradiction: func(int) {},
	}
}

// WithSize sets the output dimensions. Non-positive values are recorded as
// ErrOptionViolation.
func WithSize(width, height int) Option {
	return func(o *Options) {
		if width <= 0 || height <= 0 {
			o.err = fmt.Errorf("%w: size must be positive (%dx%d)", ErrOptionViolation, width, height)
			return
		}
		o.Width, o.Height = width, height
	}
}

// WithPeriodic makes the output wrap around on both axes.
func WithPeriodic(periodic bool) Option {
	return func(o *Options) {
		o.Periodic = periodic
	}
}

// WithFootprint sets the block side used by the eligibility rule.
//
//	n > 0: cells whose n×n block leaves a bounded output are skipped
//	n <= 0: invalid option → ErrOptionViolation
func WithFootprint(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: footprint must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Footprint = n
	}
}

// WithHeuristic selects the cell selection policy.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		switch h {
		case Entropy, MRV, Scanline:
			o.Heuristic = h
		default:
			o.err = fmt.Errorf("%w: unknown heuristic %d", ErrOptionViolation, int(h))
		}
	}
}

// WithGround pins pattern to the bottom row and bans it everywhere else
// before any random choice is made. The range is checked by New.
func WithGround(pattern int) Option {
	return func(o *Options) {
		o.Ground = pattern
	}
}

// WithOnCollapse registers a callback fired after every collapse.
func WithOnCollapse(fn func(cell, pattern int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCollapse = fn
		}
	}
}

// WithOnContradiction registers a callback fired when a cell's domain empties.
func WithOnContradiction(fn func(cell int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnContradiction = fn
		}
	}
}
