// Package wfc - Model: the per-cell domain store, support counters and the
// collapse loop of one solve attempt.
//
// State layout (all flat, allocated once in New):
//
//	wave[i*T+t]               – pattern t still live at cell i
//	compatible[(i*T+t)*4+d]   – support of (i,t) from direction d: how many live
//	                            patterns in the neighbour still justify t here
//	remaining[i]              – number of live patterns at i
//	sumsOfWeights[i]          – Σ w(t) over live t
//	sumsOfWeightLogWeights[i] – Σ w(t)·log w(t) over live t
//	entropies[i]              – log(sumW) − sumWLogW/sumW
//
// Lifecycle: New → (Clear) → Run → Observed. Run always starts with Clear, so
// a Model can be rerun with a fresh seed any number of times.
package wfc

import (
	"math"
	"slices"

	"github.com/katalvlaran/wfc/grid"
)

// Model is a Wave Function Collapse solver over a fixed pattern set and
// output grid. It is not safe for concurrent use; run one Model per goroutine.
type Model struct {
	grid    *grid.Grid    // output lattice; immutable
	options Options       // resolved configuration
	compat  Compatibility // private copy of the adjacency relation
	T       int           // pattern count

	weights          []float64
	weightLogWeights []float64
	distribution     []float64 // scratch buffer for observe

	sumOfWeights, sumOfWeightLogWeights, startingEntropy float64

	wave                   []bool
	compatible             []int
	remaining              []int
	sumsOfWeights          []float64
	sumsOfWeightLogWeights []float64
	entropies              []float64

	stack         []banned // propagation worklist (LIFO)
	observed      []int
	observedSoFar int  // scanline cursor
	contradiction bool // some cell emptied since the last Clear
	solved        bool // observed is valid
	pops          int  // worklist pops since the last Clear
}

// banned is a pending propagation event: pattern was removed from cell.
type banned struct {
	cell, pattern int
}

// New builds a Model for patterns with the given weights and compatibility.
// Inputs are validated and copied; the caller may reuse them afterwards.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. weights must be non-empty (ErrNoPatterns), match the table (ErrWeightCount)
//     and be positive and finite (ErrBadWeight).
//  3. compat must be well-shaped, in range and symmetric
//     (ErrCompatibilityShape, ErrPatternRange, ErrAsymmetric).
//  4. The ground pattern, if any, must exist (ErrGroundRange).
//
// The returned Model is already cleared: every pattern is live everywhere
// (and the ground constraint, if configured, has been propagated).
//
// Complexity: O(C·T) time and memory, C = Width×Height cells, T patterns.
func New(weights []float64, compat Compatibility, opts ...Option) (*Model, error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	n, err := validateAll(weights, compat, cfg)
	if err != nil {
		return nil, err
	}

	g, err := grid.New(cfg.Width, cfg.Height, cfg.Periodic)
	if err != nil {
		return nil, err
	}

	m := &Model{
		grid:    g,
		options: cfg,
		compat:  compat.clone(),
		T:       n,
		weights: slices.Clone(weights),
	}
	m.init()
	m.Clear()

	return m, nil
}

// init allocates all per-cell buffers and the global weight aggregates.
func (m *Model) init() {
	cells := m.grid.Len()

	m.weightLogWeights = make([]float64, m.T)
	m.distribution = make([]float64, m.T)
	m.sumOfWeights = 0
	m.sumOfWeightLogWeights = 0
	for t, w := range m.weights {
		m.weightLogWeights[t] = w * math.Log(w)
		m.sumOfWeights += w
		m.sumOfWeightLogWeights += m.weightLogWeights[t]
	}
	m.startingEntropy = entropy(m.sumOfWeights, m.sumOfWeightLogWeights)

	m.wave = make([]bool, cells*m.T)
	m.compatible = make([]int, cells*m.T*grid.NumDirections)
	m.remaining = make([]int, cells)
	m.sumsOfWeights = make([]float64, cells)
	m.sumsOfWeightLogWeights = make([]float64, cells)
	m.entropies = make([]float64, cells)
	m.observed = make([]int, cells)

	// every (cell, pattern) is banned at most once per attempt
	m.stack = make([]banned, 0, cells*m.T)
}

// Clear resets the Model to the "all patterns live" state.
//
// Support counts are set to the size of the opposite-direction compatibility
// list, aggregates to the global starting values, and the scanline cursor,
// contradiction flag and observed grid are reset. Patterns that no
// neighbouring pattern can support from an existing side are then banned
// and the result is propagated. With a ground pattern g, g is banned in
// every row except the bottom one, every other pattern is banned in the
// bottom row, and the result is propagated again.
//
// Complexity: O(C·T) plus propagation.
func (m *Model) Clear() {
	m.reset()
	m.banUnsupported()
	m.propagate()

	if m.options.Ground >= 0 {
		m.seedGround(m.options.Ground)
	}
}

// reset restores every cell to the full domain with initial support counts.
func (m *Model) reset() {
	cells := m.grid.Len()
	var i, t int
	for i = 0; i < cells; i++ {
		for t = 0; t < m.T; t++ {
			m.wave[i*m.T+t] = true
			base := (i*m.T + t) * grid.NumDirections
			for _, d := range grid.Directions {
				m.compatible[base+int(d)] = len(m.compat[d.Opposite()][t])
			}
		}
		m.remaining[i] = m.T
		m.sumsOfWeights[i] = m.sumOfWeights
		m.sumsOfWeightLogWeights[i] = m.sumOfWeightLogWeights
		m.entropies[i] = m.startingEntropy
		m.observed[i] = Undetermined
	}

	m.stack = m.stack[:0]
	m.observedSoFar = 0
	m.contradiction = false
	m.solved = false
	m.pops = 0
}

// banUnsupported bans (i, t) when t starts with zero support from a side of
// i that has a neighbour. Propagation only bans on a count reaching zero, so
// counts that start there would otherwise never fire.
func (m *Model) banUnsupported() {
	cells := m.grid.Len()
	footprint := m.options.Footprint
	var i, t int
	for i = 0; i < cells; i++ {
		if !m.grid.Eligible(i, footprint) {
			continue
		}
		for t = 0; t < m.T; t++ {
			if !m.wave[i*m.T+t] {
				continue
			}
			base := (i*m.T + t) * grid.NumDirections
			for _, d := range grid.Directions {
				if m.compatible[base+int(d)] != 0 {
					continue
				}
				// support for direction d arrives from the opposite neighbour
				if _, ok := m.grid.Neighbor(i, d.Opposite(), footprint); ok {
					m.ban(i, t)
					break
				}
			}
		}
	}
}

// seedGround pins pattern g to the bottom row and propagates.
func (m *Model) seedGround(g int) {
	w, h := m.grid.Width, m.grid.Height
	var x, y, t int
	for x = 0; x < w; x++ {
		bottom := m.grid.Index(x, h-1)
		for t = 0; t < m.T; t++ {
			if t != g && m.wave[bottom*m.T+t] {
				m.ban(bottom, t)
			}
		}
		for y = 0; y < h-1; y++ {
			if i := m.grid.Index(x, y); m.wave[i*m.T+g] {
				m.ban(i, g)
			}
		}
	}
	m.propagate()
}

// Run performs one solve attempt with the given seed.
//
// The Model is cleared first. Then, until no eligible cell is undetermined:
// pick a cell (nextCell), collapse it to one weighted-random pattern
// (observe) and propagate. A contradiction ends the attempt with Failure at
// once; there is no backtracking. limit bounds the number of collapses;
// Unbounded (any negative value) disables it, and running out yields
// BudgetExhausted.
//
// Same seed, weights, table and options ⇒ same Outcome and same grid.
//
// Complexity: O(C) selections, each O(C); total propagation O(C·T·k·4)
// where k is the longest compatibility list.
func (m *Model) Run(seed int64, limit int) Outcome {
	m.Clear()
	if m.contradiction {
		return Failure
	}

	rng := rngFromSeed(seed)
	for steps := 0; ; steps++ {
		node := m.nextCell(rng)
		if node < 0 {
			m.record()
			return Success
		}
		if limit >= 0 && steps >= limit {
			return BudgetExhausted
		}

		m.observe(node, rng)
		if !m.propagate() {
			return Failure
		}
	}
}

// record fills the observed grid after a successful attempt. Cells outside
// the footprint rule stay Undetermined.
func (m *Model) record() {
	var i, t int
	for i = range m.observed {
		m.observed[i] = Undetermined
		if !m.grid.Eligible(i, m.options.Footprint) {
			continue
		}
		for t = 0; t < m.T; t++ {
			if m.wave[i*m.T+t] {
				m.observed[i] = t
				break
			}
		}
	}
	m.solved = true
}

// Observed returns a copy of the solved grid: observed[i] is the pattern of
// cell i, or Undetermined for cells excluded by the footprint rule.
// Returns ErrNotSolved unless the last Run ended in Success.
func (m *Model) Observed() ([]int, error) {
	if !m.solved {
		return nil, ErrNotSolved
	}

	return slices.Clone(m.observed), nil
}

// Grid returns the output lattice.
func (m *Model) Grid() *grid.Grid {
	return m.grid
}

// Footprint returns the configured block side.
func (m *Model) Footprint() int {
	return m.options.Footprint
}

// PatternCount returns the number of patterns.
func (m *Model) PatternCount() int {
	return m.T
}

// Live reports whether pattern t is still possible at cell i.
func (m *Model) Live(i, t int) bool {
	return m.wave[i*m.T+t]
}

// Remaining returns the number of live patterns at cell i.
func (m *Model) Remaining(i int) int {
	return m.remaining[i]
}

// Entropy returns the weighted entropy of cell i's live patterns.
func (m *Model) Entropy(i int) float64 {
	return m.entropies[i]
}

// Support returns how many live patterns in the neighbour of cell i in
// direction d still justify pattern t at i. Zero once t is banned at i.
func (m *Model) Support(i, t int, d grid.Direction) int {
	return m.compatible[(i*m.T+t)*grid.NumDirections+int(d)]
}

// Contradiction reports whether any cell's domain emptied since the last Clear.
func (m *Model) Contradiction() bool {
	return m.contradiction
}
