package wfc

import (
	"math"
	"math/rand"
)

// noiseScale bounds the tie-breaking jitter added to entropies and counts.
// It sits far below the smallest meaningful difference of either measure.
const noiseScale = 1e-6

// nextCell returns the next cell to collapse, or -1 when every eligible cell
// holds at most one pattern.
//
// Scanline resumes from the cursor left by the previous call: cells before it
// are already determined and domains only shrink, so they never qualify again.
// MRV and Entropy take the minimum over all eligible undetermined cells, with
// a uniform jitter in [0, noiseScale) breaking ties pseudo-randomly.
//
// Complexity: O(C).
func (m *Model) nextCell(rng *rand.Rand) int {
	cells := m.grid.Len()
	footprint := m.options.Footprint

	if m.options.Heuristic == Scanline {
		for i := m.observedSoFar; i < cells; i++ {
			if !m.grid.Eligible(i, footprint) {
				continue
			}
			if m.remaining[i] > 1 {
				m.observedSoFar = i + 1
				return i
			}
		}
		return -1
	}

	best := math.MaxFloat64
	argmin := -1
	for i := 0; i < cells; i++ {
		if !m.grid.Eligible(i, footprint) {
			continue
		}
		remaining := m.remaining[i]
		if remaining <= 1 {
			continue
		}
		score := float64(remaining)
		if m.options.Heuristic == Entropy {
			score = m.entropies[i]
		}
		if score <= best {
			noise := noiseScale * rng.Float64()
			if score+noise < best {
				best = score + noise
				argmin = i
			}
		}
	}

	return argmin
}
