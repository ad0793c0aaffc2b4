package wfc

import "math/rand"

// observe collapses cell i to a single pattern drawn with probability
// proportional to weight among its live patterns, then bans every other
// live pattern there. The decision is final.
//
// Complexity: O(T).
func (m *Model) observe(i int, rng *rand.Rand) {
	base := i * m.T
	var t int
	for t = 0; t < m.T; t++ {
		if m.wave[base+t] {
			m.distribution[t] = m.weights[t]
		} else {
			m.distribution[t] = 0
		}
	}

	r := weightedIndex(m.distribution, rng.Float64())
	for t = 0; t < m.T; t++ {
		if m.wave[base+t] && t != r {
			m.ban(i, t)
		}
	}
	m.options.OnCollapse(i, r)
}

// weightedIndex maps a uniform draw u ∈ [0,1) through the cumulative
// distribution of weights. Zero entries are never returned; if rounding
// leaves u past the last bucket, the last positive entry wins. Returns -1
// only when no entry is positive.
//
// Complexity: O(len(weights)).
func weightedIndex(weights []float64, u float64) int {
	var sum float64
	for _, w := range weights {
		sum += w
	}

	threshold := u * sum
	partial := 0.0
	last := -1
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		last = i
		partial += w
		if partial > threshold {
			return i
		}
	}

	return last
}
