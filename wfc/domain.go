package wfc

import (
	"math"

	"github.com/katalvlaran/wfc/grid"
)

// entropy returns the Shannon entropy of a weighted distribution given its
// total weight and Σ w·log w:
//
//	H = log(Σw) − Σ(w·log w)/Σw
//
// Two live patterns of equal weight give log 2 whatever the weight.
func entropy(sumWeights, sumWeightLogWeights float64) float64 {
	return math.Log(sumWeights) - sumWeightLogWeights/sumWeights
}

// ban removes pattern t from cell i and queues the event for propagation.
//
// Precondition: t is live at i. Callers (observe, propagate, seedGround)
// guarantee it; banning a dead pattern would double-count the aggregates.
//
// Effects: t becomes non-live, its supports drop to zero in every direction
// (so later decrements never reach zero again), remaining/sums/entropy are
// updated, and an emptied domain raises the contradiction flag.
//
// Complexity: O(1).
func (m *Model) ban(i, t int) {
	m.wave[i*m.T+t] = false

	base := (i*m.T + t) * grid.NumDirections
	for d := 0; d < grid.NumDirections; d++ {
		m.compatible[base+d] = 0
	}
	m.stack = append(m.stack, banned{cell: i, pattern: t})

	m.remaining[i]--
	m.sumsOfWeights[i] -= m.weights[t]
	m.sumsOfWeightLogWeights[i] -= m.weightLogWeights[t]
	m.entropies[i] = entropy(m.sumsOfWeights[i], m.sumsOfWeightLogWeights[i])

	if m.remaining[i] == 0 && !m.contradiction {
		m.contradiction = true
		m.options.OnContradiction(i)
	}
}
