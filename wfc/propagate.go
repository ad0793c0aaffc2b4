package wfc

import "github.com/katalvlaran/wfc/grid"

// propagate drains the worklist, enforcing arc consistency between
// neighbouring cells.
//
// For every popped (cell, p) and direction d, each pattern q that p allowed
// in the neighbour loses one unit of support from that side; when the
// support hits zero, q is banned at the neighbour and the cascade continues.
// Bounded outputs skip neighbours outside the grid or outside the footprint
// rule; periodic outputs wrap.
//
// Termination: every ban removes one (cell, pattern) pair for good, so at
// most C·T events are ever pushed per attempt.
//
// Returns false iff some cell's domain became empty since the last Clear.
//
// Complexity: O(events · 4 · k), k the longest compatibility list.
func (m *Model) propagate() bool {
	footprint := m.options.Footprint
	var (
		top     banned
		d       grid.Direction
		q, base int
	)
	for len(m.stack) > 0 {
		top = m.stack[len(m.stack)-1]
		m.stack = m.stack[:len(m.stack)-1]
		m.pops++

		for _, d = range grid.Directions {
			i2, ok := m.grid.Neighbor(top.cell, d, footprint)
			if !ok {
				continue
			}
			for _, q = range m.compat[d][top.pattern] {
				base = (i2*m.T + q) * grid.NumDirections
				m.compatible[base+int(d)]--
				if m.compatible[base+int(d)] == 0 {
					m.ban(i2, q)
				}
			}
		}
	}

	return !m.contradiction
}
