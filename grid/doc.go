// Package grid describes the rectangular lattice a solver writes into:
// its dimensions, row-major cell indexing, the four orthogonal directions,
// and the neighbour rule for periodic (toroidal) and bounded outputs.
//
// What:
//
//   - Grid wraps Width×Height with a Periodic flag.
//   - Cells are addressed by a flat row-major index: i = y*Width + x.
//   - Direction enumerates West, South, East, North; Opposite rotates 180°.
//   - Neighbor resolves the cell adjacent to i in direction d, wrapping when
//     periodic and rejecting cells whose footprint would leave the grid otherwise.
//   - Eligible reports whether a cell's footprint fits inside a bounded grid.
//
// Footprint:
//
//	A cell may stand for an N×N block anchored at its top-left corner (the
//	overlapping model uses N>1). In a bounded grid the last N−1 rows and
//	columns cannot anchor a full block, so they are neither selected nor
//	updated directly. Footprint 1 disables the rule.
//
// Complexity:
//
//   - Index, Coordinate, InBounds, Eligible, Neighbor: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: width or height is not positive.
package grid
