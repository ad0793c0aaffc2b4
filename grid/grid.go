package grid

// New constructs a Grid. Returns ErrEmptyGrid if width or height is not positive.
// Complexity: O(1).
func New(width, height int, periodic bool) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}

	return &Grid{Width: width, Height: height, Periodic: periodic}, nil
}

// Len returns the number of cells, Width×Height.
func (g *Grid) Len() int {
	return g.Width * g.Height
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(i int) (x, y int) {
	return i % g.Width, i / g.Width
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Eligible reports whether cell i can anchor a footprint×footprint block.
// Periodic grids accept every cell; bounded grids reject the last
// footprint−1 columns and rows.
// Complexity: O(1).
func (g *Grid) Eligible(i, footprint int) bool {
	if g.Periodic {
		return true
	}
	x, y := g.Coordinate(i)

	return x+footprint <= g.Width && y+footprint <= g.Height
}

// Neighbor returns the index of the cell next to i in direction d.
//
// Bounded grids report false when the neighbour falls outside the grid or
// cannot anchor a full footprint (see Eligible). Periodic grids wrap the
// coordinate onto the opposite edge and always report true.
//
// Complexity: O(1).
func (g *Grid) Neighbor(i int, d Direction, footprint int) (int, bool) {
	x, y := g.Coordinate(i)
	x2, y2 := x+dx[d], y+dy[d]

	if !g.Periodic {
		if x2 < 0 || y2 < 0 || x2+footprint > g.Width || y2+footprint > g.Height {
			return -1, false
		}
		return g.Index(x2, y2), true
	}

	// wrap by at most one step; offsets are unit length
	if x2 < 0 {
		x2 += g.Width
	} else if x2 >= g.Width {
		x2 -= g.Width
	}
	if y2 < 0 {
		y2 += g.Height
	} else if y2 >= g.Height {
		y2 -= g.Height
	}

	return g.Index(x2, y2), true
}
