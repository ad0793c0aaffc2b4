package grid

import "errors"

// ErrEmptyGrid indicates a non-positive width or height.
var ErrEmptyGrid = errors.New("grid: width and height must be positive")

// Direction is one of the four orthogonal neighbour directions.
// The numeric order is fixed: compatibility tables are indexed by it.
type Direction int

const (
	// West points to (x-1, y).
	West Direction = iota
	// South points to (x, y+1); y grows downwards as in image space.
	South
	// East points to (x+1, y).
	East
	// North points to (x, y-1).
	North
)

// NumDirections is the number of orthogonal directions.
const NumDirections = 4

// Directions lists every direction in index order.
var Directions = [NumDirections]Direction{West, South, East, North}

var (
	dx = [NumDirections]int{-1, 0, 1, 0}
	dy = [NumDirections]int{0, 1, 0, -1}
)

// Opposite returns the direction rotated by 180°.
func (d Direction) Opposite() Direction {
	return (d + 2) % NumDirections
}

// Offset returns the (dx, dy) step of d.
func (d Direction) Offset() (int, int) {
	return dx[d], dy[d]
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= West && d <= North
}

// String returns the lower-case compass name of d.
func (d Direction) String() string {
	switch d {
	case West:
		return "west"
	case South:
		return "south"
	case East:
		return "east"
	case North:
		return "north"
	default:
		return "unknown"
	}
}

// Grid is an immutable Width×Height lattice. Periodic grids wrap on both axes.
type Grid struct {
	Width, Height int
	Periodic      bool
}
