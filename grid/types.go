package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("grid: width and height must be at least 1")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)

// Point is an integer 2D coordinate. Points compare by value.
type Point struct {
	X, Y int
}

// String returns "(x,y)".
func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Manhattan returns the L1 distance between a and b.
func Manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// Wall is an axis-aligned line segment between two points.
// Generated walls are always strictly horizontal or strictly vertical.
type Wall struct {
	From, To Point
}

// Horizontal reports whether the wall runs along the X axis.
func (w Wall) Horizontal() bool { return w.From.Y == w.To.Y }

// Vertical reports whether the wall runs along the Y axis.
func (w Wall) Vertical() bool { return w.From.X == w.To.X }

// String returns "(x1,y1)-(x2,y2)".
func (w Wall) String() string { return w.From.String() + "-" + w.To.String() }

// Direction enumerates the four cardinal directions.
// The declaration order (North, East, South, West) is the canonical
// enumeration order used by adjacency queries and tie-breaks.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists all cardinal directions in enumeration order.
var Directions = [4]Direction{North, East, South, West}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction { return (d + 2) % 4 }

// Orthogonal reports whether d and o lie on perpendicular axes.
func (d Direction) Orthogonal(o Direction) bool { return d%2 != o%2 }

// Offset returns the unit cell displacement of one step in d.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	default:
		return -1, 0
	}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// DirectionOf returns the direction of the single-cell step from a to b,
// and false if b is not an orthogonal unit step away from a.
func DirectionOf(a, b Point) (Direction, bool) {
	switch {
	case b.X == a.X && b.Y == a.Y-1:
		return North, true
	case b.X == a.X+1 && b.Y == a.Y:
		return East, true
	case b.X == a.X && b.Y == a.Y+1:
		return South, true
	case b.X == a.X-1 && b.Y == a.Y:
		return West, true
	default:
		return North, false
	}
}

// Orientation describes the travel axis of a solution-path cell.
type Orientation int

const (
	// OrientationNone marks a cell not on the solution path.
	OrientationNone Orientation = iota
	// OrientationHorizontal marks east/west travel through the cell.
	OrientationHorizontal
	// OrientationVertical marks north/south travel through the cell.
	OrientationVertical
)

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
