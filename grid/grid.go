package grid

import (
	"math"
	"strings"
)

// Unreachable is the sentinel distance returned by NearestPathDistance when
// no path-annotated cell lies in the scanned direction.
const Unreachable = math.MaxInt

// Grid owns the full width×height cell matrix of an unscaled maze.
// Cells are allocated once at construction and mutated in place during
// subdivision; a Grid must not be shared across goroutines while it is
// still being built.
type Grid struct {
	width, height int
	cells         []Cell // row-major: index = y*width + x
}

// New allocates a width×height grid with no walls set.
// Returns ErrBadDimensions if either dimension is below 1.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, ErrBadDimensions
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := &g.cells[g.Index(x, y)]
			c.X, c.Y = x, y
		}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x,y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Index maps (x,y) to a row-major index: y*Width + x.
func (g *Grid) Index(x, y int) int { return y*g.width + x }

// Coordinate converts a row-major index back to (x,y).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.width, idx / g.width
}

// At returns the cell at (x,y). The caller must ensure InBounds(x,y).
func (g *Grid) At(x, y int) *Cell { return &g.cells[g.Index(x, y)] }

// ClaimSouthWall decides the south boundary of (x,y), setting its wall flag
// to wall. The write is skipped if that boundary has already been claimed,
// so an earlier wall or passage is never overwritten.
func (g *Grid) ClaimSouthWall(x, y int, wall bool) {
	c := g.At(x, y)
	if c.HorizontalClaimed {
		return
	}
	c.SouthWall = wall
	c.HorizontalClaimed = true
}

// ClaimEastWall decides the east boundary of (x,y); see ClaimSouthWall.
func (g *Grid) ClaimEastWall(x, y int, wall bool) {
	c := g.At(x, y)
	if c.VerticalClaimed {
		return
	}
	c.EastWall = wall
	c.VerticalClaimed = true
}

// OpenSouthWall clears the south boundary of (x,y) unconditionally and marks
// it claimed. Used only for entry openings, the single permitted transition
// of an already-claimed boundary.
func (g *Grid) OpenSouthWall(x, y int) {
	c := g.At(x, y)
	c.SouthWall = false
	c.HorizontalClaimed = true
}

// OpenEastWall clears the east boundary of (x,y); see OpenSouthWall.
func (g *Grid) OpenEastWall(x, y int) {
	c := g.At(x, y)
	c.EastWall = false
	c.VerticalClaimed = true
}

// CanMove reports whether a navigator at (x,y) may step one cell in d:
// the destination must be in bounds and the owning boundary unwalled.
func (g *Grid) CanMove(x, y int, d Direction) bool {
	switch d {
	case North:
		return y > 0 && !g.At(x, y-1).SouthWall
	case East:
		return x < g.width-1 && !g.At(x, y).EastWall
	case South:
		return y < g.height-1 && !g.At(x, y).SouthWall
	default: // West
		return x > 0 && !g.At(x-1, y).EastWall
	}
}

// OpenDirections returns the directions open from (x,y), always in
// North, East, South, West enumeration order.
func (g *Grid) OpenDirections(x, y int) []Direction {
	open := make([]Direction, 0, 4)
	for _, d := range Directions {
		if g.CanMove(x, y, d) {
			open = append(open, d)
		}
	}
	return open
}

// MarkPath annotates each point with the given path orientation, letting a
// trajectory-first caller seed the grid before subdivision so that room
// openings are placed nearest the developing solution path.
// Returns ErrOutOfBounds if any point lies outside the grid.
func (g *Grid) MarkPath(pts []Point, o Orientation) error {
	for _, p := range pts {
		if !g.InBounds(p.X, p.Y) {
			return ErrOutOfBounds
		}
	}
	for _, p := range pts {
		g.At(p.X, p.Y).PathOrientation = o
	}
	return nil
}

// NearestPathDistance scans outward from (x,y) in direction d, one cell at a
// time, and returns the number of steps to the first path-annotated cell.
// Returns Unreachable when the scan leaves the grid without finding one.
func (g *Grid) NearestPathDistance(x, y int, d Direction) int {
	dx, dy := d.Offset()
	steps := 0
	for cx, cy := x+dx, y+dy; g.InBounds(cx, cy); cx, cy = cx+dx, cy+dy {
		steps++
		if g.At(cx, cy).OnPath() {
			return steps
		}
	}
	return Unreachable
}

// String renders the grid as ASCII, one "+---+" band per row. Solution-path
// cells show "*", junctures "J". Debug aid only.
func (g *Grid) String() string {
	var b strings.Builder
	b.WriteString("+" + strings.Repeat("---+", g.width) + "\n")
	for y := 0; y < g.height; y++ {
		b.WriteString("|")
		for x := 0; x < g.width; x++ {
			c := g.At(x, y)
			switch {
			case c.IsJuncture:
				b.WriteString(" J ")
			case c.OnPath():
				b.WriteString(" * ")
			default:
				b.WriteString("   ")
			}
			if x == g.width-1 || c.EastWall {
				b.WriteString("|")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n+")
		for x := 0; x < g.width; x++ {
			if y == g.height-1 || g.At(x, y).SouthWall {
				b.WriteString("---+")
			} else {
				b.WriteString("   +")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
