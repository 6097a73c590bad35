package maze

import "github.com/jbrant/mccmaze/grid"

// Structure is the finalized maze artifact. Walls, dimensions, and locations
// are fixed at Build time; downstream consumers treat the whole value as
// read-only, with one sanctioned exception — the solution-path analysis pass
// annotates path flags on the grid without touching any wall.
// A finalized Structure is safe to share across goroutines for reading.
type Structure struct {
	g            *grid.Grid
	opts         Options
	walls        []grid.Wall
	start        grid.Point
	target       grid.Point
	maxTimesteps int
}

// Grid returns the underlying unscaled cell grid.
func (s *Structure) Grid() *grid.Grid { return s.g }

// Walls returns the merged wall-segment list in scaled coordinates: the four
// border segments first, then horizontal runs row-major, then vertical runs
// column-major. The returned slice is the caller's to keep.
func (s *Structure) Walls() []grid.Wall {
	out := make([]grid.Wall, len(s.walls))
	copy(out, s.walls)
	return out
}

// Width returns the scaled maze width.
func (s *Structure) Width() int { return s.opts.Width * s.opts.ScaleMultiplier }

// Height returns the scaled maze height.
func (s *Structure) Height() int { return s.opts.Height * s.opts.ScaleMultiplier }

// UnscaledWidth returns the grid width in cells.
func (s *Structure) UnscaledWidth() int { return s.opts.Width }

// UnscaledHeight returns the grid height in cells.
func (s *Structure) UnscaledHeight() int { return s.opts.Height }

// ScaleMultiplier returns the cell-to-coordinate scale factor.
func (s *Structure) ScaleMultiplier() int { return s.opts.ScaleMultiplier }

// GenomeID returns the source genome tag (0 when untagged).
func (s *Structure) GenomeID() uint32 { return s.opts.GenomeID }

// StartLocation returns the scaled navigator start point: the top-left cell
// offset by half the scale multiplier.
func (s *Structure) StartLocation() grid.Point { return s.start }

// TargetLocation returns the scaled target point in the bottom-right cell.
func (s *Structure) TargetLocation() grid.Point { return s.target }

// UnscaledStart returns the start cell (always the top-left cell).
func (s *Structure) UnscaledStart() grid.Point { return grid.Point{X: 0, Y: 0} }

// UnscaledTarget returns the target cell (always the bottom-right cell).
func (s *Structure) UnscaledTarget() grid.Point {
	return grid.Point{X: s.opts.Width - 1, Y: s.opts.Height - 1}
}

// MaxTimesteps returns the simulation step budget: an even multiple of the
// scale multiplier proportional to the shortest start→target distance.
func (s *Structure) MaxTimesteps() int { return s.maxTimesteps }

// String renders the unscaled grid as ASCII. Debug aid only.
func (s *Structure) String() string { return s.g.String() }
