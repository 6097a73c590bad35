package maze

import (
	"fmt"

	"github.com/jbrant/mccmaze/grid"
)

// ExtractWalls converts the dense wall-flag grid into the minimal merged
// wall-segment list, in scaled coordinates. Output order is deterministic:
// the four border segments (top, bottom, left, right), then horizontal runs
// row-major, then vertical runs column-major. Consumers treat the list as a
// set; the ordering exists for reproducible rendering and diffing.
//
// The south boundary of the last row and the east boundary of the last
// column are the maze border and never scanned — the border segments cover
// them unconditionally.
//
// Complexity: O(W×H) time, output-size memory.
func ExtractWalls(g *grid.Grid, scale int) []grid.Wall {
	w, h := g.Width()*scale, g.Height()*scale
	walls := []grid.Wall{
		{From: grid.Point{X: 0, Y: 0}, To: grid.Point{X: w, Y: 0}},
		{From: grid.Point{X: 0, Y: h}, To: grid.Point{X: w, Y: h}},
		{From: grid.Point{X: 0, Y: 0}, To: grid.Point{X: 0, Y: h}},
		{From: grid.Point{X: w, Y: 0}, To: grid.Point{X: w, Y: h}},
	}

	// horizontal pass: merge contiguous south-wall flags along each row
	for y := 0; y < g.Height()-1; y++ {
		runStart := -1
		for x := 0; x <= g.Width(); x++ {
			flagged := x < g.Width() && g.At(x, y).SouthWall
			if flagged && runStart < 0 {
				runStart = x
			}
			if !flagged && runStart >= 0 {
				walls = append(walls, grid.Wall{
					From: grid.Point{X: runStart * scale, Y: (y + 1) * scale},
					To:   grid.Point{X: x * scale, Y: (y + 1) * scale},
				})
				runStart = -1
			}
		}
	}

	// vertical pass: merge contiguous east-wall flags down each column
	for x := 0; x < g.Width()-1; x++ {
		runStart := -1
		for y := 0; y <= g.Height(); y++ {
			flagged := y < g.Height() && g.At(x, y).EastWall
			if flagged && runStart < 0 {
				runStart = y
			}
			if !flagged && runStart >= 0 {
				walls = append(walls, grid.Wall{
					From: grid.Point{X: (x + 1) * scale, Y: runStart * scale},
					To:   grid.Point{X: (x + 1) * scale, Y: y * scale},
				})
				runStart = -1
			}
		}
	}

	return walls
}

// WallsToFlags rebuilds a wall-flag grid from a merged wall-segment list
// produced by ExtractWalls, inverting the run-length merge. Border segments
// (those lying on the scaled maze outline) are implicit and skipped.
// Returns grid.ErrOutOfBounds when a segment does not fit the given
// dimensions. Re-extracting walls from the result reproduces the input
// list exactly (merge idempotence).
func WallsToFlags(walls []grid.Wall, width, height, scale int) (*grid.Grid, error) {
	g, err := grid.New(width, height)
	if err != nil {
		return nil, err
	}
	sw, sh := width*scale, height*scale

	for _, wl := range walls {
		switch {
		case wl.Horizontal():
			if wl.From.Y == 0 || wl.From.Y == sh {
				continue // border
			}
			y := wl.From.Y/scale - 1
			for x := wl.From.X / scale; x < wl.To.X/scale; x++ {
				if !g.InBounds(x, y) {
					return nil, fmt.Errorf("%w: horizontal wall %v", grid.ErrOutOfBounds, wl)
				}
				g.ClaimSouthWall(x, y, true)
			}
		case wl.Vertical():
			if wl.From.X == 0 || wl.From.X == sw {
				continue // border
			}
			x := wl.From.X/scale - 1
			for y := wl.From.Y / scale; y < wl.To.Y/scale; y++ {
				if !g.InBounds(x, y) {
					return nil, fmt.Errorf("%w: vertical wall %v", grid.ErrOutOfBounds, wl)
				}
				g.ClaimEastWall(x, y, true)
			}
		}
	}
	return g, nil
}
