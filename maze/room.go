package maze

import (
	"math"

	"github.com/jbrant/mccmaze/grid"
)

// wallSpec records the dividing wall just drawn through a room, so the
// room's entry opening can be aligned with the wall's passage cell.
type wallSpec struct {
	horizontal bool
	passageX   int
	passageY   int
}

// openingCandidate pairs a perimeter direction with the edge cell the
// nearest-path scan starts from (and the opening is punched at).
type openingCandidate struct {
	dir    grid.Direction
	anchor grid.Point
}

// divideRoom bisects r per cmd: encloses the room, draws the dividing wall
// with its single passage, punches the entry opening, and routes the two
// children — dividable ones back to the worklist, undersized ones straight
// to leaf enclosure. Children with no cells at all are dropped.
func (b *Builder) divideRoom(r Room, cmd Command) {
	horizontal := cmd.Horizontal
	// An oblong room always bisects across its longer axis; the genome's
	// orientation bit only decides squares.
	if r.Width < r.Height {
		horizontal = true
	} else if r.Height < r.Width {
		horizontal = false
	}

	wallPos := math.Min(cmd.WallPosition, maxWallPosition)

	var wall wallSpec
	var children [2]Room
	if horizontal {
		offset := wallOffset(r.Height, wallPos)
		wallY := r.Y + offset
		passage := passageOffset(r.Width, cmd.PassagePosition)
		for i := 0; i < r.Width; i++ {
			b.g.ClaimSouthWall(r.X+i, wallY, i != passage)
		}
		wall = wallSpec{horizontal: true, passageX: r.X + passage, passageY: wallY}
		children[0] = Room{X: r.X, Y: r.Y, Width: r.Width, Height: offset + 1}
		children[1] = Room{X: r.X, Y: wallY + 1, Width: r.Width, Height: r.Height - offset - 1}
	} else {
		offset := wallOffset(r.Width, wallPos)
		wallX := r.X + offset
		passage := passageOffset(r.Height, cmd.PassagePosition)
		for i := 0; i < r.Height; i++ {
			b.g.ClaimEastWall(wallX, r.Y+i, i != passage)
		}
		wall = wallSpec{horizontal: false, passageX: wallX, passageY: r.Y + passage}
		children[0] = Room{X: r.X, Y: r.Y, Width: offset + 1, Height: r.Height}
		children[1] = Room{X: wallX + 1, Y: r.Y, Width: r.Width - offset - 1, Height: r.Height}
	}

	b.markBoundaries(r, &wall)

	for _, child := range children {
		switch {
		case child.empty():
			// wall landed on the far edge; nothing on the other side
		case child.Divisible():
			b.pending = append(b.pending, child)
		default:
			b.markBoundaries(child, nil)
		}
	}
}

// wallOffset maps a normalized wall position onto a cell offset along the
// bisection axis: round((span - MinRoomDimension + 1) * pos), floored at 0.
func wallOffset(span int, pos float64) int {
	offset := int(math.Round(float64(span-MinRoomDimension+1) * pos))
	if offset < 0 {
		offset = 0
	}
	return offset
}

// passageOffset maps a normalized passage position onto a cell offset along
// the wall: min(span-1, floor(span * pos)).
func passageOffset(span int, pos float64) int {
	offset := int(float64(span) * pos)
	if offset > span-1 {
		offset = span - 1
	}
	return offset
}

// markBoundaries closes r off from its neighbors and punches its single
// entry opening. With a wallSpec the opening sits adjacent to the dividing
// wall's passage cell, competing only the two directions orthogonal to the
// wall; a leaf room competes all four edges from its origin corner. In both
// cases the edge nearest an already-laid solution-path cell wins, ties
// falling to enumeration order.
func (b *Builder) markBoundaries(r Room, wall *wallSpec) {
	b.traceEnclosure(r)

	var candidates []openingCandidate
	if wall != nil {
		if wall.horizontal {
			candidates = []openingCandidate{
				{grid.North, grid.Point{X: wall.passageX, Y: r.Y}},
				{grid.South, grid.Point{X: wall.passageX, Y: r.Y + r.Height - 1}},
			}
		} else {
			candidates = []openingCandidate{
				{grid.West, grid.Point{X: r.X, Y: wall.passageY}},
				{grid.East, grid.Point{X: r.X + r.Width - 1, Y: wall.passageY}},
			}
		}
	} else {
		candidates = []openingCandidate{
			{grid.North, grid.Point{X: r.X, Y: r.Y}},
			{grid.South, grid.Point{X: r.X, Y: r.Y + r.Height - 1}},
			{grid.West, grid.Point{X: r.X, Y: r.Y}},
			{grid.East, grid.Point{X: r.X + r.Width - 1, Y: r.Y}},
		}
	}
	b.punchOpening(r, candidates)
}

// traceEnclosure claims every still-unclaimed boundary along r's perimeter
// as a wall. Perimeter segments on the maze border are implicit and skipped.
// Boundaries already decided by a neighboring room (including passage cells)
// are left exactly as they are.
func (b *Builder) traceEnclosure(r Room) {
	for x := r.X; x < r.X+r.Width; x++ {
		if r.Y > 0 {
			b.g.ClaimSouthWall(x, r.Y-1, true)
		}
		if r.Y+r.Height < b.g.Height() {
			b.g.ClaimSouthWall(x, r.Y+r.Height-1, true)
		}
	}
	for y := r.Y; y < r.Y+r.Height; y++ {
		if r.X > 0 {
			b.g.ClaimEastWall(r.X-1, y, true)
		}
		if r.X+r.Width < b.g.Width() {
			b.g.ClaimEastWall(r.X+r.Width-1, y, true)
		}
	}
}

// punchOpening clears the perimeter boundary of the winning candidate.
// Candidates whose edge lies on the maze border have no neighbor to open
// toward and are skipped; a room bordered on every candidate side keeps no
// opening (only the root room, whose perimeter is the outer border).
func (b *Builder) punchOpening(r Room, candidates []openingCandidate) {
	best := -1
	bestDist := 0
	for i, c := range candidates {
		if !b.hasNeighbor(r, c.dir) {
			continue
		}
		d := b.g.NearestPathDistance(c.anchor.X, c.anchor.Y, c.dir)
		if best == -1 || d < bestDist {
			best, bestDist = i, d
		}
	}
	if best == -1 {
		return
	}

	c := candidates[best]
	switch c.dir {
	case grid.North:
		b.g.OpenSouthWall(c.anchor.X, r.Y-1)
	case grid.South:
		b.g.OpenSouthWall(c.anchor.X, r.Y+r.Height-1)
	case grid.West:
		b.g.OpenEastWall(r.X-1, c.anchor.Y)
	case grid.East:
		b.g.OpenEastWall(r.X+r.Width-1, c.anchor.Y)
	}
}

// hasNeighbor reports whether a cell exists beyond r's perimeter in d.
func (b *Builder) hasNeighbor(r Room, d grid.Direction) bool {
	switch d {
	case grid.North:
		return r.Y > 0
	case grid.South:
		return r.Y+r.Height < b.g.Height()
	case grid.West:
		return r.X > 0
	default: // East
		return r.X+r.Width < b.g.Width()
	}
}
