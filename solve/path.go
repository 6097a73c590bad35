package solve

import "github.com/jbrant/mccmaze/grid"

// AnnotatePath walks an already-extracted solution path and writes the
// path-analysis flags onto the grid:
//
//   - PathOrientation: Horizontal for east/west travel through the cell,
//     Vertical for north/south. A cell's orientation comes from the step
//     arriving at it; the start cell takes the first step's orientation.
//   - IsWayPoint: the endpoints, plus every cell where the travel direction
//     changes — the cells a trajectory genome would encode.
//   - IsJuncture: any path cell (past the start) where more than one of the
//     three non-arrival directions is open, meaning an offshoot exists
//     beyond the single solution-path direction.
//
// Wall flags are never modified. Returns ErrBrokenPath if consecutive
// points are not unit orthogonal steps, ErrOutOfBounds for stray points.
func AnnotatePath(g *grid.Grid, path []grid.Point) error {
	if g == nil {
		return ErrGridNil
	}
	for _, p := range path {
		if !g.InBounds(p.X, p.Y) {
			return ErrOutOfBounds
		}
	}
	if len(path) == 0 {
		return nil
	}
	if len(path) == 1 {
		// degenerate single-cell path: a waypoint with no travel axis to
		// record; horizontal is the conventional choice
		c := g.At(path[0].X, path[0].Y)
		c.PathOrientation = grid.OrientationHorizontal
		c.IsWayPoint = true
		return nil
	}

	travel := make([]grid.Direction, len(path))
	for i := 1; i < len(path); i++ {
		d, ok := grid.DirectionOf(path[i-1], path[i])
		if !ok {
			return ErrBrokenPath
		}
		travel[i] = d
	}
	travel[0] = travel[1]

	for i, p := range path {
		c := g.At(p.X, p.Y)
		c.PathOrientation = orientationOf(travel[i])
		switch {
		case i == 0 || i == len(path)-1:
			c.IsWayPoint = true
		case travel[i] != travel[i+1]:
			c.IsWayPoint = true
		}
		if i > 0 {
			c.IsJuncture = isJuncture(g, p, travel[i])
		}
	}
	return nil
}

// isJuncture reports whether the path cell at p offers more than one viable
// direction beyond the side it was entered from.
func isJuncture(g *grid.Grid, p grid.Point, travel grid.Direction) bool {
	arrivedFrom := travel.Opposite()
	viable := 0
	for _, d := range g.OpenDirections(p.X, p.Y) {
		if d == arrivedFrom {
			continue
		}
		viable++
	}
	return viable > 1
}

// orientationOf maps a travel direction onto its path orientation axis.
func orientationOf(d grid.Direction) grid.Orientation {
	if d == grid.East || d == grid.West {
		return grid.OrientationHorizontal
	}
	return grid.OrientationVertical
}
