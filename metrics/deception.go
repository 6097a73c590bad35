package metrics

import "github.com/jbrant/mccmaze/grid"

// DeceptionScore is the per-maze difficulty tuple handed to the external
// reporting collaborator.
type DeceptionScore struct {
	GenomeID  uint32
	Junctures int
	Deceptive int
}

// DeceptiveTurns walks the solution path and returns the number of juncture
// cells and, of those, how many count as deceptive turns.
//
// At path step i (i ≥ 1) with travel direction T, the arrival side is the
// opposite of T. The cell is a juncture when more than one of its three
// non-arrival directions is open. It tallies one deceptive turn when an
// open non-arrival direction, other than the path's own departure
// direction, lies orthogonal to T — an offshoot positioned to pull the
// navigator off the solution route. The start cell has no arrival side and
// is never a juncture. Deceptive ≤ Junctures always holds.
func DeceptiveTurns(g *grid.Grid, path []grid.Point) (junctures, deceptive int) {
	if g == nil {
		return 0, 0
	}
	for i := 1; i < len(path); i++ {
		travel, ok := grid.DirectionOf(path[i-1], path[i])
		if !ok {
			continue // malformed step; nothing to classify
		}
		arrivedFrom := travel.Opposite()

		var depart grid.Direction
		hasDepart := i+1 < len(path)
		if hasDepart {
			depart, _ = grid.DirectionOf(path[i], path[i+1])
		}

		viable := 0
		deceptiveHere := false
		for _, d := range g.OpenDirections(path[i].X, path[i].Y) {
			if d == arrivedFrom {
				continue
			}
			viable++
			if hasDepart && d == depart {
				continue
			}
			if d.Orthogonal(travel) {
				deceptiveHere = true
			}
		}
		if viable > 1 {
			junctures++
			if deceptiveHere {
				deceptive++
			}
		}
	}
	return junctures, deceptive
}
