package metrics

import "github.com/jbrant/mccmaze/grid"

// DiversityScore is the per-maze diversity tuple handed to the external
// reporting collaborator.
type DiversityScore struct {
	GenomeID uint32
	Score    float64
}

// Diversity scores how far apart two solution paths run. Both paths are
// walked in lockstep, one step on each per iteration; when the shorter path
// reaches its target it holds at its final cell for the remaining steps.
// The score is the summed Manhattan distance between the two current cells
// divided by the number of lockstep steps (the longer path's length).
//
// Identical paths score 0, the score is symmetric in its arguments, and an
// empty input yields 0 rather than a division by zero.
func Diversity(a, b []grid.Point) float64 {
	steps := len(a)
	if len(b) > steps {
		steps = len(b)
	}
	if steps == 0 || len(a) == 0 || len(b) == 0 {
		return 0
	}

	sum := 0
	for i := 0; i < steps; i++ {
		pa := a[minInt(i, len(a)-1)]
		pb := b[minInt(i, len(b)-1)]
		sum += grid.Manhattan(pa, pb)
	}
	return float64(sum) / float64(steps)
}

// minInt returns the smaller of two ints.
func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
