package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jbrant/mccmaze/grid"
	"github.com/jbrant/mccmaze/metrics"
)

// TestDiversity_IdenticalPaths scores zero.
func TestDiversity_IdenticalPaths(t *testing.T) {
	p := []grid.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}
	assert.Zero(t, metrics.Diversity(p, p))
}

// TestDiversity_ParallelCorridors pins the lockstep sum: two length-3 rows
// one cell apart stay at distance 1 on every step.
func TestDiversity_ParallelCorridors(t *testing.T) {
	a := []grid.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	b := []grid.Point{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}
	assert.InDelta(t, 1.0, metrics.Diversity(a, b), 1e-9)
}

// TestDiversity_ShorterPathHolds verifies that the shorter path waits at its
// final cell: distances 0, 1, 2 over three steps average to 1.
func TestDiversity_ShorterPathHolds(t *testing.T) {
	a := []grid.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	b := []grid.Point{{X: 0, Y: 0}}
	assert.InDelta(t, 1.0, metrics.Diversity(a, b), 1e-9)
}

// TestDiversity_Symmetric checks argument order does not matter.
func TestDiversity_Symmetric(t *testing.T) {
	a := []grid.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}
	b := []grid.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}
	assert.Equal(t, metrics.Diversity(a, b), metrics.Diversity(b, a))
}

// TestDiversity_Empty guards the division by zero.
func TestDiversity_Empty(t *testing.T) {
	assert.Zero(t, metrics.Diversity(nil, nil))
	assert.Zero(t, metrics.Diversity([]grid.Point{{X: 1, Y: 1}}, nil))
}
