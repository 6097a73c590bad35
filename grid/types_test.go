package grid_test

import (
	"testing"

	"github.com/jbrant/mccmaze/grid"
)

// TestManhattan checks the L1 metric on a few point pairs.
func TestManhattan(t *testing.T) {
	cases := []struct {
		name string
		a, b grid.Point
		want int
	}{
		{"Same", grid.Point{X: 2, Y: 3}, grid.Point{X: 2, Y: 3}, 0},
		{"Axis", grid.Point{X: 0, Y: 0}, grid.Point{X: 4, Y: 0}, 4},
		{"Diagonal", grid.Point{X: 1, Y: 1}, grid.Point{X: 4, Y: 5}, 7},
		{"Negative", grid.Point{X: -2, Y: 0}, grid.Point{X: 1, Y: -1}, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := grid.Manhattan(tc.a, tc.b); got != tc.want {
				t.Errorf("Manhattan(%v,%v) = %d; want %d", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

// TestWallAxes verifies the Horizontal/Vertical predicates.
func TestWallAxes(t *testing.T) {
	h := grid.Wall{From: grid.Point{X: 0, Y: 5}, To: grid.Point{X: 10, Y: 5}}
	v := grid.Wall{From: grid.Point{X: 5, Y: 0}, To: grid.Point{X: 5, Y: 10}}
	if !h.Horizontal() || h.Vertical() {
		t.Errorf("wall %v misclassified; want horizontal", h)
	}
	if !v.Vertical() || v.Horizontal() {
		t.Errorf("wall %v misclassified; want vertical", v)
	}
}

// TestDirection_OppositeAndOrthogonal exercises the direction algebra.
func TestDirection_OppositeAndOrthogonal(t *testing.T) {
	opposites := map[grid.Direction]grid.Direction{
		grid.North: grid.South,
		grid.East:  grid.West,
		grid.South: grid.North,
		grid.West:  grid.East,
	}
	for d, want := range opposites {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v; want %v", d, got, want)
		}
		if d.Orthogonal(d) || d.Orthogonal(want) {
			t.Errorf("%v should not be orthogonal to itself or %v", d, want)
		}
	}
	if !grid.North.Orthogonal(grid.East) || !grid.West.Orthogonal(grid.South) {
		t.Error("perpendicular directions reported as parallel")
	}
}

// TestDirectionOf covers unit steps and rejects non-adjacent pairs.
func TestDirectionOf(t *testing.T) {
	origin := grid.Point{X: 3, Y: 3}
	cases := []struct {
		name string
		to   grid.Point
		dir  grid.Direction
		ok   bool
	}{
		{"North", grid.Point{X: 3, Y: 2}, grid.North, true},
		{"East", grid.Point{X: 4, Y: 3}, grid.East, true},
		{"South", grid.Point{X: 3, Y: 4}, grid.South, true},
		{"West", grid.Point{X: 2, Y: 3}, grid.West, true},
		{"Self", origin, grid.North, false},
		{"Diagonal", grid.Point{X: 4, Y: 4}, grid.North, false},
		{"Far", grid.Point{X: 3, Y: 0}, grid.North, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, ok := grid.DirectionOf(origin, tc.to)
			if ok != tc.ok {
				t.Fatalf("DirectionOf(%v,%v) ok = %v; want %v", origin, tc.to, ok, tc.ok)
			}
			if ok && d != tc.dir {
				t.Errorf("DirectionOf(%v,%v) = %v; want %v", origin, tc.to, d, tc.dir)
			}
		})
	}
}
