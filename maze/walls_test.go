package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbrant/mccmaze/grid"
	"github.com/jbrant/mccmaze/maze"
)

// TestExtractWalls_Merge verifies run-length merging of contiguous flags in
// both orientations, with the four borders emitted first.
func TestExtractWalls_Merge(t *testing.T) {
	g, err := grid.New(4, 4)
	require.NoError(t, err)

	// row 1: a run of two plus an isolated flag
	g.ClaimSouthWall(0, 1, true)
	g.ClaimSouthWall(1, 1, true)
	g.ClaimSouthWall(3, 1, true)
	// column 2: a run of two
	g.ClaimEastWall(2, 0, true)
	g.ClaimEastWall(2, 1, true)

	walls := maze.ExtractWalls(g, 5)
	require.Len(t, walls, 4+3, "four borders, two horizontal runs, one vertical run")

	borders := walls[:4]
	assert.Equal(t, grid.Wall{From: grid.Point{X: 0, Y: 0}, To: grid.Point{X: 20, Y: 0}}, borders[0])
	assert.Equal(t, grid.Wall{From: grid.Point{X: 0, Y: 20}, To: grid.Point{X: 20, Y: 20}}, borders[1])
	assert.Equal(t, grid.Wall{From: grid.Point{X: 0, Y: 0}, To: grid.Point{X: 0, Y: 20}}, borders[2])
	assert.Equal(t, grid.Wall{From: grid.Point{X: 20, Y: 0}, To: grid.Point{X: 20, Y: 20}}, borders[3])

	assert.Equal(t, grid.Wall{From: grid.Point{X: 0, Y: 10}, To: grid.Point{X: 10, Y: 10}}, walls[4],
		"cells (0,1)-(1,1) merge into one segment")
	assert.Equal(t, grid.Wall{From: grid.Point{X: 15, Y: 10}, To: grid.Point{X: 20, Y: 10}}, walls[5],
		"the isolated flag emits its own segment")
	assert.Equal(t, grid.Wall{From: grid.Point{X: 15, Y: 0}, To: grid.Point{X: 15, Y: 10}}, walls[6],
		"cells (2,0)-(2,1) merge into one vertical segment")
}

// TestExtractWalls_SegmentCountBounded checks that merging never emits more
// segments than raw flagged cells.
func TestExtractWalls_SegmentCountBounded(t *testing.T) {
	s, err := maze.Generate(maze.Options{Width: 8, Height: 8, ScaleMultiplier: 2}, []maze.Command{
		{RoomIndex: 0, WallPosition: 0.4, PassagePosition: 0.2},
		{RoomIndex: 0, WallPosition: 0.6, PassagePosition: 0.8},
		{RoomIndex: 1, WallPosition: 0.2, PassagePosition: 0.5},
	})
	require.NoError(t, err)

	g := s.Grid()
	flagged := 0
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.At(x, y).SouthWall {
				flagged++
			}
			if g.At(x, y).EastWall {
				flagged++
			}
		}
	}
	internal := len(s.Walls()) - 4
	assert.LessOrEqual(t, internal, flagged)
}

// TestWalls_RoundTripIdempotent rebuilds the flag grid from a merged wall
// list and re-derives the walls: the two lists must be identical.
func TestWalls_RoundTripIdempotent(t *testing.T) {
	s, err := maze.Generate(maze.Options{Width: 10, Height: 10, ScaleMultiplier: 10}, []maze.Command{
		{RoomIndex: 0, WallPosition: 0.5, PassagePosition: 0.3},
		{RoomIndex: 0, WallPosition: 0.25, PassagePosition: 0.7, Horizontal: true},
		{RoomIndex: 1, WallPosition: 0.8, PassagePosition: 0.1},
		{RoomIndex: 2, WallPosition: 0.4, PassagePosition: 0.9},
	})
	require.NoError(t, err)

	first := s.Walls()
	rebuilt, err := maze.WallsToFlags(first, s.UnscaledWidth(), s.UnscaledHeight(), s.ScaleMultiplier())
	require.NoError(t, err)

	second := maze.ExtractWalls(rebuilt, s.ScaleMultiplier())
	assert.Equal(t, first, second, "merge must be idempotent across a round trip")
}

// TestWallsToFlags_RejectsStraySegments checks bounds validation.
func TestWallsToFlags_RejectsStraySegments(t *testing.T) {
	stray := []grid.Wall{
		{From: grid.Point{X: 5, Y: 50}, To: grid.Point{X: 10, Y: 50}},
	}
	_, err := maze.WallsToFlags(stray, 2, 2, 5)
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
}
