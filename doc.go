// Package mccmaze is the maze-structure core of a minimal-criteria
// coevolution research harness: it turns genome-decoded subdivision
// commands into guaranteed-solvable orthogonal mazes and analyzes the
// structures that result.
//
// What lives where:
//
//	grid/    — points, wall segments, the cell matrix with wall flags and
//	           boundary-claim bookkeeping
//	maze/    — recursive-division generation: rooms, the Builder worklist,
//	           the finalized Structure with merged walls, start/target
//	           locations, and the simulation step budget
//	solve/   — breadth-first distance, solution-path extraction, and the
//	           path/juncture annotation pass
//	metrics/ — deceptive-turn tallies and lockstep path diversity, single
//	           maze or whole population in parallel
//
// The genome machinery, the neural controllers that navigate these mazes,
// and the experiment persistence layer are external collaborators: they
// feed subdivision commands in and consume the finished Structure — its
// wall list, grid, start/target points, and MaxTimesteps — as an opaque,
// read-only artifact.
//
// Quick start:
//
//	s, err := maze.Generate(maze.Options{Width: 10, Height: 10, ScaleMultiplier: 32},
//		[]maze.Command{{WallPosition: 0.4, PassagePosition: 0.7}})
//	if err != nil { ... }
//	sol, err := solve.Solve(s.Grid(), s.UnscaledStart(), s.UnscaledTarget())
//	junctures, deceptive := metrics.DeceptiveTurns(s.Grid(), sol.Path)
package mccmaze
