// Package solve provides breadth-first search over a wall-flagged maze grid:
// unscaled shortest-path distances, solution-path extraction, and the
// annotation pass that marks path orientation, waypoints, and junctures.
//
// What
//
//   - Distance: BFS cell distance between two points, honoring wall flags,
//     with early exit on reaching the target.
//   - Path: the ordered start→target cell sequence, reconstructed from an
//     index-based parent array (one int per cell, no per-node allocation).
//   - AnnotatePath: writes PathOrientation per travel axis, IsWayPoint on
//     endpoints and direction changes, IsJuncture wherever an offshoot
//     leaves the path.
//   - Solve: the one-shot distance + path + annotation pipeline.
//
// Why
//
//   - The generator derives its simulation step budget from the BFS
//     distance; the difficulty and diversity metrics consume the extracted
//     path and the annotation flags.
//
// Determinism
//
//	Neighbors are expanded in North, East, South, West order, so visit
//	order, depths, and the reconstructed path are fully reproducible.
//
// Complexity (N = W×H cells)
//
//   - Time:   O(N) — each cell enqueued at most once, four neighbor checks.
//   - Memory: O(N) — visited, depth, and parent arrays plus the queue.
//
// Errors
//
//   - ErrGridNil: nil grid.
//   - ErrOutOfBounds: an endpoint outside the grid.
//   - ErrTargetUnreachable: queue exhausted before the target was dequeued.
//     Generated mazes are solvable by construction, so this signals an
//     upstream generation bug and is fatal, never silently absorbed.
//   - ErrBrokenPath: AnnotatePath given a sequence with a non-adjacent step.
package solve
