// Package grid provides the cell matrix underlying an orthogonal maze:
// integer points, axis-aligned wall segments, per-cell boundary-wall flags,
// and the boundary-claim bookkeeping that room subdivision relies on.
//
// What
//
//   - Point: immutable integer (x,y) with value equality and Manhattan metric.
//   - Wall: an axis-aligned line segment between two Points.
//   - Direction: the cardinal enumeration North, East, South, West.
//   - Cell: wall flags on its south and east boundaries (north/west are the
//     neighbor's south/east), claim flags preventing boundary double-writes,
//     and path-annotation flags (orientation, juncture, waypoint).
//   - Grid: the width×height cell matrix, allocated once, with wall-aware
//     adjacency queries (CanMove, OpenDirections), claim/open mutators, and
//     an outward nearest-path scan used by room-opening placement.
//
// Why
//
//   - Every internal boundary is owned by exactly one cell, so wall extraction
//     never double-counts and subdivision never contradicts an earlier write.
//   - Claim flags turn the "boundary set at most once, cleared at most once"
//     invariant into a structural guarantee rather than a runtime check.
//
// Determinism
//
//	OpenDirections always reports directions in North, East, South, West
//	order, so traversals over the grid are fully reproducible.
//
// Complexity
//
//   - New: O(W×H) time and memory (single allocation, row-major).
//   - CanMove / claim / open mutators: O(1).
//   - NearestPathDistance: O(max(W,H)) single-axis scan.
//
// Errors
//
//   - ErrBadDimensions: width or height below 1.
//   - ErrOutOfBounds: a coordinate outside the grid.
package grid
