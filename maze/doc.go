// Package maze generates guaranteed-solvable orthogonal mazes by recursive
// spatial subdivision, driven by an externally decoded sequence of
// wall/passage placement commands.
//
// What
//
//   - Room: a rectangular sub-region of the grid, the unit of subdivision.
//   - Command: one genome-decoded instruction (room index, normalized wall
//     position, normalized passage position, orientation bit).
//   - Builder: applies Commands over an explicit worklist of dividable rooms
//     (no recursion), mutating a single shared grid.Grid in place.
//   - Structure: the finalized artifact — the cell grid, the merged
//     wall-segment list (borders first), scaled start/target locations, and
//     the derived simulation step budget.
//
// How a division works
//
//	The wall position selects a row (horizontal bisection) or column
//	(vertical) inside the room; every cell along that line gets a wall flag
//	except the single passage cell, so the two halves always stay connected.
//	Rooms narrower or shorter than two cells cannot be bisected and instead
//	receive one perimeter opening placed nearest the developing solution
//	path. Because every wall carries exactly one passage and openings only
//	remove walls, every cell stays reachable and a start→target route
//	always survives generation.
//
// Determinism
//
//	Identical Options and Command sequences produce identical Structures.
//	The wall list is ordered: four border segments, horizontal runs
//	row-major, vertical runs column-major.
//
// Complexity
//
//   - Divide: O(W+H) per command (wall walk + perimeter trace).
//   - Build: O(W×H) (breadth-first distance + wall-run merge).
//
// Errors
//
//   - ErrBadDimensions, ErrBadScale: invalid construction parameters.
//   - ErrRoomIndex, ErrNoPendingRooms: command targets a room that does not
//     exist (malformed genome; fatal, not recoverable).
//   - ErrWallPosition, ErrPassagePosition: normalized position below zero.
//   - ErrFinalized: use of a Builder after Build.
//   - solve.ErrTargetUnreachable (wrapped): finalization found no
//     start→target route, which indicates an upstream generation bug.
package maze
