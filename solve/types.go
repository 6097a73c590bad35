package solve

import (
	"errors"

	"github.com/jbrant/mccmaze/grid"
)

// Sentinel errors for path search and annotation.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("solve: grid is nil")
	// ErrOutOfBounds is returned when an endpoint lies outside the grid.
	ErrOutOfBounds = errors.New("solve: endpoint out of bounds")
	// ErrTargetUnreachable is returned when BFS exhausts the queue without
	// dequeuing the target. On a generated maze this is a logic error, not
	// a runtime condition.
	ErrTargetUnreachable = errors.New("solve: target unreachable")
	// ErrBrokenPath is returned when a path sequence contains a step that is
	// not a single orthogonal move.
	ErrBrokenPath = errors.New("solve: path step is not a unit orthogonal move")
)

// Solution holds the outcome of solving a maze grid:
//   - Distance: unscaled shortest-path cell distance start→target.
//   - Path: the ordered cell sequence, start first, target last.
type Solution struct {
	Distance int
	Path     []grid.Point
}
