package grid

// Cell is a single grid cell. It carries the wall flags for its south and
// east boundaries only; the north and west boundaries belong to the adjacent
// cells, so every internal boundary has exactly one owner.
//
// HorizontalClaimed and VerticalClaimed record that a room-marking operation
// has already decided the corresponding boundary. A claimed boundary is never
// overwritten by a later wall write; it may still be cleared once when chosen
// as a room's entry opening.
//
// PathOrientation, IsJuncture and IsWayPoint are populated by the solution-path
// walk after generation; wall construction never touches them.
type Cell struct {
	X, Y int

	SouthWall bool
	EastWall  bool

	HorizontalClaimed bool
	VerticalClaimed   bool

	PathOrientation Orientation
	IsJuncture      bool
	IsWayPoint      bool
}

// OnPath reports whether the solution-path walk has annotated this cell.
func (c *Cell) OnPath() bool { return c.PathOrientation != OrientationNone }
