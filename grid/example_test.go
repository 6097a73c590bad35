package grid_test

import (
	"fmt"

	"github.com/jbrant/mccmaze/grid"
)

// ExampleGrid_String renders a 2×2 grid with one internal wall of each
// orientation. The east wall of (0,0) and the south wall of (1,0) leave a
// single route between the top-left and bottom-right cells.
func ExampleGrid_String() {
	g, _ := grid.New(2, 2)
	g.ClaimEastWall(0, 0, true)
	g.ClaimSouthWall(1, 0, true)

	fmt.Print(g.String())
	// Output:
	// +---+---+
	// |   |   |
	// +   +---+
	// |       |
	// +---+---+
}
