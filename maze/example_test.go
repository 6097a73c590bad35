package maze_test

import (
	"fmt"

	"github.com/jbrant/mccmaze/maze"
)

// Example_generate builds the smallest dividable maze without applying any
// subdivision commands and prints the finalized artifact: only the four
// border walls exist, and the start and target sit at the centers of the
// corner cells in scaled coordinates.
func Example_generate() {
	s, err := maze.Generate(maze.Options{Width: 2, Height: 2, ScaleMultiplier: 10}, nil)
	if err != nil {
		fmt.Println("generate:", err)
		return
	}

	fmt.Println("walls:", len(s.Walls()))
	fmt.Println("start:", s.StartLocation())
	fmt.Println("target:", s.TargetLocation())
	fmt.Println("budget:", s.MaxTimesteps())
	// Output:
	// walls: 4
	// start: (5,5)
	// target: (15,15)
	// budget: 20
}

// ExampleBuilder_Divide applies a single horizontal bisection to a 4×4 maze
// and renders the resulting grid. The wall lands on row 2 with its passage
// at column 0.
func ExampleBuilder_Divide() {
	b, err := maze.NewBuilder(maze.Options{Width: 4, Height: 4, ScaleMultiplier: 1})
	if err != nil {
		fmt.Println("builder:", err)
		return
	}
	if err := b.Divide(maze.Command{RoomIndex: 0, WallPosition: 0.5, PassagePosition: 0, Horizontal: true}); err != nil {
		fmt.Println("divide:", err)
		return
	}

	fmt.Print(b.Grid().String())
	// Output:
	// +---+---+---+---+
	// |               |
	// +   +   +   +   +
	// |               |
	// +   +   +   +   +
	// |               |
	// +   +---+---+---+
	// |               |
	// +---+---+---+---+
}
