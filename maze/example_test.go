package maze_test

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/maze"
)

// ExampleGenerate builds a seeded 9×7 maze and reports its shape. The opened
// walls always number rooms-1.
func ExampleGenerate() {
	g, err := maze.Generate(9, 7, maze.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("%dx%d rooms=%d carved=%d perfect=%v\n",
		g.Width(), g.Height(), len(g.Rooms()), g.CarvedWalls(), maze.Verify(g) == nil)
	// Output: 9x7 rooms=20 carved=19 perfect=true
}

// ExampleGenerate_invalid shows the dimension check.
func ExampleGenerate_invalid() {
	_, err := maze.Generate(4, 3)
	fmt.Println(err)
	// Output: Generate: width=4 must be odd and >= 3: maze: invalid maze dimensions
}
