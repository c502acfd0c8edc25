package engine_test

import (
	"fmt"
	"strings"

	"github.com/plus3/blockfall/engine"
)

// ExampleGame drops the opening square to the floor. Every player input
// follows the same protocol: apply the move, check for a collision, and
// undo it if the piece would overlap a wall, the floor or a locked cell.
// A downward move that collides locks the piece and spawns the next one.
func ExampleGame() {
	game, err := engine.New(engine.WithSeed(1))
	if err != nil {
		panic(err)
	}

	for game.Apply(engine.CommandSoftDrop) {
	}

	rows := strings.Split(game.Board().String(), "\n")
	for _, row := range rows[len(rows)-3:] {
		fmt.Println(row)
	}

	p := game.Piece()
	fmt.Printf("next piece at (%d,%d)\n", p.X, p.Y)

	// Output:
	// ..............
	// ......##......
	// ......##......
	// next piece at (6,0)
}

// ExampleShape_RotateClockwise shows that rotation builds a new matrix and
// swaps the bounding box of non-square shapes.
func ExampleShape_RotateClockwise() {
	t := engine.ShapeOf(engine.KindT)
	fmt.Println(t)
	fmt.Println()
	fmt.Println(t.RotateClockwise())

	// Output:
	// .#.
	// ###
	//
	// #.
	// ##
	// #.
}

// ExampleBoard_ClearFullRowsFunc demonstrates the scoring rule: within a
// single clearing pass the Nth cleared row is worth N*10 points.
func ExampleBoard_ClearFullRowsFunc() {
	board, _ := engine.NewBoard(3, 4)
	for y := 2; y < 4; y++ {
		for x := 0; x < 3; x++ {
			board.Set(x, y, engine.Filled)
		}
	}

	points := 0
	cleared := board.ClearFullRowsFunc(func(n int) {
		points += n * 10
	})

	fmt.Printf("cleared %d rows for %d points\n", cleared, points)

	// Output:
	// cleared 2 rows for 30 points
}
