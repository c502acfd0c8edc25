package loop_test

import (
	"fmt"
	"time"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
)

// ExampleDriver shows the frame cycle a host runs. Frames are ignored
// until Start; afterwards each frame applies queued input, advances
// gravity by the elapsed time and renders.
func ExampleDriver() {
	game, err := engine.New(engine.WithSeed(1))
	if err != nil {
		panic(err)
	}

	driver := loop.NewDriver(game, loop.WithRenderer(loop.RendererFunc(func(s engine.Snapshot) {
		fmt.Printf("piece %d,%d score %d level %d\n", s.Piece.X, s.Piece.Y, s.Score, s.Level)
	})))

	driver.Frame(0)
	driver.Start()

	driver.Frame(0)
	driver.Push(engine.CommandMoveRight)
	driver.Frame(500 * time.Millisecond)
	driver.Frame(1200 * time.Millisecond)

	// Output:
	// piece 6,0 score 0 level 1
	// piece 7,0 score 0 level 1
	// piece 7,1 score 0 level 1
}
