package loop

import "github.com/plus3/blockfall/engine"

// Frame is passed to every system during one tick.
type Frame struct {
	// DeltaTime is the time since the previous frame in milliseconds.
	DeltaTime float64
	Game      *engine.Game
	Clock     *Clock
	Input     *Queue
}

// Clock tracks gravity timing. DropCounter is the time in milliseconds
// accumulated since gravity last fired.
type Clock struct {
	DropCounter float64
	Frames      int64
	Elapsed     float64
}

func newFrame(dt float64, game *engine.Game, clock *Clock, input *Queue) *Frame {
	return &Frame{
		DeltaTime: dt,
		Game:      game,
		Clock:     clock,
		Input:     input,
	}
}
