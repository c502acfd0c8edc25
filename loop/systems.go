package loop

import "github.com/plus3/blockfall/engine"

// Renderer draws one frame of game state. It is implemented by the host.
type Renderer interface {
	Render(snapshot engine.Snapshot)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(engine.Snapshot)

func (f RendererFunc) Render(s engine.Snapshot) { f(s) }

// InputSystem applies the commands the host queued since the last frame.
type InputSystem struct {
	Applied int64
}

func (s *InputSystem) Execute(frame *Frame) {
	if frame.Input == nil {
		return
	}
	s.Applied += int64(frame.Input.Flush(frame.Game))
}

// GravitySystem accumulates frame time and moves the piece down once the
// accumulated time exceeds the current drop interval. The counter resets
// whenever gravity fires, whether or not the drop locked the piece.
type GravitySystem struct {
	Drops int64
	Locks int64
}

func (s *GravitySystem) Execute(frame *Frame) {
	clock := frame.Clock
	clock.DropCounter += frame.DeltaTime

	if clock.DropCounter > frame.Game.Score().DropInterval() {
		s.Drops++
		if !frame.Game.SoftDrop() {
			s.Locks++
		}
		clock.DropCounter = 0
	}
}

// RenderSystem hands a snapshot to the renderer after the state update.
type RenderSystem struct {
	Renderer Renderer
}

func (s *RenderSystem) Execute(frame *Frame) {
	if s.Renderer == nil {
		return
	}
	s.Renderer.Render(frame.Game.Snapshot())
}
