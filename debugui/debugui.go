// Package debugui draws Dear ImGui inspector windows over a running game.
// The overlay runs as a loop.System registered after the renderer, so it
// sees the state of the frame that was just drawn.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/loop"
)

// Item holds a Dear ImGui render function called once per frame.
type Item struct {
	Render func(frame *loop.Frame)
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard
// input. Hosts check it before turning key presses into game commands.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem updates InputState and calls every registered Item.
type ImguiSystem struct {
	Items      []Item
	InputState InputState
}

// NewImguiSystem returns a system with the standard inspector windows.
func NewImguiSystem(scheduler *loop.Scheduler) *ImguiSystem {
	perf := NewPerformanceStats(120)
	inspector := NewGameInspector()

	s := &ImguiSystem{}
	s.Add(func(frame *loop.Frame) {
		perf.Record(float32(frame.DeltaTime))
		perf.Render(scheduler)
	})
	s.Add(inspector.Render)
	return s
}

func (s *ImguiSystem) Add(render func(frame *loop.Frame)) {
	s.Items = append(s.Items, Item{Render: render})
}

func (s *ImguiSystem) Execute(frame *loop.Frame) {
	io := imgui.CurrentIO()
	s.InputState.WantCaptureMouse = io.WantCaptureMouse()
	s.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range s.Items {
		item.Render(frame)
	}
}
