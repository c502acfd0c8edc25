package ebiten_test

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
)

// Game implements ebiten.Game and draws the debug overlay on top.
type Game struct {
	driver       *loop.Driver
	imguiBackend *debugui_ebiten.ImguiBackend
	start        time.Time
}

func (g *Game) Update() error {
	// Begin ImGui frame before the driver runs its systems
	g.imguiBackend.BeginFrame()

	// Runs input, gravity, rendering and the ImguiSystem
	g.driver.Frame(time.Since(g.start))

	// End ImGui frame after systems complete
	g.imguiBackend.EndFrame()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw the board to screen
	// ...

	// Draw ImGui overlay on top
	g.imguiBackend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imguiBackend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	imguiBackend := debugui_ebiten.NewImguiBackend("Blockfall Debug", 1280, 720)

	game, err := engine.New()
	if err != nil {
		panic(err)
	}

	driver := loop.NewDriver(game)
	driver.Scheduler().Register(debugui.NewImguiSystem(driver.Scheduler()))
	driver.Start()

	if err := ebiten.RunGame(&Game{
		driver:       driver,
		imguiBackend: imguiBackend,
		start:        time.Now(),
	}); err != nil {
		panic(err)
	}
}
