package main

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
)

const (
	title     = "Blockfall"
	hudHeight = 40

	// Key repeat in ticks at 60 TPS.
	repeatDelay    = 15
	repeatInterval = 4
)

// host implements ebiten.Game around a loop.Driver.
type host struct {
	cfg    *config.Config
	driver *loop.Driver
	screen *screenRenderer
	keys   *loop.Keymap[ebiten.Key]
	sound  *soundBoard

	imgui   *debugui_ebiten.ImguiBackend
	overlay *debugui.ImguiSystem

	start       time.Time
	bannerUntil time.Time
	pressed     []ebiten.Key
}

func newHost(cfg *config.Config, game *engine.Game) (*host, error) {
	h := &host{
		cfg:    cfg,
		screen: newScreenRenderer(cfg.Scale, game.Snapshot()),
		keys:   defaultKeymap(),
		start:  time.Now(),
	}

	h.driver = loop.NewDriver(game, loop.WithRenderer(h.screen))
	game.Subscribe(h)

	if !cfg.Mute {
		sound, err := newSoundBoard(cfg.Volume, cfg.SFXVolume)
		if err != nil {
			return nil, err
		}
		h.sound = sound
	}

	width, height := h.screen.size(game.Board())
	if cfg.DebugUI {
		h.imgui = debugui_ebiten.NewImguiBackend(title, max(width, 1100), max(height, 720))
		h.overlay = debugui.NewImguiSystem(h.driver.Scheduler())
		h.driver.Scheduler().Register(h.overlay)
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle(title)
	}

	return h, nil
}

func defaultKeymap() *loop.Keymap[ebiten.Key] {
	return loop.NewKeymap[ebiten.Key]().
		Bind(ebiten.KeyArrowLeft, engine.CommandMoveLeft).
		Bind(ebiten.KeyArrowRight, engine.CommandMoveRight).
		Bind(ebiten.KeyArrowDown, engine.CommandSoftDrop).
		Bind(ebiten.KeyArrowUp, engine.CommandRotate).
		Bind(ebiten.KeyA, engine.CommandMoveLeft).
		Bind(ebiten.KeyD, engine.CommandMoveRight).
		Bind(ebiten.KeyS, engine.CommandSoftDrop).
		Bind(ebiten.KeyW, engine.CommandRotate)
}

func (h *host) OnEvent(ev engine.Event) {
	switch ev.Type {
	case engine.EventStarted:
		log.Println("Game started.")
		if h.sound != nil {
			h.sound.playMusic()
		}
	case engine.EventRowsCleared:
		log.Printf("Cleared %d rows, score %d, level %d", ev.Rows, ev.Score, ev.Level)
	case engine.EventGameOver:
		log.Printf("Game over: score %d, level %d, lines %d", ev.Score, ev.Level, ev.Lines)
		h.bannerUntil = time.Now().Add(h.cfg.AlertDuration)
		if h.sound != nil {
			if err := h.sound.playGameOver(); err != nil {
				log.Printf("Failed to play game over sound: %v", err)
			}
		}
	}
}

func (h *host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if h.imgui != nil {
		h.imgui.BeginFrame()
		defer h.imgui.EndFrame()
	}

	if h.driver.State() == loop.Inactive {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
			inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			h.driver.Start()
		}
	} else if h.acceptsInput() {
		h.pressed = inpututil.AppendPressedKeys(h.pressed[:0])
		for _, key := range h.pressed {
			if repeating(inpututil.KeyPressDuration(key)) {
				h.keys.Dispatch(h.driver, key)
			}
		}
	}

	h.driver.Frame(time.Since(h.start))
	return nil
}

func (h *host) acceptsInput() bool {
	if time.Now().Before(h.bannerUntil) {
		return false
	}
	return h.overlay == nil || !h.overlay.InputState.WantCaptureKeyboard
}

// repeating reports whether a key held for d ticks fires this tick.
func repeating(d int) bool {
	return d == 1 || (d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0)
}

func (h *host) Draw(screen *ebiten.Image) {
	h.screen.draw(screen, h.driver.State(), time.Now().Before(h.bannerUntil))

	if h.imgui != nil {
		h.imgui.Draw(screen)
	}
}

func (h *host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if h.imgui != nil {
		h.imgui.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return h.screen.size(h.driver.Game().Board())
}
