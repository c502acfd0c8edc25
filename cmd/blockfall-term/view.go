package main

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
	"github.com/rivo/tview"
)

var (
	emptyStyle  = tcell.StyleDefault.Background(tcell.ColorBlack)
	lockedStyle = tcell.StyleDefault.Background(tcell.NewRGBColor(0xf7, 0xdf, 0x1e))
	pieceStyle  = tcell.StyleDefault.Background(tcell.ColorRed)
	textStyle   = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
)

// view is the terminal renderer and listener. Render and OnEvent run on the
// driver goroutine; tview draws on its own, so shared state sits behind mu.
type view struct {
	ctx    context.Context
	cfg    *config.Config
	app    *tview.Application
	board  *tview.Box
	hud    *tview.TextView
	driver *loop.Driver

	keys  *loop.Keymap[tcell.Key]
	runes *loop.Keymap[rune]

	mu          sync.Mutex
	snapshot    engine.Snapshot
	started     bool
	bannerUntil time.Time
}

func newView(ctx context.Context, cfg *config.Config, initial engine.Snapshot) *view {
	v := &view{
		ctx:      ctx,
		cfg:      cfg,
		app:      tview.NewApplication(),
		snapshot: initial,
		keys: loop.NewKeymap[tcell.Key]().
			Bind(tcell.KeyLeft, engine.CommandMoveLeft).
			Bind(tcell.KeyRight, engine.CommandMoveRight).
			Bind(tcell.KeyDown, engine.CommandSoftDrop).
			Bind(tcell.KeyUp, engine.CommandRotate),
		runes: loop.NewKeymap[rune]().
			Bind('a', engine.CommandMoveLeft).
			Bind('d', engine.CommandMoveRight).
			Bind('s', engine.CommandSoftDrop).
			Bind('w', engine.CommandRotate),
	}

	v.board = tview.NewBox()
	v.board.SetBorder(true).SetTitle(" Blockfall ")
	v.board.SetDrawFunc(v.drawBoard)

	v.hud = tview.NewTextView().SetDynamicColors(true)
	v.hud.SetText(hudText(initial, false))

	width, height := boardSize(initial)
	layout := tview.NewFlex().
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(v.board, height+2, 0, false).
			AddItem(nil, 0, 1, false), width+2, 0, false).
		AddItem(v.hud, 0, 1, false)

	v.app.SetRoot(layout, true).SetInputCapture(v.handleKey)
	return v
}

func (v *view) handleKey(ev *tcell.EventKey) *tcell.EventKey {
	switch {
	case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
		v.app.Stop()
		return nil
	case ev.Key() == tcell.KeyEnter, ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
		v.driver.RequestStart()
		return nil
	}

	if !v.acceptsInput(time.Now()) {
		return nil
	}
	if ev.Key() == tcell.KeyRune {
		v.runes.Dispatch(v.driver, ev.Rune())
	} else {
		v.keys.Dispatch(v.driver, ev.Key())
	}
	return nil
}

func (v *view) acceptsInput(now time.Time) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.started && !now.Before(v.bannerUntil)
}

func (v *view) Render(s engine.Snapshot) {
	v.mu.Lock()
	v.snapshot = s
	banner := time.Now().Before(v.bannerUntil)
	v.mu.Unlock()

	if v.ctx.Err() != nil {
		return
	}
	v.app.QueueUpdateDraw(func() {
		v.hud.SetText(hudText(s, banner))
	})
}

func (v *view) OnEvent(ev engine.Event) {
	switch ev.Type {
	case engine.EventStarted:
		log.Println("Game started.")
		v.mu.Lock()
		v.started = true
		v.mu.Unlock()
	case engine.EventRowsCleared:
		log.Printf("Cleared %d rows, score %d, level %d", ev.Rows, ev.Score, ev.Level)
	case engine.EventGameOver:
		log.Printf("Game over: score %d, level %d, lines %d", ev.Score, ev.Level, ev.Lines)
		v.mu.Lock()
		v.bannerUntil = time.Now().Add(v.cfg.AlertDuration)
		v.mu.Unlock()
	}
}

func (v *view) drawBoard(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	v.mu.Lock()
	s := v.snapshot
	started := v.started
	banner := time.Now().Before(v.bannerUntil)
	v.mu.Unlock()

	innerX, innerY := x+1, y+1
	drawSnapshot(screen, innerX, innerY, s)

	switch {
	case !started:
		drawCentered(screen, innerX, innerY, s, "Press Enter")
	case banner:
		drawCentered(screen, innerX, innerY, s, "Game Over!")
	}

	return innerX, innerY, width - 2, height - 2
}

// boardSize is the board's footprint in terminal cells. Each board cell is
// two columns wide so it looks square.
func boardSize(s engine.Snapshot) (int, int) {
	return s.Width * 2, s.Height
}

func drawSnapshot(screen tcell.Screen, x, y int, s engine.Snapshot) {
	for row, cells := range s.Board {
		for col, cell := range cells {
			style := emptyStyle
			if cell == engine.Filled {
				style = lockedStyle
			}
			drawCell(screen, x+col*2, y+row, style)
		}
	}
	for c := range s.Piece.Cells() {
		if c.Y < 0 || c.Y >= s.Height || c.X < 0 || c.X >= s.Width {
			continue
		}
		drawCell(screen, x+c.X*2, y+c.Y, pieceStyle)
	}
}

func drawCell(screen tcell.Screen, x, y int, style tcell.Style) {
	screen.SetContent(x, y, ' ', nil, style)
	screen.SetContent(x+1, y, ' ', nil, style)
}

func drawCentered(screen tcell.Screen, x, y int, s engine.Snapshot, text string) {
	width, height := boardSize(s)
	drawText(screen, x+(width-len(text))/2, y+height/2, textStyle, text)
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func hudText(s engine.Snapshot, gameOver bool) string {
	text := fmt.Sprintf("[yellow]Score:[white] %d\n[yellow]Level:[white] %d\n[yellow]Lines:[white] %d\n\n", s.Score, s.Level, s.Lines)
	if gameOver {
		text += "[red]Game Over![white]\n\n"
	}
	return text + "←/→ or a/d  move\n↓ or s      drop\n↑ or w      rotate\nEnter       play\nq           quit\n"
}
