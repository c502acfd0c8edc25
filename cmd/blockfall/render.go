package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
)

var (
	backgroundColor = color.RGBA{0x00, 0x00, 0x00, 0xff}
	lockedColor     = color.RGBA{0xf7, 0xdf, 0x1e, 0xff}
	pieceColor      = color.RGBA{0xff, 0x00, 0x00, 0xff}
	hudColor        = color.RGBA{0x20, 0x20, 0x20, 0xff}
	bannerColor     = color.RGBA{0x00, 0x00, 0x00, 0xc0}
)

// screenRenderer keeps the snapshot handed over by the driver during
// Update so Draw can paint it.
type screenRenderer struct {
	scale    int
	snapshot engine.Snapshot
}

func newScreenRenderer(scale int, initial engine.Snapshot) *screenRenderer {
	return &screenRenderer{scale: scale, snapshot: initial}
}

func (r *screenRenderer) Render(s engine.Snapshot) {
	r.snapshot = s
}

func (r *screenRenderer) size(b *engine.Board) (int, int) {
	return b.Width() * r.scale, b.Height()*r.scale + hudHeight
}

func (r *screenRenderer) draw(screen *ebiten.Image, state loop.State, banner bool) {
	s := r.snapshot
	scale := float32(r.scale)
	boardW := float32(s.Width) * scale
	boardH := float32(s.Height) * scale

	vector.DrawFilledRect(screen, 0, 0, boardW, boardH, backgroundColor, false)

	for y, row := range s.Board {
		for x, cell := range row {
			if cell == engine.Filled {
				vector.DrawFilledRect(screen, float32(x)*scale, float32(y)*scale, scale, scale, lockedColor, false)
			}
		}
	}

	for c := range s.Piece.Cells() {
		if c.Y < 0 {
			continue
		}
		vector.DrawFilledRect(screen, float32(c.X)*scale, float32(c.Y)*scale, scale, scale, pieceColor, false)
	}

	vector.DrawFilledRect(screen, 0, boardH, boardW, hudHeight, hudColor, false)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", s.Score), 8, int(boardH)+4)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Level: %d  Lines: %d", s.Level, s.Lines), 8, int(boardH)+20)

	switch {
	case state == loop.Inactive:
		r.message(screen, boardW, boardH, "Press Enter to play")
	case banner:
		r.message(screen, boardW, boardH, "Game Over!")
	}
}

func (r *screenRenderer) message(screen *ebiten.Image, boardW, boardH float32, text string) {
	const charWidth, lineHeight = 6, 16
	vector.DrawFilledRect(screen, 0, boardH/2-lineHeight, boardW, lineHeight*2, bannerColor, false)
	x := (int(boardW) - len(text)*charWidth) / 2
	ebitenutil.DebugPrintAt(screen, text, x, int(boardH/2)-lineHeight/2)
}
