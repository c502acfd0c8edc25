package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
)

const inspectorCell = 8

// GameInspector shows score state, the gravity clock and a miniature of
// the board with the active piece.
type GameInspector struct {
	showHeights bool
}

func NewGameInspector() *GameInspector {
	return &GameInspector{showHeights: true}
}

func (gi *GameInspector) Render(frame *loop.Frame) {
	imgui.SetNextWindowPosV(imgui.NewVec2(380, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 460), imgui.CondOnce)

	if !imgui.BeginV("Game Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	game := frame.Game
	score := game.Score()
	piece := game.Piece()

	imgui.Text(fmt.Sprintf("Score: %d  Level: %d  Lines: %d", score.Points(), score.Level(), score.Lines()))
	imgui.Text(fmt.Sprintf("Pieces: %d  Games over: %d", score.Pieces(), score.GamesOver()))
	imgui.Text(fmt.Sprintf("Piece: %s (%dx%d)", piece, piece.Shape.Cols(), piece.Shape.Rows()))

	interval := score.DropInterval()
	progress := float32(frame.Clock.DropCounter / interval)
	if progress > 1 {
		progress = 1
	}
	imgui.ProgressBarV(progress, imgui.NewVec2(-1, 0), fmt.Sprintf("%.0f/%.0f ms", frame.Clock.DropCounter, interval))
	imgui.Text(fmt.Sprintf("Frames: %d  Elapsed: %.1fs", frame.Clock.Frames, frame.Clock.Elapsed/1000))

	imgui.Separator()
	gi.renderBoard(game.Board(), piece)

	imgui.Checkbox("Column heights", &gi.showHeights)
	if gi.showHeights {
		b := game.Board()
		heights := ColumnHeights(b)
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("Heights", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Column")
			imgui.TableSetupColumn("Height")
			imgui.TableHeadersRow()
			for x, h := range heights {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", x))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", h))
			}
			imgui.EndTable()
		}
		imgui.Text(fmt.Sprintf("Holes: %d", Holes(b)))
	}

	imgui.End()
}

func (gi *GameInspector) renderBoard(b *engine.Board, piece engine.Piece) {
	drawList := imgui.WindowDrawList()
	origin := imgui.CursorScreenPos()

	background := imgui.ColorU32Vec4(imgui.NewVec4(0, 0, 0, 1))
	lockedColor := imgui.ColorU32Vec4(imgui.NewVec4(0.97, 0.87, 0.12, 1))
	pieceColor := imgui.ColorU32Vec4(imgui.NewVec4(1, 0, 0, 1))

	width := float32(b.Width() * inspectorCell)
	height := float32(b.Height() * inspectorCell)
	drawList.AddRectFilled(origin, imgui.NewVec2(origin.X+width, origin.Y+height), background)

	cell := func(x, y int, isPiece bool) {
		color := lockedColor
		if isPiece {
			color = pieceColor
		}
		minX := origin.X + float32(x*inspectorCell)
		minY := origin.Y + float32(y*inspectorCell)
		drawList.AddRectFilled(
			imgui.NewVec2(minX, minY),
			imgui.NewVec2(minX+inspectorCell-1, minY+inspectorCell-1),
			color,
		)
	}

	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.Cell(x, y) == engine.Filled {
				cell(x, y, false)
			}
		}
	}
	for p := range piece.Cells() {
		if b.InBounds(p.X, p.Y) {
			cell(p.X, p.Y, true)
		}
	}

	imgui.Dummy(imgui.NewVec2(width, height))
}

// ColumnHeights returns, per column, the distance from the floor to the
// top filled cell, or 0 for an empty column.
func ColumnHeights(b *engine.Board) []int {
	heights := make([]int, b.Width())
	for x := range heights {
		for y := 0; y < b.Height(); y++ {
			if b.Cell(x, y) == engine.Filled {
				heights[x] = b.Height() - y
				break
			}
		}
	}
	return heights
}

// Holes counts empty cells that have a filled cell somewhere above them
// in the same column.
func Holes(b *engine.Board) int {
	holes := 0
	for x := 0; x < b.Width(); x++ {
		covered := false
		for y := 0; y < b.Height(); y++ {
			switch {
			case b.Cell(x, y) == engine.Filled:
				covered = true
			case covered:
				holes++
			}
		}
	}
	return holes
}
