package engine

import (
	"errors"
	"strings"
)

const (
	DefaultWidth  = 14
	DefaultHeight = 30
)

// ErrInvalidDimensions is returned when a board is requested with a
// non-positive width or height.
var ErrInvalidDimensions = errors.New("engine: board dimensions must be positive")

// Cell is the state of a single board square.
type Cell uint8

const (
	Empty Cell = iota
	Filled
)

func (c Cell) Rune() rune {
	if c == Filled {
		return '#'
	}
	return '.'
}

// Board is a fixed size grid of locked cells. Row 0 is the top of the
// board. The dimensions never change after creation.
type Board struct {
	width  int
	height int
	rows   [][]Cell
}

// NewBoard creates a board of the given size with every cell Empty.
func NewBoard(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	rows := make([][]Cell, height)
	for y := range rows {
		rows[y] = make([]Cell, width)
	}

	return &Board{width: width, height: height, rows: rows}, nil
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// InBounds reports whether (x, y) addresses a cell of the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Occupied reports whether (x, y) is Filled. When the coordinate lies
// outside the grid inBounds is false and the caller decides how to treat
// it.
func (b *Board) Occupied(x, y int) (filled bool, inBounds bool) {
	if !b.InBounds(x, y) {
		return false, false
	}
	return b.rows[y][x] == Filled, true
}

// Cell returns the cell at (x, y), or Empty when out of range.
func (b *Board) Cell(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Empty
	}
	return b.rows[y][x]
}

// Set writes a single cell and reports whether the coordinate was valid.
func (b *Board) Set(x, y int, c Cell) bool {
	if !b.InBounds(x, y) {
		return false
	}
	b.rows[y][x] = c
	return true
}

// Lock marks every filled cell of shape as Filled, offset by (x, y).
// Cells falling outside the grid are skipped.
func (b *Board) Lock(shape Shape, x, y int) {
	for p := range shape.Cells() {
		b.Set(x+p.X, y+p.Y, Filled)
	}
}

// RowFull reports whether row y has no Empty cells.
func (b *Board) RowFull(y int) bool {
	if y < 0 || y >= b.height {
		return false
	}
	for _, c := range b.rows[y] {
		if c == Empty {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row and returns how many were cleared.
func (b *Board) ClearFullRows() int {
	return b.ClearFullRowsFunc(nil)
}

// ClearFullRowsFunc performs one top-to-bottom pass over the starting row
// indices. A full row is removed, the rows above it shift down by one and
// an Empty row is inserted at the top. The scan then continues with the
// next index; rows shifted into already scanned positions are not looked
// at again in the same pass. fn, when non-nil, is called after each
// removal with the number of rows cleared so far in this pass.
func (b *Board) ClearFullRowsFunc(fn func(cleared int)) int {
	cleared := 0

	for y := 0; y < b.height; y++ {
		if !b.RowFull(y) {
			continue
		}

		removed := b.rows[y]
		copy(b.rows[1:y+1], b.rows[:y])
		clear(removed)
		b.rows[0] = removed

		cleared++
		if fn != nil {
			fn(cleared)
		}
	}

	return cleared
}

// Reset sets every cell to Empty.
func (b *Board) Reset() {
	for _, row := range b.rows {
		clear(row)
	}
}

// Row returns a copy of row y.
func (b *Board) Row(y int) []Cell {
	row := make([]Cell, b.width)
	if y >= 0 && y < b.height {
		copy(row, b.rows[y])
	}
	return row
}

// Rows returns a deep copy of the grid.
func (b *Board) Rows() [][]Cell {
	rows := make([][]Cell, b.height)
	for y := range rows {
		rows[y] = b.Row(y)
	}
	return rows
}

// FilledCount returns the number of Filled cells on the board.
func (b *Board) FilledCount() int {
	n := 0
	for _, row := range b.rows {
		for _, c := range row {
			if c == Filled {
				n++
			}
		}
	}
	return n
}

// String renders the board one line per row, '#' for filled cells and
// '.' for empty ones.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)

	for y, row := range b.rows {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for _, c := range row {
			sb.WriteRune(c.Rune())
		}
	}

	return sb.String()
}
