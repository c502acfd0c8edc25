package engine_test

import (
	"testing"

	"github.com/plus3/blockfall/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBoard(t testing.TB, width, height int) *engine.Board {
	t.Helper()
	b, err := engine.NewBoard(width, height)
	require.NoError(t, err)
	return b
}

func fillRow(b *engine.Board, y int) {
	for x := 0; x < b.Width(); x++ {
		b.Set(x, y, engine.Filled)
	}
}

// fillRowExcept fills row y leaving the listed columns empty.
func fillRowExcept(b *engine.Board, y int, holes ...int) {
	fillRow(b, y)
	for _, x := range holes {
		b.Set(x, y, engine.Empty)
	}
}

func TestNewBoard(t *testing.T) {
	t.Run("starts empty", func(t *testing.T) {
		b := newBoard(t, engine.DefaultWidth, engine.DefaultHeight)

		assert.Equal(t, 14, b.Width())
		assert.Equal(t, 30, b.Height())
		assert.Zero(t, b.FilledCount())

		rows := b.Rows()
		assert.Len(t, rows, 30)
		for _, row := range rows {
			assert.Len(t, row, 14)
		}
	})

	t.Run("rejects non-positive dimensions", func(t *testing.T) {
		_, err := engine.NewBoard(0, 10)
		assert.ErrorIs(t, err, engine.ErrInvalidDimensions)

		_, err = engine.NewBoard(10, -1)
		assert.ErrorIs(t, err, engine.ErrInvalidDimensions)
	})
}

func TestBoardOccupied(t *testing.T) {
	b := newBoard(t, 4, 4)
	b.Set(1, 2, engine.Filled)

	filled, in := b.Occupied(1, 2)
	assert.True(t, filled)
	assert.True(t, in)

	filled, in = b.Occupied(0, 0)
	assert.False(t, filled)
	assert.True(t, in)

	for _, p := range []engine.Point{{X: -1, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 4}, {X: 0, Y: -1}} {
		filled, in = b.Occupied(p.X, p.Y)
		assert.False(t, filled, "point %v", p)
		assert.False(t, in, "point %v", p)
	}
}

func TestBoardLock(t *testing.T) {
	b := newBoard(t, 6, 6)
	b.Lock(engine.ShapeOf(engine.KindT), 2, 3)

	assert.Equal(t, ""+
		"......\n"+
		"......\n"+
		"......\n"+
		"...#..\n"+
		"..###.\n"+
		"......", b.String())

	// Cells outside the grid are dropped rather than written.
	b.Reset()
	b.Lock(engine.ShapeOf(engine.KindI), 4, -1)
	assert.Zero(t, b.FilledCount())
	b.Lock(engine.ShapeOf(engine.KindI), 4, 0)
	assert.Equal(t, 2, b.FilledCount())
}

func TestClearFullRows(t *testing.T) {
	t.Run("rows 3 and 7", func(t *testing.T) {
		b := newBoard(t, 5, 10)
		for y := 0; y < b.Height(); y++ {
			fillRowExcept(b, y, y%b.Width())
		}
		fillRow(b, 3)
		fillRow(b, 7)

		before := b.Rows()

		cleared := b.ClearFullRows()
		assert.Equal(t, 2, cleared)
		assert.Equal(t, 10, b.Height())

		after := b.Rows()
		assert.Equal(t, make([]engine.Cell, 5), after[0])
		assert.Equal(t, make([]engine.Cell, 5), after[1])
		// Rows 0-2 moved down by two, rows 4-6 by one, rows 8-9 stayed.
		assert.Equal(t, before[0:3], after[2:5])
		assert.Equal(t, before[4:7], after[5:8])
		assert.Equal(t, before[8:10], after[8:10])

		for y := 0; y < b.Height(); y++ {
			assert.False(t, b.RowFull(y), "row %d", y)
		}
	})

	t.Run("adjacent full rows in one pass", func(t *testing.T) {
		b := newBoard(t, 4, 6)
		fillRowExcept(b, 2, 0)
		fillRow(b, 3)
		fillRow(b, 4)
		fillRowExcept(b, 5, 3)

		var counts []int
		cleared := b.ClearFullRowsFunc(func(n int) { counts = append(counts, n) })

		assert.Equal(t, 2, cleared)
		assert.Equal(t, []int{1, 2}, counts)
		assert.Equal(t, ""+
			"....\n"+
			"....\n"+
			"....\n"+
			"....\n"+
			".###\n"+
			"###.", b.String())
	})

	t.Run("whole board full", func(t *testing.T) {
		b := newBoard(t, 3, 4)
		for y := 0; y < b.Height(); y++ {
			fillRow(b, y)
		}

		assert.Equal(t, 4, b.ClearFullRows())
		assert.Zero(t, b.FilledCount())
	})

	t.Run("nothing to clear", func(t *testing.T) {
		b := newBoard(t, 3, 3)
		fillRowExcept(b, 2, 1)

		assert.Zero(t, b.ClearFullRows())
		assert.Equal(t, 2, b.FilledCount())
	})
}

func TestBoardReset(t *testing.T) {
	b := newBoard(t, 4, 4)
	fillRow(b, 0)
	fillRow(b, 3)
	require.Equal(t, 8, b.FilledCount())

	b.Reset()
	assert.Zero(t, b.FilledCount())
	assert.Equal(t, 4, b.Width())
	assert.Equal(t, 4, b.Height())
}

func TestBoardRowIsCopy(t *testing.T) {
	b := newBoard(t, 3, 3)
	row := b.Row(1)
	row[0] = engine.Filled

	assert.Equal(t, engine.Empty, b.Cell(0, 1))
}
