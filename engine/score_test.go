package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelAndInterval(t *testing.T) {
	cases := []struct {
		points   int
		level    int
		interval float64
	}{
		{0, 1, 1000},
		{95, 1, 1000},
		{100, 2, 500},
		{199, 2, 500},
		{250, 3, 1000.0 / 3},
		{1000, 11, 1000.0 / 11},
	}

	for _, c := range cases {
		s := Score{points: c.points}
		s.recompute()

		assert.Equal(t, c.level, s.Level(), "points %d", c.points)
		assert.InDelta(t, c.interval, s.DropInterval(), 1e-9, "points %d", c.points)
	}

	s := Score{points: 250}
	s.recompute()
	assert.InDelta(t, 333.33, s.DropInterval(), 0.01)
	assert.Equal(t, 333333333*time.Nanosecond, s.DropIntervalDuration())
}

func TestAddRowAccumulatesWithinPass(t *testing.T) {
	s := NewScore()

	// One pass clearing three rows: 10 + 20 + 30.
	for n := 1; n <= 3; n++ {
		s.addRow(n)
	}
	assert.Equal(t, 60, s.Points())
	assert.Equal(t, 3, s.Lines())
	assert.Equal(t, 1, s.Level())

	// A second pass of two rows: 10 + 20 crosses into level 2.
	s.addRow(1)
	s.addRow(2)
	assert.Equal(t, 90, s.Points())
	assert.Equal(t, 1, s.Level())

	s.addRow(1)
	assert.Equal(t, 100, s.Points())
	assert.Equal(t, 2, s.Level())
	assert.Equal(t, 500.0, s.DropInterval())
}

func TestGameOverResetsScore(t *testing.T) {
	g, err := New(WithSeed(7))
	require.NoError(t, err)

	g.score.points = 250
	g.score.lines = 9
	g.score.recompute()
	require.Equal(t, 3, g.score.Level())

	for y := 1; y < g.board.Height(); y++ {
		for x := 1; x < g.board.Width(); x++ {
			g.board.Set(x, y, Filled)
		}
	}

	g.SoftDrop()

	assert.Zero(t, g.score.Points())
	assert.Zero(t, g.score.Lines())
	assert.Equal(t, 1, g.score.Level())
	assert.Equal(t, 1000.0, g.score.DropInterval())
	assert.Equal(t, 1, g.score.GamesOver())
	assert.Zero(t, g.board.FilledCount())
}
