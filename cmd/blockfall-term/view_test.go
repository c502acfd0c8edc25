package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestView(t *testing.T) (*view, *loop.Driver, *engine.Game) {
	t.Helper()

	game, err := engine.New(engine.WithSeed(11))
	require.NoError(t, err)

	// A cancelled context keeps Render from queueing draws on an
	// application that never runs.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := config.FromEnv()
	cfg.AlertDuration = time.Hour

	v := newView(ctx, cfg, game.Snapshot())
	d := loop.NewDriver(game, loop.WithRenderer(v))
	v.driver = d
	game.Subscribe(v)
	return v, d, game
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func char(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestHandleKey(t *testing.T) {
	v, d, game := newTestView(t)

	assert.Nil(t, v.handleKey(key(tcell.KeyLeft)))
	assert.Zero(t, d.Input().Len(), "input is ignored before the game starts")

	v.handleKey(key(tcell.KeyEnter))
	d.Frame(0)
	require.Equal(t, loop.Running, d.State())

	v.handleKey(key(tcell.KeyLeft))
	v.handleKey(key(tcell.KeyLeft))
	v.handleKey(char('d'))
	v.handleKey(char('x'))
	assert.Equal(t, 3, d.Input().Len())

	d.Frame(time.Millisecond)
	assert.Equal(t, 5, game.Piece().X)
}

func TestGameOverBannerBlocksInput(t *testing.T) {
	v, d, _ := newTestView(t)
	d.Start()

	now := time.Now()
	assert.True(t, v.acceptsInput(now))

	v.OnEvent(engine.Event{Type: engine.EventGameOver, Score: 40, Level: 1, Lines: 4})
	assert.False(t, v.acceptsInput(now))
	assert.True(t, v.acceptsInput(now.Add(2*time.Hour)))
}

func TestDrawSnapshot(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(40, 40)

	b, err := engine.NewBoard(4, 3)
	require.NoError(t, err)
	b.Set(0, 2, engine.Filled)

	s := engine.Snapshot{
		Width:  4,
		Height: 3,
		Board:  b.Rows(),
		Piece:  engine.Piece{Shape: engine.ShapeOf(engine.KindO), X: 2, Y: -1},
	}
	drawSnapshot(screen, 1, 1, s)

	background := func(x, y int) tcell.Color {
		_, _, style, _ := screen.GetContent(x, y)
		_, bg, _ := style.Decompose()
		return bg
	}
	_, lockedBg, _ := lockedStyle.Decompose()
	_, pieceBg, _ := pieceStyle.Decompose()
	_, emptyBg, _ := emptyStyle.Decompose()

	assert.Equal(t, lockedBg, background(1, 3))
	assert.Equal(t, lockedBg, background(2, 3))
	assert.Equal(t, emptyBg, background(3, 3))

	// Only the lower half of the square is on the board.
	assert.Equal(t, pieceBg, background(5, 1))
	assert.Equal(t, pieceBg, background(8, 1))
	assert.Equal(t, emptyBg, background(5, 2))
}

func TestHudText(t *testing.T) {
	s := engine.Snapshot{Score: 130, Level: 2, Lines: 5}

	text := hudText(s, false)
	assert.Contains(t, text, "Score:[white] 130")
	assert.Contains(t, text, "Level:[white] 2")
	assert.Contains(t, text, "Lines:[white] 5")
	assert.NotContains(t, text, "Game Over!")

	assert.True(t, strings.Contains(hudText(s, true), "Game Over!"))
}
