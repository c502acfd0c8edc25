// Package engine implements the falling-block rules: the board of locked
// cells, the shape catalog, the active piece, collision checks, lock-in,
// row clearing and scoring. A Game is the single context object that owns
// all of that state; callers drive it one command at a time from a single
// goroutine.
package engine

import (
	"math/rand/v2"
	"time"
)

// Snapshot is a copy of everything a renderer needs for one frame.
type Snapshot struct {
	Width  int
	Height int
	Board  [][]Cell
	Piece  Piece
	Score  int
	Level  int
	Lines  int
}

type options struct {
	width, height int
	rng           *rand.Rand
	first         *Shape
	listeners     []Listener
}

// Option configures a Game at construction time.
type Option func(*options)

// WithSeed seeds the shape randomizer so a session can be replayed.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithRand uses r to draw shapes.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rng = r }
}

// WithFirstShape overrides the shape of the first piece. The default first
// piece is the square.
func WithFirstShape(s Shape) Option {
	return func(o *options) { o.first = &s }
}

// WithBoardSize overrides the default 14x30 board. It exists for tests and
// tooling; players always get the default size.
func WithBoardSize(width, height int) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// WithListener registers l before the first piece spawns.
func WithListener(l Listener) Option {
	return func(o *options) { o.listeners = append(o.listeners, l) }
}

// Game is the engine context: board, active piece, score and the random
// source used to pick shapes.
type Game struct {
	board     *Board
	piece     Piece
	score     Score
	rng       *rand.Rand
	listeners []Listener
}

// New creates a game with an empty board and the first piece at the spawn
// origin.
func New(opts ...Option) (*Game, error) {
	o := options{width: DefaultWidth, height: DefaultHeight}
	for _, opt := range opts {
		opt(&o)
	}

	board, err := NewBoard(o.width, o.height)
	if err != nil {
		return nil, err
	}

	if o.rng == nil {
		seed := uint64(time.Now().UnixNano())
		o.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}

	first := ShapeOf(KindO)
	if o.first != nil {
		first = *o.first
	}

	g := &Game{
		board:     board,
		score:     NewScore(),
		rng:       o.rng,
		listeners: o.listeners,
	}
	g.piece = Piece{Shape: first}
	g.piece.X, g.piece.Y = g.SpawnOrigin()

	return g, nil
}

// Subscribe adds a listener for engine events.
func (g *Game) Subscribe(l Listener) {
	g.listeners = append(g.listeners, l)
}

// Notify delivers ev to every listener. The loop driver uses it for
// lifecycle events that originate outside the engine.
func (g *Game) Notify(ev Event) {
	for _, l := range g.listeners {
		l.OnEvent(ev)
	}
}

func (g *Game) event(t EventType) Event {
	return Event{
		Type:  t,
		Score: g.score.Points(),
		Level: g.score.Level(),
		Lines: g.score.Lines(),
	}
}

func (g *Game) Board() *Board { return g.board }
func (g *Game) Piece() Piece  { return g.piece }
func (g *Game) Score() Score  { return g.score }

// SpawnOrigin returns where new pieces appear: horizontally centred, on
// the top row.
func (g *Game) SpawnOrigin() (x, y int) {
	return g.board.Width()/2 - 1, 0
}

// Collides reports whether the active piece currently overlaps a wall, the
// floor or a locked cell.
func (g *Game) Collides() bool {
	return Collides(g.board, g.piece)
}

// try applies transform to the active piece and keeps it only when the
// result does not collide.
func (g *Game) try(transform func(p *Piece)) bool {
	prev := g.piece
	transform(&g.piece)
	if Collides(g.board, g.piece) {
		g.piece = prev
		return false
	}
	return true
}

// MoveLeft shifts the piece one column left when legal.
func (g *Game) MoveLeft() bool {
	return g.try(func(p *Piece) { p.X-- })
}

// MoveRight shifts the piece one column right when legal.
func (g *Game) MoveRight() bool {
	return g.try(func(p *Piece) { p.X++ })
}

// Rotate turns the piece clockwise in place when legal.
func (g *Game) Rotate() bool {
	return g.try(func(p *Piece) { p.Shape = p.Shape.RotateClockwise() })
}

// SoftDrop moves the piece down one row. When the piece cannot descend it
// is locked into the board and a new piece spawns; SoftDrop then returns
// false.
func (g *Game) SoftDrop() bool {
	if g.try(func(p *Piece) { p.Y++ }) {
		return true
	}
	g.lockAndAdvance()
	return false
}

// Apply runs the move for cmd. Commands outside the input set are ignored.
func (g *Game) Apply(cmd Command) bool {
	switch cmd {
	case CommandMoveLeft:
		return g.MoveLeft()
	case CommandMoveRight:
		return g.MoveRight()
	case CommandSoftDrop:
		return g.SoftDrop()
	case CommandRotate:
		return g.Rotate()
	default:
		return false
	}
}

func (g *Game) lockAndAdvance() {
	g.board.Lock(g.piece.Shape, g.piece.X, g.piece.Y)
	g.score.pieces++
	g.Notify(g.event(EventLocked))

	g.piece.X, g.piece.Y = g.SpawnOrigin()
	g.piece.Shape = RandomShape(g.rng)

	if Collides(g.board, g.piece) {
		g.Notify(g.event(EventGameOver))
		g.score.reset()
		g.board.Reset()
		return
	}

	rows := g.board.ClearFullRowsFunc(g.score.addRow)
	if rows > 0 {
		ev := g.event(EventRowsCleared)
		ev.Rows = rows
		g.Notify(ev)
	}
}

// Snapshot copies the state needed to draw a frame.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Width:  g.board.Width(),
		Height: g.board.Height(),
		Board:  g.board.Rows(),
		Piece:  g.piece,
		Score:  g.score.Points(),
		Level:  g.score.Level(),
		Lines:  g.score.Lines(),
	}
}
