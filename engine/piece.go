package engine

import (
	"fmt"
	"iter"
)

// Piece is the active falling shape. X and Y are the board coordinates of
// the shape's top-left origin.
type Piece struct {
	Shape Shape
	X, Y  int
}

// Cells yields the board coordinates covered by the piece.
func (p Piece) Cells() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for c := range p.Shape.Cells() {
			if !yield(Point{X: p.X + c.X, Y: p.Y + c.Y}) {
				return
			}
		}
	}
}

// Covers reports whether the piece occupies board cell (x, y).
func (p Piece) Covers(x, y int) bool {
	return p.Shape.Filled(y-p.Y, x-p.X)
}

func (p Piece) String() string {
	return fmt.Sprintf("%s@(%d,%d)", p.Shape.Kind(), p.X, p.Y)
}

// Collides reports whether any occupied cell of p lands left of the board,
// right of it, at or below the bottom edge, or on a Filled cell. Cells
// above the top edge never collide. Collides has no side effects.
func Collides(b *Board, p Piece) bool {
	for c := range p.Cells() {
		if c.X < 0 || c.X >= b.Width() || c.Y >= b.Height() {
			return true
		}
		if c.Y < 0 {
			continue
		}
		if filled, _ := b.Occupied(c.X, c.Y); filled {
			return true
		}
	}
	return false
}
