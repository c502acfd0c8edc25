package engine

import (
	"iter"
	"math/rand/v2"
	"strings"
)

// Point is a cell coordinate. X grows to the right, Y grows downward.
type Point struct {
	X, Y int
}

// Kind names the catalog template a shape was built from.
type Kind uint8

const (
	KindO Kind = iota
	KindT
	KindS
	KindZ
	KindJ
	KindL
	KindI
)

var kindNames = [...]string{"O", "T", "S", "Z", "J", "L", "I"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "?"
}

// Shape is an immutable occupancy matrix. Rotating a shape produces a new
// value; the receiver and the catalog templates are never modified.
type Shape struct {
	kind  Kind
	cells [][]bool
}

func newShape(kind Kind, rows [][]uint8) Shape {
	cells := make([][]bool, len(rows))
	for r, row := range rows {
		cells[r] = make([]bool, len(row))
		for c, v := range row {
			cells[r][c] = v != 0
		}
	}
	return Shape{kind: kind, cells: cells}
}

var catalog = []Shape{
	newShape(KindO, [][]uint8{
		{1, 1},
		{1, 1},
	}),
	newShape(KindT, [][]uint8{
		{0, 1, 0},
		{1, 1, 1},
	}),
	newShape(KindS, [][]uint8{
		{0, 1, 1},
		{1, 1, 0},
	}),
	newShape(KindZ, [][]uint8{
		{1, 1, 0},
		{0, 1, 1},
	}),
	newShape(KindJ, [][]uint8{
		{1, 0, 0},
		{1, 1, 1},
	}),
	newShape(KindL, [][]uint8{
		{0, 0, 1},
		{1, 1, 1},
	}),
	newShape(KindI, [][]uint8{
		{1, 1, 1, 1},
	}),
}

// Catalog returns the seven shape templates in catalog order.
func Catalog() []Shape {
	shapes := make([]Shape, len(catalog))
	copy(shapes, catalog)
	return shapes
}

// ShapeOf returns the catalog template for kind.
func ShapeOf(kind Kind) Shape {
	return catalog[int(kind)%len(catalog)]
}

// RandomShape draws one template uniformly at random. Each call is
// independent.
func RandomShape(rng *rand.Rand) Shape {
	return catalog[rng.IntN(len(catalog))]
}

func (s Shape) Kind() Kind { return s.kind }

// Rows returns the height of the bounding box.
func (s Shape) Rows() int { return len(s.cells) }

// Cols returns the width of the bounding box.
func (s Shape) Cols() int {
	if len(s.cells) == 0 {
		return 0
	}
	return len(s.cells[0])
}

// Filled reports whether the cell at (row, col) is occupied.
func (s Shape) Filled(row, col int) bool {
	if row < 0 || row >= len(s.cells) || col < 0 || col >= len(s.cells[row]) {
		return false
	}
	return s.cells[row][col]
}

// Cells yields the occupied cells relative to the shape's top-left origin.
func (s Shape) Cells() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for r, row := range s.cells {
			for c, v := range row {
				if v && !yield(Point{X: c, Y: r}) {
					return
				}
			}
		}
	}
}

// RotateClockwise returns the shape turned a quarter turn clockwise.
// Row i of the result is column i of s read from the bottom row up, so a
// rows×cols shape becomes cols×rows.
func (s Shape) RotateClockwise() Shape {
	rows, cols := s.Rows(), s.Cols()

	rotated := make([][]bool, cols)
	for i := range rotated {
		rotated[i] = make([]bool, rows)
		for j := range rotated[i] {
			rotated[i][j] = s.cells[rows-1-j][i]
		}
	}

	return Shape{kind: s.kind, cells: rotated}
}

// Equal reports whether both shapes have the same bounding box and the
// same occupied cells. The kind is not compared.
func (s Shape) Equal(other Shape) bool {
	if s.Rows() != other.Rows() || s.Cols() != other.Cols() {
		return false
	}
	for r := range s.cells {
		for c := range s.cells[r] {
			if s.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

func (s Shape) String() string {
	var b strings.Builder
	for r, row := range s.cells {
		if r > 0 {
			b.WriteRune('\n')
		}
		for _, v := range row {
			if v {
				b.WriteRune('#')
			} else {
				b.WriteRune('.')
			}
		}
	}
	return b.String()
}
