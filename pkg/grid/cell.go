// pkg/grid/cell.go
package grid

import "fmt"

// Cell клетка сетки (столбец, строка)
type Cell struct {
	Col, Row int
}

// AxialDirections are the four unit deltas a unit may travel along.
// The order (left, up, down, right) is the tie-break order of the flow field.
var AxialDirections = [4]Cell{
	{Col: -1, Row: 0}, {Col: 0, Row: -1}, {Col: 0, Row: 1}, {Col: 1, Row: 0},
}

// Add возвращает сумму двух клеток
func (c Cell) Add(other Cell) Cell {
	return Cell{Col: c.Col + other.Col, Row: c.Row + other.Row}
}

// Sub возвращает разность двух клеток
func (c Cell) Sub(other Cell) Cell {
	return Cell{Col: c.Col - other.Col, Row: c.Row - other.Row}
}

// Neg returns the opposite delta.
func (c Cell) Neg() Cell {
	return Cell{Col: -c.Col, Row: -c.Row}
}

// IsZero reports whether c is the (0, 0) delta.
func (c Cell) IsZero() bool {
	return c.Col == 0 && c.Row == 0
}

// Adjacent returns the four axial neighbours of c, in AxialDirections order.
func (c Cell) Adjacent() []Cell {
	out := make([]Cell, 0, len(AxialDirections))
	for _, d := range AxialDirections {
		out = append(out, c.Add(d))
	}
	return out
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.Col, c.Row)
}

// directionIndex returns the index of d in AxialDirections, or -1.
func directionIndex(d Cell) int {
	for i, a := range AxialDirections {
		if a == d {
			return i
		}
	}
	return -1
}

// Bounds is an inclusive rectangle of cells.
type Bounds struct {
	Min, Max Cell
}

// Contains reports whether c lies inside b.
func (b Bounds) Contains(c Cell) bool {
	return c.Col >= b.Min.Col && c.Col <= b.Max.Col && c.Row >= b.Min.Row && c.Row <= b.Max.Row
}

// Width returns the number of columns covered by b.
func (b Bounds) Width() int { return b.Max.Col - b.Min.Col + 1 }

// Height returns the number of rows covered by b.
func (b Bounds) Height() int { return b.Max.Row - b.Min.Row + 1 }

// Pad grows b by n cells on every side.
func (b Bounds) Pad(n int) Bounds {
	return Bounds{
		Min: Cell{Col: b.Min.Col - n, Row: b.Min.Row - n},
		Max: Cell{Col: b.Max.Col + n, Row: b.Max.Row + n},
	}
}

func (b Bounds) index(c Cell) int {
	return (c.Row-b.Min.Row)*b.Width() + (c.Col - b.Min.Col)
}

func (b Bounds) cell(idx int) Cell {
	w := b.Width()
	return Cell{Col: b.Min.Col + idx%w, Row: b.Min.Row + idx/w}
}
