// pkg/grid/translator.go
package grid

import (
	"errors"
	"fmt"
	"math"

	"github.com/yuanwang7/TowerDefenceGame/pkg/utils"
)

// ErrInvalidCell is returned for coordinates outside the grid.
var ErrInvalidCell = errors.New("cell is outside the grid")

// Translator переводит координаты между клетками (столбец, строка) и пикселями (x, y).
// Клетки квадратные.
type Translator struct {
	Cells    Cell    // Размер сетки в клетках (столбцы, строки)
	CellSize float64 // Сторона клетки в пикселях
}

// Segment is a line in pixel space.
type Segment struct {
	From, To utils.Point
}

// NewTranslator creates a translator for a columns x rows grid.
func NewTranslator(columns, rows int, cellSize float64) *Translator {
	return &Translator{Cells: Cell{Col: columns, Row: rows}, CellSize: cellSize}
}

// Pixels returns the pixel width and height of the whole grid.
func (t *Translator) Pixels() utils.Point {
	return utils.Point{X: float64(t.Cells.Col) * t.CellSize, Y: float64(t.Cells.Row) * t.CellSize}
}

// Bounds returns the rectangle of valid cells.
func (t *Translator) Bounds() Bounds {
	return Bounds{Max: Cell{Col: t.Cells.Col - 1, Row: t.Cells.Row - 1}}
}

// IsCellValid reports whether c exists in the grid.
func (t *Translator) IsCellValid(c Cell) bool {
	return c.Col >= 0 && c.Col < t.Cells.Col && c.Row >= 0 && c.Row < t.Cells.Row
}

// ValidateCell returns an error wrapping ErrInvalidCell when c is out of bounds.
func (t *Translator) ValidateCell(c Cell) error {
	if !t.IsCellValid(c) {
		return fmt.Errorf("cell %v in %dx%d grid: %w", c, t.Cells.Col, t.Cells.Row, ErrInvalidCell)
	}
	return nil
}

// CellToPixelCenter возвращает пиксельную позицию центра клетки
func (t *Translator) CellToPixelCenter(c Cell) utils.Point {
	return utils.Point{
		X: (float64(c.Col) + 0.5) * t.CellSize,
		Y: (float64(c.Row) + 0.5) * t.CellSize,
	}
}

// CellToPixelCorner возвращает левый верхний угол клетки
func (t *Translator) CellToPixelCorner(c Cell) utils.Point {
	return utils.Point{X: float64(c.Col) * t.CellSize, Y: float64(c.Row) * t.CellSize}
}

// PixelToCell возвращает клетку, содержащую пиксель
func (t *Translator) PixelToCell(p utils.Point) Cell {
	return Cell{
		Col: int(math.Floor(p.X / t.CellSize)),
		Row: int(math.Floor(p.Y / t.CellSize)),
	}
}

// PixelToCellOffset returns the offset of p from the centre of its cell as a
// fraction of the cell side. Both values lie in [-0.5, 0.5): (-0.5, -0.5) is
// the top-left corner and (0, 0) the centre.
func (t *Translator) PixelToCellOffset(p utils.Point) (float64, float64) {
	return fractionalOffset(p.X / t.CellSize), fractionalOffset(p.Y / t.CellSize)
}

func fractionalOffset(v float64) float64 {
	return v - math.Floor(v) - 0.5
}

// BorderSegments returns every grid line in pixel space. Outer borders are
// included only when includeOuter is set.
func (t *Translator) BorderSegments(includeOuter bool) []Segment {
	offset := 0
	if includeOuter {
		offset = 1
	}
	size := t.Pixels()
	segments := make([]Segment, 0, t.Cells.Col+t.Cells.Row+2)

	for col := 1 - offset; col < t.Cells.Col+offset; col++ {
		x := float64(col) * t.CellSize
		segments = append(segments, Segment{From: utils.Point{X: x}, To: utils.Point{X: x, Y: size.Y}})
	}
	for row := 1 - offset; row < t.Cells.Row+offset; row++ {
		y := float64(row) * t.CellSize
		segments = append(segments, Segment{From: utils.Point{Y: y}, To: utils.Point{X: size.X, Y: y}})
	}
	return segments
}
