package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuanwang7/TowerDefenceGame/pkg/utils"
)

func TestTranslatorCellPixelConversion(t *testing.T) {
	tr := NewTranslator(6, 6, 60)

	assert.Equal(t, utils.Point{X: 360, Y: 360}, tr.Pixels())
	assert.Equal(t, utils.Point{X: 30, Y: 90}, tr.CellToPixelCenter(Cell{Col: 0, Row: 1}))
	assert.Equal(t, utils.Point{X: -30, Y: 90}, tr.CellToPixelCenter(Cell{Col: -1, Row: 1}))
	assert.Equal(t, utils.Point{X: 120, Y: 60}, tr.CellToPixelCorner(Cell{Col: 2, Row: 1}))

	tests := []struct {
		name  string
		pixel utils.Point
		want  Cell
	}{
		{"origin", utils.Point{X: 0, Y: 0}, Cell{Col: 0, Row: 0}},
		{"inside", utils.Point{X: 119.9, Y: 61}, Cell{Col: 1, Row: 1}},
		{"edge belongs to next cell", utils.Point{X: 120, Y: 120}, Cell{Col: 2, Row: 2}},
		{"negative floors down", utils.Point{X: -30, Y: 90}, Cell{Col: -1, Row: 1}},
		{"just left of zero", utils.Point{X: -0.1, Y: 10}, Cell{Col: -1, Row: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.PixelToCell(tt.pixel))
		})
	}
}

func TestTranslatorPixelToCellOffset(t *testing.T) {
	tr := NewTranslator(6, 6, 60)

	tests := []struct {
		name   string
		pixel  utils.Point
		fx, fy float64
	}{
		{"centre", utils.Point{X: 30, Y: 90}, 0, 0},
		{"top-left corner", utils.Point{X: 60, Y: 60}, -0.5, -0.5},
		{"quarter left, near bottom", utils.Point{X: 15, Y: 54}, -0.25, 0.4},
		{"sentinel centre", utils.Point{X: -30, Y: 30}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx, fy := tr.PixelToCellOffset(tt.pixel)
			assert.InDelta(t, tt.fx, fx, 1e-9)
			assert.InDelta(t, tt.fy, fy, 1e-9)
			assert.GreaterOrEqual(t, fx, -0.5)
			assert.Less(t, fx, 0.5)
		})
	}
}

func TestTranslatorValidateCell(t *testing.T) {
	tr := NewTranslator(3, 2, 10)

	assert.True(t, tr.IsCellValid(Cell{Col: 2, Row: 1}))
	assert.False(t, tr.IsCellValid(Cell{Col: 3, Row: 1}))
	assert.False(t, tr.IsCellValid(Cell{Col: -1, Row: 0}))

	require.NoError(t, tr.ValidateCell(Cell{Col: 0, Row: 0}))
	assert.ErrorIs(t, tr.ValidateCell(Cell{Col: 0, Row: 2}), ErrInvalidCell)
}

func TestTranslatorBorderSegments(t *testing.T) {
	tr := NewTranslator(3, 2, 10)

	inner := tr.BorderSegments(false)
	require.Len(t, inner, 2+1)
	assert.Equal(t, Segment{From: utils.Point{X: 10}, To: utils.Point{X: 10, Y: 20}}, inner[0])
	assert.Equal(t, Segment{From: utils.Point{Y: 10}, To: utils.Point{X: 30, Y: 10}}, inner[2])

	outer := tr.BorderSegments(true)
	require.Len(t, outer, 4+3)
	assert.Equal(t, Segment{From: utils.Point{}, To: utils.Point{X: 0, Y: 20}}, outer[0])
	assert.Equal(t, Segment{From: utils.Point{X: 30}, To: utils.Point{X: 30, Y: 20}}, outer[3])
	assert.Equal(t, Segment{From: utils.Point{Y: 20}, To: utils.Point{X: 30, Y: 20}}, outer[6])
}
