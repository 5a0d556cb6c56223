package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/yuanwang7/TowerDefenceGame/internal/component"
	"github.com/yuanwang7/TowerDefenceGame/internal/utils"
	"github.com/yuanwang7/TowerDefenceGame/pkg/grid"
	pkgutils "github.com/yuanwang7/TowerDefenceGame/pkg/utils"
)

// BoardRenderer рисует поле и всё, что на нём находится.
type BoardRenderer struct {
	grid   *grid.Translator
	colors *BoardColors
	border []grid.Segment
}

func NewBoardRenderer(translator *grid.Translator, colors *BoardColors) *BoardRenderer {
	return &BoardRenderer{
		grid:   translator,
		colors: colors,
		border: translator.BorderSegments(true),
	}
}

// DrawBoard рисует фон, сетку и клетки входа и выхода.
func (r *BoardRenderer) DrawBoard(screen *ebiten.Image, path *grid.FlowField) {
	screen.Fill(r.colors.BackgroundColor)
	for _, s := range r.border {
		x0, y0 := utils.BoardToScreen(s.From)
		x1, y1 := utils.BoardToScreen(s.To)
		vector.StrokeLine(screen, x0, y0, x1, y1, r.colors.StrokeWidth, r.colors.BorderColor, false)
	}
	r.fillCell(screen, path.Start(), r.colors.EntryColor)
	r.fillCell(screen, path.End(), r.colors.ExitColor)
}

// DrawPath рисует линию через центры клеток маршрута.
func (r *BoardRenderer) DrawPath(screen *ebiten.Image, path *grid.FlowField) {
	cells := path.CanonicalPath()
	for i := 1; i < len(cells); i++ {
		x0, y0 := utils.BoardToScreen(r.grid.CellToPixelCenter(cells[i-1]))
		x1, y1 := utils.BoardToScreen(r.grid.CellToPixelCenter(cells[i]))
		vector.StrokeLine(screen, x0, y0, x1, y1, 3, r.colors.PathColor, true)
	}
}

// DrawPreview подсвечивает клетку под курсором.
func (r *BoardRenderer) DrawPreview(screen *ebiten.Image, cell grid.Cell, legal bool) {
	if !r.grid.IsCellValid(cell) {
		return
	}
	clr := r.colors.IllegalColor
	if legal {
		clr = r.colors.LegalColor
	}
	r.fillCell(screen, cell, clr)
}

func (r *BoardRenderer) DrawTowers(screen *ebiten.Image, towers map[grid.Cell]component.Tower) {
	for _, t := range towers {
		box := t.BoundingBox()
		x, y := utils.BoardToScreen(box.Min)
		w, h := float32(t.Size.X), float32(t.Size.Y)
		vector.DrawFilledRect(screen, x, y, w, h, t.Def.Visuals.Color, false)
		vector.StrokeRect(screen, x, y, w, h, r.colors.StrokeWidth, DarkenColor(t.Def.Visuals.Color), false)

		// Ствол
		cx, cy := utils.BoardToScreen(t.Position)
		tip := t.Position.Add(pkgutils.Point{X: t.Size.X / 2}.Rotate(t.Rotation))
		tx, ty := utils.BoardToScreen(tip)
		vector.StrokeLine(screen, cx, cy, tx, ty, 3, DarkenColor(t.Def.Visuals.Color), true)
	}
}

func (r *BoardRenderer) DrawEnemies(screen *ebiten.Image, enemies []component.Enemy) {
	for _, e := range enemies {
		box := e.BoundingBox()
		x, y := utils.BoardToScreen(box.Min)
		w, h := float32(e.Size.X), float32(e.Size.Y)
		vector.DrawFilledRect(screen, x, y, w, h, e.Color, false)

		// Полоска здоровья над врагом
		barY := y - r.colors.HealthBarHeight - 1
		vector.DrawFilledRect(screen, x, barY, w, r.colors.HealthBarHeight, r.colors.HealthLostColor, false)
		vector.DrawFilledRect(screen, x, barY, w*float32(e.HealthRatio()), r.colors.HealthBarHeight, r.colors.HealthColor, false)
	}
}

func (r *BoardRenderer) DrawObstacles(screen *ebiten.Image, obstacles []component.Obstacle) {
	for _, o := range obstacles {
		switch o.Kind {
		case component.ObstacleMissile:
			// Ракета рисуется отрезком вдоль направления полёта
			half := pkgutils.Point{X: math.Max(o.Size.X, 4) / 2}.Rotate(o.Rotation)
			x0, y0 := utils.BoardToScreen(o.Position.Sub(half))
			x1, y1 := utils.BoardToScreen(o.Position.Add(half))
			vector.StrokeLine(screen, x0, y0, x1, y1, 3, r.colors.ObstacleColor, true)
		case component.ObstaclePulse:
			cx, cy := utils.BoardToScreen(o.Position)
			vector.DrawFilledCircle(screen, cx, cy, float32(o.Size.X/2), r.colors.PulseColor, true)
		}
	}
}

func (r *BoardRenderer) fillCell(screen *ebiten.Image, cell grid.Cell, clr color.RGBA) {
	x, y := utils.BoardToScreen(r.grid.CellToPixelCorner(cell))
	size := float32(r.grid.CellSize)
	vector.DrawFilledRect(screen, x, y, size, size, clr, false)
}
