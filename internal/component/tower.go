// component/tower.go
package component

import (
	"github.com/yuanwang7/TowerDefenceGame/internal/defs"
	"github.com/yuanwang7/TowerDefenceGame/pkg/grid"
	"github.com/yuanwang7/TowerDefenceGame/pkg/utils"
)

type Tower struct {
	Kind     defs.TowerKind
	Cell     grid.Cell   // Клетка, на которой стоит башня
	Position utils.Point // Центр клетки в пикселях
	Size     utils.Point
	CellSize float64
	Rotation float64 // Направление ствола в радианах
	Cooldown *Countdown
	Level    int
	Def      defs.TowerDefinition
}

// NewTower places a level 1 tower of the given definition at the centre of cell.
func NewTower(def defs.TowerDefinition, cell grid.Cell, center utils.Point, cellSize float64) *Tower {
	t := &Tower{
		Kind:     def.Kind,
		Cell:     cell,
		Position: center,
		Size:     utils.Point{X: def.Footprint.W * cellSize, Y: def.Footprint.H * cellSize},
		CellSize: cellSize,
		Rotation: defs.InitialRotation,
		Level:    1,
		Def:      def,
	}
	if def.CooldownSteps != 0 {
		t.Cooldown = NewCountdown(def.CooldownSteps)
	}
	return t
}

// Value returns what the tower is worth at its current level.
func (t *Tower) Value() int {
	return t.Def.Value(t.Level)
}

// InRange reports whether the pixel position p lies within the tower's range.
func (t *Tower) InRange(p utils.Point) bool {
	d := p.Sub(t.Position)
	return t.Def.Range.Contains(utils.Point{X: d.X / t.CellSize, Y: d.Y / t.CellSize})
}

// CooldownDone reports whether the tower may fire. Towers without a cooldown always may.
func (t *Tower) CooldownDone() bool {
	return t.Cooldown == nil || t.Cooldown.IsDone()
}

// StepCooldown advances the cooldown by one tick.
func (t *Tower) StepCooldown() {
	if t.Cooldown != nil {
		t.Cooldown.Step()
	}
}

// StartCooldown restarts the cooldown after firing.
func (t *Tower) StartCooldown() {
	if t.Cooldown != nil {
		t.Cooldown.Start()
	}
}

// BoundingBox returns the pixel rectangle covered by the tower.
func (t *Tower) BoundingBox() utils.Rect {
	return utils.RectAround(t.Position, t.Size)
}
