// internal/component/enemy.go
package component

import (
	"image/color"

	"github.com/yuanwang7/TowerDefenceGame/internal/defs"
	"github.com/yuanwang7/TowerDefenceGame/internal/types"
	"github.com/yuanwang7/TowerDefenceGame/pkg/grid"
	"github.com/yuanwang7/TowerDefenceGame/pkg/utils"
)

// Enemy представляет вражескую сущность.
type Enemy struct {
	ID        types.EntityID // Присваивается миром при появлении
	Kind      defs.EnemyKind
	Position  utils.Point // Центр в пикселях
	Size      utils.Point // Ширина и высота в пикселях
	Health    int
	MaxHealth int
	Speed     float64 // Пикселей за логический тик
	Points    int
	Color     color.RGBA
	LastDelta grid.Cell // Последний использованный шаг, (0, 0) до первого шага
}

// NewEnemy creates an enemy from its definition, sized for the given cell size.
func NewEnemy(def defs.EnemyDefinition, cellSize float64) *Enemy {
	return &Enemy{
		Kind:      def.Kind,
		Size:      utils.Point{X: def.Footprint.W * cellSize, Y: def.Footprint.H * cellSize},
		Health:    def.Health,
		MaxHealth: def.Health,
		Speed:     def.Speed,
		Points:    def.Points,
		Color:     def.Visuals.Color,
	}
}

// IsDead reports whether the enemy has no health left.
func (e *Enemy) IsDead() bool {
	return e.Health <= 0
}

// HealthRatio returns health as a fraction of maximum health.
func (e *Enemy) HealthRatio() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	return float64(e.Health) / float64(e.MaxHealth)
}

// BoundingBox returns the pixel rectangle covered by the enemy.
func (e *Enemy) BoundingBox() utils.Rect {
	return utils.RectAround(e.Position, e.Size)
}

// Damage applies damage of the given type according to the enemy kind.
func (e *Enemy) Damage(amount int, damageType defs.DamageType) {
	switch e.Kind {
	case defs.EnemyInvincible:
		return
	case defs.EnemyArmored:
		if damageType == defs.DamageProjectile {
			return
		}
	}
	e.Health -= amount
	if e.Health < 0 {
		e.Health = 0
	}
}
