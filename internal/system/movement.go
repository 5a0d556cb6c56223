// internal/system/movement.go
package system

import (
	"github.com/yuanwang7/TowerDefenceGame/internal/component"
	"github.com/yuanwang7/TowerDefenceGame/internal/entity"
	"github.com/yuanwang7/TowerDefenceGame/pkg/grid"
	"github.com/yuanwang7/TowerDefenceGame/pkg/utils"
)

// MovementSystem продвигает врагов по полю направлений.
type MovementSystem struct {
	world *entity.World
	grid  *grid.Translator
}

func NewMovementSystem(world *entity.World, translator *grid.Translator) *MovementSystem {
	return &MovementSystem{world: world, grid: translator}
}

// Update steps every live enemy once. Dead enemies are collected without
// moving, enemies that left the field are escaped. The survivors replace the
// world's live list.
func (s *MovementSystem) Update(path *grid.FlowField) (dead, escaped []*component.Enemy) {
	dead = []*component.Enemy{}
	remaining := make([]*component.Enemy, 0, len(s.world.Enemies))
	for _, enemy := range s.world.Enemies {
		if enemy.IsDead() {
			dead = append(dead, enemy)
			continue
		}
		if s.StepEnemy(enemy, path) {
			remaining = append(remaining, enemy)
		} else {
			escaped = append(escaped, enemy)
		}
	}
	s.world.SetEnemies(remaining)
	return dead, escaped
}

// StepEnemy moves enemy one tick along path and reports whether it is still in play.
func (s *MovementSystem) StepEnemy(enemy *component.Enemy, path *grid.FlowField) bool {
	cell := s.grid.PixelToCell(enemy.Position)
	delta, ok := path.BestDelta(cell, enemy.LastDelta)
	if !ok {
		delta = enemy.LastDelta
	}
	enemy.LastDelta = delta

	// Пока враг не дошёл до центра клетки, он сначала возвращается к нему.
	move := delta
	ox, oy := s.grid.PixelToCellOffset(enemy.Position)
	snapped := grid.Cell{Col: utils.Sign(ox), Row: utils.Sign(oy)}
	if !snapped.IsZero() && snapped != delta {
		move = snapped.Neg()
	}

	enemy.Position = enemy.Position.Add(utils.Point{
		X: float64(move.Col) * enemy.Speed,
		Y: float64(move.Row) * enemy.Speed,
	})

	board := utils.Rect{Max: s.grid.Pixels()}
	if enemy.BoundingBox().Intersects(board) {
		return true
	}
	return path.Contains(s.grid.PixelToCell(enemy.Position))
}
