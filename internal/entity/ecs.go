// internal/entity/ecs.go
package entity

import (
	"github.com/yuanwang7/TowerDefenceGame/internal/component"
	"github.com/yuanwang7/TowerDefenceGame/internal/types"
	"github.com/yuanwang7/TowerDefenceGame/pkg/grid"
)

// World хранит все сущности поля: башни, живых врагов и снаряды.
type World struct {
	NextID     types.EntityID
	Towers     map[grid.Cell]*component.Tower
	towerOrder []grid.Cell // Порядок установки башен
	Enemies    []*component.Enemy
	enemyIndex map[types.EntityID]*component.Enemy
	Obstacles  []*component.Obstacle
}

func NewWorld() *World {
	return &World{
		NextID:     1,
		Towers:     make(map[grid.Cell]*component.Tower),
		enemyIndex: make(map[types.EntityID]*component.Enemy),
	}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// AddTower stores t at its cell. The caller guarantees the cell is free.
func (w *World) AddTower(t *component.Tower) {
	w.Towers[t.Cell] = t
	w.towerOrder = append(w.towerOrder, t.Cell)
}

// RemoveTower removes and returns the tower at cell, or nil.
func (w *World) RemoveTower(cell grid.Cell) *component.Tower {
	t, ok := w.Towers[cell]
	if !ok {
		return nil
	}
	delete(w.Towers, cell)
	for i, c := range w.towerOrder {
		if c == cell {
			w.towerOrder = append(w.towerOrder[:i], w.towerOrder[i+1:]...)
			break
		}
	}
	return t
}

// TowersInOrder returns the towers in the order they were placed.
func (w *World) TowersInOrder() []*component.Tower {
	out := make([]*component.Tower, 0, len(w.towerOrder))
	for _, c := range w.towerOrder {
		out = append(out, w.Towers[c])
	}
	return out
}

// TowerCells returns the occupied cells.
func (w *World) TowerCells() []grid.Cell {
	out := make([]grid.Cell, len(w.towerOrder))
	copy(out, w.towerOrder)
	return out
}

// AddEnemy assigns e an id and makes it live.
func (w *World) AddEnemy(e *component.Enemy) {
	e.ID = w.NewEntity()
	w.Enemies = append(w.Enemies, e)
	w.enemyIndex[e.ID] = e
}

// SetEnemies replaces the live enemies, e.g. with the survivors of a tick.
func (w *World) SetEnemies(enemies []*component.Enemy) {
	w.Enemies = enemies
	w.enemyIndex = make(map[types.EntityID]*component.Enemy, len(enemies))
	for _, e := range enemies {
		w.enemyIndex[e.ID] = e
	}
}

// LiveEnemy resolves an enemy handle. Removed and dead enemies are not live.
func (w *World) LiveEnemy(id types.EntityID) (*component.Enemy, bool) {
	e, ok := w.enemyIndex[id]
	if !ok || e.IsDead() {
		return nil, false
	}
	return e, true
}

// AddObstacle assigns o an id and stores it.
func (w *World) AddObstacle(o *component.Obstacle) {
	o.ID = w.NewEntity()
	w.Obstacles = append(w.Obstacles, o)
}

// ClearEnemies drops every live enemy.
func (w *World) ClearEnemies() {
	w.SetEnemies(nil)
}

// Clear drops every entity. Ids keep counting up.
func (w *World) Clear() {
	w.Towers = make(map[grid.Cell]*component.Tower)
	w.towerOrder = nil
	w.ClearEnemies()
	w.Obstacles = nil
}
