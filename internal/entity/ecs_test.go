package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuanwang7/TowerDefenceGame/internal/component"
	"github.com/yuanwang7/TowerDefenceGame/pkg/grid"
)

func TestWorldTowersKeepPlacementOrder(t *testing.T) {
	w := NewWorld()
	cells := []grid.Cell{{Col: 2, Row: 0}, {Col: 0, Row: 1}, {Col: 1, Row: 3}}
	for _, c := range cells {
		w.AddTower(&component.Tower{Cell: c})
	}

	removed := w.RemoveTower(cells[1])
	require.NotNil(t, removed)
	assert.Equal(t, cells[1], removed.Cell)
	assert.Nil(t, w.RemoveTower(cells[1]))

	var order []grid.Cell
	for _, tower := range w.TowersInOrder() {
		order = append(order, tower.Cell)
	}
	assert.Equal(t, []grid.Cell{cells[0], cells[2]}, order)
	assert.Equal(t, order, w.TowerCells())
}

func TestWorldLiveEnemy(t *testing.T) {
	w := NewWorld()
	a := &component.Enemy{Health: 10, MaxHealth: 10}
	b := &component.Enemy{Health: 10, MaxHealth: 10}
	w.AddEnemy(a)
	w.AddEnemy(b)
	require.NotEqual(t, a.ID, b.ID)

	got, ok := w.LiveEnemy(a.ID)
	require.True(t, ok)
	assert.Same(t, a, got)

	a.Health = 0
	_, ok = w.LiveEnemy(a.ID)
	assert.False(t, ok, "dead enemies are not live")

	w.SetEnemies([]*component.Enemy{a})
	_, ok = w.LiveEnemy(b.ID)
	assert.False(t, ok, "removed enemies are not live")
}

func TestWorldClear(t *testing.T) {
	w := NewWorld()
	w.AddTower(&component.Tower{Cell: grid.Cell{}})
	w.AddEnemy(&component.Enemy{Health: 1})
	w.AddObstacle(&component.Obstacle{})
	last := w.NextID

	w.Clear()
	assert.Empty(t, w.Towers)
	assert.Empty(t, w.TowersInOrder())
	assert.Empty(t, w.Enemies)
	assert.Empty(t, w.Obstacles)
	assert.Equal(t, last, w.NewEntity(), "ids are never reused")
}
