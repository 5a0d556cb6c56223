// internal/component/projectile.go
package component

import (
	"math"

	"github.com/yuanwang7/TowerDefenceGame/internal/defs"
	"github.com/yuanwang7/TowerDefenceGame/internal/types"
	"github.com/yuanwang7/TowerDefenceGame/pkg/utils"
)

// ObstacleKind selects how an obstacle moves and hits.
type ObstacleKind int

const (
	ObstacleMissile ObstacleKind = iota // летит к одной цели
	ObstaclePulse                       // летит по прямой и задевает всех на пути
)

// Obstacle снаряд, выпущенный башней.
type Obstacle struct {
	ID         types.EntityID
	Kind       ObstacleKind
	Position   utils.Point
	Size       utils.Point
	Rotation   float64
	Speed      float64 // Пикселей за логический тик
	Damage     int
	DamageType defs.DamageType

	// Missile
	TargetID types.EntityID

	// Pulse
	Direction utils.Point // Единичный вектор движения
	Remaining float64     // Оставшаяся дистанция в пикселях
	Hit       map[types.EntityID]bool
}

// NewMissile creates a missile aimed at target. speed is in pixels per tick.
func NewMissile(origin utils.Point, rotation float64, target types.EntityID, attack defs.AttackDef, cellSize float64) *Obstacle {
	return &Obstacle{
		Kind:       ObstacleMissile,
		Position:   origin,
		Size:       utils.Point{X: attack.Footprint * cellSize},
		Rotation:   rotation,
		Speed:      attack.Speed * cellSize,
		Damage:     attack.Damage,
		DamageType: attack.DamageType,
		TargetID:   target,
	}
}

// NewPulse creates a pulse travelling from origin along direction.
func NewPulse(origin, direction utils.Point, attack defs.AttackDef, cellSize float64) *Obstacle {
	side := attack.Footprint * cellSize
	return &Obstacle{
		Kind:       ObstaclePulse,
		Position:   origin,
		Size:       utils.Point{X: side, Y: side},
		Rotation:   math.Atan2(direction.Y, direction.X),
		Speed:      attack.Speed * cellSize,
		Damage:     attack.Damage,
		DamageType: attack.DamageType,
		Direction:  direction,
		Remaining:  attack.Reach * cellSize,
		Hit:        make(map[types.EntityID]bool),
	}
}

// BoundingBox returns the pixel rectangle covered by the obstacle.
func (o *Obstacle) BoundingBox() utils.Rect {
	return utils.RectAround(o.Position, o.Size)
}
