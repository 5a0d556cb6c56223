// internal/system/projectile.go
package system

import (
	"math"

	"github.com/yuanwang7/TowerDefenceGame/internal/component"
	"github.com/yuanwang7/TowerDefenceGame/internal/entity"
	"github.com/yuanwang7/TowerDefenceGame/internal/utils"
	pkgutils "github.com/yuanwang7/TowerDefenceGame/pkg/utils"
)

// missileTurn is how far a missile's facing may turn per tick.
const missileTurn = math.Pi / 3

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	world *entity.World
}

func NewProjectileSystem(world *entity.World) *ProjectileSystem {
	return &ProjectileSystem{world: world}
}

// Update steps every obstacle and drops the ones that are done.
func (s *ProjectileSystem) Update() {
	remaining := s.world.Obstacles[:0]
	for _, o := range s.world.Obstacles {
		if s.StepObstacle(o) {
			remaining = append(remaining, o)
		}
	}
	for i := len(remaining); i < len(s.world.Obstacles); i++ {
		s.world.Obstacles[i] = nil
	}
	s.world.Obstacles = remaining
}

// StepObstacle advances o one tick and reports whether it is still in flight.
func (s *ProjectileSystem) StepObstacle(o *component.Obstacle) bool {
	switch o.Kind {
	case component.ObstacleMissile:
		return s.stepMissile(o)
	case component.ObstaclePulse:
		return s.stepPulse(o)
	}
	return false
}

func (s *ProjectileSystem) stepMissile(m *component.Obstacle) bool {
	target, ok := s.world.LiveEnemy(m.TargetID)
	if !ok {
		// Цель пропала, снаряд самоуничтожается
		return false
	}

	angle := utils.AngleBetween(m.Position, target.Position)
	if pkgutils.Distance(m.Position, target.Position) <= m.Speed {
		m.Rotation = angle
		m.Position = target.Position
		target.Damage(m.Damage, m.DamageType)
		return false
	}

	m.Rotation = utils.RotateToward(m.Rotation, angle, missileTurn)
	direction := target.Position.Sub(m.Position).Normalize()
	m.Position = m.Position.Add(direction.Scale(m.Speed))
	return true
}

func (s *ProjectileSystem) stepPulse(p *component.Obstacle) bool {
	if p.Remaining <= 0 {
		return false
	}
	travel := math.Min(p.Speed, p.Remaining)
	p.Position = p.Position.Add(p.Direction.Scale(travel))
	p.Remaining -= travel

	box := p.BoundingBox()
	for _, enemy := range s.world.Enemies {
		if enemy.IsDead() || p.Hit[enemy.ID] {
			continue
		}
		if box.Intersects(enemy.BoundingBox()) {
			p.Hit[enemy.ID] = true
			enemy.Damage(p.Damage, p.DamageType)
		}
	}
	return p.Remaining > 0
}
