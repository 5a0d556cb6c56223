package system

import (
	"github.com/yuanwang7/TowerDefenceGame/internal/component"
	"github.com/yuanwang7/TowerDefenceGame/internal/defs"
	"github.com/yuanwang7/TowerDefenceGame/internal/entity"
	"github.com/yuanwang7/TowerDefenceGame/internal/utils"
	pkgutils "github.com/yuanwang7/TowerDefenceGame/pkg/utils"
)

// barrelLength is the distance from a tower's centre to its muzzle, in tower footprints.
const barrelLength = 0.5

// pulseDirections are the four axes a pulse tower fires along.
var pulseDirections = [4]pkgutils.Point{{X: 1}, {Y: 1}, {X: -1}, {Y: -1}}

// CombatSystem управляет атакой башен
type CombatSystem struct {
	world       *entity.World
	projectiles *ProjectileSystem
}

func NewCombatSystem(world *entity.World, projectiles *ProjectileSystem) *CombatSystem {
	return &CombatSystem{world: world, projectiles: projectiles}
}

// Update steps every tower's cooldown, in placement order, and lets it attack
// each enemy in range. Enemies killed earlier in the phase are still attacked
// until the next enemy step removes them. Fired obstacles are added to the world.
func (s *CombatSystem) Update() {
	for _, tower := range s.world.TowersInOrder() {
		tower.StepCooldown()
		for _, enemy := range s.world.Enemies {
			if !tower.InRange(enemy.Position) {
				continue
			}
			for _, o := range s.Attack(tower, enemy) {
				s.world.AddObstacle(o)
			}
		}
	}
}

// Attack turns tower toward target and fires when it is on target.
func (s *CombatSystem) Attack(tower *component.Tower, target *component.Enemy) []*component.Obstacle {
	switch tower.Kind {
	case defs.TowerSimple:
		if s.aim(tower, target) {
			target.Damage(tower.Def.Attack.Damage, tower.Def.Attack.DamageType)
		}
	case defs.TowerMissile:
		if s.aim(tower, target) && tower.CooldownDone() {
			tower.StartCooldown()
			if m := s.launchMissile(tower, target); m != nil {
				return []*component.Obstacle{m}
			}
		}
	case defs.TowerPulse:
		if tower.CooldownDone() {
			tower.StartCooldown()
			return s.firePulses(tower)
		}
	}
	return nil
}

// aim rotates the tower by at most its rotation step and reports whether it now faces target.
func (s *CombatSystem) aim(tower *component.Tower, target *component.Enemy) bool {
	angle := utils.AngleBetween(tower.Position, target.Position)
	tower.Rotation = utils.RotateToward(tower.Rotation, angle, tower.Def.RotationStep)
	return tower.Rotation == angle
}

// launchMissile creates a missile at the barrel tip and gives it its first step.
// A missile that hits on that step is spent and nil is returned.
func (s *CombatSystem) launchMissile(tower *component.Tower, target *component.Enemy) *component.Obstacle {
	barrel := pkgutils.Point{X: tower.Size.X * barrelLength}.Rotate(tower.Rotation)
	missile := component.NewMissile(tower.Position.Add(barrel), tower.Rotation, target.ID, tower.Def.Attack, tower.CellSize)
	if !s.projectiles.StepObstacle(missile) {
		return nil
	}
	return missile
}

func (s *CombatSystem) firePulses(tower *component.Tower) []*component.Obstacle {
	out := make([]*component.Obstacle, 0, len(pulseDirections))
	for _, dir := range pulseDirections {
		out = append(out, component.NewPulse(tower.Position, dir, tower.Def.Attack, tower.CellSize))
	}
	return out
}
