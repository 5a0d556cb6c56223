// internal/defs/towers.go
package defs

import (
	"image/color"
	"math"
)

// InitialRotation is the facing of a freshly placed tower.
const InitialRotation = math.Pi / 4

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	Kind          TowerKind `json:"kind"`
	Name          string    `json:"name"`
	Footprint     Footprint `json:"footprint"`
	Range         RangeDef  `json:"range"`
	RotationStep  float64   `json:"rotation_step"`  // radians per tick, 0 if the tower does not turn
	CooldownSteps int       `json:"cooldown_steps"` // 0 disables the cooldown
	BaseCost      int       `json:"base_cost"`
	LevelCost     int       `json:"level_cost"`
	Attack        AttackDef `json:"attack"`
	Visuals       Visuals   `json:"visuals"`
}

// AttackDef describes what a tower deals when it fires.
type AttackDef struct {
	Damage     int        `json:"damage"`
	DamageType DamageType `json:"damage_type"`
	// Obstacle parameters, in cells. Zero speed means the damage is applied directly.
	Speed     float64 `json:"speed,omitempty"`
	Reach     float64 `json:"reach,omitempty"`
	Footprint float64 `json:"footprint,omitempty"`
}

// Visuals contains parameters for rendering a unit.
type Visuals struct {
	Color color.RGBA `json:"color"`
}

// Value returns the cost of a tower of this kind at the given level.
func (d TowerDefinition) Value(level int) int {
	return d.BaseCost + (level-1)*d.LevelCost
}

// TowerLibrary is a map to hold all tower definitions, keyed by their kind.
var TowerLibrary = map[TowerKind]TowerDefinition{
	TowerSimple: {
		Kind:         TowerSimple,
		Name:         "Simple",
		Footprint:    Footprint{W: 0.9, H: 0.9},
		Range:        RangeDef{Shape: RangeCircle, Outer: 1.5},
		RotationStep: math.Pi / 6,
		BaseCost:     20,
		LevelCost:    15,
		Attack:       AttackDef{Damage: 1, DamageType: DamageProjectile},
		Visuals:      Visuals{Color: color.RGBA{199, 21, 133, 255}},
	},
	TowerMissile: {
		Kind:          TowerMissile,
		Name:          "Missile",
		Footprint:     Footprint{W: 0.9, H: 0.9},
		Range:         RangeDef{Shape: RangeDonut, Inner: 1.5, Outer: 4.5},
		RotationStep:  math.Pi / 3,
		CooldownSteps: 10,
		BaseCost:      80,
		LevelCost:     60,
		Attack:        AttackDef{Damage: 150, DamageType: DamageExplosive, Speed: 0.3, Footprint: 0.2},
		Visuals:       Visuals{Color: color.RGBA{255, 250, 250, 255}},
	},
	TowerPulse: {
		Kind:          TowerPulse,
		Name:          "Pulse",
		Footprint:     Footprint{W: 0.9, H: 0.9},
		Range:         RangeDef{Shape: RangePlus, Inner: 0.5, Outer: 2.5},
		CooldownSteps: 20,
		BaseCost:      60,
		LevelCost:     45,
		Attack:        AttackDef{Damage: 25, DamageType: DamageEnergy, Speed: 0.25, Reach: 2.5, Footprint: 0.3},
		Visuals:       Visuals{Color: color.RGBA{98, 17, 86, 255}},
	},
}

// Tower returns the definition for kind.
func Tower(kind TowerKind) (TowerDefinition, bool) {
	def, ok := TowerLibrary[kind]
	return def, ok
}
