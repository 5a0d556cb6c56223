// internal/defs/enemies.go
package defs

import "image/color"

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	Kind      EnemyKind `json:"kind"`
	Name      string    `json:"name"`
	Health    int       `json:"health"`
	Speed     float64   `json:"speed"` // pixels per logic tick
	Points    int       `json:"points"`
	Footprint Footprint `json:"footprint"`
	Visuals   Visuals   `json:"visuals"`
}

// EnemyLibrary is the library of all enemy definitions, mapped by kind.
var EnemyLibrary = map[EnemyKind]EnemyDefinition{
	EnemySimple: {
		Kind:      EnemySimple,
		Name:      "Simple",
		Health:    100,
		Speed:     5,
		Points:    5,
		Footprint: Footprint{W: 0.25, H: 0.25},
		Visuals:   Visuals{Color: color.RGBA{205, 92, 92, 255}},
	},
	EnemyArmored: {
		Kind:      EnemyArmored,
		Name:      "Steel",
		Health:    250,
		Speed:     5,
		Points:    100,
		Footprint: Footprint{W: 0.25, H: 0.25},
		Visuals:   Visuals{Color: color.RGBA{135, 206, 250, 255}},
	},
	EnemyInvincible: {
		Kind:      EnemyInvincible,
		Name:      "Invincible",
		Health:    100,
		Speed:     5,
		Points:    5,
		Footprint: Footprint{W: 0.25, H: 0.25},
		Visuals:   Visuals{Color: color.RGBA{112, 128, 144, 255}},
	},
}

// Enemy returns the definition for kind.
func Enemy(kind EnemyKind) (EnemyDefinition, bool) {
	def, ok := EnemyLibrary[kind]
	return def, ok
}
