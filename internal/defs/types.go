// internal/defs/types.go
package defs

// DamageType defines the type of damage dealt.
type DamageType string

const (
	DamageProjectile DamageType = "PROJECTILE"
	DamageExplosive  DamageType = "EXPLOSIVE"
	DamageEnergy     DamageType = "ENERGY"
)

// EnemyKind выбирает правило получения урона врагом.
type EnemyKind string

const (
	EnemySimple     EnemyKind = "SIMPLE"
	EnemyArmored    EnemyKind = "ARMORED"    // не получает урон от снарядов
	EnemyInvincible EnemyKind = "INVINCIBLE" // не получает урон вообще
)

// TowerKind defines how a tower attacks.
type TowerKind string

const (
	TowerSimple  TowerKind = "SIMPLE"
	TowerMissile TowerKind = "MISSILE"
	TowerPulse   TowerKind = "PULSE"
)

// Footprint is a size expressed in cells.
type Footprint struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}
