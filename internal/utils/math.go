// internal/utils/math.go
package utils

import (
	"math"

	"github.com/yuanwang7/TowerDefenceGame/pkg/utils"
)

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// AngularDifference returns the smallest signed angle that turns from into to, in [-π, π).
func AngularDifference(from, to float64) float64 {
	delta := math.Mod(to-from+math.Pi, 2*math.Pi)
	if delta < 0 {
		delta += 2 * math.Pi
	}
	return delta - math.Pi
}

// AngleBetween возвращает угол направления от a к b
func AngleBetween(a, b utils.Point) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// RotateToward turns angle toward target by at most maxRotation. When the
// target is within reach it is returned unchanged, so callers may compare
// the result with target using ==.
func RotateToward(angle, target, maxRotation float64) float64 {
	delta := AngularDifference(angle, target)
	if math.Abs(delta) <= maxRotation {
		return target
	}
	if delta > 0 {
		return NormalizeAngle(angle + maxRotation)
	}
	return NormalizeAngle(angle - maxRotation)
}
