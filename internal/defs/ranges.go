// internal/defs/ranges.go
package defs

import "github.com/yuanwang7/TowerDefenceGame/pkg/utils"

// RangeShape defines the area a tower covers.
type RangeShape string

const (
	RangeCircle RangeShape = "CIRCLE"
	RangeDonut  RangeShape = "DONUT"
	RangePlus   RangeShape = "PLUS"
)

// RangeDef is evaluated in the tower's own frame, measured in cells.
//
// For a plus, Inner is the half-width of each bar and Outer its half-length:
//
//	   ----
//	---|  |---
//	|        |
//	---|  |---
//	   ----
type RangeDef struct {
	Shape RangeShape `json:"shape"`
	Inner float64    `json:"inner,omitempty"`
	Outer float64    `json:"outer"` // радиус для круга
}

// Contains reports whether p, relative to the tower centre, lies in the range.
func (r RangeDef) Contains(p utils.Point) bool {
	switch r.Shape {
	case RangeCircle:
		return p.Len() <= r.Outer
	case RangeDonut:
		l := p.Len()
		return r.Inner <= l && l <= r.Outer
	case RangePlus:
		in, out := r.Inner, r.Outer
		return (-in < p.X && p.X < in && -out < p.Y && p.Y < out) ||
			(-out < p.X && p.X < out && -in < p.Y && p.Y < in)
	}
	return false
}
