// pkg/utils/point.go
package utils

import "math"

// Point позиция или вектор в пикселях
type Point struct {
	X, Y float64
}

// Add возвращает сумму двух точек
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub возвращает разность двух точек
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Scale multiplies both coordinates by k.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Len returns the euclidean length of p.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Normalize returns p scaled to unit length. The zero vector stays zero.
func (p Point) Normalize() Point {
	l := p.Len()
	if l == 0 {
		return Point{}
	}
	return Point{X: p.X / l, Y: p.Y / l}
}

// Rotate returns p rotated by angle radians around the origin.
func (p Point) Rotate(angle float64) Point {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return Point{X: cos*p.X - sin*p.Y, Y: sin*p.X + cos*p.Y}
}

// Distance вычисляет расстояние между точками
func Distance(a, b Point) float64 {
	return b.Sub(a).Len()
}

// Rect прямоугольник, заданный левым верхним и правым нижним углами
type Rect struct {
	Min, Max Point
}

// RectAround returns the rectangle of the given size centred on c.
func RectAround(c Point, size Point) Rect {
	half := size.Scale(0.5)
	return Rect{Min: c.Sub(half), Max: c.Add(half)}
}

// Intersects reports whether r and o overlap. Touching edges count as overlap.
func (r Rect) Intersects(o Rect) bool {
	return !(r.Min.X > o.Max.X || r.Max.X < o.Min.X || r.Min.Y > o.Max.Y || r.Max.Y < o.Min.Y)
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}
