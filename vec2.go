package odr

import (
	"fmt"
	"math"
)

// Vec2 is a direction or displacement in the plane of the reference line.
type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// VecFromAngle returns the unit vector at heading th. Headings are measured
// in radians anti-clockwise from the x axis, so VecFromAngle(hdg) is the
// direction of travel.
func VecFromAngle(th float64) Vec2 {
	y, x := math.Sincos(th)
	return Vec2{X: x, Y: y}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Hypot returns the length of v.
func (v Vec2) Hypot() float64 {
	return math.Hypot(v.X, v.Y)
}

// Hypot2 returns the squared length of v.
func (v Vec2) Hypot2() float64 {
	return v.Dot(v)
}

// Perp returns v rotated by π/2 anti-clockwise. For a direction of travel,
// this is the direction of positive lateral offset (to the left).
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Normalize scales v to unit length. A zero vector yields NaNs.
func (v Vec2) Normalize() Vec2 {
	return v.Mul(1 / v.Hypot())
}

func (v Vec2) Mul(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}
