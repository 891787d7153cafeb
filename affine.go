package odr

import (
	"math"
)

// Affine is a 2D affine transform with coefficients (a, b, c, d, e, f),
// standing for the augmented matrix
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// Every segment of a reference line is described in a local frame whose
// origin is the segment's start point and whose x axis points along the start
// heading. [Header.Frame] returns the transform from that frame into the
// plane.
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Rotate returns a rotation by th radians, turning the positive x axis
// towards the positive y axis.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// Pose returns the frame of a segment that starts at origin with heading hdg.
func Pose(origin Point, hdg float64) Affine {
	return Rotate(hdg).ThenTranslate(Vec(origin.X, origin.Y))
}

// ThenTranslate returns aff followed by a translation by v.
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

// Linear applies only the linear part of aff to v. Tangents transform this
// way.
func (aff Affine) Linear(v Vec2) Vec2 {
	return Vec2{
		X: aff.N0*v.X + aff.N2*v.Y,
		Y: aff.N1*v.X + aff.N3*v.Y,
	}
}

func (aff Affine) Determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// Invert returns the inverse transform. Segment frames are rigid motions and
// always invertible; a singular transform yields NaNs.
func (aff Affine) Invert() Affine {
	inv := 1 / aff.Determinant()
	return Affine{
		inv * aff.N3,
		-inv * aff.N1,
		-inv * aff.N2,
		inv * aff.N0,
		inv * (aff.N2*aff.N5 - aff.N3*aff.N4),
		inv * (aff.N1*aff.N4 - aff.N0*aff.N5),
	}
}
