package odr

import "math"

// Arc is a segment of constant curvature. Positive curvature turns left.
type Arc struct {
	Header
	Curvature float64
}

func (a Arc) Seg() Segment {
	return Segment{Kind: ArcKind, Header: a.Header, K0: a.Curvature, K1: a.Curvature}
}

func (a Arc) isStraight() bool {
	return math.Abs(a.Curvature) < straightCurvature
}

func (a Arc) heading(s float64) float64 {
	return a.Hdg0 + a.Curvature*(s-a.S0)
}

// Center returns the center of the arc's circle. It is infinite for
// straight arcs.
func (a Arc) Center() Point {
	r := 1 / a.Curvature
	return a.Start().Translate(VecFromAngle(a.Hdg0).Perp().Mul(r))
}

func (a Arc) Point(s, t float64) Point {
	if a.isStraight() {
		return Line{a.Header}.Point(s, t)
	}
	r := 1 / a.Curvature
	n := VecFromAngle(a.heading(s)).Perp()
	return a.Center().Translate(n.Mul(t - r))
}

func (a Arc) Grad(s float64) Vec2 {
	return VecFromAngle(a.heading(s))
}

func (a Arc) BoundingBox() Rect {
	return headingBoundingBox(a.Header, a.Curvature, 0, func(s float64) Point {
		return a.Point(s, 0)
	})
}

// Project returns the arc length of the point on the arc closest to pt. This
// is exact. If pt is the center of the circle, every point is equally close
// and the start is returned.
func (a Arc) Project(pt Point) float64 {
	if a.isStraight() {
		return Line{a.Header}.Project(pt)
	}
	d := pt.Sub(a.Center())
	if d.Hypot2() == 0 {
		return a.S0
	}
	// The direction from the center to the point at heading θ is
	// sign(k)·(sin θ, −cos θ).
	sgn := math.Copysign(1, a.Curvature)
	th := math.Atan2(sgn*d.X, -sgn*d.Y)
	circumference := 2 * math.Pi / math.Abs(a.Curvature)
	u := math.Mod((th-a.Hdg0)/a.Curvature, circumference)
	if u < 0 {
		u += circumference
	}
	if u <= a.Length {
		return a.S0 + u
	}
	d0 := pt.DistanceSquared(a.Point(a.S0, 0))
	d1 := pt.DistanceSquared(a.Point(a.End(), 0))
	if d1 < d0 {
		return a.End()
	}
	return a.S0
}
