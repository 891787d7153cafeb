package odr

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// Spiral is a clothoid: a segment whose curvature changes linearly from
// CurvStart at S0 to CurvEnd at S0+Length.
//
// Positions are the generalized Fresnel integrals
//
//	x(u) = ∫₀ᵘ cos θ(τ) dτ,  y(u) = ∫₀ᵘ sin θ(τ) dτ,  θ(τ) = k₀·τ + ½·ċ·τ²
//
// in the segment's local frame, evaluated with Gauss–Legendre quadrature.
type Spiral struct {
	Header
	CurvStart float64
	CurvEnd   float64
}

const (
	// spiralNodes is the number of Gauss–Legendre nodes per integration piece.
	spiralNodes = 16
	// spiralPieceTurn is the largest change of heading, in radians, within
	// one integration piece.
	spiralPieceTurn = math.Pi / 8
)

func (sp Spiral) Seg() Segment {
	return Segment{Kind: SpiralKind, Header: sp.Header, K0: sp.CurvStart, K1: sp.CurvEnd}
}

// CDot returns the rate of change of curvature with arc length.
func (sp Spiral) CDot() float64 {
	return (sp.CurvEnd - sp.CurvStart) / sp.Length
}

// isArc reports whether the curvature is constant for numeric purposes, in
// which case the spiral is evaluated as an arc.
func (sp Spiral) isArc() bool {
	return math.Abs(sp.CDot()) < straightCurvature
}

func (sp Spiral) arc() Arc {
	return Arc{sp.Header, sp.CurvStart}
}

// localHeading returns the heading at distance u from the start, relative to
// Hdg0.
func (sp Spiral) localHeading(u float64) float64 {
	return sp.CurvStart*u + 0.5*sp.CDot()*u*u
}

// local returns the point at distance u from the start in the segment's
// local frame.
func (sp Spiral) local(u float64) Point {
	if u == 0 {
		return Point{}
	}
	turn := math.Abs(sp.CurvStart)*math.Abs(u) + 0.5*math.Abs(sp.CDot())*u*u
	pieces := 1 + int(turn/spiralPieceTurn)
	cos := func(x float64) float64 { return math.Cos(sp.localHeading(x)) }
	sin := func(x float64) float64 { return math.Sin(sp.localHeading(x)) }
	var pt Point
	step := u / float64(pieces)
	for i := range pieces {
		a := float64(i) * step
		b := a + step
		if i == pieces-1 {
			b = u
		}
		if b < a {
			a, b = b, a
			pt.X -= quad.Fixed(cos, a, b, spiralNodes, quad.Legendre{}, 0)
			pt.Y -= quad.Fixed(sin, a, b, spiralNodes, quad.Legendre{}, 0)
			continue
		}
		pt.X += quad.Fixed(cos, a, b, spiralNodes, quad.Legendre{}, 0)
		pt.Y += quad.Fixed(sin, a, b, spiralNodes, quad.Legendre{}, 0)
	}
	return pt
}

func (sp Spiral) Point(s, t float64) Point {
	if sp.isArc() {
		return sp.arc().Point(s, t)
	}
	u := s - sp.S0
	pt := sp.local(u).Transform(sp.Frame())
	return pt.Translate(sp.Grad(s).Perp().Mul(t))
}

func (sp Spiral) Grad(s float64) Vec2 {
	if sp.isArc() {
		return sp.arc().Grad(s)
	}
	return VecFromAngle(sp.Hdg0 + sp.localHeading(s-sp.S0))
}

func (sp Spiral) BoundingBox() Rect {
	if sp.isArc() {
		return sp.arc().BoundingBox()
	}
	return headingBoundingBox(sp.Header, sp.CurvStart, sp.CDot(), func(s float64) Point {
		return sp.Point(s, 0)
	})
}

// Project returns the arc length of the point on the spiral closest to pt,
// found numerically. See [ProjectOptions].
func (sp Spiral) Project(pt Point) float64 {
	return sp.ProjectOpt(pt, ProjectOptions{})
}

func (sp Spiral) ProjectOpt(pt Point, opts ProjectOptions) float64 {
	if sp.isArc() {
		return sp.arc().Project(pt)
	}
	return projectNumeric(sp.Header, pt, opts, sp.Point, sp.Grad)
}
