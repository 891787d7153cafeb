package odr

import (
	"fmt"
	"math"
)

type SegmentKind int

const (
	// A straight line.
	LineKind SegmentKind = iota + 1
	// A circular arc of constant curvature.
	ArcKind
	// A clothoid, whose curvature changes linearly with arc length.
	SpiralKind
	// A cubic polynomial v(u) in the segment's local frame.
	Poly3Kind
	// A parametric cubic (u(p), v(p)) in the segment's local frame.
	ParamPoly3Kind
)

func (k SegmentKind) String() string {
	switch k {
	case LineKind:
		return "line"
	case ArcKind:
		return "arc"
	case SpiralKind:
		return "spiral"
	case Poly3Kind:
		return "poly3"
	case ParamPoly3Kind:
		return "paramPoly3"
	default:
		return fmt.Sprintf("SegmentKind(%d)", int(k))
	}
}

// Header holds what every segment of a reference line has in common: where
// it starts along the reference line, its start pose in the plane, and its
// length.
//
// A segment is valid on [S0, S0+Length).
type Header struct {
	S0     float64
	X0, Y0 float64
	// Hdg0 is the heading at the start of the segment, in radians
	// anti-clockwise from the x axis.
	Hdg0   float64
	Length float64
}

// Start returns the segment's start point.
func (h Header) Start() Point { return Pt(h.X0, h.Y0) }

// End returns the arc-length position where the segment ends.
func (h Header) End() float64 { return h.S0 + h.Length }

// Frame returns the transform from the segment's local frame into the plane.
func (h Header) Frame() Affine { return Pose(h.Start(), h.Hdg0) }

// Segment is one piece of a reference line. It acts as a tagged union of
// [Line], [Arc], [Spiral], [Poly3] and [ParamPoly3], distinguished by Kind.
type Segment struct {
	// We don't use an interface for Segment because the set of geometries is
	// fixed by the road description format, and a plain struct lets a
	// reference line store its segments contiguously without allocating.

	Kind SegmentKind
	Header
	// K0 and K1 are the start and end curvature. Arcs only use K0.
	K0, K1 float64
	// U and V are the local polynomials. Poly3 only uses V.
	U, V Cubic
	// Normalized selects the ParamPoly3 parameter range [0, 1] instead of
	// [0, Length].
	Normalized bool
}

// Line returns the line segment. It is only valid if Kind is LineKind.
func (seg Segment) Line() Line { return Line{seg.Header} }

// Arc returns the arc. It is only valid if Kind is ArcKind.
func (seg Segment) Arc() Arc { return Arc{seg.Header, seg.K0} }

// Spiral returns the spiral. It is only valid if Kind is SpiralKind.
func (seg Segment) Spiral() Spiral { return Spiral{seg.Header, seg.K0, seg.K1} }

// Poly3 returns the cubic polynomial. It is only valid if Kind is Poly3Kind.
func (seg Segment) Poly3() Poly3 { return Poly3{seg.Header, seg.V} }

// ParamPoly3 returns the parametric cubic. It is only valid if Kind is
// ParamPoly3Kind.
func (seg Segment) ParamPoly3() ParamPoly3 {
	return ParamPoly3{seg.Header, seg.U, seg.V, seg.Normalized}
}

// Point returns the point at arc length s, offset laterally by t. Positive t
// is to the left of the direction of travel.
func (seg Segment) Point(s, t float64) Point {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Point(s, t)
	case ArcKind:
		return seg.Arc().Point(s, t)
	case SpiralKind:
		return seg.Spiral().Point(s, t)
	case Poly3Kind:
		return seg.Poly3().Point(s, t)
	case ParamPoly3Kind:
		return seg.ParamPoly3().Point(s, t)
	default:
		panic(fmt.Sprintf("unhandled segment kind %v", seg.Kind))
	}
}

// Grad returns the unit tangent at arc length s, pointing in the direction of
// increasing s.
func (seg Segment) Grad(s float64) Vec2 {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Grad(s)
	case ArcKind:
		return seg.Arc().Grad(s)
	case SpiralKind:
		return seg.Spiral().Grad(s)
	case Poly3Kind:
		return seg.Poly3().Grad(s)
	case ParamPoly3Kind:
		return seg.ParamPoly3().Grad(s)
	default:
		panic(fmt.Sprintf("unhandled segment kind %v", seg.Kind))
	}
}

// BoundingBox returns the smallest axis-aligned rectangle that encloses the
// segment. It is computed from the segment's extrema, not by sampling.
func (seg Segment) BoundingBox() Rect {
	switch seg.Kind {
	case LineKind:
		return seg.Line().BoundingBox()
	case ArcKind:
		return seg.Arc().BoundingBox()
	case SpiralKind:
		return seg.Spiral().BoundingBox()
	case Poly3Kind:
		return seg.Poly3().BoundingBox()
	case ParamPoly3Kind:
		return seg.ParamPoly3().BoundingBox()
	default:
		panic(fmt.Sprintf("unhandled segment kind %v", seg.Kind))
	}
}

// Project returns the arc length in [S0, S0+Length] whose point is closest
// to pt. See [Segment.ProjectOpt].
func (seg Segment) Project(pt Point) float64 {
	return seg.ProjectOpt(pt, ProjectOptions{})
}

// ProjectOpt is like [Segment.Project] but allows tuning the numeric search
// used by spirals and polynomial segments. Lines and arcs are projected
// exactly and ignore opts.
func (seg Segment) ProjectOpt(pt Point, opts ProjectOptions) float64 {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Project(pt)
	case ArcKind:
		return seg.Arc().Project(pt)
	case SpiralKind:
		return seg.Spiral().ProjectOpt(pt, opts)
	case Poly3Kind:
		return seg.Poly3().ProjectOpt(pt, opts)
	case ParamPoly3Kind:
		return seg.ParamPoly3().ProjectOpt(pt, opts)
	default:
		panic(fmt.Sprintf("unhandled segment kind %v", seg.Kind))
	}
}

// straightCurvature is the curvature below which arcs and spirals are
// evaluated as lines and arcs, respectively.
const straightCurvature = 1e-12

// headingBoundingBox computes the bounding box of a curve whose local
// heading is θ(u) = k0·u + ½·cdot·u², starting at h.Hdg0. The extrema of x
// and y are where the world heading is a multiple of π/2.
func headingBoundingBox(h Header, k0, cdot float64, point func(s float64) Point) Rect {
	bbox := NewRectFromPoints(point(h.S0), point(h.End()))
	theta := func(u float64) float64 {
		return h.Hdg0 + k0*u + 0.5*cdot*u*u
	}
	lo := min(theta(0), theta(h.Length))
	hi := max(theta(0), theta(h.Length))
	if cdot != 0 {
		if u := -k0 / cdot; u > 0 && u < h.Length {
			lo = min(lo, theta(u))
			hi = max(hi, theta(u))
		}
	}
	const quarter = math.Pi / 2
	for n := math.Ceil(lo / quarter); n*quarter <= hi; n++ {
		roots, rootsN := SolveQuadratic(h.Hdg0-n*quarter, k0, 0.5*cdot)
		for _, u := range roots[:rootsN] {
			if u > 0 && u < h.Length {
				bbox = bbox.UnionPoint(point(h.S0 + u))
			}
		}
	}
	return bbox
}
