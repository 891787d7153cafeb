package odr

import "math"

// ParamPoly3 is a segment described by two cubics u(p) and v(p) in its local
// frame. If Normalized is set, p runs from 0 to 1 over the segment;
// otherwise it runs from 0 to Length, like the arc length.
type ParamPoly3 struct {
	Header
	U, V       Cubic
	Normalized bool
}

func (pp ParamPoly3) Seg() Segment {
	return Segment{Kind: ParamPoly3Kind, Header: pp.Header, U: pp.U, V: pp.V, Normalized: pp.Normalized}
}

// param maps an arc-length position to the curve parameter p.
func (pp ParamPoly3) param(s float64) float64 {
	if pp.Normalized {
		return (s - pp.S0) / pp.Length
	}
	return s - pp.S0
}

// arclen maps the curve parameter p back to an arc-length position.
func (pp ParamPoly3) arclen(p float64) float64 {
	if pp.Normalized {
		return pp.S0 + p*pp.Length
	}
	return pp.S0 + p
}

func (pp ParamPoly3) pMax() float64 {
	if pp.Normalized {
		return 1
	}
	return pp.Length
}

func (pp ParamPoly3) Point(s, t float64) Point {
	p := pp.param(s)
	pt := Pt(pp.U.Eval(p), pp.V.Eval(p)).Transform(pp.Frame())
	return pt.Translate(pp.Grad(s).Perp().Mul(t))
}

func (pp ParamPoly3) Grad(s float64) Vec2 {
	p := pp.param(s)
	return pp.Frame().Linear(Vec(pp.U.Deriv(p), pp.V.Deriv(p))).Normalize()
}

// world returns the world-space x and y coordinates as cubics in p.
func (pp ParamPoly3) world() (x, y Cubic) {
	sin, cos := math.Sincos(pp.Hdg0)
	x = Cubic{A: pp.X0}.Add(pp.U.Scale(cos)).Add(pp.V.Scale(-sin))
	y = Cubic{A: pp.Y0}.Add(pp.U.Scale(sin)).Add(pp.V.Scale(cos))
	return x, y
}

func (pp ParamPoly3) BoundingBox() Rect {
	bbox := NewRectFromPoints(pp.Point(pp.S0, 0), pp.Point(pp.End(), 0))
	x, y := pp.world()
	for _, c := range [2]Cubic{x, y} {
		ex, n := c.Extrema(0, pp.pMax())
		for _, p := range ex[:n] {
			bbox = bbox.UnionPoint(pp.Point(pp.arclen(p), 0))
		}
	}
	return bbox
}

func (pp ParamPoly3) Project(pt Point) float64 {
	return pp.ProjectOpt(pt, ProjectOptions{})
}

func (pp ParamPoly3) ProjectOpt(pt Point, opts ProjectOptions) float64 {
	return projectNumeric(pp.Header, pt, opts, pp.Point, pp.Grad)
}
