package odr

import "math"

// Poly3 is a segment described by the cubic v(u) = a + b·u + c·u² + d·u³ in
// its local frame, where u runs along the start heading and v to its left.
// The local coordinate u is taken to be s − S0.
type Poly3 struct {
	Header
	Poly Cubic
}

func (p Poly3) Seg() Segment {
	return Segment{Kind: Poly3Kind, Header: p.Header, V: p.Poly}
}

func (p Poly3) Point(s, t float64) Point {
	u := s - p.S0
	pt := Pt(u, p.Poly.Eval(u)).Transform(p.Frame())
	return pt.Translate(p.Grad(s).Perp().Mul(t))
}

func (p Poly3) Grad(s float64) Vec2 {
	u := s - p.S0
	return p.Frame().Linear(Vec(1, p.Poly.Deriv(u))).Normalize()
}

// world returns the world-space x and y coordinates as cubics in u.
func (p Poly3) world() (x, y Cubic) {
	sin, cos := math.Sincos(p.Hdg0)
	x = Cubic{A: p.X0, B: cos}.Add(p.Poly.Scale(-sin))
	y = Cubic{A: p.Y0, B: sin}.Add(p.Poly.Scale(cos))
	return x, y
}

func (p Poly3) BoundingBox() Rect {
	bbox := NewRectFromPoints(p.Point(p.S0, 0), p.Point(p.End(), 0))
	x, y := p.world()
	for _, c := range [2]Cubic{x, y} {
		ex, n := c.Extrema(0, p.Length)
		for _, u := range ex[:n] {
			bbox = bbox.UnionPoint(p.Point(p.S0+u, 0))
		}
	}
	return bbox
}

func (p Poly3) Project(pt Point) float64 {
	return p.ProjectOpt(pt, ProjectOptions{})
}

func (p Poly3) ProjectOpt(pt Point, opts ProjectOptions) float64 {
	return projectNumeric(p.Header, pt, opts, p.Point, p.Grad)
}
