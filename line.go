package odr

// Line is a straight segment of a reference line.
type Line struct {
	Header
}

func (l Line) Seg() Segment {
	return Segment{Kind: LineKind, Header: l.Header}
}

func (l Line) Point(s, t float64) Point {
	return Pt(s-l.S0, t).Transform(l.Frame())
}

func (l Line) Grad(s float64) Vec2 {
	return VecFromAngle(l.Hdg0)
}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.Point(l.S0, 0), l.Point(l.End(), 0))
}

// Project returns the arc length of the point on the line closest to pt.
// This is exact.
func (l Line) Project(pt Point) float64 {
	local := pt.Transform(l.Frame().Invert())
	return l.S0 + min(max(local.X, 0), l.Length)
}
