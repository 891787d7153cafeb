package odr

// HeightOffset is the height added to a lane's surface at its inner and
// outer border.
type HeightOffset struct {
	Inner float64
	Outer float64
}

// Lane is a lateral strip of a [LaneSection].
//
// The sign of ID encodes the side of the reference line: positive IDs are on
// the left, negative IDs on the right, and 0 is the center lane.
type Lane struct {
	ID   int
	Type string
	// Level lanes cancel the road's superelevation and appear flat relative
	// to it.
	Level bool
	// InnerBorder and OuterBorder give the lateral offsets of the lane's
	// edges, nearest to and farthest from the reference line.
	InnerBorder Track
	OuterBorder Track
	// HeightOffsets are linearly interpolated between consecutive keys.
	HeightOffsets StepFunc[HeightOffset]
}

// OnLeftSide reports whether the lane lies to the left of the reference line.
func (l Lane) OnLeftSide() bool { return l.ID > 0 }

// HeightOffsetAt returns the height the lane's height offsets add at (s, t).
//
// Across the lane, the inner and outer heights are interpolated in proportion
// to t's position between the borders. Along the lane, both are interpolated
// linearly towards the next entry, if there is one. Together this is a
// bilinear surface between four corner samples. A lane of zero width uses its
// inner height.
func (l Lane) HeightOffsetAt(s, t float64) float64 {
	i := l.HeightOffsets.Index(s)
	if i < 0 {
		return 0
	}
	cur := l.HeightOffsets.At(i)
	tInner := l.InnerBorder.Get(s)
	tOuter := l.OuterBorder.Get(s)
	var pt float64
	if tOuter != tInner {
		pt = (t - tInner) / (tOuter - tInner)
	}
	h := pt*(cur.Value.Outer-cur.Value.Inner) + cur.Value.Inner

	if i+1 < l.HeightOffsets.Len() {
		next := l.HeightOffsets.At(i + 1)
		ds := next.Key - cur.Key
		dhInner := (next.Value.Inner - cur.Value.Inner) / ds * (s - cur.Key)
		dhOuter := (next.Value.Outer - cur.Value.Outer) / ds * (s - cur.Key)
		h += pt*(dhOuter-dhInner) + dhInner
	}
	return h
}

// covers reports whether t lies between the lane's borders at s.
func (l Lane) covers(s, t float64) bool {
	inner := l.InnerBorder.Get(s)
	outer := l.OuterBorder.Get(s)
	return t >= min(inner, outer) && t <= max(inner, outer)
}
