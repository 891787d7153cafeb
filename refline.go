package odr

import (
	"math"
	"slices"

	"github.com/dhconnelly/rtreego"
	"github.com/pkg/errors"
)

// ContinuityTolerance is the largest gap or overlap, in arc length, allowed
// between consecutive segments of a reference line.
const ContinuityTolerance = 1e-6

// RefLine is the reference line of a road: an ordered chain of segments
// covering [0, Length) without gaps or overlaps, plus an elevation profile.
//
// A RefLine is immutable after construction and safe for concurrent use.
type RefLine struct {
	segments  StepFunc[Segment]
	elevation Track
	length    float64
	index     *rtreego.Rtree
}

// indexedSegment wraps a segment for R-tree storage.
type indexedSegment struct {
	idx int
	// box is the exact bounding box; bounds is padded for the tree.
	box    Rect
	bounds rtreego.Rect
}

// Bounds implements rtreego.Spatial interface.
func (is *indexedSegment) Bounds() rtreego.Rect {
	return is.bounds
}

// NewRefLine returns a reference line made of segs. The segments must be
// ordered, start at 0, have finite start poses and positive lengths, and be
// contiguous within ContinuityTolerance. The elevation track may be empty, in
// which case the reference line lies at height 0.
func NewRefLine(elevation Track, segs ...Segment) (*RefLine, error) {
	if len(segs) == 0 {
		return nil, errors.New("reference line has no segments")
	}
	entries := make([]Entry[Segment], len(segs))
	spatials := make([]rtreego.Spatial, len(segs))
	end := 0.0
	for i, seg := range segs {
		if seg.Kind < LineKind || seg.Kind > ParamPoly3Kind {
			return nil, errors.Errorf("segment %d: unknown kind %v", i, seg.Kind)
		}
		if !finite(seg.S0, seg.X0, seg.Y0, seg.Hdg0) {
			return nil, errors.Errorf("segment %d (%v): start s=%g, x=%g, y=%g, hdg=%g is not finite",
				i, seg.Kind, seg.S0, seg.X0, seg.Y0, seg.Hdg0)
		}
		if !(seg.Length > 0) || math.IsInf(seg.Length, 0) {
			return nil, errors.Errorf("segment %d (%v): length %g is not positive", i, seg.Kind, seg.Length)
		}
		if math.Abs(seg.S0-end) > ContinuityTolerance {
			return nil, errors.Errorf("segment %d (%v): starts at s=%g, previous segment ends at s=%g", i, seg.Kind, seg.S0, end)
		}
		box := seg.BoundingBox()
		bounds, err := box.spatial()
		if err != nil {
			return nil, errors.Wrapf(err, "segment %d (%v)", i, seg.Kind)
		}
		entries[i] = Entry[Segment]{Key: seg.S0, Value: seg}
		spatials[i] = &indexedSegment{idx: i, box: box, bounds: bounds}
		end = seg.End()
	}
	f, err := NewStepFunc(entries...)
	if err != nil {
		return nil, errors.Wrap(err, "invalid segment order")
	}
	return &RefLine{
		segments:  f,
		elevation: elevation,
		length:    end,
		index:     rtreego.NewTree(2, 25, 50, spatials...),
	}, nil
}

// MustRefLine is like [NewRefLine] but panics on error.
func MustRefLine(elevation Track, segs ...Segment) *RefLine {
	rl, err := NewRefLine(elevation, segs...)
	if err != nil {
		panic(err)
	}
	return rl
}

// Length returns the total arc length of the reference line.
func (rl *RefLine) Length() float64 { return rl.length }

// Segments returns a copy of the segments, in order.
func (rl *RefLine) Segments() []Segment {
	out := make([]Segment, 0, rl.segments.Len())
	for _, seg := range rl.segments.Entries() {
		out = append(out, seg)
	}
	return out
}

// Elevation returns the elevation profile.
func (rl *RefLine) Elevation() Track { return rl.elevation }

// clamp limits s to [0, Length], so that queries that stray slightly
// outside the reference line due to floating-point error still succeed.
func (rl *RefLine) clamp(s float64) float64 {
	return min(max(s, 0), rl.length)
}

// segmentAt returns the segment that applies at s, which must already be
// clamped. At s == Length, this is the last segment.
func (rl *RefLine) segmentAt(s float64) Segment {
	return rl.segments.At(rl.segments.Index(s)).Value
}

// SegmentAt returns the segment that applies at s, after clamping s to the
// reference line. At s == Length, this is the last segment.
func (rl *RefLine) SegmentAt(s float64) Segment {
	return rl.segmentAt(rl.clamp(s))
}

// Point returns the 2D point at arc length s, offset laterally by t.
func (rl *RefLine) Point(s, t float64) Point {
	s = rl.clamp(s)
	return rl.segmentAt(s).Point(s, t)
}

// XYZ returns the point of the reference line at arc length s, with its
// height taken from the elevation profile.
func (rl *RefLine) XYZ(s float64) Vec3 {
	s = rl.clamp(s)
	return Vec3FromPoint(rl.segmentAt(s).Point(s, 0), rl.elevation.Get(s))
}

// Grad returns the tangent of the reference line at arc length s. Its planar
// part is a unit vector, and its z component is the slope of the elevation
// profile.
func (rl *RefLine) Grad(s float64) Vec3 {
	s = rl.clamp(s)
	g := rl.segmentAt(s).Grad(s)
	return Vec3{X: g.X, Y: g.Y, Z: rl.elevation.Deriv(s)}
}

// BoundingBox returns the bounding box of the whole reference line.
func (rl *RefLine) BoundingBox() Rect {
	segs := rl.Segments()
	bbox := segs[0].BoundingBox()
	for _, seg := range segs[1:] {
		bbox = bbox.Union(seg.BoundingBox())
	}
	return bbox
}

// SegmentsIntersecting returns the segments whose bounding boxes intersect r,
// in order.
func (rl *RefLine) SegmentsIntersecting(r Rect) []Segment {
	var out []Segment
	for _, is := range rl.search(r) {
		// The tree holds padded boxes.
		if is.box.Intersects(r) {
			out = append(out, rl.segments.At(is.idx).Value)
		}
	}
	return out
}

// search returns the segments whose padded bounding boxes intersect r,
// ordered by arc length. It returns nil if r is not finite.
func (rl *RefLine) search(r Rect) []*indexedSegment {
	query, err := r.Abs().spatial()
	if err != nil {
		return nil
	}
	spatials := rl.index.SearchIntersect(query)
	out := make([]*indexedSegment, len(spatials))
	for i, sp := range spatials {
		out[i] = sp.(*indexedSegment)
	}
	slices.SortFunc(out, func(a, b *indexedSegment) int { return a.idx - b.idx })
	return out
}

// Project returns the arc length of the point on the reference line closest
// to (x, y). When several points are equally close, the one with the
// smallest arc length wins.
func (rl *RefLine) Project(x, y float64) float64 {
	return rl.ProjectOpt(x, y, ProjectOptions{})
}

// ProjectOpt is like [RefLine.Project] but passes opts on to the segments.
func (rl *RefLine) ProjectOpt(x, y float64, opts ProjectOptions) float64 {
	pt := Pt(x, y)

	// Start with the segment whose bounding box is nearest. Only segments
	// whose bounding boxes come within the resulting distance can improve on
	// it.
	first := rl.segments.At(rl.index.NearestNeighbor(rtreego.Point{x, y}).(*indexedSegment).idx).Value
	bestS := first.ProjectOpt(pt, opts)
	bestD := pt.DistanceSquared(first.Point(bestS, 0))

	r := math.Sqrt(bestD) + minSpatialExtent
	query := Rect{X0: x - r, Y0: y - r, X1: x + r, Y1: y + r}
	for _, is := range rl.search(query) {
		seg := rl.segments.At(is.idx).Value
		s := seg.ProjectOpt(pt, opts)
		d := pt.DistanceSquared(seg.Point(s, 0))
		if d < bestD || (d == bestD && s < bestS) {
			bestS, bestD = s, d
		}
	}
	return bestS
}
