package odr

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"
)

// Road combines a reference line with the attributes that shape its surface:
// superelevation, crossfall and lane sections.
//
// A Road is immutable after construction and safe for concurrent use.
type Road struct {
	id             string
	refLine        *RefLine
	superelevation Track
	crossfall      Crossfall
	sections       StepFunc[*LaneSection]
}

// NewRoad returns a road. The superelevation and crossfall tracks may be
// empty. Lane sections must have strictly increasing start positions within
// the reference line.
func NewRoad(id string, refLine *RefLine, superelevation Track, crossfall Crossfall, sections ...*LaneSection) (*Road, error) {
	if refLine == nil {
		return nil, errors.Errorf("road %s: no reference line", id)
	}
	entries := make([]Entry[*LaneSection], len(sections))
	for i, ls := range sections {
		if ls == nil {
			return nil, errors.Errorf("road %s: lane section %d is nil", id, i)
		}
		if ls.S0() < 0 || ls.S0() >= refLine.Length() {
			return nil, errors.Errorf("road %s: lane section %d starts at s=%g, outside [0, %g)", id, i, ls.S0(), refLine.Length())
		}
		entries[i] = Entry[*LaneSection]{Key: ls.S0(), Value: ls}
	}
	f, err := NewStepFunc(entries...)
	if err != nil {
		return nil, errors.Wrapf(err, "road %s: invalid lane sections", id)
	}
	return &Road{
		id:             id,
		refLine:        refLine,
		superelevation: superelevation,
		crossfall:      crossfall,
		sections:       f,
	}, nil
}

// MustRoad is like [NewRoad] but panics on error.
func MustRoad(id string, refLine *RefLine, superelevation Track, crossfall Crossfall, sections ...*LaneSection) *Road {
	r, err := NewRoad(id, refLine, superelevation, crossfall, sections...)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Road) ID() string { return r.id }
func (r *Road) RefLine() *RefLine { return r.refLine }
func (r *Road) Length() float64 { return r.refLine.Length() }
func (r *Road) Superelevation() Track { return r.superelevation }
func (r *Road) Crossfall() Crossfall { return r.crossfall }

// LaneSections returns the road's lane sections in order.
func (r *Road) LaneSections() []*LaneSection {
	out := make([]*LaneSection, 0, r.sections.Len())
	for _, ls := range r.sections.Entries() {
		out = append(out, ls)
	}
	return out
}

// LaneSectionAt returns the lane section that applies at s. ok is false if
// the road has no lane sections.
func (r *Road) LaneSectionAt(s float64) (*LaneSection, bool) {
	e, ok := r.sections.Lookup(s)
	return e.Value, ok
}

// LaneSectionEnd returns where the lane section that applies at s ends: the
// start of the next section, or the end of the road.
func (r *Road) LaneSectionEnd(s float64) float64 {
	i := r.sections.Index(s)
	if i < 0 || i+1 >= r.sections.Len() {
		return r.Length()
	}
	return r.sections.At(i + 1).Key
}

// TransformationMatrix returns the local road frame at s as a matrix whose
// columns are the lateral axis e_t, the height axis e_h and the reference
// line point.
//
// The lateral axis is perpendicular to the reference line's tangent in the
// plane and is tilted out of the plane by the superelevation. The height axis
// is perpendicular to both the tangent and the lateral axis.
func (r *Road) TransformationMatrix(s float64) *Mat3 {
	sVec := r.refLine.Grad(s)
	superelevation := r.superelevation.Get(s)

	et := r3.Unit(Vec3{X: -sVec.Y, Y: sVec.X, Z: math.Tan(superelevation) * math.Abs(sVec.Y)})
	eh := r3.Unit(r3.Cross(sVec, et))
	p0 := r.refLine.XYZ(s)
	return newFrame(et, eh, p0)
}

// XYZ returns the point at lateral offset t and height h in the road frame
// at s.
func (r *Road) XYZ(s, t, h float64) Vec3 {
	return r.TransformationMatrix(s).MulVec(Vec3{X: t, Y: h, Z: 1})
}

// SurfacePoint returns the point of the road surface at (s, t), applying
// crossfall, level lanes and lane height offsets.
//
// If there is no lane data at (s, t), SurfacePoint returns XYZ(s, t, 0)
// together with a diagnostic describing what was missing. The point is
// usable either way.
func (r *Road) SurfacePoint(s, t float64) (Vec3, *Diagnostic) {
	ls, ok := r.LaneSectionAt(s)
	if !ok {
		return r.XYZ(s, t, 0), &Diagnostic{Kind: MissingLaneSection, Road: r.id, S: s, T: t}
	}
	lane, ok := ls.LaneAt(s, t)
	if !ok {
		return r.XYZ(s, t, 0), &Diagnostic{Kind: MissingLane, Road: r.id, S: s, T: t}
	}

	tInner := lane.InnerBorder.Get(s)
	crossfall := r.crossfall.Get(s, lane.OnLeftSide())
	var h float64
	if lane.Level {
		hInner := -math.Tan(crossfall) * math.Abs(tInner)
		// Cancel out the superelevation.
		h = hInner + math.Tan(r.superelevation.Get(s))*(t-tInner)
	} else {
		h = -math.Tan(crossfall) * math.Abs(t)
	}
	h += lane.HeightOffsetAt(s, t)

	return r.XYZ(s, t, h), nil
}
