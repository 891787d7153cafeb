package odr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Track is a piecewise polynomial function of arc length, such as
// superelevation, lane borders or elevation. Each polynomial is evaluated at
// the distance from its own key, and no continuity is enforced between
// pieces.
//
// The zero value is an empty track, which evaluates to 0 everywhere.
type Track struct {
	f StepFunc[Cubic]
}

// TrackEntry is one polynomial piece of a [Track].
type TrackEntry = Entry[Cubic]

// NewTrack returns a track of the given pieces, whose keys must be strictly
// increasing.
func NewTrack(entries ...TrackEntry) (Track, error) {
	f, err := NewStepFunc(entries...)
	if err != nil {
		return Track{}, errors.Wrap(err, "invalid track")
	}
	return Track{f}, nil
}

// MustTrack is like [NewTrack] but panics on error.
func MustTrack(entries ...TrackEntry) Track {
	tr, err := NewTrack(entries...)
	if err != nil {
		panic(err)
	}
	return tr
}

// ConstTrack returns a track that evaluates to v everywhere.
func ConstTrack(v float64) Track {
	return MustTrack(TrackEntry{Key: 0, Value: Cubic{A: v}})
}

// Len returns the number of pieces.
func (tr Track) Len() int { return tr.f.Len() }

// Get evaluates the track at s.
func (tr Track) Get(s float64) float64 {
	e, ok := tr.f.Lookup(s)
	if !ok {
		return 0
	}
	return e.Value.Eval(s - e.Key)
}

// Deriv evaluates the derivative of the track with respect to s.
func (tr Track) Deriv(s float64) float64 {
	e, ok := tr.f.Lookup(s)
	if !ok {
		return 0
	}
	return e.Value.Deriv(s - e.Key)
}

// Side restricts a crossfall piece to one side of the road.
type Side int

const (
	// Both sides of the road. This is the zero value.
	Both Side = iota
	Left
	Right
)

func (side Side) String() string {
	switch side {
	case Both:
		return "both"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Side(%d)", int(side))
	}
}

// CrossfallPoly is one piece of a [Crossfall] track.
type CrossfallPoly struct {
	Poly Cubic
	Side Side
}

// Crossfall is the lateral drainage slope of a road, in radians, as a
// function of arc length. Each piece may apply to only one side of the road.
//
// The zero value is an empty track, which evaluates to 0 everywhere.
type Crossfall struct {
	f StepFunc[CrossfallPoly]
}

// NewCrossfall returns a crossfall track of the given pieces, whose keys must
// be strictly increasing.
func NewCrossfall(entries ...Entry[CrossfallPoly]) (Crossfall, error) {
	f, err := NewStepFunc(entries...)
	if err != nil {
		return Crossfall{}, errors.Wrap(err, "invalid crossfall")
	}
	return Crossfall{f}, nil
}

// Len returns the number of pieces.
func (cf Crossfall) Len() int { return cf.f.Len() }

// Get evaluates the crossfall at s for one side of the road. It returns 0 if
// the piece that applies at s is restricted to the other side.
func (cf Crossfall) Get(s float64, onLeftSide bool) float64 {
	e, ok := cf.f.Lookup(s)
	if !ok {
		return 0
	}
	switch e.Value.Side {
	case Right:
		if onLeftSide {
			return 0
		}
	case Left:
		if !onLeftSide {
			return 0
		}
	}
	return e.Value.Poly.Eval(s - e.Key)
}
