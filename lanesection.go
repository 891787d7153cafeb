package odr

import (
	"slices"

	"github.com/pkg/errors"
)

// LaneSection is the lateral partition of a road over [S0, next S0).
//
// A LaneSection is immutable after construction and safe for concurrent use.
type LaneSection struct {
	s0 float64
	// lanes are sorted by ID: right lanes from the outermost inwards, the
	// center lane, then left lanes from the innermost outwards.
	lanes []Lane
}

// NewLaneSection returns a lane section starting at s0. Lane IDs must be
// unique.
func NewLaneSection(s0 float64, lanes ...Lane) (*LaneSection, error) {
	ls := &LaneSection{
		s0:    s0,
		lanes: slices.Clone(lanes),
	}
	slices.SortFunc(ls.lanes, func(a, b Lane) int { return a.ID - b.ID })
	for i := 1; i < len(ls.lanes); i++ {
		if ls.lanes[i].ID == ls.lanes[i-1].ID {
			return nil, errors.Errorf("lane section at s=%g: duplicate lane %d", s0, ls.lanes[i].ID)
		}
	}
	return ls, nil
}

// MustLaneSection is like [NewLaneSection] but panics on error.
func MustLaneSection(s0 float64, lanes ...Lane) *LaneSection {
	ls, err := NewLaneSection(s0, lanes...)
	if err != nil {
		panic(err)
	}
	return ls
}

// S0 returns the arc-length position where the section starts.
func (ls *LaneSection) S0() float64 { return ls.s0 }

// Lanes returns a copy of the section's lanes, sorted by ID.
func (ls *LaneSection) Lanes() []Lane { return slices.Clone(ls.lanes) }

// Lane returns the lane with the given ID.
func (ls *LaneSection) Lane(id int) (Lane, bool) {
	i, ok := slices.BinarySearchFunc(ls.lanes, id, func(l Lane, id int) int { return l.ID - id })
	if !ok {
		return Lane{}, false
	}
	return ls.lanes[i], true
}

// LaneAt returns the lane that covers lateral offset t at arc length s.
//
// Offsets t ≥ 0 are matched against left lanes and offsets t < 0 against
// right lanes, from the reference line outwards. Offsets beyond the outermost
// border resolve to the outermost lane on that side. If that side has no
// lanes, the center lane is returned, or else the innermost lane of the other
// side. ok is false only if the section has no lanes.
func (ls *LaneSection) LaneAt(s, t float64) (lane Lane, ok bool) {
	if len(ls.lanes) == 0 {
		return Lane{}, false
	}
	// Index of the first lane with ID >= 0 and the first with ID > 0.
	center, _ := slices.BinarySearchFunc(ls.lanes, 0, func(l Lane, id int) int { return l.ID - id })
	left := center
	if left < len(ls.lanes) && ls.lanes[left].ID == 0 {
		left++
	}

	if t >= 0 {
		for _, l := range ls.lanes[left:] {
			if l.covers(s, t) {
				return l, true
			}
		}
		if left < len(ls.lanes) {
			return ls.lanes[len(ls.lanes)-1], true
		}
	} else {
		for i := center - 1; i >= 0; i-- {
			if ls.lanes[i].covers(s, t) {
				return ls.lanes[i], true
			}
		}
		if center > 0 {
			return ls.lanes[0], true
		}
	}

	if center < len(ls.lanes) && ls.lanes[center].ID == 0 {
		return ls.lanes[center], true
	}
	if t >= 0 {
		// No left lanes and no center lane, so the innermost right lane.
		return ls.lanes[center-1], true
	}
	return ls.lanes[left], true
}
