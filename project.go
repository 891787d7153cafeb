package odr

import "math"

// ProjectAccuracy is the arc-length tolerance to which numeric projections
// are refined.
const ProjectAccuracy = 1e-9

// DefaultProjectSpacing is the default distance between the initial samples
// of a numeric projection.
const DefaultProjectSpacing = 0.5

const (
	minProjectSamples = 16
	maxProjectSamples = 1024
)

// ProjectOptions specifies optional settings for projecting points onto
// segments that have no closed-form projection (spirals and polynomials).
//
// The search samples the derivative of the squared distance along the
// segment, then refines every sign change from negative to positive (a local
// minimum) with [SolveITP]. The number of iterations is bounded, so the
// search always terminates. Local minima narrower than the sample spacing
// may be missed, in which case the best candidate found is returned.
type ProjectOptions struct {
	// Spacing is the distance between initial samples. A value of 0 selects
	// DefaultProjectSpacing. The number of samples is clamped to [16, 1024].
	Spacing float64
}

func (opts ProjectOptions) samples(length float64) int {
	spacing := opts.Spacing
	if spacing <= 0 {
		spacing = DefaultProjectSpacing
	}
	n := math.Ceil(length / spacing)
	if math.IsNaN(n) {
		return minProjectSamples
	}
	return int(min(max(n, minProjectSamples), maxProjectSamples))
}

// projectNumeric returns the arc length in [h.S0, h.End()] that minimizes
// the distance between point(s, 0) and pt. Ties are resolved in favor of the
// smallest arc length.
func projectNumeric(
	h Header,
	pt Point,
	opts ProjectOptions,
	point func(s, t float64) Point,
	grad func(s float64) Vec2,
) float64 {
	// f is half the derivative of the squared distance with respect to s.
	f := func(s float64) float64 {
		return point(s, 0).Sub(pt).Dot(grad(s))
	}

	bestS := h.S0
	bestD := pt.DistanceSquared(point(h.S0, 0))
	consider := func(s float64) {
		if d := pt.DistanceSquared(point(s, 0)); d < bestD || (d == bestD && s < bestS) {
			bestS, bestD = s, d
		}
	}

	n := opts.samples(h.Length)
	step := h.Length / float64(n)
	a := h.S0
	ya := f(a)
	for i := 1; i <= n; i++ {
		b := h.S0 + float64(i)*step
		if i == n {
			b = h.End()
		}
		yb := f(b)
		switch {
		case ya == 0:
			consider(a)
		case ya < 0 && yb > 0:
			k1 := 0.2 / (b - a)
			consider(SolveITP(f, a, b, ProjectAccuracy, 1, k1, ya, yb))
		}
		a, ya = b, yb
	}
	consider(h.End())
	return bestS
}
