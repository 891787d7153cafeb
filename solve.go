package odr

import "math"

// SolveQuadratic returns the real roots of c0 + c1·x + c2·x² = 0 in
// increasing order, together with their count.
//
// Bounding boxes use it to find where a segment's heading
// θ(u) = θ₀ + k₀·u + ½·ċ·u² reaches a multiple of π/2, and where a cubic's
// derivative vanishes. Both are routinely degenerate: arcs have ċ = 0 and
// lines have k₀ = 0 as well. When c2 is negligible next to the other
// coefficients, the equation is solved as linear. All-zero coefficients yield
// NaN roots, which the callers' range checks discard.
func SolveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	sc0 := c0 / c2
	sc1 := c1 / c2
	if math.IsInf(sc0, 0) || math.IsInf(sc1, 0) {
		// Linear.
		root := -c0 / c1
		switch {
		case !math.IsInf(root, 0):
			return [2]float64{root}, 1
		case c0 == 0 && c1 == 0:
			return [2]float64{0}, 1
		default:
			return [2]float64{}, 0
		}
	}

	disc := sc1*sc1 - 4*sc0
	var root1 float64
	switch {
	case math.IsInf(disc, 0):
		// sc1² overflowed; the large root is approximately −sc1.
		root1 = -sc1
	case disc < 0:
		return [2]float64{}, 0
	case disc == 0:
		return [2]float64{-0.5 * sc1}, 1
	default:
		// Avoid cancellation by taking the root whose terms share a sign and
		// deriving the other from the product of the roots.
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(disc), sc1))
	}
	root2 := sc0 / root1
	if math.IsInf(root2, 0) {
		return [2]float64{root1}, 1
	}
	if root2 < root1 {
		return [2]float64{root2, root1}, 2
	}
	return [2]float64{root1, root2}, 2
}

// SolveITP finds a zero of f in [a, b] with the ITP method (Oliveira and
// Takahashi, "An Enhancement of the Bisection Method Average Performance
// Preserving Minmax Optimality", ACM TOMS 2020), given ya = f(a) < 0 and
// yb = f(b) > 0.
//
// Numeric projection calls it on brackets of the derivative of the squared
// distance between a segment and the query point. A bracket going from
// negative to positive holds a local minimum of the distance. The sampled
// values at the bracket ends are passed in, because the caller already has
// them.
//
// The result lies within epsilon of a zero when f is monotonic on [a, b], and
// the number of evaluations never exceeds that of bisection by more than n0.
// n0 = 1 lets the secant step engage on smooth functions. k1 scales the
// truncation and 0.2/(b−a) is a good default. The second truncation exponent
// is fixed at 2. epsilon must exceed 2⁻⁶³·(b−a).
func SolveITP(
	f func(float64) float64,
	a float64,
	b float64,
	epsilon float64,
	n0 int,
	k1 float64,
	ya float64,
	yb float64,
) float64 {
	nHalf := int(max(math.Ceil(math.Log2((b-a)/epsilon))-1, 0))
	radius := epsilon * float64(uint64(1)<<(n0+nHalf))
	for b-a > 2*epsilon {
		mid := 0.5 * (a + b)
		// Interpolate with the secant (regula falsi).
		xf := (yb*a - ya*b) / (yb - ya)
		sigma := mid - xf
		// Truncate towards the midpoint.
		xt := mid
		if delta := k1 * (b - a) * (b - a); delta <= math.Abs(sigma) {
			xt = xf + math.Copysign(delta, sigma)
		}
		// Project into the minmax interval around the midpoint.
		r := radius - 0.5*(b-a)
		x := xt
		if math.Abs(xt-mid) > r {
			x = mid - math.Copysign(r, sigma)
		}

		switch y := f(x); {
		case y > 0:
			b, yb = x, y
		case y < 0:
			a, ya = x, y
		default:
			return x
		}
		radius *= 0.5
	}
	return 0.5 * (a + b)
}
