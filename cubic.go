package odr

import "sort"

// Cubic is the polynomial A + B·x + C·x² + D·x³.
//
// Attribute tracks evaluate it at the distance from their key, and the
// polynomial geometries use it for their local coordinates.
type Cubic struct {
	A, B, C, D float64
}

// Eval evaluates the polynomial at x.
func (c Cubic) Eval(x float64) float64 {
	return c.A + x*(c.B+x*(c.C+x*c.D))
}

// Deriv evaluates the first derivative at x.
func (c Cubic) Deriv(x float64) float64 {
	return c.B + x*(2*c.C+x*3*c.D)
}

// Add returns the coefficient-wise sum of c and o.
func (c Cubic) Add(o Cubic) Cubic {
	return Cubic{c.A + o.A, c.B + o.B, c.C + o.C, c.D + o.D}
}

// Scale returns c multiplied by f.
func (c Cubic) Scale(f float64) Cubic {
	return Cubic{c.A * f, c.B * f, c.C * f, c.D * f}
}

// IsZero reports whether all coefficients are zero.
func (c Cubic) IsZero() bool {
	return c == Cubic{}
}

// Extrema returns the stationary points of c that lie strictly inside
// (lo, hi), in increasing order.
func (c Cubic) Extrema(lo, hi float64) ([2]float64, int) {
	var out [2]float64
	var outN int
	roots, n := SolveQuadratic(c.B, 2*c.C, 3*c.D)
	for _, x := range roots[:n] {
		if x > lo && x < hi {
			out[outN] = x
			outN++
		}
	}
	sort.Float64s(out[:outN])
	return out, outN
}
