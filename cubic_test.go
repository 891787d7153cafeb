package odr

import "testing"

func TestCubicEval(t *testing.T) {
	c := Cubic{1, -3, 0, 1}
	diff(t, c.Eval(2), 3.0)
	diff(t, c.Deriv(2), 9.0)
	diff(t, Cubic{1, 2, 3, 4}.Add(Cubic{1, 1, 1, 1}).Scale(2), Cubic{4, 6, 8, 10})
	if !(Cubic{}).IsZero() {
		t.Error("zero cubic isn't zero")
	}
}

func TestCubicExtrema(t *testing.T) {
	// x³ − 3x + 1 has stationary points at ±1.
	c := Cubic{1, -3, 0, 1}
	ex, n := c.Extrema(-2, 2)
	checkRoots(t, ex[:n], []float64{-1, 1})
	ex, n = c.Extrema(0, 2)
	checkRoots(t, ex[:n], []float64{1})

	if ex, n := (Cubic{A: 4, B: 2}).Extrema(-10, 10); n != 0 {
		t.Errorf("linear polynomial has extrema %v", ex[:n])
	}
	// 1 + x²
	ex, n = Cubic{A: 1, C: 1}.Extrema(-1, 1)
	checkRoots(t, ex[:n], []float64{0})
}
