package odr

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLinePoint(t *testing.T) {
	l := Line{Header{S0: 2, X0: 1, Y0: 1, Hdg0: math.Pi / 2, Length: 10}}
	assertNear(t, l.Point(2, 0), Pt(1, 1), 1e-12)
	assertNear(t, l.Point(7, 0), Pt(1, 6), 1e-12)
	assertNear(t, l.Point(7, 2), Pt(-1, 6), 1e-12)
	diff(t, l.BoundingBox(), Rect{1, 1, 1, 11}, cmpopts.EquateApprox(0, 1e-12))
}

func TestLineProject(t *testing.T) {
	l := Line{Header{S0: 0, X0: 1, Y0: 2, Hdg0: 0.3, Length: 10}}
	got := l.Project(l.Point(4, 0))
	if d := math.Abs(got - 4); d > 1e-12 {
		t.Errorf("got %g, expected 4", got)
	}
	if d := l.Point(got, 0).Sub(l.Point(4, 0)).Hypot(); d > 1e-12 {
		t.Errorf("residual distance %g", d)
	}
	diff(t, l.Project(Pt(-50, -50)), 0.0)
	diff(t, l.Project(Pt(50, 50)), 10.0)
}
