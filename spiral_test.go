package odr

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSpiralFresnel(t *testing.T) {
	// With k₀ = 0 and ċ = π, the local coordinates are the Fresnel integrals
	// C(1) and S(1).
	sp := Spiral{Header{Length: 1}, 0, math.Pi}
	assertNear(t, sp.Point(1, 0), Pt(0.7798934003768228, 0.4382591473903548), 1e-12)
	diff(t, sp.Grad(1), VecFromAngle(math.Pi/2), cmpopts.EquateApprox(0, 1e-12))
}

func TestSpiralConstantCurvature(t *testing.T) {
	h := Header{S0: 3, X0: 1, Y0: -1, Hdg0: 0.4, Length: 20}
	sp := Spiral{h, 0.05, 0.05}
	arc := Arc{h, 0.05}
	for _, s := range sampleSegment(sp.Seg(), 10) {
		diff(t, sp.Point(s, 0.3), arc.Point(s, 0.3))
		diff(t, sp.Grad(s), arc.Grad(s))
	}
	diff(t, sp.BoundingBox(), arc.BoundingBox())
	diff(t, sp.Project(Pt(5, 5)), arc.Project(Pt(5, 5)))

	straight := Spiral{h, 0, 0}
	line := Line{h}
	for _, s := range sampleSegment(straight.Seg(), 10) {
		assertNear(t, straight.Point(s, -1), line.Point(s, -1), 1e-12)
	}
}

func TestSpiralNearConstantCurvature(t *testing.T) {
	// Curvature rates just above the arc threshold are integrated
	// numerically and must stay close to the arc.
	h := Header{S0: 0, X0: 0, Y0: 0, Hdg0: 1, Length: 20}
	sp := Spiral{h, 0.05, 0.05 + 1e-9}
	arc := Arc{h, 0.05}
	if sp.isArc() {
		t.Fatal("spiral is evaluated as an arc")
	}
	for _, s := range sampleSegment(sp.Seg(), 10) {
		assertNear(t, sp.Point(s, 0), arc.Point(s, 0), 1e-6*h.Length)
	}
}

func TestSpiralLong(t *testing.T) {
	// A spiral that winds through several turns still ends at the point
	// reached by integrating its heading in small steps.
	sp := Spiral{Header{Length: 500}, 0, 0.2}
	var want Point
	const n = 200000
	step := sp.Length / n
	for i := range n {
		u := (float64(i) + 0.5) * step
		want = want.Translate(VecFromAngle(sp.localHeading(u)).Mul(step))
	}
	assertNear(t, sp.Point(sp.End(), 0), want, 1e-4)
}
