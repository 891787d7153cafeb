package odr

import (
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(3, 4).Sub(Pt(1, 1)), Vec(2, 3))
}

func TestPointDistanceSquared(t *testing.T) {
	if d := Pt(0, 10).DistanceSquared(Pt(0, 5)); d != 25 {
		t.Errorf("got squared distance %v, want 25", d)
	}
	if d := Pt(-11, 1).DistanceSquared(Pt(-7, -2)); d != 25 {
		t.Errorf("got squared distance %v, want 25", d)
	}
}

func TestVec3FromPoint(t *testing.T) {
	diff(t, Vec3FromPoint(Pt(1, 2), 3), Vec3{X: 1, Y: 2, Z: 3})
}
