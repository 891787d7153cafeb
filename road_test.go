package odr

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func straightRefLine(t *testing.T, hdg float64) *RefLine {
	t.Helper()
	rl, err := NewRefLine(Track{}, Line{Header{Hdg0: hdg, Length: 100}}.Seg())
	require.NoError(t, err)
	return rl
}

func assertVecNear(t *testing.T, want, got Vec3, delta float64) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta, "x")
	assert.InDelta(t, want.Y, got.Y, delta, "y")
	assert.InDelta(t, want.Z, got.Z, delta, "z")
}

func TestSurfacePointStraightRoad(t *testing.T) {
	ls := MustLaneSection(0, testLane(-1, 0, -1.75))
	road, err := NewRoad("1", straightRefLine(t, 0), Track{}, Crossfall{}, ls)
	require.NoError(t, err)

	p, diag := road.SurfacePoint(50, -0.875)
	assert.Nil(t, diag)
	assertVecNear(t, Vec3{X: 50, Y: -0.875, Z: 0}, p, 1e-12)
}

func TestSurfacePointHeightOffset(t *testing.T) {
	lane := testLane(1, -1, 1)
	lane.HeightOffsets, _ = NewStepFunc(
		Entry[HeightOffset]{Key: 0, Value: HeightOffset{Inner: 0, Outer: 0.2}},
		Entry[HeightOffset]{Key: 10, Value: HeightOffset{Inner: 0.1, Outer: 0.3}},
	)
	road := MustRoad("1", straightRefLine(t, 0), Track{}, Crossfall{}, MustLaneSection(0, lane))

	p, diag := road.SurfacePoint(5, 0)
	assert.Nil(t, diag)
	assertVecNear(t, Vec3{X: 5, Y: 0, Z: 0.15}, p, 1e-12)
}

func TestSurfacePointCrossfall(t *testing.T) {
	cf, err := NewCrossfall(Entry[CrossfallPoly]{Value: CrossfallPoly{Poly: Cubic{A: 0.02}, Side: Right}})
	require.NoError(t, err)
	ls := MustLaneSection(0, testLane(-1, 0, -3.5), testLane(1, 0, 3.5))
	road := MustRoad("1", straightRefLine(t, 0), Track{}, cf, ls)

	p, diag := road.SurfacePoint(10, -2)
	assert.Nil(t, diag)
	assertVecNear(t, Vec3{X: 10, Y: -2, Z: -math.Tan(0.02) * 2}, p, 1e-12)

	p, diag = road.SurfacePoint(10, 2)
	assert.Nil(t, diag)
	assertVecNear(t, Vec3{X: 10, Y: 2, Z: 0}, p, 1e-12)
}

func TestSurfacePointLevelLane(t *testing.T) {
	const se = 0.05
	level := testLane(1, 0, 3.5)
	level.Level = true
	ls := MustLaneSection(0, level, testLane(-1, 0, -3.5))
	road := MustRoad("1", straightRefLine(t, math.Pi/2), ConstTrack(se), Crossfall{}, ls)

	for _, tt := range []float64{0.5, 1, 3} {
		p, diag := road.SurfacePoint(20, tt)
		assert.Nil(t, diag)
		assertVecNear(t, road.XYZ(20, tt, math.Tan(se)*tt), p, 1e-12)
	}
	// Lanes that aren't level follow the superelevated frame.
	p, _ := road.SurfacePoint(20, -2)
	assertVecNear(t, road.XYZ(20, -2, 0), p, 1e-12)
}

func TestSurfacePointLevelLaneCrossfall(t *testing.T) {
	const (
		se    = 0.05
		slope = 0.03
		s     = 20
	)
	levelLeft := testLane(2, 1.5, 4.5)
	levelLeft.Level = true
	levelRight := testLane(-2, -1.5, -4.5)
	levelRight.Level = true
	ls := MustLaneSection(0, levelLeft, testLane(1, 0, 1.5), testLane(-1, 0, -1.5), levelRight)

	for _, side := range []Side{Left, Right, Both} {
		cf, err := NewCrossfall(Entry[CrossfallPoly]{Value: CrossfallPoly{Poly: Cubic{A: slope}, Side: side}})
		require.NoError(t, err)
		road := MustRoad("1", straightRefLine(t, math.Pi/2), ConstTrack(se), cf, ls)

		for _, tt := range []struct {
			t, inner float64
			left     bool
		}{
			{3, 1.5, true},
			{4, 1.5, true},
			{-3, -1.5, false},
			{-4, -1.5, false},
		} {
			var crossfall float64
			if side == Both || (side == Left) == tt.left {
				crossfall = slope
			}
			h := -math.Tan(crossfall)*math.Abs(tt.inner) + math.Tan(se)*(tt.t-tt.inner)
			p, diag := road.SurfacePoint(s, tt.t)
			assert.Nil(t, diag)
			assertVecNear(t, road.XYZ(s, tt.t, h), p, 1e-12)
		}
	}
}

func TestTransformationMatrix(t *testing.T) {
	rl := testRefLine(t, MustTrack(TrackEntry{Value: Cubic{A: 2, B: 0.01}}))
	road := MustRoad("1", rl, Track{}, Crossfall{})

	for s := 0.0; s <= rl.Length(); s += 2.5 {
		m := road.TransformationMatrix(s)
		et := Vec3{X: m.At(0, 0), Y: m.At(1, 0), Z: m.At(2, 0)}
		eh := Vec3{X: m.At(0, 1), Y: m.At(1, 1), Z: m.At(2, 1)}
		p0 := Vec3{X: m.At(0, 2), Y: m.At(1, 2), Z: m.At(2, 2)}
		tangent := rl.Grad(s)

		assert.InDelta(t, 1, r3.Norm(et), 1e-12)
		assert.InDelta(t, 1, r3.Norm(eh), 1e-12)
		assert.InDelta(t, 0, r3.Dot(et, eh), 1e-12)
		assert.InDelta(t, 0, r3.Dot(et, tangent), 1e-12)
		assert.InDelta(t, 0, r3.Dot(eh, tangent), 1e-12)
		assert.Greater(t, eh.Z, 0.0)
		assert.Equal(t, rl.XYZ(s), p0)

		// Without superelevation, e_t is the planar left normal.
		assert.InDelta(t, 0, et.Z, 1e-12)
		assertVecNear(t, p0, road.XYZ(s, 0, 0), 1e-12)
	}
}

func TestTransformationMatrixSuperelevation(t *testing.T) {
	const se = 0.1
	road := MustRoad("1", straightRefLine(t, math.Pi/2), ConstTrack(se), Crossfall{})
	m := road.TransformationMatrix(50)
	et := Vec3{X: m.At(0, 0), Y: m.At(1, 0), Z: m.At(2, 0)}
	// The road runs north, so e_t points west and is rolled by se.
	assert.InDelta(t, se, math.Atan2(et.Z, -et.X), 1e-12)
	assert.InDelta(t, 0, et.Y, 1e-12)
}

func TestSurfacePointMissingData(t *testing.T) {
	road := MustRoad("r1", straightRefLine(t, 0), Track{}, Crossfall{})
	p, diag := road.SurfacePoint(5, 1)
	require.NotNil(t, diag)
	assert.Equal(t, MissingLaneSection, diag.Kind)
	assert.Equal(t, "r1", diag.Road)
	assert.Equal(t, road.XYZ(5, 1, 0), p)
	assert.EqualError(t, diag, "road r1: missing lane section at s=5.00, t=1.00")

	road = MustRoad("r2", straightRefLine(t, 0), Track{}, Crossfall{}, MustLaneSection(0))
	p, diag = road.SurfacePoint(5, 1)
	require.NotNil(t, diag)
	assert.Equal(t, MissingLane, diag.Kind)
	assert.Equal(t, road.XYZ(5, 1, 0), p)
}

func TestDiagnosticLog(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	var nilDiag *Diagnostic
	nilDiag.Log(context.Background(), logger)
	assert.Zero(t, buf.Len())

	road := MustRoad("r1", straightRefLine(t, 0), Track{}, Crossfall{})
	_, diag := road.SurfacePoint(5, 1)
	diag.Log(context.Background(), logger)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), `"road":"r1"`)
	assert.Contains(t, buf.String(), `"kind":"missing lane section"`)
}

func TestNewRoadErrors(t *testing.T) {
	rl := straightRefLine(t, 0)

	_, err := NewRoad("1", nil, Track{}, Crossfall{})
	assert.ErrorContains(t, err, "no reference line")

	_, err = NewRoad("1", rl, Track{}, Crossfall{}, MustLaneSection(100))
	assert.ErrorContains(t, err, "outside")

	_, err = NewRoad("1", rl, Track{}, Crossfall{}, MustLaneSection(-1))
	assert.ErrorContains(t, err, "outside")

	_, err = NewRoad("1", rl, Track{}, Crossfall{}, MustLaneSection(50), MustLaneSection(20))
	assert.ErrorContains(t, err, "invalid lane sections")

	_, err = NewRoad("1", rl, Track{}, Crossfall{}, nil)
	assert.ErrorContains(t, err, "nil")
}

func TestLaneSectionLookup(t *testing.T) {
	road := MustRoad("1", straightRefLine(t, 0), Track{}, Crossfall{},
		MustLaneSection(0), MustLaneSection(30), MustLaneSection(60))

	assert.Len(t, road.LaneSections(), 3)
	ls, ok := road.LaneSectionAt(45)
	require.True(t, ok)
	assert.Equal(t, 30.0, ls.S0())
	assert.Equal(t, 60.0, road.LaneSectionEnd(45))
	assert.Equal(t, 100.0, road.LaneSectionEnd(70))
	assert.Equal(t, 30.0, road.LaneSectionEnd(0))

	empty := MustRoad("2", straightRefLine(t, 0), Track{}, Crossfall{})
	_, ok = empty.LaneSectionAt(10)
	assert.False(t, ok)
	assert.Equal(t, 100.0, empty.LaneSectionEnd(10))
}

func TestSurfacePointConcurrent(t *testing.T) {
	lane := testLane(-1, 0, -3.5)
	cf, _ := NewCrossfall(Entry[CrossfallPoly]{Value: CrossfallPoly{Poly: Cubic{A: 0.03}}})
	road := MustRoad("1", testRefLine(t, ConstTrack(1)), ConstTrack(0.02), cf, MustLaneSection(0, lane))

	const n = 200
	want := make([]Vec3, n)
	for i := range want {
		want[i], _ = road.SurfacePoint(float64(i)*road.Length()/n, -1)
	}

	var wg sync.WaitGroup
	got := make([][]Vec3, 8)
	for g := range got {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out := make([]Vec3, n)
			for i := range out {
				out[i], _ = road.SurfacePoint(float64(i)*road.Length()/n, -1)
			}
			got[g] = out
		}()
	}
	wg.Wait()
	for _, out := range got {
		assert.Equal(t, want, out)
	}
}
