package odr_test

import (
	"fmt"
	"math"

	"honnef.co/go/odr"
)

func ExampleRoad_SurfacePoint() {
	refLine := odr.MustRefLine(odr.Track{}, odr.Line{Header: odr.Header{Length: 100}}.Seg())
	section := odr.MustLaneSection(0, odr.Lane{
		ID:          -1,
		Type:        "driving",
		InnerBorder: odr.ConstTrack(0),
		OuterBorder: odr.ConstTrack(-1.75),
	})
	road := odr.MustRoad("1", refLine, odr.Track{}, odr.Crossfall{}, section)

	p, diag := road.SurfacePoint(50, -0.875)
	if diag != nil {
		fmt.Println(diag)
	}
	fmt.Printf("%.3f %.3f %.3f\n", p.X, p.Y, p.Z)
	// Output:
	// 50.000 -0.875 0.000
}

func ExampleRefLine_Project() {
	refLine := odr.MustRefLine(odr.Track{},
		odr.Line{Header: odr.Header{Length: 10}}.Seg(),
		odr.Arc{Header: odr.Header{S0: 10, X0: 10, Length: 5 * math.Pi}, Curvature: 0.1}.Seg(),
	)

	fmt.Printf("%.3f\n", refLine.Project(4, 1))
	// The arc is a quarter circle around (10, 10).
	fmt.Printf("%.3f\n", refLine.Project(20, 20))
	// Output:
	// 4.000
	// 25.708
}
