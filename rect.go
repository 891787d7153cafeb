package odr

import (
	"fmt"

	"github.com/dhconnelly/rtreego"
	"github.com/pkg/errors"
)

// Rect is an axis-aligned rectangle in the plane of the reference line, from
// (X0, Y0) to (X1, Y1).
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns the rectangle spanned by two opposite corners.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// Abs orders the corners of r so that X0 ≤ X1 and Y0 ≤ Y1.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("[(%g, %g), (%g, %g)]", r.X0, r.Y0, r.X1, r.Y1)
}

// Union returns the smallest rectangle enclosing r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint grows r to include pt. Starting from a zero-area rectangle at
// one point, repeated calls yield the bounding box of all points.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Intersects reports whether r and o share at least one point. Touching
// edges count.
func (r Rect) Intersects(o Rect) bool {
	return r.X0 <= o.X1 && o.X0 <= r.X1 && r.Y0 <= o.Y1 && o.Y0 <= r.Y1
}

// Inflate grows r by width on the left and right and by height on the top
// and bottom.
func (r Rect) Inflate(width, height float64) Rect {
	return Rect{
		X0: r.X0 - width,
		Y0: r.Y0 - height,
		X1: r.X1 + width,
		Y1: r.Y1 + height,
	}
}

// minSpatialExtent is the smallest side length of a rectangle handed to the
// R-tree. Straight axis-aligned segments have zero-width bounding boxes.
const minSpatialExtent = 1e-6

// spatial converts r to an R-tree rectangle, padding degenerate sides. It
// fails for rectangles with non-finite corners, which the R-tree cannot
// order.
func (r Rect) spatial() (rtreego.Rect, error) {
	if !finite(r.X0, r.Y0, r.X1, r.Y1) {
		return rtreego.Rect{}, errors.Errorf("rectangle %v is not finite", r)
	}
	r = r.Abs().Inflate(minSpatialExtent, minSpatialExtent)
	return rtreego.NewRectFromPoints(
		rtreego.Point{r.X0, r.Y0},
		rtreego.Point{r.X1, r.Y1},
	)
}
