package odr

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Vec3 is a point or direction in 3D space. x and y span the plane of the
// reference line; z is up.
type Vec3 = r3.Vec

// Mat3 is a 3×3 matrix. [Road.TransformationMatrix] returns one whose columns
// are the lateral axis, the height axis and the origin of the local road
// frame.
type Mat3 = r3.Mat

// Vec3FromPoint lifts pt into 3D at height z.
func Vec3FromPoint(pt Point, z float64) Vec3 {
	return Vec3{X: pt.X, Y: pt.Y, Z: z}
}

// newFrame builds the matrix with columns u, v and origin.
func newFrame(u, v, origin Vec3) *Mat3 {
	return r3.NewMat([]float64{
		u.X, v.X, origin.X,
		u.Y, v.Y, origin.Y,
		u.Z, v.Z, origin.Z,
	})
}
