// Package odr computes the 3D surface geometry of roads described in the
// style of OpenDRIVE: a planar reference line made of analytic segments, plus
// attributes that vary along it and shape the road's cross section.
//
// Given an arc-length position s along a road and a lateral offset t, the
// package returns the exact 3D point on the road surface. Parsing road
// descriptions, lane topology, junctions and mesh generation are left to
// other packages, which construct the values this package queries.
//
// # Reference lines and segments
//
// A [RefLine] is an ordered chain of [Segment] values that together cover
// [0, Length). Segment is a tagged union of five geometries:
//   - [Line]
//   - [Arc], of constant curvature
//   - [Spiral], a clothoid whose curvature changes linearly with arc length
//   - [Poly3], a cubic polynomial in the segment's local frame
//   - [ParamPoly3], a parametric cubic in the segment's local frame
//
// Every geometry can compute points and tangents, its bounding box from its
// extrema, and the closest point to a query point. Lines and arcs are
// projected exactly; the other geometries use a bounded numeric search (see
// [ProjectOptions]). Spiral positions are Fresnel integrals, evaluated with
// Gauss–Legendre quadrature.
//
// # Attribute tracks
//
// Superelevation, crossfall, lane borders and elevation are [Track] values:
// piecewise cubic polynomials keyed by arc length. A query resolves to the
// piece with the greatest key not exceeding s and evaluates it at the
// distance from that key. This is a step function of polynomials, not a
// spline, and no continuity between pieces is enforced. [Crossfall]
// additionally restricts each piece to one [Side] of the road. The generic
// [StepFunc] underlies all of them, as well as the lane sections of a road.
//
// # Roads
//
// A [Road] builds a local frame at s from the reference line's tangent and
// the superelevation ([Road.TransformationMatrix]), and places lateral and
// height offsets into it ([Road.XYZ]). [Road.SurfacePoint] finds the lane at
// (s, t) and applies crossfall, level lanes and lane height offsets.
//
// Missing lane data is not an error: SurfacePoint falls back to the plane of
// the reference line and returns a [Diagnostic], which callers can log with
// [Diagnostic.Log].
//
// # Coordinates
//
// Headings are measured in radians anti-clockwise from the x axis, and
// positive lateral offsets are to the left of the direction of travel. Left
// lanes have positive IDs.
//
// # Concurrency
//
// Constructors validate their input and return errors for structurally
// invalid data. Once constructed, all values are immutable, and all queries
// are safe for concurrent use.
package odr
