// A tolerance-based 2-D computational geometry package.
//
// This package provides points, lines, segments, polygons and circles with
// the classical algorithms over them: projection and reflection, orientation
// tests, intersection tests and points, distances, polygon area, convexity
// and containment, convex hulls, farthest pairs, convex polygon intersection
// and cutting, and intersection areas with circles.
//
// All coordinates are float64, so every equality decision in the package is
// tolerance based. Predicates answer through a shared three-way orientation
// sign, which keeps edge-case behavior consistent across the whole package.
package planar

import "math"

// Eps is the tolerance under which two coordinates are considered equal.
const Eps = 1e-8

// digits is the fractional precision used by the String methods.
const digits = 10

// To compensate for imprecision in floats, equality is tolerance based. If we
// don't account for this, nearly-collinear configurations flip between
// "crossing" and "parallel" depending on rounding noise.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Eps
}

// Often we want to treat a vertex list as a circular buffer. This gives the
// modular index given length n, but unlike the raw modulo operator, it only
// gives positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
