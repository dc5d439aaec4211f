package planar

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Segment is the bounded line between two distinct points. It wraps the same
// endpoint pair as a Line rather than extending one; operations whose
// meaning changes under boundedness are redefined here, the rest delegate to
// the carrier line.
type Segment struct {
	P1, P2 Point
}

// NewSegment builds the segment from p1 to p2. The points must be distinct
// within tolerance.
func NewSegment(p1, p2 Point) (Segment, error) {
	if p1.Equal(p2) {
		return Segment{}, errors.Wrapf(ErrDegenerateInput, "segment endpoints coincide at %s", p1)
	}
	return Segment{p1, p2}, nil
}

// mustSegment builds a segment whose endpoints are guaranteed distinct by an
// upstream invariant.
func mustSegment(p1, p2 Point) Segment {
	s, err := NewSegment(p1, p2)
	if err != nil {
		panic(err)
	}
	return s
}

func (s Segment) Endpoints() (Point, Point) {
	return s.P1, s.P2
}

// Line returns the carrier line through the segment's endpoints.
func (s Segment) Line() Line {
	return Line{s.P1, s.P2}
}

// Length is the distance between the endpoints.
func (s Segment) Length() float64 {
	return s.P2.Sub(s.P1).Abs()
}

func (s Segment) Slope() float64 {
	return s.Line().Slope()
}

func (s Segment) Projection(p Point) Point {
	return s.Line().Projection(p)
}

func (s Segment) Reflection(p Point) Point {
	return s.Line().Reflection(p)
}

func (s Segment) IsParallel(other Liner) bool {
	return s.Line().IsParallel(other)
}

func (s Segment) IsOrthogonal(other Liner) bool {
	return s.Line().IsOrthogonal(other)
}

// Bisector is the perpendicular bisector, built by rotating both endpoints a
// quarter turn about the midpoint.
func (s Segment) Bisector() Line {
	center := s.P1.Add(s.P2).Scale(0.5)
	p1 := s.P1.RotateAround(math.Pi/2, center)
	p2 := s.P2.RotateAround(math.Pi/2, center)
	return Line{p1, p2}
}

// IncludesPoint reports whether p lies on the segment, endpoints included.
func (s Segment) IncludesPoint(p Point) bool {
	if !s.Line().IncludesPoint(p) {
		return false
	}
	length := s.Length()
	ref := s.P2.Sub(s.P1).Dot(p.Sub(s.P1)) / length
	return Equal(ref, 0) || Equal(ref, length) || (0 < ref && ref < length)
}

// IsCrossing reports whether the segment shares at least one point with
// other. Against another segment this is the CCW sign-alternation test with
// endpoint containment handling the collinear and touching cases.
func (s Segment) IsCrossing(other Liner) bool {
	switch o := other.(type) {
	case Line:
		return o.isCrossingLine(s.P1, s.P2)
	case Segment:
		return s.isCrossingSegment(o)
	default:
		panic(errors.Wrapf(ErrUnsupportedOperand, "%T", other))
	}
}

func (s Segment) isCrossingSegment(other Segment) bool {
	if s.IncludesPoint(other.P1) || s.IncludesPoint(other.P2) ||
		other.IncludesPoint(s.P1) || other.IncludesPoint(s.P2) {
		return true
	}
	ccw1 := s.P2.Sub(s.P1).CCW(other.P1.Sub(s.P1))
	ccw2 := s.P2.Sub(s.P1).CCW(other.P2.Sub(s.P1))
	ccw3 := other.P2.Sub(other.P1).CCW(s.P1.Sub(other.P1))
	ccw4 := other.P2.Sub(other.P1).CCW(s.P2.Sub(other.P1))
	return ccw1 != ccw2 && ccw3 != ccw4
}

// CrossingPoint returns the intersection with other, expressed on other's
// parametrization; false when the operands do not cross.
func (s Segment) CrossingPoint(other Liner) (Point, bool) {
	return crossingPoint(s, s.IsCrossing(other), other)
}

// DistanceToPoint is the distance from p to the segment: the projection
// distance when the projection lands on the segment, otherwise the nearer
// endpoint distance.
func (s Segment) DistanceToPoint(p Point) float64 {
	projection := s.Projection(p)
	if s.IncludesPoint(projection) {
		return p.Sub(projection).Abs()
	}
	return math.Min(s.P1.Sub(p).Abs(), s.P2.Sub(p).Abs())
}

// DistanceToSegment is the smallest distance between any two points of the
// segments; zero exactly when they cross.
func (s Segment) DistanceToSegment(other Segment) float64 {
	if s.IsCrossing(other) {
		return 0
	}
	d := s.DistanceToPoint(other.P1)
	d = math.Min(d, s.DistanceToPoint(other.P2))
	d = math.Min(d, other.DistanceToPoint(s.P1))
	return math.Min(d, other.DistanceToPoint(s.P2))
}

func (s Segment) String() string {
	return fmt.Sprintf("%s -- %s", s.P1, s.P2)
}
