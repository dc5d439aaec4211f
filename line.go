package planar

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Liner is a straight operand for the crossing predicates: a Line or a
// Segment. The set is closed; handing any other implementation to IsCrossing
// or CrossingPoint panics with ErrUnsupportedOperand.
type Liner interface {
	// Endpoints returns the two distinct points defining the operand.
	Endpoints() (Point, Point)
}

// Line is the infinite line through two distinct points. Swapping P1 and P2
// yields the same line; only the crossing-point parametrization notices
// direction.
type Line struct {
	P1, P2 Point
}

// NewLine builds the line through p1 and p2. The points must be distinct
// within tolerance.
func NewLine(p1, p2 Point) (Line, error) {
	if p1.Equal(p2) {
		return Line{}, errors.Wrapf(ErrDegenerateInput, "line endpoints coincide at %s", p1)
	}
	return Line{p1, p2}, nil
}

func (l Line) Endpoints() (Point, Point) {
	return l.P1, l.P2
}

// Slope returns (y2-y1)/(x2-x1), or +Inf for a vertical line.
func (l Line) Slope() float64 {
	if Equal(l.P1.X, l.P2.X) {
		return math.Inf(1)
	}
	return (l.P2.Y - l.P1.Y) / (l.P2.X - l.P1.X)
}

// Projection is the orthogonal projection of p onto the line.
func (l Line) Projection(p Point) Point {
	base := l.P2.Sub(l.P1)
	t := p.Sub(l.P1).Dot(base) / (base.Abs() * base.Abs())
	return l.P1.Add(base.Scale(t))
}

// Reflection mirrors p across the line.
func (l Line) Reflection(p Point) Point {
	return p.Add(l.Projection(p).Sub(p).Scale(2))
}

// IsParallel reports whether the direction vectors have a zero cross product
// within tolerance.
func (l Line) IsParallel(other Liner) bool {
	o1, o2 := other.Endpoints()
	return Equal(l.P2.Sub(l.P1).Cross(o2.Sub(o1)), 0)
}

// IsOrthogonal reports whether the direction vectors have a zero dot product
// within tolerance.
func (l Line) IsOrthogonal(other Liner) bool {
	o1, o2 := other.Endpoints()
	return Equal(l.P2.Sub(l.P1).Dot(o2.Sub(o1)), 0)
}

// IncludesPoint reports whether p lies on the line.
func (l Line) IncludesPoint(p Point) bool {
	if l.P1.Equal(p) || l.P2.Equal(p) {
		return true
	}
	return l.P2.Sub(l.P1).CCW(p.Sub(l.P1)) == 0
}

// IsCrossing reports whether the line shares at least one point with other.
// Two lines always cross unless they are parallel and not coincident;
// coincident lines count as crossing. Against a segment, the line crosses if
// it contains either endpoint or the endpoints sit on strictly opposite
// orientation sides.
func (l Line) IsCrossing(other Liner) bool {
	switch o := other.(type) {
	case Line:
		return l.isCrossingLine(o.P1, o.P2)
	case Segment:
		return l.isCrossingSegment(o)
	default:
		panic(errors.Wrapf(ErrUnsupportedOperand, "%T", other))
	}
}

func (l Line) isCrossingLine(o1, o2 Point) bool {
	if l.IncludesPoint(o1) {
		return true
	}
	return !Equal(l.P2.Sub(l.P1).Cross(o2.Sub(o1)), 0)
}

func (l Line) isCrossingSegment(s Segment) bool {
	if l.IncludesPoint(s.P1) || l.IncludesPoint(s.P2) {
		return true
	}
	ccw1 := l.P2.Sub(l.P1).CCW(s.P1.Sub(l.P1))
	ccw2 := l.P2.Sub(l.P1).CCW(s.P2.Sub(l.P1))
	return ccw1*ccw2 < 0
}

// CrossingPoint returns the intersection with other, expressed on other's
// parametrization. The second result is false when the operands do not
// cross, or are parallel without being coincident. Exactly coincident
// operands return other's first endpoint as a canonical representative.
func (l Line) CrossingPoint(other Liner) (Point, bool) {
	return crossingPoint(l, l.IsCrossing(other), other)
}

// DistanceToPoint is the distance from p to its projection on the line.
func (l Line) DistanceToPoint(p Point) float64 {
	return p.Sub(l.Projection(p)).Abs()
}

func (l Line) String() string {
	return fmt.Sprintf("%s -- %s", l.P1, l.P2)
}

// Shared crossing-point solver. Both determinants zero means the operands
// are collinear, in which case other's first endpoint stands in for the
// whole overlap. A single zero determinant is plain parallelism.
func crossingPoint(self Liner, crossing bool, other Liner) (Point, bool) {
	if !crossing {
		return Point{}, false
	}
	p1, p2 := self.Endpoints()
	o1, o2 := other.Endpoints()
	d1 := p2.Sub(p1).Cross(o2.Sub(o1))
	d2 := p2.Sub(p1).Cross(p2.Sub(o1))
	if Equal(d1, 0) && Equal(d2, 0) {
		return o1, true
	}
	if Equal(d1, 0) {
		return Point{}, false
	}
	return o1.Add(o2.Sub(o1).Scale(d2 / d1)), true
}
