package planar

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Circle is a center and a strictly positive radius.
type Circle struct {
	Center Point
	Radius float64
}

// NewCircle builds a circle; the radius must be strictly positive.
func NewCircle(center Point, radius float64) (Circle, error) {
	if radius <= 0 {
		return Circle{}, errors.Wrapf(ErrDegenerateInput, "radius %v is not positive", radius)
	}
	return Circle{center, radius}, nil
}

// Area of the disk.
func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

// SideOfPoint locates p relative to the circle: 1 inside, 0 on the
// circumference within tolerance, -1 outside.
func (c Circle) SideOfPoint(p Point) int {
	dist := c.Center.Sub(p).Abs()
	if Equal(dist, c.Radius) {
		return 0
	}
	if dist < c.Radius {
		return 1
	}
	return -1
}

// SideOfTouchingCircle classifies tangency: 1 internally tangent, -1
// externally tangent, 0 not tangent.
func (c Circle) SideOfTouchingCircle(other Circle) int {
	dist := c.Center.Sub(other.Center).Abs()
	switch {
	case Equal(dist, math.Abs(c.Radius-other.Radius)):
		return 1
	case Equal(dist, c.Radius+other.Radius):
		return -1
	default:
		return 0
	}
}

// SideOfApartingCircle classifies separation: 1 when one circle strictly
// contains the other, -1 when strictly disjoint, 0 when tangent or crossing
// at two points.
func (c Circle) SideOfApartingCircle(other Circle) int {
	if c.SideOfTouchingCircle(other) != 0 {
		return 0
	}
	dist := c.Center.Sub(other.Center).Abs()
	switch {
	case dist < math.Abs(c.Radius-other.Radius):
		return 1
	case c.Radius+other.Radius < dist:
		return -1
	default:
		return 0
	}
}

// CrossingPointsWithCircle returns the 0-2 intersection points with another
// circle. Tangent circles yield the single tangency point; strictly nested
// or disjoint circles yield nothing.
func (c Circle) CrossingPointsWithCircle(other Circle) []Point {
	switch {
	case c.SideOfTouchingCircle(other) == 1:
		unit := other.Center.Sub(c.Center).Unit()
		if c.Radius > other.Radius {
			return []Point{c.Center.Add(unit.Scale(c.Radius))}
		}
		return []Point{other.Center.Sub(unit.Scale(other.Radius))}
	case c.SideOfTouchingCircle(other) == -1:
		unit := other.Center.Sub(c.Center).Unit()
		return []Point{c.Center.Add(unit.Scale(c.Radius))}
	case c.SideOfApartingCircle(other) == 0:
		// Two crossings: law of cosines gives the chord foot along the
		// center line, the half chord sits perpendicular to it.
		dist := c.Center.Sub(other.Center).Abs()
		cosine := (c.Radius*c.Radius - other.Radius*other.Radius + dist*dist) / (2 * dist)
		h := math.Sqrt(c.Radius*c.Radius - cosine*cosine)
		unit := other.Center.Sub(c.Center).Unit()
		foot := c.Center.Add(unit.Scale(cosine))
		offset := unit.Rotate(math.Pi / 2).Scale(h)
		return []Point{foot.Add(offset), foot.Sub(offset)}
	default:
		return nil
	}
}

// IsTouchingLine reports whether the line is tangent to the circle.
func (c Circle) IsTouchingLine(line Line) bool {
	return Equal(line.DistanceToPoint(c.Center), c.Radius)
}

// IsCrossingLine reports whether the line meets the circle in at least one
// point.
func (c Circle) IsCrossingLine(line Line) bool {
	if c.IsTouchingLine(line) {
		return true
	}
	return line.DistanceToPoint(c.Center) < c.Radius
}

// CrossingPointsWithLine returns the 0-2 intersection points with a line. A
// secant's two points come back ordered along the line's direction, which
// the polygon-circle area accumulation relies on.
func (c Circle) CrossingPointsWithLine(line Line) []Point {
	if !c.IsTouchingLine(line) && !c.IsCrossingLine(line) {
		return nil
	}
	projection := line.Projection(c.Center)
	if c.IsTouchingLine(line) {
		return []Point{projection}
	}
	dist := projection.Sub(c.Center).Abs()
	unit := line.P2.Sub(line.P1).Unit()
	d := math.Sqrt(c.Radius*c.Radius - dist*dist)
	return []Point{projection.Sub(unit.Scale(d)), projection.Add(unit.Scale(d))}
}

// TouchingPointsWithTangent returns the points where tangent lines through p
// touch the circle: none when p is inside, p itself when p is on the
// circle, and otherwise the two intersections with the auxiliary circle
// centered at p whose radius is the tangent length.
func (c Circle) TouchingPointsWithTangent(p Point) []Point {
	switch c.SideOfPoint(p) {
	case 1:
		return nil
	case 0:
		return []Point{p}
	default:
		centerDist := p.Sub(c.Center).Abs()
		radius := math.Sqrt(centerDist*centerDist - c.Radius*c.Radius)
		return c.CrossingPointsWithCircle(Circle{p, radius})
	}
}

// AreaCommonWithCircle is the area of the lens shared with another circle:
// the smaller disk when one contains the other, zero when they are apart,
// and otherwise the two circular segments on either side of the common
// chord.
func (c Circle) AreaCommonWithCircle(other Circle) float64 {
	switch {
	case c.SideOfApartingCircle(other) == 1 || c.SideOfTouchingCircle(other) == 1:
		return math.Min(c.Area(), other.Area())
	case c.SideOfApartingCircle(other) == -1 || c.SideOfTouchingCircle(other) == -1:
		return 0
	}

	crossings := c.CrossingPointsWithCircle(other)
	p1, p2 := crossings[0], crossings[1]
	theta1 := math.Atan2(
		p1.Sub(c.Center).Cross(other.Center.Sub(c.Center)),
		p1.Sub(c.Center).Dot(other.Center.Sub(c.Center)),
	)
	theta2 := math.Atan2(
		p1.Sub(other.Center).Cross(c.Center.Sub(other.Center)),
		p1.Sub(other.Center).Dot(c.Center.Sub(other.Center)),
	)
	arc1 := math.Abs(c.Radius * c.Radius * theta1)
	arc2 := math.Abs(other.Radius * other.Radius * theta2)
	tri1 := p1.Sub(c.Center).Cross(p2.Sub(c.Center)) / 2
	tri2 := p2.Sub(other.Center).Cross(p1.Sub(other.Center)) / 2
	return arc1 + arc2 + tri1 + tri2
}

// AreaCommonWithPolygon delegates to the polygon-side implementation, so
// both call directions are identical by construction.
func (c Circle) AreaCommonWithPolygon(poly Polygon) float64 {
	return poly.AreaCommonWithCircle(c)
}

func (c Circle) String() string {
	return fmt.Sprintf("o: %s, r: %.*f", c.Center, digits, c.Radius)
}
