package planar

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Point is a 2-D coordinate, used interchangeably as a position and as a
// displacement vector. All operations return new values; a Point is never
// mutated once built.
type Point struct {
	X, Y float64
}

func (p Point) Add(other Point) Point {
	return Point{p.X + other.X, p.Y + other.Y}
}

func (p Point) Sub(other Point) Point {
	return Point{p.X - other.X, p.Y - other.Y}
}

func (p Point) Scale(k float64) Point {
	return Point{p.X * k, p.Y * k}
}

// Div divides both coordinates by k. Unlike the tolerance-based predicates,
// only an exact zero divisor is rejected.
func (p Point) Div(k float64) (Point, error) {
	if k == 0 {
		return Point{}, errors.Wrapf(ErrDivisionByZero, "dividing %s", p)
	}
	return Point{p.X / k, p.Y / k}, nil
}

// Abs is the magnitude of p taken as a vector from the origin.
func (p Point) Abs() float64 {
	return math.Hypot(p.X, p.Y)
}

func (p Point) Dot(other Point) float64 {
	return p.X*other.X + p.Y*other.Y
}

func (p Point) Cross(other Point) float64 {
	return p.X*other.Y - p.Y*other.X
}

// Move translates p by (dx, dy).
func (p Point) Move(dx, dy float64) Point {
	return Point{p.X + dx, p.Y + dy}
}

// Rotate rotates p by theta radians about the coordinate origin.
func (p Point) Rotate(theta float64) Point {
	return p.RotateAround(theta, Point{})
}

// RotateAround rotates p by theta radians about origin.
func (p Point) RotateAround(theta float64, origin Point) Point {
	relative := p.Sub(origin)
	sin, cos := math.Sincos(theta)
	return origin.Add(Point{
		relative.X*cos - relative.Y*sin,
		relative.X*sin + relative.Y*cos,
	})
}

// CCW reports the turn direction from p to other: +1 when other is
// counter-clockwise of p, -1 when clockwise, and 0 when the cross product is
// zero within tolerance. This three-way sign is the tie-breaking primitive
// behind every predicate in the package.
func (p Point) CCW(other Point) int {
	cross := p.Cross(other)
	switch {
	case Equal(cross, 0):
		return 0
	case cross < 0:
		return -1
	default:
		return 1
	}
}

// Unit returns the unit vector in p's direction, or the zero vector when p
// itself is zero within tolerance.
func (p Point) Unit() Point {
	mag := p.Abs()
	if Equal(mag, 0) {
		return Point{}
	}
	return Point{p.X / mag, p.Y / mag}
}

// Equal is tolerance-based, coordinate-wise equality.
func (p Point) Equal(other Point) bool {
	return Equal(p.X, other.X) && Equal(p.Y, other.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%.*f, %.*f)", digits, p.X, digits, p.Y)
}
