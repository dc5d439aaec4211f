package planar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func circle(t *testing.T, center Point, radius float64) Circle {
	t.Helper()
	c, err := NewCircle(center, radius)
	require.NoError(t, err)
	return c
}

// Order-insensitive point set comparison; crossing points have no canonical
// ordering in general.
func assertSamePoints(t *testing.T, expected, actual []Point) {
	t.Helper()
	require.Len(t, actual, len(expected))
	for _, want := range expected {
		found := false
		for _, got := range actual {
			if want.Equal(got) {
				found = true
				break
			}
		}
		assert.True(t, found, "missing point %s in %v", want, actual)
	}
}

func TestNewCircleRejectsNonPositiveRadius(t *testing.T) {
	_, err := NewCircle(Point{1, 1}, 0)
	assert.ErrorIs(t, err, ErrDegenerateInput)
	_, err = NewCircle(Point{1, 1}, -2)
	assert.ErrorIs(t, err, ErrDegenerateInput)
}

func TestCircleArea(t *testing.T) {
	assert.InDelta(t, 4*math.Pi, circle(t, Point{}, 2).Area(), 1e-12)
}

func TestCircleSideOfPoint(t *testing.T) {
	c := circle(t, Point{1, 1}, 2)
	assert.Equal(t, 1, c.SideOfPoint(Point{1, 1}))
	assert.Equal(t, 1, c.SideOfPoint(Point{2, 2}))
	assert.Equal(t, 0, c.SideOfPoint(Point{3, 1}))
	assert.Equal(t, 0, c.SideOfPoint(Point{1, -1}))
	assert.Equal(t, -1, c.SideOfPoint(Point{4, 1}))
}

func TestCircleTouchingAndAparting(t *testing.T) {
	unit := circle(t, Point{0, 0}, 1)

	// Strictly apart.
	assert.Equal(t, 0, unit.SideOfTouchingCircle(circle(t, Point{3, 0}, 1)))
	assert.Equal(t, -1, unit.SideOfApartingCircle(circle(t, Point{3, 0}, 1)))

	// Externally tangent.
	assert.Equal(t, -1, unit.SideOfTouchingCircle(circle(t, Point{2, 0}, 1)))
	assert.Equal(t, 0, unit.SideOfApartingCircle(circle(t, Point{2, 0}, 1)))

	// Crossing at two points.
	wide := circle(t, Point{0, 0}, 2)
	assert.Equal(t, 0, wide.SideOfTouchingCircle(circle(t, Point{2, 0}, 1)))
	assert.Equal(t, 0, wide.SideOfApartingCircle(circle(t, Point{2, 0}, 1)))

	// Internally tangent.
	assert.Equal(t, 1, wide.SideOfTouchingCircle(circle(t, Point{1, 0}, 1)))
	assert.Equal(t, 0, wide.SideOfApartingCircle(circle(t, Point{1, 0}, 1)))

	// Strictly contained.
	huge := circle(t, Point{0, 0}, 3)
	assert.Equal(t, 0, huge.SideOfTouchingCircle(circle(t, Point{1, 0}, 1)))
	assert.Equal(t, 1, huge.SideOfApartingCircle(circle(t, Point{1, 0}, 1)))
}

func TestCircleCrossingPointsWithCircle(t *testing.T) {
	crossings := circle(t, Point{0, 0}, 2).CrossingPointsWithCircle(circle(t, Point{2, 0}, 2))
	assertSamePoints(t, []Point{{1, 1.73205080}, {1, -1.73205080}}, crossings)

	// Externally tangent: the single tangency point.
	touch := circle(t, Point{0, 0}, 2).CrossingPointsWithCircle(circle(t, Point{0, 3}, 1))
	assertSamePoints(t, []Point{{0, 2}}, touch)

	// Internally tangent, from both call directions.
	touch = circle(t, Point{0, 0}, 2).CrossingPointsWithCircle(circle(t, Point{1, 0}, 1))
	assertSamePoints(t, []Point{{2, 0}}, touch)
	touch = circle(t, Point{1, 0}, 1).CrossingPointsWithCircle(circle(t, Point{0, 0}, 2))
	assertSamePoints(t, []Point{{2, 0}}, touch)

	// Nested and disjoint circles never meet.
	assert.Empty(t, circle(t, Point{0, 0}, 3).CrossingPointsWithCircle(circle(t, Point{1, 0}, 1)))
	assert.Empty(t, circle(t, Point{0, 0}, 1).CrossingPointsWithCircle(circle(t, Point{5, 0}, 1)))
}

func TestCircleCrossingPointsWithLine(t *testing.T) {
	c := circle(t, Point{2, 1}, 1)

	// Secant points come back ordered along the line direction.
	crossings := c.CrossingPointsWithLine(line(t, Point{0, 1}, Point{4, 1}))
	require.Len(t, crossings, 2)
	assert.True(t, Point{1, 1}.Equal(crossings[0]))
	assert.True(t, Point{3, 1}.Equal(crossings[1]))

	// Tangent line.
	crossings = c.CrossingPointsWithLine(line(t, Point{3, 0}, Point{3, 3}))
	assertSamePoints(t, []Point{{3, 1}}, crossings)

	assert.Empty(t, c.CrossingPointsWithLine(line(t, Point{0, 3}, Point{4, 3})))
}

func TestCircleIsTouchingAndCrossingLine(t *testing.T) {
	c := circle(t, Point{2, 1}, 1)
	assert.True(t, c.IsTouchingLine(line(t, Point{3, 0}, Point{3, 3})))
	assert.False(t, c.IsTouchingLine(line(t, Point{0, 1}, Point{4, 1})))
	assert.True(t, c.IsCrossingLine(line(t, Point{0, 1}, Point{4, 1})))
	assert.True(t, c.IsCrossingLine(line(t, Point{3, 0}, Point{3, 3})))
	assert.False(t, c.IsCrossingLine(line(t, Point{0, 3}, Point{4, 3})))
}

func TestCircleTouchingPointsWithTangent(t *testing.T) {
	c := circle(t, Point{2, 2}, 2)

	assertSamePoints(t, []Point{{0, 2}, {2, 0}}, c.TouchingPointsWithTangent(Point{0, 0}))
	assertSamePoints(t,
		[]Point{{0.6206896552, 3.4482758621}, {2, 0}},
		c.TouchingPointsWithTangent(Point{-3, 0}))

	// No tangent through an interior point.
	assert.Empty(t, c.TouchingPointsWithTangent(Point{2, 3}))

	// A point on the circle is its own tangency point.
	assertSamePoints(t, []Point{{4, 2}}, c.TouchingPointsWithTangent(Point{4, 2}))
}

func TestCircleAreaCommonWithCircle(t *testing.T) {
	a := circle(t, Point{0, 0}, 1)
	b := circle(t, Point{2, 0}, 2)
	assert.InDelta(t, 1.40306643968573875104, a.AreaCommonWithCircle(b), 1e-9)
	assert.InDelta(t, 1.40306643968573875104, b.AreaCommonWithCircle(a), 1e-9)

	// Containment: the smaller disk, from either side.
	inner := circle(t, Point{1, 0}, 1)
	outer := circle(t, Point{0, 0}, 3)
	assert.InDelta(t, math.Pi, inner.AreaCommonWithCircle(outer), 1e-9)
	assert.InDelta(t, math.Pi, outer.AreaCommonWithCircle(inner), 1e-9)

	// Apart or externally tangent: nothing shared.
	assert.InDelta(t, 0, a.AreaCommonWithCircle(circle(t, Point{5, 0}, 1)), 1e-12)
	assert.InDelta(t, 0, a.AreaCommonWithCircle(circle(t, Point{3, 0}, 2)), 1e-12)
}

func TestCircleString(t *testing.T) {
	assert.Equal(t, "o: (2.0000000000, 1.0000000000), r: 1.0000000000", circle(t, Point{2, 1}, 1).String())
}
