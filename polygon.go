package planar

import (
	"math"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Polygon is an ordered vertex loop, counter-clockwise by convention. The
// constructor collapses cyclically-consecutive duplicate vertices, so no two
// neighboring stored vertices are ever tolerance-equal. Operations are only
// meaningful for simple (non-self-intersecting) polygons, and the ones whose
// contract says "convex" hull their input first.
type Polygon struct {
	points []Point
}

// NewPolygon builds a polygon from vertices given in counter-clockwise
// order. Consecutive tolerance-equal vertices are merged, including across
// the closing edge; at least one vertex must survive.
func NewPolygon(points ...Point) (Polygon, error) {
	if len(points) == 0 {
		return Polygon{}, errors.Wrap(ErrDegenerateInput, "polygon needs at least one vertex")
	}
	kept := []Point{points[0]}
	for _, p := range points[1:] {
		if !kept[len(kept)-1].Equal(p) {
			kept = append(kept, p)
		}
	}
	for len(kept) > 1 && kept[len(kept)-1].Equal(kept[0]) {
		kept = kept[:len(kept)-1]
	}
	return Polygon{kept}, nil
}

func mustPolygon(points ...Point) Polygon {
	poly, err := NewPolygon(points...)
	if err != nil {
		panic(err)
	}
	return poly
}

// Len is the number of stored vertices.
func (poly Polygon) Len() int {
	return len(poly.points)
}

// Points returns a copy of the vertex loop.
func (poly Polygon) Points() []Point {
	points := make([]Point, len(poly.points))
	copy(points, poly.points)
	return points
}

// Vertex returns the i-th vertex; indices are cyclic in both directions.
func (poly Polygon) Vertex(i int) Point {
	return poly.points[CircularIndex(i, len(poly.points))]
}

// Area is the absolute shoelace area, so the vertex winding direction does
// not affect the result.
func (poly Polygon) Area() float64 {
	n := len(poly.points)
	area := 0.0
	for i, p1 := range poly.points {
		p2 := poly.points[(i+1)%n]
		area += p1.Cross(p2) / 2
	}
	return math.Abs(area)
}

// IsConvex scans consecutive vertex triples. The polygon is non-convex only
// when strict turns of both senses occur; collinear triples never break
// convexity.
func (poly Polygon) IsConvex() bool {
	n := len(poly.points)
	top, bottom := 0, 0
	for i := 0; i < n; i++ {
		a := poly.points[i]
		b := poly.points[(i+1)%n]
		c := poly.points[(i+2)%n]
		turn := b.Sub(a).CCW(c.Sub(b))
		if turn > top {
			top = turn
		}
		if turn < bottom {
			bottom = turn
		}
	}
	return !(top == 1 && bottom == -1)
}

// SideOfPoint locates p relative to the polygon: 1 inside, 0 on an edge, -1
// outside. Containment is decided by the winding angle accumulated around p,
// but any point found on an edge short-circuits to 0 before the sum can
// misbehave.
func (poly Polygon) SideOfPoint(p Point) int {
	n := len(poly.points)
	if n == 1 {
		if poly.points[0].Equal(p) {
			return 0
		}
		return -1
	}
	theta := 0.0
	for i := 0; i < n; i++ {
		a := poly.points[i]
		b := poly.points[(i+1)%n]
		if mustSegment(a, b).IncludesPoint(p) {
			return 0
		}
		theta += math.Atan2(a.Sub(p).Cross(b.Sub(p)), a.Sub(p).Dot(b.Sub(p)))
	}
	if -math.Pi < theta && theta < math.Pi {
		return -1
	}
	return 1
}

// pointStack backs the hull chain construction.
type pointStack []Point

func (s *pointStack) Push(p Point) {
	*s = append(*s, p)
}

func (s *pointStack) Pop() Point {
	p := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return p
}

func (s *pointStack) Empty() bool {
	return len(*s) == 0
}

// ConvexHull returns the convex hull of the vertices as a fresh CCW polygon
// built with Andrew's monotone chain. The receiver is left untouched; the
// sort happens on a working copy.
func (poly Polygon) ConvexHull() Polygon {
	points := poly.Points()
	sort.Slice(points, func(i, j int) bool {
		if points[i].Y != points[j].Y {
			return points[i].Y < points[j].Y
		}
		return points[i].X < points[j].X
	})
	n := len(points)

	if n <= 2 {
		return mustPolygon(points...)
	}
	if n == 3 {
		if points[1].Sub(points[0]).CCW(points[2].Sub(points[0])) < 0 {
			points[1], points[2] = points[2], points[1]
		}
		return mustPolygon(points...)
	}

	// The lower chain scans the sorted points forward, the upper chain
	// backward. A point is popped while the last three make a strict
	// clockwise turn; collinear runs stay.
	buildChain := func(pts []Point) pointStack {
		chain := pointStack{pts[0], pts[1]}
		for _, next := range pts[2:] {
			curr := chain.Pop()
			prev := chain.Pop()
			for {
				if curr.Sub(prev).CCW(next.Sub(curr)) >= 0 {
					chain.Push(prev)
					chain.Push(curr)
					break
				}
				if chain.Empty() {
					chain.Push(prev)
					break
				}
				curr = prev
				prev = chain.Pop()
			}
			chain.Push(next)
		}
		return chain
	}

	reversed := make([]Point, n)
	for i, p := range points {
		reversed[n-1-i] = p
	}
	right := buildChain(points)
	left := buildChain(reversed)

	// Each chain ends where the other begins; drop the duplicated ends.
	hull := append(right[:len(right)-1], left[:len(left)-1]...)
	return mustPolygon(hull...)
}

// Diameter is the farthest vertex pair distance, found by rotating calipers
// on the convex hull.
func (poly Polygon) Diameter() float64 {
	hull := poly.ConvexHull()
	pts := hull.points
	n := len(pts)
	if n == 2 {
		return pts[0].Sub(pts[1]).Abs()
	}

	// A collinear hull leaves the calipers with no turn to advance on; take
	// the farthest pair directly.
	if Equal(hull.Area(), 0) {
		res := 0.0
		for a := range pts {
			for b := a + 1; b < n; b++ {
				res = math.Max(res, pts[a].Sub(pts[b]).Abs())
			}
		}
		return res
	}

	// Start from the x-extremal antipodal pair and advance whichever
	// supporting edge trails in angle until both pointers wrap around.
	i, j := 0, 0
	for k := range pts {
		if pts[k].X < pts[i].X {
			i = k
		}
		if pts[k].X > pts[j].X {
			j = k
		}
	}
	res := 0.0
	si, sj := i, j
	for i != sj || j != si {
		res = math.Max(res, pts[i].Sub(pts[j]).Abs())
		vi := pts[(i+1)%n].Sub(pts[i])
		vj := pts[(j+1)%n].Sub(pts[j])
		if vi.Cross(vj) < 0 {
			i = (i + 1) % n
		} else {
			j = (j + 1) % n
		}
	}
	return res
}

// ConvexCommon intersects two convex polygons in O(n*m). Both operands are
// hulled defensively. The result is the hull of every vertex strictly inside
// the other polygon plus every boundary crossing point; ok is false when the
// polygons do not overlap at all. Degenerate overlaps can come back as hulls
// of one or two points.
func (poly Polygon) ConvexCommon(other Polygon) (Polygon, bool) {
	hullA := poly.ConvexHull()
	hullB := other.ConvexHull()

	var points []Point
	for _, p := range hullA.points {
		if hullB.SideOfPoint(p) == 1 {
			points = append(points, p)
		}
	}
	for _, p := range hullB.points {
		if hullA.SideOfPoint(p) == 1 {
			points = append(points, p)
		}
	}

	if len(hullA.points) >= 2 && len(hullB.points) >= 2 {
		for i := range hullA.points {
			edgeA := mustSegment(hullA.points[i], hullA.Vertex(i+1))
			for j := range hullB.points {
				edgeB := mustSegment(hullB.points[j], hullB.Vertex(j+1))
				if !edgeA.IsCrossing(edgeB) {
					continue
				}
				// Coincident carrier lines answer with a representative point
				// that can sit outside the overlap; only points on both edges
				// are real boundary intersections.
				p, ok := edgeA.CrossingPoint(edgeB)
				if ok && edgeA.IncludesPoint(p) && edgeB.IncludesPoint(p) {
					points = append(points, p)
				}
			}
		}
	}

	if len(points) == 0 {
		return Polygon{}, false
	}
	return mustPolygon(points...).ConvexHull(), true
}

// ConvexCutWithLine cuts a convex polygon with a directed line and returns
// the piece on the counter-clockwise (left) side. Vertices exactly on the
// line are kept. ok is false when the whole polygon lies on the clockwise
// side. Re-hulling only repairs ordering: a convex region cut by a line
// stays convex.
func (poly Polygon) ConvexCutWithLine(line Line) (Polygon, bool) {
	dir := line.P2.Sub(line.P1)
	n := len(poly.points)
	var points []Point
	for i := 0; i < n; i++ {
		p := poly.points[i]
		q := poly.points[(i+1)%n]
		if dir.CCW(p.Sub(line.P1)) != -1 {
			points = append(points, p)
		}
		if p.Sub(line.P1).CCW(dir)*q.Sub(line.P1).CCW(dir) < 0 {
			if cp, ok := mustSegment(p, q).CrossingPoint(line); ok {
				points = append(points, cp)
			}
		}
	}
	if len(points) == 0 {
		return Polygon{}, false
	}
	return mustPolygon(points...).ConvexHull(), true
}

// AreaCommonWithCircle is the area of the intersection between the polygon
// and a circle. The vertex loop is augmented with the circle crossings that
// fall strictly inside each edge; each consecutive pair then contributes a
// circular sector when either end is outside the circle, and a signed
// triangle otherwise.
func (poly Polygon) AreaCommonWithCircle(circle Circle) float64 {
	n := len(poly.points)
	if n == 1 {
		return 0
	}
	var points []Point
	for i := 0; i < n; i++ {
		points = append(points, poly.points[i])
		edge := mustSegment(poly.points[i], poly.points[(i+1)%n])
		for _, p := range circle.CrossingPointsWithLine(edge.Line()) {
			if edge.IncludesPoint(p) && !p.Equal(edge.P1) && !p.Equal(edge.P2) {
				points = append(points, p)
			}
		}
	}

	area := 0.0
	for i, p1 := range points {
		p2 := points[(i+1)%len(points)]
		dot := p1.Sub(circle.Center).Dot(p2.Sub(circle.Center))
		cross := p1.Sub(circle.Center).Cross(p2.Sub(circle.Center))
		if circle.SideOfPoint(p1) == -1 || circle.SideOfPoint(p2) == -1 {
			theta := math.Atan2(cross, dot)
			area += circle.Radius * circle.Radius * theta / 2
		} else {
			area += cross / 2
		}
	}
	return math.Abs(area)
}

func (poly Polygon) String() string {
	parts := make([]string, len(poly.points))
	for i, p := range poly.points {
		parts[i] = p.String()
	}
	return strings.Join(parts, " -> ")
}
