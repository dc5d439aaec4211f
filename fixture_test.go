package planar

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file loads SVG fixtures and turns their first polygon element into a
// CCW vertex list. It is not a real SVG parser; if anything is off, it
// fails the whole run.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func loadFixture(name string) Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Want exactly one polygon in fixture %q, got %d", name, len(polygons))
	}

	var points []Point
	for _, pointString := range strings.Split(polygons[0].Attributes["points"], " ") {
		if pointString == "" {
			continue
		}
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		points = append(points, Point{x, y})
	}

	// SVG polygons wind whichever way the author drew them; normalize to CCW.
	if signedArea(points) < 0 {
		for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
			points[i], points[j] = points[j], points[i]
		}
	}

	poly, err := NewPolygon(points...)
	if err != nil {
		log.Fatalf("Fixture %q is degenerate: %v", name, err)
	}
	return poly
}

func signedArea(points []Point) float64 {
	area := 0.0
	for i, p := range points {
		area += p.Cross(points[(i+1)%len(points)]) / 2
	}
	return area
}

// An ad hoc star for tests that want a non-convex polygon without touching
// the SVG fixtures.
func starPolygon(spikes int, outerRadius, innerRadius float64) Polygon {
	var points []Point
	for i := 0; i < 2*spikes; i++ {
		radius := outerRadius
		if i%2 == 1 {
			radius = innerRadius
		}
		angle := math.Pi * float64(i) / float64(spikes)
		points = append(points, Point{radius * math.Cos(angle), radius * math.Sin(angle)})
	}
	return mustPolygon(points...)
}
