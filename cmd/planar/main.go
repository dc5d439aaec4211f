package main

import (
	"bufio"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/logrusorgru/aurora"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	planar "github.com/mikanbox/planar"
	"github.com/mikanbox/planar/draw"
)

// Demo for the geometry package. Input on stdin should be newline separated
// points in the form "x y", with each polygon separated by an extra newline.
// Every polygon gets its area, convexity, diameter and convex hull reported,
// and all of them are rendered together into a PNG.
var (
	out    = kingpin.Flag("out", "Output PNG path.").Default("planar.png").String()
	bottom = kingpin.Flag("bottom", "Smallest coordinate shown, both axes.").Default("0").Float64()
	top    = kingpin.Flag("top", "Largest coordinate shown, both axes.").Default("500").Float64()
	grid   = kingpin.Flag("grid", "Grid spacing; 0 disables the grid.").Default("0").Float64()
	cat    = kingpin.Flag("cat", "Also print the image to the terminal.").Bool()
)

func main() {
	kingpin.Parse()

	polygons := readPolygons(os.Stdin)
	fmt.Printf("Read %d polygons\n", len(polygons))

	canvas, err := draw.New(*bottom, *top)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	canvas.DrawAxes()
	canvas.DrawGrid(*grid)

	for _, poly := range polygons {
		name := petname.Generate(2, "-")
		report(name, poly)

		canvas.SetColor(color.Black)
		if err := canvas.DrawPolygon(poly); err != nil {
			fmt.Fprintf(os.Stderr, "skipping %s: %v\n", name, err)
			continue
		}
		canvas.SetColor(color.RGBA{G: 160, A: 255})
		if err := canvas.DrawPolygon(poly.ConvexHull()); err != nil {
			fmt.Fprintf(os.Stderr, "skipping hull of %s: %v\n", name, err)
		}
	}

	if *cat {
		err = canvas.Cat(*out, os.Stdout)
	} else {
		err = canvas.SavePNG(*out)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func report(name string, poly planar.Polygon) {
	shape := aurora.Red("concave")
	if poly.IsConvex() {
		shape = aurora.Green("convex")
	}
	fmt.Printf("%s: %d vertices, %s, area %.4f, diameter %.4f\n",
		aurora.Cyan(name), poly.Len(), shape, poly.Area(), poly.Diameter())
}

func readPolygons(in *os.File) []planar.Polygon {
	polygons := []planar.Polygon{}
	scanner := bufio.NewScanner(in)
	points := []planar.Point{}

	flush := func() {
		if len(points) == 0 {
			return
		}
		poly, err := planar.NewPolygon(points...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping polygon: %v\n", err)
		} else {
			polygons = append(polygons, poly)
		}
		points = []planar.Point{}
	}

	for scanner.Scan() {
		line := scanner.Text()

		// An empty line ends the current polygon.
		if line == "" {
			flush()
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping line %q: %v\n", line, err)
			continue
		}
		points = append(points, point)
	}

	flush()
	return polygons
}

func parsePoint(line string) (planar.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return planar.Point{}, fmt.Errorf("want \"x y\", got %d fields", len(parts))
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return planar.Point{}, err
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return planar.Point{}, err
	}
	return planar.Point{X: x, Y: y}, nil
}
