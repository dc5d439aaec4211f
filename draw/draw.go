// Package draw renders planar primitives to a raster image. It only reads
// coordinates from the geometry types; nothing here participates in the
// geometric reasoning.
package draw

import (
	"image/color"
	"io"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"

	planar "github.com/mikanbox/planar"
)

// Canvas size in pixels; the canvas is always square.
const size = 1000

// Canvas maps a square math-style coordinate range (y up) onto a raster
// image. Primitives must fit the [Bottom, Top] range on both axes; drawing
// methods reject coordinates outside it.
type Canvas struct {
	ctx         *gg.Context
	bottom, top float64
}

// New creates a white canvas covering [bottom, top] on both axes.
func New(bottom, top float64) (*Canvas, error) {
	if top <= bottom {
		return nil, errors.Errorf("draw: invalid range [%v, %v]", bottom, top)
	}
	ctx := gg.NewContext(size, size)
	ctx.SetRGB(1, 1, 1)
	ctx.DrawRectangle(0, 0, size, size)
	ctx.Fill()
	ctx.SetRGB(0, 0, 0)
	ctx.SetLineWidth(1)
	return &Canvas{ctx: ctx, bottom: bottom, top: top}, nil
}

// SetColor sets the color used by subsequent drawing calls.
func (c *Canvas) SetColor(col color.Color) {
	c.ctx.SetColor(col)
}

// SetLineWidth sets the stroke width in pixels.
func (c *Canvas) SetLineWidth(w float64) {
	c.ctx.SetLineWidth(w)
}

func (c *Canvas) magnification() float64 {
	return size / (c.top - c.bottom)
}

// convert maps a math coordinate to a pixel coordinate, flipping y so the
// origin sits at the bottom left.
func (c *Canvas) convert(p planar.Point) (float64, float64) {
	magn := c.magnification()
	return (p.X - c.bottom) * magn, size - (p.Y-c.bottom)*magn
}

func (c *Canvas) checkPoint(p planar.Point) error {
	if p.X < c.bottom || p.X > c.top || p.Y < c.bottom || p.Y > c.top {
		return errors.Errorf("draw: %s outside canvas range [%v, %v]", p, c.bottom, c.top)
	}
	return nil
}

// DrawAxes emphasizes the x=0 and y=0 lines when they fall in range.
func (c *Canvas) DrawAxes() {
	c.ctx.Push()
	defer c.ctx.Pop()
	c.ctx.SetRGB255(200, 200, 200)
	c.ctx.SetLineWidth(3)
	if c.bottom <= 0 && 0 <= c.top {
		c.strokeSegment(planar.Point{X: c.bottom}, planar.Point{X: c.top})
		c.strokeSegment(planar.Point{Y: c.bottom}, planar.Point{Y: c.top})
	}
}

// DrawGrid strokes light guide lines every step units.
func (c *Canvas) DrawGrid(step float64) {
	if step <= 0 {
		return
	}
	c.ctx.Push()
	defer c.ctx.Pop()
	c.ctx.SetRGB255(220, 220, 220)
	c.ctx.SetLineWidth(1)
	for x := 0.0; x <= c.top; x += step {
		c.strokeSegment(planar.Point{X: x, Y: c.bottom}, planar.Point{X: x, Y: c.top})
	}
	for x := -step; x >= c.bottom; x -= step {
		c.strokeSegment(planar.Point{X: x, Y: c.bottom}, planar.Point{X: x, Y: c.top})
	}
	for y := 0.0; y <= c.top; y += step {
		c.strokeSegment(planar.Point{X: c.bottom, Y: y}, planar.Point{X: c.top, Y: y})
	}
	for y := -step; y >= c.bottom; y -= step {
		c.strokeSegment(planar.Point{X: c.bottom, Y: y}, planar.Point{X: c.top, Y: y})
	}
}

func (c *Canvas) strokeSegment(p1, p2 planar.Point) {
	x1, y1 := c.convert(p1)
	x2, y2 := c.convert(p2)
	c.ctx.DrawLine(x1, y1, x2, y2)
	c.ctx.Stroke()
}

// DrawPoint fills a dot at p. A non-positive radius picks a default
// proportional to the canvas size.
func (c *Canvas) DrawPoint(p planar.Point, radius float64) error {
	if err := c.checkPoint(p); err != nil {
		return err
	}
	if radius <= 0 {
		radius = size / 150
	}
	x, y := c.convert(p)
	c.ctx.DrawPoint(x, y, radius)
	c.ctx.Fill()
	return nil
}

// DrawSegment strokes the segment.
func (c *Canvas) DrawSegment(s planar.Segment) error {
	if err := c.checkPoint(s.P1); err != nil {
		return err
	}
	if err := c.checkPoint(s.P2); err != nil {
		return err
	}
	c.strokeSegment(s.P1, s.P2)
	return nil
}

// DrawLine strokes the infinite line clipped to the canvas. Shallow lines
// are clipped against the vertical borders, steep ones against the
// horizontal borders.
func (c *Canvas) DrawLine(l planar.Line) error {
	lb := planar.Point{X: c.bottom, Y: c.bottom}
	lt := planar.Point{X: c.bottom, Y: c.top}
	rb := planar.Point{X: c.top, Y: c.bottom}
	rt := planar.Point{X: c.top, Y: c.top}
	var b1, b2 planar.Line
	if slope := l.Slope(); -1 < slope && slope < 1 {
		b1 = planar.Line{P1: lb, P2: lt}
		b2 = planar.Line{P1: rt, P2: rb}
	} else {
		b1 = planar.Line{P1: lb, P2: rb}
		b2 = planar.Line{P1: rt, P2: lt}
	}
	p1, ok1 := b1.CrossingPoint(l)
	p2, ok2 := b2.CrossingPoint(l)
	if !ok1 || !ok2 {
		return errors.Errorf("draw: line %s does not reach the canvas borders", l)
	}
	c.strokeSegment(p1, p2)
	return nil
}

// DrawPolygon strokes the closed vertex loop.
func (c *Canvas) DrawPolygon(poly planar.Polygon) error {
	points := poly.Points()
	for _, p := range points {
		if err := c.checkPoint(p); err != nil {
			return err
		}
	}
	x, y := c.convert(points[0])
	c.ctx.MoveTo(x, y)
	for _, p := range points[1:] {
		x, y = c.convert(p)
		c.ctx.LineTo(x, y)
	}
	c.ctx.ClosePath()
	c.ctx.Stroke()
	return nil
}

// DrawCircle strokes the circle outline.
func (c *Canvas) DrawCircle(circle planar.Circle) error {
	if err := c.checkPoint(circle.Center); err != nil {
		return err
	}
	x, y := c.convert(circle.Center)
	c.ctx.DrawCircle(x, y, circle.Radius*c.magnification())
	c.ctx.Stroke()
	return nil
}

// SavePNG writes the canvas to path.
func (c *Canvas) SavePNG(path string) error {
	return c.ctx.SavePNG(path)
}

// Cat saves the canvas to path and prints it to w for terminals that speak
// the imgcat protocol.
func (c *Canvas) Cat(path string, w io.Writer) error {
	if err := c.SavePNG(path); err != nil {
		return err
	}
	imgcat.CatFile(path, w)
	return nil
}
