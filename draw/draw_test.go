package draw

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	planar "github.com/mikanbox/planar"
)

func TestNewRejectsEmptyRange(t *testing.T) {
	_, err := New(5, 5)
	assert.Error(t, err)
	_, err = New(3, -3)
	assert.Error(t, err)
}

func TestDrawScene(t *testing.T) {
	canvas, err := New(-10, 10)
	require.NoError(t, err)

	canvas.DrawAxes()
	canvas.DrawGrid(1)

	canvas.SetColor(color.Black)
	canvas.SetLineWidth(2)
	require.NoError(t, canvas.DrawPoint(planar.Point{X: 1, Y: 2}, 0))

	seg, err := planar.NewSegment(planar.Point{X: -5, Y: -5}, planar.Point{X: 5, Y: 5})
	require.NoError(t, err)
	require.NoError(t, canvas.DrawSegment(seg))

	shallow, err := planar.NewLine(planar.Point{X: 0, Y: 1}, planar.Point{X: 3, Y: 2})
	require.NoError(t, err)
	require.NoError(t, canvas.DrawLine(shallow))

	steep, err := planar.NewLine(planar.Point{X: 2, Y: 0}, planar.Point{X: 2, Y: 1})
	require.NoError(t, err)
	require.NoError(t, canvas.DrawLine(steep))

	poly, err := planar.NewPolygon(
		planar.Point{X: -4, Y: -4}, planar.Point{X: 4, Y: -4}, planar.Point{X: 0, Y: 6},
	)
	require.NoError(t, err)
	require.NoError(t, canvas.DrawPolygon(poly))

	circ, err := planar.NewCircle(planar.Point{X: 0, Y: 0}, 3)
	require.NoError(t, err)
	require.NoError(t, canvas.DrawCircle(circ))

	path := filepath.Join(t.TempDir(), "scene.png")
	require.NoError(t, canvas.SavePNG(path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestDrawRejectsOutOfRangeCoordinates(t *testing.T) {
	canvas, err := New(0, 4)
	require.NoError(t, err)

	assert.Error(t, canvas.DrawPoint(planar.Point{X: 5, Y: 1}, 0))

	seg, err := planar.NewSegment(planar.Point{X: 1, Y: 1}, planar.Point{X: 1, Y: 9})
	require.NoError(t, err)
	assert.Error(t, canvas.DrawSegment(seg))

	poly, err := planar.NewPolygon(
		planar.Point{X: 1, Y: 1}, planar.Point{X: 3, Y: 1}, planar.Point{X: 3, Y: -1},
	)
	require.NoError(t, err)
	assert.Error(t, canvas.DrawPolygon(poly))

	circ, err := planar.NewCircle(planar.Point{X: -2, Y: 2}, 1)
	require.NoError(t, err)
	assert.Error(t, canvas.DrawCircle(circ))
}
