package raster

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geosvg/internal/geom"
)

func testOptions() Options {
	opt := DefaultOptions()
	opt.Width, opt.Height, opt.Stroke = 100, 100, 2
	return opt
}

func rgba(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

func TestRenderPolygonWithHole(t *testing.T) {
	opt := testOptions()
	poly := geom.Polygon{
		Exterior:  geom.LineString{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 0}},
		Interiors: []geom.LineString{{{X: 3, Y: 3}, {X: 7, Y: 3}, {X: 7, Y: 7}, {X: 3, Y: 7}, {X: 3, Y: 3}}},
	}
	img, err := Render(poly, opt)
	require.NoError(t, err)

	assert.Equal(t, rgba(opt.Fill), img.RGBAAt(12, 20), "inside the exterior")
	assert.Equal(t, rgba(opt.Background), img.RGBAAt(50, 50), "inside the hole")
	assert.Equal(t, rgba(opt.Background), img.RGBAAt(0, 0), "margin")
	assert.Equal(t, rgba(opt.Ink), img.RGBAAt(50, 4), "top edge")
}

func TestRenderLineString(t *testing.T) {
	opt := testOptions()
	img, err := Render(geom.LineString{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}, opt)
	require.NoError(t, err)

	assert.Equal(t, rgba(opt.Ink), img.RGBAAt(50, 4))
	assert.Equal(t, rgba(opt.Ink), img.RGBAAt(96, 50))
	assert.Equal(t, rgba(opt.Background), img.RGBAAt(40, 60), "line strings are not filled")
}

func TestRenderPoint(t *testing.T) {
	opt := testOptions()
	img, err := Render(geom.Point{X: -4, Y: 9}, opt)
	require.NoError(t, err)
	assert.Equal(t, rgba(opt.Ink), img.RGBAAt(50, 50))
	assert.Equal(t, rgba(opt.Background), img.RGBAAt(10, 10))
}

func TestRenderErrors(t *testing.T) {
	_, err := Render(geom.GeometryCollection{}, testOptions())
	assert.ErrorIs(t, err, ErrEmpty)

	opt := testOptions()
	opt.Width = 0
	_, err = Render(geom.Point{}, opt)
	assert.Error(t, err)
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	opt := testOptions()
	opt.Width = 40
	require.NoError(t, WritePNG(&buf, geom.Rect{Max: geom.Coord{X: 2, Y: 1}}, opt))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())
}
