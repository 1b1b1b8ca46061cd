// Package raster draws geometries into images with golang.org/x/image/vector.
//
// Coordinates are taken as SVG user units: y grows downward, and the
// geometry's bounding box is scaled uniformly to fit the image.
package raster

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"geosvg/internal/geom"
)

var ErrEmpty = errors.New("raster: nothing to draw")

type Options struct {
	Width  int
	Height int
	// Stroke is the line width in pixels.
	Stroke     float64
	Background color.Color
	Fill       color.Color
	Ink        color.Color
}

func DefaultOptions() Options {
	return Options{
		Width:      512,
		Height:     512,
		Stroke:     1.5,
		Background: color.White,
		Fill:       color.RGBA{R: 0x9c, G: 0xc3, B: 0xe6, A: 0xff},
		Ink:        color.RGBA{R: 0x1f, G: 0x2a, B: 0x44, A: 0xff},
	}
}

// Render draws polygons filled with their holes cut out, then every edge
// and line string stroked, then points as small squares.
func Render(g geom.Geometry, opt Options) (*image.RGBA, error) {
	if opt.Width <= 0 || opt.Height <= 0 {
		return nil, errors.New("raster: image size must be positive")
	}
	d := geom.Project(g)
	if d.Empty() {
		return nil, ErrEmpty
	}
	img := image.NewRGBA(image.Rect(0, 0, opt.Width, opt.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(opt.Background), image.Point{}, draw.Src)

	c := canvas{
		dst: img,
		z:   vector.NewRasterizer(opt.Width, opt.Height),
		tf:  fit(d.BBox, opt),
	}
	fill := image.NewUniform(opt.Fill)
	ink := image.NewUniform(opt.Ink)
	half := opt.Stroke / 2

	for _, poly := range d.Polygons {
		c.fillRings(poly, fill)
	}
	for _, poly := range d.Polygons {
		for _, ring := range poly {
			c.stroke(ring, half, ink)
		}
	}
	for _, ls := range d.Lines {
		c.stroke(ls, half, ink)
	}
	for _, p := range d.Points {
		x, y := c.tf.apply(p)
		r := math.Max(half, 1)
		c.polygon([][2]float64{{x - r, y - r}, {x + r, y - r}, {x + r, y + r}, {x - r, y + r}}, ink)
	}
	return img, nil
}

// WritePNG renders g and encodes the image as PNG.
func WritePNG(w io.Writer, g geom.Geometry, opt Options) error {
	img, err := Render(g, opt)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

type transform struct {
	scale  float64
	ox, oy float64
}

func (t transform) apply(p [2]float64) (float64, float64) {
	return p[0]*t.scale + t.ox, p[1]*t.scale + t.oy
}

// fit maps bbox into the image with a margin of a few pixels.
func fit(b geom.BBox, opt Options) transform {
	pad := opt.Stroke + 2
	aw := float64(opt.Width) - 2*pad
	ah := float64(opt.Height) - 2*pad
	dx, dy := b.MaxX-b.MinX, b.MaxY-b.MinY
	scale := 1.0
	switch {
	case dx > 0 && dy > 0:
		scale = math.Min(aw/dx, ah/dy)
	case dx > 0:
		scale = aw / dx
	case dy > 0:
		scale = ah / dy
	}
	return transform{
		scale: scale,
		ox:    pad + (aw-dx*scale)/2 - b.MinX*scale,
		oy:    pad + (ah-dy*scale)/2 - b.MinY*scale,
	}
}

type canvas struct {
	dst *image.RGBA
	z   *vector.Rasterizer
	tf  transform
}

// fillRings fills the exterior ring minus the holes. The rasterizer
// accumulates signed coverage, so holes are wound against the exterior.
func (c canvas) fillRings(rings [][][2]float64, src image.Image) {
	if len(rings) == 0 || len(rings[0]) < 3 {
		return
	}
	c.z.Reset(c.dst.Bounds().Dx(), c.dst.Bounds().Dy())
	outer := c.project(rings[0])
	c.path(outer)
	sign := area(outer) > 0
	for _, r := range rings[1:] {
		if len(r) < 3 {
			continue
		}
		hole := c.project(r)
		if (area(hole) > 0) == sign {
			reverse(hole)
		}
		c.path(hole)
	}
	c.z.Draw(c.dst, c.dst.Bounds(), src, image.Point{})
}

// stroke draws each segment of ls as its own quad of half width hw.
func (c canvas) stroke(ls [][2]float64, hw float64, src image.Image) {
	pts := c.project(ls)
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		vx, vy := b[0]-a[0], b[1]-a[1]
		n := math.Hypot(vx, vy)
		if n == 0 {
			continue
		}
		// normal scaled to the half width, extended along the segment so
		// consecutive quads overlap at the joints
		nx, ny := -vy/n*hw, vx/n*hw
		ex, ey := vx/n*hw, vy/n*hw
		c.polygon([][2]float64{
			{a[0] - ex + nx, a[1] - ey + ny},
			{b[0] + ex + nx, b[1] + ey + ny},
			{b[0] + ex - nx, b[1] + ey - ny},
			{a[0] - ex - nx, a[1] - ey - ny},
		}, src)
	}
}

// polygon fills a single ring given in pixel coordinates.
func (c canvas) polygon(pts [][2]float64, src image.Image) {
	c.z.Reset(c.dst.Bounds().Dx(), c.dst.Bounds().Dy())
	c.path(pts)
	c.z.Draw(c.dst, c.dst.Bounds(), src, image.Point{})
}

func (c canvas) path(pts [][2]float64) {
	c.z.MoveTo(float32(pts[0][0]), float32(pts[0][1]))
	for _, p := range pts[1:] {
		c.z.LineTo(float32(p[0]), float32(p[1]))
	}
	c.z.ClosePath()
}

func (c canvas) project(ring [][2]float64) [][2]float64 {
	out := make([][2]float64, len(ring))
	for i, p := range ring {
		out[i][0], out[i][1] = c.tf.apply(p)
	}
	return out
}

func area(pts [][2]float64) float64 {
	var s float64
	for i := range pts {
		j := (i + 1) % len(pts)
		s += pts[i][0]*pts[j][1] - pts[j][0]*pts[i][1]
	}
	return s / 2
}

func reverse(pts [][2]float64) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}
