package svg

import "geosvg/internal/geom"

// DefaultSamples is the number of points a curve flattens to.
const DefaultSamples = 100

// Curve is a parametric segment over t in [0, 1].
type Curve func(t float64) geom.Coord

// Flattener approximates a curve by points. The result excludes the start
// point and ends exactly at end.
type Flattener interface {
	Flatten(c Curve, end geom.Coord) []geom.Coord
}

// FixedFlattener samples at Samples evenly spaced parameters.
type FixedFlattener struct {
	Samples int
}

func (f FixedFlattener) Flatten(c Curve, end geom.Coord) []geom.Coord {
	n := f.Samples
	if n < 1 {
		n = DefaultSamples
	}
	out := make([]geom.Coord, 0, n)
	for i := 1; i < n; i++ {
		out = append(out, c(float64(i)/float64(n)))
	}
	return append(out, end)
}

func lerp(a, b geom.Coord, t float64) geom.Coord {
	return geom.Coord{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

func quadratic(p0, p1, p2 geom.Coord) Curve {
	return func(t float64) geom.Coord {
		return lerp(lerp(p0, p1, t), lerp(p1, p2, t), t)
	}
}

func cubic(p0, p1, p2, p3 geom.Coord) Curve {
	return func(t float64) geom.Coord {
		a, b, c := lerp(p0, p1, t), lerp(p1, p2, t), lerp(p2, p3, t)
		return lerp(lerp(a, b, t), lerp(b, c, t), t)
	}
}

// reflect mirrors p through center.
func reflect(p, center geom.Coord) geom.Coord {
	return geom.Coord{X: 2*center.X - p.X, Y: 2*center.Y - p.Y}
}
