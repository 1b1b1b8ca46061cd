package svg

import (
	"math"

	"geosvg/internal/geom"
)

// arc converts an endpoint-parameterized elliptical arc to a curve over its
// center parameterization. Radii too small to span the endpoints are scaled
// up keeping their ratio. ok is false when either radius is zero.
func arc(from geom.Coord, rx, ry, rotDeg float64, large, sweep bool, to geom.Coord) (c Curve, ok bool) {
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		return nil, false
	}
	phi := rotDeg * math.Pi / 180
	sin, cos := math.Sincos(phi)

	// Midpoint offset in the rotated frame.
	dx, dy := (from.X-to.X)/2, (from.Y-to.Y)/2
	x1 := cos*dx + sin*dy
	y1 := -sin*dx + cos*dy

	if l := x1*x1/(rx*rx) + y1*y1/(ry*ry); l > 1 {
		s := math.Sqrt(l)
		rx, ry = rx*s, ry*s
	}

	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	k := 0.0
	if den > 0 && num > 0 {
		k = math.Sqrt(num / den)
	}
	if large == sweep {
		k = -k
	}
	cx1 := k * rx * y1 / ry
	cy1 := -k * ry * x1 / rx
	cx := cos*cx1 - sin*cy1 + (from.X+to.X)/2
	cy := sin*cx1 + cos*cy1 + (from.Y+to.Y)/2

	theta := math.Atan2((y1-cy1)/ry, (x1-cx1)/rx)
	delta := math.Atan2((-y1-cy1)/ry, (-x1-cx1)/rx) - theta
	if sweep && delta < 0 {
		delta += 2 * math.Pi
	} else if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	}

	return func(t float64) geom.Coord {
		eta := theta + delta*t
		se, ce := math.Sincos(eta)
		return geom.Coord{
			X: cx + rx*ce*cos - ry*se*sin,
			Y: cy + rx*ce*sin + ry*se*cos,
		}
	}, true
}
