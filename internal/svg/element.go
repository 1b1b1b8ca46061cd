package svg

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"geosvg/internal/geom"
)

var (
	errOddCoords    = errors.New("odd number of coordinates")
	errTooFewPoints = errors.New("too few points")
	errNegativeSize = errors.New("negative size")
)

type elementFunc func(d *Decoder, attrs map[string]string) (geom.Geometry, error)

var elementFuncs = map[string]elementFunc{
	"path":     decodePath,
	"polygon":  decodePolygon,
	"polyline": decodePolyline,
	"rect":     decodeRect,
	"line":     decodeLine,
}

// DecodeElement builds the geometry of one shape element from its tag and
// attributes. Unknown attributes are ignored.
func (d *Decoder) DecodeElement(tag string, attrs map[string]string) (geom.Geometry, error) {
	fn, ok := elementFuncs[tag]
	if !ok {
		return nil, elementError(ErrUnsupportedElement, tag, nil)
	}
	return fn(d, attrs)
}

func required(tag string, attrs map[string]string, name string) (string, error) {
	v, ok := attrs[name]
	if !ok {
		return "", elementError(ErrMalformedElement, name, fmt.Errorf("<%s> requires attribute %s", tag, name))
	}
	return v, nil
}

func attrNumber(name, v string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, elementError(ErrInvalidNumber, v, fmt.Errorf("attribute %s: %w", name, err))
	}
	return f, nil
}

// attrNumbers reads the named attributes, which default to 0 when absent.
func attrNumbers(attrs map[string]string, names ...string) ([]float64, error) {
	out := make([]float64, len(names))
	for i, n := range names {
		v, ok := attrs[n]
		if !ok {
			continue
		}
		f, err := attrNumber(n, v)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

// parsePoints reads a points attribute: numbers separated by whitespace or
// commas, taken in pairs.
func parsePoints(v string) ([]geom.Coord, error) {
	s := scanner{buf: []byte(v)}
	var nums []float64
	for {
		s.skip()
		if s.pos >= len(s.buf) {
			break
		}
		f, err := s.number()
		if err != nil {
			return nil, err
		}
		nums = append(nums, f)
	}
	if len(nums)%2 != 0 {
		return nil, elementError(ErrMalformedElement, "points", errOddCoords)
	}
	pts := make([]geom.Coord, len(nums)/2)
	for i := range pts {
		pts[i] = geom.Coord{X: nums[2*i], Y: nums[2*i+1]}
	}
	return pts, nil
}

func decodePath(d *Decoder, attrs map[string]string) (geom.Geometry, error) {
	v, err := required("path", attrs, "d")
	if err != nil {
		return nil, err
	}
	return d.ParsePathData(v)
}

// decodePolygon closes the ring and orients it clockwise.
func decodePolygon(_ *Decoder, attrs map[string]string) (geom.Geometry, error) {
	v, err := required("polygon", attrs, "points")
	if err != nil {
		return nil, err
	}
	pts, err := parsePoints(v)
	if err != nil {
		return nil, err
	}
	if len(pts) < 3 {
		return nil, elementError(ErrMalformedElement, "points", fmt.Errorf("%w for polygon: %d", errTooFewPoints, len(pts)))
	}
	return geom.Polygon{Exterior: geom.LineString(pts).Closed().Clockwise()}, nil
}

func decodePolyline(_ *Decoder, attrs map[string]string) (geom.Geometry, error) {
	v, err := required("polyline", attrs, "points")
	if err != nil {
		return nil, err
	}
	pts, err := parsePoints(v)
	if err != nil {
		return nil, err
	}
	if len(pts) < 2 {
		return nil, elementError(ErrMalformedElement, "points", fmt.Errorf("%w for polyline: %d", errTooFewPoints, len(pts)))
	}
	return geom.LineString(pts), nil
}

// decodeRect yields the ring (x,y) (x,y+h) (x+w,y+h) (x+w,y) (x,y).
func decodeRect(_ *Decoder, attrs map[string]string) (geom.Geometry, error) {
	var size [2]float64
	for i, name := range []string{"width", "height"} {
		v, err := required("rect", attrs, name)
		if err != nil {
			return nil, err
		}
		if size[i], err = attrNumber(name, v); err != nil {
			return nil, err
		}
		if size[i] < 0 {
			return nil, elementError(ErrMalformedElement, name, errNegativeSize)
		}
	}
	xy, err := attrNumbers(attrs, "x", "y")
	if err != nil {
		return nil, err
	}
	r := geom.Rect{
		Min: geom.Coord{X: xy[0], Y: xy[1]},
		Max: geom.Coord{X: xy[0] + size[0], Y: xy[1] + size[1]},
	}
	return r.Polygon(), nil
}

func decodeLine(_ *Decoder, attrs map[string]string) (geom.Geometry, error) {
	v, err := attrNumbers(attrs, "x1", "y1", "x2", "y2")
	if err != nil {
		return nil, err
	}
	return geom.Line{
		Start: geom.Coord{X: v[0], Y: v[1]},
		End:   geom.Coord{X: v[2], Y: v[3]},
	}, nil
}
