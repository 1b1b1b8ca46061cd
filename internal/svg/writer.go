package svg

import (
	"strings"

	"geosvg/internal/geom"
)

// Marshal renders g as minimal SVG elements. Multi geometries and
// collections render each member on its own line; empty members are
// skipped, so an empty geometry renders as "".
//
//	Point      <path d="Mx y"/>
//	Line       <line x1 y1 x2 y2/>
//	LineString <polyline points/>
//	Polygon    <path d/> with one M..L.. run per ring and no Z
//	Triangle   <polygon points/>
//	Rect       <rect x y width height/>
func Marshal(g geom.Geometry) string {
	return strings.Join(render(g, element), "\n")
}

// MarshalPathData renders only the path data of each shape in g, one per
// line, for embedding in a caller's own path element.
func MarshalPathData(g geom.Geometry) string {
	return strings.Join(render(g, pathData), "\n")
}

func render(g geom.Geometry, one func(geom.Geometry) string) []string {
	var out []string
	var walk func(g geom.Geometry)
	walk = func(g geom.Geometry) {
		switch g := g.(type) {
		case nil:
		case geom.MultiPoint:
			for _, p := range g {
				walk(p)
			}
		case geom.MultiLineString:
			for _, ls := range g {
				walk(ls)
			}
		case geom.MultiPolygon:
			for _, p := range g {
				walk(p)
			}
		case geom.GeometryCollection:
			for _, m := range g {
				walk(m)
			}
		default:
			if s := one(g); s != "" {
				out = append(out, s)
			}
		}
	}
	walk(g)
	return out
}

func element(g geom.Geometry) string {
	var b strings.Builder
	attr := func(name string, v float64) {
		b.WriteByte(' ')
		b.WriteString(name)
		b.WriteString(`="`)
		b.WriteString(formatNumber(v))
		b.WriteByte('"')
	}
	switch g := g.(type) {
	case geom.Line:
		b.WriteString("<line")
		attr("x1", g.Start.X)
		attr("y1", g.Start.Y)
		attr("x2", g.End.X)
		attr("y2", g.End.Y)
		b.WriteString("/>")
	case geom.LineString:
		if len(g) == 0 {
			return ""
		}
		b.WriteString(`<polyline points="`)
		writePoints(&b, g)
		b.WriteString(`"/>`)
	case geom.Triangle:
		b.WriteString(`<polygon points="`)
		writePoints(&b, g[:])
		b.WriteString(`"/>`)
	case geom.Rect:
		b.WriteString("<rect")
		attr("x", g.Min.X)
		attr("y", g.Min.Y)
		attr("width", g.Max.X-g.Min.X)
		attr("height", g.Max.Y-g.Min.Y)
		b.WriteString("/>")
	default:
		d := pathData(g)
		if d == "" {
			return ""
		}
		b.WriteString(`<path d="`)
		b.WriteString(d)
		b.WriteString(`"/>`)
	}
	return b.String()
}

func pathData(g geom.Geometry) string {
	var b strings.Builder
	switch g := g.(type) {
	case geom.Point:
		writeRing(&b, []geom.Coord{geom.Coord(g)})
	case geom.Line:
		writeRing(&b, []geom.Coord{g.Start, g.End})
	case geom.LineString:
		writeRing(&b, g)
	case geom.Polygon:
		writeRing(&b, g.Exterior)
		for _, r := range g.Interiors {
			writeRing(&b, r)
		}
	case geom.Triangle:
		writeRing(&b, g.Polygon().Exterior)
	case geom.Rect:
		writeRing(&b, g.Polygon().Exterior)
	}
	return b.String()
}
