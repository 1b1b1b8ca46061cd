package geom

// Project flattens g into the render container used by the viewer and the
// rasterizer. Rects and triangles become polygons and lines become two
// point line strings.
func Project(g Geometry) Data {
	var d Data
	d.BBox, _ = Bounds(g)
	ring := func(ls LineString) [][2]float64 {
		out := make([][2]float64, len(ls))
		for i, c := range ls {
			out[i] = [2]float64{c.X, c.Y}
		}
		return out
	}
	addPoly := func(p Polygon) {
		rings := [][][2]float64{ring(p.Exterior)}
		for _, r := range p.Interiors {
			rings = append(rings, ring(r))
		}
		d.Polygons = append(d.Polygons, rings)
	}
	var walk func(g Geometry)
	walk = func(g Geometry) {
		switch g := g.(type) {
		case Point:
			d.Points = append(d.Points, [2]float64{g.X, g.Y})
		case Line:
			d.Lines = append(d.Lines, ring(LineString{g.Start, g.End}))
		case LineString:
			d.Lines = append(d.Lines, ring(g))
		case Polygon:
			addPoly(g)
		case Rect:
			addPoly(g.Polygon())
		case Triangle:
			addPoly(g.Polygon())
		case MultiPoint:
			for _, p := range g {
				walk(p)
			}
		case MultiLineString:
			for _, ls := range g {
				walk(ls)
			}
		case MultiPolygon:
			for _, p := range g {
				walk(p)
			}
		case GeometryCollection:
			for _, m := range g {
				walk(m)
			}
		}
	}
	walk(g)
	return d
}

// Empty reports whether d holds nothing to draw.
func (d Data) Empty() bool {
	return len(d.Points) == 0 && len(d.Lines) == 0 && len(d.Polygons) == 0
}
