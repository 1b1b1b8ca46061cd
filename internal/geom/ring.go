package geom

// IsClosed reports whether ls has at least two coordinates and ends where it starts.
func (ls LineString) IsClosed() bool {
	return len(ls) >= 2 && ls[0] == ls[len(ls)-1]
}

// IsRing reports whether ls can bound a polygon.
func (ls LineString) IsRing() bool {
	return len(ls) >= 4 && ls.IsClosed()
}

// Closed returns a copy of ls with its first coordinate appended when the
// last one differs.
func (ls LineString) Closed() LineString {
	out := make(LineString, len(ls), len(ls)+1)
	copy(out, ls)
	if len(out) > 0 && out[0] != out[len(out)-1] {
		out = append(out, out[0])
	}
	return out
}

// Reversed returns a copy of ls in reverse order.
func (ls LineString) Reversed() LineString {
	out := make(LineString, len(ls))
	for i, c := range ls {
		out[len(ls)-1-i] = c
	}
	return out
}

// SignedArea is the shoelace area of ls treated as a ring. It is positive
// for counter-clockwise rings in a y-up frame.
func (ls LineString) SignedArea() float64 {
	if len(ls) < 3 {
		return 0
	}
	var sum float64
	for i := range ls {
		a := ls[i]
		b := ls[(i+1)%len(ls)]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// Clockwise returns ls oriented with negative signed area.
func (ls LineString) Clockwise() LineString {
	if ls.SignedArea() > 0 {
		return ls.Reversed()
	}
	return ls
}

// NumCoords counts every coordinate of g, ring closures included.
func NumCoords(g Geometry) int {
	n := 0
	Walk(g, func(Coord) { n++ })
	return n
}

// Walk calls fn for every coordinate of g in document order.
func Walk(g Geometry, fn func(Coord)) {
	switch g := g.(type) {
	case Point:
		fn(Coord(g))
	case Line:
		fn(g.Start)
		fn(g.End)
	case LineString:
		for _, c := range g {
			fn(c)
		}
	case Polygon:
		Walk(g.Exterior, fn)
		for _, r := range g.Interiors {
			Walk(r, fn)
		}
	case MultiPoint:
		for _, p := range g {
			fn(Coord(p))
		}
	case MultiLineString:
		for _, ls := range g {
			Walk(ls, fn)
		}
	case MultiPolygon:
		for _, p := range g {
			Walk(p, fn)
		}
	case GeometryCollection:
		for _, m := range g {
			Walk(m, fn)
		}
	case Rect:
		Walk(g.Polygon(), fn)
	case Triangle:
		for _, c := range g {
			fn(c)
		}
	}
}

// Bounds returns the bounding box of g; ok is false when g has no coordinates.
func Bounds(g Geometry) (bbox BBox, ok bool) {
	Walk(g, func(c Coord) {
		if !ok {
			bbox = BBox{MinX: c.X, MinY: c.Y, MaxX: c.X, MaxY: c.Y}
			ok = true
			return
		}
		if c.X < bbox.MinX {
			bbox.MinX = c.X
		}
		if c.Y < bbox.MinY {
			bbox.MinY = c.Y
		}
		if c.X > bbox.MaxX {
			bbox.MaxX = c.X
		}
		if c.Y > bbox.MaxY {
			bbox.MaxY = c.Y
		}
	})
	return bbox, ok
}
