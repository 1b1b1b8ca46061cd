package svg

import "geosvg/internal/geom"

// Subpath is one run of points between movetos. Closed is set by a
// closepath or by element semantics.
type Subpath struct {
	Points []geom.Coord
	Closed bool
}

// cursor walks commands in order, resolving relative operands and smooth
// control points and flattening curves.
type cursor struct {
	flat Flattener

	cur   geom.Coord
	start geom.Coord

	// ctrl is the last control point of the previous command when that
	// command was a curve of family ctrlKind (CubicCurveTo or QuadraticCurveTo).
	ctrl     geom.Coord
	ctrlKind CommandType

	points []geom.Coord
	out    []Subpath
}

// Trace runs commands through a cursor and returns the subpaths it emits.
func Trace(cmds []Command, flat Flattener) []Subpath {
	if flat == nil {
		flat = FixedFlattener{Samples: DefaultSamples}
	}
	c := cursor{flat: flat}
	for _, cmd := range cmds {
		c.step(cmd)
	}
	c.flush(false)
	return c.out
}

func (c *cursor) abs(rel bool, x, y float64) geom.Coord {
	if rel {
		return geom.Coord{X: c.cur.X + x, Y: c.cur.Y + y}
	}
	return geom.Coord{X: x, Y: y}
}

func (c *cursor) flush(closed bool) {
	if len(c.points) == 0 {
		return
	}
	c.out = append(c.out, Subpath{Points: c.points, Closed: closed})
	c.points = nil
}

// begin opens a subpath at the current point when drawing resumes after a
// closepath without a moveto.
func (c *cursor) begin() {
	if len(c.points) == 0 {
		c.points = append(c.points, c.cur)
	}
}

func (c *cursor) lineTo(p geom.Coord) {
	c.begin()
	c.points = append(c.points, p)
	c.cur = p
}

func (c *cursor) curveTo(curve Curve, end geom.Coord) {
	c.begin()
	c.points = append(c.points, c.flat.Flatten(curve, end)...)
	c.cur = end
}

// smoothCtrl is the reflection of the previous control point when the
// previous command belongs to family, else the current point.
func (c *cursor) smoothCtrl(family CommandType) geom.Coord {
	if c.ctrlKind == family {
		return reflect(c.ctrl, c.cur)
	}
	return c.cur
}

func (c *cursor) step(cmd Command) {
	a := cmd.Args
	kind := CommandType(0)
	var ctrl geom.Coord
	switch cmd.Type {
	case MoveTo:
		c.flush(false)
		c.cur = c.abs(cmd.Relative, a[0], a[1])
		c.start = c.cur
		c.points = []geom.Coord{c.cur}
	case LineTo:
		c.lineTo(c.abs(cmd.Relative, a[0], a[1]))
	case HorizontalLineTo:
		p := geom.Coord{X: a[0], Y: c.cur.Y}
		if cmd.Relative {
			p.X += c.cur.X
		}
		c.lineTo(p)
	case VerticalLineTo:
		p := geom.Coord{X: c.cur.X, Y: a[0]}
		if cmd.Relative {
			p.Y += c.cur.Y
		}
		c.lineTo(p)
	case CubicCurveTo, SmoothCubicCurveTo:
		var p1 geom.Coord
		if cmd.Type == CubicCurveTo {
			p1 = c.abs(cmd.Relative, a[0], a[1])
			a = a[2:]
		} else {
			p1 = c.smoothCtrl(CubicCurveTo)
		}
		p2 := c.abs(cmd.Relative, a[0], a[1])
		end := c.abs(cmd.Relative, a[2], a[3])
		c.curveTo(cubic(c.cur, p1, p2, end), end)
		kind, ctrl = CubicCurveTo, p2
	case QuadraticCurveTo, SmoothQuadraticCurveTo:
		var p1 geom.Coord
		if cmd.Type == QuadraticCurveTo {
			p1 = c.abs(cmd.Relative, a[0], a[1])
			a = a[2:]
		} else {
			p1 = c.smoothCtrl(QuadraticCurveTo)
		}
		end := c.abs(cmd.Relative, a[0], a[1])
		c.curveTo(quadratic(c.cur, p1, end), end)
		kind, ctrl = QuadraticCurveTo, p1
	case ArcTo:
		end := c.abs(cmd.Relative, a[5], a[6])
		if end == c.cur {
			break
		}
		if curve, ok := arc(c.cur, a[0], a[1], a[2], a[3] != 0, a[4] != 0, end); ok {
			c.curveTo(curve, end)
		} else {
			c.lineTo(end)
		}
	case ClosePath:
		if len(c.points) > 0 {
			if c.points[len(c.points)-1] != c.start {
				c.points = append(c.points, c.start)
			}
			c.flush(true)
		}
		c.cur = c.start
	}
	c.ctrlKind, c.ctrl = kind, ctrl
}
