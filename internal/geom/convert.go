package geom

import (
	"errors"
	"fmt"

	gogeom "github.com/twpayne/go-geom"
)

var errEmptyPoint = errors.New("empty point")

// ToT converts g into a go-geom value in the XY layout. Lines become two
// point line strings; rects and triangles become polygons.
func ToT(g Geometry) (gogeom.T, error) {
	switch g := g.(type) {
	case Point:
		return gogeom.NewPoint(gogeom.XY).SetCoords(toCoord(Coord(g)))
	case Line:
		return gogeom.NewLineString(gogeom.XY).SetCoords(toCoords(LineString{g.Start, g.End}))
	case LineString:
		return gogeom.NewLineString(gogeom.XY).SetCoords(toCoords(g))
	case Polygon:
		return gogeom.NewPolygon(gogeom.XY).SetCoords(toRings(g))
	case Rect:
		return ToT(g.Polygon())
	case Triangle:
		return ToT(g.Polygon())
	case MultiPoint:
		cs := make([]gogeom.Coord, len(g))
		for i, p := range g {
			cs[i] = toCoord(Coord(p))
		}
		return gogeom.NewMultiPoint(gogeom.XY).SetCoords(cs)
	case MultiLineString:
		cs := make([][]gogeom.Coord, len(g))
		for i, ls := range g {
			cs[i] = toCoords(ls)
		}
		return gogeom.NewMultiLineString(gogeom.XY).SetCoords(cs)
	case MultiPolygon:
		cs := make([][][]gogeom.Coord, len(g))
		for i, p := range g {
			cs[i] = toRings(p)
		}
		return gogeom.NewMultiPolygon(gogeom.XY).SetCoords(cs)
	case GeometryCollection:
		gc := gogeom.NewGeometryCollection()
		for _, m := range g {
			t, err := ToT(m)
			if err != nil {
				return nil, err
			}
			if err := gc.Push(t); err != nil {
				return nil, err
			}
		}
		return gc, nil
	}
	return nil, fmt.Errorf("unsupported geometry %T", g)
}

// FromT converts a go-geom value. Coordinates beyond X and Y are dropped.
func FromT(t gogeom.T) (Geometry, error) {
	switch t := t.(type) {
	case *gogeom.Point:
		if t.Empty() {
			return nil, errEmptyPoint
		}
		return Point{X: t.X(), Y: t.Y()}, nil
	case *gogeom.LineString:
		return fromCoords(t.Coords()), nil
	case *gogeom.LinearRing:
		return fromCoords(t.Coords()), nil
	case *gogeom.Polygon:
		return fromRings(t.Coords()), nil
	case *gogeom.MultiPoint:
		mp := make(MultiPoint, 0, t.NumPoints())
		for _, c := range t.Coords() {
			if len(c) < 2 {
				continue
			}
			mp = append(mp, Point{X: c[0], Y: c[1]})
		}
		return mp, nil
	case *gogeom.MultiLineString:
		cs := t.Coords()
		mls := make(MultiLineString, len(cs))
		for i, ls := range cs {
			mls[i] = fromCoords(ls)
		}
		return mls, nil
	case *gogeom.MultiPolygon:
		cs := t.Coords()
		mp := make(MultiPolygon, len(cs))
		for i, p := range cs {
			mp[i] = fromRings(p)
		}
		return mp, nil
	case *gogeom.GeometryCollection:
		gc := make(GeometryCollection, 0, t.NumGeoms())
		for _, m := range t.Geoms() {
			g, err := FromT(m)
			if errors.Is(err, errEmptyPoint) {
				continue
			}
			if err != nil {
				return nil, err
			}
			gc = append(gc, g)
		}
		return gc, nil
	}
	return nil, fmt.Errorf("unsupported geometry %T", t)
}

func toCoord(c Coord) gogeom.Coord { return gogeom.Coord{c.X, c.Y} }

func toCoords(ls LineString) []gogeom.Coord {
	out := make([]gogeom.Coord, len(ls))
	for i, c := range ls {
		out[i] = toCoord(c)
	}
	return out
}

func toRings(p Polygon) [][]gogeom.Coord {
	if len(p.Exterior) == 0 {
		return nil
	}
	out := [][]gogeom.Coord{toCoords(p.Exterior)}
	for _, r := range p.Interiors {
		out = append(out, toCoords(r))
	}
	return out
}

func fromCoords(cs []gogeom.Coord) LineString {
	ls := make(LineString, 0, len(cs))
	for _, c := range cs {
		ls = append(ls, Coord{X: c[0], Y: c[1]})
	}
	return ls
}

func fromRings(rings [][]gogeom.Coord) Polygon {
	var p Polygon
	for i, r := range rings {
		if i == 0 {
			p.Exterior = fromCoords(r)
			continue
		}
		p.Interiors = append(p.Interiors, fromCoords(r))
	}
	return p
}
