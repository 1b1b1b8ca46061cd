package svg

import (
	"errors"
	"fmt"

	"geosvg/internal/geom"
)

var errHoleNotClosed = errors.New("subpath after the first must be a closed ring")

// Assemble picks the simplest geometry for the subpaths of one path element.
//
// A single subpath with one point is a Point. One that is closed, by Z or by
// ending on its first point with at least four points, is a Polygon when its
// closed ring has at least four coordinates; any other single subpath is a
// LineString. With several subpaths the first is the exterior ring and every
// later one must be a closed ring, which becomes a hole; a single Polygon
// results.
func Assemble(subs []Subpath) (geom.Geometry, error) {
	switch len(subs) {
	case 0:
		return nil, elementError(ErrEmptyGeometry, "d", nil)
	case 1:
		sp := subs[0]
		ls := geom.LineString(sp.Points)
		switch {
		case len(ls) == 1:
			return geom.Point(ls[0]), nil
		case (sp.Closed || ls.IsRing()) && ls.Closed().IsRing():
			return geom.Polygon{Exterior: ls.Closed()}, nil
		}
		return ls, nil
	}
	poly := geom.Polygon{Exterior: geom.LineString(subs[0].Points).Closed()}
	for i, sp := range subs[1:] {
		ring := geom.LineString(sp.Points)
		if !sp.Closed && !ring.IsRing() || !ring.Closed().IsRing() {
			return nil, elementError(ErrMalformedElement, "d", fmt.Errorf("subpath %d: %w", i+2, errHoleNotClosed))
		}
		poly.Interiors = append(poly.Interiors, ring.Closed())
	}
	return poly, nil
}
