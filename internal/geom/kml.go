package geom

import (
	"encoding/xml"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
)

type kmlCoords struct {
	Coordinates string `xml:"coordinates"`
}

type kmlRing struct {
	LinearRing kmlCoords `xml:"LinearRing"`
}

type kmlPolygon struct {
	Outer kmlRing   `xml:"outerBoundaryIs"`
	Inner []kmlRing `xml:"innerBoundaryIs"`
}

type kmlMulti struct {
	Points      []kmlCoords  `xml:"Point"`
	LineStrings []kmlCoords  `xml:"LineString"`
	Polygons    []kmlPolygon `xml:"Polygon"`
	Multi       []kmlMulti   `xml:"MultiGeometry"`
}

type kmlPlacemark struct {
	kmlMulti
}

type kmlContainer struct {
	Placemarks []kmlPlacemark `xml:"Placemark"`
	Folders    []kmlContainer `xml:"Folder"`
	Documents  []kmlContainer `xml:"Document"`
}

// ParseKML extracts Placemark geometries (Point, LineString, Polygon and
// MultiGeometry) from KML, descending into Document and Folder elements.
// KML coordinates are "lon,lat[,alt]"; we ignore altitude.
func ParseKML(r io.Reader) (Geometry, error) {
	var doc kmlContainer
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	var gc GeometryCollection
	var walkMulti func(m kmlMulti)
	walkMulti = func(m kmlMulti) {
		for _, p := range m.Points {
			if ls := parseKMLCoords(p.Coordinates); len(ls) > 0 {
				gc = append(gc, Point(ls[0]))
			}
		}
		for _, l := range m.LineStrings {
			if ls := parseKMLCoords(l.Coordinates); len(ls) >= 2 {
				gc = append(gc, ls)
			}
		}
		for _, p := range m.Polygons {
			outer := parseKMLCoords(p.Outer.LinearRing.Coordinates)
			if len(outer) == 0 {
				continue
			}
			poly := Polygon{Exterior: outer.Closed()}
			for _, in := range p.Inner {
				if ring := parseKMLCoords(in.LinearRing.Coordinates); len(ring) > 0 {
					poly.Interiors = append(poly.Interiors, ring.Closed())
				}
			}
			gc = append(gc, poly)
		}
		for _, sub := range m.Multi {
			walkMulti(sub)
		}
	}
	var walk func(c kmlContainer)
	walk = func(c kmlContainer) {
		for _, pm := range c.Placemarks {
			walkMulti(pm.kmlMulti)
		}
		for _, f := range c.Folders {
			walk(f)
		}
		for _, d := range c.Documents {
			walk(d)
		}
	}
	walk(doc)
	switch len(gc) {
	case 0:
		return nil, errors.New("kml: no geometries found")
	case 1:
		return gc[0], nil
	}
	return gc, nil
}

// LoadKML reads a KML file.
func LoadKML(path string) (Geometry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseKML(f)
}

// parseKMLCoords reads whitespace separated tuples, skipping malformed ones.
func parseKMLCoords(s string) LineString {
	var ls LineString
	for _, tuple := range strings.Fields(s) {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			continue
		}
		lon, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
		lat, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		ls = append(ls, Coord{X: lon, Y: lat})
	}
	return ls
}
