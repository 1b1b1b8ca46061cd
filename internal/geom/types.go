package geom

import "fmt"

// Coord is a planar position.
type Coord struct {
	X float64
	Y float64
}

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Kind identifies a geometry variant.
type Kind int

const (
	KindPoint Kind = iota
	KindLine
	KindLineString
	KindPolygon
	KindMultiPoint
	KindMultiLineString
	KindMultiPolygon
	KindGeometryCollection
	KindRect
	KindTriangle
)

var kindNames = [...]string{
	KindPoint:              "Point",
	KindLine:               "Line",
	KindLineString:         "LineString",
	KindPolygon:            "Polygon",
	KindMultiPoint:         "MultiPoint",
	KindMultiLineString:    "MultiLineString",
	KindMultiPolygon:       "MultiPolygon",
	KindGeometryCollection: "GeometryCollection",
	KindRect:               "Rect",
	KindTriangle:           "Triangle",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Geometry is implemented by every variant in this package and nothing else.
type Geometry interface {
	Kind() Kind
	geometry()
}

type (
	Point Coord

	// Line is a single segment.
	Line struct {
		Start Coord
		End   Coord
	}

	LineString []Coord

	// Polygon rings are closed: the first coordinate repeats as the last.
	Polygon struct {
		Exterior  LineString
		Interiors []LineString
	}

	MultiPoint         []Point
	MultiLineString    []LineString
	MultiPolygon       []Polygon
	GeometryCollection []Geometry

	// Rect is axis aligned.
	Rect struct {
		Min Coord
		Max Coord
	}

	Triangle [3]Coord
)

func (Point) Kind() Kind              { return KindPoint }
func (Line) Kind() Kind               { return KindLine }
func (LineString) Kind() Kind         { return KindLineString }
func (Polygon) Kind() Kind            { return KindPolygon }
func (MultiPoint) Kind() Kind         { return KindMultiPoint }
func (MultiLineString) Kind() Kind    { return KindMultiLineString }
func (MultiPolygon) Kind() Kind       { return KindMultiPolygon }
func (GeometryCollection) Kind() Kind { return KindGeometryCollection }
func (Rect) Kind() Kind               { return KindRect }
func (Triangle) Kind() Kind           { return KindTriangle }

func (Point) geometry()              {}
func (Line) geometry()               {}
func (LineString) geometry()         {}
func (Polygon) geometry()            {}
func (MultiPoint) geometry()         {}
func (MultiLineString) geometry()    {}
func (MultiPolygon) geometry()       {}
func (GeometryCollection) geometry() {}
func (Rect) geometry()               {}
func (Triangle) geometry()           {}

// Polygon returns the rectangle as a closed ring starting at Min.
func (r Rect) Polygon() Polygon {
	return Polygon{Exterior: LineString{
		r.Min,
		{X: r.Min.X, Y: r.Max.Y},
		r.Max,
		{X: r.Max.X, Y: r.Min.Y},
		r.Min,
	}}
}

func (t Triangle) Polygon() Polygon {
	return Polygon{Exterior: LineString{t[0], t[1], t[2], t[0]}}
}

// Data is a minimal geometry container for rendering
type Data struct {
	Points   [][2]float64
	Lines    [][][2]float64
	Polygons [][][][2]float64 // polygons with rings (first outer, following holes)
	BBox     BBox
}
