// Package svg converts between SVG shape elements and planar geometry.
//
// Reading accepts one of path, polygon, polyline, rect or line, or bare path
// data. Curves and arcs are flattened to points, so everything read is made
// of straight segments. Writing emits the simplest element for each geometry
// and never emits curves.
package svg

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html/charset"

	"geosvg/internal/geom"
)

var errNoElement = errors.New("no element found")

// Decoder reads shapes. The zero value is not usable; use NewDecoder.
// A Decoder holds no per-call state and is safe for concurrent use.
type Decoder struct {
	flat Flattener
}

type Option func(*Decoder)

// WithFlattener replaces the fixed 100 point curve sampling.
func WithFlattener(f Flattener) Option {
	return func(d *Decoder) {
		if f != nil {
			d.flat = f
		}
	}
}

func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{flat: FixedFlattener{Samples: DefaultSamples}}
	for _, o := range opts {
		o(d)
	}
	return d
}

var std = NewDecoder()

// ParsePathData converts a path d attribute value to a geometry.
func (d *Decoder) ParsePathData(s string) (geom.Geometry, error) {
	cmds, err := Scan(s)
	if err != nil {
		return nil, err
	}
	return Assemble(Trace(cmds, d.flat))
}

// ParsePathDataCollection wraps the result of ParsePathData as the sole
// member of a collection.
func (d *Decoder) ParsePathDataCollection(s string) (geom.GeometryCollection, error) {
	g, err := d.ParsePathData(s)
	if err != nil {
		return nil, err
	}
	return geom.GeometryCollection{g}, nil
}

// ParseElement converts the first element of text. Anything after that
// element is ignored.
func (d *Decoder) ParseElement(text string) (geom.Geometry, error) {
	var g geom.Geometry
	err := d.walk(text, func(tag string, attrs map[string]string) (bool, error) {
		var err error
		g, err = d.DecodeElement(tag, attrs)
		return false, err
	})
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, elementError(ErrMalformedElement, "", errNoElement)
	}
	return g, nil
}

// ParseElementCollection wraps the result of ParseElement as the sole
// member of a collection.
func (d *Decoder) ParseElementCollection(text string) (geom.GeometryCollection, error) {
	g, err := d.ParseElement(text)
	if err != nil {
		return nil, err
	}
	return geom.GeometryCollection{g}, nil
}

// ParseElements converts every top level element of text, in order, such
// as the newline joined output of Marshal. Empty text yields an empty
// collection.
func (d *Decoder) ParseElements(text string) (geom.GeometryCollection, error) {
	gc := geom.GeometryCollection{}
	err := d.walk(text, func(tag string, attrs map[string]string) (bool, error) {
		g, err := d.DecodeElement(tag, attrs)
		if err != nil {
			return false, err
		}
		gc = append(gc, g)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return gc, nil
}

// walk calls fn for each top level start element until fn returns false.
func (d *Decoder) walk(text string, fn func(tag string, attrs map[string]string) (bool, error)) error {
	dec := xml.NewDecoder(strings.NewReader(text))
	dec.Strict = false
	dec.CharsetReader = charset.NewReaderLabel
	depth := 0
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return elementError(ErrMalformedElement, "", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if depth > 1 {
				continue
			}
			attrs := make(map[string]string, len(t.Attr))
			for _, a := range t.Attr {
				attrs[a.Name.Local] = a.Value
			}
			more, err := fn(t.Name.Local, attrs)
			if err != nil || !more {
				return err
			}
		case xml.EndElement:
			depth--
		}
	}
}

// ParsePathData converts path data with the default decoder.
func ParsePathData(s string) (geom.Geometry, error) { return std.ParsePathData(s) }

func ParsePathDataCollection(s string) (geom.GeometryCollection, error) {
	return std.ParsePathDataCollection(s)
}

// ParseElement converts one shape element with the default decoder.
func ParseElement(text string) (geom.Geometry, error) { return std.ParseElement(text) }

func ParseElementCollection(text string) (geom.GeometryCollection, error) {
	return std.ParseElementCollection(text)
}

func ParseElements(text string) (geom.GeometryCollection, error) { return std.ParseElements(text) }

// DecodeElement converts a tag and its attributes with the default decoder.
func DecodeElement(tag string, attrs map[string]string) (geom.Geometry, error) {
	return std.DecodeElement(tag, attrs)
}
