package batch

import (
	"fmt"
	"strings"

	"geosvg/internal/config"
	"geosvg/internal/geom"
	"geosvg/internal/svg"
)

// Auto asks Parse to pick the input format with Detect.
const Auto = "auto"

// Detect guesses the format of text: markup is svg, a path command letter
// not followed by another letter is d, a JSON object is geojson and
// anything else is wkt.
func Detect(text string) string {
	s := strings.TrimSpace(text)
	switch {
	case s == "":
		return config.FormatWKT
	case s[0] == '<':
		return config.FormatSVG
	case s[0] == '{':
		return config.FormatGeoJSON
	case strings.IndexByte("MmLlHhVvCcSsQqTtAaZz", s[0]) >= 0 && (len(s) == 1 || !isAlpha(s[1])):
		return config.FormatD
	}
	return config.FormatWKT
}

func isAlpha(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// Parse decodes text written in format from. Several svg elements yield
// a collection, a single one its own geometry. A nil dec uses the
// default flattening.
func Parse(text, from string, dec *svg.Decoder) (geom.Geometry, error) {
	if dec == nil {
		dec = svg.NewDecoder()
	}
	if from == "" || from == Auto {
		from = Detect(text)
	}
	switch from {
	case config.FormatSVG:
		gc, err := dec.ParseElements(text)
		if err != nil {
			return nil, err
		}
		if len(gc) == 1 {
			return gc[0], nil
		}
		return gc, nil
	case config.FormatD:
		return dec.ParsePathData(strings.TrimSpace(text))
	case config.FormatWKT:
		return geom.ParseWKT(text)
	case config.FormatGeoJSON:
		fs, err := geom.ParseGeoJSON([]byte(text))
		if err != nil {
			return nil, err
		}
		return geom.Collect(fs), nil
	}
	return nil, fmt.Errorf("unknown input format %q", from)
}

// Format encodes g in format to.
func Format(g geom.Geometry, to string) (string, error) {
	switch to {
	case config.FormatSVG:
		return svg.Marshal(g), nil
	case config.FormatD:
		return svg.MarshalPathData(g), nil
	case config.FormatWKT:
		return geom.FormatWKT(g)
	case config.FormatGeoJSON:
		b, err := geom.MarshalGeoJSON(g)
		return string(b), err
	}
	return "", fmt.Errorf("unknown output format %q", to)
}
