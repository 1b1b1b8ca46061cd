package geom

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	gogeom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// Feature is a decoded GeoJSON feature. Bare geometries decode as features
// without properties.
type Feature struct {
	Geometry   Geometry
	Properties map[string]any
}

// ParseGeoJSON decodes a geometry, a Feature or a FeatureCollection.
// Features with a null geometry are skipped.
func ParseGeoJSON(data []byte) ([]Feature, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, err
	}
	var raw []*geojson.Feature
	switch head.Type {
	case "":
		return nil, errors.New("invalid geojson: missing type")
	case "FeatureCollection":
		var fc geojson.FeatureCollection
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, err
		}
		raw = fc.Features
	case "Feature":
		var f geojson.Feature
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, err
		}
		raw = []*geojson.Feature{&f}
	default:
		var t gogeom.T
		if err := geojson.Unmarshal(data, &t); err != nil {
			return nil, err
		}
		raw = []*geojson.Feature{{Geometry: t}}
	}
	var out []Feature
	for _, f := range raw {
		if f == nil || f.Geometry == nil {
			continue
		}
		g, err := FromT(f.Geometry)
		if errors.Is(err, errEmptyPoint) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("geojson: %w", err)
		}
		out = append(out, Feature{Geometry: g, Properties: f.Properties})
	}
	if len(out) == 0 {
		return nil, errors.New("no geometries found")
	}
	return out, nil
}

// LoadGeoJSON reads and decodes a GeoJSON file.
func LoadGeoJSON(path string) ([]Feature, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseGeoJSON(data)
}

// Collect folds features into one geometry: the sole member, or a
// collection in feature order.
func Collect(fs []Feature) Geometry {
	if len(fs) == 1 {
		return fs[0].Geometry
	}
	gc := make(GeometryCollection, len(fs))
	for i, f := range fs {
		gc[i] = f.Geometry
	}
	return gc
}

// LoadGeo reads a GeoJSON file and returns Data (points, lines, polygons)
func LoadGeo(path string) (Data, error) {
	fs, err := LoadGeoJSON(path)
	if err != nil {
		return Data{}, err
	}
	return Project(Collect(fs)), nil
}

// MarshalGeoJSON encodes g as a GeoJSON geometry object.
func MarshalGeoJSON(g Geometry) ([]byte, error) {
	t, err := ToT(g)
	if err != nil {
		return nil, fmt.Errorf("geojson: %w", err)
	}
	return geojson.Marshal(t)
}
