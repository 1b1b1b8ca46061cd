package geom

import (
	"errors"
	"fmt"
	"strings"

	"github.com/twpayne/go-geom/encoding/wkt"
)

// ParseWKT decodes any WKT geometry, Z and M ordinates are dropped.
func ParseWKT(s string) (Geometry, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty wkt")
	}
	t, err := wkt.Unmarshal(s)
	if err != nil {
		return nil, fmt.Errorf("wkt: %w", err)
	}
	g, err := FromT(t)
	if err != nil {
		return nil, fmt.Errorf("wkt: %w", err)
	}
	return g, nil
}

// ParseWKTData returns the render container for a WKT string.
func ParseWKTData(s string) (Data, error) {
	g, err := ParseWKT(s)
	if err != nil {
		return Data{}, err
	}
	d := Project(g)
	if d.Empty() {
		return Data{}, errors.New("wkt: no coordinates parsed")
	}
	return d, nil
}

// FormatWKT encodes g as WKT.
func FormatWKT(g Geometry) (string, error) {
	t, err := ToT(g)
	if err != nil {
		return "", fmt.Errorf("wkt: %w", err)
	}
	return wkt.Marshal(t)
}
