package svg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geosvg/internal/geom"
)

var (
	unitSquare = geom.Polygon{Exterior: geom.LineString{{X: 1, Y: 1}, {X: 4, Y: 1}, {X: 4, Y: 4}, {X: 1, Y: 4}, {X: 1, Y: 1}}}
	trail      = geom.LineString{{X: 11, Y: 21}, {X: 34, Y: 21}, {X: 24, Y: 54}, {X: 31.5, Y: 34}}
)

func TestMarshal(t *testing.T) {
	tests := []struct {
		name string
		g    geom.Geometry
		want string
	}{
		{
			"collection",
			geom.GeometryCollection{trail, unitSquare},
			"<polyline points=\"11,21 34,21 24,54 31.5,34\"/>\n<path d=\"M1 1L4 1L4 4L1 4L1 1\"/>",
		},
		{
			"multipolygon",
			geom.MultiPolygon{unitSquare, {Exterior: geom.LineString{{X: 0, Y: 0}, {X: 0, Y: 1.5}, {X: 1.5, Y: 0}, {X: 0, Y: 0}}}},
			"<path d=\"M1 1L4 1L4 4L1 4L1 1\"/>\n<path d=\"M0 0L0 1.5L1.5 0L0 0\"/>",
		},
		{
			"polygon with hole",
			geom.Polygon{
				Exterior:  geom.LineString{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 0, Y: 0}},
				Interiors: []geom.LineString{{{X: 1, Y: 2}, {X: 2, Y: 2}, {X: 1, Y: 3}, {X: 1, Y: 2}}},
			},
			`<path d="M0 0L0 10L10 10L0 0M1 2L2 2L1 3L1 2"/>`,
		},
		{"point", geom.Point{X: -1, Y: 2.25}, `<path d="M-1 2.25"/>`},
		{"line", geom.Line{Start: geom.Coord{X: 0, Y: 0}, End: geom.Coord{X: 10, Y: 10}}, `<line x1="0" y1="0" x2="10" y2="10"/>`},
		{"triangle", geom.Triangle{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}, `<polygon points="0,0 1,0 0,1"/>`},
		{"rect", geom.Rect{Min: geom.Coord{X: 1, Y: 2}, Max: geom.Coord{X: 4, Y: 6}}, `<rect x="1" y="2" width="3" height="4"/>`},
		{"multipoint", geom.MultiPoint{{X: 1, Y: 1}, {X: 2, Y: 2}}, "<path d=\"M1 1\"/>\n<path d=\"M2 2\"/>"},
		{"empty collection", geom.GeometryCollection{}, ""},
		{"empty members skipped", geom.GeometryCollection{geom.LineString{}, geom.Polygon{}, trail}, `<polyline points="11,21 34,21 24,54 31.5,34"/>`},
		{"nil", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Marshal(tt.g))
		})
	}
}

func TestMarshalPathData(t *testing.T) {
	tests := []struct {
		name string
		g    geom.Geometry
		want string
	}{
		{
			"multipolygon",
			geom.MultiPolygon{unitSquare, {Exterior: geom.LineString{{X: 0, Y: 0}, {X: 0, Y: 1.5}, {X: 1.5, Y: 0}, {X: 0, Y: 0}}}},
			"M1 1L4 1L4 4L1 4L1 1\nM0 0L0 1.5L1.5 0L0 0",
		},
		{"linestring", trail, "M11 21L34 21L24 54L31.5 34"},
		{"line", geom.Line{Start: geom.Coord{X: 1, Y: 2}, End: geom.Coord{X: 3, Y: 4}}, "M1 2L3 4"},
		{"triangle", geom.Triangle{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}, "M0 0L1 0L0 1L0 0"},
		{"rect", geom.Rect{Min: geom.Coord{X: 0, Y: 0}, Max: geom.Coord{X: 2, Y: 1}}, "M0 0L0 1L2 1L2 0L0 0"},
		{"multilinestring", geom.MultiLineString{{{X: 0, Y: 0}, {X: 1, Y: 1}}, {{X: 2, Y: 2}, {X: 3, Y: 3}}}, "M0 0L1 1\nM2 2L3 3"},
		{"empty", geom.MultiPolygon{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MarshalPathData(tt.g))
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1, "1"},
		{1.5, "1.5"},
		{-0.25, "-0.25"},
		{0.1, "0.1"},
		{math.Copysign(0, -1), "0"},
		{1e21, "1000000000000000000000"},
		{1.0 / 3, "0.3333333333333333"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatNumber(tt.in))
	}
}

func TestRoundTrip(t *testing.T) {
	geoms := []geom.Geometry{
		unitSquare,
		trail,
		geom.Line{Start: geom.Coord{X: -1, Y: 0.5}, End: geom.Coord{X: 1e-7, Y: 3}},
		geom.Point{X: 0.1, Y: 0.2},
		geom.Polygon{
			Exterior:  geom.LineString{{X: 0, Y: 0}, {X: 0, Y: 60}, {X: 60, Y: 60}, {X: 60, Y: 0}, {X: 0, Y: 0}},
			Interiors: []geom.LineString{{{X: 10, Y: 10}, {X: 40, Y: 1}, {X: 40, Y: 40}, {X: 10.5, Y: 40}, {X: 10, Y: 10}}},
		},
	}
	for _, g := range geoms {
		t.Run(g.Kind().String(), func(t *testing.T) {
			back, err := ParseElement(Marshal(g))
			require.NoError(t, err)
			assert.Equal(t, g, back)

			if _, ok := g.(geom.Line); ok {
				return
			}
			back, err = ParsePathData(MarshalPathData(g))
			require.NoError(t, err)
			assert.Equal(t, g, back)
		})
	}

	t.Run("multipolygon", func(t *testing.T) {
		mp := geom.MultiPolygon{unitSquare, {Exterior: geom.LineString{{X: 0, Y: 0}, {X: 0, Y: 1.5}, {X: 1.5, Y: 0}, {X: 0, Y: 0}}}}
		gc, err := ParseElements(Marshal(mp))
		require.NoError(t, err)
		require.Len(t, gc, 2)
		assert.Equal(t, mp[0], gc[0])
		assert.Equal(t, mp[1], gc[1])
	})
}
