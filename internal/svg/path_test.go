package svg

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"geosvg/internal/geom"
)

func TestParsePathData(t *testing.T) {
	exterior := geom.LineString{{X: 0, Y: 0}, {X: 0, Y: 60}, {X: 60, Y: 60}, {X: 60, Y: 0}, {X: 0, Y: 0}}
	hole := geom.LineString{{X: 10, Y: 10}, {X: 40, Y: 1}, {X: 40, Y: 40}, {X: 10.5, Y: 40}, {X: 10, Y: 10}}
	tests := []struct {
		name string
		d    string
		want geom.Geometry
	}{
		{
			"exterior and hole",
			"M0 0L0 60L60 60L60 0L0 0M10 10L40 1L40 40L10.5 40L10 10",
			geom.Polygon{Exterior: exterior, Interiors: []geom.LineString{hole}},
		},
		{
			"relative lines",
			"M0 0l0 60l60 0L60 0L0 0M10 10l30-9l0 39l-29.5 0L10 10",
			geom.Polygon{Exterior: exterior, Interiors: []geom.LineString{hole}},
		},
		{
			"horizontal and vertical",
			"M0 0v60h60v-60h-60M10 10l30 -9v39h-29.5L10 10",
			geom.Polygon{Exterior: exterior, Interiors: []geom.LineString{hole}},
		},
		{
			"open subpath",
			"M0 0 L10 0 20 5",
			geom.LineString{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 5}},
		},
		{
			"open subpath ending at its start",
			"M0 0 L10 0 L0 0",
			geom.LineString{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 0}},
		},
		{
			"closepath appends the start",
			"M0 0 L10 0 L10 10 Z",
			geom.Polygon{Exterior: geom.LineString{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 0}}},
		},
		{
			"closepath on a closed ring",
			"M0 0 L10 0 L10 10 L0 0 Z",
			geom.Polygon{Exterior: geom.LineString{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 0}}},
		},
		{
			"open ring without closepath",
			"M0 0L0 60L60 60L60 0L0 0",
			geom.Polygon{Exterior: exterior},
		},
		{
			"closed single point",
			"M0 0Z",
			geom.Point{},
		},
		{
			"closed two point subpath",
			"M0 0L10 0Z",
			geom.LineString{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 0}},
		},
		{
			"single point",
			"M5 5",
			geom.Point{X: 5, Y: 5},
		},
		{
			"two closed subpaths",
			"M0 0H10V10H0ZM2 2H4V4H2Z",
			geom.Polygon{
				Exterior:  geom.LineString{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 0}},
				Interiors: []geom.LineString{{{X: 2, Y: 2}, {X: 4, Y: 2}, {X: 4, Y: 4}, {X: 2, Y: 4}, {X: 2, Y: 2}}},
			},
		},
		{
			"relative moveto after close",
			"m10 10 l5 0 0 5 z m1 1 l1 0 0 1 z",
			geom.Polygon{
				Exterior:  geom.LineString{{X: 10, Y: 10}, {X: 15, Y: 10}, {X: 15, Y: 15}, {X: 10, Y: 10}},
				Interiors: []geom.LineString{{{X: 11, Y: 11}, {X: 12, Y: 11}, {X: 12, Y: 12}, {X: 11, Y: 11}}},
			},
		},
		{
			"drawing after close starts at the subpath start",
			"M0 0L10 0L10 10ZL-5 0L0 -5Z",
			geom.Polygon{
				Exterior:  geom.LineString{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 0}},
				Interiors: []geom.LineString{{{X: 0, Y: 0}, {X: -5, Y: 0}, {X: 0, Y: -5}, {X: 0, Y: 0}}},
			},
		},
		{
			"arc with zero radius is a line",
			"M0 0A0 5 0 0 1 10 0",
			geom.LineString{{X: 0, Y: 0}, {X: 10, Y: 0}},
		},
		{
			"arc to the current point is dropped",
			"M0 0A5 5 0 0 1 0 0L1 1",
			geom.LineString{{X: 0, Y: 0}, {X: 1, Y: 1}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePathData(tt.d)
			if err != nil {
				t.Fatalf("parsing failed: %s", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("incorrect output: %s", diff)
			}
		})
	}
}

func TestParsePathDataErrors(t *testing.T) {
	tests := []struct {
		name string
		d    string
		kind error
	}{
		{"empty", "", ErrEmptyGeometry},
		{"open hole", "M0 0H10V10H0ZM2 2L3 3", ErrMalformedElement},
		{"degenerate hole", "M0 0H10V10H0ZM2 2Z", ErrMalformedElement},
		{"unknown command", "M0 0 K1 1", ErrUnsupportedCommand},
		{"truncated", "M0 0 L1", ErrTruncatedCommand},
		{"bad number", "M0 0 L1 .", ErrInvalidNumber},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ParsePathData(tt.d)
			if !errors.Is(err, tt.kind) {
				t.Fatalf("got %v, want %v", err, tt.kind)
			}
			if g != nil {
				t.Errorf("partial result %v", g)
			}
		})
	}
	_, err := ParsePathData("")
	if !errors.Is(err, ErrMalformedElement) {
		t.Errorf("empty geometry should be a malformed element, got %v", err)
	}
}

func TestCurveFlattening(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-9)

	t.Run("cubic", func(t *testing.T) {
		ls := mustLineString(t, "M0 0C0 10 10 10 10 0")
		if len(ls) != 1+DefaultSamples {
			t.Fatalf("got %d points", len(ls))
		}
		if diff := cmp.Diff(geom.Coord{X: 5, Y: 7.5}, ls[50]); diff != "" {
			t.Errorf("midpoint: %s", diff)
		}
		if ls[len(ls)-1] != (geom.Coord{X: 10, Y: 0}) {
			t.Errorf("endpoint %v", ls[len(ls)-1])
		}
	})

	t.Run("smooth cubic without a previous curve", func(t *testing.T) {
		ls := mustLineString(t, "M0 0S10 10 20 0")
		if diff := cmp.Diff(geom.Coord{X: 6.25, Y: 3.75}, ls[50]); diff != "" {
			t.Errorf("midpoint: %s", diff)
		}
	})

	t.Run("smooth quadratic reflects", func(t *testing.T) {
		ls := mustLineString(t, "M0 0Q5 10 10 0T20 0")
		if len(ls) != 1+2*DefaultSamples {
			t.Fatalf("got %d points", len(ls))
		}
		if diff := cmp.Diff(geom.Coord{X: 15, Y: -5}, ls[150]); diff != "" {
			t.Errorf("reflected midpoint: %s", diff)
		}
	})

	t.Run("smooth quadratic after a line", func(t *testing.T) {
		ls := mustLineString(t, "M0 0L10 0T20 0")
		for _, c := range ls {
			if c.Y != 0 {
				t.Fatalf("left the line at %v", c)
			}
		}
	})

	t.Run("arc", func(t *testing.T) {
		ls := mustLineString(t, "M0 0A10 10 0 0 1 20 0")
		if len(ls) != 1+DefaultSamples {
			t.Fatalf("got %d points", len(ls))
		}
		for _, c := range ls {
			if r := math.Hypot(c.X-10, c.Y); math.Abs(r-10) > 1e-9 {
				t.Fatalf("%v is off the circle: r=%g", c, r)
			}
		}
		if diff := cmp.Diff(geom.Coord{X: 10, Y: -10}, ls[50], approx); diff != "" {
			t.Errorf("midpoint: %s", diff)
		}
	})

	t.Run("arc with radii too small", func(t *testing.T) {
		ls := mustLineString(t, "M0 0A1 1 0 0 0 10 0")
		if diff := cmp.Diff(geom.Coord{X: 5, Y: 5}, ls[50], approx); diff != "" {
			t.Errorf("midpoint: %s", diff)
		}
		if ls[len(ls)-1] != (geom.Coord{X: 10, Y: 0}) {
			t.Errorf("endpoint %v", ls[len(ls)-1])
		}
	})
}

func TestWithFlattener(t *testing.T) {
	d := NewDecoder(WithFlattener(FixedFlattener{Samples: 4}))
	g, err := d.ParsePathData("M0 0Q5 10 10 0")
	if err != nil {
		t.Fatal(err)
	}
	want := geom.LineString{{X: 0, Y: 0}, {X: 2.5, Y: 3.75}, {X: 5, Y: 5}, {X: 7.5, Y: 3.75}, {X: 10, Y: 0}}
	if diff := cmp.Diff(want, g); diff != "" {
		t.Errorf("incorrect output: %s", diff)
	}
}

func TestParsePathDataCollection(t *testing.T) {
	gc, err := ParsePathDataCollection("M0 0L1 1")
	if err != nil {
		t.Fatal(err)
	}
	want := geom.GeometryCollection{geom.LineString{{X: 0, Y: 0}, {X: 1, Y: 1}}}
	if diff := cmp.Diff(want, gc); diff != "" {
		t.Errorf("incorrect output: %s", diff)
	}
}

func mustLineString(t *testing.T, d string) geom.LineString {
	t.Helper()
	g, err := ParsePathData(d)
	if err != nil {
		t.Fatalf("parsing %q: %s", d, err)
	}
	ls, ok := g.(geom.LineString)
	if !ok {
		t.Fatalf("parsing %q: got %T", d, g)
	}
	return ls
}
