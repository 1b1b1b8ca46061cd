package svg

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	tests := []struct {
		name string
		d    string
		want []Command
	}{
		{"empty", "  ", nil},
		{
			"letters and implicit lineto",
			"M10 10 20 20L40 1",
			[]Command{
				{Type: MoveTo, Args: []float64{10, 10}},
				{Type: LineTo, Args: []float64{20, 20}},
				{Type: LineTo, Args: []float64{40, 1}},
			},
		},
		{
			"relative moveto repeats as relative lineto",
			"m1 1 2 2",
			[]Command{
				{Type: MoveTo, Relative: true, Args: []float64{1, 1}},
				{Type: LineTo, Relative: true, Args: []float64{2, 2}},
			},
		},
		{
			"numbers without separators",
			"M1.5-2.5.5.5",
			[]Command{
				{Type: MoveTo, Args: []float64{1.5, -2.5}},
				{Type: LineTo, Args: []float64{.5, .5}},
			},
		},
		{
			"exponents and commas",
			"M1e2,-1E-1 h+3,4",
			[]Command{
				{Type: MoveTo, Args: []float64{100, -0.1}},
				{Type: HorizontalLineTo, Relative: true, Args: []float64{3}},
				{Type: HorizontalLineTo, Relative: true, Args: []float64{4}},
			},
		},
		{
			"compact arc flags",
			"M0 0a1 1 0 0110 10",
			[]Command{
				{Type: MoveTo, Args: []float64{0, 0}},
				{Type: ArcTo, Relative: true, Args: []float64{1, 1, 0, 0, 1, 10, 10}},
			},
		},
		{
			"curves and close",
			"M0 0C1 2 3 4 5 6S7 8 9 10Q1 1 2 2T3 3z",
			[]Command{
				{Type: MoveTo, Args: []float64{0, 0}},
				{Type: CubicCurveTo, Args: []float64{1, 2, 3, 4, 5, 6}},
				{Type: SmoothCubicCurveTo, Args: []float64{7, 8, 9, 10}},
				{Type: QuadraticCurveTo, Args: []float64{1, 1, 2, 2}},
				{Type: SmoothQuadraticCurveTo, Args: []float64{3, 3}},
				{Type: ClosePath, Relative: true},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Scan(tt.d)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		name   string
		d      string
		kind   error
		input  string
		offset int
	}{
		{"unknown letter", "M0 0 X1 2", ErrUnsupportedCommand, "X", 5},
		{"trailing partial group", "M0 0 L10", ErrTruncatedCommand, "L10", 5},
		{"partial group before letter", "M0 0 C1 2 3 4 L5 5", ErrTruncatedCommand, "C1 2 3 4", 5},
		{"bare letter", "M", ErrTruncatedCommand, "M", 0},
		{"lone sign", "M0 0 L- 0", ErrInvalidNumber, "-", 6},
		{"exponent without digits", "M0 0L1e 2", ErrInvalidNumber, "1e", 5},
		{"signed exponent without digits", "M0 0L1 2E+", ErrInvalidNumber, "2E+", 7},
		{"no leading moveto", "L0 0", ErrMalformedPath, "L", 0},
		{"numbers after close", "M0 0 Z 1 1", ErrMalformedPath, "1", 7},
		{"bad arc flag", "M0 0 A1 1 0 2 0 1 1", ErrMalformedPath, "2", 12},
		{"stray character", "M0 0 #", ErrMalformedPath, "#", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Scan(tt.d)
			require.ErrorIs(t, err, tt.kind)
			var e *Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, tt.input, e.Input)
			assert.Equal(t, tt.offset, e.Offset)
		})
	}
}

func TestScanErrorTaxonomy(t *testing.T) {
	_, err := Scan("M0 0 X1 2")
	assert.ErrorIs(t, err, ErrMalformedPath)
	assert.EqualError(t, err, `svg: malformed path: unsupported command "X" at offset 5`)

	_, err = Scan("M0 0 L10")
	assert.ErrorIs(t, err, ErrMalformedPath)

	_, err = Scan("M0 0 L1e999 0")
	require.ErrorIs(t, err, ErrInvalidNumber)
	var numErr *strconv.NumError
	require.ErrorAs(t, err, &numErr)
	assert.True(t, errors.Is(numErr.Err, strconv.ErrRange))
}

func TestCommandLetter(t *testing.T) {
	assert.Equal(t, byte('c'), Command{Type: CubicCurveTo, Relative: true}.Letter())
	assert.Equal(t, byte('Z'), Command{Type: ClosePath}.Letter())
	assert.Equal(t, 7, ArcTo.Arity())
	assert.Equal(t, "SmoothQuadraticCurveTo", SmoothQuadraticCurveTo.String())
}
