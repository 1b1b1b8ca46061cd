// Package batch converts shapes between the svg, d, wkt and geojson
// formats, one at a time or a CSV column at a time.
package batch

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"geosvg/internal/config"
	"geosvg/internal/svg"
)

type Options struct {
	// Column names the input column; empty picks the first header called
	// geometry, shape, svg, d, path or wkt (case-insensitive).
	Column string
	From   string
	To     string
	// Decoder is used for svg and d input; nil uses the default.
	Decoder *svg.Decoder
	// Lenient leaves the output cell empty for rows that fail to convert
	// instead of stopping at the first failure.
	Lenient bool
}

type Stats struct {
	Rows   int
	Failed int
}

// Convert copies the CSV in r to w with one column added, named after the
// input column and the output format (e.g. "shape_wkt"), holding each
// row's shape converted to opt.To.
func Convert(r io.Reader, w io.Writer, opt Options) (Stats, error) {
	var st Stats
	if opt.To == "" {
		opt.To = config.FormatSVG
	}
	if !config.ValidFormat(opt.To) {
		return st, fmt.Errorf("batch: unknown output format %q", opt.To)
	}
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err == io.EOF {
		return st, errors.New("empty csv")
	}
	if err != nil {
		return st, fmt.Errorf("csv: %w", err)
	}
	col := findColumn(header, opt.Column)
	if col == -1 {
		if opt.Column != "" {
			return st, fmt.Errorf("csv: column %q not found", opt.Column)
		}
		return st, errors.New("csv: geometry column not found")
	}

	cw := csv.NewWriter(w)
	out := append(header[:len(header):len(header)], strings.TrimSpace(header[col])+"_"+opt.To)
	if err := cw.Write(out); err != nil {
		return st, err
	}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return st, fmt.Errorf("csv: %w", err)
		}
		st.Rows++
		line, _ := cr.FieldPos(0)
		cell := ""
		if col < len(row) {
			cell, err = convertCell(row[col], opt)
		} else {
			err = errors.New("missing column")
		}
		if err != nil {
			if !opt.Lenient {
				return st, fmt.Errorf("line %d: %w", line, err)
			}
			st.Failed++
		}
		if err := cw.Write(append(row[:len(row):len(row)], cell)); err != nil {
			return st, err
		}
	}
	cw.Flush()
	return st, cw.Error()
}

func convertCell(text string, opt Options) (string, error) {
	g, err := Parse(text, opt.From, opt.Decoder)
	if err != nil {
		return "", err
	}
	return Format(g, opt.To)
}

func findColumn(header []string, name string) int {
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		if name != "" {
			if h == strings.ToLower(name) {
				return i
			}
			continue
		}
		switch h {
		case "geometry", "shape", "svg", "d", "path", "wkt":
			return i
		}
	}
	return -1
}
