package tui

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	table "github.com/charmbracelet/bubbles/table"

	"geosvg/internal/geom"
	"geosvg/internal/svg"
)

// refreshAttrsFromCurrent rebuilds the table columns/rows from the current dataset
func (m *Model) refreshAttrsFromCurrent() {
	cols, rows := m.buildAttributes()
	// If there are no columns or rows, disable attributes view to avoid rendering panics
	if len(cols) == 0 || len(rows) == 0 {
		m.showAttrs = false
		m.status = "no attributes for current dataset"
		return
	}
	tcols := make([]table.Column, 0, len(cols)+1)
	tcols = append(tcols, table.Column{Title: "#", Width: 4})
	for i, c := range cols {
		w := len(c) + 2
		for _, r := range rows {
			if i < len(r) {
				w = max(w, len(r[i])+2)
			}
		}
		tcols = append(tcols, table.Column{Title: c, Width: min(w, 40)})
	}
	trows := make([]table.Row, 0, len(rows))
	for i, r := range rows {
		// normalize each row to the number of table columns
		cells := make([]string, len(tcols))
		cells[0] = fmt.Sprintf("%d", i+1)
		copy(cells[1:], r)
		trows = append(trows, table.Row(cells))
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tcols)
	m.tbl.SetRows(trows)
}

// syncAttrs keeps an open table in step with a newly loaded dataset.
func (m *Model) syncAttrs() {
	if m.showAttrs {
		m.refreshAttrsFromCurrent()
	}
}

// buildAttributes returns feature properties for GeoJSON, the rows of a CSV
// and one row per member shape for everything else.
func (m *Model) buildAttributes() ([]string, [][]string) {
	if m.g == nil {
		return nil, nil
	}
	if cols, rows := propertyRows(m.features); len(cols) > 0 {
		return cols, rows
	}
	if m.selPath != "" && strings.ToLower(filepath.Ext(m.selPath)) == ".csv" {
		return buildAttrsCSV(m.selPath)
	}
	return memberRows(m.g)
}

// memberRows describes each member of g: kind, vertex and ring counts and
// its SVG rendering.
func memberRows(g geom.Geometry) ([]string, [][]string) {
	cols := []string{"kind", "vertices", "rings", "svg"}
	var rows [][]string
	for _, mg := range members(g) {
		rows = append(rows, []string{
			mg.Kind().String(),
			fmt.Sprintf("%d", geom.NumCoords(mg)),
			fmt.Sprintf("%d", ringCount(mg)),
			svg.Marshal(mg),
		})
	}
	return cols, rows
}

// members flattens collections and multi geometries into their parts.
func members(g geom.Geometry) []geom.Geometry {
	switch g := g.(type) {
	case nil:
		return nil
	case geom.GeometryCollection:
		var out []geom.Geometry
		for _, mg := range g {
			out = append(out, members(mg)...)
		}
		return out
	case geom.MultiPoint:
		out := make([]geom.Geometry, len(g))
		for i, p := range g {
			out[i] = p
		}
		return out
	case geom.MultiLineString:
		out := make([]geom.Geometry, len(g))
		for i, ls := range g {
			out[i] = ls
		}
		return out
	case geom.MultiPolygon:
		out := make([]geom.Geometry, len(g))
		for i, p := range g {
			out[i] = p
		}
		return out
	}
	return []geom.Geometry{g}
}

func ringCount(g geom.Geometry) int {
	switch g := g.(type) {
	case geom.Polygon:
		if len(g.Exterior) == 0 {
			return 0
		}
		return 1 + len(g.Interiors)
	case geom.Rect, geom.Triangle:
		return 1
	}
	return 0
}

// propertyRows unions the property keys of the features in first seen order.
func propertyRows(features []geom.Feature) ([]string, [][]string) {
	order := []string{}
	seen := map[string]bool{}
	for _, f := range features {
		for k := range f.Properties {
			if !seen[k] {
				seen[k] = true
				order = append(order, k)
			}
		}
	}
	if len(order) == 0 {
		return nil, nil
	}
	rows := make([][]string, 0, len(features))
	for _, f := range features {
		vals := make([]string, 0, len(order))
		for _, k := range order {
			switch t := f.Properties[k].(type) {
			case nil:
				vals = append(vals, "")
			case string:
				vals = append(vals, t)
			case float64:
				vals = append(vals, fmt.Sprintf("%g", t))
			case bool:
				vals = append(vals, fmt.Sprintf("%t", t))
			default:
				bs, _ := json.Marshal(t)
				vals = append(vals, string(bs))
			}
		}
		rows = append(rows, vals)
	}
	return order, rows
}

// buildAttrsCSV returns header as columns and each row as values
func buildAttrsCSV(path string) ([]string, [][]string) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	recs, err := r.ReadAll()
	if err != nil || len(recs) == 0 {
		return nil, nil
	}
	header := recs[0]
	rows := make([][]string, 0, len(recs)-1)
	for _, row := range recs[1:] {
		vals := make([]string, len(header))
		copy(vals, row)
		rows = append(rows, vals)
	}
	return header, rows
}
