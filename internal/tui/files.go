package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	"github.com/mitchellh/go-homedir"

	"geosvg/internal/batch"
	"geosvg/internal/config"
	"geosvg/internal/geom"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

var supportedExts = map[string]bool{
	".svg":     true,
	".wkt":     true,
	".geojson": true,
	".json":    true,
	".kml":     true,
	".csv":     true,
}

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if supportedExts[ext] {
			items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no supported files in current directory"
	}
}

// loadPath loads a supported file into the model and starts watching it.
// It reports whether the file was loaded.
func (m *Model) loadPath(p string) bool {
	if exp, err := homedir.Expand(p); err == nil {
		p = exp
	}
	if abs, err := filepath.Abs(p); err == nil {
		p = abs
	}
	ext := strings.ToLower(filepath.Ext(p))
	if !supportedExts[ext] {
		m.status = "unsupported file: " + ext
		return false
	}
	g, features, err := m.readFile(p, ext)
	if err != nil {
		m.status = "load error: " + err.Error()
		return false
	}
	m.selPath = p
	m.features = features
	m.setGeometry(g, ext == ".svg")
	m.status = "loaded: " + filepath.Base(p) + "  " + m.counts()
	m.watch(p)
	m.syncAttrs()
	return true
}

func (m *Model) readFile(p, ext string) (geom.Geometry, []geom.Feature, error) {
	switch ext {
	case ".geojson", ".json":
		fs, err := geom.LoadGeoJSON(p)
		if err != nil {
			return nil, nil, err
		}
		return geom.Collect(fs), fs, nil
	case ".csv":
		pts, err := geom.LoadCSV(p)
		return pts, nil, err
	case ".kml":
		g, err := geom.LoadKML(p)
		return g, nil, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, nil, err
	}
	from := config.FormatWKT
	if ext == ".svg" {
		from = config.FormatSVG
	}
	g, err := batch.Parse(string(data), from, m.dec)
	return g, nil, err
}

// setGeometry replaces the shown geometry and resets the viewport.
func (m *Model) setGeometry(g geom.Geometry, yDown bool) {
	m.g = g
	m.yDown = yDown
	m.data = geom.Project(g)
	m.data.BBox = padBBox(m.data.BBox)
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
	m.showPolys = len(m.data.Polygons) > 0
	m.showLines = len(m.data.Lines) > 0
	m.showPoints = len(m.data.Points) > 0
}

// padBBox widens a degenerate box so single points and axis aligned lines
// still map onto the screen.
func padBBox(b geom.BBox) geom.BBox {
	if b.MaxX <= b.MinX {
		b.MinX, b.MaxX = b.MinX-1, b.MaxX+1
	}
	if b.MaxY <= b.MinY {
		b.MinY, b.MaxY = b.MinY-1, b.MaxY+1
	}
	return b
}

func (m Model) counts() string {
	return fmt.Sprintf("counts: pts=%d ls=%d poly=%d", len(m.data.Points), len(m.data.Lines), len(m.data.Polygons))
}
