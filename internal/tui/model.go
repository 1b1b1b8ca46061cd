package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"geosvg/internal/config"
	"geosvg/internal/geom"
	"geosvg/internal/svg"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Data
	dec      *svg.Decoder
	g        geom.Geometry
	features []geom.Feature
	data     geom.Data
	// SVG input has y growing downward; map formats have it growing upward.
	yDown bool

	// footer output format, one of config.Formats
	format string

	// watches the directory of selPath for rewrites
	watcher *fsnotify.Watcher
	watched string

	// last rendered map size (for inspect)
	mapW int
	mapH int

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// layer visibility
	showPoints bool
	showLines  bool
	showPolys  bool

	// inspect popup
	inspectPopup string

	// hover state
	hovering    bool
	hoverCellX  int
	hoverCellY  int
	hoverMicX   int
	hoverMicY   int
	hoverHasPos bool
	hoverX      float64
	hoverY      float64

	// attributes table
	showAttrs bool
	tbl       table.Model
}

type Options struct {
	// Decoder parses pasted and loaded SVG; nil uses the default flattening.
	Decoder *svg.Decoder
	// Format is the initial footer output format.
	Format string
}

func New(opts Options) Model {
	m := Model{
		showSidebar: false,
		helpVisible: true,
		zoom:        1.0,
		status:      "geosvg ready",
		showPoints:  true,
		showLines:   true,
		showPolys:   true,
		dec:         opts.Decoder,
		format:      opts.Format,
	}
	if m.dec == nil {
		m.dec = svg.NewDecoder()
	}
	if !config.ValidFormat(m.format) {
		m.format = config.FormatSVG
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Shapes"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste SVG shapes, path data or WKT. Press Enter to render; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// member/property table, columns are set per dataset
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	if w, err := fsnotify.NewWatcher(); err == nil {
		m.watcher = w
	}
	m.refreshDir()
	return m
}

// NewWithPath preloads a file's data at launch.
func NewWithPath(path string, opts Options) Model {
	m := New(opts)
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return waitForChange(m.watcher) }
