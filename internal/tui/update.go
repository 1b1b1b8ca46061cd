package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"geosvg/internal/batch"
	"geosvg/internal/config"
)

const sidebarWidth = 28

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.height-1-2) // provisional; will be refined in View
		}
	case fileChangedMsg:
		if m.selPath != "" && filepath.Clean(msg.path) == m.selPath {
			if m.loadPath(m.selPath) {
				m.status = "reloaded: " + filepath.Base(m.selPath) + "  " + m.counts()
			}
		}
		return m, waitForChange(m.watcher)
	case watchErrMsg:
		m.status = "watch error: " + msg.err.Error()
		return m, waitForChange(m.watcher)
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			case "enter":
				m.renderPaste()
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			m.closeWatcher()
			return m, tea.Quit
		case "1":
			m.showPoints = !m.showPoints
			m.status = fmt.Sprintf("points: %v", m.showPoints)
		case "2":
			m.showLines = !m.showLines
			m.status = fmt.Sprintf("lines: %v", m.showLines)
		case "3":
			m.showPolys = !m.showPolys
			m.status = fmt.Sprintf("polys: %v", m.showPolys)
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(sidebarWidth-2, m.height-1-2)
			}
		case "p":
			m.pasteMode = !m.pasteMode
			if m.pasteMode {
				m.ta.SetValue("")
				m.status = "paste mode"
				m.ta.Focus()
			} else {
				m.status = "view mode"
				m.ta.Blur()
			}
		case "h":
			m.helpVisible = !m.helpVisible
		case "w":
			m.cycleFormat()
		case "a":
			m.showAttrs = !m.showAttrs
			if m.showAttrs {
				m.refreshAttrsFromCurrent()
			}
		case "i":
			m.inspect()
		case "l":
			// toggle all layers
			all := m.showPoints && m.showLines && m.showPolys
			m.showPoints = !all
			m.showLines = !all
			m.showPolys = !all
			m.status = fmt.Sprintf("layers: pts=%v ls=%v poly=%v", m.showPoints, m.showLines, m.showPolys)
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		case "up":
			m.offsetY -= 1
		case "down":
			m.offsetY += 1
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}
	case tea.MouseMsg:
		m.hover(msg.X, msg.Y)
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// renderPaste parses the paste box as SVG markup, path data, GeoJSON or WKT.
func (m *Model) renderPaste() {
	text := strings.TrimSpace(m.ta.Value())
	if text == "" {
		m.status = "paste: empty"
		return
	}
	from := batch.Detect(text)
	g, err := batch.Parse(text, from, m.dec)
	if err != nil {
		m.status = from + " error: " + err.Error()
		return
	}
	m.selPath = ""
	m.features = nil
	m.setGeometry(g, from == config.FormatSVG || from == config.FormatD)
	m.status = fmt.Sprintf("rendered %s  %s", g.Kind(), m.counts())
	m.pasteMode = false
	m.ta.Blur()
	m.syncAttrs()
}

// cycleFormat switches the footer output to the next format.
func (m *Model) cycleFormat() {
	next := 0
	for i, f := range config.Formats {
		if f == m.format {
			next = (i + 1) % len(config.Formats)
		}
	}
	m.format = config.Formats[next]
	m.status = "output: " + m.format
}

func (m *Model) inspect() {
	x, y, ok := m.inspectNearest()
	if !ok {
		m.inspectPopup = "no feature nearby"
		m.status = m.inspectPopup
		return
	}
	name := filepath.Base(m.selPath)
	if m.selPath == "" {
		name = "<pasted>"
	}
	bb := m.data.BBox
	meta := []string{
		fmt.Sprintf("name: %s", name),
		fmt.Sprintf("path: %s", m.selPath),
		fmt.Sprintf("kind: %s", m.g.Kind()),
		fmt.Sprintf("bbox: [%g, %g, %g, %g]", bb.MinX, bb.MinY, bb.MaxX, bb.MaxY),
		m.counts(),
		fmt.Sprintf("nearest: x=%g y=%g", x, y),
	}
	m.inspectPopup = strings.Join(meta, "\n")
	m.status = "inspect popup"
}

// hover tracks the mouse over the map area and snaps to the nearest vertex.
func (m *Model) hover(cx, cy int) {
	// compute map origin and size (must match View layout)
	lay := m.layout()
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, lay.contentH-2)
	}
	if cx < lay.mapX || cx >= lay.mapX+lay.mapW || cy < lay.mapY || cy >= lay.mapY+lay.mapH {
		m.hovering = false
		return
	}
	m.hovering = true
	m.hoverCellX = cx - lay.mapX
	m.hoverCellY = cy - lay.mapY
	m.hoverX, m.hoverY, m.hoverHasPos = m.cellToPos(m.hoverCellX, m.hoverCellY, lay.mapW, lay.mapH)

	hxMic := m.hoverCellX * 2
	hyMic := m.hoverCellY * 4
	best := 1<<31 - 1
	bx, by := hxMic, hyMic
	m.eachVertex(func(p [2]float64) {
		mx, my, ok := m.screenXYMicro(p[0], p[1], lay.mapW, lay.mapH)
		if !ok {
			return
		}
		dx := mx - hxMic
		dy := my - hyMic
		if d := dx*dx + dy*dy; d < best {
			best = d
			bx, by = mx, my
		}
	})
	m.hoverMicX, m.hoverMicY = bx, by
}
