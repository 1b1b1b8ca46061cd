package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// cellToPos converts a map cell coordinate back to a shape position using bbox, zoom, and pan.
func (m Model) cellToPos(cx, cy, w, h int) (float64, float64, bool) {
	bb := m.data.BBox
	if !(bb.MaxX > bb.MinX && bb.MaxY > bb.MinY) {
		return 0, 0, false
	}
	if w <= 1 || h <= 1 {
		return 0, 0, false
	}
	zx := float64(cx-m.offsetX) / float64(w-1)
	zy := float64(cy-m.offsetY) / float64(h-1)
	if !m.yDown {
		zy = 1 - zy
	}
	nx := 0.5 + (zx-0.5)/m.zoom
	ny := 0.5 + (zy-0.5)/m.zoom
	return bb.MinX + nx*(bb.MaxX-bb.MinX), bb.MinY + ny*(bb.MaxY-bb.MinY), true
}

func (m Model) renderAsciiMap(w, h int) string {
	lines := make([]string, h)
	for y := range lines {
		lines[y] = strings.Repeat(" ", w)
	}
	// High-resolution braille buffer for crisp lines/edges
	br := newBrailleBuf(w, h)

	// Draw polygons (fill then edges)
	if m.showPolys {
		for _, poly := range m.data.Polygons {
			var rings [][][2]int
			for _, ring := range poly {
				var sm [][2]int
				for _, p := range ring {
					mx, my, ok := m.screenXYMicro(p[0], p[1], w, h)
					if !ok {
						continue
					}
					sm = append(sm, [2]int{mx, my})
				}
				if len(sm) >= 3 {
					rings = append(rings, sm)
				}
			}
			if len(rings) == 0 {
				continue
			}
			br.fillEvenOdd(rings, h*4)
			for _, r := range rings {
				for i := range r {
					a := r[i]
					b := r[(i+1)%len(r)]
					br.drawLineMicro(a[0], a[1], b[0], b[1])
				}
			}
		}
	}

	// Draw line strings (high-res)
	if m.showLines {
		for _, ls := range m.data.Lines {
			var prev *[2]int
			for _, p := range ls {
				mx, my, ok := m.screenXYMicro(p[0], p[1], w, h)
				if !ok {
					continue
				}
				if prev != nil {
					br.drawLineMicro(prev[0], prev[1], mx, my)
				}
				prev = &[2]int{mx, my}
			}
		}
	}

	if m.showPoints {
		for _, p := range m.data.Points {
			mx, my, ok := m.screenXYMicro(p[0], p[1], w, h)
			if !ok {
				continue
			}
			// 2x2 dot so a lone point is visible
			br.setPixel(mx, my)
			br.setPixel(mx+1, my)
			br.setPixel(mx, my+1)
			br.setPixel(mx+1, my+1)
		}
	}

	// Composite braille overlay onto base lines
	braLines := br.toLines()
	for y := 0; y < h && y < len(braLines); y++ {
		base := []rune(lines[y])
		over := []rune(braLines[y])
		for x := 0; x < len(base) && x < len(over); x++ {
			if over[x] != ' ' {
				base[x] = over[x]
			}
		}
		lines[y] = string(base)
	}

	// Hover highlight: draw an orange circle at the hovered vertex cell
	if m.hovering {
		cx := m.hoverMicX / 2
		cy := m.hoverMicY / 4
		if cy >= 0 && cy < len(lines) {
			r := []rune(lines[cy])
			if cx >= 0 && cx < len(r) {
				circle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Render("◯")
				lines[cy] = string(r[:cx]) + circle + string(r[cx+1:])
			}
		}
	}
	return strings.Join(lines, "\n")
}

// fillEvenOdd fills the area inside an odd number of rings, so holes stay
// empty, scanning one micro row at a time.
func (b *brailleBuf) fillEvenOdd(rings [][][2]int, hMic int) {
	for yMic := 0; yMic < hMic; yMic++ {
		var xs []int
		for _, r := range rings {
			for i := range r {
				a := r[i]
				c := r[(i+1)%len(r)]
				if a[1] == c[1] { // horizontal edge: skip
					continue
				}
				y0, y1 := a[1], c[1]
				if (yMic >= y0 && yMic < y1) || (yMic >= y1 && yMic < y0) {
					t := float64(yMic-y0) / float64(y1-y0)
					xs = append(xs, int(float64(a[0])+t*float64(c[0]-a[0])))
				}
			}
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for xMic := max(0, xs[i]); xMic <= xs[i+1]; xMic++ {
				b.setPixel(xMic, yMic)
			}
		}
	}
}

// screenXYMicro maps a position into a 2x4 microgrid per cell for braille rendering.
func (m Model) screenXYMicro(x, y float64, w, h int) (int, int, bool) {
	sx, sy, ok := m.normalize(x, y)
	if !ok {
		return 0, 0, false
	}
	return int(sx*float64(w*2-1)) + m.offsetX*2, int(sy*float64(h*4-1)) + m.offsetY*4, true
}

// screenXY maps a position to current screen cell coordinates considering zoom and pan.
func (m Model) screenXY(x, y float64, w, h int) (int, int, bool) {
	sx, sy, ok := m.normalize(x, y)
	if !ok {
		return 0, 0, false
	}
	return int(sx*float64(w-1)) + m.offsetX, int(sy*float64(h-1)) + m.offsetY, true
}

// normalize maps a position into the unit square with zoom applied around
// the center; the second result grows downward on screen.
func (m Model) normalize(x, y float64) (float64, float64, bool) {
	bb := m.data.BBox
	if !(bb.MaxX > bb.MinX && bb.MaxY > bb.MinY) {
		return 0, 0, false
	}
	nx := (x - bb.MinX) / (bb.MaxX - bb.MinX)
	ny := (y - bb.MinY) / (bb.MaxY - bb.MinY)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	if !m.yDown {
		zy = 1 - zy
	}
	return zx, zy, true
}

// eachVertex calls fn for every vertex of the visible layers.
func (m Model) eachVertex(fn func(p [2]float64)) {
	if m.showPoints {
		for _, p := range m.data.Points {
			fn(p)
		}
	}
	if m.showLines {
		for _, ls := range m.data.Lines {
			for _, p := range ls {
				fn(p)
			}
		}
	}
	if m.showPolys {
		for _, poly := range m.data.Polygons {
			for _, ring := range poly {
				for _, p := range ring {
					fn(p)
				}
			}
		}
	}
}

// inspectNearest finds the vertex closest to the viewport center.
func (m Model) inspectNearest() (x, y float64, ok bool) {
	w, h := m.mapW, m.mapH
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	cx, cy := w/2, h/2
	bestD := 1<<31 - 1
	var best [2]float64
	m.eachVertex(func(p [2]float64) {
		sx, sy, ok := m.screenXY(p[0], p[1], w, h)
		if !ok {
			return
		}
		dx := sx - cx
		dy := sy - cy
		if d := dx*dx + dy*dy; d < bestD {
			bestD = d
			best = p
		}
	})
	if bestD == 1<<31-1 {
		return 0, 0, false
	}
	return best[0], best[1], true
}
