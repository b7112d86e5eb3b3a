package tui

import (
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"geodash/internal/geodata"
)

// cellToDataXY converts a map cell coordinate back to dataset
// coordinates using bbox, zoom, and pan.
func (m Model) cellToDataXY(cx, cy, w, h int) (float64, float64, bool) {
	if m.data == nil {
		return 0, 0, false
	}
	bb := m.data.BBox
	if !(bb.MaxX > bb.MinX && bb.MaxY > bb.MinY) {
		return 0, 0, false
	}
	if w <= 1 || h <= 1 {
		return 0, 0, false
	}
	zx := float64(cx-m.offsetX) / float64(w-1)
	zy := 1.0 - float64(cy-m.offsetY)/float64(h-1)
	nx := 0.5 + (zx-0.5)/m.zoom
	ny := 0.5 + (zy-0.5)/m.zoom
	x := bb.MinX + nx*(bb.MaxX-bb.MinX)
	y := bb.MinY + ny*(bb.MaxY-bb.MinY)
	return x, y, true
}

// screenXY maps dataset coordinates to screen cells considering zoom
// and pan.
func (m Model) screenXY(x, y float64, w, h int) (int, int, bool) {
	if m.data == nil {
		return 0, 0, false
	}
	bb := m.data.BBox
	if !(bb.MaxX > bb.MinX && bb.MaxY > bb.MinY) {
		return 0, 0, false
	}
	nx := (x - bb.MinX) / (bb.MaxX - bb.MinX)
	ny := (y - bb.MinY) / (bb.MaxY - bb.MinY)
	// Apply zoom around center (0.5, 0.5)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	sx := int(zx*float64(w-1)) + m.offsetX
	sy := int((1.0-zy)*float64(h-1)) + m.offsetY
	return sx, sy, true
}

// screenXYMicro maps dataset coordinates into the 2x4 microgrid used
// for braille rendering.
func (m Model) screenXYMicro(x, y float64, w, h int) (int, int, bool) {
	if m.data == nil {
		return 0, 0, false
	}
	bb := m.data.BBox
	if !(bb.MaxX > bb.MinX && bb.MaxY > bb.MinY) {
		return 0, 0, false
	}
	nx := (x - bb.MinX) / (bb.MaxX - bb.MinX)
	ny := (y - bb.MinY) / (bb.MaxY - bb.MinY)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	wMic := w * 2
	hMic := h * 4
	sx := int(zx*float64(wMic-1)) + m.offsetX*2
	sy := int((1.0-zy)*float64(hMic-1)) + m.offsetY*4
	return sx, sy, true
}

// projectLoops splits flattened coordinates at gap markers and
// projects each closed loop into microgrid space.
func (m Model) projectLoops(xs, ys []float64, w, h int) [][][2]int {
	var loops [][][2]int
	var cur [][2]int
	flush := func() {
		if len(cur) >= 3 {
			loops = append(loops, cur)
		}
		cur = nil
	}
	for i := range xs {
		if geodata.IsGap(xs[i]) {
			flush()
			continue
		}
		mx, my, ok := m.screenXYMicro(xs[i], ys[i], w, h)
		if !ok {
			continue
		}
		cur = append(cur, [2]int{mx, my})
	}
	flush()
	return loops
}

// fillLoopMicro fills one closed loop using the even-odd rule per
// microgrid scanline.
func fillLoopMicro(br *brailleBuf, loop [][2]int, hMic int, color string) {
	if len(loop) < 3 {
		return
	}
	for yMic := 0; yMic < hMic; yMic++ {
		var xs []int
		for i := 0; i < len(loop); i++ {
			a := loop[i]
			b := loop[(i+1)%len(loop)]
			if a[1] == b[1] { // horizontal edge: skip
				continue
			}
			y0, y1 := a[1], b[1]
			x0, x1 := a[0], b[0]
			if (yMic >= y0 && yMic < y1) || (yMic >= y1 && yMic < y0) {
				t := float64(yMic-y0) / float64(y1-y0)
				xs = append(xs, int(float64(x0)+t*float64(x1-x0)))
			}
		}
		if len(xs) < 2 {
			continue
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			xstart, xend := xs[i], xs[i+1]
			for xMic := max(0, xstart); xMic <= xend; xMic++ {
				br.paint(xMic, yMic, color)
			}
		}
	}
}

// cellOver is a glyph painted over the braille canvas.
type cellOver struct {
	glyph rune
	color string
}

// markerOverlay places the district markers (glyph sized by area
// share, colored by rate along the diverging ramp) and the hover ring.
func (m Model) markerOverlay(w, h int) map[[2]int]cellOver {
	over := make(map[[2]int]cellOver)
	if m.data != nil {
		maxArea := geodata.MaxDistrictArea(m.data.Districts)
		lo, hi, haveRates := geodata.RateBounds(m.data.Districts)
		for _, d := range m.data.Districts {
			sx, sy, ok := m.screenXY(d.X, d.Y, w, h)
			if !ok || sx < 0 || sx >= w || sy < 0 || sy >= h {
				continue
			}
			ratio := 0.0
			if maxArea > 0 && !math.IsNaN(d.Area) {
				ratio = d.Area / maxArea
			}
			color := string(baseFg)
			if haveRates && !math.IsNaN(d.Rate) {
				if hi > lo {
					color = rateColor((d.Rate - lo) / (hi - lo))
				} else {
					color = rateColor(0.5)
				}
			}
			over[[2]int{sx, sy}] = cellOver{glyph: markerGlyph(ratio), color: color}
		}
	}
	if m.hovering {
		over[[2]int{m.hoverCellX, m.hoverCellY}] = cellOver{glyph: '◯', color: hoverColor}
	}
	return over
}

// renderMap draws the region fills, region edges, and district
// markers for the current viewport.
func (m Model) renderMap(w, h int) string {
	br := newBrailleBuf(w, h)
	if m.data != nil {
		type regionPaths struct {
			loops [][][2]int
			fill  string
		}
		paths := make([]regionPaths, 0, len(m.data.Regions))
		for _, rg := range m.data.Regions {
			xs, ys := geodata.FlattenCoords(rg.Geom)
			fill := unselectedFill
			if m.sel.Has(rg.Name) {
				fill = selectedFill
			}
			paths = append(paths, regionPaths{loops: m.projectLoops(xs, ys, w, h), fill: fill})
		}
		// fill everything first so edges stay visible on shared borders
		for _, p := range paths {
			for _, loop := range p.loops {
				fillLoopMicro(br, loop, h*4, p.fill)
			}
		}
		for _, p := range paths {
			for _, loop := range p.loops {
				for i := 0; i < len(loop); i++ {
					a := loop[i]
					b := loop[(i+1)%len(loop)]
					br.drawLineMicroColor(a[0], a[1], b[0], b[1], edgeColor)
				}
			}
		}
	}
	return composeCanvas(br, m.markerOverlay(w, h), w, h)
}

// composeCanvas turns the braille buffer plus overlays into styled
// terminal lines, grouping runs of cells that share a color.
func composeCanvas(br *brailleBuf, over map[[2]int]cellOver, w, h int) string {
	var sb strings.Builder
	for y := 0; y < h; y++ {
		run := make([]rune, 0, w)
		runColor := ""
		flush := func() {
			if len(run) == 0 {
				return
			}
			s := string(run)
			if runColor != "" {
				s = lipgloss.NewStyle().Foreground(lipgloss.Color(runColor)).Render(s)
			}
			sb.WriteString(s)
			run = run[:0]
		}
		for x := 0; x < w; x++ {
			glyph := br.cellRune(x, y)
			color := br.cellColor(x, y)
			if o, ok := over[[2]int{x, y}]; ok {
				glyph, color = o.glyph, o.color
			}
			if color != runColor {
				flush()
				runColor = color
			}
			run = append(run, glyph)
		}
		flush()
		if y < h-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
