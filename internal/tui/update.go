package tui

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"
	spinner "github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"geodash/internal/geodata"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.height-1-2) // provisional; refined in View
		}

	case tea.KeyMsg:
		// If the picker is filtering, send keys to it and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.l.SetSize(sidebarWidth-2, m.layout().contentH-2)
			}
		case " ", "enter":
			if m.showSidebar && m.data != nil {
				if it, ok := m.l.SelectedItem().(regionItem); ok {
					m.sel.Toggle(it.name)
					m.refreshStats()
					m.status = fmt.Sprintf("selected: %d of %d regions", len(m.sel), len(m.l.Items()))
				}
			}
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
		case "up":
			if !m.showSidebar {
				m.offsetY -= 1
			}
		case "down":
			if !m.showSidebar {
				m.offsetY += 1
			}
		case "left":
			if !m.showSidebar {
				m.offsetX -= 2
			}
		case "right":
			if !m.showSidebar {
				m.offsetX += 2
			}
		case "r":
			// one pass at a time
			if !m.loading {
				m.loading = true
				m.loadErr = nil
				m.status = "reloading"
				return m, tea.Batch(m.spin.Tick, m.loadCmd())
			}
		case "c":
			if m.mode == viewCharts {
				m.mode = viewMap
				m.status = "map view"
			} else {
				m.mode = viewCharts
				m.status = "chart view"
			}
		case "s":
			m.showSite = !m.showSite
			if m.showSite {
				m.status = "info page"
			} else {
				m.status = "dashboard"
			}
		case "e":
			if m.data != nil && !m.loading {
				m.status = "exporting charts"
				return m, m.exportCmd()
			}
		case "h":
			m.helpVisible = !m.helpVisible
		}

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}

	case dataMsg:
		m.loading = false
		m.setData(msg.data)
		m.status = fmt.Sprintf("loaded: %d regions, %d districts", len(msg.data.Regions), len(msg.data.Districts))

	case errMsg:
		m.loading = false
		m.loadErr = msg.err
		m.data = nil
		m.status = "load failed"
		m.log.Error("load pass failed", zap.Error(msg.err))

	case exportedMsg:
		if msg.err != nil {
			m.status = "export error: " + msg.err.Error()
			m.log.Error("chart export failed", zap.Error(msg.err))
		} else {
			m.status = fmt.Sprintf("exported %d charts to %s", len(msg.paths), m.exportDir)
			m.log.Info("charts exported", zap.Strings("paths", msg.paths))
		}

	case tea.MouseMsg:
		m.updateHover(msg.X, msg.Y)
	}

	// Pass messages to the picker when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// updateHover resolves what sits under the mouse: the nearest district
// marker first, then the region containing the cursor position.
func (m *Model) updateHover(x, y int) {
	m.hovering = false
	m.hoverInfo = ""
	if m.data == nil || m.mode != viewMap || m.showSite {
		return
	}
	lay := m.layout()
	cx, cy := x-lay.mapX, y-lay.mapY
	if cx < 0 || cx >= lay.mapW || cy < 0 || cy >= lay.mapH {
		return
	}
	m.hovering = true
	m.hoverCellX, m.hoverCellY = cx, cy

	// districts take precedence when the cursor is near a marker
	const nearCells = 2
	bestD := nearCells*nearCells + 1
	best := -1
	for i, d := range m.data.Districts {
		sx, sy, ok := m.screenXY(d.X, d.Y, lay.mapW, lay.mapH)
		if !ok {
			continue
		}
		dx, dy := sx-cx, sy-cy
		if dist := dx*dx + dy*dy; dist < bestD {
			bestD = dist
			best = i
		}
	}
	if best >= 0 {
		d := m.data.Districts[best]
		sx, sy, _ := m.screenXY(d.X, d.Y, lay.mapW, lay.mapH)
		m.hoverCellX, m.hoverCellY = sx, sy
		m.hoverInfo = fmt.Sprintf("District: %s  Rate: %s  Area: %s", d.Name, fmtAttr(d.Rate), fmtAttr(d.Area))
		return
	}

	px, py, ok := m.cellToDataXY(cx, cy, lay.mapW, lay.mapH)
	if !ok {
		return
	}
	for _, rg := range m.data.Regions {
		xs, ys := geodata.FlattenCoords(rg.Geom)
		if geodata.ContainsXY(xs, ys, px, py) {
			m.hoverInfo = fmt.Sprintf("Region: %s  Rate: %s  Area: %s", rg.Name, fmtAttr(rg.Rate), fmtAttr(rg.Area))
			return
		}
	}
	m.hoverInfo = fmt.Sprintf("x=%.0f y=%.0f", px, py)
}
