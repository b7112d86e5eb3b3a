package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"geodash/internal/geodata"
)

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

type layoutSizes struct {
	sidebarW int
	contentW int
	contentH int
	mapW     int
	mapH     int
	mapX     int
	mapY     int
	statsH   int
}

// layout computes the frame geometry shared by Update's mouse math
// and View's composition.
func (m Model) layout() layoutSizes {
	var l layoutSizes
	if m.showSidebar {
		l.sidebarW = sidebarWidth
	}
	l.contentH = m.height - headerHeight - footerHeight
	if l.contentH < 4 {
		l.contentH = 4
	}
	l.contentW = max(10, m.width)
	l.mapW = l.contentW - l.sidebarW - 1
	if l.mapW < 10 {
		l.mapW = 10
	}
	l.mapH = l.contentH
	if m.mode == viewMap && !m.showSite && m.data != nil && len(m.sel) > 0 {
		l.statsH = min(12, l.contentH/2)
		l.mapH = l.contentH - l.statsH
	}
	l.mapX = l.sidebarW
	if m.showSidebar {
		l.mapX++
	}
	l.mapY = headerHeight
	return l
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lay := m.layout()

	// Header
	header := titleStyle.Render(" geodash ─ regional dashboard ")
	header = lipgloss.NewStyle().Width(lay.contentW).Padding(0).Render(header)

	// Sidebar: region multiselect
	var sidebar string
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, lay.contentH-2)
		sidebar = lipgloss.NewStyle().Width(lay.sidebarW).Render(m.l.View())
	}

	mapCol := m.renderBody(lay)

	var body string
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapCol)
	} else {
		body = mapCol
	}

	footer := m.renderFooter(lay.contentW)
	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(lay.contentW).Height(m.height).Render(ui)
}

func (m Model) renderBody(lay layoutSizes) string {
	w, h := lay.mapW, lay.contentH
	switch {
	case m.showSite:
		return m.renderSitePage(w, h)
	case m.loading:
		box := boxStyle.Render(m.spin.View() + " fetching district table and boundaries")
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, box)
	case m.loadErr != nil:
		return m.renderLoadError(w, h)
	case m.data == nil:
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, dimStyle.Render("no data; press r to load"))
	case m.mode == viewCharts:
		return m.renderChartsView(w, h)
	default:
		mapView := lipgloss.NewStyle().Width(lay.mapW).Height(lay.mapH).Render(m.renderMap(lay.mapW, lay.mapH))
		if lay.statsH > 0 {
			return lipgloss.JoinVertical(lipgloss.Left, mapView, m.renderStatsPane(lay.mapW, lay.statsH))
		}
		return mapView
	}
}

// renderStatsPane shows the selection aggregates: the area proportion
// bar and the filtered attributes table.
func (m Model) renderStatsPane(w, h int) string {
	sum := geodata.Summarize(m.data.Regions, m.sel)
	bar := proportionBar(sum, min(50, w-6))
	m.tbl.SetWidth(w - 4)
	m.tbl.SetHeight(max(3, h-6))
	content := titleStyle.Render("Selection") + "\n" + bar + "\n" + m.tbl.View()
	return boxStyle.Width(w - 2).Render(content)
}

// renderLoadError shows the failed pass once, with a fixed hint. The
// dashboard renders nothing else until a reload succeeds.
func (m Model) renderLoadError(w, h int) string {
	msg := errStyle.Render("error processing sources: " + m.loadErr.Error())
	hint := dimStyle.Render(strings.Join([]string{
		"check that the sources are reachable and correctly formatted:",
		"a district CSV and a zipped shapefile with .shp, .shx, .dbf members",
		"",
		"press r to reload",
	}, "\n"))
	box := boxStyle.Width(min(w-4, 72)).Render(msg + "\n\n" + hint)
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, box)
}

// renderSitePage is the secondary page behind the s key. The flag
// controlling it starts off every session.
func (m Model) renderSitePage(w, h int) string {
	lines := []string{
		titleStyle.Render("Welcome to the info page"),
		"",
		"geodash overlays the district table on the region boundaries",
		"and aggregates the areas of the regions you select.",
		"",
		dimStyle.Render("district table:  " + m.sources.DistrictCSV),
		dimStyle.Render("boundaries:      " + m.sources.BoundaryZip),
		"",
		dimStyle.Render("press s to go back"),
	}
	box := boxStyle.Width(min(w-4, 76)).Render(strings.Join(lines, "\n"))
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) renderFooter(w int) string {
	help := m.renderHelp()
	status := dimStyle.Render(" " + m.status + " ")
	hover := ""
	if m.hovering && m.hoverInfo != "" {
		hover = dimStyle.Render("  " + m.hoverInfo + "  ")
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, help)
	spacerW := max(0, w-lipgloss.Width(left)-lipgloss.Width(hover))
	right := lipgloss.Place(spacerW+lipgloss.Width(hover), 1, lipgloss.Right, lipgloss.Center, hover)
	return lipgloss.NewStyle().Width(w).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓←→ pan",
		"+/- zoom",
		"Tab regions",
		"Space select",
		"c charts",
		"e export",
		"s info",
		"r reload",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
