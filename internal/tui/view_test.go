package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"geodash/internal/geodata"
)

func TestLayoutWithoutSidebar(t *testing.T) {
	m := testMapModel()
	lay := m.layout()

	require.Equal(t, 0, lay.sidebarW)
	require.Equal(t, 9, lay.contentH)
	require.Equal(t, 21, lay.mapW)
	require.Equal(t, 9, lay.mapH)
	require.Equal(t, 0, lay.mapX)
	require.Equal(t, headerHeight, lay.mapY)
	require.Zero(t, lay.statsH)
}

func TestLayoutWithSidebar(t *testing.T) {
	m := testMapModel()
	m.width = 80
	m.showSidebar = true
	lay := m.layout()

	require.Equal(t, sidebarWidth, lay.sidebarW)
	require.Equal(t, 51, lay.mapW)
	require.Equal(t, sidebarWidth+1, lay.mapX)
}

func TestLayoutReservesStatsPane(t *testing.T) {
	m := testMapModel()
	m.sel.Toggle("A")
	lay := m.layout()

	require.Equal(t, 4, lay.statsH)
	require.Equal(t, 5, lay.mapH)

	// the charts view uses the full height
	m.mode = viewCharts
	lay = m.layout()
	require.Zero(t, lay.statsH)
	require.Equal(t, lay.contentH, lay.mapH)
}

func TestViewZeroSize(t *testing.T) {
	m := New(Options{})
	require.Equal(t, "", m.View())
}

func TestViewLoading(t *testing.T) {
	m := testMapModel()
	m.width = 90
	m.data = nil
	m.loading = true
	require.Contains(t, m.View(), "fetching district table")
}

func TestViewLoadErrorShowsHintAndNoMap(t *testing.T) {
	m := testMapModel()
	m.width = 90
	m.data = nil
	m.loadErr = errBoom

	out := m.View()
	require.Contains(t, out, "error processing sources: boom")
	require.Contains(t, out, "zipped shapefile with .shp, .shx, .dbf members")
	require.Contains(t, out, "press r to reload")

	for _, r := range out {
		require.False(t, r >= 0x2800 && r <= 0x28FF, "no partial map next to the error")
	}
}

func TestViewInfoPage(t *testing.T) {
	m := testMapModel()
	m.width = 90
	m.showSite = true

	out := m.View()
	require.Contains(t, out, "Welcome to the info page")
	require.Contains(t, out, "press s to go back")
}

func TestViewChartsMode(t *testing.T) {
	m := testMapModel()
	m.width = 100
	m.mode = viewCharts

	out := m.View()
	require.Contains(t, out, "Area by Region")
	require.Contains(t, out, "Rate by Region")
}

func TestViewMapWithSelectionShowsStats(t *testing.T) {
	m := testMapModel()
	m.width = 90
	m.sel.Toggle("A")
	m.refreshStats()

	out := m.View()
	require.Contains(t, out, "Selection")
	require.Contains(t, out, "Region")
	require.Contains(t, out, "█")
}

func TestViewFooterHelp(t *testing.T) {
	m := testMapModel()
	m.width = 130
	out := m.View()
	require.Contains(t, out, "Space select")
	require.Contains(t, out, "r reload")

	m.helpVisible = false
	require.NotContains(t, m.View(), "Space select")
}

func TestRenderBarChart(t *testing.T) {
	rows := []geodata.NameValue{{Name: "A", Value: 32}, {Name: "B", Value: 8}}
	out := renderBarChart(rows, 40, 5)

	require.Contains(t, out, "A")
	require.Contains(t, out, "B")
	require.Contains(t, out, "32")
	require.Contains(t, out, "8")
	require.True(t, strings.ContainsRune(out, '█'))
}

func TestRenderBarChartTruncatesToHeight(t *testing.T) {
	rows := []geodata.NameValue{{Name: "A", Value: 1}, {Name: "B", Value: 2}, {Name: "C", Value: 3}}
	out := renderBarChart(rows, 40, 1)
	require.Contains(t, out, "… 2 more")
	require.NotContains(t, out, "C")
}

func TestRenderBarChartEmpty(t *testing.T) {
	require.Contains(t, renderBarChart(nil, 40, 5), "no area attributes")
}

func TestRenderLineChartLabelsEndpoints(t *testing.T) {
	rows := []geodata.NameValue{{Name: "A", Value: 1}, {Name: "B", Value: 3}}
	out := renderLineChart(rows, 24, 6)

	require.Contains(t, out, "A 1")
	require.Contains(t, out, "B 3")

	var braille bool
	for _, r := range out {
		if r >= 0x2800 && r <= 0x28FF {
			braille = true
			break
		}
	}
	require.True(t, braille)
}

func TestRenderLineChartSingleRow(t *testing.T) {
	rows := []geodata.NameValue{{Name: "Solo", Value: 2}}
	out := renderLineChart(rows, 24, 6)
	require.Contains(t, out, "Solo 2")
}
