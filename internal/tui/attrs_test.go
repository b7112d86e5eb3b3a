package tui

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"geodash/internal/geodata"
)

func TestFmtAttr(t *testing.T) {
	require.Equal(t, "12.5", fmtAttr(12.5))
	require.Equal(t, "100", fmtAttr(100))
	require.Equal(t, "n/a", fmtAttr(math.NaN()))
}

func TestProportionBar(t *testing.T) {
	sum := geodata.Summary{SelectedArea: 15, TotalArea: 35}
	out := proportionBar(sum, 35)

	require.Equal(t, 15, strings.Count(out, "█"))
	require.Equal(t, 20, strings.Count(out, "░"))
	require.Contains(t, out, "selected 15 (43%)")
	require.Contains(t, out, "remaining 20 (57%)")
}

func TestProportionBarNoArea(t *testing.T) {
	out := proportionBar(geodata.Summary{}, 30)
	require.Contains(t, out, "no area attributes")
	require.NotContains(t, out, "█")
}

func TestProportionBarFullSelection(t *testing.T) {
	out := proportionBar(geodata.Summary{SelectedArea: 10, TotalArea: 10}, 20)
	require.Equal(t, 20, strings.Count(out, "█"))
	require.Equal(t, 0, strings.Count(out, "░"))
	require.Contains(t, out, "remaining 0 (0%)")
}

func TestRefreshStatsKeepsRegionOrder(t *testing.T) {
	m := New(Options{})
	m.setData(testDataset())
	m.sel.Toggle("B")
	m.sel.Toggle("A")
	m.refreshStats()

	rows := m.tbl.Rows()
	require.Len(t, rows, 2)
	require.Equal(t, "A", rows[0][1])
	require.Equal(t, "B", rows[1][1])
}

func TestRefreshStatsEmptySelectionClearsRows(t *testing.T) {
	m := New(Options{})
	m.setData(testDataset())
	m.sel.Toggle("A")
	m.refreshStats()
	require.NotEmpty(t, m.tbl.Rows())

	m.sel.Toggle("A")
	m.refreshStats()
	require.Empty(t, m.tbl.Rows())
}

func TestRateColorRampEndpoints(t *testing.T) {
	require.Equal(t, "#A50026", rateColor(0))
	require.Equal(t, "#006837", rateColor(1))
	require.Equal(t, "#A50026", rateColor(-3))
	require.Equal(t, "#006837", rateColor(9))
	require.Equal(t, "#FFFFBF", rateColor(0.5))
}

func TestMarkerGlyphBuckets(t *testing.T) {
	require.Equal(t, '·', markerGlyph(0))
	require.Equal(t, '·', markerGlyph(0.2))
	require.Equal(t, '•', markerGlyph(0.3))
	require.Equal(t, '●', markerGlyph(0.6))
	require.Equal(t, '◉', markerGlyph(0.9))
	require.Equal(t, '◉', markerGlyph(1))
}

func TestTruncRunes(t *testing.T) {
	require.Equal(t, "short", truncRunes("short", 10))
	require.Equal(t, "long…", truncRunes("long name", 5))
	require.Equal(t, "…", truncRunes("xy", 1))
}
