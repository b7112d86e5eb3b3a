package charts_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"geodash/internal/charts"
	"geodash/internal/geodata"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func requirePNG(t *testing.T, data []byte) {
	t.Helper()
	require.Greater(t, len(data), len(pngMagic))
	require.Equal(t, pngMagic, data[:len(pngMagic)])
}

func TestRenderSelectionPie(t *testing.T) {
	var buf bytes.Buffer
	err := charts.RenderSelectionPie(geodata.Summary{SelectedArea: 15, TotalArea: 35}, &buf)
	require.NoError(t, err)
	requirePNG(t, buf.Bytes())
}

func TestRenderSelectionPieNothingSelected(t *testing.T) {
	var buf bytes.Buffer
	err := charts.RenderSelectionPie(geodata.Summary{SelectedArea: 0, TotalArea: 35}, &buf)
	require.NoError(t, err)
	requirePNG(t, buf.Bytes())
}

func TestRenderSelectionPieEmpty(t *testing.T) {
	err := charts.RenderSelectionPie(geodata.Summary{}, &bytes.Buffer{})
	require.ErrorIs(t, err, charts.ErrNothingToChart)
}

func TestRenderAreaBars(t *testing.T) {
	rows := []geodata.NameValue{
		{Name: "Cariboo", Value: 10},
		{Name: "Kootenay", Value: 10},
		{Name: "Skeena", Value: 10},
	}
	var buf bytes.Buffer
	require.NoError(t, charts.RenderAreaBars(rows, &buf))
	requirePNG(t, buf.Bytes())
}

func TestRenderAreaBarsEmpty(t *testing.T) {
	require.ErrorIs(t, charts.RenderAreaBars(nil, &bytes.Buffer{}), charts.ErrNothingToChart)
}

func TestRenderRateLine(t *testing.T) {
	rows := []geodata.NameValue{
		{Name: "B", Value: 0.5},
		{Name: "A", Value: 1.5},
		{Name: "C", Value: 2.5},
	}
	var buf bytes.Buffer
	require.NoError(t, charts.RenderRateLine(rows, &buf))
	requirePNG(t, buf.Bytes())
}

func TestRenderRateLineSingleRow(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, charts.RenderRateLine([]geodata.NameValue{{Name: "A", Value: 2}}, &buf))
	requirePNG(t, buf.Bytes())
}

func TestExportAll(t *testing.T) {
	ds := &geodata.Dataset{
		Regions: []geodata.Region{
			{Name: "A", Rate: 1.5, Area: 10},
			{Name: "B", Rate: 0.5, Area: 20},
			{Name: "C", Rate: 2.5, Area: 5},
		},
	}
	dir := filepath.Join(t.TempDir(), "export")

	paths, err := charts.ExportAll(dir, ds, geodata.Selection{"A": true})
	require.NoError(t, err)
	require.Len(t, paths, 3)
	for _, p := range paths {
		data, err := os.ReadFile(p)
		require.NoError(t, err)
		requirePNG(t, data)
	}
}

func TestExportAllSkipsEmptyPie(t *testing.T) {
	ds := &geodata.Dataset{
		Regions: []geodata.Region{{Name: "A", Rate: 1, Area: 0}},
	}
	dir := t.TempDir()

	paths, err := charts.ExportAll(dir, ds, geodata.Selection{})
	require.NoError(t, err)
	require.Len(t, paths, 2)
	for _, p := range paths {
		require.NotContains(t, p, "selection_pie")
	}
}
