// Package charts renders the dashboard summaries as PNG files.
package charts

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"geodash/internal/geodata"
)

var (
	colorSelected  = drawing.ColorFromHex("ADD8E6") // lightblue
	colorRemaining = drawing.ColorFromHex("D3D3D3") // lightgrey
)

// ErrNothingToChart reports that the input carried no drawable values.
var ErrNothingToChart = errors.New("charts: nothing to chart")

// RenderSelectionPie writes the selected-vs-remaining area split as a
// two-slice PNG pie. Zero slices are dropped; a zero total is an error.
func RenderSelectionPie(sum geodata.Summary, w io.Writer) error {
	var values []chart.Value
	if sum.SelectedArea > 0 {
		values = append(values, chart.Value{
			Value: sum.SelectedArea,
			Label: "Selected Area",
			Style: chart.Style{FillColor: colorSelected},
		})
	}
	if sum.Remainder() > 0 {
		values = append(values, chart.Value{
			Value: sum.Remainder(),
			Label: "Remaining Area",
			Style: chart.Style{FillColor: colorRemaining},
		})
	}
	if len(values) == 0 {
		return ErrNothingToChart
	}
	pie := chart.PieChart{
		Title:  "Selected vs Remaining Area",
		Width:  512,
		Height: 512,
		Values: values,
	}
	return pie.Render(chart.PNG, w)
}

// RenderAreaBars writes the area-by-region bar chart. Rows are drawn
// in the order given; AreaByName supplies them name-sorted.
func RenderAreaBars(rows []geodata.NameValue, w io.Writer) error {
	if len(rows) == 0 {
		return ErrNothingToChart
	}
	bars := make([]chart.Value, 0, len(rows))
	max := 0.0
	for _, r := range rows {
		bars = append(bars, chart.Value{
			Value: r.Value,
			Label: r.Name,
			Style: chart.Style{FillColor: colorRemaining},
		})
		if r.Value > max {
			max = r.Value
		}
	}
	if max <= 0 {
		max = 1
	}
	bc := chart.BarChart{
		Title:      "Area by Region",
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 60}},
		Width:      900,
		Height:     500,
		BarWidth:   40,
		XAxis:      chart.Style{TextRotationDegrees: 45},
		YAxis: chart.YAxis{
			Name:  "Area",
			Range: &chart.ContinuousRange{Min: 0, Max: max},
		},
		Bars: bars,
	}
	return bc.Render(chart.PNG, w)
}

// RenderRateLine writes the rate-by-region line chart with markers.
// Rows are drawn in the order given; RateAscending supplies them
// rate-sorted.
func RenderRateLine(rows []geodata.NameValue, w io.Writer) error {
	if len(rows) == 0 {
		return ErrNothingToChart
	}
	xs := make([]float64, 0, len(rows))
	ys := make([]float64, 0, len(rows))
	ticks := make([]chart.Tick, 0, len(rows))
	lo, hi := rows[0].Value, rows[0].Value
	for i, r := range rows {
		x := float64(i + 1)
		xs = append(xs, x)
		ys = append(ys, r.Value)
		ticks = append(ticks, chart.Tick{Value: x, Label: r.Name})
		if r.Value < lo {
			lo = r.Value
		}
		if r.Value > hi {
			hi = r.Value
		}
	}
	// Single points and flat lines leave an axis with no extent. The
	// x padding must include a tick: with ticks present, go-chart takes
	// the x-range from their min and max, not from an explicit Range.
	if len(xs) == 1 {
		xs = append(xs, xs[0]+1)
		ys = append(ys, ys[0])
		ticks = append(ticks, chart.Tick{Value: xs[1]})
	}
	if hi <= lo {
		hi = lo + 1
	}
	ch := chart.Chart{
		Title:      "Rate by Region",
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 70}},
		Width:      900,
		Height:     500,
		XAxis: chart.XAxis{
			Ticks:     ticks,
			TickStyle: chart.Style{TextRotationDegrees: 45},
		},
		YAxis: chart.YAxis{
			Name:  "Rate",
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Rate",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor:     drawing.ColorBlack,
					StrokeWidth:     1.5,
					StrokeDashArray: []float64{5.0, 5.0},
					DotColor:        drawing.ColorBlack,
					DotWidth:        4,
				},
			},
		},
	}
	return ch.Render(chart.PNG, w)
}

// ExportAll writes the three dashboard charts into dir and returns the
// paths written. Charts with nothing to draw are skipped.
func ExportAll(dir string, ds *geodata.Dataset, sel geodata.Selection) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	renders := []struct {
		name   string
		render func(io.Writer) error
	}{
		{"selection_pie.png", func(w io.Writer) error {
			return RenderSelectionPie(geodata.Summarize(ds.Regions, sel), w)
		}},
		{"area_by_region.png", func(w io.Writer) error {
			return RenderAreaBars(geodata.AreaByName(ds.Regions), w)
		}},
		{"rate_by_region.png", func(w io.Writer) error {
			return RenderRateLine(geodata.RateAscending(ds.Regions), w)
		}},
	}
	var paths []string
	for _, r := range renders {
		path := filepath.Join(dir, r.name)
		f, err := os.Create(path)
		if err != nil {
			return paths, err
		}
		err = r.render(f)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if errors.Is(err, ErrNothingToChart) {
			os.Remove(path)
			continue
		}
		if err != nil {
			return paths, fmt.Errorf("rendering %s: %w", r.name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
