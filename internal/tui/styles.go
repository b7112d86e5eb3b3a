package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	subtleBg  = lipgloss.Color("#0B0F14")
	panelBg   = lipgloss.Color("#0F141A")
	borderCol = lipgloss.Color("#243141")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F87171"))
)

// Map palette: highlighted regions in lightblue, the rest in
// lightgrey, white edges, orange hover marker.
const (
	selectedFill   = "#ADD8E6"
	unselectedFill = "#9CA3AF"
	edgeColor      = "#FFFFFF"
	hoverColor     = "#FFA500"
)

// rateStops is a red-yellow-green ramp; marker colors interpolate
// along it by rate.
var rateStops = [][3]int{
	{165, 0, 38},
	{244, 109, 67},
	{255, 255, 191},
	{166, 217, 106},
	{0, 104, 55},
}

// rateColor maps t in [0, 1] onto the ramp.
func rateColor(t float64) string {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	pos := t * float64(len(rateStops)-1)
	i := int(pos)
	if i >= len(rateStops)-1 {
		i = len(rateStops) - 2
	}
	f := pos - float64(i)
	a, b := rateStops[i], rateStops[i+1]
	lerp := func(x, y int) int { return x + int(f*float64(y-x)) }
	return fmt.Sprintf("#%02X%02X%02X", lerp(a[0], b[0]), lerp(a[1], b[1]), lerp(a[2], b[2]))
}

var markerGlyphs = []rune{'·', '•', '●', '◉'}

// markerGlyph buckets a 0..1 area ratio into marker sizes.
func markerGlyph(ratio float64) rune {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	i := int(ratio * float64(len(markerGlyphs)))
	if i >= len(markerGlyphs) {
		i = len(markerGlyphs) - 1
	}
	return markerGlyphs[i]
}
