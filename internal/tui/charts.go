package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"geodash/internal/geodata"
)

// renderBarChart draws one horizontal bar per region, scaled to the
// largest value. Rows render in the order given.
func renderBarChart(rows []geodata.NameValue, w, h int) string {
	if len(rows) == 0 {
		return dimStyle.Render("no area attributes")
	}
	nameW := 0
	for _, r := range rows {
		if n := len([]rune(r.Name)); n > nameW {
			nameW = n
		}
	}
	if nameW > 18 {
		nameW = 18
	}
	max := 0.0
	for _, r := range rows {
		if r.Value > max {
			max = r.Value
		}
	}
	if max <= 0 {
		max = 1
	}
	barW := w - nameW - 10
	if barW < 4 {
		barW = 4
	}
	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(unselectedFill))
	lines := make([]string, 0, len(rows)+1)
	for i, r := range rows {
		if i >= h {
			lines = append(lines, dimStyle.Render(fmt.Sprintf("… %d more", len(rows)-h)))
			break
		}
		name := []rune(r.Name)
		if len(name) > nameW {
			name = append(name[:nameW-1], '…')
		}
		n := int(r.Value / max * float64(barW))
		if n < 1 && r.Value > 0 {
			n = 1
		}
		lines = append(lines, fmt.Sprintf("%s %s %s",
			padRight(string(name), nameW-len(name)),
			barStyle.Render(strings.Repeat("█", n)),
			dimStyle.Render(fmtAttr(r.Value))))
	}
	return strings.Join(lines, "\n")
}

// renderLineChart plots values left to right as a braille line with
// markers, labeling the two endpoints. Rows arrive rate-sorted.
func renderLineChart(rows []geodata.NameValue, w, h int) string {
	if len(rows) == 0 {
		return dimStyle.Render("no rate attributes")
	}
	if w < 8 {
		w = 8
	}
	plotH := h - 1
	if plotH < 2 {
		plotH = 2
	}
	br := newBrailleBuf(w, plotH)
	lo := rows[0].Value
	hi := rows[len(rows)-1].Value
	if hi <= lo {
		hi = lo + 1
	}
	wMic, hMic := w*2, plotH*4
	pt := func(i int) (int, int) {
		x := 0
		if len(rows) > 1 {
			x = i * (wMic - 1) / (len(rows) - 1)
		}
		t := (rows[i].Value - lo) / (hi - lo)
		return x, int((1 - t) * float64(hMic-1))
	}
	px, py := pt(0)
	for i := 1; i < len(rows); i++ {
		x, y := pt(i)
		br.drawLineMicro(px, py, x, y)
		px, py = x, y
	}
	// 2x2 blobs as markers
	for i := range rows {
		x, y := pt(i)
		br.setPixel(x, y)
		br.setPixel(x+1, y)
		br.setPixel(x, y+1)
		br.setPixel(x+1, y+1)
	}
	lines := br.toLines()

	left := fmt.Sprintf("%s %s", rows[0].Name, fmtAttr(rows[0].Value))
	right := fmt.Sprintf("%s %s", rows[len(rows)-1].Name, fmtAttr(rows[len(rows)-1].Value))
	gap := w - len([]rune(left)) - len([]rune(right))
	var label string
	if gap >= 1 {
		label = dimStyle.Render(left + strings.Repeat(" ", gap) + right)
	} else {
		label = dimStyle.Render(truncRunes(left, w))
	}
	return strings.Join(append(lines, label), "\n")
}

// renderChartsView lays the two summary charts out side by side, or
// stacked when the terminal is narrow.
func (m Model) renderChartsView(w, h int) string {
	if m.data == nil {
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, dimStyle.Render("no data"))
	}
	areas := geodata.AreaByName(m.data.Regions)
	rates := geodata.RateAscending(m.data.Regions)

	if w < 60 {
		innerH := max(3, (h-8)/2)
		top := boxStyle.Width(w - 2).Render(titleStyle.Render("Area by Region") + "\n" + renderBarChart(areas, w-6, innerH))
		bottom := boxStyle.Width(w - 2).Render(titleStyle.Render("Rate by Region") + "\n" + renderLineChart(rates, w-6, innerH))
		return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
	}
	half := (w - 1) / 2
	innerH := max(4, h-4)
	left := boxStyle.Width(half).Render(titleStyle.Render("Area by Region") + "\n" + renderBarChart(areas, half-4, innerH))
	right := boxStyle.Width(half).Render(titleStyle.Render("Rate by Region") + "\n" + renderLineChart(rates, half-4, innerH))
	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}
