package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	table "github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"geodash/internal/geodata"
)

// fmtAttr renders an attribute value, with a placeholder for blanks.
func fmtAttr(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// refreshStats rebuilds the selection attributes table. Rows keep the
// dataset's original region order.
func (m *Model) refreshStats() {
	if m.data == nil || len(m.sel) == 0 {
		m.tbl.SetRows(nil)
		return
	}
	view := geodata.FilterRegions(m.data.Regions, m.sel)
	tcols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Region", Width: 24},
		{Title: "Rate", Width: 10},
		{Title: "Area", Width: 12},
	}
	trows := make([]table.Row, 0, len(view))
	for i, r := range view {
		trows = append(trows, table.Row{
			fmt.Sprintf("%d", i+1),
			r.Name,
			fmtAttr(r.Rate),
			fmtAttr(r.Area),
		})
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tcols)
	m.tbl.SetRows(trows)
}

// proportionBar renders the selected vs remaining area split as a
// two-segment bar with percentages.
func proportionBar(sum geodata.Summary, width int) string {
	if width < 10 {
		width = 10
	}
	if sum.TotalArea <= 0 {
		return dimStyle.Render("no area attributes to aggregate")
	}
	selFrac := sum.SelectedArea / sum.TotalArea
	selW := int(selFrac*float64(width) + 0.5)
	if selW > width {
		selW = width
	}
	bar := lipgloss.NewStyle().Foreground(lipgloss.Color(selectedFill)).Render(strings.Repeat("█", selW)) +
		lipgloss.NewStyle().Foreground(lipgloss.Color(unselectedFill)).Render(strings.Repeat("░", width-selW))
	legend := dimStyle.Render(fmt.Sprintf("selected %s (%.0f%%)  remaining %s (%.0f%%)",
		fmtAttr(sum.SelectedArea), selFrac*100, fmtAttr(sum.Remainder()), (1-selFrac)*100))
	return bar + "\n" + legend
}
