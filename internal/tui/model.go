package tui

import (
	"context"
	"net/http"

	list "github.com/charmbracelet/bubbles/list"
	spinner "github.com/charmbracelet/bubbles/spinner"
	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"geodash/internal/charts"
	"geodash/internal/geodata"
)

type viewMode int

const (
	viewMap viewMode = iota
	viewCharts
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// Data pass
	fetcher   *geodata.Fetcher
	sources   geodata.Sources
	exportDir string
	log       *zap.Logger

	loading bool
	spin    spinner.Model
	loadErr error

	data *geodata.Dataset
	sel  geodata.Selection

	// Region multiselect
	l list.Model

	// Selection attributes table
	tbl table.Model

	mode     viewMode
	showSite bool // secondary page flag; lives only for this session

	// hover state
	hovering   bool
	hoverCellX int
	hoverCellY int
	hoverInfo  string
}

// Options configures the dashboard.
type Options struct {
	Sources   geodata.Sources
	ExportDir string
	Client    *http.Client
	Logger    *zap.Logger
}

func New(opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	m := Model{
		helpVisible: true,
		zoom:        1.0,
		status:      "geodash starting",
		fetcher:     geodata.NewFetcher(opts.Client, log),
		sources:     opts.Sources,
		exportDir:   opts.ExportDir,
		log:         log,
		sel:         geodata.Selection{},
	}
	// region list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Regions"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// spinner for the load pass
	m.spin = spinner.New()
	m.spin.Spinner = spinner.Dot
	m.spin.Style = titleStyle
	// selection attributes table
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.loadCmd())
}

type dataMsg struct{ data *geodata.Dataset }

type errMsg struct{ err error }

type exportedMsg struct {
	paths []string
	err   error
}

// loadCmd runs one blocking fetch-and-parse pass. There is no retry;
// a failure surfaces once and waits for the user to reload.
func (m Model) loadCmd() tea.Cmd {
	f, src := m.fetcher, m.sources
	return func() tea.Msg {
		ds, err := f.Load(context.Background(), src)
		if err != nil {
			return errMsg{err: err}
		}
		return dataMsg{data: ds}
	}
}

// exportCmd renders the summary charts to PNG files from a snapshot
// of the current selection.
func (m Model) exportCmd() tea.Cmd {
	ds, dir := m.data, m.exportDir
	sel := make(geodata.Selection, len(m.sel))
	for name := range m.sel {
		sel[name] = true
	}
	return func() tea.Msg {
		paths, err := charts.ExportAll(dir, ds, sel)
		return exportedMsg{paths: paths, err: err}
	}
}

// regionItem is one multiselect entry. It holds the shared selection
// map, so its check mark tracks toggles without item rebuilds.
type regionItem struct {
	name string
	sel  geodata.Selection
}

func (it regionItem) Title() string {
	if it.sel.Has(it.name) {
		return "✓ " + it.name
	}
	return "  " + it.name
}
func (it regionItem) Description() string { return "" }
func (it regionItem) FilterValue() string { return it.name }

// setData installs a freshly loaded dataset and rebuilds everything
// derived from it. Selected names missing from the new data are
// dropped, and the viewport resets.
func (m *Model) setData(ds *geodata.Dataset) {
	m.data = ds
	m.loadErr = nil

	names := geodata.RegionNames(ds.Regions)
	keep := geodata.Selection{}
	for _, n := range names {
		if m.sel.Has(n) {
			keep[n] = true
		}
	}
	m.sel = keep

	items := make([]list.Item, 0, len(names))
	for _, n := range names {
		items = append(items, regionItem{name: n, sel: m.sel})
	}
	m.l.SetItems(items)

	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
	m.refreshStats()
}
