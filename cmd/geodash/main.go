package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"geodash/internal/geodata"
	"geodash/internal/logx"
	"geodash/internal/tui"
)

const (
	defaultCSV = "https://raw.githubusercontent.com/Baipzix/BCOG_regional/main/data/Mock_OG_district.csv"
	defaultZip = "https://raw.githubusercontent.com/Baipzix/BCOG_regional/main/data/BC_ResourceRegion.zip"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	_ = godotenv.Load() // Load .env file if present

	var (
		csvSrc  = flag.String("csv", envOr("GEODASH_CSV", defaultCSV), "district table source (URL or local path)")
		zipSrc  = flag.String("boundaries", envOr("GEODASH_BOUNDARIES", defaultZip), "region boundaries source (zipped shapefile URL or path, or a local .shp)")
		proj    = flag.String("proj", envOr("GEODASH_PROJ", ""), "target projection as a proj4 string [default: BC Albers]")
		export  = flag.String("export", envOr("GEODASH_EXPORT", "charts"), "directory for exported chart PNGs")
		logPath = flag.String("log", envOr("GEODASH_LOG", ""), "log file path [default: logging disabled]")
		timeout = flag.Duration("timeout", 60*time.Second, "HTTP timeout for source downloads")
	)
	flag.Parse()

	logger, err := logx.New(*logPath)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	m := tui.New(tui.Options{
		Sources: geodata.Sources{
			DistrictCSV: *csvSrc,
			BoundaryZip: *zipSrc,
			TargetProj4: *proj,
		},
		ExportDir: *export,
		Client:    &http.Client{Timeout: *timeout},
		Logger:    logger,
	})
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Fatal(err)
	}
}
