package geodata

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Sources names the two dashboard inputs and the projection regions
// are reprojected into. Empty TargetProj4 means BC Albers.
type Sources struct {
	DistrictCSV string
	BoundaryZip string
	TargetProj4 string
}

// Load runs one full fetch-and-parse pass: download both sources,
// unpack the boundary archive, decode regions and districts, and size
// the bounding box. The pass blocks until done and retries nothing; on
// any failure it returns the error and no partial dataset.
func (f *Fetcher) Load(ctx context.Context, src Sources) (*Dataset, error) {
	start := time.Now()
	tmp, err := os.MkdirTemp("", "geodash-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmp)

	csvPath, err := f.FetchFile(ctx, src.DistrictCSV, tmp, "districts.csv")
	if err != nil {
		return nil, fmt.Errorf("district table: %w", err)
	}
	shpPath, err := f.fetchBoundary(ctx, src.BoundaryZip, tmp)
	if err != nil {
		return nil, err
	}

	proj4 := src.TargetProj4
	if proj4 == "" {
		proj4 = BCAlbersProj4
	}
	regions, err := LoadRegions(shpPath, proj4)
	if err != nil {
		return nil, err
	}
	districts, err := LoadDistricts(csvPath)
	if err != nil {
		return nil, fmt.Errorf("district table: %w", err)
	}

	ds := &Dataset{Regions: regions, Districts: districts, BBox: EmptyBBox()}
	for _, r := range regions {
		xs, ys := FlattenCoords(r.Geom)
		for i := range xs {
			ds.BBox.Extend(xs[i], ys[i])
		}
	}
	for _, d := range districts {
		ds.BBox.Extend(d.X, d.Y)
	}
	f.log.Info("load pass done",
		zap.Int("regions", len(regions)),
		zap.Int("districts", len(districts)),
		zap.Duration("took", time.Since(start)))
	return ds, nil
}

// fetchBoundary resolves the boundary source to a .shp path. A local
// .shp is used directly; anything else is treated as a zip archive to
// download and unpack.
func (f *Fetcher) fetchBoundary(ctx context.Context, src, tmp string) (string, error) {
	if !isRemote(src) && strings.EqualFold(filepath.Ext(src), ".shp") {
		return src, nil
	}
	zipPath, err := f.FetchFile(ctx, src, tmp, "boundary.zip")
	if err != nil {
		return "", fmt.Errorf("boundary archive: %w", err)
	}
	dir := filepath.Join(tmp, "boundary")
	if err := ExtractZip(zipPath, dir); err != nil {
		return "", fmt.Errorf("boundary archive: %w", err)
	}
	return FindShapefile(dir)
}
