package geodata

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ctessum/geom/encoding/shp"
	"github.com/ctessum/geom/proj"
)

// BCAlbersProj4 is the PROJ.4 definition of the default target
// projection (BC Albers, EPSG:3005). Region geometries arriving in a
// different spatial reference are reprojected into it; district
// coordinates are never touched.
const BCAlbersProj4 = "+proj=aea +lat_1=50 +lat_2=58.5 +lat_0=45 +lon_0=-126 +x_0=1000000 +y_0=0 +datum=NAD83 +units=m +no_defs"

// Boundary attribute fields.
const (
	fieldName = "REGION_NAM"
	fieldRate = "Rate"
	fieldArea = "Area"
)

// LoadRegions decodes the boundary shapefile at path and reprojects
// every geometry from the file's declared spatial reference into
// targetProj4. Each row carries REGION_NAM, Rate and Area attributes;
// blank numeric fields become NaN. Rows whose geometry is not
// polygonal are kept as-is and flatten to empty paths later.
func LoadRegions(path, targetProj4 string) ([]Region, error) {
	dec, err := shp.NewDecoder(path)
	if err != nil {
		return nil, fmt.Errorf("boundary shapefile: %w", err)
	}
	defer dec.Close()

	srcSR, err := dec.SR()
	if err != nil {
		return nil, fmt.Errorf("boundary shapefile: reading spatial reference: %w", err)
	}
	dstSR, err := proj.Parse(targetProj4)
	if err != nil {
		return nil, fmt.Errorf("boundary shapefile: parsing target projection: %w", err)
	}
	trans, err := srcSR.NewTransform(dstSR)
	if err != nil {
		return nil, fmt.Errorf("boundary shapefile: building transform: %w", err)
	}

	var regions []Region
	for {
		g, fields, more := dec.DecodeRowFields(fieldName, fieldRate, fieldArea)
		if !more {
			break
		}
		for _, want := range []string{fieldName, fieldRate, fieldArea} {
			if _, ok := fields[want]; !ok {
				return nil, fmt.Errorf("boundary shapefile: missing attribute column %s", want)
			}
		}
		r := Region{Name: strings.Trim(fields[fieldName], "\x00 ")}
		if r.Rate, err = attrFloat(fields[fieldRate]); err != nil {
			return nil, fmt.Errorf("boundary shapefile: %s of %q: %w", fieldRate, r.Name, err)
		}
		if r.Area, err = attrFloat(fields[fieldArea]); err != nil {
			return nil, fmt.Errorf("boundary shapefile: %s of %q: %w", fieldArea, r.Name, err)
		}
		if g != nil {
			gg, err := g.Transform(trans)
			if err != nil {
				return nil, fmt.Errorf("boundary shapefile: reprojecting %q: %w", r.Name, err)
			}
			r.Geom = gg
		}
		regions = append(regions, r)
	}
	if err := dec.Error(); err != nil {
		return nil, fmt.Errorf("boundary shapefile: %w", err)
	}
	return regions, nil
}

// attrFloat parses a DBF numeric field, trimming the padding bytes DBF
// writers emit. Blank fields become NaN.
func attrFloat(s string) (float64, error) {
	s = strings.Trim(s, "\x00* ")
	if s == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}
