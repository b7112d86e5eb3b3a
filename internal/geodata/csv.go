package geodata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// District table columns. Header matching is case-insensitive and
// order-independent.
const (
	colDistrict = "district"
	colRate     = "rate"
	colArea     = "area"
	colX        = "x"
	colY        = "y"
)

// ParseDistricts decodes the district table: one point record per row
// with DISTRICT, Rate, Area, x and y columns. Rows whose coordinates do
// not parse are skipped; blank or unparsable Rate/Area cells become NaN.
func ParseDistricts(r io.Reader) ([]District, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("district csv: %w", err)
	}
	if len(recs) == 0 {
		return nil, errors.New("district csv: empty file")
	}
	idx := make(map[string]int, len(recs[0]))
	for i, h := range recs[0] {
		name := strings.ToLower(strings.TrimSpace(h))
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}
	for _, want := range []string{colDistrict, colRate, colArea, colX, colY} {
		if _, ok := idx[want]; !ok {
			return nil, fmt.Errorf("district csv: missing %q column", want)
		}
	}
	var out []District
	for _, row := range recs[1:] {
		get := func(col string) string {
			i := idx[col]
			if i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}
		x, errX := strconv.ParseFloat(get(colX), 64)
		y, errY := strconv.ParseFloat(get(colY), 64)
		if errX != nil || errY != nil {
			continue
		}
		out = append(out, District{
			Name: get(colDistrict),
			X:    x,
			Y:    y,
			Rate: floatOrNaN(get(colRate)),
			Area: floatOrNaN(get(colArea)),
		})
	}
	return out, nil
}

// floatOrNaN parses a numeric cell, mapping blanks and junk to NaN.
func floatOrNaN(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// LoadDistricts reads the district table from a file.
func LoadDistricts(path string) ([]District, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseDistricts(f)
}
