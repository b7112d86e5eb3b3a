package geodata

import (
	"math"
	"sort"
)

// NameValue is one categorical chart row.
type NameValue struct {
	Name  string
	Value float64
}

// Summary holds the area totals of one selection pass.
type Summary struct {
	SelectedArea float64
	TotalArea    float64
}

// Remainder returns the unselected share of the total area.
func (s Summary) Remainder() float64 { return s.TotalArea - s.SelectedArea }

// Summarize recomputes the area totals from scratch for the given
// selection. Blank (NaN) areas contribute nothing, and selected names
// that match no region are ignored.
func Summarize(regions []Region, sel Selection) Summary {
	var sum Summary
	for _, r := range regions {
		if math.IsNaN(r.Area) {
			continue
		}
		sum.TotalArea += r.Area
		if sel.Has(r.Name) {
			sum.SelectedArea += r.Area
		}
	}
	return sum
}

// FilterRegions returns the selected regions in their original order.
func FilterRegions(regions []Region, sel Selection) []Region {
	out := make([]Region, 0, len(sel))
	for _, r := range regions {
		if sel.Has(r.Name) {
			out = append(out, r)
		}
	}
	return out
}

// RegionNames returns the distinct non-blank region names in
// alphabetical order, ready for the picker.
func RegionNames(regions []Region) []string {
	seen := make(map[string]bool, len(regions))
	names := make([]string, 0, len(regions))
	for _, r := range regions {
		if r.Name == "" || seen[r.Name] {
			continue
		}
		seen[r.Name] = true
		names = append(names, r.Name)
	}
	sort.Strings(names)
	return names
}

// AreaByName returns (name, area) rows sorted by name for the area bar
// chart. Rows with a blank name or area are dropped.
func AreaByName(regions []Region) []NameValue {
	out := make([]NameValue, 0, len(regions))
	for _, r := range regions {
		if r.Name == "" || math.IsNaN(r.Area) {
			continue
		}
		out = append(out, NameValue{Name: r.Name, Value: r.Area})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// RateAscending returns (name, rate) rows sorted by rate for the rate
// line chart. Rows with a blank name or rate are dropped.
func RateAscending(regions []Region) []NameValue {
	out := make([]NameValue, 0, len(regions))
	for _, r := range regions {
		if r.Name == "" || math.IsNaN(r.Rate) {
			continue
		}
		out = append(out, NameValue{Name: r.Name, Value: r.Rate})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out
}

// MaxDistrictArea returns the largest district area, skipping blanks.
// Marker sizes are scaled against it.
func MaxDistrictArea(districts []District) float64 {
	max := 0.0
	for _, d := range districts {
		if !math.IsNaN(d.Area) && d.Area > max {
			max = d.Area
		}
	}
	return max
}

// RateBounds returns the smallest and largest district rate, skipping
// blanks. ok is false when no district carries a rate.
func RateBounds(districts []District) (lo, hi float64, ok bool) {
	for _, d := range districts {
		if math.IsNaN(d.Rate) {
			continue
		}
		if !ok {
			lo, hi, ok = d.Rate, d.Rate, true
			continue
		}
		if d.Rate < lo {
			lo = d.Rate
		}
		if d.Rate > hi {
			hi = d.Rate
		}
	}
	return lo, hi, ok
}
