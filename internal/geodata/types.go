package geodata

import (
	"math"

	"github.com/ctessum/geom"
)

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// EmptyBBox returns a box that the first Extend call snaps to.
func EmptyBBox() BBox {
	return BBox{
		MinX: math.Inf(1),
		MinY: math.Inf(1),
		MaxX: math.Inf(-1),
		MaxY: math.Inf(-1),
	}
}

// Extend grows the box to include (x, y). Gap markers are ignored.
func (b *BBox) Extend(x, y float64) {
	if IsGap(x) || IsGap(y) {
		return
	}
	if x < b.MinX {
		b.MinX = x
	}
	if y < b.MinY {
		b.MinY = y
	}
	if x > b.MaxX {
		b.MaxX = x
	}
	if y > b.MaxY {
		b.MaxY = y
	}
}

// Empty reports whether the box has never been extended.
func (b BBox) Empty() bool {
	return b.MinX > b.MaxX || b.MinY > b.MaxY
}

// Region is one boundary feature: a polygonal geometry plus the
// attributes carried by the shapefile row. Regions do not change after
// load; every interaction derives fresh state from the same slice.
type Region struct {
	Name string
	Geom geom.Geom // Polygon or MultiPolygon; anything else draws empty
	Rate float64   // NaN when the source field is blank
	Area float64   // NaN when the source field is blank
}

// District is one point record from the district table. District
// coordinates are used exactly as given; only region geometries are
// reprojected.
type District struct {
	Name string
	X    float64
	Y    float64
	Rate float64
	Area float64
}

// Dataset is the product of one load pass.
type Dataset struct {
	Regions   []Region
	Districts []District
	BBox      BBox
}

// Selection is the set of highlighted region names. It lives only for
// the session and starts empty.
type Selection map[string]bool

// Toggle adds name to the selection, or removes it when present.
func (s Selection) Toggle(name string) {
	if s[name] {
		delete(s, name)
	} else {
		s[name] = true
	}
}

// Has reports whether name is selected.
func (s Selection) Has(name string) bool { return s[name] }
