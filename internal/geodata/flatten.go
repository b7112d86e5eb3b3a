package geodata

import (
	"math"

	"github.com/ctessum/geom"
)

// Gap returns the pen-lift marker that separates the parts of a
// multi-polygon in flattened coordinate slices. No real coordinate
// ever holds NaN, so the marker cannot collide with data.
func Gap() float64 { return math.NaN() }

// IsGap reports whether v is the pen-lift marker.
func IsGap(v float64) bool { return math.IsNaN(v) }

// FlattenCoords converts a geometry into parallel x/y slices ready for
// plotting.
//
// A Polygon contributes its exterior ring verbatim. A MultiPolygon
// contributes each part's exterior ring followed by one gap marker, so
// a renderer can lift the pen between parts; a multi-polygon with k
// parts therefore carries exactly k markers. Every other geometry
// flattens to two empty slices. The two results always have equal
// length, and markers sit at the same index in both.
func FlattenCoords(g geom.Geom) (xs, ys []float64) {
	switch t := g.(type) {
	case geom.Polygon:
		if len(t) == 0 {
			return nil, nil
		}
		for _, p := range t[0] {
			xs = append(xs, p.X)
			ys = append(ys, p.Y)
		}
	case geom.MultiPolygon:
		for _, poly := range t {
			if len(poly) > 0 {
				for _, p := range poly[0] {
					xs = append(xs, p.X)
					ys = append(ys, p.Y)
				}
			}
			xs = append(xs, Gap())
			ys = append(ys, Gap())
		}
	}
	return xs, ys
}

// ContainsXY reports whether (x, y) falls inside the flattened path by
// even-odd ray casting. Gap markers break the path into independent
// closed loops, so each part of a multi-polygon is tested on its own.
func ContainsXY(xs, ys []float64, x, y float64) bool {
	inside := false
	start := 0
	for i := 0; i <= len(xs); i++ {
		if i < len(xs) && !IsGap(xs[i]) {
			continue
		}
		if crossings(xs[start:i], ys[start:i], x, y)%2 == 1 {
			inside = !inside
		}
		start = i + 1
	}
	return inside
}

// crossings counts edges of the closed loop (xs, ys) crossed by a ray
// going right from (x, y).
func crossings(xs, ys []float64, x, y float64) int {
	n := len(xs)
	if n < 3 {
		return 0
	}
	count := 0
	j := n - 1
	for i := 0; i < n; i++ {
		yi, yj := ys[i], ys[j]
		if (yi > y) != (yj > y) {
			xi, xj := xs[i], xs[j]
			if x < xi+(y-yi)/(yj-yi)*(xj-xi) {
				count++
			}
		}
		j = i
	}
	return count
}
