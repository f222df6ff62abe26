package engine

import (
	"math"
	"slices"

	"github.com/piwi3910/budomari/internal/model"
)

// DeriveCuts rebuilds the cut lines of a sheet from its final piece edges.
// Every piece edge is projected across the whole effective interior; edges
// on the interior boundary are dropped, and coordinates closer than one
// kerf (plus Epsilon) collapse into one cut, since the two faces of a single
// blade pass lie exactly one kerf apart. Vertical cuts come first, ordered by
// x, then horizontal cuts ordered by y.
func DeriveCuts(sheet model.Sheet, cfg model.Config) []model.CutLine {
	in := cfg.Interior()
	left, right := in.X, in.X+in.Width
	bottom, top := in.Y, in.Y+in.Height

	xs := make([]float64, 0, 2*len(sheet.Placed))
	ys := make([]float64, 0, 2*len(sheet.Placed))
	for _, p := range sheet.Placed {
		xs = append(xs, p.X, p.Right())
		ys = append(ys, p.Y, p.Top())
	}

	tol := cfg.Kerf + model.Epsilon
	var cuts []model.CutLine
	for _, x := range interiorCoords(xs, left, right, tol) {
		cuts = append(cuts, model.VerticalCut(x, bottom, top))
	}
	for _, y := range interiorCoords(ys, bottom, top, tol) {
		cuts = append(cuts, model.HorizontalCut(y, left, right))
	}
	return cuts
}

// interiorCoords sorts coords, drops those on the lo/hi boundary and merges
// every coordinate within tol of the first coordinate of its run. A kept
// coordinate is always more than tol past the previous kept one.
func interiorCoords(coords []float64, lo, hi, tol float64) []float64 {
	sorted := slices.DeleteFunc(slices.Clone(coords), func(c float64) bool {
		return math.Abs(c-lo) <= model.Epsilon || math.Abs(c-hi) <= model.Epsilon
	})
	slices.Sort(sorted)

	out := sorted[:0]
	for _, c := range sorted {
		if len(out) > 0 && c-out[len(out)-1] <= tol {
			continue
		}
		out = append(out, c)
	}
	return out
}
