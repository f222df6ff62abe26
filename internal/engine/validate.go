package engine

import (
	"github.com/piwi3910/budomari/internal/model"
)

// Validate counts the geometric violations of one sheet: pairs of pieces
// whose interiors intersect, and recorded cuts that would run through a
// piece. A cut only crosses a piece that lies within the span of the cut.
// Touching edges are never violations.
func Validate(sheet model.Sheet) model.Diagnostics {
	var d model.Diagnostics
	placed := sheet.Placed

	for i := range placed {
		for j := i + 1; j < len(placed); j++ {
			a, b := placed[i], placed[j]
			if overlaps(a.X, a.Right(), b.X, b.Right()) && overlaps(a.Y, a.Top(), b.Y, b.Top()) {
				d.Overlaps++
			}
		}
	}

	for _, c := range sheet.Cuts {
		for _, p := range placed {
			if c.Vertical() {
				if strictlyInside(c.X1, p.X, p.Right()) && overlaps(p.Y, p.Top(), c.Y1, c.Y2) {
					d.VerticalCrossings++
				}
				continue
			}
			if strictlyInside(c.Y1, p.Y, p.Top()) && overlaps(p.X, p.Right(), c.X1, c.X2) {
				d.HorizontalCrossings++
			}
		}
	}
	return d
}

// ValidateSheets sums the diagnostics of all sheets.
func ValidateSheets(sheets []model.Sheet) model.Diagnostics {
	var d model.Diagnostics
	for _, s := range sheets {
		d = d.Add(Validate(s))
	}
	return d
}

// overlaps reports whether [a1,a2] and [b1,b2] share more than a boundary.
// The second interval may be given in either direction.
func overlaps(a1, a2, b1, b2 float64) bool {
	if b1 > b2 {
		b1, b2 = b2, b1
	}
	return a1 < b2-model.Epsilon && b1 < a2-model.Epsilon
}

func strictlyInside(c, lo, hi float64) bool {
	return lo+model.Epsilon < c && c < hi-model.Epsilon
}
