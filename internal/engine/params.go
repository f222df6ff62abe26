package engine

import (
	"math"
	"slices"

	"github.com/piwi3910/budomari/internal/model"
)

// Axis selects which sheet dimension a shelf strategy fixes up front.
type Axis int

const (
	AxisRows    Axis = iota // Shelf heights
	AxisColumns             // Column widths
)

// DefaultParamLimit bounds the number of shelf/column values tried.
const DefaultParamLimit = 8

// CandidateParams derives up to limit representative shelf heights (rows)
// or column widths (columns) from the piece dimensions. Both sides of a
// piece count when rotation is allowed. Values that do not fit the interior
// are dropped and values within Epsilon of each other are merged. When there
// are more distinct values than limit, an evenly spread subset is returned.
// The result is sorted largest first.
func CandidateParams(pieces []model.PieceInstance, cfg model.Config, axis Axis, limit int) []float64 {
	if limit <= 0 {
		return nil
	}
	extent := cfg.EffectiveHeight()
	if axis == AxisColumns {
		extent = cfg.EffectiveWidth()
	}

	var values []float64
	add := func(v float64) {
		if v <= extent+model.Epsilon {
			values = append(values, v)
		}
	}
	for _, p := range pieces {
		if axis == AxisColumns {
			add(p.Width)
		} else {
			add(p.Height)
		}
		if cfg.AllowRotation && !p.Square() {
			if axis == AxisColumns {
				add(p.Height)
			} else {
				add(p.Width)
			}
		}
	}

	slices.SortFunc(values, func(a, b float64) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		default:
			return 0
		}
	})
	values = slices.CompactFunc(values, func(a, b float64) bool {
		return math.Abs(a-b) <= model.Epsilon
	})

	if len(values) <= limit {
		return values
	}
	if limit == 1 {
		return values[:1]
	}
	picked := make([]float64, 0, limit)
	last := -1
	for i := 0; i < limit; i++ {
		idx := int(math.Round(float64(i) * float64(len(values)-1) / float64(limit-1)))
		if idx != last {
			picked = append(picked, values[idx])
			last = idx
		}
	}
	return picked
}
