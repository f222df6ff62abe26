package engine

import (
	"fmt"

	"github.com/piwi3910/budomari/internal/model"
)

// MaxInstances caps the total number of piece instances one demand list
// may expand to.
const MaxInstances = 1_000_000

// Expand turns demand rows into individual piece instances. Ids start at 0
// and follow row order, then unit order within a row. Identical rows stay
// distinct. The whole list is validated before anything is expanded.
func Expand(demands []model.PieceDemand) ([]model.PieceInstance, error) {
	total := 0
	for i, d := range demands {
		if d.Width <= 0 || d.Height <= 0 || d.Quantity < 1 {
			return nil, &DemandError{Row: i, Demand: d}
		}
		if d.Quantity > MaxInstances-total {
			return nil, fmt.Errorf("%w: row %d: more than %d pieces in total", ErrInvalidDemand, i+1, MaxInstances)
		}
		total += d.Quantity
	}

	pieces := make([]model.PieceInstance, 0, total)
	for _, d := range demands {
		for i := 0; i < d.Quantity; i++ {
			pieces = append(pieces, model.PieceInstance{
				ID:     len(pieces),
				Label:  d.Label,
				Width:  d.Width,
				Height: d.Height,
			})
		}
	}
	return pieces, nil
}
