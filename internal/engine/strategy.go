package engine

import (
	"context"
	"fmt"
	"slices"

	"github.com/piwi3910/budomari/internal/model"
)

// Strategy packs piece instances onto sheets for a single objective.
// Implementations must not modify the pieces slice and must return either a
// layout holding every piece or an error with no layout.
type Strategy interface {
	Name() string
	Pack(ctx context.Context, pieces []model.PieceInstance, cfg model.Config, objective model.Objective) (model.LayoutResult, error)
}

// StrategyFor returns the strategy registered for alg. An empty name
// selects the guillotine strategy.
func StrategyFor(alg model.Algorithm) (Strategy, error) {
	switch alg {
	case "", model.AlgorithmGuillotine:
		return GuillotineStrategy{}, nil
	case model.AlgorithmShelf:
		return ShelfStrategy{}, nil
	case model.AlgorithmColumn:
		return ShelfStrategy{Columns: true}, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownStrategy, alg)
	}
}

// budget counts candidate evaluations against Config.MaxEvaluations so a
// caller can bound the worst-case latency of the search.
type budget struct {
	limit int
	used  int
}

func newBudget(limit int) *budget {
	return &budget{limit: limit}
}

func (b *budget) spend(n int) error {
	b.used += n
	if b.limit > 0 && b.used > b.limit {
		return fmt.Errorf("%w: more than %d candidate evaluations", ErrBudgetExceeded, b.limit)
	}
	return nil
}

// orientation is one way of laying a piece on the sheet.
type orientation struct {
	width, height float64
	rotated       bool
}

// orientations lists the unrotated orientation first, then the rotated one
// when rotation is allowed and would change the footprint.
func orientations(p model.PieceInstance, allowRotation bool) []orientation {
	out := []orientation{{width: p.Width, height: p.Height}}
	if allowRotation && !p.Square() {
		out = append(out, orientation{width: p.Height, height: p.Width, rotated: true})
	}
	return out
}

func (o orientation) fits(w, h float64) bool {
	return o.width <= w+model.Epsilon && o.height <= h+model.Epsilon
}

// sortByAreaDesc returns a copy of pieces ordered by area, largest first.
// Equal areas keep their input order.
func sortByAreaDesc(pieces []model.PieceInstance) []model.PieceInstance {
	sorted := slices.Clone(pieces)
	slices.SortStableFunc(sorted, func(a, b model.PieceInstance) int {
		switch {
		case a.Area() > b.Area():
			return -1
		case a.Area() < b.Area():
			return 1
		default:
			return 0
		}
	})
	return sorted
}

// firstFit returns the first orientation that fits a w x h region, trying
// the unrotated one first.
func firstFit(p model.PieceInstance, allowRotation bool, w, h float64) (orientation, bool) {
	for _, o := range orientations(p, allowRotation) {
		if o.fits(w, h) {
			return o, true
		}
	}
	return orientation{}, false
}

// tooLarge builds the fatal error for a piece that cannot fit the interior.
func tooLarge(p model.PieceInstance) error {
	return &PieceTooLargeError{PieceID: p.ID, Width: p.Width, Height: p.Height}
}
