package engine

import (
	"context"
	"math"
	"slices"

	"github.com/piwi3910/budomari/internal/model"
)

// GuillotineStrategy is the free-rectangle best-fit packer. Every piece,
// largest first, is scored against every free rectangle of every open
// sheet in both orientations and the globally best placement is committed.
type GuillotineStrategy struct{}

// Name returns "guillotine".
func (GuillotineStrategy) Name() string {
	return string(model.AlgorithmGuillotine)
}

// candidate is one admissible (sheet, free rectangle, orientation) triple.
type candidate struct {
	sheet int
	rect  int
	orientation
	score float64
}

// Pack places every piece for the objective, or fails without a layout.
func (s GuillotineStrategy) Pack(ctx context.Context, pieces []model.PieceInstance, cfg model.Config, objective model.Objective) (model.LayoutResult, error) {
	if err := checkConfig(cfg); err != nil {
		return model.LayoutResult{}, err
	}

	interior := cfg.Interior()
	b := newBudget(cfg.MaxEvaluations)
	packers := []*guillotinePacker{newGuillotinePacker(interior, cfg.Kerf)}

	for _, piece := range sortByAreaDesc(pieces) {
		if err := ctx.Err(); err != nil {
			return model.LayoutResult{}, err
		}

		best, found, err := bestCandidate(packers, piece, cfg, objective, b)
		if err != nil {
			return model.LayoutResult{}, err
		}
		if !found {
			// Nothing open admits the piece: start a new sheet and put it
			// in the corner.
			o, ok := firstFit(piece, cfg.AllowRotation, interior.Width, interior.Height)
			if !ok {
				return model.LayoutResult{}, tooLarge(piece)
			}
			packers = append(packers, newGuillotinePacker(interior, cfg.Kerf))
			best = candidate{sheet: len(packers) - 1, rect: 0, orientation: o}
		}

		packers[best.sheet].commit(best.rect, piece, best.orientation)
	}

	sheets := make([]model.Sheet, len(packers))
	for i, gp := range packers {
		sheets[i] = gp.sheet()
	}
	return finalize(s.Name(), objective, cfg, sheets), nil
}

// bestCandidate scans every open sheet and returns the minimum-score
// placement. Ties keep the first candidate in sheet, free-list and
// orientation order.
func bestCandidate(packers []*guillotinePacker, piece model.PieceInstance, cfg model.Config, objective model.Objective, b *budget) (candidate, bool, error) {
	var best candidate
	found := false
	options := orientations(piece, cfg.AllowRotation)

	for si, gp := range packers {
		if err := b.spend(len(gp.freeRects) * len(options)); err != nil {
			return candidate{}, false, err
		}
		for ri, r := range gp.freeRects {
			for _, o := range options {
				if !o.fits(r.Width, r.Height) {
					continue
				}
				sc := score(objective, r, o, cfg.Kerf)
				if !found || sc < best.score {
					best = candidate{sheet: si, rect: ri, orientation: o, score: sc}
					found = true
				}
			}
		}
	}
	return best, found, nil
}

// score rates placing o into r; lower is better. The waste term is an
// approximation of the residual area and only serves as a tie-break signal.
func score(objective model.Objective, r model.FreeRect, o orientation, kerf float64) float64 {
	rightW := math.Max(0, r.Width-o.width-kerf)
	bottomH := math.Max(0, r.Height-o.height-kerf)
	waste := rightW*o.height + r.Width*bottomH

	widthExact := math.Abs(r.Width-o.width) <= model.Epsilon
	heightExact := math.Abs(r.Height-o.height) <= model.Epsilon

	switch objective {
	case model.ObjectiveCuts:
		switch {
		case widthExact && heightExact:
			return 0
		case widthExact || heightExact:
			return 0.1
		default:
			return 1.0 + waste
		}
	default:
		if widthExact && heightExact {
			return 0.1 + waste
		}
		return waste
	}
}

// guillotinePacker holds the free space and placements of one sheet.
type guillotinePacker struct {
	freeRects []model.FreeRect
	placed    []model.PlacedPiece
	cuts      []model.CutLine
	kerf      float64
}

func newGuillotinePacker(interior model.FreeRect, kerf float64) *guillotinePacker {
	return &guillotinePacker{
		freeRects: []model.FreeRect{interior},
		kerf:      kerf,
	}
}

// commit places the piece in the lower-left corner of free rectangle idx
// and splits the remainder: first the strip to the right of the piece (as
// tall as the piece), then the full-width strip beyond its top edge. Each
// residual comes with the cut that separates it.
func (gp *guillotinePacker) commit(idx int, piece model.PieceInstance, o orientation) {
	r := gp.freeRects[idx]
	gp.freeRects = slices.Delete(gp.freeRects, idx, idx+1)

	gp.placed = append(gp.placed, model.PlacedPiece{
		PieceID: piece.ID,
		Label:   piece.Label,
		X:       r.X,
		Y:       r.Y,
		Width:   o.width,
		Height:  o.height,
		Rotated: o.rotated,
	})

	if rightW := math.Max(0, r.Width-o.width-gp.kerf); rightW > model.Epsilon {
		gp.freeRects = append(gp.freeRects, model.FreeRect{
			X:      r.X + o.width + gp.kerf,
			Y:      r.Y,
			Width:  rightW,
			Height: o.height,
		})
		gp.cuts = append(gp.cuts, model.VerticalCut(r.X+o.width, r.Y, r.Y+o.height))
	}

	if bottomH := math.Max(0, r.Height-o.height-gp.kerf); bottomH > model.Epsilon {
		gp.freeRects = append(gp.freeRects, model.FreeRect{
			X:      r.X,
			Y:      r.Y + o.height + gp.kerf,
			Width:  r.Width,
			Height: bottomH,
		})
		gp.cuts = append(gp.cuts, model.HorizontalCut(r.Y+o.height, r.X, r.X+r.Width))
	}
}

func (gp *guillotinePacker) sheet() model.Sheet {
	return model.Sheet{
		Free:   slices.Clone(gp.freeRects),
		Placed: slices.Clone(gp.placed),
		Cuts:   slices.Clone(gp.cuts),
	}
}
