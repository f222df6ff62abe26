package engine

import (
	"context"
	"math"
	"slices"

	"github.com/piwi3910/budomari/internal/model"
)

// ShelfStrategy packs pieces left to right into full-width shelves, or
// bottom to top into full-height columns when Columns is set. Each pass
// fixes a shelf height up front (taken from CandidateParams) so that
// shorter pieces can share a shelf; the best pass under the objective wins.
type ShelfStrategy struct {
	Columns bool
	Limit   int // Candidate shelf values to try, 0 = DefaultParamLimit
}

// Name returns "shelf", or "column" for the transposed variant.
func (s ShelfStrategy) Name() string {
	if s.Columns {
		return string(model.AlgorithmColumn)
	}
	return string(model.AlgorithmShelf)
}

// Pack keeps the best shelf pass under the objective.
func (s ShelfStrategy) Pack(ctx context.Context, pieces []model.PieceInstance, cfg model.Config, objective model.Objective) (model.LayoutResult, error) {
	if err := checkConfig(cfg); err != nil {
		return model.LayoutResult{}, err
	}

	// Columns are shelves on the transposed sheet.
	work, wcfg := pieces, cfg
	if s.Columns {
		work, wcfg = transposePieces(pieces), transposeConfig(cfg)
	}

	limit := s.Limit
	if limit <= 0 {
		limit = DefaultParamLimit
	}
	// Level 0 lets every shelf take the height of the piece that opens it.
	levels := append([]float64{0}, CandidateParams(work, wcfg, AxisRows, limit)...)
	order := shelfOrder(work, objective)
	b := newBudget(cfg.MaxEvaluations)

	var best model.LayoutResult
	found := false
	for _, level := range levels {
		sheets, err := shelfPass(ctx, order, wcfg, level, b)
		if err != nil {
			return model.LayoutResult{}, err
		}
		if s.Columns {
			sheets = transposeSheets(sheets)
		}
		res := finalize(s.Name(), objective, cfg, sheets)
		if !found || shelfBetter(res, best, objective) {
			best = res
			found = true
		}
	}
	return best, nil
}

// shelfOrder sorts by area for yield and by width for cuts, so pieces of
// equal width end up in the same columns of consecutive shelves.
func shelfOrder(pieces []model.PieceInstance, objective model.Objective) []model.PieceInstance {
	if objective != model.ObjectiveCuts {
		return sortByAreaDesc(pieces)
	}
	sorted := slices.Clone(pieces)
	slices.SortStableFunc(sorted, func(a, b model.PieceInstance) int {
		switch {
		case a.Width > b.Width:
			return -1
		case a.Width < b.Width:
			return 1
		default:
			return 0
		}
	})
	return sorted
}

func shelfBetter(a, b model.LayoutResult, objective model.Objective) bool {
	if objective == model.ObjectiveCuts {
		if a.CutCount != b.CutCount {
			return a.CutCount < b.CutCount
		}
		return len(a.Sheets) < len(b.Sheets)
	}
	if len(a.Sheets) != len(b.Sheets) {
		return len(a.Sheets) < len(b.Sheets)
	}
	if math.Abs(a.YieldRatio-b.YieldRatio) > model.Epsilon {
		return a.YieldRatio > b.YieldRatio
	}
	return a.CutCount < b.CutCount
}

type shelf struct {
	y, height float64
	cursor    float64 // x where the next piece goes
}

type shelfSheet struct {
	shelves []shelf
	nextY   float64 // y where the next shelf opens
	placed  []model.PlacedPiece
	cuts    []model.CutLine
}

// shelfPass packs the pieces in order with the given shelf level. Each
// piece goes into the first shelf (over all sheets) with room, in its
// tallest fitting orientation; otherwise it opens a shelf on the first sheet
// with height left, otherwise a new sheet.
func shelfPass(ctx context.Context, order []model.PieceInstance, cfg model.Config, level float64, b *budget) ([]model.Sheet, error) {
	in := cfg.Interior()
	left, right, top := in.X, in.X+in.Width, in.Y+in.Height
	var sheets []*shelfSheet

	for _, piece := range order {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		options := orientations(piece, cfg.AllowRotation)
		placed := false

	existing:
		for _, ss := range sheets {
			for i := range ss.shelves {
				if err := b.spend(len(options)); err != nil {
					return nil, err
				}
				sh := ss.shelves[i]
				if o, ok := tallestFit(options, right-sh.cursor, sh.height); ok {
					ss.place(i, piece, o, right, cfg.Kerf)
					placed = true
					break existing
				}
			}
		}

		if !placed {
			for _, ss := range sheets {
				if err := b.spend(len(options)); err != nil {
					return nil, err
				}
				if o, ok := firstFit(piece, cfg.AllowRotation, in.Width, top-ss.nextY); ok {
					i := ss.open(o, level, left, right, top, cfg.Kerf)
					ss.place(i, piece, o, right, cfg.Kerf)
					placed = true
					break
				}
			}
		}

		if !placed {
			o, ok := firstFit(piece, cfg.AllowRotation, in.Width, in.Height)
			if !ok {
				return nil, tooLarge(piece)
			}
			ss := &shelfSheet{nextY: in.Y}
			sheets = append(sheets, ss)
			i := ss.open(o, level, left, right, top, cfg.Kerf)
			ss.place(i, piece, o, right, cfg.Kerf)
		}
	}

	out := make([]model.Sheet, len(sheets))
	for i, ss := range sheets {
		out[i] = ss.sheet(left, right, top)
	}
	return out, nil
}

// tallestFit picks the orientation that fits a w x h slot and uses most of
// its height. The unrotated orientation wins ties.
func tallestFit(options []orientation, w, h float64) (orientation, bool) {
	var best orientation
	found := false
	for _, o := range options {
		if o.fits(w, h) && (!found || o.height > best.height+model.Epsilon) {
			best = o
			found = true
		}
	}
	return best, found
}

// open starts a shelf for a piece of orientation o. The shelf takes the
// level height when the piece is not taller and the sheet has room,
// otherwise the piece height. The full-width cut above it is recorded
// unless the shelf ends at the interior edge.
func (ss *shelfSheet) open(o orientation, level, left, right, top, kerf float64) int {
	height := o.height
	if level >= o.height-model.Epsilon && ss.nextY+level <= top+model.Epsilon {
		height = math.Max(level, o.height)
	}
	sh := shelf{y: ss.nextY, height: height, cursor: left}
	if sh.y+height < top-model.Epsilon {
		ss.cuts = append(ss.cuts, model.HorizontalCut(sh.y+height, left, right))
	}
	ss.nextY = sh.y + height + kerf
	ss.shelves = append(ss.shelves, sh)
	return len(ss.shelves) - 1
}

// place puts the piece at the shelf cursor, records the cut to its right
// and, when it is shorter than the shelf, the trim cut above it.
func (ss *shelfSheet) place(idx int, piece model.PieceInstance, o orientation, right, kerf float64) {
	sh := &ss.shelves[idx]
	x := sh.cursor
	ss.placed = append(ss.placed, model.PlacedPiece{
		PieceID: piece.ID,
		Label:   piece.Label,
		X:       x,
		Y:       sh.y,
		Width:   o.width,
		Height:  o.height,
		Rotated: o.rotated,
	})
	if x+o.width < right-model.Epsilon {
		ss.cuts = append(ss.cuts, model.VerticalCut(x+o.width, sh.y, sh.y+sh.height))
	}
	if o.height < sh.height-model.Epsilon {
		ss.cuts = append(ss.cuts, model.HorizontalCut(sh.y+o.height, x, x+o.width))
	}
	sh.cursor = x + o.width + kerf
}

// sheet reports the open end of every shelf and the strip above the last
// shelf as free space.
func (ss *shelfSheet) sheet(left, right, top float64) model.Sheet {
	var free []model.FreeRect
	for _, sh := range ss.shelves {
		if w := right - sh.cursor; w > model.Epsilon {
			free = append(free, model.FreeRect{X: sh.cursor, Y: sh.y, Width: w, Height: sh.height})
		}
	}
	if h := top - ss.nextY; h > model.Epsilon {
		free = append(free, model.FreeRect{X: left, Y: ss.nextY, Width: right - left, Height: h})
	}
	return model.Sheet{
		Free:   free,
		Placed: ss.placed,
		Cuts:   ss.cuts,
	}
}

func transposeConfig(cfg model.Config) model.Config {
	cfg.SheetWidth, cfg.SheetHeight = cfg.SheetHeight, cfg.SheetWidth
	return cfg
}

func transposePieces(pieces []model.PieceInstance) []model.PieceInstance {
	out := make([]model.PieceInstance, len(pieces))
	for i, p := range pieces {
		p.Width, p.Height = p.Height, p.Width
		out[i] = p
	}
	return out
}

// transposeSheets mirrors sheets across the diagonal. The rotated flag is
// unchanged because pieces were transposed too.
func transposeSheets(sheets []model.Sheet) []model.Sheet {
	out := make([]model.Sheet, len(sheets))
	for i, s := range sheets {
		var t model.Sheet
		for _, p := range s.Placed {
			p.X, p.Y = p.Y, p.X
			p.Width, p.Height = p.Height, p.Width
			t.Placed = append(t.Placed, p)
		}
		for _, r := range s.Free {
			t.Free = append(t.Free, model.FreeRect{X: r.Y, Y: r.X, Width: r.Height, Height: r.Width})
		}
		for _, c := range s.Cuts {
			t.Cuts = append(t.Cuts, model.CutLine{X1: c.Y1, Y1: c.X1, X2: c.Y2, Y2: c.X2})
		}
		out[i] = t
	}
	return out
}
