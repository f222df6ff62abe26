package engine

import (
	"github.com/piwi3910/budomari/internal/model"
)

// finalize derives the full-span cuts of every sheet, validates the sheets
// and fills in the area and cut metrics of the layout.
func finalize(strategy string, objective model.Objective, cfg model.Config, sheets []model.Sheet) model.LayoutResult {
	res := model.LayoutResult{
		Strategy:  strategy,
		Objective: objective,
		Config:    cfg,
		Sheets:    sheets,
	}
	for i := range res.Sheets {
		s := &res.Sheets[i]
		s.FullCuts = DeriveCuts(*s, cfg)
		res.UsedArea += s.UsedArea()
		res.CutCount += len(s.FullCuts)
	}
	res.Diagnostics = ValidateSheets(res.Sheets)

	total := cfg.EffectiveArea() * float64(len(sheets))
	res.WasteArea = total - res.UsedArea
	if total > 0 {
		res.YieldRatio = res.UsedArea / total
	}
	return res
}
