package engine

import (
	"context"
	"fmt"

	"github.com/piwi3910/budomari/internal/model"
)

// ComparisonScenario defines a named configuration to compare.
type ComparisonScenario struct {
	Name   string
	Config model.Config
}

// ComparisonResult holds the layout and headline figures of one scenario.
// Err is set when the scenario could not be packed.
type ComparisonResult struct {
	Scenario     ComparisonScenario
	Result       model.LayoutResult
	Err          error
	SheetsUsed   int
	TotalCuts    int
	WastePercent float64
}

// CompareScenarios packs the demands under every scenario for one objective
// and returns the results in scenario order. A failing scenario is reported
// on its result; only invalid demands and cancellation stop the comparison.
func CompareScenarios(ctx context.Context, scenarios []ComparisonScenario, demands []model.PieceDemand, objective model.Objective) ([]ComparisonResult, error) {
	pieces, err := Expand(demands)
	if err != nil {
		return nil, err
	}

	results := make([]ComparisonResult, 0, len(scenarios))
	for _, scenario := range scenarios {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		cr := ComparisonResult{Scenario: scenario}
		res, err := New(scenario.Config).Pack(ctx, pieces, objective)
		if err != nil {
			cr.Err = err
			results = append(results, cr)
			continue
		}

		cr.Result = res
		cr.SheetsUsed = len(res.Sheets)
		cr.TotalCuts = res.CutCount
		cr.WastePercent = 100.0 * (1 - res.YieldRatio)
		results = append(results, cr)
	}
	return results, nil
}

// BuildDefaultScenarios generates what-if alternatives to the given
// configuration: the other packing strategies, a thinner blade, no edge
// margin and the opposite rotation setting.
func BuildDefaultScenarios(base model.Config) []ComparisonScenario {
	if base.Algorithm == "" {
		base.Algorithm = model.AlgorithmGuillotine
	}
	scenarios := []ComparisonScenario{
		{
			Name:   "Current Settings",
			Config: base,
		},
	}

	for _, alg := range model.Algorithms {
		if alg == base.Algorithm {
			continue
		}
		alt := base
		alt.Algorithm = alg
		scenarios = append(scenarios, ComparisonScenario{
			Name:   fmt.Sprintf("%s strategy", alg),
			Config: alt,
		})
	}

	// Thinner blade
	if base.Kerf > 1.0 {
		tight := base
		tight.Kerf = base.Kerf * 0.5
		scenarios = append(scenarios, ComparisonScenario{
			Name:   fmt.Sprintf("Kerf %.1fmm (half)", tight.Kerf),
			Config: tight,
		})
	}

	if base.EdgeMargin > 0 {
		noMargin := base
		noMargin.EdgeMargin = 0
		scenarios = append(scenarios, ComparisonScenario{
			Name:   "No Edge Margin",
			Config: noMargin,
		})
	}

	flipped := base
	flipped.AllowRotation = !base.AllowRotation
	name := "Rotation Allowed"
	if base.AllowRotation {
		name = "No Rotation"
	}
	scenarios = append(scenarios, ComparisonScenario{
		Name:   name,
		Config: flipped,
	})

	return scenarios
}
