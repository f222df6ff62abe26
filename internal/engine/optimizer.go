package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/piwi3910/budomari/internal/model"
)

// Optimizer runs the packing strategy selected by Config.Algorithm once per
// objective over the same expanded piece set.
type Optimizer struct {
	Config model.Config
	Logger *slog.Logger
	// Parallel runs the objectives concurrently. Each run owns its own
	// sheets, so the results are identical to a sequential run.
	Parallel bool
}

func New(cfg model.Config) *Optimizer {
	return &Optimizer{Config: cfg}
}

// ObjectiveRun is the outcome of packing for one objective. Exactly one of
// Result and Err is meaningful.
type ObjectiveRun struct {
	Objective model.Objective
	Result    model.LayoutResult
	Err       error
	Elapsed   time.Duration
}

// Plan holds the expanded pieces and one run per objective, in
// model.Objectives order.
type Plan struct {
	Pieces []model.PieceInstance
	Runs   []ObjectiveRun
}

// Run returns the run for the objective.
func (p Plan) Run(objective model.Objective) (ObjectiveRun, bool) {
	for _, r := range p.Runs {
		if r.Objective == objective {
			return r, true
		}
	}
	return ObjectiveRun{}, false
}

// Result returns the layout for the objective, or the error that aborted it.
func (p Plan) Result(objective model.Objective) (model.LayoutResult, error) {
	r, ok := p.Run(objective)
	if !ok {
		return model.LayoutResult{}, fmt.Errorf("no run for objective %s", objective)
	}
	return r.Result, r.Err
}

// Err joins the errors of all failed runs.
func (p Plan) Err() error {
	var errs []error
	for _, r := range p.Runs {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.Objective, r.Err))
		}
	}
	return errors.Join(errs...)
}

func (o *Optimizer) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

// Run expands the demands and packs them for every objective. Invalid
// demands and configuration problems shared by all objectives are returned
// as the error; a failure inside one objective run is recorded on that run
// and does not stop the other.
func (o *Optimizer) Run(ctx context.Context, demands []model.PieceDemand) (Plan, error) {
	pieces, err := Expand(demands)
	if err != nil {
		return Plan{}, err
	}
	if err := checkConfig(o.Config); err != nil {
		return Plan{}, err
	}
	strategy, err := StrategyFor(o.Config.Algorithm)
	if err != nil {
		return Plan{}, err
	}

	log := o.logger()
	log.Debug("Starting plan",
		"strategy", strategy.Name(),
		"pieces", len(pieces),
		"sheet", fmt.Sprintf("%gx%g", o.Config.SheetWidth, o.Config.SheetHeight),
		"parallel", o.Parallel)

	plan := Plan{Pieces: pieces, Runs: make([]ObjectiveRun, len(model.Objectives))}
	if o.Parallel {
		var wg sync.WaitGroup
		for i, obj := range model.Objectives {
			wg.Add(1)
			go func() {
				defer wg.Done()
				plan.Runs[i] = o.runObjective(ctx, strategy, pieces, obj)
			}()
		}
		wg.Wait()
	} else {
		for i, obj := range model.Objectives {
			plan.Runs[i] = o.runObjective(ctx, strategy, pieces, obj)
		}
	}
	return plan, nil
}

// Pack runs the configured strategy for a single objective.
func (o *Optimizer) Pack(ctx context.Context, pieces []model.PieceInstance, objective model.Objective) (model.LayoutResult, error) {
	strategy, err := StrategyFor(o.Config.Algorithm)
	if err != nil {
		return model.LayoutResult{}, err
	}
	return strategy.Pack(ctx, pieces, o.Config, objective)
}

func (o *Optimizer) runObjective(ctx context.Context, strategy Strategy, pieces []model.PieceInstance, objective model.Objective) ObjectiveRun {
	log := o.logger().With("objective", objective.String(), "strategy", strategy.Name())
	start := time.Now()
	res, err := strategy.Pack(ctx, pieces, o.Config, objective)
	run := ObjectiveRun{Objective: objective, Result: res, Err: err, Elapsed: time.Since(start)}

	if err != nil {
		log.Error("Packing failed", "error", err)
		return run
	}
	if !res.Valid() {
		log.Warn("Layout failed validation",
			"overlaps", res.Diagnostics.Overlaps,
			"vertical_crossings", res.Diagnostics.VerticalCrossings,
			"horizontal_crossings", res.Diagnostics.HorizontalCrossings)
	}
	log.Info("Packing complete",
		"sheets", len(res.Sheets),
		"yield", fmt.Sprintf("%.4f", res.YieldRatio),
		"cuts", res.CutCount,
		"elapsed", run.Elapsed)
	return run
}
