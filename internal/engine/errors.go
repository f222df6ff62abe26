package engine

import (
	"errors"
	"fmt"

	"github.com/piwi3910/budomari/internal/model"
)

var (
	// ErrInvalidDemand reports a demand row with a non-positive dimension
	// or quantity.
	ErrInvalidDemand = errors.New("invalid demand")
	// ErrInvalidConfig reports a non-positive sheet size or a negative
	// kerf or margin.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrNoEffectiveArea reports an edge margin that consumes the sheet.
	ErrNoEffectiveArea = errors.New("no effective area: edge margin too large for sheet")
	// ErrPieceTooLarge reports a piece that fits the empty interior in
	// neither orientation.
	ErrPieceTooLarge = errors.New("piece too large for sheet")
	// ErrBudgetExceeded reports that the candidate search hit
	// Config.MaxEvaluations.
	ErrBudgetExceeded = errors.New("search budget exceeded")
	// ErrUnknownStrategy reports an unregistered algorithm name.
	ErrUnknownStrategy = errors.New("unknown strategy")
)

// DemandError identifies the offending demand row.
type DemandError struct {
	Row    int
	Demand model.PieceDemand
}

func (e *DemandError) Error() string {
	return fmt.Sprintf("%v: row %d (%gx%g x%d): width, height and quantity must be positive",
		ErrInvalidDemand, e.Row+1, e.Demand.Width, e.Demand.Height, e.Demand.Quantity)
}

func (e *DemandError) Unwrap() error { return ErrInvalidDemand }

// PieceTooLargeError identifies the piece that cannot be placed.
type PieceTooLargeError struct {
	PieceID int
	Width   float64
	Height  float64
}

func (e *PieceTooLargeError) Error() string {
	return fmt.Sprintf("%v: piece %d (%gx%g)", ErrPieceTooLarge, e.PieceID, e.Width, e.Height)
}

func (e *PieceTooLargeError) Unwrap() error { return ErrPieceTooLarge }

// checkConfig validates the scalars of a run configuration. The
// effective-area check comes last so that a margin problem is reported as
// ErrNoEffectiveArea.
func checkConfig(cfg model.Config) error {
	if cfg.SheetWidth <= 0 || cfg.SheetHeight <= 0 {
		return fmt.Errorf("%w: sheet size %gx%g must be positive", ErrInvalidConfig, cfg.SheetWidth, cfg.SheetHeight)
	}
	if cfg.Kerf < 0 {
		return fmt.Errorf("%w: kerf %g must not be negative", ErrInvalidConfig, cfg.Kerf)
	}
	if cfg.EdgeMargin < 0 {
		return fmt.Errorf("%w: edge margin %g must not be negative", ErrInvalidConfig, cfg.EdgeMargin)
	}
	if cfg.MaxEvaluations < 0 {
		return fmt.Errorf("%w: max evaluations %d must not be negative", ErrInvalidConfig, cfg.MaxEvaluations)
	}
	if cfg.EffectiveWidth() <= 0 || cfg.EffectiveHeight() <= 0 {
		return fmt.Errorf("%w (interior %gx%g)", ErrNoEffectiveArea, cfg.EffectiveWidth(), cfg.EffectiveHeight())
	}
	return nil
}
