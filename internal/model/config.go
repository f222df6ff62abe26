package model

import (
	"fmt"
	"strings"
)

// Objective selects what the packer optimizes for.
type Objective int

const (
	ObjectiveYield Objective = iota // Minimize sheets and waste
	ObjectiveCuts                   // Minimize the number of cuts
)

// Objectives lists every supported objective in run order.
var Objectives = []Objective{ObjectiveYield, ObjectiveCuts}

func (o Objective) String() string {
	switch o {
	case ObjectiveCuts:
		return "cuts"
	default:
		return "yield"
	}
}

// Title returns a human readable name for reports.
func (o Objective) Title() string {
	switch o {
	case ObjectiveCuts:
		return "Fewest cuts"
	default:
		return "Best yield"
	}
}

func (o Objective) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Objective) UnmarshalText(text []byte) error {
	parsed, err := ParseObjective(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// ParseObjective converts "yield" or "cuts" (case-insensitive) to an Objective.
func ParseObjective(s string) (Objective, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yield", "waste", "sheets":
		return ObjectiveYield, nil
	case "cuts", "cut":
		return ObjectiveCuts, nil
	default:
		return ObjectiveYield, fmt.Errorf("unknown objective %q", s)
	}
}

// Algorithm names a packing strategy.
type Algorithm string

const (
	AlgorithmGuillotine Algorithm = "guillotine" // Free-rectangle best fit (default)
	AlgorithmShelf      Algorithm = "shelf"      // Horizontal shelves with fixed heights
	AlgorithmColumn     Algorithm = "column"     // Vertical columns with fixed widths
)

// Algorithms lists the registered strategy names.
var Algorithms = []Algorithm{AlgorithmGuillotine, AlgorithmShelf, AlgorithmColumn}

// Config holds everything a packing run needs besides the demand list.
type Config struct {
	SheetWidth     float64   `json:"sheet_width" yaml:"sheet_width"`         // mm
	SheetHeight    float64   `json:"sheet_height" yaml:"sheet_height"`       // mm
	Kerf           float64   `json:"kerf" yaml:"kerf"`                       // Blade width in mm
	EdgeMargin     float64   `json:"edge_margin" yaml:"edge_margin"`         // Trim on every sheet edge in mm
	AllowRotation  bool      `json:"allow_rotation" yaml:"allow_rotation"`   // Pieces may be turned 90 degrees
	Algorithm      Algorithm `json:"algorithm" yaml:"algorithm"`             // Packing strategy
	MaxEvaluations int       `json:"max_evaluations" yaml:"max_evaluations"` // Candidate budget per run, 0 = unlimited
}

func DefaultConfig() Config {
	preset := SheetPresets[0]
	return Config{
		SheetWidth:    preset.Width,
		SheetHeight:   preset.Height,
		Kerf:          3.0,
		EdgeMargin:    5.0,
		AllowRotation: true,
		Algorithm:     AlgorithmGuillotine,
	}
}

// EffectiveWidth is the sheet width left after trimming both side margins.
func (c Config) EffectiveWidth() float64 {
	return c.SheetWidth - 2*c.EdgeMargin
}

// EffectiveHeight is the sheet height left after trimming both margins.
func (c Config) EffectiveHeight() float64 {
	return c.SheetHeight - 2*c.EdgeMargin
}

func (c Config) EffectiveArea() float64 {
	return c.EffectiveWidth() * c.EffectiveHeight()
}

// Interior returns the effective interior as a free rectangle in sheet
// coordinates.
func (c Config) Interior() FreeRect {
	return FreeRect{
		X:      c.EdgeMargin,
		Y:      c.EdgeMargin,
		Width:  c.EffectiveWidth(),
		Height: c.EffectiveHeight(),
	}
}

// SheetPreset is a named standard board size.
type SheetPreset struct {
	Name   string  `json:"name"`
	Label  string  `json:"label"`
	Width  float64 `json:"width"`  // mm
	Height float64 `json:"height"` // mm
}

// SheetPresets are the common Japanese plywood formats.
var SheetPresets = []SheetPreset{
	{Name: "saburoku", Label: "サブロク (3x6 shaku)", Width: 1820, Height: 910},
	{Name: "shihachi", Label: "シハチ (4x8 shaku)", Width: 2400, Height: 1200},
	{Name: "goshi", Label: "ゴシ (5x3 shaku)", Width: 1500, Height: 900},
}

// GetPreset returns the preset with the given name (case-insensitive).
func GetPreset(name string) (SheetPreset, bool) {
	for _, p := range SheetPresets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return SheetPreset{}, false
}

// GetPresetNames returns the names of all presets.
func GetPresetNames() []string {
	names := make([]string, 0, len(SheetPresets))
	for _, p := range SheetPresets {
		names = append(names, p.Name)
	}
	return names
}

// Apply copies the preset dimensions into the config.
func (p SheetPreset) Apply(c *Config) {
	c.SheetWidth = p.Width
	c.SheetHeight = p.Height
}
