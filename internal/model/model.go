package model

import (
	"math"

	"github.com/google/uuid"
)

// Epsilon is the geometric tolerance in mm used for fit tests, exact-match
// scoring, boundary coincidence and overlap checks.
const Epsilon = 1e-6

// PieceDemand is one row of the cut list: a rectangle needed Quantity times.
type PieceDemand struct {
	Label    string  `json:"label,omitempty" yaml:"label,omitempty"`
	Width    float64 `json:"width" yaml:"width"`   // mm
	Height   float64 `json:"height" yaml:"height"` // mm
	Quantity int     `json:"quantity" yaml:"quantity"`
}

func NewDemand(label string, w, h float64, qty int) PieceDemand {
	return PieceDemand{Label: label, Width: w, Height: h, Quantity: qty}
}

// PieceInstance is a single physical copy of a demanded piece.
type PieceInstance struct {
	ID     int     `json:"id"`
	Label  string  `json:"label,omitempty"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (p PieceInstance) Area() float64 {
	return p.Width * p.Height
}

// Square reports whether rotating the piece would change nothing.
func (p PieceInstance) Square() bool {
	return math.Abs(p.Width-p.Height) <= Epsilon
}

// PlacedPiece is a piece instance positioned on a sheet. X and Y are the
// lower-left corner in sheet coordinates; Width and Height are the placed
// extents, i.e. the instance dimensions swapped when Rotated.
type PlacedPiece struct {
	PieceID int     `json:"piece_id"`
	Label   string  `json:"label,omitempty"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Rotated bool    `json:"rotated"`
}

func (p PlacedPiece) Right() float64 { return p.X + p.Width }
func (p PlacedPiece) Top() float64   { return p.Y + p.Height }
func (p PlacedPiece) Area() float64  { return p.Width * p.Height }

// FreeRect is an unused axis-aligned region inside a sheet's effective interior.
type FreeRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (r FreeRect) Area() float64 { return r.Width * r.Height }

// CutLine is a straight cut. Vertical cuts have X1 == X2, horizontal cuts
// have Y1 == Y2.
type CutLine struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

func VerticalCut(x, y1, y2 float64) CutLine {
	return CutLine{X1: x, Y1: y1, X2: x, Y2: y2}
}

func HorizontalCut(y, x1, x2 float64) CutLine {
	return CutLine{X1: x1, Y1: y, X2: x2, Y2: y}
}

func (c CutLine) Vertical() bool {
	return math.Abs(c.X1-c.X2) <= Epsilon
}

func (c CutLine) Length() float64 {
	return math.Hypot(c.X2-c.X1, c.Y2-c.Y1)
}

// Sheet is one stock sheet of a layout.
type Sheet struct {
	Free     []FreeRect    `json:"free"`
	Placed   []PlacedPiece `json:"placed"`
	Cuts     []CutLine     `json:"cuts"`      // split history recorded while packing
	FullCuts []CutLine     `json:"full_cuts"` // full-span cuts derived from the final piece edges
}

// UsedArea returns the total area of the placed pieces.
func (s Sheet) UsedArea() float64 {
	var total float64
	for _, p := range s.Placed {
		total += p.Area()
	}
	return total
}

// Diagnostics holds the geometric validation counts of a layout. Any
// non-zero count means the layout is not a legal guillotine plan.
type Diagnostics struct {
	Overlaps            int `json:"overlaps"`
	VerticalCrossings   int `json:"vertical_crossings"`
	HorizontalCrossings int `json:"horizontal_crossings"`
}

func (d Diagnostics) Valid() bool {
	return d.Overlaps == 0 && d.VerticalCrossings == 0 && d.HorizontalCrossings == 0
}

func (d Diagnostics) Add(o Diagnostics) Diagnostics {
	return Diagnostics{
		Overlaps:            d.Overlaps + o.Overlaps,
		VerticalCrossings:   d.VerticalCrossings + o.VerticalCrossings,
		HorizontalCrossings: d.HorizontalCrossings + o.HorizontalCrossings,
	}
}

// LayoutResult is the complete cutting plan for one objective.
type LayoutResult struct {
	Strategy    string      `json:"strategy"`
	Objective   Objective   `json:"objective"`
	Config      Config      `json:"config"`
	Sheets      []Sheet     `json:"sheets"`
	UsedArea    float64     `json:"used_area"`
	WasteArea   float64     `json:"waste_area"`
	YieldRatio  float64     `json:"yield_ratio"`
	CutCount    int         `json:"cut_count"`
	Diagnostics Diagnostics `json:"diagnostics"`
}

// PieceCount returns the number of placed pieces across all sheets.
func (r LayoutResult) PieceCount() int {
	n := 0
	for _, s := range r.Sheets {
		n += len(s.Placed)
	}
	return n
}

// Valid reports whether the validator found no overlap or crossing.
func (r LayoutResult) Valid() bool {
	return r.Diagnostics.Valid()
}

// Project ties a demand list and configuration together for save/load.
type Project struct {
	ID      string         `json:"id" yaml:"id"`
	Name    string         `json:"name" yaml:"name"`
	Config  Config         `json:"config" yaml:"config"`
	Demands []PieceDemand  `json:"demands" yaml:"demands"`
	Results []LayoutResult `json:"results,omitempty" yaml:"-"`
}

func NewProject(name string) Project {
	return Project{
		ID:      uuid.New().String()[:8],
		Name:    name,
		Config:  DefaultConfig(),
		Demands: []PieceDemand{},
	}
}
