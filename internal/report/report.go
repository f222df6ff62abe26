// Package report renders cutting plans as plain text for the terminal.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/piwi3910/budomari/internal/engine"
	"github.com/piwi3910/budomari/internal/model"
)

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// WritePlan writes a summary of every objective run followed by the
// placements of each sheet.
func WritePlan(w io.Writer, plan engine.Plan, cfg model.Config) error {
	rotation := "rotation allowed"
	if !cfg.AllowRotation {
		rotation = "no rotation"
	}
	fmt.Fprintf(w, "Cutting plan for %d pieces\n", len(plan.Pieces))
	fmt.Fprintf(w, "Board %g x %g mm, kerf %g mm, edge margin %g mm, %s\n",
		cfg.SheetWidth, cfg.SheetHeight, cfg.Kerf, cfg.EdgeMargin, rotation)

	for _, run := range plan.Runs {
		fmt.Fprintf(w, "\n== %s ==\n", run.Objective.Title())
		if run.Err != nil {
			fmt.Fprintf(w, "FAILED: %v\n", run.Err)
			continue
		}
		if err := writeResult(w, run.Result); err != nil {
			return err
		}
	}
	return nil
}

func writeResult(w io.Writer, res model.LayoutResult) error {
	tw := newTabWriter(w)
	fmt.Fprintf(tw, "Strategy\t%s\n", res.Strategy)
	fmt.Fprintf(tw, "Sheets\t%d\n", len(res.Sheets))
	fmt.Fprintf(tw, "Pieces\t%d\n", res.PieceCount())
	fmt.Fprintf(tw, "Used area\t%.0f mm2\n", res.UsedArea)
	fmt.Fprintf(tw, "Waste area\t%.0f mm2\n", res.WasteArea)
	fmt.Fprintf(tw, "Yield\t%.2f%%\n", res.YieldRatio*100)
	fmt.Fprintf(tw, "Cuts\t%d\n", res.CutCount)
	fmt.Fprintf(tw, "Validation\t%s\n", validation(res.Diagnostics))
	if err := tw.Flush(); err != nil {
		return err
	}

	effective := res.Config.EffectiveArea()
	for i, sheet := range res.Sheets {
		used := 0.0
		if effective > 0 {
			used = sheet.UsedArea() / effective * 100
		}
		fmt.Fprintf(w, "\nSheet %d (%s, %.1f%% used)\n", i+1, plural(len(sheet.Placed), "piece"), used)
		if err := writePlacements(w, sheet.Placed); err != nil {
			return err
		}
	}
	return nil
}

func writePlacements(w io.Writer, placed []model.PlacedPiece) error {
	tw := newTabWriter(w)
	fmt.Fprintln(tw, "Piece\tLabel\tX\tY\tWidth\tHeight\tRotated")
	for _, p := range placed {
		label := p.Label
		if label == "" {
			label = "-"
		}
		rotated := "no"
		if p.Rotated {
			rotated = "yes"
		}
		fmt.Fprintf(tw, "%d\t%s\t%g\t%g\t%g\t%g\t%s\n", p.PieceID, label, p.X, p.Y, p.Width, p.Height, rotated)
	}
	return tw.Flush()
}

// WriteComparison writes one row per what-if scenario.
func WriteComparison(w io.Writer, results []engine.ComparisonResult) error {
	tw := newTabWriter(w)
	fmt.Fprintln(tw, "Scenario\tSheets\tCuts\tWaste")
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(tw, "%s\t-\t-\terror: %v\n", r.Scenario.Name, r.Err)
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.1f%%\n", r.Scenario.Name, r.SheetsUsed, r.TotalCuts, r.WastePercent)
	}
	return tw.Flush()
}

func validation(d model.Diagnostics) string {
	if d.Valid() {
		return "ok"
	}
	return fmt.Sprintf("FAILED (%d overlaps, %d vertical crossings, %d horizontal crossings)",
		d.Overlaps, d.VerticalCrossings, d.HorizontalCrossings)
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
