package export

import (
	"fmt"

	"github.com/piwi3910/budomari/internal/model"
	"github.com/xuri/excelize/v2"
)

// Workbook sheet names written by ExportXLSX.
const (
	xlsxSummarySheet = "Summary"
	xlsxPiecesSheet  = "Pieces"
	xlsxCutsSheet    = "Cuts"
)

var (
	xlsxPieceHeader = []any{"Sheet", "Piece", "Label", "X (mm)", "Y (mm)", "Width (mm)", "Height (mm)", "Rotated"}
	xlsxCutHeader   = []any{"Sheet", "Direction", "X1 (mm)", "Y1 (mm)", "X2 (mm)", "Y2 (mm)", "Length (mm)"}
)

// ExportXLSX writes the layout as a workbook with a summary sheet, one row
// per placed piece and one row per full-span cut.
func ExportXLSX(path string, result model.LayoutResult) error {
	if len(result.Sheets) == 0 {
		return fmt.Errorf("no sheets to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSummarySheet); err != nil {
		return err
	}
	if err := writeSummaryRows(f, result); err != nil {
		return fmt.Errorf("summary: %w", err)
	}

	if _, err := f.NewSheet(xlsxPiecesSheet); err != nil {
		return err
	}
	rows := [][]any{xlsxPieceHeader}
	for i, s := range result.Sheets {
		for _, p := range s.Placed {
			rows = append(rows, []any{i + 1, p.PieceID, p.Label, p.X, p.Y, p.Width, p.Height, p.Rotated})
		}
	}
	if err := writeRows(f, xlsxPiecesSheet, rows); err != nil {
		return fmt.Errorf("pieces: %w", err)
	}

	if _, err := f.NewSheet(xlsxCutsSheet); err != nil {
		return err
	}
	rows = [][]any{xlsxCutHeader}
	for i, s := range result.Sheets {
		for _, c := range s.FullCuts {
			dir := "horizontal"
			if c.Vertical() {
				dir = "vertical"
			}
			rows = append(rows, []any{i + 1, dir, c.X1, c.Y1, c.X2, c.Y2, c.Length()})
		}
	}
	if err := writeRows(f, xlsxCutsSheet, rows); err != nil {
		return fmt.Errorf("cuts: %w", err)
	}

	return f.SaveAs(path)
}

func writeSummaryRows(f *excelize.File, result model.LayoutResult) error {
	cfg := result.Config
	rows := [][]any{
		{"Objective", result.Objective.Title()},
		{"Strategy", result.Strategy},
		{"Sheet size (mm)", fmt.Sprintf("%.0f x %.0f", cfg.SheetWidth, cfg.SheetHeight)},
		{"Kerf (mm)", cfg.Kerf},
		{"Edge margin (mm)", cfg.EdgeMargin},
		{"Sheets used", len(result.Sheets)},
		{"Pieces placed", result.PieceCount()},
		{"Used area (mm2)", result.UsedArea},
		{"Waste area (mm2)", result.WasteArea},
		{"Yield", result.YieldRatio},
		{"Cuts", result.CutCount},
		{"Valid", result.Valid()},
	}
	if err := writeRows(f, xlsxSummarySheet, rows); err != nil {
		return err
	}
	return f.SetColWidth(xlsxSummarySheet, "A", "A", 20)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
