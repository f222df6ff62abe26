// Package export writes cutting plans to PDF, DXF, Excel and label sheets.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/budomari/internal/model"
)

// pieceColor represents an RGB color for a placed piece.
type pieceColor struct {
	R, G, B int
}

var pieceColors = []pieceColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF writes one page per sheet with the piece layout and the
// full-span cut lines, followed by a summary page.
func ExportPDF(path string, result model.LayoutResult) error {
	if len(result.Sheets) == 0 {
		return fmt.Errorf("no sheets to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.SetTitle(fmt.Sprintf("Cutting plan (%s)", result.Objective.Title()), true)

	for i, sheet := range result.Sheets {
		pdf.AddPage()
		renderSheetPage(pdf, sheet, result.Config, i+1, len(result.Sheets))
	}

	pdf.AddPage()
	renderSummaryPage(pdf, result)

	return pdf.OutputFileAndClose(path)
}

// sheetTransform maps sheet millimetres to page millimetres. Sheet
// coordinates grow upwards from the lower-left corner, page coordinates
// grow downwards.
type sheetTransform struct {
	scale            float64
	offsetX, offsetY float64
	sheetH           float64
}

func (t sheetTransform) rect(x, y, w, h float64) (float64, float64, float64, float64) {
	return t.offsetX + x*t.scale, t.offsetY + (t.sheetH-y-h)*t.scale, w * t.scale, h * t.scale
}

func (t sheetTransform) point(x, y float64) (float64, float64) {
	return t.offsetX + x*t.scale, t.offsetY + (t.sheetH-y)*t.scale
}

func renderSheetPage(pdf *fpdf.Fpdf, sheet model.Sheet, cfg model.Config, sheetNum, sheetCount int) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Sheet %d of %d (%.0f x %.0f mm)", sheetNum, sheetCount, cfg.SheetWidth, cfg.SheetHeight)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	effArea := cfg.EffectiveArea()
	efficiency := 0.0
	if effArea > 0 {
		efficiency = sheet.UsedArea() / effArea * 100
	}
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Pieces: %d | Cuts: %d | Used area: %.0f mm2 | Yield: %.1f%% | Kerf: %.1f mm | Margin: %.1f mm",
		len(sheet.Placed), len(sheet.FullCuts), sheet.UsedArea(), efficiency, cfg.Kerf, cfg.EdgeMargin)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight
	scale := math.Min(drawWidth/cfg.SheetWidth, drawHeight/cfg.SheetHeight)
	canvasW := cfg.SheetWidth * scale
	canvasH := cfg.SheetHeight * scale

	t := sheetTransform{
		scale:   scale,
		offsetX: marginLeft + (drawWidth-canvasW)/2,
		offsetY: drawAreaTop,
		sheetH:  cfg.SheetHeight,
	}

	// Sheet with the trimmed margin shaded.
	pdf.SetFillColor(190, 160, 120)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(t.offsetX, t.offsetY, canvasW, canvasH, "FD")
	in := cfg.Interior()
	ix, iy, iw, ih := t.rect(in.X, in.Y, in.Width, in.Height)
	pdf.SetFillColor(222, 196, 160)
	pdf.SetLineWidth(0.2)
	pdf.Rect(ix, iy, iw, ih, "FD")

	for _, p := range sheet.Placed {
		col := pieceColors[p.PieceID%len(pieceColors)]
		px, py, pw, ph := t.rect(p.X, p.Y, p.Width, p.Height)

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(px, py, pw, ph, "FD")

		if pw > 15 && ph > 8 {
			pdf.SetFont("Helvetica", "", labelFontSize(pw, ph))
			pdf.SetTextColor(0, 0, 0)

			label := pieceLabel(p)
			dims := fmt.Sprintf("%.0fx%.0f", p.Width, p.Height)
			labelW := pdf.GetStringWidth(label)
			dimsW := pdf.GetStringWidth(dims)

			if labelW < pw-2 {
				pdf.SetXY(px+(pw-labelW)/2, py+ph/2-4)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}
			if ph > 14 && dimsW < pw-2 {
				pdf.SetXY(px+(pw-dimsW)/2, py+ph/2)
				pdf.CellFormat(dimsW, 4, dims, "", 0, "C", false, 0, "")
			}
		}
	}

	drawCutLines(pdf, sheet.FullCuts, t)
	drawDimensionAnnotations(pdf, cfg, t.offsetX, t.offsetY, canvasW, canvasH)
	drawPiecesLegend(pdf, sheet, t.offsetY+canvasH+5)
}

// drawCutLines draws the full-span cuts as dashed red lines.
func drawCutLines(pdf *fpdf.Fpdf, cuts []model.CutLine, t sheetTransform) {
	if len(cuts) == 0 {
		return
	}
	pdf.SetDrawColor(200, 0, 0)
	pdf.SetLineWidth(0.25)
	pdf.SetDashPattern([]float64{1.5, 1}, 0)
	for _, c := range cuts {
		x1, y1 := t.point(c.X1, c.Y1)
		x2, y2 := t.point(c.X2, c.Y2)
		pdf.Line(x1, y1, x2, y2)
	}
	pdf.SetDashPattern([]float64{}, 0)
}

func drawDimensionAnnotations(pdf *fpdf.Fpdf, cfg model.Config, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	widthLabel := fmt.Sprintf("%.0f mm", cfg.SheetWidth)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	heightLabel := fmt.Sprintf("%.0f mm", cfg.SheetHeight)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

func drawPiecesLegend(pdf *fpdf.Fpdf, sheet model.Sheet, startY float64) {
	if len(sheet.Placed) == 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Pieces placed:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	maxX := pageWidth - marginRight

	for _, p := range sheet.Placed {
		col := pieceColors[p.PieceID%len(pieceColors)]
		label := fmt.Sprintf("%s (%.0fx%.0f)", pieceLabel(p), p.Width, p.Height)
		if p.Rotated {
			label += " R"
		}
		labelW := pdf.GetStringWidth(label) + 6

		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")
		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}
}

func renderSummaryPage(pdf *fpdf.Fpdf, result model.LayoutResult) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Cutting Plan Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Overall Statistics", "", 0, "L", false, 0, "")
	y += 9

	summaryItems := []struct {
		label string
		value string
	}{
		{"Objective", result.Objective.Title()},
		{"Strategy", result.Strategy},
		{"Total Sheets Used", fmt.Sprintf("%d", len(result.Sheets))},
		{"Total Pieces Placed", fmt.Sprintf("%d", result.PieceCount())},
		{"Yield", fmt.Sprintf("%.1f%%", result.YieldRatio*100)},
		{"Waste Area", fmt.Sprintf("%.0f mm2", result.WasteArea)},
		{"Cut Count", fmt.Sprintf("%d", result.CutCount)},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(60, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Sheet Breakdown", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{20, 50, 30, 30, 40, 60}
	headers := []string{"Sheet", "Dimensions", "Pieces", "Cuts", "Yield", "Used Area"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	effArea := result.Config.EffectiveArea()
	pdf.SetFont("Helvetica", "", 9)
	for i, sheet := range result.Sheets {
		// Long plans continue on a new page.
		if y > pageHeight-marginBottom-30 {
			pdf.AddPage()
			y = marginTop
		}

		yield := 0.0
		if effArea > 0 {
			yield = sheet.UsedArea() / effArea * 100
		}
		rowData := []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%.0f x %.0f mm", result.Config.SheetWidth, result.Config.SheetHeight),
			fmt.Sprintf("%d", len(sheet.Placed)),
			fmt.Sprintf("%d", len(sheet.FullCuts)),
			fmt.Sprintf("%.1f%%", yield),
			fmt.Sprintf("%.0f mm2", sheet.UsedArea()),
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		xPos = marginLeft
		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	if !result.Valid() {
		y += 8
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		d := result.Diagnostics
		msg := fmt.Sprintf("WARNING: layout failed validation (overlaps %d, vertical crossings %d, horizontal crossings %d)",
			d.Overlaps, d.VerticalCrossings, d.HorizontalCrossings)
		pdf.CellFormat(250, 7, msg, "", 0, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by budomari - guillotine cutting planner", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// pieceLabel falls back to the piece id for unlabelled pieces.
func pieceLabel(p model.PlacedPiece) string {
	if p.Label != "" {
		return p.Label
	}
	return fmt.Sprintf("#%d", p.PieceID)
}

func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}
