package export

import (
	"fmt"

	"github.com/piwi3910/budomari/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
)

// DXF layer names written by ExportDXF.
const (
	LayerSheet  = "SHEET"
	LayerMargin = "MARGIN"
	LayerPieces = "PIECES"
	LayerCuts   = "CUTS"
)

// dxfSheetGap is the spacing in mm between sheets laid out along X.
const dxfSheetGap = 100.0

// ExportDXF writes every sheet of the layout into one DXF drawing. Sheets
// are placed left to right with a fixed gap, each with its outline, the
// trimmed interior, the piece rectangles and the full-span cut lines on
// separate layers.
func ExportDXF(path string, result model.LayoutResult) error {
	if len(result.Sheets) == 0 {
		return fmt.Errorf("no sheets to export")
	}

	d := dxf.NewDrawing()
	layers := []struct {
		name string
		cl   color.ColorNumber
	}{
		{LayerSheet, color.White},
		{LayerMargin, color.Cyan},
		{LayerPieces, color.Green},
		{LayerCuts, color.Red},
	}
	for _, l := range layers {
		if _, err := d.AddLayer(l.name, l.cl, dxf.DefaultLineType, false); err != nil {
			return fmt.Errorf("failed to add layer %s: %w", l.name, err)
		}
	}

	cfg := result.Config
	for i, sheet := range result.Sheets {
		offsetX := float64(i) * (cfg.SheetWidth + dxfSheetGap)
		if err := writeSheetDXF(d, sheet, cfg, offsetX); err != nil {
			return fmt.Errorf("sheet %d: %w", i+1, err)
		}
	}

	return d.SaveAs(path)
}

func writeSheetDXF(d *drawing.Drawing, sheet model.Sheet, cfg model.Config, offsetX float64) error {
	if err := d.ChangeLayer(LayerSheet); err != nil {
		return err
	}
	if err := dxfRect(d, offsetX, 0, cfg.SheetWidth, cfg.SheetHeight); err != nil {
		return err
	}

	if cfg.EdgeMargin > 0 {
		if err := d.ChangeLayer(LayerMargin); err != nil {
			return err
		}
		in := cfg.Interior()
		if err := dxfRect(d, offsetX+in.X, in.Y, in.Width, in.Height); err != nil {
			return err
		}
	}

	if err := d.ChangeLayer(LayerPieces); err != nil {
		return err
	}
	for _, p := range sheet.Placed {
		if err := dxfRect(d, offsetX+p.X, p.Y, p.Width, p.Height); err != nil {
			return err
		}
	}

	if err := d.ChangeLayer(LayerCuts); err != nil {
		return err
	}
	for _, c := range sheet.FullCuts {
		if _, err := d.Line(offsetX+c.X1, c.Y1, 0, offsetX+c.X2, c.Y2, 0); err != nil {
			return err
		}
	}
	return nil
}

// dxfRect draws an axis-aligned rectangle as four LINE entities.
func dxfRect(d *drawing.Drawing, x, y, w, h float64) error {
	corners := [][2]float64{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
	for i := range corners {
		a, b := corners[i], corners[(i+1)%len(corners)]
		if _, err := d.Line(a[0], a[1], 0, b[0], b[1], 0); err != nil {
			return err
		}
	}
	return nil
}
