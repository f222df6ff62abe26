package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/budomari/internal/model"
)

func TestExportLabels_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "labels.pdf")

	err := ExportLabels(path, buildTestResult())
	if err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportLabels_EmptyResult(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.pdf")

	err := ExportLabels(path, model.LayoutResult{})
	if err == nil {
		t.Fatal("expected error for empty result, got nil")
	}
}

func TestExportLabels_NoPlacements(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "no_placements.pdf")

	result := model.LayoutResult{Sheets: []model.Sheet{{}}}
	err := ExportLabels(path, result)
	if err == nil {
		t.Fatal("expected error for result with no placements, got nil")
	}
}

func TestCollectLabelInfos(t *testing.T) {
	labels := CollectLabelInfos(buildTestResult(), "abcd1234")

	if len(labels) != 4 {
		t.Fatalf("expected 4 labels, got %d", len(labels))
	}

	if labels[0].Label != "Side Panel" {
		t.Errorf("expected first label to be 'Side Panel', got %q", labels[0].Label)
	}
	if labels[0].Width != 600 || labels[0].Height != 400 {
		t.Errorf("wrong dimensions: got %.0fx%.0f, want 600x400", labels[0].Width, labels[0].Height)
	}
	if labels[0].SheetIndex != 1 {
		t.Errorf("expected sheet index 1, got %d", labels[0].SheetIndex)
	}
	if labels[0].Rotated {
		t.Error("expected first label not rotated")
	}

	if !labels[2].Rotated {
		t.Error("expected third label to be rotated")
	}

	if labels[3].SheetIndex != 2 || labels[3].PieceID != 3 {
		t.Errorf("expected piece 3 on sheet 2, got piece %d on sheet %d", labels[3].PieceID, labels[3].SheetIndex)
	}

	for _, l := range labels {
		if l.RunID != "abcd1234" {
			t.Errorf("piece %d: run id %q, want abcd1234", l.PieceID, l.RunID)
		}
	}
}

func TestLabelInfo_QRPayload(t *testing.T) {
	info := LabelInfo{
		RunID:      "abcd1234",
		PieceID:    7,
		Label:      "Test Part",
		Width:      300,
		Height:     200,
		SheetIndex: 1,
		Rotated:    true,
		X:          50,
		Y:          100,
	}

	data, err := json.Marshal(info)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	for _, key := range []string{"run", "piece", "label", "width_mm", "height_mm", "sheet", "rotated", "x_mm", "y_mm"} {
		if _, ok := payload[key]; !ok {
			t.Errorf("QR payload is missing %q: %s", key, data)
		}
	}
}

func TestExportLabels_ManyPieces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "many_labels.pdf")

	// 35 pieces spill onto a second label page
	placed := make([]model.PlacedPiece, 35)
	for i := range placed {
		placed[i] = model.PlacedPiece{
			PieceID: i,
			Label:   fmt.Sprintf("Part %d", i),
			X:       float64(i * 50),
			Width:   45,
			Height:  50 + float64(i*5),
		}
	}

	result := model.LayoutResult{
		Config: model.Config{SheetWidth: 2400, SheetHeight: 1200},
		Sheets: []model.Sheet{{Placed: placed}},
	}

	if err := ExportLabels(path, result); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
}
