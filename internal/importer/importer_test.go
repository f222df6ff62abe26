package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// ─── DetectCSVDelimiter Tests ──────────────────────────────

func TestDetectCSVDelimiter_Comma(t *testing.T) {
	data := []byte("Label,Width,Height,Qty\nShelf,600,300,2\nDoor,400,800,1\n")
	got := DetectCSVDelimiter(data)
	if got != ',' {
		t.Errorf("expected comma delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Semicolon(t *testing.T) {
	data := []byte("Label;Width;Height;Qty\nShelf;600;300;2\nDoor;400;800;1\n")
	got := DetectCSVDelimiter(data)
	if got != ';' {
		t.Errorf("expected semicolon delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Tab(t *testing.T) {
	data := []byte("Label\tWidth\tHeight\tQty\nShelf\t600\t300\t2\nDoor\t400\t800\t1\n")
	got := DetectCSVDelimiter(data)
	if got != '\t' {
		t.Errorf("expected tab delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Pipe(t *testing.T) {
	data := []byte("Label|Width|Height|Qty\nShelf|600|300|2\nDoor|400|800|1\n")
	got := DetectCSVDelimiter(data)
	if got != '|' {
		t.Errorf("expected pipe delimiter, got %q", got)
	}
}

// ─── DetectColumns Tests ───────────────────────────────────

func TestDetectColumns_StandardHeaders(t *testing.T) {
	row := []string{"Label", "Width", "Height", "Quantity", "Note"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Label != 0 {
		t.Errorf("expected Label at 0, got %d", mapping.Label)
	}
	if mapping.Width != 1 {
		t.Errorf("expected Width at 1, got %d", mapping.Width)
	}
	if mapping.Height != 2 {
		t.Errorf("expected Height at 2, got %d", mapping.Height)
	}
	if mapping.Quantity != 3 {
		t.Errorf("expected Quantity at 3, got %d", mapping.Quantity)
	}
}

func TestDetectColumns_CaseInsensitive(t *testing.T) {
	row := []string{"NAME", "WIDTH", "HEIGHT", "QTY"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Label != 0 {
		t.Errorf("expected Label at 0, got %d", mapping.Label)
	}
	if mapping.Width != 1 {
		t.Errorf("expected Width at 1, got %d", mapping.Width)
	}
}

func TestDetectColumns_AlternativeNames(t *testing.T) {
	row := []string{"Part Name", "W", "H", "Pcs"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Label != 0 {
		t.Errorf("expected Label at 0, got %d", mapping.Label)
	}
	if mapping.Width != 1 {
		t.Errorf("expected Width at 1, got %d", mapping.Width)
	}
	if mapping.Height != 2 {
		t.Errorf("expected Height at 2, got %d", mapping.Height)
	}
	if mapping.Quantity != 3 {
		t.Errorf("expected Quantity at 3, got %d", mapping.Quantity)
	}
}

func TestDetectColumns_ReorderedColumns(t *testing.T) {
	row := []string{"Qty", "Height", "Width", "Label"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Quantity != 0 {
		t.Errorf("expected Quantity at 0, got %d", mapping.Quantity)
	}
	if mapping.Height != 1 {
		t.Errorf("expected Height at 1, got %d", mapping.Height)
	}
	if mapping.Width != 2 {
		t.Errorf("expected Width at 2, got %d", mapping.Width)
	}
	if mapping.Label != 3 {
		t.Errorf("expected Label at 3, got %d", mapping.Label)
	}
}

func TestDetectColumns_NoHeader(t *testing.T) {
	row := []string{"Shelf", "600", "300", "2"}
	mapping, isHeader := DetectColumns(row)

	if isHeader {
		t.Error("expected no header detection for numeric data")
	}
	// Should fall back to positional
	if mapping.Label != 0 || mapping.Width != 1 || mapping.Height != 2 || mapping.Quantity != 3 {
		t.Errorf("expected positional mapping, got %+v", mapping)
	}
}

// ─── CSV Import Tests ──────────────────────────────────────

func TestImportCSVFromReader_WithHeaders(t *testing.T) {
	data := "Label,Width,Height,Quantity\nShelf,600,300,2\nDoor,400,800,1\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Demands) != 2 {
		t.Fatalf("expected 2 demands, got %d", len(result.Demands))
	}

	if result.Demands[0].Label != "Shelf" {
		t.Errorf("expected label 'Shelf', got '%s'", result.Demands[0].Label)
	}
	if result.Demands[0].Width != 600 {
		t.Errorf("expected width 600, got %f", result.Demands[0].Width)
	}
	if result.Demands[0].Height != 300 {
		t.Errorf("expected height 300, got %f", result.Demands[0].Height)
	}
	if result.Demands[0].Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", result.Demands[0].Quantity)
	}
	if result.Demands[1].Label != "Door" || result.Demands[1].Height != 800 {
		t.Errorf("unexpected second demand %+v", result.Demands[1])
	}
}

func TestImportCSVFromReader_WithoutHeaders(t *testing.T) {
	data := "Shelf,600,300,2\nDoor,400,800,1\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Demands) != 2 {
		t.Fatalf("expected 2 demands, got %d (errors: %v)", len(result.Demands), result.Errors)
	}
	if result.Demands[0].Label != "Shelf" {
		t.Errorf("expected label 'Shelf', got '%s'", result.Demands[0].Label)
	}
	if result.Demands[0].Width != 600 {
		t.Errorf("expected width 600, got %f", result.Demands[0].Width)
	}
}

func TestImportCSVFromReader_SemicolonDelimiter(t *testing.T) {
	data := "Label;Width;Height;Quantity\nShelf;600;300;2\n"
	result := ImportCSVFromReader(strings.NewReader(data), ';')

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Demands) != 1 {
		t.Fatalf("expected 1 demand, got %d", len(result.Demands))
	}
	if result.Demands[0].Label != "Shelf" {
		t.Errorf("expected label 'Shelf', got '%s'", result.Demands[0].Label)
	}
}

func TestImportCSVFromReader_TabDelimiter(t *testing.T) {
	data := "Label\tWidth\tHeight\tQuantity\nShelf\t600\t300\t2\n"
	result := ImportCSVFromReader(strings.NewReader(data), '\t')

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Demands) != 1 {
		t.Fatalf("expected 1 demand, got %d", len(result.Demands))
	}
}

func TestImportCSVFromReader_ReorderedColumns(t *testing.T) {
	data := "Qty,Height,Width,Name\n2,300,600,Shelf\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Demands) != 1 {
		t.Fatalf("expected 1 demand, got %d", len(result.Demands))
	}
	if result.Demands[0].Label != "Shelf" {
		t.Errorf("expected label 'Shelf', got '%s'", result.Demands[0].Label)
	}
	if result.Demands[0].Width != 600 {
		t.Errorf("expected width 600, got %f", result.Demands[0].Width)
	}
	if result.Demands[0].Height != 300 {
		t.Errorf("expected height 300, got %f", result.Demands[0].Height)
	}
	if result.Demands[0].Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", result.Demands[0].Quantity)
	}
}

func TestImportCSVFromReader_EmptyFile(t *testing.T) {
	data := ""
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) == 0 {
		t.Error("expected error for empty file")
	}
}

func TestImportCSVFromReader_InvalidWidth(t *testing.T) {
	data := "Label,Width,Height,Quantity\nShelf,abc,300,2\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) == 0 {
		t.Error("expected error for invalid width")
	}
	if len(result.Demands) != 0 {
		t.Errorf("expected 0 demands, got %d", len(result.Demands))
	}
}

func TestImportCSVFromReader_InvalidQuantity(t *testing.T) {
	data := "Label,Width,Height,Quantity\nShelf,600,300,abc\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) == 0 {
		t.Error("expected error for invalid quantity")
	}
}

func TestImportCSVFromReader_NegativeValues(t *testing.T) {
	data := "Label,Width,Height,Quantity\nShelf,-600,300,2\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) == 0 {
		t.Error("expected error for negative width")
	}
}

func TestImportCSVFromReader_ZeroQuantity(t *testing.T) {
	data := "Label,Width,Height,Quantity\nShelf,600,300,0\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) == 0 {
		t.Error("expected error for zero quantity")
	}
}

func TestImportCSVFromReader_MixedValidAndInvalid(t *testing.T) {
	data := "Label,Width,Height,Quantity\nGood,600,300,2\nBad,abc,300,2\nAlsoGood,400,200,1\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Demands) != 2 {
		t.Errorf("expected 2 valid demands, got %d", len(result.Demands))
	}
	if len(result.Errors) != 1 {
		t.Errorf("expected 1 error, got %d", len(result.Errors))
	}
}

func TestImportCSVFromReader_EmptyRows(t *testing.T) {
	data := "Label,Width,Height,Quantity\nShelf,600,300,2\n\n\nDoor,400,800,1\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Demands) != 2 {
		t.Errorf("expected 2 demands (skipping empty rows), got %d (errors: %v)", len(result.Demands), result.Errors)
	}
}

func TestImportCSVFromReader_EmptyLabel(t *testing.T) {
	data := "Label,Width,Height,Quantity\n,600,300,2\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Demands) != 1 {
		t.Fatalf("expected 1 demand, got %d", len(result.Demands))
	}
	if result.Demands[0].Label != "Piece 1" {
		t.Errorf("expected auto-generated label 'Piece 1', got '%s'", result.Demands[0].Label)
	}
}

func TestImportCSVFromReader_MissingRequiredColumnInHeader(t *testing.T) {
	data := "Label,Width,Note\nShelf,600,edge\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) == 0 {
		t.Error("expected error for missing Height and Quantity columns")
	}
	foundMissing := false
	for _, e := range result.Errors {
		if strings.Contains(e, "Required columns not found") {
			foundMissing = true
		}
	}
	if !foundMissing {
		t.Errorf("expected 'Required columns not found' error, got: %v", result.Errors)
	}
}

// ─── CSV File Import Tests ──────────────────────────────────

func TestImportCSV_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "parts.csv")
	content := "Label,Width,Height,Quantity\nShelf,600,300,2\nDoor,400,800,1\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	result := ImportCSV(path)

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Demands) != 2 {
		t.Fatalf("expected 2 demands, got %d", len(result.Demands))
	}
}

func TestImportCSV_SemicolonFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "parts.csv")
	content := "Label;Width;Height;Quantity\nShelf;600;300;2\nDoor;400;800;1\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	result := ImportCSV(path)

	if len(result.Demands) != 2 {
		t.Errorf("expected 2 demands, got %d (errors: %v)", len(result.Demands), result.Errors)
	}

	// Should have a warning about semicolon delimiter
	hasSemicolonWarning := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "semicolon") {
			hasSemicolonWarning = true
		}
	}
	if !hasSemicolonWarning {
		t.Error("expected warning about semicolon delimiter detection")
	}
}

func TestImportCSV_FileNotFound(t *testing.T) {
	result := ImportCSV("/nonexistent/path/file.csv")

	if len(result.Errors) == 0 {
		t.Error("expected error for nonexistent file")
	}
}

func TestImportCSV_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.csv")
	if err := os.WriteFile(path, []byte(""), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	result := ImportCSV(path)

	if len(result.Errors) == 0 {
		t.Error("expected error for empty file")
	}
}

// ─── Excel Import Tests ────────────────────────────────────

func createTestExcel(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "parts.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, row := range rows {
		for j, cell := range row {
			cellRef, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("failed to create cell reference: %v", err)
			}
			if err := f.SetCellValue(sheet, cellRef, cell); err != nil {
				t.Fatalf("failed to set cell value: %v", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save Excel file: %v", err)
	}
	return path
}

func TestImportExcel_WithHeaders(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Label", "Width", "Height", "Quantity"},
		{"Shelf", 600, 300, 2},
		{"Door", 400, 800, 1},
	})

	result := ImportExcel(path)

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Demands) != 2 {
		t.Fatalf("expected 2 demands, got %d", len(result.Demands))
	}

	if result.Demands[0].Label != "Shelf" {
		t.Errorf("expected 'Shelf', got '%s'", result.Demands[0].Label)
	}
	if result.Demands[0].Width != 600 {
		t.Errorf("expected width 600, got %f", result.Demands[0].Width)
	}
}

func TestImportExcel_WithoutHeaders(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Shelf", 600, 300, 2},
		{"Door", 400, 800, 1},
	})

	result := ImportExcel(path)

	if len(result.Demands) != 2 {
		t.Fatalf("expected 2 demands, got %d (errors: %v)", len(result.Demands), result.Errors)
	}
}

func TestImportExcel_ReorderedColumns(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Qty", "Name", "Height", "Width"},
		{2, "Shelf", 300, 600},
	})

	result := ImportExcel(path)

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Demands) != 1 {
		t.Fatalf("expected 1 demand, got %d", len(result.Demands))
	}
	if result.Demands[0].Label != "Shelf" {
		t.Errorf("expected 'Shelf', got '%s'", result.Demands[0].Label)
	}
	if result.Demands[0].Width != 600 {
		t.Errorf("expected width 600, got %f", result.Demands[0].Width)
	}
}

func TestImportExcel_FileNotFound(t *testing.T) {
	result := ImportExcel("/nonexistent/file.xlsx")

	if len(result.Errors) == 0 {
		t.Error("expected error for nonexistent file")
	}
}

func TestImportExcel_InvalidData(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Label", "Width", "Height", "Quantity"},
		{"Shelf", "abc", 300, 2},
	})

	result := ImportExcel(path)

	if len(result.Errors) == 0 {
		t.Error("expected error for invalid width")
	}
}

// ─── Edge Cases ────────────────────────────────────────────

func TestImportCSVFromReader_OnlyHeaders(t *testing.T) {
	data := "Label,Width,Height,Quantity\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Demands) != 0 {
		t.Errorf("expected 0 demands for header-only file, got %d", len(result.Demands))
	}
	// Should not have errors (just no data)
}

func TestImportCSVFromReader_WhitespaceInValues(t *testing.T) {
	data := "Label , Width , Height , Quantity\n Shelf , 600 , 300 , 2 \n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Demands) != 1 {
		t.Fatalf("expected 1 demand, got %d (errors: %v)", len(result.Demands), result.Errors)
	}
	if result.Demands[0].Width != 600 {
		t.Errorf("expected width 600, got %f", result.Demands[0].Width)
	}
}

func TestImportCSVFromReader_DecimalValues(t *testing.T) {
	data := "Label,Width,Height,Quantity\nShelf,600.5,300.25,2\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Demands) != 1 {
		t.Fatalf("expected 1 demand, got %d (errors: %v)", len(result.Demands), result.Errors)
	}
	if result.Demands[0].Width != 600.5 {
		t.Errorf("expected width 600.5, got %f", result.Demands[0].Width)
	}
	if result.Demands[0].Height != 300.25 {
		t.Errorf("expected height 300.25, got %f", result.Demands[0].Height)
	}
}

func TestDetectColumns_JapaneseHeaders(t *testing.T) {
	row := []string{"品名", "幅", "高さ", "枚数"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Fatal("expected header to be detected")
	}
	if mapping.Label != 0 || mapping.Width != 1 || mapping.Height != 2 || mapping.Quantity != 3 {
		t.Errorf("unexpected mapping %+v", mapping)
	}
}

func TestImportCSVFromReader_FullWidthDigits(t *testing.T) {
	data := "名称,横,縦,数量\n棚板,６００,３００．５,２\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Demands) != 1 {
		t.Fatalf("expected 1 demand, got %d (errors: %v)", len(result.Demands), result.Errors)
	}
	d := result.Demands[0]
	if d.Label != "棚板" || d.Width != 600 || d.Height != 300.5 || d.Quantity != 2 {
		t.Errorf("unexpected demand %+v", d)
	}
}

func TestParseRow_FullWidthQuantity(t *testing.T) {
	mapping := ColumnMapping{Label: 0, Width: 1, Height: 2, Quantity: 3}

	d, msg := parseRow([]string{"天板", "１２００", "６００", "１２"}, mapping, "Row 2", 0)
	if msg != "" {
		t.Fatalf("unexpected error %q", msg)
	}
	if d.Width != 1200 || d.Height != 600 || d.Quantity != 12 {
		t.Errorf("unexpected demand %+v", d)
	}

	_, msg = parseRow([]string{"天板", "１２００", "６００", "１．５"}, mapping, "Row 3", 1)
	if !strings.Contains(msg, "Invalid quantity") {
		t.Errorf("expected invalid quantity error, got %q", msg)
	}
}

func TestImportCSV_ByteOrderMark(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bom.csv")
	content := "\ufeffLabel,Width,Height,Quantity\nShelf,600,300,2\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	result := ImportCSV(path)
	if !result.OK() {
		t.Fatalf("expected clean import, got errors %v", result.Errors)
	}
	if len(result.Demands) != 1 {
		t.Errorf("expected 1 demand, got %d", len(result.Demands))
	}
}

// ─── YAML Import Tests ─────────────────────────────────────

func TestImportYAMLFromBytes_List(t *testing.T) {
	data := []byte(`
- label: Shelf
  width: 600
  height: 300
  quantity: 2
- width: 400
  height: 800
  quantity: 1
`)
	result := ImportYAMLFromBytes(data)

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Demands) != 2 {
		t.Fatalf("expected 2 demands, got %d", len(result.Demands))
	}
	if result.Demands[0].Label != "Shelf" || result.Demands[0].Quantity != 2 {
		t.Errorf("unexpected first demand %+v", result.Demands[0])
	}
	if result.Demands[1].Label != "Piece 2" {
		t.Errorf("expected generated label 'Piece 2', got '%s'", result.Demands[1].Label)
	}
}

func TestImportYAMLFromBytes_Document(t *testing.T) {
	data := []byte(`
demands:
  - {label: Door, width: 450, height: 900, quantity: 2}
  - {label: Bad, width: 0, height: 900, quantity: 1}
`)
	result := ImportYAMLFromBytes(data)

	if len(result.Demands) != 1 {
		t.Fatalf("expected 1 demand, got %d", len(result.Demands))
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "Entry 2") {
		t.Errorf("expected an error for entry 2, got %v", result.Errors)
	}
}

func TestImportYAMLFromBytes_Invalid(t *testing.T) {
	for name, data := range map[string]string{
		"empty":     "",
		"malformed": "demands: [",
		"no rows":   "demands: []",
		"wrong":     "demands: 12",
	} {
		t.Run(name, func(t *testing.T) {
			result := ImportYAMLFromBytes([]byte(data))
			if len(result.Errors) == 0 {
				t.Error("expected an error")
			}
			if result.OK() {
				t.Error("expected OK() to be false")
			}
		})
	}
}

// ─── Import dispatch Tests ─────────────────────────────────

func TestImport_ByExtension(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "cut.csv")
	if err := os.WriteFile(csvPath, []byte("Shelf,600,300,2\n"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	yamlPath := filepath.Join(dir, "cut.yaml")
	if err := os.WriteFile(yamlPath, []byte("- {width: 600, height: 300, quantity: 2}\n"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	xlsxPath := createTestExcel(t, [][]interface{}{{"Shelf", 600, 300, 2}})

	for _, path := range []string{csvPath, yamlPath, xlsxPath} {
		result := Import(path)
		if !result.OK() {
			t.Errorf("%s: unexpected errors %v", filepath.Base(path), result.Errors)
			continue
		}
		if result.Demands[0].Width != 600 || result.Demands[0].Quantity != 2 {
			t.Errorf("%s: unexpected demand %+v", filepath.Base(path), result.Demands[0])
		}
	}

	result := Import(filepath.Join(dir, "cut.dxf"))
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "Unsupported") {
		t.Errorf("expected unsupported file type error, got %v", result.Errors)
	}
}

func TestDetectColumns_FullWidthHeaders(t *testing.T) {
	mapping, ok := DetectColumns([]string{"Ｎａｍｅ", "Ｗｉｄｔｈ", "Ｈｅｉｇｈｔ", "Ｑｔｙ"})
	if !ok {
		t.Fatal("expected full-width headers to be detected")
	}
	if mapping.Label != 0 || mapping.Width != 1 || mapping.Height != 2 || mapping.Quantity != 3 {
		t.Errorf("unexpected mapping %+v", mapping)
	}
}
