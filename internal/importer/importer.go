// Package importer reads cut lists from CSV, Excel and YAML files. CSV input
// gets automatic delimiter detection; CSV and Excel headers are matched
// case-insensitively against English and Japanese column names.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/piwi3910/budomari/internal/model"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/width"
	"gopkg.in/yaml.v3"
)

// ImportResult holds the demands read from a file. Errors name rows that
// were skipped; Warnings describe rows or settings that were adjusted.
type ImportResult struct {
	Demands  []model.PieceDemand
	Errors   []string
	Warnings []string
}

// OK reports whether at least one demand was read and nothing failed.
func (r ImportResult) OK() bool {
	return len(r.Errors) == 0 && len(r.Demands) > 0
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Label    int
	Width    int
	Height   int
	Quantity int
}

// headerAliases maps canonical column names to their accepted aliases.
var headerAliases = map[string][]string{
	"label":    {"label", "name", "part", "part name", "description", "desc", "piece", "item", "名前", "名称", "品名", "部材"},
	"width":    {"width", "w", "length", "len", "x", "幅", "横", "巾"},
	"height":   {"height", "h", "depth", "d", "y", "高さ", "縦", "奥行"},
	"quantity": {"quantity", "qty", "count", "num", "amount", "pcs", "pieces", "数量", "枚数", "個数"},
}

// DetectCSVDelimiter determines the most likely CSV delimiter. It tries
// comma, semicolon, tab and pipe; the one producing the most consistent
// multi-column rows wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping. It
// returns false and the positional mapping Label, Width, Height, Quantity
// when no cell is a known column name.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{Label: -1, Width: -1, Height: -1, Quantity: -1}

	isHeader := false
	for i, cell := range row {
		role, ok := columnRole(cell)
		if !ok {
			continue
		}
		isHeader = true
		switch role {
		case "label":
			if mapping.Label == -1 {
				mapping.Label = i
			}
		case "width":
			if mapping.Width == -1 {
				mapping.Width = i
			}
		case "height":
			if mapping.Height == -1 {
				mapping.Height = i
			}
		case "quantity":
			if mapping.Quantity == -1 {
				mapping.Quantity = i
			}
		}
	}

	if !isHeader {
		return ColumnMapping{Label: 0, Width: 1, Height: 2, Quantity: 3}, false
	}
	return mapping, true
}

func columnRole(cell string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(width.Fold.String(strings.TrimPrefix(cell, "\ufeff"))))
	for role, aliases := range headerAliases {
		for _, alias := range aliases {
			if normalized == alias {
				return role, true
			}
		}
	}
	return "", false
}

// getCell returns the trimmed cell at idx, or "" when idx is out of range.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseNumber accepts plain decimals and full-width digits, which Japanese
// spreadsheets often contain.
func parseNumber(s string) (float64, error) {
	return strconv.ParseFloat(width.Fold.String(s), 64)
}

// parseInt is parseNumber for whole quantities.
func parseInt(s string) (int, error) {
	return strconv.Atoi(width.Fold.String(s))
}

// parseRow extracts a demand from a row using the given column mapping.
// It returns the demand and an error message when the row is unusable.
func parseRow(row []string, mapping ColumnMapping, rowLabel string, demandCount int) (model.PieceDemand, string) {
	label := getCell(row, mapping.Label)
	if label == "" {
		label = fmt.Sprintf("Piece %d", demandCount+1)
	}

	widthStr := getCell(row, mapping.Width)
	if widthStr == "" {
		return model.PieceDemand{}, fmt.Sprintf("%s: Missing width value", rowLabel)
	}
	w, err := parseNumber(widthStr)
	if err != nil {
		return model.PieceDemand{}, fmt.Sprintf("%s: Invalid width '%s'", rowLabel, widthStr)
	}

	heightStr := getCell(row, mapping.Height)
	if heightStr == "" {
		return model.PieceDemand{}, fmt.Sprintf("%s: Missing height value", rowLabel)
	}
	h, err := parseNumber(heightStr)
	if err != nil {
		return model.PieceDemand{}, fmt.Sprintf("%s: Invalid height '%s'", rowLabel, heightStr)
	}

	qtyStr := getCell(row, mapping.Quantity)
	if qtyStr == "" {
		return model.PieceDemand{}, fmt.Sprintf("%s: Missing quantity value", rowLabel)
	}
	qty, err := parseInt(qtyStr)
	if err != nil {
		return model.PieceDemand{}, fmt.Sprintf("%s: Invalid quantity '%s'", rowLabel, qtyStr)
	}

	if w <= 0 || h <= 0 || qty <= 0 {
		return model.PieceDemand{}, fmt.Sprintf("%s: Width, height, and quantity must be positive", rowLabel)
	}

	return model.NewDemand(label, w, h, qty), ""
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// Import reads a cut list, choosing the format from the file extension:
// .csv, .tsv and .txt are CSV, .xlsx/.xlsm are Excel, .yaml/.yml are YAML.
func Import(path string) ImportResult {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv", ".txt":
		return ImportCSV(path)
	case ".xlsx", ".xlsm":
		return ImportExcel(path)
	case ".yaml", ".yml":
		return ImportYAML(path)
	default:
		return ImportResult{Errors: []string{fmt.Sprintf("Unsupported file type '%s'", filepath.Ext(path))}}
	}
}

// ImportCSV imports demands from a CSV file, detecting the delimiter and
// mapping columns by header names.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", result.Warnings)
}

// ImportCSVFromReader imports demands from a CSV reader with a known
// delimiter.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", nil)
}

// ImportExcel imports demands from the first sheet of an Excel workbook.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// yamlCutList is the YAML layout: either a bare list of demands or a map
// with a "demands" key.
type yamlCutList struct {
	Demands []model.PieceDemand `yaml:"demands"`
}

// ImportYAML imports demands from a YAML file.
func ImportYAML(path string) ImportResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot open file: %v", err)}}
	}
	return ImportYAMLFromBytes(data)
}

// ImportYAMLFromBytes parses a YAML cut list. Rows with non-positive values
// are reported and skipped like CSV rows.
func ImportYAMLFromBytes(data []byte) ImportResult {
	result := ImportResult{}
	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	var demands []model.PieceDemand
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read YAML: %v", err))
		return result
	}
	if len(doc.Content) > 0 && doc.Content[0].Kind == yaml.SequenceNode {
		err := doc.Content[0].Decode(&demands)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Cannot read YAML: %v", err))
			return result
		}
	} else {
		var list yamlCutList
		if err := doc.Decode(&list); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Cannot read YAML: %v", err))
			return result
		}
		demands = list.Demands
	}

	if len(demands) == 0 {
		result.Errors = append(result.Errors, "No demands found")
		return result
	}

	for i, d := range demands {
		if d.Width <= 0 || d.Height <= 0 || d.Quantity <= 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Entry %d: Width, height, and quantity must be positive", i+1))
			continue
		}
		if d.Label == "" {
			d.Label = fmt.Sprintf("Piece %d", len(result.Demands)+1)
		}
		result.Demands = append(result.Demands, d)
	}
	return result
}

// importFromRows is the shared import logic for CSV and Excel data.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		missing := []string{}
		if mapping.Width == -1 {
			missing = append(missing, "Width")
		}
		if mapping.Height == -1 {
			missing = append(missing, "Height")
		}
		if mapping.Quantity == -1 {
			missing = append(missing, "Quantity")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else if len(rows[0]) >= 3 {
		// An unrecognized header still has a non-numeric width cell.
		if _, err := parseNumber(strings.TrimSpace(rows[0][1])); err != nil {
			startRow = 1
			result.Warnings = append(result.Warnings, "Detected header row, skipping")
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		demand, errMsg := parseRow(row, mapping, rowLabel, len(result.Demands))
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		result.Demands = append(result.Demands, demand)
	}

	return result
}
