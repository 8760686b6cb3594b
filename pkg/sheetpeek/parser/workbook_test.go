package parser

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
)

// writeFixture saves a workbook with a gap on row 3 and a sparse row 5.
func writeFixture(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "  Cliente ")
	f.SetCellValue(sheetName, "B1", "Cantidad")
	f.SetCellValue(sheetName, "A2", "pizza")
	f.SetCellValue(sheetName, "B2", 10)
	f.SetCellValue(sheetName, "A4", "empanada")
	f.SetCellValue(sheetName, "C5", "nota")

	if _, err := f.NewSheet("Oculta"); err != nil {
		t.Fatalf("Failed to add sheet: %v", err)
	}
	f.SetCellValue("Oculta", "A1", "secret")
	if err := f.SetSheetVisible("Oculta", false); err != nil {
		t.Fatalf("Failed to hide sheet: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "pedidos.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return tmpFile
}

func rowValues(t *testing.T, wb Workbook, offset, limit int) map[int][]string {
	t.Helper()
	return sheetRowValues(t, wb, "Sheet1", offset, limit)
}

func sheetRowValues(t *testing.T, wb Workbook, sheet string, offset, limit int) map[int][]string {
	t.Helper()
	rows, err := wb.ReadRows(sheet, offset, limit)
	if err != nil {
		t.Fatalf("ReadRows(%d, %d) failed: %v", offset, limit, err)
	}
	out := make(map[int][]string, len(rows))
	for _, r := range rows {
		out[r.Number] = r.Values
	}
	return out
}

func TestReadRows(t *testing.T) {
	path := writeFixture(t)

	for _, engine := range []Engine{EngineExcelize, EngineStream} {
		t.Run(string(engine), func(t *testing.T) {
			wb, err := Open(path, engine)
			if err != nil {
				t.Fatalf("Open failed: %v", err)
			}
			defer wb.Close()

			all := rowValues(t, wb, 0, 20)
			expected := map[int][]string{
				1: {"Cliente", "Cantidad"},
				2: {"pizza", "10"},
				3: {},
				4: {"empanada"},
				5: {"", "", "nota"},
			}
			if !reflect.DeepEqual(all, expected) {
				t.Errorf("rows 1-20 = %q, expected %q", all, expected)
			}

			window := rowValues(t, wb, 1, 2)
			if len(window) != 2 || window[2] == nil || window[3] == nil {
				t.Errorf("rows 2-3 = %q, expected rows 2 and 3", window)
			}

			gap := rowValues(t, wb, 2, 1)
			if v, ok := gap[3]; !ok || len(v) != 0 || len(gap) != 1 {
				t.Errorf("rows 3-3 = %q, expected a single empty row 3", gap)
			}

			tail := rowValues(t, wb, 4, 0)
			if len(tail) != 1 || tail[5] == nil {
				t.Errorf("rows 5- = %q, expected only row 5", tail)
			}
		})
	}
}

func TestSheets(t *testing.T) {
	path := writeFixture(t)

	wb, err := Open(path, EngineExcelize)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer wb.Close()

	sheets, err := wb.Sheets()
	if err != nil {
		t.Fatalf("Sheets failed: %v", err)
	}
	if len(sheets) != 2 {
		t.Fatalf("Expected 2 sheets, got %d", len(sheets))
	}
	if sheets[0].Name != "Sheet1" || !sheets[0].Active || !sheets[0].Visible {
		t.Errorf("Unexpected first sheet: %+v", sheets[0])
	}
	if sheets[1].Name != "Oculta" || sheets[1].Visible {
		t.Errorf("Expected hidden second sheet, got %+v", sheets[1])
	}
	if wb.ActiveSheet() != "Sheet1" {
		t.Errorf("ActiveSheet = %q, expected Sheet1", wb.ActiveSheet())
	}
}

// testdata/pedidos.xls is a BIFF8 workbook: sheet "Pedidos" has a padded
// header cell and a trailing blank on row 1, no record for row 3, and numbers
// in column A and C; sheet "Vacia" has no rows.
func TestReadRowsXLS(t *testing.T) {
	wb, err := Open(filepath.Join("testdata", "pedidos.xls"), EngineExcelize)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer wb.Close()

	if wb.Format() != FormatXLS {
		t.Errorf("Format = %q, expected %q", wb.Format(), FormatXLS)
	}

	tests := []struct {
		name     string
		sheet    string
		offset   int
		limit    int
		expected map[int][]string
	}{
		{
			name:  "whole sheet",
			sheet: "Pedidos",
			expected: map[int][]string{
				1: {"Codigo", "Producto", "Cantidad"},
				2: {"101", "Pizza", "2"},
				3: {},
				4: {"102", "Empanada", "12.5"},
			},
		},
		{
			name:   "window over the missing row",
			sheet:  "Pedidos",
			offset: 1,
			limit:  2,
			expected: map[int][]string{
				2: {"101", "Pizza", "2"},
				3: {},
			},
		},
		{
			name:   "limit past the end",
			sheet:  "Pedidos",
			offset: 3,
			limit:  10,
			expected: map[int][]string{
				4: {"102", "Empanada", "12.5"},
			},
		},
		{
			name:     "offset past the end",
			sheet:    "Pedidos",
			offset:   10,
			limit:    5,
			expected: map[int][]string{},
		},
		{
			name:     "empty sheet",
			sheet:    "Vacia",
			expected: map[int][]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := sheetRowValues(t, wb, tt.sheet, tt.offset, tt.limit)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("ReadRows(%q, %d, %d) = %q, expected %q", tt.sheet, tt.offset, tt.limit, result, tt.expected)
			}
		})
	}

	if _, err := wb.ReadRows("Missing", 0, 0); err == nil {
		t.Error("ReadRows succeeded on an unknown sheet")
	}
}

func TestSheetsXLS(t *testing.T) {
	wb, err := Open(filepath.Join("testdata", "pedidos.xls"), EngineExcelize)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer wb.Close()

	sheets, err := wb.Sheets()
	if err != nil {
		t.Fatalf("Sheets failed: %v", err)
	}
	var names []string
	for _, s := range sheets {
		names = append(names, s.Name)
	}
	if !reflect.DeepEqual(names, []string{"Pedidos", "Vacia"}) {
		t.Errorf("sheet names = %q, expected [Pedidos Vacia]", names)
	}
	if !sheets[0].Active || sheets[1].Active {
		t.Errorf("expected only the first sheet active, got %+v", sheets)
	}
	if wb.ActiveSheet() != "Pedidos" {
		t.Errorf("ActiveSheet = %q, expected Pedidos", wb.ActiveSheet())
	}
}

func TestOpenCorruptFile(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "broken.xlsx")
	if err := os.WriteFile(tmpFile, []byte("this is not a zip archive"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	for _, engine := range []Engine{EngineExcelize, EngineStream} {
		if wb, err := Open(tmpFile, engine); err == nil {
			wb.Close()
			t.Errorf("Open(%s) succeeded on a corrupt file", engine)
		}
	}
}

func TestOpenCorruptXLS(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "broken.xls")
	if err := os.WriteFile(tmpFile, []byte("not an OLE2 compound document"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if wb, err := Open(tmpFile, EngineExcelize); err == nil {
		wb.Close()
		t.Error("Open succeeded on a corrupt xls file")
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path     string
		expected string
		err      error
	}{
		{"a/b/Cliente-5475.xlsx", FormatXLSX, nil},
		{"REPORT.XLSM", FormatXLSX, nil},
		{"legacy.xls", FormatXLS, nil},
		{"data.csv", "", ErrUnsupportedFormat},
		{"noext", "", ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		result, err := DetectFormat(tt.path)
		if result != tt.expected || !errors.Is(err, tt.err) {
			t.Errorf("DetectFormat(%q) = %q, %v, expected %q, %v", tt.path, result, err, tt.expected, tt.err)
		}
	}
}

func TestParseEngine(t *testing.T) {
	tests := []struct {
		input    string
		expected Engine
		wantErr  bool
	}{
		{"", EngineExcelize, false},
		{"excelize", EngineExcelize, false},
		{" Stream ", EngineStream, false},
		{"pandas", "", true},
	}

	for _, tt := range tests {
		result, err := ParseEngine(tt.input)
		if result != tt.expected || (err != nil) != tt.wantErr {
			t.Errorf("ParseEngine(%q) = %q, %v, expected %q (error: %v)", tt.input, result, err, tt.expected, tt.wantErr)
		}
	}
}
