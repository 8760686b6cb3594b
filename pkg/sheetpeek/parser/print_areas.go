package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// printAreaName is the defined name Excel uses for print areas.
const printAreaName = "_xlnm.Print_Area"

// workbookScope is the scope excelize reports for names not bound to a sheet.
const workbookScope = "Workbook"

// extractPrintAreas returns the print areas of a workbook keyed by sheet.
func extractPrintAreas(f *excelize.File) map[string][]string {
	result := make(map[string][]string)
	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, printAreaName) {
			continue
		}
		sheetName, areas := parsePrintAreaReference(dn.RefersTo)
		if sheetName == "" && dn.Scope != workbookScope {
			sheetName = dn.Scope
		}
		if sheetName != "" && len(areas) > 0 {
			result[sheetName] = append(result[sheetName], areas...)
		}
	}
	return result
}

// parsePrintAreaReference parses a print area reference string.
// Format: 'SheetName'!$A$1:$D$10, SheetName!$A$1:$D$10 or a bare $A$1:$D$10,
// comma separated. A bare range leaves the sheet name empty.
func parsePrintAreaReference(ref string) (string, []string) {
	var areas []string
	var sheetName string

	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		idx := strings.LastIndex(part, "!")

		if idx >= 0 && sheetName == "" {
			sheetName = strings.Trim(part[:idx], "'")
		}
		if area := normalizeRange(part[idx+1:]); area != "" {
			areas = append(areas, area)
		}
	}

	return sheetName, areas
}

// normalizeRange strips absolute markers and validates a "A1:D10" range.
func normalizeRange(rangeStr string) string {
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return ""
	}
	for _, cell := range parts {
		if _, _, err := excelize.CellNameToCoordinates(cell); err != nil {
			return ""
		}
	}
	return rangeStr
}
