package models

// SheetInfo describes one sheet of a workbook.
type SheetInfo struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Index is the sheet position in the workbook (0-based).
	Index int `json:"index"`
	// Active is true for the sheet selected when the workbook was saved.
	Active bool `json:"active"`
	// Visible is false for hidden and very hidden sheets.
	Visible bool `json:"visible"`
	// Dimension is the used range (e.g., "A1:F20") when the format records it.
	Dimension string `json:"dimension,omitempty"`
	// PrintAreas lists user-defined print ranges (e.g., "A1:D40").
	PrintAreas []string `json:"print_areas,omitempty"`
}

// WorkbookInfo represents workbook-level metadata.
type WorkbookInfo struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Format is the detected file format (xlsx, xls).
	Format string `json:"format"`
	// Sheets lists the sheets in workbook order.
	Sheets []SheetInfo `json:"sheets"`
}
