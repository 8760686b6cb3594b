// Package models defines data structures for spreadsheet inspection.
package models

// Row represents a single sheet row as trimmed cell strings.
type Row struct {
	// Number is the row index in the sheet (1-based).
	Number int `json:"number"`
	// Values holds one string per column; missing cells are "".
	Values []string `json:"values"`
}

// IsEmpty reports whether every value in the row is blank.
func (r Row) IsEmpty() bool {
	for _, v := range r.Values {
		if v != "" {
			return false
		}
	}
	return true
}
