package models

// Window represents a bounded, offset slice of a sheet's rows.
type Window struct {
	// Sheet is the sheet the rows were read from.
	Sheet string `json:"sheet"`
	// Offset is the number of leading rows skipped.
	Offset int `json:"offset"`
	// Count is the number of rows requested; negative reads to the end.
	Count int `json:"count"`
	// Width is the column count every row is padded to.
	Width int `json:"width"`
	// DataRange bounds the non-empty cells of Rows (e.g., "A6:C15").
	DataRange string `json:"data_range,omitempty"`
	// Rows contains the rows read, in sheet order.
	Rows []Row `json:"rows"`
}

// FirstRow returns the 1-based number of the first requested row.
func (w Window) FirstRow() int {
	return w.Offset + 1
}

// LastRow returns the 1-based number of the last requested row. A window
// read to the end of the sheet reports the last row read, or 0 when empty.
func (w Window) LastRow() int {
	if w.Count >= 0 {
		return w.Offset + w.Count
	}
	if n := len(w.Rows); n > 0 {
		return w.Rows[n-1].Number
	}
	return 0
}
