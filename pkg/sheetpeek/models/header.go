package models

// HeaderSet represents the column names detected on a header row.
type HeaderSet struct {
	// Sheet is the sheet the header row belongs to.
	Sheet string `json:"sheet"`
	// Row is the header row index (1-based).
	Row int `json:"row"`
	// Names are the trimmed column names in column order.
	Names []string `json:"names"`
}
