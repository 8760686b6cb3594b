package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/sheetpeek/pkg/sheetpeek/models"
)

// TrimCells returns a copy of cells with surrounding whitespace removed
// and trailing blank cells dropped.
func TrimCells(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.TrimSpace(c)
	}
	return TrimTrailingEmpty(out)
}

// TrimTrailingEmpty drops blank cells at the end of a row.
func TrimTrailingEmpty(cells []string) []string {
	last := -1
	for i, c := range cells {
		if strings.TrimSpace(c) != "" {
			last = i
		}
	}
	return cells[:last+1]
}

// Width returns the widest row length.
func Width(rows []models.Row) int {
	width := 0
	for _, r := range rows {
		if len(r.Values) > width {
			width = len(r.Values)
		}
	}
	return width
}

// PadRows extends every row to width columns with empty strings.
// Rows already at least width wide are left untouched.
func PadRows(rows []models.Row, width int) {
	for i := range rows {
		if len(rows[i].Values) >= width {
			continue
		}
		padded := make([]string, width)
		copy(padded, rows[i].Values)
		rows[i].Values = padded
	}
}

// NormalizeHeaders turns a raw header row into column names.
// Names are trimmed, blank cells become "Unnamed: <col>" (0-based) and
// repeated names get ".1", ".2", ... suffixes in order of appearance.
// A suffixed name that is already taken is suffixed again, so the result
// never holds the same name twice.
func NormalizeHeaders(cells []string) []string {
	cells = TrimCells(cells)
	names := make([]string, len(cells))
	counts := make(map[string]int, len(cells))
	for i, name := range cells {
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		n := counts[name]
		for n > 0 {
			counts[name] = n + 1
			name = fmt.Sprintf("%s.%d", name, n)
			n = counts[name]
		}
		counts[name] = n + 1
		names[i] = name
	}
	return names
}
