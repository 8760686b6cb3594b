// Package sheetpeek inspects the layout of a single spreadsheet file:
// detected headers, a preview of raw rows and arbitrary row windows.
package sheetpeek

import "github.com/ukaji3/sheetpeek/pkg/sheetpeek/parser"

const (
	// DefaultPreviewCount is the number of rows Preview reads.
	DefaultPreviewCount = 20
	// DefaultWindowOffset is the number of rows Window skips.
	DefaultWindowOffset = 5
	// DefaultWindowCount is the number of rows Window reads.
	DefaultWindowCount = 10
	// DefaultHeaderRow is the 1-based row holding column names.
	DefaultHeaderRow = 1
)

// Options configures which part of the workbook is read.
type Options struct {
	// Sheet names the sheet to read. Empty selects the active sheet.
	Sheet string
	// Offset is the number of leading rows to skip.
	Offset int
	// Count is the number of rows to read. A negative Count reads to the end.
	Count int
	// HeaderRow is the 1-based row Headers reads. Zero means DefaultHeaderRow.
	HeaderRow int
	// Engine selects the xlsx reader. Empty means parser.EngineExcelize.
	Engine parser.Engine
}

// DefaultPreviewOptions returns options for the first DefaultPreviewCount rows.
func DefaultPreviewOptions() Options {
	return Options{
		Count: DefaultPreviewCount,
	}
}

// DefaultWindowOptions returns options for the rows after the title block.
func DefaultWindowOptions() Options {
	return Options{
		Offset: DefaultWindowOffset,
		Count:  DefaultWindowCount,
	}
}

func (o Options) headerRow() int {
	if o.HeaderRow > 0 {
		return o.HeaderRow
	}
	return DefaultHeaderRow
}

func (o Options) offset() int {
	if o.Offset < 0 {
		return 0
	}
	return o.Offset
}
