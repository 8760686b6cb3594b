package sheetpeek

import (
	"errors"
	"fmt"

	"github.com/ukaji3/sheetpeek/pkg/sheetpeek/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrSheetNotFound indicates the requested sheet is not in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrUnsupportedFormat indicates the input file extension has no reader.
var ErrUnsupportedFormat = parser.ErrUnsupportedFormat

// ReadError represents a failure while opening or reading a workbook.
type ReadError struct {
	Path  string
	Sheet string
	Op    string // "open", "sheets", "headers", "rows"
	Err   error
}

func (e *ReadError) Error() string {
	if e.Sheet == "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s %s (sheet %q): %v", e.Op, e.Path, e.Sheet, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// NewReadError creates a new ReadError.
func NewReadError(path, sheet, op string, err error) *ReadError {
	return &ReadError{
		Path:  path,
		Sheet: sheet,
		Op:    op,
		Err:   err,
	}
}
