// Package parser provides per-format spreadsheet readers.
package parser

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ukaji3/sheetpeek/pkg/sheetpeek/models"
)

// ErrUnsupportedFormat indicates the file extension has no reader.
var ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")

// ErrUnknownEngine indicates an engine name that is not recognised.
var ErrUnknownEngine = errors.New("unknown engine")

// Engine selects the reader used for xlsx-family files.
type Engine string

const (
	// EngineExcelize reads xlsx through excelize's row iterator.
	EngineExcelize Engine = "excelize"
	// EngineStream reads xlsx through xlsxreader's streaming row channel.
	EngineStream Engine = "stream"
)

// ParseEngine maps a config or flag value to an Engine.
// An empty string selects EngineExcelize.
func ParseEngine(s string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(EngineExcelize):
		return EngineExcelize, nil
	case string(EngineStream):
		return EngineStream, nil
	default:
		return "", fmt.Errorf("%w: %s (must be excelize or stream)", ErrUnknownEngine, s)
	}
}

// Workbook is an open spreadsheet file.
type Workbook interface {
	// Format names the file format ("xlsx", "xls").
	Format() string
	// Sheets lists sheet metadata in workbook order.
	Sheets() ([]models.SheetInfo, error)
	// ActiveSheet returns the name of the sheet selected when the file was saved.
	ActiveSheet() string
	// ReadRows returns rows offset+1 through offset+limit (1-based) of sheet,
	// fewer when the sheet ends first. A limit <= 0 reads to the end.
	ReadRows(sheet string, offset, limit int) ([]models.Row, error)
	// Close releases the underlying file.
	Close() error
}

// Format detection by extension.
const (
	FormatXLSX = "xlsx"
	FormatXLS  = "xls"
)

// DetectFormat maps a file extension to a format name.
func DetectFormat(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return FormatXLSX, nil
	case ".xls":
		return FormatXLS, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Open opens path with the reader for its format.
func Open(path string, engine Engine) (Workbook, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatXLS:
		return openXLS(path)
	default:
		if engine == EngineStream {
			return openStream(path)
		}
		return openExcelize(path)
	}
}

// windowEnd returns the last 1-based row number wanted, or 0 for no bound.
func windowEnd(offset, limit int) int {
	if limit <= 0 {
		return 0
	}
	return offset + limit
}
