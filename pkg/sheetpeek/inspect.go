package sheetpeek

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ukaji3/sheetpeek/pkg/sheetpeek/models"
	"github.com/ukaji3/sheetpeek/pkg/sheetpeek/parser"
)

// Headers reads the header row of a sheet and returns its column names,
// trimmed, in column order.
func Headers(path string, opts Options) (*models.HeaderSet, error) {
	wb, sheet, err := open(path, opts)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	row := opts.headerRow()
	rows, err := wb.ReadRows(sheet, row-1, 1)
	if err != nil {
		return nil, NewReadError(path, sheet, "headers", err)
	}

	var cells []string
	if len(rows) > 0 {
		cells = rows[0].Values
	}
	return &models.HeaderSet{
		Sheet: sheet,
		Row:   row,
		Names: parser.NormalizeHeaders(cells),
	}, nil
}

// Preview reads raw rows from the top of the sheet without assuming a
// header row. Offset is ignored; a zero Count reads DefaultPreviewCount rows.
func Preview(path string, opts Options) (*models.Window, error) {
	opts.Offset = 0
	if opts.Count == 0 {
		opts.Count = DefaultPreviewCount
	}
	return readWindow(path, opts)
}

// Window reads Count raw rows after skipping Offset rows. A zero Count
// reads DefaultWindowCount rows; see DefaultWindowOptions for the usual
// offset past a report's title block.
func Window(path string, opts Options) (*models.Window, error) {
	if opts.Count == 0 {
		opts.Count = DefaultWindowCount
	}
	return readWindow(path, opts)
}

// Describe lists the sheets of a workbook.
func Describe(path string, opts Options) (*models.WorkbookInfo, error) {
	if err := checkExists(path); err != nil {
		return nil, err
	}

	wb, err := parser.Open(path, opts.Engine)
	if err != nil {
		return nil, wrapOpenError(path, err)
	}
	defer wb.Close()

	sheets, err := wb.Sheets()
	if err != nil {
		return nil, NewReadError(path, "", "sheets", err)
	}
	return &models.WorkbookInfo{
		BookName: filepath.Base(path),
		Format:   wb.Format(),
		Sheets:   sheets,
	}, nil
}

func readWindow(path string, opts Options) (*models.Window, error) {
	wb, sheet, err := open(path, opts)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	offset := opts.offset()
	rows, err := wb.ReadRows(sheet, offset, opts.Count)
	if err != nil {
		return nil, NewReadError(path, sheet, "rows", err)
	}
	if rows == nil {
		rows = []models.Row{}
	}

	width := parser.Width(rows)
	parser.PadRows(rows, width)

	return &models.Window{
		Sheet:     sheet,
		Offset:    offset,
		Count:     opts.Count,
		Width:     width,
		DataRange: parser.DataRange(rows),
		Rows:      rows,
	}, nil
}

// open checks the path, opens the workbook and resolves the sheet name.
func open(path string, opts Options) (parser.Workbook, string, error) {
	if err := checkExists(path); err != nil {
		return nil, "", err
	}

	wb, err := parser.Open(path, opts.Engine)
	if err != nil {
		return nil, "", wrapOpenError(path, err)
	}

	sheet, err := resolveSheet(wb, opts.Sheet)
	if err != nil {
		wb.Close()
		return nil, "", NewReadError(path, opts.Sheet, "open", err)
	}
	return wb, sheet, nil
}

func resolveSheet(wb parser.Workbook, name string) (string, error) {
	if name == "" {
		if active := wb.ActiveSheet(); active != "" {
			return active, nil
		}
		return "", fmt.Errorf("%w: workbook has no sheets", ErrSheetNotFound)
	}

	sheets, err := wb.Sheets()
	if err != nil {
		return "", err
	}
	for _, s := range sheets {
		if s.Name == name {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrSheetNotFound, name)
}

// checkExists reports a missing input as a *fs.PathError wrapping
// ErrFileNotFound so callers can recover the path.
func checkExists(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return &fs.PathError{Op: "stat", Path: path, Err: ErrFileNotFound}
	}
	return nil
}

func wrapOpenError(path string, err error) error {
	if errors.Is(err, ErrUnsupportedFormat) {
		return err
	}
	return NewReadError(path, "", "open", err)
}
