package parser

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/extrame/xls"
	"github.com/ukaji3/sheetpeek/pkg/sheetpeek/models"
)

// xlsCharset is used for BIFF5 byte strings; BIFF8 strings are UTF-16.
const xlsCharset = "utf-8"

type xlsBook struct {
	wb     *xls.WorkBook
	closer io.Closer
}

func openXLS(path string) (book *xlsBook, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	// The BIFF decoder panics on some malformed records.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed xls: %v", r)
		}
		if err != nil {
			book = nil
			file.Close()
		}
	}()

	wb, err := xls.OpenReader(file, xlsCharset)
	if err != nil {
		return nil, err
	}
	if wb == nil {
		return nil, errors.New("no Workbook stream in compound document")
	}
	return &xlsBook{wb: wb, closer: file}, nil
}

func (b *xlsBook) Format() string {
	return FormatXLS
}

func (b *xlsBook) Sheets() ([]models.SheetInfo, error) {
	n := b.wb.NumSheets()
	sheets := make([]models.SheetInfo, 0, n)
	for idx := 0; idx < n; idx++ {
		ws := b.wb.GetSheet(idx)
		if ws == nil {
			continue
		}
		sheets = append(sheets, models.SheetInfo{
			Name:    ws.Name,
			Index:   idx,
			Active:  idx == 0,
			Visible: true,
		})
	}
	return sheets, nil
}

func (b *xlsBook) ActiveSheet() string {
	if ws := b.wb.GetSheet(0); ws != nil {
		return ws.Name
	}
	return ""
}

func (b *xlsBook) sheet(name string) *xls.WorkSheet {
	for idx := 0; idx < b.wb.NumSheets(); idx++ {
		if ws := b.wb.GetSheet(idx); ws != nil && ws.Name == name {
			return ws
		}
	}
	return nil
}

func (b *xlsBook) ReadRows(sheet string, offset, limit int) (result []models.Row, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = nil, fmt.Errorf("malformed xls sheet %q: %v", sheet, r)
		}
	}()

	ws := b.sheet(sheet)
	if ws == nil {
		return nil, fmt.Errorf("sheet %q not found", sheet)
	}

	// MaxRow is the last 0-based row index; an empty sheet has no row 0.
	last := int(ws.MaxRow)
	if last == 0 && xlsRow(ws, 0) == nil {
		return nil, nil
	}

	end := windowEnd(offset, limit)
	for idx := offset; idx <= last; idx++ {
		rowNum := idx + 1
		if end > 0 && rowNum > end {
			break
		}
		result = append(result, models.Row{
			Number: rowNum,
			Values: xlsCells(xlsRow(ws, idx)),
		})
	}
	return result, nil
}

// xlsRow returns row idx of ws, or nil when the sheet has no record for it.
// WorkSheet.Row dereferences missing rows, so the panic is turned into nil.
func xlsRow(ws *xls.WorkSheet, idx int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return ws.Row(idx)
}

func xlsCells(row *xls.Row) []string {
	if row == nil {
		return []string{}
	}
	values := make([]string, 0, row.LastCol()+1)
	for col := 0; col <= row.LastCol(); col++ {
		values = append(values, strings.TrimSpace(row.Col(col)))
	}
	return TrimTrailingEmpty(values)
}

func (b *xlsBook) Close() error {
	if b.closer == nil {
		return nil
	}
	return b.closer.Close()
}
