package parser

import (
	"strings"

	"github.com/thedatashed/xlsxreader"
	"github.com/ukaji3/sheetpeek/pkg/sheetpeek/models"
	"github.com/xuri/excelize/v2"
)

// streamBook reads xlsx rows from xlsxreader's channel without loading
// whole sheets. xlsxreader exposes no sheet state, so every sheet is
// reported visible and the first sheet is treated as active.
type streamBook struct {
	xl *xlsxreader.XlsxFileCloser
}

func openStream(path string) (*streamBook, error) {
	xl, err := xlsxreader.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &streamBook{xl: xl}, nil
}

func (s *streamBook) Format() string {
	return FormatXLSX
}

func (s *streamBook) Sheets() ([]models.SheetInfo, error) {
	sheets := make([]models.SheetInfo, 0, len(s.xl.Sheets))
	for idx, name := range s.xl.Sheets {
		sheets = append(sheets, models.SheetInfo{
			Name:    name,
			Index:   idx,
			Active:  idx == 0,
			Visible: true,
		})
	}
	return sheets, nil
}

func (s *streamBook) ActiveSheet() string {
	if len(s.xl.Sheets) == 0 {
		return ""
	}
	return s.xl.Sheets[0]
}

// ReadRows fills row-number gaps left by xlsxreader, which only emits
// rows that contain cells.
func (s *streamBook) ReadRows(sheet string, offset, limit int) ([]models.Row, error) {
	ch := s.xl.ReadRows(sheet)

	end := windowEnd(offset, limit)
	var result []models.Row
	next := offset + 1
	for row := range ch {
		if row.Error != nil {
			go drain(ch)
			return nil, row.Error
		}
		if end > 0 && row.Index > end {
			// The sheet continues past the window; blank rows up to end still count.
			for ; next <= end; next++ {
				result = append(result, models.Row{Number: next, Values: []string{}})
			}
			// The reader goroutine blocks until the channel is consumed.
			go drain(ch)
			break
		}
		if row.Index <= offset {
			continue
		}
		for ; next < row.Index; next++ {
			result = append(result, models.Row{Number: next, Values: []string{}})
		}
		result = append(result, models.Row{
			Number: row.Index,
			Values: streamCells(row.Cells),
		})
		next = row.Index + 1
	}
	return result, nil
}

func (s *streamBook) Close() error {
	return s.xl.Close()
}

// streamCells places sparse cells at their column positions.
func streamCells(cells []xlsxreader.Cell) []string {
	values := []string{}
	for _, cell := range cells {
		pos := len(values)
		if cell.Column != "" {
			if col, err := excelize.ColumnNameToNumber(cell.Column); err == nil {
				pos = col - 1
			}
		}
		for len(values) <= pos {
			values = append(values, "")
		}
		values[pos] = strings.TrimSpace(cell.Value)
	}
	return TrimTrailingEmpty(values)
}

func drain(ch chan xlsxreader.Row) {
	for range ch {
	}
}
