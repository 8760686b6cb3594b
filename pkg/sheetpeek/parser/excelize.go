package parser

import (
	"github.com/ukaji3/sheetpeek/pkg/sheetpeek/models"
	"github.com/xuri/excelize/v2"
)

type excelizeBook struct {
	f *excelize.File
}

func openExcelize(path string) (*excelizeBook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &excelizeBook{f: f}, nil
}

func (b *excelizeBook) Format() string {
	return FormatXLSX
}

func (b *excelizeBook) Sheets() ([]models.SheetInfo, error) {
	active := b.f.GetActiveSheetIndex()
	names := b.f.GetSheetList()
	printAreas := extractPrintAreas(b.f)

	sheets := make([]models.SheetInfo, 0, len(names))
	for idx, name := range names {
		visible, err := b.f.GetSheetVisible(name)
		if err != nil {
			return nil, err
		}
		// Not every writer records a dimension; leave it blank then.
		dim, _ := b.f.GetSheetDimension(name)
		sheets = append(sheets, models.SheetInfo{
			Name:       name,
			Index:      idx,
			Active:     idx == active,
			Visible:    visible,
			Dimension:  dim,
			PrintAreas: printAreas[name],
		})
	}
	return sheets, nil
}

func (b *excelizeBook) ActiveSheet() string {
	if name := b.f.GetSheetName(b.f.GetActiveSheetIndex()); name != "" {
		return name
	}
	if names := b.f.GetSheetList(); len(names) > 0 {
		return names[0]
	}
	return ""
}

// ReadRows walks the sheet with excelize's row iterator, which yields
// interior rows missing from the XML as empty rows.
func (b *excelizeBook) ReadRows(sheet string, offset, limit int) ([]models.Row, error) {
	rows, err := b.f.Rows(sheet)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	end := windowEnd(offset, limit)
	var result []models.Row
	rowNum := 0
	for rows.Next() {
		rowNum++
		if end > 0 && rowNum > end {
			break
		}
		cols, err := rows.Columns()
		if err != nil {
			return nil, err
		}
		if rowNum <= offset {
			continue
		}
		result = append(result, models.Row{
			Number: rowNum,
			Values: TrimCells(cols),
		})
	}
	if err := rows.Error(); err != nil {
		return nil, err
	}
	return result, nil
}

func (b *excelizeBook) Close() error {
	return b.f.Close()
}
