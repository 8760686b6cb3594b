package output

import (
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/ukaji3/sheetpeek/pkg/sheetpeek/models"
	"github.com/xuri/excelize/v2"
)

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

func renderHeadersTable(w io.Writer, h *models.HeaderSet) error {
	t := newTable(w)
	t.SetTitle("%s row %d", h.Sheet, h.Row)
	t.AppendHeader(table.Row{"#", "Cell", "Name"})
	for i, name := range h.Names {
		cell, err := excelize.CoordinatesToCellName(i+1, h.Row)
		if err != nil {
			return err
		}
		t.AppendRow(table.Row{i + 1, cell, name})
	}
	t.Render()
	return nil
}

func renderWindowTable(w io.Writer, win *models.Window) error {
	t := newTable(w)
	title := win.Sheet
	if win.DataRange != "" {
		title += " " + win.DataRange
	}
	t.SetTitle("%s", title)

	header := make(table.Row, 0, win.Width+1)
	header = append(header, "Row")
	for col := 1; col <= win.Width; col++ {
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return err
		}
		header = append(header, name)
	}
	t.AppendHeader(header)

	for _, row := range win.Rows {
		cells := make(table.Row, 0, len(row.Values)+1)
		cells = append(cells, row.Number)
		for _, v := range row.Values {
			cells = append(cells, v)
		}
		t.AppendRow(cells)
	}
	t.Render()
	return nil
}

func renderSheetsTable(w io.Writer, info *models.WorkbookInfo) error {
	t := newTable(w)
	t.SetTitle("%s (%s)", info.BookName, info.Format)
	t.AppendHeader(table.Row{"#", "Sheet", "Active", "Visible", "Dimension", "Print areas"})
	for _, s := range info.Sheets {
		t.AppendRow(table.Row{s.Index + 1, s.Name, s.Active, s.Visible, s.Dimension, strings.Join(s.PrintAreas, ", ")})
	}
	t.Render()
	return nil
}
