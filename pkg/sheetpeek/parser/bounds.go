package parser

import (
	"fmt"

	"github.com/ukaji3/sheetpeek/pkg/sheetpeek/models"
	"github.com/xuri/excelize/v2"
)

// DataRange returns the cell range (e.g., "A6:C20") bounding the non-empty
// cells of rows, or "" when every row is blank.
func DataRange(rows []models.Row) string {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return ""
	}

	startCell, err := excelize.CoordinatesToCellName(minCol+1, minRow)
	if err != nil {
		return ""
	}
	endCell, err := excelize.CoordinatesToCellName(maxCol+1, maxRow)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s:%s", startCell, endCell)
}

// findDataBounds finds the bounding box of non-empty cells.
// Rows are 1-based sheet rows, columns 0-based; all -1 when nothing is set.
func findDataBounds(rows []models.Row) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for _, row := range rows {
		for colIdx, cell := range row.Values {
			if cell == "" {
				continue
			}
			if minRow < 0 || row.Number < minRow {
				minRow = row.Number
			}
			if maxRow < 0 || row.Number > maxRow {
				maxRow = row.Number
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}
