package transfer

import (
	"github.com/Sarthak-Corpcare/Excel-Automation/pkg/perfsync/models"
	"github.com/Sarthak-Corpcare/Excel-Automation/pkg/perfsync/workbook"
)

// StaleExtent returns the rows of old data below headerRow: from the row
// after the header up to the row before the first blank key cell, and never
// at or past stop when stop > 0. end < start means there is nothing to clear.
func StaleExtent(sheet workbook.Sheet, headerRow, keyCol, stop int) (start, end int) {
	start = headerRow + 1
	end = start - 1
	for row := start; !sheet.Cell(row, keyCol).IsBlank(); row++ {
		if stop > 0 && row >= stop {
			break
		}
		end = row
	}
	return start, end
}

// ClearStale blanks the given columns over the stale extent. Rows past the
// first blank key cell or at stop, and columns not listed, are left alone.
func ClearStale(sheet workbook.Sheet, headerRow, keyCol, stop int, cols []int) (models.ClearedRange, error) {
	start, end := StaleExtent(sheet, headerRow, keyCol, stop)
	cleared := models.ClearedRange{FromRow: start, ToRow: end, Columns: cols}
	for row := start; row <= end; row++ {
		for _, col := range cols {
			if err := sheet.SetCell(row, col, models.Empty()); err != nil {
				return cleared, err
			}
		}
	}
	return cleared, nil
}
