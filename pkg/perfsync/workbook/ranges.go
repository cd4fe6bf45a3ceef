package workbook

import (
	"strings"

	"github.com/Sarthak-Corpcare/Excel-Automation/pkg/perfsync/models"
	"github.com/xuri/excelize/v2"
)

// ParseRange parses a range string like $A$1:$D$10 to a MergeRange.
// A single cell reference yields a one-cell range.
func ParseRange(rangeStr string) (models.MergeRange, bool) {
	// Remove $ signs
	rangeStr = strings.ReplaceAll(strings.TrimSpace(rangeStr), "$", "")
	if idx := strings.LastIndex(rangeStr, "!"); idx >= 0 {
		rangeStr = rangeStr[idx+1:]
	}

	parts := strings.Split(rangeStr, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return models.MergeRange{}, false
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.MergeRange{}, false
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.MergeRange{}, false
	}

	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}

	return models.MergeRange{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}, true
}

// CellName converts 1-based coordinates to an A1 reference.
func CellName(row, col int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
