// Package header locates header rows and resolves header labels, including
// labels inherited from merged ranges.
package header

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/Sarthak-Corpcare/Excel-Automation/pkg/perfsync/models"
	"github.com/Sarthak-Corpcare/Excel-Automation/pkg/perfsync/workbook"
)

// DefaultRowLimit is the number of leading rows searched for a header.
const DefaultRowLimit = 20

// NormalizeLabel folds compatibility characters (non-breaking and full-width
// spaces) and trims surrounding whitespace. Case is preserved.
func NormalizeLabel(s string) string {
	return strings.TrimSpace(norm.NFKC.String(s))
}

// Label returns the normalized label of a cell value.
func Label(v models.Value) string {
	if v.IsEmpty() {
		return ""
	}
	return NormalizeLabel(v.String())
}

// Locate returns the first row within 1..rowLimit holding a cell whose label
// equals anchor exactly.
func Locate(sheet workbook.Sheet, anchor string, rowLimit int) (int, bool) {
	anchor = NormalizeLabel(anchor)
	if anchor == "" {
		return 0, false
	}
	if rowLimit <= 0 {
		rowLimit = DefaultRowLimit
	}
	lastRow := rowLimit
	if maxRow := sheet.MaxRow(); maxRow < lastRow {
		lastRow = maxRow
	}
	maxCol := sheet.MaxCol()
	for row := 1; row <= lastRow; row++ {
		for col := 1; col <= maxCol; col++ {
			if Label(sheet.Cell(row, col)) == anchor {
				return row, true
			}
		}
	}
	return 0, false
}

// LocateInColumn scans column top to bottom and returns the first row whose
// label equals label.
func LocateInColumn(sheet workbook.Sheet, column int, label string) (int, bool) {
	label = NormalizeLabel(label)
	if label == "" || column < 1 {
		return 0, false
	}
	maxRow := sheet.MaxRow()
	for row := 1; row <= maxRow; row++ {
		if Label(sheet.Cell(row, column)) == label {
			return row, true
		}
	}
	return 0, false
}
