// Package workbook provides the sheet capability the transfer engine works
// against, with an excelize-backed implementation and an in-memory grid.
package workbook

import "github.com/Sarthak-Corpcare/Excel-Automation/pkg/perfsync/models"

// Sheet is a 1-based grid of cell values.
type Sheet interface {
	// Name returns the sheet name.
	Name() string
	// Cell returns the value stored at (row, col). Cells inside a merged
	// range other than its top-left cell are reported as stored, usually
	// empty; callers that need inheritance use the merge ranges.
	Cell(row, col int) models.Value
	// SetCell writes a value. Writing an empty value clears the cell
	// while keeping its style.
	SetCell(row, col int, v models.Value) error
	// MaxRow returns the last row that holds data.
	MaxRow() int
	// MaxCol returns the last column that holds data.
	MaxCol() int
	// MergeRanges returns the merged ranges of the sheet.
	MergeRanges() []models.MergeRange
	// RemoveRows deletes count rows starting at from, shifting later rows up.
	RemoveRows(from, count int) error
	// InsertRows inserts count empty rows before row at, shifting at and
	// later rows down.
	InsertRows(at, count int) error
}

// Workbook is a named, ordered collection of sheets.
type Workbook interface {
	// SheetNames returns sheet names in workbook order.
	SheetNames() []string
	// Sheet returns the named sheet.
	Sheet(name string) (Sheet, bool)
}

// RowEmpty reports whether every cell of row in columns 1..maxCol is blank.
func RowEmpty(s Sheet, row, maxCol int) bool {
	for col := 1; col <= maxCol; col++ {
		if !s.Cell(row, col).IsBlank() {
			return false
		}
	}
	return true
}
