package header

import (
	"sort"

	"github.com/Sarthak-Corpcare/Excel-Automation/pkg/perfsync/models"
	"github.com/Sarthak-Corpcare/Excel-Automation/pkg/perfsync/workbook"
)

// MergeIndex answers "which merged range covers (row, col)" queries.
// Ranges are kept sorted by start row; a query scans the ranges starting at
// or above the row.
type MergeIndex struct {
	ranges []models.MergeRange
}

// NewMergeIndex builds an index over ranges.
func NewMergeIndex(ranges []models.MergeRange) *MergeIndex {
	sorted := make([]models.MergeRange, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].R1 != sorted[j].R1 {
			return sorted[i].R1 < sorted[j].R1
		}
		return sorted[i].C1 < sorted[j].C1
	})
	return &MergeIndex{ranges: sorted}
}

// Find returns the merged range covering (row, col).
func (m *MergeIndex) Find(row, col int) (models.MergeRange, bool) {
	if m == nil {
		return models.MergeRange{}, false
	}
	// first range starting below row
	end := sort.Search(len(m.ranges), func(i int) bool {
		return m.ranges[i].R1 > row
	})
	for i := end - 1; i >= 0; i-- {
		if m.ranges[i].Contains(row, col) {
			return m.ranges[i], true
		}
	}
	return models.MergeRange{}, false
}

// EffectiveValue returns the value of (row, col), taking the top-left value
// of the merged range that covers it.
func EffectiveValue(sheet workbook.Sheet, idx *MergeIndex, row, col int) models.Value {
	if r, ok := idx.Find(row, col); ok {
		return sheet.Cell(r.R1, r.C1)
	}
	return sheet.Cell(row, col)
}

// Parent returns the governing parent header of (headerRow, col): the first
// non-blank effective value found scanning upward from the row above. depth
// bounds the scan; depth <= 0 scans to row 1.
func Parent(sheet workbook.Sheet, idx *MergeIndex, headerRow, col, depth int) (models.Value, int, bool) {
	stop := 1
	if depth > 0 && headerRow-depth > stop {
		stop = headerRow - depth
	}
	for row := headerRow - 1; row >= stop; row-- {
		// a vertical merge through the header row is the header itself
		if r, ok := idx.Find(row, col); ok && r.Contains(headerRow, col) {
			continue
		}
		v := EffectiveValue(sheet, idx, row, col)
		if !v.IsBlank() {
			return v, row, true
		}
	}
	return models.Empty(), 0, false
}
