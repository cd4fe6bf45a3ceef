package transfer

import (
	"fmt"

	"github.com/Sarthak-Corpcare/Excel-Automation/pkg/perfsync/header"
	"github.com/Sarthak-Corpcare/Excel-Automation/pkg/perfsync/models"
	"github.com/Sarthak-Corpcare/Excel-Automation/pkg/perfsync/workbook"
)

// BenchmarkColumn is the column holding the benchmark section marker.
const BenchmarkColumn = 1

// TransferBenchmark applies policy to the benchmark block: the rows from the
// marker cell in column 1 down to the first fully empty row. A marker missing
// from either sheet makes it a no-op.
//
// transfer: the template block is blanked, then the raw block is copied cell
// by cell at the template marker row. remove: the template block rows are
// deleted. skip: nothing happens.
func TransferBenchmark(raw, tmpl workbook.Sheet, marker string, policy models.BenchmarkPolicy) (models.BenchmarkResult, error) {
	tmplRow, _ := header.LocateInColumn(tmpl, BenchmarkColumn, marker)
	return ApplyBenchmark(raw, tmpl, tmplRow, marker, policy)
}

// BenchmarkRow returns the first row below headerRow whose column 1 label is
// marker.
func BenchmarkRow(sheet workbook.Sheet, headerRow int, marker string) (int, bool) {
	marker = header.NormalizeLabel(marker)
	if marker == "" {
		return 0, false
	}
	maxRow := sheet.MaxRow()
	for row := headerRow + 1; row <= maxRow; row++ {
		if header.Label(sheet.Cell(row, BenchmarkColumn)) == marker {
			return row, true
		}
	}
	return 0, false
}

// ApplyBenchmark is TransferBenchmark with the template marker row already
// known. tmplRow <= 0 means the template has no benchmark block.
func ApplyBenchmark(raw, tmpl workbook.Sheet, tmplRow int, marker string, policy models.BenchmarkPolicy) (models.BenchmarkResult, error) {
	result := models.BenchmarkResult{Policy: policy}
	if policy == "" {
		result.Policy = models.BenchmarkSkip
	}
	if result.Policy == models.BenchmarkSkip || marker == "" || tmplRow <= 0 {
		return result, nil
	}
	if !result.Policy.Valid() {
		return result, fmt.Errorf("unknown benchmark policy %q", policy)
	}

	rawRow, ok := header.LocateInColumn(raw, BenchmarkColumn, marker)
	if !ok {
		return result, nil
	}

	switch result.Policy {
	case models.BenchmarkRemove:
		n := blockRows(tmpl, tmplRow)
		if err := tmpl.RemoveRows(tmplRow, n); err != nil {
			return result, err
		}
		result.Applied = true
		result.Rows = n

	case models.BenchmarkTransfer:
		maxCol := raw.MaxCol()
		if c := tmpl.MaxCol(); c > maxCol {
			maxCol = c
		}
		old := blockRows(tmpl, tmplRow)
		for i := 0; i < old; i++ {
			for col := 1; col <= maxCol; col++ {
				if err := tmpl.SetCell(tmplRow+i, col, models.Empty()); err != nil {
					return result, err
				}
			}
		}
		n := blockRows(raw, rawRow)
		for i := 0; i < n; i++ {
			for col := 1; col <= maxCol; col++ {
				if err := tmpl.SetCell(tmplRow+i, col, raw.Cell(rawRow+i, col)); err != nil {
					return result, err
				}
			}
		}
		result.Applied = true
		result.Rows = n
	}
	return result, nil
}

// blockRows counts rows from start until a fully empty row or the end of data.
func blockRows(sheet workbook.Sheet, start int) int {
	maxRow, maxCol := sheet.MaxRow(), sheet.MaxCol()
	n := 0
	for row := start; row <= maxRow; row++ {
		if workbook.RowEmpty(sheet, row, maxCol) {
			break
		}
		n++
	}
	return n
}
