package workbook

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Sarthak-Corpcare/Excel-Automation/pkg/perfsync/models"
)

func saveTestFile(t *testing.T, f *excelize.File) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestExcelWorkbookRead(t *testing.T) {
	f := excelize.NewFile()
	sheet := "Debt"
	require.NoError(t, f.SetSheetName("Sheet1", sheet))
	_, err := f.NewSheet("Home")
	require.NoError(t, err)

	sep := time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC)
	require.NoError(t, f.SetCellValue(sheet, "A1", "Scheme Name"))
	require.NoError(t, f.SetCellValue(sheet, "B1", sep))
	require.NoError(t, f.SetCellValue(sheet, "C1", "Rating 202509"))
	require.NoError(t, f.SetCellValue(sheet, "A2", "Fund A"))
	require.NoError(t, f.SetCellValue(sheet, "B2", 120.5))
	require.NoError(t, f.SetCellValue(sheet, "C2", 7))

	// a serial number shown through a custom date format
	custom := "dd-mmm-yy"
	styleID, err := f.NewStyle(&excelize.Style{CustomNumFmt: &custom})
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue(sheet, "D1", 45930))
	require.NoError(t, f.SetCellStyle(sheet, "D1", "D1", styleID))

	require.NoError(t, f.MergeCell(sheet, "E1", "F1"))
	require.NoError(t, f.SetCellValue(sheet, "E1", "202508"))

	path := saveTestFile(t, f)

	wb, err := Open(path)
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, []string{"Debt", "Home"}, wb.SheetNames())

	s, ok := wb.Sheet(sheet)
	require.True(t, ok)
	assert.Equal(t, 2, s.MaxRow())
	assert.Equal(t, 5, s.MaxCol())

	assert.True(t, s.Cell(1, 1).Equal(models.NewText("Scheme Name")))
	assert.Equal(t, models.KindDate, s.Cell(1, 2).Kind)
	assert.True(t, s.Cell(1, 2).Time.Equal(sep))
	assert.True(t, s.Cell(1, 3).Equal(models.NewText("Rating 202509")))
	assert.Equal(t, models.KindDate, s.Cell(1, 4).Kind)
	assert.True(t, s.Cell(1, 4).Time.Equal(sep))
	assert.True(t, s.Cell(2, 2).Equal(models.NewNumber(120.5)))
	assert.True(t, s.Cell(2, 3).Equal(models.NewNumber(7)))
	assert.True(t, s.Cell(9, 9).IsEmpty())

	assert.Equal(t, []models.MergeRange{{R1: 1, C1: 5, R2: 1, C2: 6}}, s.MergeRanges())

	_, ok = wb.Sheet("Missing")
	assert.False(t, ok)
}

func TestExcelWorkbookWriteRoundTrip(t *testing.T) {
	f := excelize.NewFile()
	sheet := "Sheet1"
	require.NoError(t, f.SetCellValue(sheet, "A1", "Scheme Name"))
	require.NoError(t, f.SetCellValue(sheet, "A2", "Old Fund"))
	require.NoError(t, f.SetCellValue(sheet, "B2", 99))
	path := saveTestFile(t, f)

	wb, err := Open(path)
	require.NoError(t, err)
	s, ok := wb.Sheet(sheet)
	require.True(t, ok)

	aug := time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.SetCell(2, 1, models.NewText("Fund A")))
	require.NoError(t, s.SetCell(2, 2, models.Empty()))
	require.NoError(t, s.SetCell(2, 3, models.NewDate(aug)))
	require.NoError(t, s.SetCell(3, 1, models.NewNumber(1.25)))

	assert.True(t, s.Cell(2, 1).Equal(models.NewText("Fund A")))
	assert.True(t, s.Cell(2, 2).IsEmpty())
	assert.Equal(t, 3, s.MaxRow())

	out := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, wb.SaveAs(out))
	require.NoError(t, wb.Close())

	wb2, err := Open(out)
	require.NoError(t, err)
	defer wb2.Close()
	s2, ok := wb2.Sheet(sheet)
	require.True(t, ok)

	assert.True(t, s2.Cell(2, 1).Equal(models.NewText("Fund A")))
	assert.True(t, s2.Cell(2, 2).IsBlank())
	assert.Equal(t, models.KindDate, s2.Cell(2, 3).Kind)
	assert.True(t, s2.Cell(2, 3).Time.Equal(aug))
	assert.True(t, s2.Cell(3, 1).Equal(models.NewNumber(1.25)))
}

func TestExcelWorkbookRemoveRows(t *testing.T) {
	f := excelize.NewFile()
	sheet := "Sheet1"
	for i, v := range []string{"Scheme Name", "Fund A", "Benchmark", "Nifty", "Note"} {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, f.SetCellValue(sheet, cell, v))
	}
	path := saveTestFile(t, f)

	wb, err := Open(path)
	require.NoError(t, err)
	defer wb.Close()
	s, ok := wb.Sheet(sheet)
	require.True(t, ok)

	require.NoError(t, s.RemoveRows(3, 2))
	assert.Equal(t, 3, s.MaxRow())
	assert.True(t, s.Cell(3, 1).Equal(models.NewText("Note")))
}

func TestExcelWorkbookInsertRows(t *testing.T) {
	f := excelize.NewFile()
	sheet := "Sheet1"
	for i, v := range []string{"Scheme Name", "Fund A", "Benchmark", "Nifty"} {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, f.SetCellValue(sheet, cell, v))
	}
	require.NoError(t, f.MergeCell(sheet, "A4", "B4"))
	path := saveTestFile(t, f)

	wb, err := Open(path)
	require.NoError(t, err)
	defer wb.Close()
	s, ok := wb.Sheet(sheet)
	require.True(t, ok)

	require.NoError(t, s.InsertRows(3, 1))
	assert.Equal(t, 5, s.MaxRow())
	assert.True(t, s.Cell(3, 1).IsEmpty())
	assert.True(t, s.Cell(4, 1).Equal(models.NewText("Benchmark")))
	assert.True(t, s.Cell(5, 1).Equal(models.NewText("Nifty")))
	assert.Equal(t, []models.MergeRange{{R1: 5, C1: 1, R2: 5, C2: 2}}, s.MergeRanges())
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.Error(t, err)
}
