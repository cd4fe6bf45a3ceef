package workbook

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Sarthak-Corpcare/Excel-Automation/pkg/perfsync/models"
	"github.com/xuri/excelize/v2"
)

// ExcelWorkbook adapts an excelize file to the Workbook interface.
// Writes go straight to the underlying file, so styles, merges and formulas
// outside the written cells are preserved on save.
type ExcelWorkbook struct {
	f          *excelize.File
	date1904   bool
	sheets     map[string]*excelSheet
	dateStyles map[int]bool
}

// Open opens an xlsx file.
func Open(path string) (*ExcelWorkbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return NewExcelWorkbook(f), nil
}

// NewExcelWorkbook wraps an already opened excelize file.
func NewExcelWorkbook(f *excelize.File) *ExcelWorkbook {
	w := &ExcelWorkbook{
		f:          f,
		sheets:     make(map[string]*excelSheet),
		dateStyles: make(map[int]bool),
	}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		w.date1904 = *props.Date1904
	}
	return w
}

// File returns the underlying excelize file.
func (w *ExcelWorkbook) File() *excelize.File {
	return w.f
}

// SheetNames returns sheet names in workbook order.
func (w *ExcelWorkbook) SheetNames() []string {
	return w.f.GetSheetList()
}

// Sheet returns the named sheet, loading its cell values on first access.
func (w *ExcelWorkbook) Sheet(name string) (Sheet, bool) {
	if s, ok := w.sheets[name]; ok {
		return s, true
	}
	if idx, err := w.f.GetSheetIndex(name); err != nil || idx < 0 {
		return nil, false
	}
	s := &excelSheet{wb: w, name: name}
	if err := s.load(); err != nil {
		return nil, false
	}
	w.sheets[name] = s
	return s, true
}

// SaveAs writes the workbook to path.
func (w *ExcelWorkbook) SaveAs(path string) error {
	return w.f.SaveAs(path)
}

// Close releases the underlying file.
func (w *ExcelWorkbook) Close() error {
	return w.f.Close()
}

type excelSheet struct {
	wb     *ExcelWorkbook
	name   string
	rows   [][]string
	values map[cellKey]models.Value
	merges []models.MergeRange
	maxRow int
	maxCol int
}

func (s *excelSheet) load() error {
	rows, err := s.wb.f.GetRows(s.name, excelize.Options{RawCellValue: true})
	if err != nil {
		return fmt.Errorf("read rows of %q: %w", s.name, err)
	}
	s.rows = rows
	s.values = make(map[cellKey]models.Value)
	s.maxRow, s.maxCol = 0, 0
	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if rowIdx+1 > s.maxRow {
				s.maxRow = rowIdx + 1
			}
			if colIdx+1 > s.maxCol {
				s.maxCol = colIdx + 1
			}
		}
	}

	mergeCells, err := s.wb.f.GetMergeCells(s.name)
	if err != nil {
		return fmt.Errorf("read merges of %q: %w", s.name, err)
	}
	s.merges = s.merges[:0]
	for i := range mergeCells {
		m := mergeCells[i]
		if r, ok := ParseRange(m.GetStartAxis() + ":" + m.GetEndAxis()); ok {
			s.merges = append(s.merges, r)
		}
	}
	s.merges = sortedMerges(s.merges)
	return nil
}

func (s *excelSheet) Name() string {
	return s.name
}

func (s *excelSheet) Cell(row, col int) models.Value {
	if row < 1 || col < 1 {
		return models.Empty()
	}
	key := cellKey{row, col}
	if v, ok := s.values[key]; ok {
		return v
	}
	raw := ""
	if row-1 < len(s.rows) && col-1 < len(s.rows[row-1]) {
		raw = s.rows[row-1][col-1]
	}
	v := s.decode(row, col, raw)
	s.values[key] = v
	return v
}

func (s *excelSheet) SetCell(row, col int, v models.Value) error {
	ref, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := s.wb.f.SetCellValue(s.name, ref, v.Interface()); err != nil {
		return fmt.Errorf("write %s!%s: %w", s.name, ref, err)
	}
	s.values[cellKey{row, col}] = v
	if !v.IsEmpty() {
		if row > s.maxRow {
			s.maxRow = row
		}
		if col > s.maxCol {
			s.maxCol = col
		}
	}
	return nil
}

func (s *excelSheet) MaxRow() int {
	return s.maxRow
}

func (s *excelSheet) MaxCol() int {
	return s.maxCol
}

func (s *excelSheet) MergeRanges() []models.MergeRange {
	return s.merges
}

// RemoveRows deletes rows bottom-up through excelize, which also shifts
// merges and formula references, then reloads the cached values.
func (s *excelSheet) RemoveRows(from, count int) error {
	for i := count - 1; i >= 0; i-- {
		if err := s.wb.f.RemoveRow(s.name, from+i); err != nil {
			return fmt.Errorf("remove row %d of %q: %w", from+i, s.name, err)
		}
	}
	return s.load()
}

// InsertRows inserts rows through excelize, which shifts merges and formula
// references, then reloads the cached values.
func (s *excelSheet) InsertRows(at, count int) error {
	if count == 0 {
		return nil
	}
	if err := s.wb.f.InsertRows(s.name, at, count); err != nil {
		return fmt.Errorf("insert %d rows at %d of %q: %w", count, at, s.name, err)
	}
	return s.load()
}

// decode types a raw cell string using the stored cell type and, for
// numbers, the cell's number format.
func (s *excelSheet) decode(row, col int, raw string) models.Value {
	if raw == "" {
		return models.Empty()
	}
	ref, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return models.NewText(raw)
	}
	cellType, err := s.wb.f.GetCellType(s.name, ref)
	if err != nil {
		return models.NewText(raw)
	}
	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError:
		return models.NewText(raw)
	case excelize.CellTypeBool:
		if raw == "1" || strings.EqualFold(raw, "true") {
			return models.NewText("TRUE")
		}
		return models.NewText("FALSE")
	case excelize.CellTypeDate:
		if t, ok := parseISODate(raw); ok {
			return models.NewDate(t)
		}
		return models.NewText(raw)
	}

	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return models.NewText(raw)
	}
	if s.wb.isDateCell(s.name, ref) {
		if t, err := excelize.ExcelDateToTime(n, s.wb.date1904); err == nil {
			return models.NewDate(t)
		}
	}
	return models.NewNumber(n)
}

func (w *ExcelWorkbook) isDateCell(sheet, ref string) bool {
	styleID, err := w.f.GetCellStyle(sheet, ref)
	if err != nil || styleID == 0 {
		return false
	}
	if isDate, ok := w.dateStyles[styleID]; ok {
		return isDate
	}
	isDate := false
	if style, err := w.f.GetStyle(styleID); err == nil && style != nil {
		isDate = isDateFormat(style.NumFmt, style.CustomNumFmt)
	}
	w.dateStyles[styleID] = isDate
	return isDate
}

var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999",
	"2006-01-02",
}

func parseISODate(s string) (time.Time, bool) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
