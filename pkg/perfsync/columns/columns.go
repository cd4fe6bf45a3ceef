// Package columns maps header cells to canonical fields, tagging columns that
// belong to a reporting period.
package columns

import (
	"sort"

	"github.com/Sarthak-Corpcare/Excel-Automation/pkg/perfsync/header"
	"github.com/Sarthak-Corpcare/Excel-Automation/pkg/perfsync/models"
	"github.com/Sarthak-Corpcare/Excel-Automation/pkg/perfsync/period"
	"github.com/Sarthak-Corpcare/Excel-Automation/pkg/perfsync/workbook"
)

// Side selects which spelling of the equivalence table a sheet uses.
type Side string

const (
	// Source is the raw export; labels are matched against raw spellings.
	Source Side = "raw"
	// Destination is the template; labels are matched against template spellings.
	Destination Side = "template"
)

// ColumnMap is the field-to-column mapping of one header row.
type ColumnMap struct {
	Side      Side
	HeaderRow int
	// Direct maps fields matched by label alone to their column.
	Direct map[string]int
	// Periods maps period-tagged fields to their columns, newest first.
	Periods map[string][]models.PeriodColumn
	// Duplicates lists columns ignored because the field was already mapped.
	Duplicates []models.DuplicateHeader
}

// Has reports whether field is mapped.
func (m *ColumnMap) Has(field string) bool {
	_, ok := m.Column(field)
	return ok
}

// HasPeriods reports whether field is mapped through period-tagged columns.
func (m *ColumnMap) HasPeriods(field string) bool {
	return len(m.Periods[field]) > 0
}

// Column returns the column for field; for period fields, the newest one.
func (m *ColumnMap) Column(field string) (int, bool) {
	if cols := m.Periods[field]; len(cols) > 0 {
		return cols[0].Column, true
	}
	col, ok := m.Direct[field]
	return col, ok
}

// Columns returns the distinct columns that Column yields over all fields,
// in ascending order.
func (m *ColumnMap) Columns() []int {
	seen := make(map[int]bool)
	var out []int
	add := func(col int) {
		if !seen[col] {
			seen[col] = true
			out = append(out, col)
		}
	}
	for field := range m.Direct {
		if col, ok := m.Column(field); ok {
			add(col)
		}
	}
	for field := range m.Periods {
		if col, ok := m.Column(field); ok {
			add(col)
		}
	}
	sort.Ints(out)
	return out
}

// Newest returns the most recent period tag on the header row.
func (m *ColumnMap) Newest() (models.PeriodTag, bool) {
	var newest models.PeriodTag
	found := false
	for _, cols := range m.Periods {
		if len(cols) > 0 && (!found || cols[0].Tag.Newer(newest)) {
			newest = cols[0].Tag
			found = true
		}
	}
	return newest, found
}

// MapSource maps a raw header row.
func MapSource(sheet workbook.Sheet, headerRow int, table models.EquivalenceTable) *ColumnMap {
	return MapColumns(sheet, headerRow, table, Source, 0)
}

// MapDestination maps a template header row.
func MapDestination(sheet workbook.Sheet, headerRow int, table models.EquivalenceTable) *ColumnMap {
	return MapColumns(sheet, headerRow, table, Destination, 0)
}

// MapColumns maps every populated cell of headerRow.
//
// A date-valued header cell is tagged with its date under table.DateField.
// A label that repeats on the header row is tagged with the period its
// governing parent header carries (the first non-blank value above it,
// merges resolved, at most parentDepth rows up), a date or a YYYYMM code.
// Other labelled cells map directly, first column wins, whatever sits above
// them.
func MapColumns(sheet workbook.Sheet, headerRow int, table models.EquivalenceTable, side Side, parentDepth int) *ColumnMap {
	m := &ColumnMap{
		Side:      side,
		HeaderRow: headerRow,
		Direct:    make(map[string]int),
		Periods:   make(map[string][]models.PeriodColumn),
	}
	idx := header.NewMergeIndex(sheet.MergeRanges())

	lookup := table.CanonicalForRaw
	if side == Destination {
		lookup = table.CanonicalForTemplate
	}

	maxCol := sheet.MaxCol()
	repeats := make(map[string]int)
	for col := 1; col <= maxCol; col++ {
		v := sheet.Cell(headerRow, col)
		if v.IsBlank() || v.Kind == models.KindDate {
			continue
		}
		if field, ok := lookup(header.Label(v)); ok {
			repeats[field]++
		}
	}

	for col := 1; col <= maxCol; col++ {
		v := sheet.Cell(headerRow, col)
		if v.IsBlank() {
			continue
		}

		if v.Kind == models.KindDate {
			if table.DateField != "" {
				m.addPeriod(table.DateField, col, models.TagFromDate(v.Time))
			}
			continue
		}

		field, ok := lookup(header.Label(v))
		if !ok {
			continue
		}

		if repeats[field] > 1 {
			if parent, _, found := header.Parent(sheet, idx, headerRow, col, parentDepth); found {
				if tag, ok := period.TagOf(parent); ok {
					m.addPeriod(field, col, tag)
					continue
				}
			}
		}

		if kept, dup := m.Direct[field]; dup {
			m.Duplicates = append(m.Duplicates, models.DuplicateHeader{
				Side:   string(side),
				Field:  field,
				Column: col,
				Kept:   kept,
			})
			continue
		}
		m.Direct[field] = col
	}

	for field, cols := range m.Periods {
		m.Periods[field] = period.Rank(cols)
	}
	return m
}

func (m *ColumnMap) addPeriod(field string, col int, tag models.PeriodTag) {
	for _, c := range m.Periods[field] {
		if c.Tag.Same(tag) {
			m.Duplicates = append(m.Duplicates, models.DuplicateHeader{
				Side:   string(m.Side),
				Field:  field,
				Column: col,
				Kept:   c.Column,
			})
			return
		}
	}
	m.Periods[field] = append(m.Periods[field], models.PeriodColumn{Column: col, Tag: tag})
}
