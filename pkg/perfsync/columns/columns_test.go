package columns

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sarthak-Corpcare/Excel-Automation/pkg/perfsync/models"
	"github.com/Sarthak-Corpcare/Excel-Automation/pkg/perfsync/workbook"
)

var (
	sepDate = time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC)
	augDate = time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC)
)

func testTable() models.EquivalenceTable {
	return models.NewEquivalenceTable([]models.FieldSpec{
		{Name: "Scheme Name", Raw: "Scheme Name", Template: "Scheme Name"},
		{Name: "Avg Maturity", Raw: "Average Maturity Years", Template: "Avg Mat"},
		{Name: "1 Year", Raw: "1 Year", Template: "1 Year"},
		{Name: "AA", Raw: "AA", Template: "AA"},
		{Name: "SOV", Raw: "SOV", Template: "SOV"},
	}, "AUM")
}

func rawSheet() *workbook.Grid {
	return workbook.NewGrid("Debt").
		Put(1, 1, "Daily Performance").
		Put(2, 6, "202509").Merge(2, 6, 2, 7).
		Put(2, 8, "202508").Merge(2, 8, 2, 9).
		PutRow(3, "Scheme Name", sepDate, augDate, "1 Year", "1 Year", "AA", "SOV", "AA", "SOV", "Unknown", "Average Maturity Years")
}

func TestMapSource(t *testing.T) {
	m := MapSource(rawSheet(), 3, testTable())

	assert.Equal(t, Source, m.Side)
	assert.Equal(t, 3, m.HeaderRow)
	assert.Equal(t, map[string]int{"Scheme Name": 1, "1 Year": 4, "Avg Maturity": 11}, m.Direct)

	require.Len(t, m.Periods["AUM"], 2)
	assert.Equal(t, 2, m.Periods["AUM"][0].Column)
	assert.Equal(t, 3, m.Periods["AUM"][1].Column)

	require.Len(t, m.Periods["AA"], 2)
	assert.Equal(t, 6, m.Periods["AA"][0].Column)
	assert.Equal(t, 202509, m.Periods["AA"][0].Tag.Code)
	assert.Equal(t, 8, m.Periods["AA"][1].Column)

	require.Len(t, m.Periods["SOV"], 2)
	assert.Equal(t, 7, m.Periods["SOV"][0].Column)
	assert.Equal(t, 9, m.Periods["SOV"][1].Column)

	assert.Equal(t, []models.DuplicateHeader{
		{Side: "raw", Field: "1 Year", Column: 5, Kept: 4},
	}, m.Duplicates)

	assert.True(t, m.Has("AUM"))
	assert.True(t, m.HasPeriods("AA"))
	assert.False(t, m.HasPeriods("1 Year"))
	assert.False(t, m.Has("Unknown"))

	col, ok := m.Column("AUM")
	require.True(t, ok)
	assert.Equal(t, 2, col)

	assert.Equal(t, []int{1, 2, 4, 6, 7, 11}, m.Columns())

	newest, ok := m.Newest()
	require.True(t, ok)
	assert.True(t, newest.Time.Equal(sepDate))
}

func TestMapDestination(t *testing.T) {
	tmpl := workbook.NewGrid("Debt").
		PutRow(9, "Scheme Name", "Avg Mat", "Average Maturity Years", augDate, "1 Year")

	m := MapDestination(tmpl, 9, testTable())
	assert.Equal(t, Destination, m.Side)
	assert.Equal(t, map[string]int{"Scheme Name": 1, "Avg Maturity": 2, "1 Year": 5}, m.Direct)

	col, ok := m.Column("AUM")
	require.True(t, ok)
	assert.Equal(t, 4, col)
	assert.Empty(t, m.Duplicates)
}

func TestMapColumnsDuplicatePeriod(t *testing.T) {
	sheet := workbook.NewGrid("S").
		PutRow(1, "Scheme Name", sepDate, sepDate, augDate)

	m := MapColumns(sheet, 1, testTable(), Source, 0)
	require.Len(t, m.Periods["AUM"], 2)
	assert.Equal(t, 2, m.Periods["AUM"][0].Column)
	assert.Equal(t, 4, m.Periods["AUM"][1].Column)
	assert.Equal(t, []models.DuplicateHeader{
		{Side: "raw", Field: "AUM", Column: 3, Kept: 2},
	}, m.Duplicates)
}

func TestMapColumnsNoDateField(t *testing.T) {
	table := models.NewEquivalenceTable([]models.FieldSpec{
		{Name: "Scheme Name", Raw: "Scheme Name", Template: "Scheme Name"},
	}, "")
	sheet := workbook.NewGrid("S").PutRow(1, "Scheme Name", sepDate)

	m := MapColumns(sheet, 1, table, Source, 0)
	assert.Empty(t, m.Periods)
	assert.Equal(t, []int{1}, m.Columns())
	_, ok := m.Newest()
	assert.False(t, ok)
}

func TestMapColumnsParentDepth(t *testing.T) {
	sheet := workbook.NewGrid("S").
		Put(1, 2, "202509").
		Put(1, 3, "202508").
		PutRow(4, "Scheme Name", "AA", "AA")

	m := MapColumns(sheet, 4, testTable(), Source, 0)
	require.True(t, m.HasPeriods("AA"))
	assert.Equal(t, 2, m.Periods["AA"][0].Column)
	assert.Equal(t, 3, m.Periods["AA"][1].Column)

	m = MapColumns(sheet, 4, testTable(), Source, 2)
	assert.False(t, m.HasPeriods("AA"))
	assert.Equal(t, 2, m.Direct["AA"])
	assert.Equal(t, []models.DuplicateHeader{
		{Side: "raw", Field: "AA", Column: 3, Kept: 2},
	}, m.Duplicates)
}

func TestMapColumnsDateAbovePlainColumns(t *testing.T) {
	tests := []struct {
		name  string
		sheet *workbook.Grid
	}{
		{
			name: "as-on date",
			sheet: workbook.NewGrid("S").
				PutRow(1, "As on", augDate).
				PutRow(3, "Scheme Name", "1 Year", "AA"),
		},
		{
			name: "merged title date",
			sheet: workbook.NewGrid("S").
				Put(1, 1, augDate).Merge(1, 1, 1, 3).
				PutRow(3, "Scheme Name", "1 Year", "AA"),
		},
		{
			name: "month code title",
			sheet: workbook.NewGrid("S").
				Put(1, 2, "Performance 202509").
				PutRow(3, "Scheme Name", "1 Year", "AA"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := MapColumns(tt.sheet, 3, testTable(), Source, 0)
			assert.Equal(t, map[string]int{"Scheme Name": 1, "1 Year": 2, "AA": 3}, m.Direct)
			assert.Empty(t, m.Periods)
		})
	}
}

func TestMapColumnsNormalizesLabels(t *testing.T) {
	sheet := workbook.NewGrid("S").PutRow(1, " Scheme Name ", "1 Year\t")

	m := MapColumns(sheet, 1, testTable(), Source, 0)
	assert.Equal(t, map[string]int{"Scheme Name": 1, "1 Year": 2}, m.Direct)
}
