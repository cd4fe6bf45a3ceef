package workbook

import (
	"fmt"
	"sort"

	"github.com/Sarthak-Corpcare/Excel-Automation/pkg/perfsync/models"
)

type cellKey struct {
	row, col int
}

// Grid is an in-memory Sheet.
type Grid struct {
	name   string
	cells  map[cellKey]models.Value
	merges []models.MergeRange
}

// NewGrid creates an empty grid.
func NewGrid(name string) *Grid {
	return &Grid{
		name:  name,
		cells: make(map[cellKey]models.Value),
	}
}

// Put stores a value and returns the grid for chaining.
func (g *Grid) Put(row, col int, x interface{}) *Grid {
	_ = g.SetCell(row, col, models.ValueOf(x))
	return g
}

// PutRow stores values in row starting at column 1.
func (g *Grid) PutRow(row int, values ...interface{}) *Grid {
	for i, x := range values {
		g.Put(row, i+1, x)
	}
	return g
}

// Merge registers a merged range.
func (g *Grid) Merge(r1, c1, r2, c2 int) *Grid {
	g.merges = append(g.merges, models.MergeRange{R1: r1, C1: c1, R2: r2, C2: c2})
	return g
}

// Name returns the sheet name.
func (g *Grid) Name() string {
	return g.name
}

// Cell returns the value at (row, col).
func (g *Grid) Cell(row, col int) models.Value {
	return g.cells[cellKey{row, col}]
}

// SetCell writes a value; an empty value deletes the cell.
func (g *Grid) SetCell(row, col int, v models.Value) error {
	if row < 1 || col < 1 {
		return fmt.Errorf("invalid cell coordinates (%d, %d)", row, col)
	}
	if v.IsEmpty() {
		delete(g.cells, cellKey{row, col})
		return nil
	}
	g.cells[cellKey{row, col}] = v
	return nil
}

// MaxRow returns the last row holding a value.
func (g *Grid) MaxRow() int {
	maxRow := 0
	for k := range g.cells {
		if k.row > maxRow {
			maxRow = k.row
		}
	}
	return maxRow
}

// MaxCol returns the last column holding a value.
func (g *Grid) MaxCol() int {
	maxCol := 0
	for k := range g.cells {
		if k.col > maxCol {
			maxCol = k.col
		}
	}
	return maxCol
}

// MergeRanges returns the registered merges.
func (g *Grid) MergeRanges() []models.MergeRange {
	return g.merges
}

// RemoveRows deletes rows [from, from+count) and shifts later rows up.
// Merges that intersect the removed rows are dropped.
func (g *Grid) RemoveRows(from, count int) error {
	if from < 1 || count < 0 {
		return fmt.Errorf("invalid row range %d+%d", from, count)
	}
	if count == 0 {
		return nil
	}
	end := from + count
	shifted := make(map[cellKey]models.Value, len(g.cells))
	for k, v := range g.cells {
		switch {
		case k.row < from:
			shifted[k] = v
		case k.row >= end:
			shifted[cellKey{k.row - count, k.col}] = v
		}
	}
	g.cells = shifted

	merges := g.merges[:0]
	for _, m := range g.merges {
		switch {
		case m.R2 < from:
			merges = append(merges, m)
		case m.R1 >= end:
			m.R1 -= count
			m.R2 -= count
			merges = append(merges, m)
		}
	}
	g.merges = merges
	return nil
}

// InsertRows inserts count empty rows before row at. Merges below at move
// down; merges spanning at grow.
func (g *Grid) InsertRows(at, count int) error {
	if at < 1 || count < 0 {
		return fmt.Errorf("invalid row range %d+%d", at, count)
	}
	if count == 0 {
		return nil
	}
	shifted := make(map[cellKey]models.Value, len(g.cells))
	for k, v := range g.cells {
		if k.row >= at {
			k.row += count
		}
		shifted[k] = v
	}
	g.cells = shifted

	for i, m := range g.merges {
		switch {
		case m.R1 >= at:
			m.R1 += count
			m.R2 += count
		case m.R2 >= at:
			m.R2 += count
		}
		g.merges[i] = m
	}
	return nil
}

// Rows returns the grid contents as strings, one slice per row up to MaxRow.
// Intended for debugging and test assertions.
func (g *Grid) Rows() [][]string {
	maxRow, maxCol := g.MaxRow(), g.MaxCol()
	rows := make([][]string, maxRow)
	for r := 1; r <= maxRow; r++ {
		rows[r-1] = make([]string, maxCol)
		for c := 1; c <= maxCol; c++ {
			rows[r-1][c-1] = g.Cell(r, c).String()
		}
	}
	return rows
}

// MemoryWorkbook is an in-memory Workbook of grids.
type MemoryWorkbook struct {
	sheets map[string]*Grid
	order  []string
}

// NewMemoryWorkbook creates a workbook holding the given grids in order.
func NewMemoryWorkbook(grids ...*Grid) *MemoryWorkbook {
	w := &MemoryWorkbook{sheets: make(map[string]*Grid, len(grids))}
	for _, g := range grids {
		w.Add(g)
	}
	return w
}

// Add appends a grid, replacing any grid with the same name.
func (w *MemoryWorkbook) Add(g *Grid) {
	if _, ok := w.sheets[g.Name()]; !ok {
		w.order = append(w.order, g.Name())
	}
	w.sheets[g.Name()] = g
}

// SheetNames returns sheet names in insertion order.
func (w *MemoryWorkbook) SheetNames() []string {
	out := make([]string, len(w.order))
	copy(out, w.order)
	return out
}

// Sheet returns the named sheet.
func (w *MemoryWorkbook) Sheet(name string) (Sheet, bool) {
	g, ok := w.sheets[name]
	if !ok {
		return nil, false
	}
	return g, true
}

// Grid returns the named grid.
func (w *MemoryWorkbook) Grid(name string) *Grid {
	return w.sheets[name]
}

// sortedMerges returns merges ordered by start row then start column.
func sortedMerges(in []models.MergeRange) []models.MergeRange {
	out := make([]models.MergeRange, len(in))
	copy(out, in)
	sort.Slice(out, func(i, j int) bool {
		if out[i].R1 != out[j].R1 {
			return out[i].R1 < out[j].R1
		}
		return out[i].C1 < out[j].C1
	})
	return out
}
