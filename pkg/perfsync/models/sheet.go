package models

// SheetState is the progress of one sheet through the transfer.
type SheetState string

const (
	StateStart         SheetState = "start"
	StateHeaderLocated SheetState = "header_located"
	StateColumnsMapped SheetState = "columns_mapped"
	StateCleared       SheetState = "cleared"
	StateWriting       SheetState = "writing"
	StateDone          SheetState = "done"
	StateSkipped       SheetState = "skipped"
)

// CellWrite records one value written into the template.
type CellWrite struct {
	// Row is the template row (1-based).
	Row int `json:"row"`
	// Col is the template column (1-based).
	Col int `json:"col"`
	// Field is the canonical field written.
	Field string `json:"field"`
	// Value is the value written; empty means the cell was cleared.
	Value Value `json:"value"`
	// Fallback is set when the value came from an older period.
	Fallback bool `json:"fallback,omitempty"`
}

// ClearedRange is the stale template region that was blanked.
type ClearedRange struct {
	// FromRow is the first cleared row (1-based).
	FromRow int `json:"from_row"`
	// ToRow is the last cleared row (1-based, inclusive).
	ToRow int `json:"to_row"`
	// Columns are the template columns cleared in each row.
	Columns []int `json:"columns"`
}

// Rows returns the number of cleared rows.
func (c ClearedRange) Rows() int {
	if c.ToRow < c.FromRow {
		return 0
	}
	return c.ToRow - c.FromRow + 1
}

// DuplicateHeader is a header label ignored because an earlier column with
// the same canonical field was already mapped.
type DuplicateHeader struct {
	Side   string `json:"side"`
	Field  string `json:"field"`
	Column int    `json:"column"`
	Kept   int    `json:"kept"`
}

// BenchmarkResult describes what the benchmark handler did on a sheet.
type BenchmarkResult struct {
	Policy  BenchmarkPolicy `json:"policy"`
	Applied bool            `json:"applied"`
	// Rows is the number of rows copied or removed.
	Rows int `json:"rows,omitempty"`
}

// SheetReport is the per-sheet outcome handed to the presentation layer.
type SheetReport struct {
	// Sheet is the sheet name, identical in both workbooks.
	Sheet string `json:"sheet"`
	// State is the final state reached.
	State SheetState `json:"state"`
	// Reason explains a skip.
	Reason string `json:"reason,omitempty"`
	// Err is the skip cause for errors.Is checks.
	Err error `json:"-"`

	RawHeaderRow      int `json:"raw_header_row,omitempty"`
	TemplateHeaderRow int `json:"template_header_row,omitempty"`

	// RowsWritten is the number of data rows migrated.
	RowsWritten int `json:"rows_written"`
	// FallbackUsed is set when any written cell came from an older period.
	FallbackUsed bool `json:"fallback_used"`

	// PeriodField is the recency-merged field (e.g. "AUM") when mapped.
	PeriodField string `json:"period_field,omitempty"`
	// PeriodColumn is the template column holding PeriodField.
	PeriodColumn int `json:"period_column,omitempty"`
	// Period is the newest period found in the raw sheet, used for legends.
	Period *PeriodTag `json:"period,omitempty"`

	// InsertedRows counts rows inserted above the benchmark block to make
	// room for new data.
	InsertedRows int `json:"inserted_rows,omitempty"`

	Cleared    *ClearedRange     `json:"cleared,omitempty"`
	Duplicates []DuplicateHeader `json:"duplicates,omitempty"`
	Benchmark  *BenchmarkResult  `json:"benchmark,omitempty"`
	Writes     []CellWrite       `json:"writes,omitempty"`
}

// Skipped reports whether the sheet was skipped.
func (r *SheetReport) Skipped() bool {
	return r.State == StateSkipped
}

// FallbackCells returns the writes that used an older period.
func (r *SheetReport) FallbackCells() []CellWrite {
	var out []CellWrite
	for _, w := range r.Writes {
		if w.Fallback {
			out = append(out, w)
		}
	}
	return out
}
