package models

// RunReport is the workbook-level container with per-sheet reports.
type RunReport struct {
	// RunID correlates the report with log lines.
	RunID string `json:"run_id"`
	// RawBook is the raw workbook file name (no path).
	RawBook string `json:"raw_book,omitempty"`
	// TemplateBook is the template workbook file name (no path).
	TemplateBook string `json:"template_book,omitempty"`
	// OutputBook is the saved workbook file name, empty on dry runs.
	OutputBook string `json:"output_book,omitempty"`
	// Sheets lists processed and skipped sheets in raw workbook order.
	Sheets []SheetReport `json:"sheets"`
	// TotalRowsWritten sums RowsWritten over all sheets.
	TotalRowsWritten int `json:"total_rows_written"`
	// LatestPeriod is the newest period seen on any processed sheet.
	LatestPeriod *PeriodTag `json:"latest_period,omitempty"`
}

// Sheet returns the report for the named sheet.
func (r *RunReport) Sheet(name string) (*SheetReport, bool) {
	for i := range r.Sheets {
		if r.Sheets[i].Sheet == name {
			return &r.Sheets[i], true
		}
	}
	return nil, false
}

// Add appends a sheet report and updates the run totals.
func (r *RunReport) Add(s SheetReport) {
	r.Sheets = append(r.Sheets, s)
	r.TotalRowsWritten += s.RowsWritten
	if s.Period != nil && (r.LatestPeriod == nil || s.Period.Newer(*r.LatestPeriod)) {
		p := *s.Period
		r.LatestPeriod = &p
	}
}

// Counts returns the number of completed and skipped sheets.
func (r *RunReport) Counts() (done, skipped int) {
	for i := range r.Sheets {
		if r.Sheets[i].Skipped() {
			skipped++
		} else {
			done++
		}
	}
	return done, skipped
}
