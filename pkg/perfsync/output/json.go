// Package output serializes run reports.
package output

import (
	"encoding/json"

	"github.com/Sarthak-Corpcare/Excel-Automation/pkg/perfsync/models"
)

// ToJSON serializes a run report.
func ToJSON(report *models.RunReport, pretty bool) ([]byte, error) {
	return marshal(report, pretty)
}

// SheetToJSON serializes a single sheet report.
func SheetToJSON(sheet *models.SheetReport, pretty bool) ([]byte, error) {
	return marshal(sheet, pretty)
}

// Summary is the condensed form of a run report, without per-cell writes.
type Summary struct {
	RunID            string         `json:"run_id"`
	OutputBook       string         `json:"output_book,omitempty"`
	TotalRowsWritten int            `json:"total_rows_written"`
	LatestPeriod     string         `json:"latest_period,omitempty"`
	Sheets           []SheetSummary `json:"sheets"`
}

// SheetSummary is one sheet line of a Summary.
type SheetSummary struct {
	Sheet        string `json:"sheet"`
	State        string `json:"state"`
	Reason       string `json:"reason,omitempty"`
	RowsWritten  int    `json:"rows_written"`
	FallbackUsed bool   `json:"fallback_used"`
	PeriodColumn int    `json:"period_column,omitempty"`
}

// Summarize condenses report.
func Summarize(report *models.RunReport) Summary {
	s := Summary{
		RunID:            report.RunID,
		OutputBook:       report.OutputBook,
		TotalRowsWritten: report.TotalRowsWritten,
		Sheets:           make([]SheetSummary, 0, len(report.Sheets)),
	}
	if report.LatestPeriod != nil {
		s.LatestPeriod = report.LatestPeriod.Label
	}
	for _, sh := range report.Sheets {
		s.Sheets = append(s.Sheets, SheetSummary{
			Sheet:        sh.Sheet,
			State:        string(sh.State),
			Reason:       sh.Reason,
			RowsWritten:  sh.RowsWritten,
			FallbackUsed: sh.FallbackUsed,
			PeriodColumn: sh.PeriodColumn,
		})
	}
	return s
}

// SummaryToJSON serializes the condensed form of report.
func SummaryToJSON(report *models.RunReport, pretty bool) ([]byte, error) {
	s := Summarize(report)
	return marshal(&s, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
