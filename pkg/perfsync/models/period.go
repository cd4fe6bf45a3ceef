package models

import (
	"fmt"
	"time"
)

// PeriodTag identifies the reporting period a column belongs to.
type PeriodTag struct {
	// Time orders tags; for month codes it is the last day of the month.
	Time time.Time `json:"time"`
	// Code is the YYYYMM code the tag was parsed from, 0 for date headers.
	Code int `json:"code,omitempty"`
	// Label is the human-readable period, e.g. "30-Sep-2025" or "Sep-2025".
	Label string `json:"label"`
}

// TagFromDate builds a tag for a date-valued header cell.
func TagFromDate(t time.Time) PeriodTag {
	return PeriodTag{
		Time:  t,
		Label: t.Format("02-Jan-2006"),
	}
}

// TagFromCode builds a tag for a YYYYMM month code.
func TagFromCode(year int, month time.Month) PeriodTag {
	end := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	return PeriodTag{
		Time:  end,
		Code:  year*100 + int(month),
		Label: fmt.Sprintf("%s-%d", month.String()[:3], year),
	}
}

// IsZero reports whether the tag is unset.
func (p PeriodTag) IsZero() bool {
	return p.Time.IsZero()
}

// Newer reports whether p is strictly more recent than o.
func (p PeriodTag) Newer(o PeriodTag) bool {
	return p.Time.After(o.Time)
}

// Same reports whether both tags denote the same period.
func (p PeriodTag) Same(o PeriodTag) bool {
	return p.Time.Equal(o.Time)
}

// PeriodColumn is a header column tagged with a period.
type PeriodColumn struct {
	// Column is the 1-based column index.
	Column int `json:"column"`
	// Tag is the period the column reports.
	Tag PeriodTag `json:"tag"`
}
