// Package period ranks period-tagged columns and chooses, per row, the newest
// meaningful value with a fallback to older periods.
package period

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Sarthak-Corpcare/Excel-Automation/pkg/perfsync/models"
)

// Placeholder is the text exports use for "no data".
const Placeholder = "-"

// Meaningful reports whether a cell carries data: not empty, not blank text,
// not the placeholder and not numeric zero (including zero written as text).
func Meaningful(v models.Value) bool {
	switch v.Kind {
	case models.KindEmpty:
		return false
	case models.KindNumber:
		return v.Number != 0
	case models.KindDate:
		return !v.Time.IsZero()
	}
	s := strings.TrimSpace(v.Text)
	if s == "" || s == Placeholder {
		return false
	}
	if d, err := decimal.NewFromString(s); err == nil && d.IsZero() {
		return false
	}
	return true
}

var periodCode = regexp.MustCompile(`(?:^|\D)((?:19|20)\d{2})(0[1-9]|1[0-2])(?:\D|$)`)

// ParseCode extracts a YYYYMM month code from a label such as "202509" or
// "Rating 202509".
func ParseCode(label string) (models.PeriodTag, bool) {
	m := periodCode.FindStringSubmatch(label)
	if m == nil {
		return models.PeriodTag{}, false
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	return models.TagFromCode(year, time.Month(month)), true
}

// TagOf returns the period carried by a header value: its date, or a month
// code found in its text.
func TagOf(v models.Value) (models.PeriodTag, bool) {
	switch v.Kind {
	case models.KindDate:
		return models.TagFromDate(v.Time), true
	case models.KindEmpty:
		return models.PeriodTag{}, false
	}
	return ParseCode(v.String())
}

// Rank returns a copy of cols ordered newest first. Columns of the same
// period keep their left-to-right order.
func Rank(cols []models.PeriodColumn) []models.PeriodColumn {
	out := make([]models.PeriodColumn, len(cols))
	copy(out, cols)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Tag.Newer(out[j].Tag)
	})
	return out
}

// Choose picks from values ranked newest first. It returns the index of the
// first meaningful value and whether that index is not the newest; -1 when
// nothing is meaningful.
func Choose(values []models.Value) (int, bool) {
	for i, v := range values {
		if Meaningful(v) {
			return i, i > 0
		}
	}
	return -1, false
}

// ChooseGroup picks one period for a whole group. periods[i] holds the
// members' values for the i-th newest period; the first period in which any
// member is meaningful wins.
func ChooseGroup(periods [][]models.Value) (int, bool) {
	for i, values := range periods {
		for _, v := range values {
			if Meaningful(v) {
				return i, i > 0
			}
		}
	}
	return -1, false
}
