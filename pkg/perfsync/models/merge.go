package models

// MergeRange represents cell coordinate bounds for a merged range.
type MergeRange struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// Contains reports whether (row, col) falls inside the range.
func (m MergeRange) Contains(row, col int) bool {
	return row >= m.R1 && row <= m.R2 && col >= m.C1 && col <= m.C2
}
