package transfer

import (
	"errors"
	"fmt"
)

// ErrMissingHeader indicates the anchor label was not found in the header band.
var ErrMissingHeader = errors.New("header row not found")

// ErrMissingSheet indicates a raw sheet has no counterpart in the template.
var ErrMissingSheet = errors.New("sheet not found")

// ErrMissingKeyColumn indicates the key field is not mapped on a header row.
var ErrMissingKeyColumn = errors.New("key column not mapped")

// Sides reported by SheetError.
const (
	SideRaw      = "raw"
	SideTemplate = "template"
)

// SheetError is a sheet-level failure. The run records it and continues.
type SheetError struct {
	SheetName string
	Side      string // "raw" or "template"
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q (%s): %v", e.SheetName, e.Side, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheetName, side string, err error) *SheetError {
	return &SheetError{
		SheetName: sheetName,
		Side:      side,
		Err:       err,
	}
}
