package perfsync

import (
	"errors"

	"github.com/Sarthak-Corpcare/Excel-Automation/pkg/perfsync/config"
	"github.com/Sarthak-Corpcare/Excel-Automation/pkg/perfsync/transfer"
)

// ErrFileNotFound indicates an input workbook does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrWorkbookLoad indicates an input workbook could not be opened.
var ErrWorkbookLoad = errors.New("failed to load workbook")

// ErrInvalidConfig indicates a configuration that failed validation.
var ErrInvalidConfig = config.ErrInvalidConfig

// Sheet-level errors, recorded on SheetReport.Err.
var (
	ErrMissingHeader    = transfer.ErrMissingHeader
	ErrMissingSheet     = transfer.ErrMissingSheet
	ErrMissingKeyColumn = transfer.ErrMissingKeyColumn
)

// SheetError is a sheet-level failure with the side it occurred on.
type SheetError = transfer.SheetError
