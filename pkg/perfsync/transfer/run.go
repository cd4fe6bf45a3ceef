package transfer

import (
	"github.com/Sarthak-Corpcare/Excel-Automation/pkg/perfsync/models"
	"github.com/Sarthak-Corpcare/Excel-Automation/pkg/perfsync/workbook"
)

// TransferWorkbook runs Transfer for every raw sheet, in raw workbook order,
// that is not ignored and has a template sheet of the same name. Sheets are
// processed one after another against the shared template.
func (e *Engine) TransferWorkbook(raw, tmpl workbook.Workbook) *models.RunReport {
	report := &models.RunReport{}
	for _, name := range raw.SheetNames() {
		if e.ignored(name) {
			e.logger.Debug("Ignoring sheet", "sheet", name)
			continue
		}
		if !e.selected(name) {
			continue
		}
		e.logger.Info("Processing sheet", "sheet", name)

		rawSheet, ok := raw.Sheet(name)
		if !ok {
			report.Add(e.skip(e.logger.With("sheet", name),
				models.SheetReport{Sheet: name, State: models.StateStart},
				NewSheetError(name, SideRaw, ErrMissingSheet)))
			continue
		}
		tmplSheet, ok := tmpl.Sheet(name)
		if !ok {
			report.Add(e.skip(e.logger.With("sheet", name),
				models.SheetReport{Sheet: name, State: models.StateStart},
				NewSheetError(name, SideTemplate, ErrMissingSheet)))
			continue
		}
		report.Add(e.Transfer(rawSheet, tmplSheet))
	}

	done, skipped := report.Counts()
	e.logger.Info("Total rows written across all sheets",
		"rows", report.TotalRowsWritten, "sheets", done, "skipped", skipped)
	return report
}

func (e *Engine) ignored(name string) bool {
	for _, s := range e.settings.IgnoreSheets {
		if s == name {
			return true
		}
	}
	return false
}

func (e *Engine) selected(name string) bool {
	if len(e.settings.Sheets) == 0 {
		return true
	}
	for _, s := range e.settings.Sheets {
		if s == name {
			return true
		}
	}
	return false
}
