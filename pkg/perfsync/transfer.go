package perfsync

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/Sarthak-Corpcare/Excel-Automation/pkg/perfsync/models"
	"github.com/Sarthak-Corpcare/Excel-Automation/pkg/perfsync/transfer"
	"github.com/Sarthak-Corpcare/Excel-Automation/pkg/perfsync/workbook"
)

// Run transfers rawPath into templatePath and saves the result as
// outputPath. Sheet-level problems are recorded in the report; an error is
// returned only for invalid configuration or when a workbook cannot be
// loaded or saved. Nothing is written if loading fails.
func Run(rawPath, templatePath, outputPath string, opts Options) (*models.RunReport, error) {
	cfg := opts.config()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !opts.DryRun && outputPath == "" {
		return nil, errors.New("output path is required")
	}

	raw, err := openWorkbook(rawPath)
	if err != nil {
		return nil, err
	}
	defer raw.Close()

	tmpl, err := openWorkbook(templatePath)
	if err != nil {
		return nil, err
	}
	defer tmpl.Close()

	report := TransferWorkbooks(raw, tmpl, opts)
	report.RawBook = filepath.Base(rawPath)
	report.TemplateBook = filepath.Base(templatePath)

	if opts.DryRun {
		opts.logger().Info("Dry run, output workbook not saved", "run_id", report.RunID)
		return report, nil
	}
	if err := tmpl.SaveAs(outputPath); err != nil {
		return report, fmt.Errorf("failed to save %s: %w", outputPath, err)
	}
	report.OutputBook = filepath.Base(outputPath)
	opts.logger().Info("Saved output workbook", "run_id", report.RunID, "path", outputPath)
	return report, nil
}

// TransferWorkbooks runs the transfer over already opened workbooks. tmpl is
// modified in place.
func TransferWorkbooks(raw, tmpl workbook.Workbook, opts Options) *models.RunReport {
	cfg := opts.config()
	settings := cfg.Settings()
	settings.Sheets = opts.Sheets

	runID := uuid.NewString()
	logger := opts.logger().With("run_id", runID)
	logger.Info("Starting data transfer")

	report := transfer.NewEngine(settings, logger).TransferWorkbook(raw, tmpl)
	report.RunID = runID
	if report.LatestPeriod != nil {
		logger.Info("Latest period", "period", report.LatestPeriod.Label)
	}
	return report
}

func openWorkbook(path string) (*workbook.ExcelWorkbook, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrWorkbookLoad, path, err)
	}
	wb, err := workbook.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrWorkbookLoad, path, err)
	}
	return wb, nil
}
