// Package transfer migrates data rows from a raw sheet into a template sheet.
package transfer

import (
	"errors"
	"log/slog"

	"github.com/Sarthak-Corpcare/Excel-Automation/pkg/perfsync/columns"
	"github.com/Sarthak-Corpcare/Excel-Automation/pkg/perfsync/header"
	"github.com/Sarthak-Corpcare/Excel-Automation/pkg/perfsync/models"
	"github.com/Sarthak-Corpcare/Excel-Automation/pkg/perfsync/period"
	"github.com/Sarthak-Corpcare/Excel-Automation/pkg/perfsync/workbook"
)

// Settings configures an Engine.
type Settings struct {
	// Table is the canonical field equivalence table.
	Table models.EquivalenceTable
	// KeyField is the canonical field whose blank cell ends the data rows.
	KeyField string
	// HeaderAnchor is the label that identifies the header row.
	HeaderAnchor string
	// HeaderRowLimit bounds the header search.
	HeaderRowLimit int
	// ParentDepth bounds the upward parent-header scan; 0 scans to row 1.
	ParentDepth int
	// Groups lists fields that resolve their period together.
	Groups []models.FieldGroup
	// IgnoreSheets are never processed.
	IgnoreSheets []string
	// Sheets, when set, restricts the run to these sheets.
	Sheets []string
	// BenchmarkMarker is the column-1 label starting the benchmark block.
	BenchmarkMarker string
	// BenchmarkPolicy selects what happens to the benchmark block.
	BenchmarkPolicy models.BenchmarkPolicy
}

// Engine runs the per-sheet transfer. It keeps no state between sheets.
type Engine struct {
	settings Settings
	groupOf  map[string]int
	logger   *slog.Logger
}

// NewEngine creates an engine. A nil logger uses slog.Default().
func NewEngine(settings Settings, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if settings.HeaderRowLimit <= 0 {
		settings.HeaderRowLimit = header.DefaultRowLimit
	}
	groupOf := make(map[string]int)
	for i, g := range settings.Groups {
		for _, f := range g.Fields {
			if _, ok := groupOf[f]; !ok {
				groupOf[f] = i
			}
		}
	}
	return &Engine{
		settings: settings,
		groupOf:  groupOf,
		logger:   logger,
	}
}

type fieldKind int

const (
	kindDirect fieldKind = iota
	kindPeriod
	kindGroup
)

// fieldPlan says where one destination field reads from.
type fieldPlan struct {
	field   string
	kind    fieldKind
	dstCol  int
	srcCol  int
	periods []models.PeriodColumn
}

type groupPlan struct {
	members []period.Member
}

// Transfer migrates raw into tmpl and reports what was written. Sheet-level
// failures end the sheet in StateSkipped with Err set.
func (e *Engine) Transfer(raw, tmpl workbook.Sheet) models.SheetReport {
	name := raw.Name()
	log := e.logger.With("sheet", name)
	report := models.SheetReport{Sheet: name, State: models.StateStart}

	rawHeader, ok := header.Locate(raw, e.settings.HeaderAnchor, e.settings.HeaderRowLimit)
	if !ok {
		return e.skip(log, report, NewSheetError(name, SideRaw, ErrMissingHeader))
	}
	tmplHeader, ok := header.Locate(tmpl, e.settings.HeaderAnchor, e.settings.HeaderRowLimit)
	if !ok {
		return e.skip(log, report, NewSheetError(name, SideTemplate, ErrMissingHeader))
	}
	report.RawHeaderRow = rawHeader
	report.TemplateHeaderRow = tmplHeader
	report.State = models.StateHeaderLocated

	src := columns.MapColumns(raw, rawHeader, e.settings.Table, columns.Source, e.settings.ParentDepth)
	dst := columns.MapColumns(tmpl, tmplHeader, e.settings.Table, columns.Destination, e.settings.ParentDepth)
	report.Duplicates = append(append(report.Duplicates, src.Duplicates...), dst.Duplicates...)
	for _, d := range report.Duplicates {
		log.Warn("Duplicate header ignored",
			"side", d.Side, "field", d.Field, "column", d.Column, "kept_column", d.Kept)
	}
	report.State = models.StateColumnsMapped

	srcKey, ok := src.Column(e.settings.KeyField)
	if !ok {
		return e.skip(log, report, NewSheetError(name, SideRaw, ErrMissingKeyColumn))
	}
	dstKey, ok := dst.Column(e.settings.KeyField)
	if !ok {
		return e.skip(log, report, NewSheetError(name, SideTemplate, ErrMissingKeyColumn))
	}

	plans, groups := e.plan(src, dst)

	// the template's benchmark block bounds the stale region and is moved
	// down, not overwritten, when new rows reach it
	benchRow, _ := BenchmarkRow(tmpl, tmplHeader, e.settings.BenchmarkMarker)

	cleared, err := ClearStale(tmpl, tmplHeader, dstKey, benchRow, dst.Columns())
	if err != nil {
		return e.skip(log, report, NewSheetError(name, SideTemplate, err))
	}
	if cleared.Rows() > 0 {
		report.Cleared = &cleared
		log.Info("Cleared old data", "from_row", cleared.FromRow, "to_row", cleared.ToRow)
	}
	report.State = models.StateCleared

	report.State = models.StateWriting
	benchRow, err = e.writeRows(raw, tmpl, rawHeader, tmplHeader, srcKey, benchRow, plans, groups, &report)
	if err != nil {
		// rows already written stay written
		return e.skip(log, report, NewSheetError(name, SideTemplate, err))
	}
	if report.InsertedRows > 0 {
		log.Warn("Inserted rows above benchmark block",
			"rows", report.InsertedRows, "benchmark_row", benchRow)
	}

	if tag, ok := src.Newest(); ok {
		report.Period = &tag
	}
	if df := e.settings.Table.DateField; df != "" {
		if col, ok := dst.Column(df); ok && src.Has(df) {
			report.PeriodField = df
			report.PeriodColumn = col
		}
	}

	if e.settings.BenchmarkPolicy != "" && e.settings.BenchmarkPolicy != models.BenchmarkSkip {
		bench, err := ApplyBenchmark(raw, tmpl, benchRow, e.settings.BenchmarkMarker, e.settings.BenchmarkPolicy)
		if err != nil {
			log.Warn("Benchmark block not updated", "policy", e.settings.BenchmarkPolicy, "error", err)
		} else {
			report.Benchmark = &bench
		}
	}

	report.State = models.StateDone
	log.Info("Wrote rows of new data",
		"rows", report.RowsWritten, "fallback_used", report.FallbackUsed)
	return report
}

// plan decides, for every destination field also present in the source,
// whether it is copied directly, resolved by period, or resolved with its
// group.
func (e *Engine) plan(src, dst *columns.ColumnMap) ([]fieldPlan, []groupPlan) {
	var plans []fieldPlan
	groups := make([]groupPlan, len(e.settings.Groups))

	for _, field := range e.settings.Table.Names() {
		dstCol, ok := dst.Column(field)
		if !ok || !src.Has(field) {
			continue
		}
		p := fieldPlan{field: field, dstCol: dstCol}
		switch {
		case src.HasPeriods(field):
			p.periods = src.Periods[field]
			p.kind = kindPeriod
			if gi, ok := e.groupOf[field]; ok {
				p.kind = kindGroup
				groups[gi].members = append(groups[gi].members, period.Member{Field: field, Columns: p.periods})
			}
		default:
			p.srcCol = src.Direct[field]
		}
		plans = append(plans, p)
	}
	return plans, groups
}

// writeRows copies data rows until the first blank key cell. Template rows
// are filled sequentially below the template header. When a row would land
// on benchRow an empty row is inserted first; the shifted benchmark row is
// returned.
func (e *Engine) writeRows(raw, tmpl workbook.Sheet, rawHeader, tmplHeader, srcKey, benchRow int, plans []fieldPlan, groups []groupPlan, report *models.SheetReport) (int, error) {
	for row := rawHeader + 1; !raw.Cell(row, srcKey).IsBlank(); row++ {
		dstRow := tmplHeader + 1 + report.RowsWritten
		if benchRow > 0 && dstRow >= benchRow {
			if err := tmpl.InsertRows(benchRow, 1); err != nil {
				return benchRow, err
			}
			benchRow++
			report.InsertedRows++
		}

		resolved := make(map[string]period.Resolution)
		for _, g := range groups {
			if len(g.members) == 0 {
				continue
			}
			for field, r := range period.ResolveGroup(raw, row, g.members) {
				resolved[field] = r
			}
		}

		for _, p := range plans {
			var (
				value    models.Value
				fallback bool
			)
			switch p.kind {
			case kindDirect:
				value = raw.Cell(row, p.srcCol)
			case kindPeriod:
				r := period.Resolve(raw, row, p.periods)
				value, fallback = r.Value, r.Fallback
			case kindGroup:
				r := resolved[p.field]
				value, fallback = r.Value, r.Fallback
			}
			if err := tmpl.SetCell(dstRow, p.dstCol, value); err != nil {
				return benchRow, err
			}
			report.Writes = append(report.Writes, models.CellWrite{
				Row:      dstRow,
				Col:      p.dstCol,
				Field:    p.field,
				Value:    value,
				Fallback: fallback,
			})
			if fallback {
				report.FallbackUsed = true
			}
		}
		report.RowsWritten++
	}
	return benchRow, nil
}

func (e *Engine) skip(log *slog.Logger, report models.SheetReport, err error) models.SheetReport {
	report.State = models.StateSkipped
	report.Err = err
	report.Reason = err.Error()
	var se *SheetError
	if errors.As(err, &se) {
		log.Warn("Skipping sheet", "side", se.Side, "error", se.Err)
	} else {
		log.Warn("Skipping sheet", "error", err)
	}
	return report
}
