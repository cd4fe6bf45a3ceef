package period

import (
	"github.com/Sarthak-Corpcare/Excel-Automation/pkg/perfsync/models"
	"github.com/Sarthak-Corpcare/Excel-Automation/pkg/perfsync/workbook"
)

// Resolution is the value chosen for one field in one row.
type Resolution struct {
	Value models.Value
	// Column is the source column read, 0 when nothing was chosen.
	Column int
	Tag    models.PeriodTag
	// Fallback is set when the value comes from an older period.
	Fallback bool
}

// Resolve reads row from the ranked columns of one field.
func Resolve(sheet workbook.Sheet, row int, ranked []models.PeriodColumn) Resolution {
	values := make([]models.Value, len(ranked))
	for i, c := range ranked {
		values[i] = sheet.Cell(row, c.Column)
	}
	idx, fallback := Choose(values)
	if idx < 0 {
		return Resolution{Value: models.Empty()}
	}
	return Resolution{
		Value:    values[idx],
		Column:   ranked[idx].Column,
		Tag:      ranked[idx].Tag,
		Fallback: fallback,
	}
}

// Member is one field of a group with its period-tagged source columns.
type Member struct {
	Field   string
	Columns []models.PeriodColumn
}

// GroupPeriods returns the distinct periods across members, newest first.
func GroupPeriods(members []Member) []models.PeriodTag {
	var tags []models.PeriodTag
	for _, m := range members {
		for _, c := range m.Columns {
			if !containsTag(tags, c.Tag) {
				tags = append(tags, c.Tag)
			}
		}
	}
	ranked := make([]models.PeriodColumn, len(tags))
	for i, t := range tags {
		ranked[i] = models.PeriodColumn{Tag: t}
	}
	ranked = Rank(ranked)
	for i := range ranked {
		tags[i] = ranked[i].Tag
	}
	return tags
}

// ResolveGroup reads row for every member from one shared period. If any
// member is meaningful in the newest period all members read the newest
// period; otherwise the group moves to older periods together. A member
// without a column for the chosen period resolves to empty, without the
// fallback flag.
func ResolveGroup(sheet workbook.Sheet, row int, members []Member) map[string]Resolution {
	tags := GroupPeriods(members)
	periods := make([][]models.Value, len(tags))
	columns := make([][]int, len(tags))
	for i, tag := range tags {
		periods[i] = make([]models.Value, len(members))
		columns[i] = make([]int, len(members))
		for j, m := range members {
			col := columnFor(m.Columns, tag)
			columns[i][j] = col
			if col > 0 {
				periods[i][j] = sheet.Cell(row, col)
			}
		}
	}

	out := make(map[string]Resolution, len(members))
	idx, fallback := ChooseGroup(periods)
	for j, m := range members {
		if idx < 0 {
			out[m.Field] = Resolution{Value: models.Empty()}
			continue
		}
		col := columns[idx][j]
		if col == 0 {
			out[m.Field] = Resolution{Value: models.Empty(), Tag: tags[idx]}
			continue
		}
		out[m.Field] = Resolution{
			Value:    periods[idx][j],
			Column:   col,
			Tag:      tags[idx],
			Fallback: fallback,
		}
	}
	return out
}

func columnFor(cols []models.PeriodColumn, tag models.PeriodTag) int {
	for _, c := range cols {
		if c.Tag.Same(tag) {
			return c.Column
		}
	}
	return 0
}

func containsTag(tags []models.PeriodTag, tag models.PeriodTag) bool {
	for _, t := range tags {
		if t.Same(tag) {
			return true
		}
	}
	return false
}
