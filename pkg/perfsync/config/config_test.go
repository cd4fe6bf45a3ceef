package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sarthak-Corpcare/Excel-Automation/pkg/perfsync/models"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "Scheme Name", cfg.Anchor)
	assert.Equal(t, "Scheme Name", cfg.KeyField)
	assert.Equal(t, "AUM", cfg.DateField)
	assert.Equal(t, 20, cfg.HeaderRowLimit)
	assert.Equal(t, []string{"Home", "Sheet1", "Disclaimer"}, cfg.IgnoreSheets)
	assert.Equal(t, "skip", cfg.BenchmarkPolicy)
	assert.Len(t, cfg.Fields, 34)
	require.Len(t, cfg.Groups, 1)
	assert.Len(t, cfg.Groups[0].Fields, 9)

	table := cfg.Table()
	name, ok := table.CanonicalForRaw("SINCE INCEPTION")
	require.True(t, ok)
	assert.Equal(t, "Since Inception", name)
	name, ok = table.CanonicalForTemplate("[Fund Manager 1]")
	require.True(t, ok)
	assert.Equal(t, "Fund Manager 1", name)
	name, ok = table.CanonicalForRaw("Average Maturity Years")
	require.True(t, ok)
	assert.Equal(t, "Avg Maturity", name)

	// defaults are copies
	cfg.IgnoreSheets[0] = "changed"
	assert.Equal(t, "Home", DefaultIgnoreSheets[0])
}

func TestLoadFileYAML(t *testing.T) {
	path := writeFile(t, "perfsync.yaml", `
anchor: Fund Name
key_field: Fund
header_row_limit: 30
ignore_sheets: [Cover]
benchmark_policy: transfer
fields:
  - name: Fund
    raw: Fund Name
    template: Fund Name
  - name: Return
    raw: 1Y
    template: 1 Year
groups:
  - name: Returns
    fields: [Return]
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Fund Name", cfg.Anchor)
	assert.Equal(t, "Fund", cfg.KeyField)
	assert.Equal(t, 30, cfg.HeaderRowLimit)
	assert.Equal(t, []string{"Cover"}, cfg.IgnoreSheets)
	assert.Equal(t, "transfer", cfg.BenchmarkPolicy)
	assert.Equal(t, []FieldConfig{
		{Name: "Fund", Raw: "Fund Name", Template: "Fund Name"},
		{Name: "Return", Raw: "1Y", Template: "1 Year"},
	}, cfg.Fields)
	assert.Equal(t, []GroupConfig{{Name: "Returns", Fields: []string{"Return"}}}, cfg.Groups)
	assert.Empty(t, cfg.DateField)
}

func TestLoadFileTOML(t *testing.T) {
	path := writeFile(t, "perfsync.toml", `
anchor = "Fund Name"
key_field = "Fund"
parent_depth = 3
benchmark_policy = "remove"

[[fields]]
name = "Fund"
raw = "Fund Name"
template = "Fund Name"
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Fund Name", cfg.Anchor)
	assert.Equal(t, 3, cfg.ParentDepth)
	assert.Equal(t, "remove", cfg.BenchmarkPolicy)
	assert.Equal(t, []FieldConfig{{Name: "Fund", Raw: "Fund Name", Template: "Fund Name"}}, cfg.Fields)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(writeFile(t, "perfsync.json", `{}`))
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadFile(writeFile(t, "bad.yaml", "anchor: [unclosed"))
	assert.Error(t, err)
}

func TestMerge(t *testing.T) {
	base := Default()
	merged := Merge(base, &Config{
		Anchor:       "Fund Name",
		IgnoreSheets: []string{"Cover"},
	})

	assert.Equal(t, "Fund Name", merged.Anchor)
	assert.Equal(t, []string{"Cover"}, merged.IgnoreSheets)
	assert.Equal(t, base.KeyField, merged.KeyField)
	assert.Equal(t, base.HeaderRowLimit, merged.HeaderRowLimit)
	assert.Equal(t, base.Fields, merged.Fields)
	// base untouched
	assert.Equal(t, "Scheme Name", base.Anchor)

	assert.Equal(t, *base, *Merge(base, nil))
}

func TestLoadWithEnv(t *testing.T) {
	path := writeFile(t, "perfsync.yaml", "anchor: From File\nheader_row_limit: 15\n")

	t.Setenv("PERFSYNC_ANCHOR", "From Env")
	t.Setenv("PERFSYNC_IGNORE_SHEETS", "Cover,Index")
	t.Setenv("PERFSYNC_BENCHMARK_POLICY", "transfer")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "From Env", cfg.Anchor)
	assert.Equal(t, 15, cfg.HeaderRowLimit)
	assert.Equal(t, []string{"Cover", "Index"}, cfg.IgnoreSheets)
	assert.Equal(t, "transfer", cfg.BenchmarkPolicy)
	assert.Len(t, cfg.Fields, 34)
	require.NoError(t, cfg.Validate())
}

func TestLoadBadEnv(t *testing.T) {
	t.Setenv("PERFSYNC_HEADER_ROW_LIMIT", "twenty")
	_, err := Load("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		contains []string
	}{
		{
			name:     "missing anchor",
			mutate:   func(c *Config) { c.Anchor = "" },
			contains: []string{"anchor is required"},
		},
		{
			name:     "bad policy and limit",
			mutate:   func(c *Config) { c.BenchmarkPolicy = "drop"; c.HeaderRowLimit = 0 },
			contains: []string{"benchmark_policy must be one of", "header_row_limit must be >= 1"},
		},
		{
			name:     "key field not in table",
			mutate:   func(c *Config) { c.KeyField = "Fund" },
			contains: []string{`key_field "Fund" is not in fields`},
		},
		{
			name: "duplicate names and labels",
			mutate: func(c *Config) {
				c.Fields = append(c.Fields, FieldConfig{Name: "NAV", Raw: "1 Day", Template: "Remark"})
			},
			contains: []string{`duplicate field name "NAV"`, `duplicate raw label "1 Day"`, `duplicate template label "Remark"`},
		},
		{
			name: "group member not in table",
			mutate: func(c *Config) {
				c.Groups = append(c.Groups, GroupConfig{Name: "Extra", Fields: []string{"Nope", "SOV"}})
			},
			contains: []string{`group "Extra" member "Nope" is not in fields`, `field "SOV" is in groups "Credit Rating" and "Extra"`},
		},
		{
			name:     "empty field spelling",
			mutate:   func(c *Config) { c.Fields[1].Raw = "" },
			contains: []string{"fields[1].raw is required"},
		},
		{
			name:     "no fields",
			mutate:   func(c *Config) { c.Fields = nil; c.Groups = nil },
			contains: []string{"fields is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
			for _, s := range tt.contains {
				assert.Contains(t, err.Error(), s)
			}
		})
	}
}

func TestSettings(t *testing.T) {
	cfg := Default()
	cfg.BenchmarkPolicy = "remove"
	cfg.ParentDepth = 2

	s := cfg.Settings()
	assert.Equal(t, "Scheme Name", s.KeyField)
	assert.Equal(t, "Scheme Name", s.HeaderAnchor)
	assert.Equal(t, 20, s.HeaderRowLimit)
	assert.Equal(t, 2, s.ParentDepth)
	assert.Equal(t, models.BenchmarkRemove, s.BenchmarkPolicy)
	assert.Equal(t, "Benchmark", s.BenchmarkMarker)
	assert.Equal(t, "AUM", s.Table.DateField)
	require.Len(t, s.Groups, 1)
	assert.Equal(t, "Credit Rating", s.Groups[0].Name)
	assert.Len(t, s.Table.Names(), 35)
}
