// Package config holds the equivalence table and run settings, loaded from
// built-in defaults, an optional YAML or TOML file and PERFSYNC_ environment
// variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v2"

	"github.com/Sarthak-Corpcare/Excel-Automation/pkg/perfsync/models"
	"github.com/Sarthak-Corpcare/Excel-Automation/pkg/perfsync/transfer"
)

// EnvPrefix is the prefix of environment overrides, e.g. PERFSYNC_ANCHOR.
const EnvPrefix = "PERFSYNC"

// ErrInvalidConfig indicates a configuration that failed validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// ErrUnsupportedFormat indicates a config file extension that is not
// .yaml, .yml or .toml.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Config is the complete run configuration.
type Config struct {
	// Anchor is the header label that identifies the header row.
	Anchor string `yaml:"anchor" toml:"anchor" split_words:"true" validate:"required"`
	// KeyField is the canonical field whose first blank cell ends the data.
	KeyField string `yaml:"key_field" toml:"key_field" split_words:"true" validate:"required"`
	// DateField names the field given to date-valued header cells.
	DateField string `yaml:"date_field" toml:"date_field" split_words:"true"`
	// HeaderRowLimit is the number of leading rows searched for the anchor.
	HeaderRowLimit int `yaml:"header_row_limit" toml:"header_row_limit" split_words:"true" validate:"gte=1,lte=1000"`
	// ParentDepth bounds the upward parent-header scan; 0 scans to row 1.
	ParentDepth int `yaml:"parent_depth" toml:"parent_depth" split_words:"true" validate:"gte=0"`
	// IgnoreSheets are never processed.
	IgnoreSheets []string `yaml:"ignore_sheets" toml:"ignore_sheets" split_words:"true"`
	// BenchmarkMarker is the column-A label that starts the benchmark block.
	BenchmarkMarker string `yaml:"benchmark_marker" toml:"benchmark_marker" split_words:"true"`
	// BenchmarkPolicy is one of transfer, remove, skip.
	BenchmarkPolicy string `yaml:"benchmark_policy" toml:"benchmark_policy" split_words:"true" validate:"oneof=transfer remove skip"`

	Fields []FieldConfig `yaml:"fields" toml:"fields" ignored:"true" validate:"required,min=1,dive"`
	Groups []GroupConfig `yaml:"groups" toml:"groups" ignored:"true" validate:"dive"`
}

// FieldConfig is one equivalence table entry.
type FieldConfig struct {
	Name     string `yaml:"name" toml:"name" validate:"required"`
	Raw      string `yaml:"raw" toml:"raw" validate:"required"`
	Template string `yaml:"template" toml:"template" validate:"required"`
}

// GroupConfig is a set of fields resolved from one shared period.
type GroupConfig struct {
	Name   string   `yaml:"name" toml:"name" validate:"required"`
	Fields []string `yaml:"fields" toml:"fields" validate:"min=1,dive,required"`
}

// Load returns the defaults overlaid with path (if not empty) and then the
// environment. The result is not validated.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		fileCfg, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		cfg = Merge(cfg, fileCfg)
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile decodes a YAML (.yaml, .yml) or TOML (.toml) file. Fields the file
// leaves out keep their zero value.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return &cfg, nil
}

// Merge returns base with every non-zero field of override applied. Lists
// are replaced, not appended.
func Merge(base, override *Config) *Config {
	out := *base
	if override == nil {
		return &out
	}
	if override.Anchor != "" {
		out.Anchor = override.Anchor
	}
	if override.KeyField != "" {
		out.KeyField = override.KeyField
	}
	if override.DateField != "" {
		out.DateField = override.DateField
	}
	if override.HeaderRowLimit != 0 {
		out.HeaderRowLimit = override.HeaderRowLimit
	}
	if override.ParentDepth != 0 {
		out.ParentDepth = override.ParentDepth
	}
	if len(override.IgnoreSheets) > 0 {
		out.IgnoreSheets = override.IgnoreSheets
	}
	if override.BenchmarkMarker != "" {
		out.BenchmarkMarker = override.BenchmarkMarker
	}
	if override.BenchmarkPolicy != "" {
		out.BenchmarkPolicy = override.BenchmarkPolicy
	}
	if len(override.Fields) > 0 {
		out.Fields = override.Fields
	}
	if len(override.Groups) > 0 {
		out.Groups = override.Groups
	}
	return &out
}

// ApplyEnv overlays PERFSYNC_* environment variables. Unset variables leave
// the current value alone.
func (c *Config) ApplyEnv() error {
	if err := envconfig.Process(EnvPrefix, c); err != nil {
		return fmt.Errorf("failed to process environment: %w", err)
	}
	return nil
}

// Table builds the equivalence table.
func (c *Config) Table() models.EquivalenceTable {
	fields := make([]models.FieldSpec, len(c.Fields))
	for i, f := range c.Fields {
		fields[i] = models.FieldSpec{Name: f.Name, Raw: f.Raw, Template: f.Template}
	}
	return models.NewEquivalenceTable(fields, c.DateField)
}

// Settings converts the configuration into engine settings.
func (c *Config) Settings() transfer.Settings {
	groups := make([]models.FieldGroup, len(c.Groups))
	for i, g := range c.Groups {
		groups[i] = models.FieldGroup{Name: g.Name, Fields: g.Fields}
	}
	return transfer.Settings{
		Table:           c.Table(),
		KeyField:        c.KeyField,
		HeaderAnchor:    c.Anchor,
		HeaderRowLimit:  c.HeaderRowLimit,
		ParentDepth:     c.ParentDepth,
		Groups:          groups,
		IgnoreSheets:    c.IgnoreSheets,
		BenchmarkMarker: c.BenchmarkMarker,
		BenchmarkPolicy: models.BenchmarkPolicy(c.BenchmarkPolicy),
	}
}
