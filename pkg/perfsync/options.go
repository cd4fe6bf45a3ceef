// Package perfsync transfers fund-performance data from a raw spreadsheet
// export into a fixed-layout template workbook.
package perfsync

import (
	"log/slog"

	"github.com/Sarthak-Corpcare/Excel-Automation/pkg/perfsync/config"
	"github.com/Sarthak-Corpcare/Excel-Automation/pkg/perfsync/models"
)

// Options configures a run.
type Options struct {
	// Config is the equivalence table and run settings.
	// If nil, config.Default() is used.
	Config *config.Config
	// Sheets restricts the run to these sheets. Empty means all sheets.
	Sheets []string
	// Benchmark overrides Config.BenchmarkPolicy when set.
	Benchmark models.BenchmarkPolicy
	// DryRun performs the transfer without saving the output workbook.
	DryRun bool
	// Logger receives progress and skip messages. If nil, slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns default run options.
func DefaultOptions() Options {
	return Options{
		Config: config.Default(),
	}
}

// config returns the effective configuration, with the benchmark override
// applied.
func (o Options) config() *config.Config {
	cfg := o.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if o.Benchmark != "" {
		c := *cfg
		c.BenchmarkPolicy = string(o.Benchmark)
		cfg = &c
	}
	return cfg
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
