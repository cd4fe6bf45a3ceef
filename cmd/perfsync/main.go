// Package main provides the CLI entry point for perfsync.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/Sarthak-Corpcare/Excel-Automation/pkg/perfsync"
	"github.com/Sarthak-Corpcare/Excel-Automation/pkg/perfsync/config"
	"github.com/Sarthak-Corpcare/Excel-Automation/pkg/perfsync/models"
	"github.com/Sarthak-Corpcare/Excel-Automation/pkg/perfsync/output"
)

var (
	outputPath  string
	configPath  string
	envFile     string
	reportPath  string
	pretty      bool
	summary     bool
	dryRun      bool
	sheets      []string
	benchmark   string
	anchor      string
	headerLimit int
	logLevel    string
	logFormat   string
	fieldsFmt   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "perfsync [raw.xlsx] [template.xlsx]",
		Short: "Transfer fund performance data into a template workbook",
		Long: `perfsync copies scheme rows from a raw performance export into a
fixed-layout template, matching columns by header label and taking each
period metric from the newest month that has data.`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (.yaml, .yml or .toml)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Env file to load before PERFSYNC_ overrides (default: .env if present)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format: text, json")

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output workbook path (default: \"<template> - Filled.xlsx\")")
	rootCmd.Flags().StringVar(&reportPath, "report", "", "Write the JSON run report to this file (- for stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON report")
	rootCmd.Flags().BoolVar(&summary, "summary", false, "Omit per-cell writes from the report")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Run the transfer without saving the output workbook")
	rootCmd.Flags().StringArrayVar(&sheets, "sheet", nil, "Only process this sheet (repeatable)")
	rootCmd.Flags().StringVar(&benchmark, "benchmark", "", "Benchmark block policy: transfer, remove, skip")
	rootCmd.Flags().StringVar(&anchor, "anchor", "", "Header anchor label")
	rootCmd.Flags().IntVar(&headerLimit, "header-limit", 0, "Number of leading rows searched for the header")

	fieldsCmd := &cobra.Command{
		Use:   "fields",
		Short: "Print the effective field table and settings",
		Args:  cobra.NoArgs,
		RunE:  runFields,
	}
	fieldsCmd.Flags().StringVar(&fieldsFmt, "format", "yaml", "Output format: yaml, toml")
	rootCmd.AddCommand(fieldsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	rawPath, templatePath := args[0], args[1]

	logger, err := newLogger(logLevel, logFormat)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if anchor != "" {
		cfg.Anchor = anchor
	}
	if headerLimit != 0 {
		cfg.HeaderRowLimit = headerLimit
	}
	if benchmark != "" {
		cfg.BenchmarkPolicy = benchmark
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if outputPath == "" {
		outputPath = defaultOutputPath(templatePath)
	}

	opts := perfsync.Options{
		Config: cfg,
		Sheets: sheets,
		DryRun: dryRun,
		Logger: logger,
	}

	report, err := perfsync.Run(rawPath, templatePath, outputPath, opts)
	if err != nil {
		return fmt.Errorf("transfer failed: %w", err)
	}

	if reportPath != "" {
		if err := writeReport(report); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	done, skipped := report.Counts()
	if !dryRun && reportPath != "-" {
		fmt.Printf("Success! Data transferred and saved to %s (%d rows, %d sheets, %d skipped)\n",
			outputPath, report.TotalRowsWritten, done, skipped)
	}
	return nil
}

func runFields(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var data []byte
	switch fieldsFmt {
	case "yaml":
		data, err = yaml.Marshal(cfg)
	case "toml":
		data, err = toml.Marshal(cfg)
	default:
		return fmt.Errorf("invalid format: %s (must be yaml or toml)", fieldsFmt)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Print(string(data))

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	return nil
}

// loadConfig reads the env file, then the config file and PERFSYNC_
// variables.
func loadConfig() (*config.Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return config.Load(configPath)
}

func writeReport(report *models.RunReport) error {
	var (
		data []byte
		err  error
	)
	if summary {
		data, err = output.SummaryToJSON(report, pretty)
	} else {
		data, err = output.ToJSON(report, pretty)
	}
	if err != nil {
		return err
	}
	if reportPath == "-" {
		fmt.Println(string(data))
		return nil
	}
	return os.WriteFile(reportPath, data, 0644)
}

func newLogger(level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level: %s", level)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	case "text":
		handler = slog.NewTextHandler(os.Stderr, opts)
	default:
		return nil, fmt.Errorf("invalid log format: %s (must be text or json)", format)
	}
	return slog.New(handler), nil
}

func defaultOutputPath(templatePath string) string {
	dir := filepath.Dir(templatePath)
	stem := strings.TrimSuffix(filepath.Base(templatePath), filepath.Ext(templatePath))
	return filepath.Join(dir, stem+" - Filled.xlsx")
}
