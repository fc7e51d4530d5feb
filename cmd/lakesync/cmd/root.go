package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/lakesync/internal/config"
	"github.com/dbsmedya/lakesync/internal/logger"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile   string
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "lakesync",
	Short: "Databricks SQL warehouse table source connector",
	Long: `A source connector that extracts rows from a single table in a
Databricks SQL warehouse and emits them as schema-tagged records.

Supports full-refresh extraction and incremental extraction driven by a
monotonically increasing cursor column. Protocol messages (RECORD, STATE,
CATALOG, CONNECTION_STATUS) are emitted as JSON lines on stdout; logs go
to stderr.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "lakesync.yaml",
		"Path to configuration file")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// setup loads and validates configuration, applies CLI overrides, and builds
// the injected logger. Every subcommand starts here.
func setup() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(GetConfigFile())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	cfg.ApplyOverrides(logLevel, logFormat)

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, log, nil
}
