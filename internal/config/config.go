// Package config provides configuration structures and loading for lakesync.
package config

import (
	"fmt"
	"strings"
)

// DefaultWarehouseID is the placeholder used when no warehouse is configured.
// Connecting with it will fail server-side; it exists so a half-filled config
// still produces a well-formed HTTP path.
const DefaultWarehouseID = "your_warehouse_id"

// DefaultCursorField is the cursor column assumed when none is configured.
const DefaultCursorField = "updated_at"

// Config represents the complete connector configuration.
type Config struct {
	Connection ConnectionConfig `yaml:"connection" mapstructure:"connection"`
	Stream     StreamConfig     `yaml:"stream" mapstructure:"stream"`
	Logging    LoggingConfig    `yaml:"logging" mapstructure:"logging"`
}

// ConnectionConfig represents a Databricks SQL warehouse connection.
type ConnectionConfig struct {
	WorkspaceURL        string `yaml:"workspace_url" mapstructure:"workspace_url"`
	PersonalAccessToken string `yaml:"personal_access_token" mapstructure:"personal_access_token"`
	WarehouseID         string `yaml:"warehouse_id" mapstructure:"warehouse_id"`
}

// StreamConfig identifies the single table this connector extracts.
type StreamConfig struct {
	Catalog     string `yaml:"catalog" mapstructure:"catalog"`
	Schema      string `yaml:"schema" mapstructure:"schema"`
	Table       string `yaml:"table" mapstructure:"table"`
	CursorField string `yaml:"cursor_field" mapstructure:"cursor_field"`
	MaxRows     int64  `yaml:"max_rows" mapstructure:"max_rows"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
// Logs go to stderr so stdout stays reserved for protocol messages.
func DefaultConfig() *Config {
	return &Config{
		Connection: ConnectionConfig{
			WarehouseID: DefaultWarehouseID,
		},
		Stream: StreamConfig{
			CursorField: DefaultCursorField,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stderr",
		},
	}
}

// Hostname returns the connection hostname derived from the workspace URL:
// trailing slash stripped, then the https:// prefix.
func (c *ConnectionConfig) Hostname() string {
	host := strings.TrimSuffix(c.WorkspaceURL, "/")
	host = strings.TrimPrefix(host, "https://")
	return host
}

// HTTPPath returns the warehouse compute endpoint path segment.
func (c *ConnectionConfig) HTTPPath() string {
	warehouseID := c.WarehouseID
	if warehouseID == "" {
		warehouseID = DefaultWarehouseID
	}
	return fmt.Sprintf("/sql/1.0/warehouses/%s", warehouseID)
}

// StreamName returns the externally visible stream identifier. It must be
// stable across runs: the host keys persisted state by it.
func (s *StreamConfig) StreamName() string {
	return fmt.Sprintf("%s_%s_%s", s.Catalog, s.Schema, s.Table)
}

// Incremental reports whether a cursor field is configured, which enables
// incremental sync.
func (s *StreamConfig) Incremental() bool {
	return s.CursorField != ""
}

// ApplyOverrides applies CLI flag overrides to the configuration.
// Only non-empty values are applied.
func (c *Config) ApplyOverrides(logLevel, logFormat string) {
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFormat != "" {
		c.Logging.Format = logFormat
	}
}
