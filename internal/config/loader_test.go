package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoad(t *testing.T) {
	// Create a temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test.yaml")

	configContent := `
connection:
  workspace_url: https://dbc-123.cloud.databricks.com/
  personal_access_token: dapi-test-token
  warehouse_id: abc123

stream:
  catalog: main
  schema: sales
  table: orders
  cursor_field: modified_at
  max_rows: 1000

logging:
  level: debug
  format: text
  output: stderr
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Connection.WorkspaceURL != "https://dbc-123.cloud.databricks.com/" {
		t.Errorf("unexpected workspace_url %q", cfg.Connection.WorkspaceURL)
	}
	if cfg.Connection.PersonalAccessToken != "dapi-test-token" {
		t.Errorf("unexpected token %q", cfg.Connection.PersonalAccessToken)
	}
	if cfg.Connection.WarehouseID != "abc123" {
		t.Errorf("unexpected warehouse_id %q", cfg.Connection.WarehouseID)
	}
	if cfg.Stream.Catalog != "main" || cfg.Stream.Schema != "sales" || cfg.Stream.Table != "orders" {
		t.Errorf("unexpected stream identity %q.%q.%q", cfg.Stream.Catalog, cfg.Stream.Schema, cfg.Stream.Table)
	}
	if cfg.Stream.CursorField != "modified_at" {
		t.Errorf("unexpected cursor_field %q", cfg.Stream.CursorField)
	}
	if cfg.Stream.MaxRows != 1000 {
		t.Errorf("unexpected max_rows %d", cfg.Stream.MaxRows)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("unexpected logging level %q", cfg.Logging.Level)
	}
}

func TestLoadDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "minimal.yaml")

	configContent := `
connection:
  workspace_url: https://dbc-123.cloud.databricks.com
  personal_access_token: dapi-test-token

stream:
  catalog: main
  schema: sales
  table: orders
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Connection.WarehouseID != DefaultWarehouseID {
		t.Errorf("expected placeholder warehouse id, got %q", cfg.Connection.WarehouseID)
	}
	if cfg.Stream.CursorField != DefaultCursorField {
		t.Errorf("expected default cursor field, got %q", cfg.Stream.CursorField)
	}
}

func TestLoadFromViper(t *testing.T) {
	os.Setenv("LAKESYNC_VIPER_TOKEN", "dapi-viper")
	defer os.Unsetenv("LAKESYNC_VIPER_TOKEN")

	v := viper.New()
	v.Set("connection.workspace_url", "https://dbc-123.cloud.databricks.com")
	v.Set("connection.personal_access_token", "${LAKESYNC_VIPER_TOKEN}")
	v.Set("stream.catalog", "main")
	v.Set("stream.schema", "sales")
	v.Set("stream.table", "orders")

	cfg, err := LoadFromViper(v)
	if err != nil {
		t.Fatalf("failed to load from viper: %v", err)
	}

	// Defaults and env substitution apply on this path too
	if cfg.Connection.PersonalAccessToken != "dapi-viper" {
		t.Errorf("expected env-substituted token, got %q", cfg.Connection.PersonalAccessToken)
	}
	if cfg.Stream.CursorField != DefaultCursorField {
		t.Errorf("expected default cursor field, got %q", cfg.Stream.CursorField)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestEnvVarSubstitution(t *testing.T) {
	os.Setenv("LAKESYNC_TEST_TOKEN", "dapi-from-env")
	defer os.Unsetenv("LAKESYNC_TEST_TOKEN")

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "env.yaml")

	configContent := `
connection:
  workspace_url: https://dbc-123.cloud.databricks.com
  personal_access_token: ${LAKESYNC_TEST_TOKEN}

stream:
  catalog: main
  schema: sales
  table: orders
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Connection.PersonalAccessToken != "dapi-from-env" {
		t.Errorf("expected env-substituted token, got %q", cfg.Connection.PersonalAccessToken)
	}
}

func TestEnvVarSubstitutionMissingVar(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "env.yaml")

	configContent := `
connection:
  workspace_url: https://dbc-123.cloud.databricks.com
  personal_access_token: ${LAKESYNC_DOES_NOT_EXIST}

stream:
  catalog: main
  schema: sales
  table: orders
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Unknown vars are left as-is
	if cfg.Connection.PersonalAccessToken != "${LAKESYNC_DOES_NOT_EXIST}" {
		t.Errorf("expected unresolved placeholder to remain, got %q", cfg.Connection.PersonalAccessToken)
	}
}
