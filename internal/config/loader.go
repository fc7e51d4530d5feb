package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

// Load reads configuration from the specified file path.
// It supports YAML files and performs environment variable substitution.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Read the config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return LoadFromViper(v)
}

// LoadFromViper creates a Config from an already-populated Viper instance:
// defaults, unmarshal, then environment variable substitution.
func LoadFromViper(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	substituteEnvVars(cfg)

	return cfg, nil
}

// envVarPattern matches ${VAR_NAME} or $VAR_NAME patterns
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

// substituteEnvVars replaces ${VAR_NAME} patterns with environment variable values.
func substituteEnvVars(cfg *Config) {
	cfg.Connection.WorkspaceURL = expandEnvVar(cfg.Connection.WorkspaceURL)
	cfg.Connection.PersonalAccessToken = expandEnvVar(cfg.Connection.PersonalAccessToken)
	cfg.Connection.WarehouseID = expandEnvVar(cfg.Connection.WarehouseID)

	cfg.Stream.Catalog = expandEnvVar(cfg.Stream.Catalog)
	cfg.Stream.Schema = expandEnvVar(cfg.Stream.Schema)
	cfg.Stream.Table = expandEnvVar(cfg.Stream.Table)

	cfg.Logging.Output = expandEnvVar(cfg.Logging.Output)
}

// expandEnvVar expands environment variables in the format ${VAR} or $VAR.
func expandEnvVar(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		var varName string
		if strings.HasPrefix(match, "${") {
			varName = match[2 : len(match)-1]
		} else {
			varName = match[1:]
		}

		if value, exists := os.LookupEnv(varName); exists {
			return value
		}
		// Return original if env var not found
		return match
	})
}
