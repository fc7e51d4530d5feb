package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	var errors ValidationErrors

	if err := c.validateConnection(); err != nil {
		errors = append(errors, err...)
	}

	if err := c.validateStream(); err != nil {
		errors = append(errors, err...)
	}

	if err := c.validateLogging(); err != nil {
		errors = append(errors, err...)
	}

	if len(errors) > 0 {
		return errors
	}
	return nil
}

func (c *Config) validateConnection() ValidationErrors {
	var errors ValidationErrors

	if c.Connection.WorkspaceURL == "" {
		errors = append(errors, ValidationError{
			Field:   "connection.workspace_url",
			Message: "workspace URL is required",
		})
	}
	if c.Connection.PersonalAccessToken == "" {
		errors = append(errors, ValidationError{
			Field:   "connection.personal_access_token",
			Message: "personal access token is required",
		})
	}

	return errors
}

func (c *Config) validateStream() ValidationErrors {
	var errors ValidationErrors

	// The three name parts compose the fully-qualified table name and the
	// stream identifier, so all must be present.
	parts := map[string]string{
		"stream.catalog": c.Stream.Catalog,
		"stream.schema":  c.Stream.Schema,
		"stream.table":   c.Stream.Table,
	}
	for _, field := range []string{"stream.catalog", "stream.schema", "stream.table"} {
		if parts[field] == "" {
			errors = append(errors, ValidationError{
				Field:   field,
				Message: "must not be empty",
			})
		}
	}

	if c.Stream.MaxRows < 0 {
		errors = append(errors, ValidationError{
			Field:   "stream.max_rows",
			Message: "must not be negative",
		})
	}

	return errors
}

func (c *Config) validateLogging() ValidationErrors {
	var errors ValidationErrors

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("invalid level %q (must be debug, info, warn, or error)", c.Logging.Level),
		})
	}

	switch c.Logging.Format {
	case "", "json", "text":
	default:
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("invalid format %q (must be json or text)", c.Logging.Format),
		})
	}

	return errors
}
