// Package sqlutil provides SQL text assembly for the Databricks SQL dialect.
package sqlutil

import (
	"regexp"
	"strings"
)

// QuoteIdentifier quotes an identifier (catalog, schema, table, column name)
// with backticks, escaping any existing backticks by doubling them.
// Example: "my_table" -> "`my_table`"
func QuoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

// validIdentifierRegex matches valid identifier characters.
// For safety, we restrict to alphanumeric and underscore only.
var validIdentifierRegex = regexp.MustCompile("^[a-zA-Z0-9_]+$")

// IsValidIdentifier checks if a name is a valid identifier.
// This is a defense-in-depth measure against SQL injection.
func IsValidIdentifier(name string) bool {
	return validIdentifierRegex.MatchString(name)
}

// QuoteIdentifierSafe quotes an identifier after validating it.
// Returns an error if the identifier contains invalid characters.
// Use this when identifiers might come from untrusted sources.
func QuoteIdentifierSafe(name string) (string, error) {
	if !IsValidIdentifier(name) {
		return "", &InvalidIdentifierError{Name: name}
	}
	return QuoteIdentifier(name), nil
}

// EscapeStringLiteral escapes a value for embedding inside a single-quoted
// SQL string literal by doubling single quotes. Cursor values are interpolated
// into statement text rather than bound as parameters, so the observable
// statement stays a plain string; this escape keeps a quote inside a cursor
// value from terminating the literal.
func EscapeStringLiteral(value string) string {
	return strings.ReplaceAll(value, "'", "''")
}

// InvalidIdentifierError is returned when an identifier contains invalid characters.
type InvalidIdentifierError struct {
	Name string
}

func (e *InvalidIdentifierError) Error() string {
	return "invalid identifier: " + e.Name + " (must contain only alphanumeric characters and underscores)"
}
