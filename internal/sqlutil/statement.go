package sqlutil

import (
	"fmt"
	"strings"
)

// TableRef is the immutable three-part identity of the source table.
type TableRef struct {
	Catalog string
	Schema  string
	Table   string
}

// NewTableRef builds a TableRef, requiring all three name parts.
func NewTableRef(catalog, schema, table string) (TableRef, error) {
	if catalog == "" || schema == "" || table == "" {
		return TableRef{}, fmt.Errorf("table reference requires catalog, schema, and table (got %q.%q.%q)",
			catalog, schema, table)
	}
	return TableRef{Catalog: catalog, Schema: schema, Table: table}, nil
}

// FQN returns the fully-qualified, backtick-quoted table name.
func (t TableRef) FQN() string {
	return fmt.Sprintf("%s.%s.%s",
		QuoteIdentifier(t.Catalog),
		QuoteIdentifier(t.Schema),
		QuoteIdentifier(t.Table),
	)
}

// String returns the unquoted dotted name, for logs.
func (t TableRef) String() string {
	return fmt.Sprintf("%s.%s.%s", t.Catalog, t.Schema, t.Table)
}

// SelectStatement builds the row-extraction statement:
//
//	SELECT * FROM <fqn> [WHERE <cursor> > '<value>'] [ORDER BY <cursor>] [LIMIT n]
//
// The filter is appended only when both cursor field and value are present;
// ordering whenever the field is present; the limit when positive. Cursor
// field names must pass identifier validation.
func SelectStatement(table TableRef, limit int64, cursorField, cursorValue string) (string, error) {
	var sb strings.Builder
	sb.WriteString("SELECT * FROM ")
	sb.WriteString(table.FQN())

	if cursorField != "" {
		quoted, err := QuoteIdentifierSafe(cursorField)
		if err != nil {
			return "", err
		}
		if cursorValue != "" {
			fmt.Fprintf(&sb, " WHERE %s > '%s'", quoted, EscapeStringLiteral(cursorValue))
		}
		fmt.Fprintf(&sb, " ORDER BY %s", quoted)
	}

	if limit > 0 {
		fmt.Fprintf(&sb, " LIMIT %d", limit)
	}

	return sb.String(), nil
}

// CountStatement builds the row-count statement with the same filter rule as
// SelectStatement, but no ordering or limit.
func CountStatement(table TableRef, cursorField, cursorValue string) (string, error) {
	var sb strings.Builder
	sb.WriteString("SELECT COUNT(*) AS count FROM ")
	sb.WriteString(table.FQN())

	if cursorField != "" && cursorValue != "" {
		quoted, err := QuoteIdentifierSafe(cursorField)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&sb, " WHERE %s > '%s'", quoted, EscapeStringLiteral(cursorValue))
	}

	return sb.String(), nil
}

// DescribeStatement builds the catalog-introspection statement for the table.
func DescribeStatement(table TableRef) string {
	return "DESCRIBE TABLE " + table.FQN()
}
