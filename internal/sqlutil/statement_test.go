package sqlutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTable(t *testing.T) TableRef {
	t.Helper()
	table, err := NewTableRef("main", "sales", "orders")
	require.NoError(t, err)
	return table
}

func TestNewTableRef(t *testing.T) {
	table := testTable(t)
	assert.Equal(t, "`main`.`sales`.`orders`", table.FQN())
	assert.Equal(t, "main.sales.orders", table.String())

	for _, parts := range [][3]string{
		{"", "sales", "orders"},
		{"main", "", "orders"},
		{"main", "sales", ""},
	} {
		_, err := NewTableRef(parts[0], parts[1], parts[2])
		assert.Error(t, err, "parts %v", parts)
	}
}

func TestSelectStatement(t *testing.T) {
	table := testTable(t)

	tests := []struct {
		name        string
		limit       int64
		cursorField string
		cursorValue string
		expected    string
	}{
		{
			name:     "full refresh, no clauses",
			expected: "SELECT * FROM `main`.`sales`.`orders`",
		},
		{
			name:        "cursor field and value filters and orders",
			cursorField: "updated_at",
			cursorValue: "2024-01-01T00:00:00Z",
			expected:    "SELECT * FROM `main`.`sales`.`orders` WHERE `updated_at` > '2024-01-01T00:00:00Z' ORDER BY `updated_at`",
		},
		{
			name:        "cursor field without value orders only",
			cursorField: "updated_at",
			expected:    "SELECT * FROM `main`.`sales`.`orders` ORDER BY `updated_at`",
		},
		{
			name:     "limit only",
			limit:    100,
			expected: "SELECT * FROM `main`.`sales`.`orders` LIMIT 100",
		},
		{
			name:        "all clauses",
			limit:       50,
			cursorField: "updated_at",
			cursorValue: "2024-01-01T00:00:00Z",
			expected:    "SELECT * FROM `main`.`sales`.`orders` WHERE `updated_at` > '2024-01-01T00:00:00Z' ORDER BY `updated_at` LIMIT 50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			statement, err := SelectStatement(table, tt.limit, tt.cursorField, tt.cursorValue)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, statement)
		})
	}
}

func TestSelectStatementNoFilterWithoutCursor(t *testing.T) {
	statement, err := SelectStatement(testTable(t), 0, "", "")
	require.NoError(t, err)
	assert.False(t, strings.Contains(statement, "WHERE"))
	assert.False(t, strings.Contains(statement, "ORDER BY"))
}

func TestSelectStatementEscapesCursorValue(t *testing.T) {
	statement, err := SelectStatement(testTable(t), 0, "updated_at", "a'b")
	require.NoError(t, err)
	assert.Contains(t, statement, "WHERE `updated_at` > 'a''b'")
}

func TestSelectStatementRejectsInvalidCursorField(t *testing.T) {
	_, err := SelectStatement(testTable(t), 0, "updated_at; DROP TABLE x", "v")
	assert.Error(t, err)
}

func TestCountStatement(t *testing.T) {
	table := testTable(t)

	statement, err := CountStatement(table, "", "")
	require.NoError(t, err)
	assert.Equal(t, "SELECT COUNT(*) AS count FROM `main`.`sales`.`orders`", statement)

	statement, err = CountStatement(table, "updated_at", "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, "SELECT COUNT(*) AS count FROM `main`.`sales`.`orders` WHERE `updated_at` > '2024-01-01'", statement)

	// Field without value filters nothing
	statement, err = CountStatement(table, "updated_at", "")
	require.NoError(t, err)
	assert.NotContains(t, statement, "WHERE")
}

func TestDescribeStatement(t *testing.T) {
	assert.Equal(t, "DESCRIBE TABLE `main`.`sales`.`orders`", DescribeStatement(testTable(t)))
}
