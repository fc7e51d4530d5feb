// Package executor issues SQL statements against the warehouse and returns
// rows as ordered records.
package executor

import (
	"context"
	"database/sql"

	"github.com/dbsmedya/lakesync/internal/logger"
	"github.com/dbsmedya/lakesync/internal/sqlutil"
	"github.com/dbsmedya/lakesync/internal/types"
)

// Opener yields a fresh database handle per executor call. Satisfied by
// database.Manager; tests substitute a sqlmock-backed implementation.
type Opener interface {
	Open() (*sql.DB, error)
}

// Executor runs statements against one table's warehouse. It is stateless
// between calls: every call opens a connection, executes one statement,
// fetches the full result set, and closes the connection.
type Executor struct {
	opener Opener
	table  sqlutil.TableRef
	log    *logger.Logger
}

// New creates an Executor for the given table.
func New(opener Opener, table sqlutil.TableRef, log *logger.Logger) *Executor {
	return &Executor{
		opener: opener,
		table:  table,
		log:    log.WithTable(table.String()),
	}
}

// Table returns the table reference this executor is bound to.
func (e *Executor) Table() sqlutil.TableRef {
	return e.table
}

// Execute runs one statement and returns all result rows as records, with
// columns in result-set metadata order. The connection is released on every
// exit path. Failures come back as *ExecutionError.
func (e *Executor) Execute(ctx context.Context, statement string) ([]*types.Record, error) {
	db, err := e.opener.Open()
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	defer db.Close()

	e.log.WithQuery(statement).Debugw("executing statement")

	rows, err := db.QueryContext(ctx, statement)
	if err != nil {
		return nil, &ExecutionError{Statement: statement, Err: err}
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, &ExecutionError{Statement: statement, Err: err}
	}

	var records []*types.Record
	values := make([]interface{}, len(columns))
	scanArgs := make([]interface{}, len(columns))
	for i := range values {
		scanArgs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(scanArgs...); err != nil {
			return nil, &ExecutionError{Statement: statement, Err: err}
		}

		record := types.NewRecord()
		for i, column := range columns {
			record.Set(column, types.FromDriverValue(values[i]))
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, &ExecutionError{Statement: statement, Err: err}
	}

	return records, nil
}

// FetchTableSchema runs catalog introspection for the table and returns the
// raw column-description rows. Any failure surfaces as *SchemaRetrievalError.
func (e *Executor) FetchTableSchema(ctx context.Context) ([]*types.Record, error) {
	statement := sqlutil.DescribeStatement(e.table)

	records, err := e.Execute(ctx, statement)
	if err != nil {
		return nil, &SchemaRetrievalError{Table: e.table.String(), Err: err}
	}
	return records, nil
}

// FetchTableRows extracts rows from the table. The cursor filter applies only
// when both field and value are present; ordering whenever the field is
// present; the limit when positive.
func (e *Executor) FetchTableRows(ctx context.Context, limit int64, cursorField, cursorValue string) ([]*types.Record, error) {
	// Builder failures carry the offending identifier themselves; there is
	// no statement to attach yet.
	statement, err := sqlutil.SelectStatement(e.table, limit, cursorField, cursorValue)
	if err != nil {
		return nil, err
	}
	return e.Execute(ctx, statement)
}

// FetchTableCount returns the number of rows matching the cursor filter.
// An empty or malformed count result yields 0 rather than an error; statement
// failures still surface.
func (e *Executor) FetchTableCount(ctx context.Context, cursorField, cursorValue string) (int64, error) {
	statement, err := sqlutil.CountStatement(e.table, cursorField, cursorValue)
	if err != nil {
		return 0, err
	}

	records, err := e.Execute(ctx, statement)
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, nil
	}

	value, ok := records[0].Get("count")
	if !ok {
		return 0, nil
	}
	count, ok := value.Int64()
	if !ok {
		return 0, nil
	}
	return count, nil
}
