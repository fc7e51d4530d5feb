package executor

import "fmt"

// ConnectionError reports a transport or auth failure while reaching the
// warehouse, before any statement ran.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("warehouse connection failed: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// ExecutionError reports a statement that failed to execute or fetch. One
// attempt per call; the caller decides whether to retry.
type ExecutionError struct {
	Statement string
	Err       error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("statement execution failed: %v", e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }

// SchemaRetrievalError reports a catalog-introspection failure. There are no
// partial results: callers get the error or the full description.
type SchemaRetrievalError struct {
	Table string
	Err   error
}

func (e *SchemaRetrievalError) Error() string {
	return fmt.Sprintf("schema retrieval failed for %s: %v", e.Table, e.Err)
}

func (e *SchemaRetrievalError) Unwrap() error { return e.Err }
