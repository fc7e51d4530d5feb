package types

import (
	"bytes"
	"encoding/json"

	"github.com/elliotchance/orderedmap/v2"
)

// Record is an ordered mapping from column name to Value. Column order follows
// the result-set metadata of the query that produced the row, and is preserved
// through JSON serialization.
type Record struct {
	columns *orderedmap.OrderedMap[string, Value]
}

// NewRecord creates an empty record.
func NewRecord() *Record {
	return &Record{columns: orderedmap.NewOrderedMap[string, Value]()}
}

// Set stores a value under the given column, appending the column if new.
func (r *Record) Set(column string, value Value) {
	r.columns.Set(column, value)
}

// Get returns the value for a column and whether the column is present.
func (r *Record) Get(column string) (Value, bool) {
	return r.columns.Get(column)
}

// Columns returns the column names in positional order.
func (r *Record) Columns() []string {
	return r.columns.Keys()
}

// Len returns the number of columns.
func (r *Record) Len() int {
	return r.columns.Len()
}

// MarshalJSON serializes the record as a JSON object preserving column order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for el := r.columns.Front(); el != nil; el = el.Next() {
		if !first {
			buf.WriteByte(',')
		}
		first = false

		key, err := json.Marshal(el.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		val, err := json.Marshal(el.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
