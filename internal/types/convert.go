package types

import (
	"fmt"
	"time"
)

// FromDriverValue converts a database/sql scan result into a Value.
// The Databricks driver returns []byte for string-ish columns and time.Time
// for temporal columns; everything is normalized here so downstream code never
// handles native driver types.
func FromDriverValue(v interface{}) Value {
	switch val := v.(type) {
	case nil:
		return Null()
	case time.Time:
		return Temporal(val)
	case []byte:
		return String(string(val))
	case string:
		return String(val)
	case bool:
		return Boolean(val)
	case int64:
		return Integer(val)
	case int:
		return Integer(int64(val))
	case int32:
		return Integer(int64(val))
	case int16:
		return Integer(int64(val))
	case int8:
		return Integer(int64(val))
	case uint:
		return Integer(int64(val))
	case uint64:
		return Integer(int64(val))
	case uint32:
		return Integer(int64(val))
	case uint16:
		return Integer(int64(val))
	case uint8:
		return Integer(int64(val))
	case float64:
		return Number(val)
	case float32:
		return Number(float64(val))
	case []interface{}:
		return Array(val)
	case map[string]interface{}:
		return Object(val)
	default:
		return String(fmt.Sprint(val))
	}
}
