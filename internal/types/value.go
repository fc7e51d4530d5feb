// Package types contains the record value model shared across packages.
package types

import (
	"encoding/json"
	"strconv"
	"time"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindInteger
	KindNumber
	KindBoolean
	KindTemporal
	KindArray
	KindObject
)

// Value is a tagged variant for a single record field. Temporal values carry
// their own canonical ISO-8601 rendering, so no serialization path ever sees
// a native date/time object.
type Value struct {
	kind Kind
	str  string
	i64  int64
	f64  float64
	b    bool
	t    time.Time
	arr  []interface{}
	obj  map[string]interface{}
}

// Null returns the null Value.
func Null() Value { return Value{kind: KindNull} }

// String returns a string Value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Integer returns an integer Value.
func Integer(i int64) Value { return Value{kind: KindInteger, i64: i} }

// Number returns a floating-point Value.
func Number(f float64) Value { return Value{kind: KindNumber, f64: f} }

// Boolean returns a boolean Value.
func Boolean(b bool) Value { return Value{kind: KindBoolean, b: b} }

// Temporal returns a date/time Value.
func Temporal(t time.Time) Value { return Value{kind: KindTemporal, t: t} }

// Array returns a semi-structured array Value.
func Array(elems []interface{}) Value { return Value{kind: KindArray, arr: elems} }

// Object returns a semi-structured object Value.
func Object(fields map[string]interface{}) Value { return Value{kind: KindObject, obj: fields} }

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Int64 returns the value as an int64 when it holds an integer or a whole
// number, and reports whether the conversion was meaningful.
func (v Value) Int64() (int64, bool) {
	switch v.kind {
	case KindInteger:
		return v.i64, true
	case KindNumber:
		return int64(v.f64), true
	default:
		return 0, false
	}
}

// Render returns the transport-safe string form of the value. Temporal values
// render as ISO-8601. This is also the form the watermark comparison uses.
func (v Value) Render() string {
	switch v.kind {
	case KindNull:
		return ""
	case KindString:
		return v.str
	case KindInteger:
		return strconv.FormatInt(v.i64, 10)
	case KindNumber:
		return strconv.FormatFloat(v.f64, 'g', -1, 64)
	case KindBoolean:
		return strconv.FormatBool(v.b)
	case KindTemporal:
		return v.t.UTC().Format(time.RFC3339Nano)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(data)
	}
}

// MarshalJSON serializes the value; temporal variants become ISO-8601 strings.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindString:
		return json.Marshal(v.str)
	case KindInteger:
		return json.Marshal(v.i64)
	case KindNumber:
		return json.Marshal(v.f64)
	case KindBoolean:
		return json.Marshal(v.b)
	case KindTemporal:
		return json.Marshal(v.t.UTC().Format(time.RFC3339Nano))
	case KindArray:
		if v.arr == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.arr)
	case KindObject:
		if v.obj == nil {
			return []byte("{}"), nil
		}
		return json.Marshal(v.obj)
	default:
		return []byte("null"), nil
	}
}
