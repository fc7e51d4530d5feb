// Package schema derives a JSON-schema-like description of the source table
// from warehouse catalog introspection.
package schema

import (
	"bytes"
	"encoding/json"
	"strings"
)

// headerMarker is the echo line DESCRIBE TABLE emits as its own first row.
// It is an artifact of the introspection output format, not a real column.
const headerMarker = "# col_name"

// Field describes one column of the table.
type Field struct {
	Name     string
	Type     string
	Required bool
}

// Descriptor is the structural description of the table: fields in catalog
// order plus the set of required (non-nullable) columns.
type Descriptor struct {
	Fields []Field
}

// Required returns the names of required fields in catalog order.
func (d *Descriptor) Required() []string {
	var required []string
	for _, f := range d.Fields {
		if f.Required {
			required = append(required, f.Name)
		}
	}
	return required
}

// Types returns a name-to-type lookup over the fields.
func (d *Descriptor) Types() map[string]string {
	out := make(map[string]string, len(d.Fields))
	for _, f := range d.Fields {
		out[f.Name] = f.Type
	}
	return out
}

// MarshalJSON renders the descriptor in JSON Schema object form, preserving
// catalog column order in the properties object.
func (d *Descriptor) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"type":"object","properties":{`)
	for i, f := range d.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteString(`:{"type":`)
		typ, err := json.Marshal(f.Type)
		if err != nil {
			return nil, err
		}
		buf.Write(typ)
		buf.WriteByte('}')
	}
	buf.WriteString(`},"required":`)
	required := d.Required()
	if required == nil {
		required = []string{}
	}
	req, err := json.Marshal(required)
	if err != nil {
		return nil, err
	}
	buf.Write(req)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Fallback returns the minimal descriptor used when catalog introspection
// fails: a required string id and an optional string payload.
func Fallback() *Descriptor {
	return &Descriptor{
		Fields: []Field{
			{Name: "id", Type: "string", Required: true},
			{Name: "data", Type: "string", Required: false},
		},
	}
}

// typeMapping maps native warehouse type base names to canonical type tags.
var typeMapping = map[string]string{
	"string":    "string",
	"varchar":   "string",
	"char":      "string",
	"text":      "string",
	"int":       "integer",
	"integer":   "integer",
	"bigint":    "integer",
	"long":      "integer",
	"double":    "number",
	"float":     "number",
	"decimal":   "number",
	"boolean":   "boolean",
	"bool":      "boolean",
	"date":      "string",
	"timestamp": "string",
	"datetime":  "string",
	"binary":    "string",
	"array":     "array",
	"map":       "object",
	"struct":    "object",
}

// MapType maps a native column type name to its canonical tag. Parameter
// suffixes like "decimal(10,2)" are truncated to the base name; unknown base
// names map to string.
func MapType(nativeType string) string {
	baseType := strings.ToLower(strings.SplitN(nativeType, "(", 2)[0])
	if mapped, ok := typeMapping[baseType]; ok {
		return mapped
	}
	return "string"
}
