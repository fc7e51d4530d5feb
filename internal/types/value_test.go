package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueMarshalJSON(t *testing.T) {
	ts := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		value    Value
		expected string
	}{
		{"null", Null(), `null`},
		{"string", String("hello"), `"hello"`},
		{"integer", Integer(42), `42`},
		{"number", Number(3.5), `3.5`},
		{"boolean", Boolean(true), `true`},
		{"temporal is ISO-8601 string", Temporal(ts), `"2024-03-15T10:30:00Z"`},
		{"array", Array([]interface{}{1.0, "two"}), `[1,"two"]`},
		{"object", Object(map[string]interface{}{"k": "v"}), `{"k":"v"}`},
		{"nil array", Array(nil), `[]`},
		{"nil object", Object(nil), `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.value)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(data))
		})
	}
}

func TestValueRender(t *testing.T) {
	ts := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	assert.Equal(t, "", Null().Render())
	assert.Equal(t, "hello", String("hello").Render())
	assert.Equal(t, "42", Integer(42).Render())
	assert.Equal(t, "3.5", Number(3.5).Render())
	assert.Equal(t, "true", Boolean(true).Render())
	assert.Equal(t, "2024-03-15T10:30:00Z", Temporal(ts).Render())
}

func TestValueRenderNonUTCTemporal(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*3600)
	ts := time.Date(2024, 3, 15, 12, 30, 0, 0, loc)
	// Rendered in UTC regardless of source zone
	assert.Equal(t, "2024-03-15T10:30:00Z", Temporal(ts).Render())
}

func TestValueInt64(t *testing.T) {
	n, ok := Integer(7).Int64()
	assert.True(t, ok)
	assert.Equal(t, int64(7), n)

	n, ok = Number(7.9).Int64()
	assert.True(t, ok)
	assert.Equal(t, int64(7), n)

	_, ok = String("7").Int64()
	assert.False(t, ok)

	_, ok = Null().Int64()
	assert.False(t, ok)
}

func TestValueKind(t *testing.T) {
	assert.Equal(t, KindNull, Null().Kind())
	assert.Equal(t, KindTemporal, Temporal(time.Now()).Kind())
	assert.True(t, Null().IsNull())
	assert.False(t, String("").IsNull())
}
