package schema

import (
	"context"
	"strings"

	"github.com/dbsmedya/lakesync/internal/logger"
	"github.com/dbsmedya/lakesync/internal/types"
)

// Introspector provides raw catalog rows for the table. Satisfied by
// executor.Executor.
type Introspector interface {
	FetchTableSchema(ctx context.Context) ([]*types.Record, error)
}

// Inferencer derives a Descriptor from catalog introspection.
type Inferencer struct {
	introspector Introspector
	log          *logger.Logger
}

// NewInferencer creates an Inferencer over the given introspector.
func NewInferencer(introspector Introspector, log *logger.Logger) *Inferencer {
	return &Inferencer{
		introspector: introspector,
		log:          log,
	}
}

// Infer derives the table descriptor. Introspection failures are logged as a
// warning and degrade to the fallback descriptor, so schema retrieval never
// aborts a sync.
func (i *Inferencer) Infer(ctx context.Context) *Descriptor {
	rows, err := i.introspector.FetchTableSchema(ctx)
	if err != nil {
		i.log.Warnw("could not retrieve table schema, using fallback", "error", err)
		return Fallback()
	}

	descriptor := &Descriptor{}
	for _, row := range rows {
		name := fieldText(row, "col_name")
		if name == "" || name == headerMarker {
			continue
		}

		nativeType := fieldText(row, "data_type")
		if nativeType == "" {
			nativeType = "string"
		}

		// Required is inferred from the absence of "nullable" in the free-text
		// comment. Best-effort: the catalog exposes no structural flag here.
		comment := fieldText(row, "comment")
		required := !strings.Contains(strings.ToLower(comment), "nullable")

		descriptor.Fields = append(descriptor.Fields, Field{
			Name:     name,
			Type:     MapType(nativeType),
			Required: required,
		})
	}

	return descriptor
}

// fieldText extracts a column of a catalog row as a string.
func fieldText(row *types.Record, column string) string {
	value, ok := row.Get(column)
	if !ok || value.IsNull() {
		return ""
	}
	return value.Render()
}
