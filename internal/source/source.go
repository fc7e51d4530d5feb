// Package source is the host-facing boundary of the connector: connection
// checking and stream listing over one configured table.
package source

import (
	"context"
	"fmt"

	"github.com/dbsmedya/lakesync/internal/config"
	"github.com/dbsmedya/lakesync/internal/database"
	"github.com/dbsmedya/lakesync/internal/executor"
	"github.com/dbsmedya/lakesync/internal/logger"
	"github.com/dbsmedya/lakesync/internal/schema"
	"github.com/dbsmedya/lakesync/internal/sqlutil"
	"github.com/dbsmedya/lakesync/internal/stream"
	"github.com/dbsmedya/lakesync/internal/types"
)

// probeStatement is the connection test query.
const probeStatement = "SELECT 1"

// Prober executes arbitrary statements, for connection probing. Satisfied by
// executor.Executor.
type Prober interface {
	Execute(ctx context.Context, statement string) ([]*types.Record, error)
}

// Source wires configuration into the executor, schema inferencer, and the
// single table stream this connector exposes.
type Source struct {
	cfg  *config.Config
	log  *logger.Logger
	exec *executor.Executor
}

// New builds a Source from validated configuration.
func New(cfg *config.Config, log *logger.Logger) (*Source, error) {
	table, err := sqlutil.NewTableRef(cfg.Stream.Catalog, cfg.Stream.Schema, cfg.Stream.Table)
	if err != nil {
		return nil, fmt.Errorf("invalid stream configuration: %w", err)
	}

	manager := database.NewManager(&cfg.Connection)
	return &Source{
		cfg:  cfg,
		log:  log,
		exec: executor.New(manager, table, log),
	}, nil
}

// Executor returns the query executor bound to the configured table.
func (s *Source) Executor() *executor.Executor {
	return s.exec
}

// Stream returns the single table stream of this connector.
func (s *Source) Stream() *stream.TableStream {
	return stream.New(&s.cfg.Stream, s.exec, s.log)
}

// Streams returns the stream descriptors; exactly one for this connector.
func (s *Source) Streams() []*stream.TableStream {
	return []*stream.TableStream{s.Stream()}
}

// Inferencer returns the schema inferencer for the configured table.
func (s *Source) Inferencer() *schema.Inferencer {
	return schema.NewInferencer(s.exec, s.log)
}

// CheckConnection probes the warehouse and reports the outcome as a
// success/message pair. Errors never propagate past this boundary.
func (s *Source) CheckConnection(ctx context.Context) (bool, string) {
	return CheckConnection(ctx, s.exec, s.log)
}

// CheckConnection probes with SELECT 1 and succeeds only when the result is a
// single row holding the value 1.
func CheckConnection(ctx context.Context, prober Prober, log *logger.Logger) (ok bool, message string) {
	records, err := prober.Execute(ctx, probeStatement)
	if err != nil {
		log.Errorw("connection check failed", "error", err)
		return false, err.Error()
	}

	if len(records) != 1 || records[0].Len() == 0 {
		return false, "connection test query failed"
	}

	columns := records[0].Columns()
	value, _ := records[0].Get(columns[0])
	if n, isNum := value.Int64(); !isNum || n != 1 {
		return false, "connection test query failed"
	}

	return true, ""
}
