// Package database provides Databricks SQL warehouse connection management for lakesync.
package database

import (
	"database/sql"
	"fmt"

	dbsql "github.com/databricks/databricks-sql-go"

	"github.com/dbsmedya/lakesync/internal/config"
)

// Manager builds connections to the configured SQL warehouse. Each Open call
// yields an independent handle that the caller owns and closes; nothing is
// pooled or reused across calls.
type Manager struct {
	config *config.ConnectionConfig
}

// NewManager creates a new database manager from connection configuration.
func NewManager(cfg *config.ConnectionConfig) *Manager {
	return &Manager{config: cfg}
}

// Open creates a database handle for one executor call. The handle is capped
// at a single underlying connection to match the connect/execute/close
// lifecycle of the warehouse protocol.
func (m *Manager) Open() (*sql.DB, error) {
	connector, err := dbsql.NewConnector(
		dbsql.WithServerHostname(m.config.Hostname()),
		dbsql.WithHTTPPath(m.config.HTTPPath()),
		dbsql.WithAccessToken(m.config.PersonalAccessToken),
		dbsql.WithPort(443),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build warehouse connector: %w", err)
	}

	db := sql.OpenDB(connector)
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(0)
	return db, nil
}
