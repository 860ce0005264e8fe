package store

import (
	"database/sql"

	"github.com/MKhiriev/solid-pod/internal/logger"
	"github.com/MKhiriev/solid-pod/migrations"
)

// DB is the SQLite handle behind the sql storage backend. Every resource
// statement goes through the single pooled connection it holds.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate creates or upgrades the resources table.
func (db *DB) Migrate() error {
	db.logger.Debug().Msg("applying resource store migrations")
	return migrations.Migrate(db.DB, db.logger)
}
