package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/solid-pod/internal/config"
	"github.com/MKhiriev/solid-pod/internal/logger"
)

// Storages aggregates the storage components handed to the service layer.
type Storages struct {
	ResourceStorage ResourceStorage

	db *DB
}

// NewStorages builds the storage selected by cfg.Driver. The sqlite driver
// opens the database and runs migrations before returning.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("driver", cfg.Driver).Msg("creating storages...")

	switch cfg.Driver {
	case config.StorageDriverMemory, "":
		return &Storages{ResourceStorage: NewMemoryResourceStorage()}, nil

	case config.StorageDriverSQLite:
		db, err := NewConnectSQLite(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}

		if err = db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("%w: %w", ErrMigratingDB, err)
		}

		return &Storages{
			ResourceStorage: NewResourceRepository(db, logger),
			db:              db,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}
