package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/solid-pod/internal/logger"
)

const resourcesTable = "resources"

// resourceRepository is the SQL-backed implementation of [ResourceStorage].
// It stores one row per resource in the "resources" table; the upsert makes
// Put a single atomic statement.
type resourceRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewResourceRepository constructs a [ResourceStorage] backed by db.
func NewResourceRepository(db *DB, logger *logger.Logger) ResourceStorage {
	return &resourceRepository{
		db:     db,
		logger: logger,
	}
}

func (r *resourceRepository) Get(ctx context.Context, id string) (json.RawMessage, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("value").
		From(resourcesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "resourceRepository.Get").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value []byte
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrResourceNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "resourceRepository.Get").
			Str("resource_id", id).
			Msg("failed to read resource")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return json.RawMessage(value), nil
}

func (r *resourceRepository) Put(ctx context.Context, id string, value json.RawMessage) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Insert(resourcesTable).
		Columns("id", "value").
		Values(id, string(value)).
		Suffix("ON CONFLICT(id) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "resourceRepository.Put").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "resourceRepository.Put").
			Str("resource_id", id).
			Msg("failed to upsert resource")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *resourceRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Delete(resourcesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "resourceRepository.Delete").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "resourceRepository.Delete").
			Str("resource_id", id).
			Msg("failed to delete resource")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrResourceNotFound
	}

	return nil
}
