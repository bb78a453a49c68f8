// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/ritchie200/ecommerce-angular-core/internal/logger"
)

// catalogRepository is the database/sql implementation of
// [CatalogRepository]. Tables are resolved through the registry, SQL is
// rendered with the connection's dialect.
type catalogRepository struct {
	*DB
	registry *Registry
	logger   *logger.Logger
}

// NewCatalogRepository constructs a [CatalogRepository].
func NewCatalogRepository(db *DB, registry *Registry, logger *logger.Logger) CatalogRepository {
	logger.Debug().Msg("creating catalog repository")
	return &catalogRepository{
		DB:       db,
		registry: registry,
		logger:   logger,
	}
}

// CountRows returns the number of rows in the table mapped to entityKey.
func (r *catalogRepository) CountRows(ctx context.Context, entityKey string) (int64, error) {
	log := logger.FromContext(ctx)

	desc, err := r.registry.Lookup(entityKey)
	if err != nil {
		return 0, err
	}

	query, args, err := buildCountRowsQuery(r.dialect, desc)
	if err != nil {
		log.Err(err).Str("func", "catalogRepository.CountRows").Str("table", desc.String()).Msg("failed to create query")
		return 0, err
	}

	var count int64
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "catalogRepository.CountRows").Str("table", desc.String()).Msg("failed to count rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// InsertRows inserts rows into the table mapped to entityKey through tx.
// Rows are split into as many INSERT statements as the dialect's parameter
// limits require; all of them run on tx.
func (r *catalogRepository) InsertRows(ctx context.Context, tx Execer, entityKey string, rows [][]any) (int64, error) {
	log := logger.FromContext(ctx)

	desc, err := r.registry.Lookup(entityKey)
	if err != nil {
		return 0, err
	}

	if len(rows) == 0 {
		return 0, ErrEmptyBatch
	}

	var inserted int64
	for n, chunk := range chunkRows(rows, r.dialect.MaxRowsPerInsert(len(desc.Columns))) {
		query, args, err := buildInsertRowsQuery(r.dialect, desc, chunk)
		if err != nil {
			log.Err(err).
				Str("func", "catalogRepository.InsertRows").
				Str("table", desc.String()).
				Int("chunk", n).
				Msg("failed to create query")
			return inserted, err
		}

		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).
				Str("func", "catalogRepository.InsertRows").
				Str("table", desc.String()).
				Int("chunk", n).
				Int("rows", len(chunk)).
				Msg("failed to insert rows")
			return inserted, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			affected = int64(len(chunk))
		}
		inserted += affected
	}

	log.Debug().Str("table", desc.String()).Int64("inserted", inserted).Msg("rows inserted")
	return inserted, nil
}
