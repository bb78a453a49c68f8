// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"database/sql"
	"time"
)

// Execer is the part of *sql.Tx handed to an [InsertBatch]. Every statement
// issued through it belongs to the surrounding identity-insert transaction.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// InsertBatch inserts rows that carry explicit primary keys. It runs while
// automatic key generation is disabled for the target table.
type InsertBatch func(ctx context.Context, tx Execer) error

// ExplicitKeyRunner runs an [InsertBatch] with automatic key generation
// disabled for the table mapped to entityKey.
type ExplicitKeyRunner interface {
	RunWithExplicitKeys(ctx context.Context, entityKey string, batch InsertBatch) error
}

// CatalogRepository reads and writes catalog tables addressed by entity key.
type CatalogRepository interface {
	// CountRows returns the number of rows currently stored in the table.
	CountRows(ctx context.Context, entityKey string) (int64, error)

	// InsertRows inserts rows positionally aligned with the table's
	// registered columns using tx, and returns the affected row count.
	InsertRows(ctx context.Context, tx Execer, entityKey string, rows [][]any) (int64, error)
}

// ErrorClassificator decides whether a database error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// RunObserver receives the outcome of every identity-insert run.
type RunObserver interface {
	ObserveRun(table, outcome string, elapsed time.Duration)
}

// IDGenerator produces correlation identifiers for identity-insert runs.
type IDGenerator interface {
	Generate() string
}
