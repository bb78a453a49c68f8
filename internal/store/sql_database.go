// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ritchie200/ecommerce-angular-core/internal/config"
	"github.com/ritchie200/ecommerce-angular-core/internal/logger"
	"github.com/ritchie200/ecommerce-angular-core/migrations"
)

// DB is the shared connection pool together with the dialect and error
// classifier of the engine behind it.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB connects to the database selected by cfg.Driver.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLServer:
		return NewConnectSQLServer(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// openDB opens and pings a pool through driverName. The driver name is a
// parameter so tests can route through sqlmock.
func openDB(ctx context.Context, driverName string, cfg config.DB, dialect Dialect, classifier ErrorClassificator, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open(driverName, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "openDB").Str("driver", driverName).Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	if cfg.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "openDB").Str("driver", driverName).Msg("error connecting database (ping)")
		conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Info().Str("func", "openDB").Str("dialect", dialect.Name()).Msg("connected to database successfully")

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		errorClassificator: classifier,
		logger:             log,
	}, nil
}

// Dialect returns the SQL dialect of the connected engine.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Classify classifies err with the engine's classifier. A DB without a
// classifier treats every error as non-retryable.
func (db *DB) Classify(err error) ErrorClassification {
	if db.errorClassificator == nil || err == nil {
		return NonRetryable
	}

	return db.errorClassificator.Classify(err)
}

// Migrate applies the embedded schema migrations. Only PostgreSQL ships
// migrations; a SQL Server schema is expected to be provisioned already.
func (db *DB) Migrate() error {
	if db.dialect.Name() != config.DriverPostgres {
		return fmt.Errorf("%w: %s", ErrMigrationsUnsupported, db.dialect.Name())
	}

	return migrations.Migrate(db.DB)
}
