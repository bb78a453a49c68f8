// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/ritchie200/ecommerce-angular-core/internal/config"
	"github.com/ritchie200/ecommerce-angular-core/internal/logger"
)

// NewConnectPostgres opens a PostgreSQL pool through the pgx stdlib driver.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	return openDB(ctx, config.DriverPostgres, cfg, PostgresDialect{}, NewPostgresErrorClassifier(), log)
}
