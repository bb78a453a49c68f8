// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/ritchie200/ecommerce-angular-core/internal/config"
)

// Dialect captures the engine-specific SQL the store needs: identifier
// quoting, placeholders, batch limits and the statement that switches a
// table between generated and explicit keys.
type Dialect interface {
	// Name returns the database/sql driver name.
	Name() string

	// QualifiedTable returns the quoted schema-qualified table name.
	QualifiedTable(desc TableDescriptor) string

	// QuoteIdent quotes a single column or table identifier.
	QuoteIdent(ident string) string

	// ExplicitKeysStatement returns the administrative statement that turns
	// explicit keys on (automatic generation off) when explicit is true,
	// and back off (automatic generation on) when explicit is false.
	ExplicitKeysStatement(desc TableDescriptor, explicit bool) string

	// SessionScopedToggle reports whether the toggle survives a rollback
	// because the engine keeps it as session state rather than as part of
	// the transaction.
	SessionScopedToggle() bool

	// PlaceholderFormat returns the squirrel placeholder format.
	PlaceholderFormat() sq.PlaceholderFormat

	// MaxRowsPerInsert returns how many rows of the given width fit into a
	// single multi-row INSERT.
	MaxRowsPerInsert(columns int) int
}

// DialectFor returns the dialect for a configured driver name.
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case config.DriverPostgres:
		return PostgresDialect{}, nil
	case config.DriverSQLServer:
		return SQLServerDialect{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}

// PostgresDialect targets PostgreSQL identity columns declared
// GENERATED ALWAYS AS IDENTITY. Explicit keys are allowed by switching the
// column to GENERATED BY DEFAULT. ALTER TABLE is transactional, so a rollback
// restores the column on its own. The backing sequence is left untouched.
type PostgresDialect struct{}

// postgres bind parameter limit (uint16 in the wire protocol)
const postgresMaxParams = 65535

func (PostgresDialect) Name() string { return config.DriverPostgres }

func (PostgresDialect) QualifiedTable(desc TableDescriptor) string {
	if desc.Schema == "" {
		return pgx.Identifier{desc.Name}.Sanitize()
	}

	return pgx.Identifier{desc.Schema, desc.Name}.Sanitize()
}

func (PostgresDialect) QuoteIdent(ident string) string {
	return pgx.Identifier{ident}.Sanitize()
}

func (d PostgresDialect) ExplicitKeysStatement(desc TableDescriptor, explicit bool) string {
	mode := "ALWAYS"
	if explicit {
		mode = "BY DEFAULT"
	}

	return fmt.Sprintf("ALTER TABLE %s ALTER COLUMN %s SET GENERATED %s",
		d.QualifiedTable(desc), d.QuoteIdent(desc.KeyColumn), mode)
}

func (PostgresDialect) SessionScopedToggle() bool { return false }

func (PostgresDialect) PlaceholderFormat() sq.PlaceholderFormat { return sq.Dollar }

func (PostgresDialect) MaxRowsPerInsert(columns int) int {
	return rowsPerInsert(postgresMaxParams, 0, columns)
}

// SQLServerDialect targets SQL Server IDENTITY columns through
// SET IDENTITY_INSERT. The setting belongs to the session, is not undone by
// ROLLBACK, and can be ON for only one table per session at a time.
type SQLServerDialect struct{}

// SQL Server accepts at most 2100 parameters per request and 1000 rows per
// VALUES list.
const (
	sqlServerMaxParams = 2099
	sqlServerMaxRows   = 1000
)

func (SQLServerDialect) Name() string { return config.DriverSQLServer }

func (d SQLServerDialect) QualifiedTable(desc TableDescriptor) string {
	if desc.Schema == "" {
		return d.QuoteIdent(desc.Name)
	}

	return d.QuoteIdent(desc.Schema) + "." + d.QuoteIdent(desc.Name)
}

func (SQLServerDialect) QuoteIdent(ident string) string {
	return "[" + strings.ReplaceAll(ident, "]", "]]") + "]"
}

func (d SQLServerDialect) ExplicitKeysStatement(desc TableDescriptor, explicit bool) string {
	mode := "OFF"
	if explicit {
		mode = "ON"
	}

	return fmt.Sprintf("SET IDENTITY_INSERT %s %s", d.QualifiedTable(desc), mode)
}

func (SQLServerDialect) SessionScopedToggle() bool { return true }

func (SQLServerDialect) PlaceholderFormat() sq.PlaceholderFormat { return sq.AtP }

func (SQLServerDialect) MaxRowsPerInsert(columns int) int {
	return rowsPerInsert(sqlServerMaxParams, sqlServerMaxRows, columns)
}

// rowsPerInsert returns how many rows of width columns fit under maxParams,
// capped at maxRows when maxRows is positive. It never returns less than 1.
func rowsPerInsert(maxParams, maxRows, columns int) int {
	if columns < 1 {
		columns = 1
	}

	n := maxParams / columns
	if maxRows > 0 && n > maxRows {
		n = maxRows
	}

	return max(n, 1)
}
