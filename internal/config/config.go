// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Supported values of [DB.Driver].
const (
	DriverPostgres  = "pgx"
	DriverSQLServer = "sqlserver"
)

// Defaults applied to the merged configuration by [StructuredConfig.applyDefaults].
const (
	DefaultPostgresSchema  = "public"
	DefaultSQLServerSchema = "dbo"
	DefaultMetricsJob      = "seeder"
	DefaultSeedTimeout     = 5 * time.Minute
	DefaultMaxOpenConns    = 4
)

// StructuredConfig is the top-level configuration container for the seeder.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Seed controls which datasets are loaded and imported.
	Seed Seed `envPrefix:"SEED_"`

	// Metrics controls pushing run metrics to a Prometheus Pushgateway.
	Metrics Metrics `envPrefix:"METRICS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// Version is reported in the start-up log line.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// Driver selects the database/sql driver and SQL dialect:
	// "pgx" (PostgreSQL) or "sqlserver" (Microsoft SQL Server).
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the connection string handed to sql.Open.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Schema qualifies every catalog table. Defaults to "public" for pgx
	// and "dbo" for sqlserver.
	// Env: STORAGE_DB_SCHEMA
	Schema string `env:"SCHEMA"`

	// MaxOpenConns caps the connection pool.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`

	// MaxIdleConns caps idle pooled connections.
	// Env: STORAGE_DB_MAX_IDLE_CONNS
	MaxIdleConns int `env:"MAX_IDLE_CONNS"`

	// ConnMaxLifetime bounds how long a pooled connection is reused.
	// Env: STORAGE_DB_CONN_MAX_LIFETIME
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME"`

	// Migrate runs the embedded goose migrations before seeding.
	// Only honoured for the pgx driver.
	// Env: STORAGE_DB_MIGRATE
	Migrate bool `env:"MIGRATE"`
}

// Seed controls the catalog seed and the explicit-key imports.
type Seed struct {
	// Dir overrides the embedded catalog with JSON files from a directory.
	// Env: SEED_DIR
	Dir string `env:"DIR"`

	// SkipCatalog disables the catalog seed; only Imports are applied.
	// Env: SEED_SKIP_CATALOG
	SkipCatalog bool `env:"SKIP_CATALOG"`

	// Imports lists additional datasets to import unconditionally.
	// Env: SEED_IMPORTS="Order=/data/orders.json,Product=/data/extra.json"
	Imports Imports `env:"IMPORTS"`

	// Timeout bounds the whole seed and import run.
	// Env: SEED_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Metrics holds Pushgateway settings. Pushing is disabled when
// PushgatewayURL is empty.
type Metrics struct {
	// Env: METRICS_PUSHGATEWAY_URL
	PushgatewayURL string `env:"PUSHGATEWAY_URL"`

	// Env: METRICS_JOB
	Job string `env:"JOB"`
}

// GetStructuredConfig loads, merges, defaults and validates the seeder
// configuration from the JSON file, environment variables and command-line
// flags (see the package documentation for precedence).
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DriverPostgres
	}

	if cfg.Storage.DB.Schema == "" {
		switch cfg.Storage.DB.Driver {
		case DriverSQLServer:
			cfg.Storage.DB.Schema = DefaultSQLServerSchema
		default:
			cfg.Storage.DB.Schema = DefaultPostgresSchema
		}
	}

	if cfg.Storage.DB.MaxOpenConns == 0 {
		cfg.Storage.DB.MaxOpenConns = DefaultMaxOpenConns
	}

	if cfg.Seed.Timeout == 0 {
		cfg.Seed.Timeout = DefaultSeedTimeout
	}

	if cfg.Metrics.Job == "" {
		cfg.Metrics.Job = DefaultMetricsJob
	}
}
