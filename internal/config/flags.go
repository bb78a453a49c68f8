// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses the seeder command-line flags from args.
//
// Flags:
//
//	-driver database driver: pgx or sqlserver
//	-d database DSN
//	-schema schema qualifying the catalog tables
//	-migrate run embedded migrations before seeding (pgx only)
//	-seed-dir directory with catalog JSON files
//	-skip-catalog do not seed the catalog, only run imports
//	-import key=path dataset to import with explicit keys (repeatable)
//	-seed-timeout timeout for the whole run (e.g. "5m")
//	-pushgateway Prometheus Pushgateway URL
//	-log-level zerolog level name
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("seeder", flag.ContinueOnError)

	var (
		driver, dsn, schema string
		migrate             bool
		seedDir             string
		skipCatalog         bool
		imports             Imports
		seedTimeout         time.Duration
		pushgateway         string
		logLevel            string
		jsonConfigPath      string
	)

	fs.StringVar(&driver, "driver", "", "Database driver (pgx, sqlserver)")
	fs.StringVar(&dsn, "d", "", "Database DSN")
	fs.StringVar(&schema, "schema", "", "Schema of the catalog tables")
	fs.BoolVar(&migrate, "migrate", false, "Run migrations before seeding (pgx only)")
	fs.StringVar(&seedDir, "seed-dir", "", "Directory with catalog JSON files")
	fs.BoolVar(&skipCatalog, "skip-catalog", false, "Skip the catalog seed")
	fs.Var(&imports, "import", "Dataset to import as key=path (repeatable)")
	fs.DurationVar(&seedTimeout, "seed-timeout", 0, "Timeout for the whole run (e.g., 5m)")
	fs.StringVar(&pushgateway, "pushgateway", "", "Prometheus Pushgateway URL")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver:  driver,
				DSN:     dsn,
				Schema:  schema,
				Migrate: migrate,
			},
		},
		Seed: Seed{
			Dir:         seedDir,
			SkipCatalog: skipCatalog,
			Imports:     imports,
			Timeout:     seedTimeout,
		},
		Metrics: Metrics{
			PushgatewayURL: pushgateway,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
