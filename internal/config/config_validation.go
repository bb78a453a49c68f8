// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the merged and defaulted [StructuredConfig] can be
// used to start the seeder.
func (cfg *StructuredConfig) validate() error {
	db := cfg.Storage.DB
	if db.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	switch db.Driver {
	case DriverPostgres, DriverSQLServer:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, db.Driver)
	}

	if db.MaxOpenConns < 0 || db.MaxIdleConns < 0 {
		return fmt.Errorf("%w: connection limits must not be negative", ErrInvalidStorageConfigs)
	}

	for _, imp := range cfg.Seed.Imports {
		if imp.Key == "" || imp.Path == "" {
			return fmt.Errorf("%w: import %q needs both key and path", ErrInvalidSeedConfigs, imp.Key+"="+imp.Path)
		}
	}

	if cfg.Seed.Timeout < 0 {
		return fmt.Errorf("%w: timeout must not be negative", ErrInvalidSeedConfigs)
	}

	if cfg.Metrics.PushgatewayURL != "" {
		u, err := url.Parse(cfg.Metrics.PushgatewayURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: bad pushgateway url %q", ErrInvalidMetricsConfigs, cfg.Metrics.PushgatewayURL)
		}
	}

	return nil
}
