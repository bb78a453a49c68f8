// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidStorageConfigs indicates invalid database settings
	// (for example, empty DSN or unsupported driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSeedConfigs indicates an import entry without key or path,
	// or a negative timeout.
	ErrInvalidSeedConfigs = errors.New("invalid seed configuration")
	// ErrInvalidMetricsConfigs indicates a malformed Pushgateway URL.
	ErrInvalidMetricsConfigs = errors.New("invalid metrics configuration")
)
