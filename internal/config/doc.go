// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// for the seeder.
//
// Configuration is assembled from multiple sources. Later sources override
// non-zero fields of earlier ones:
//  1. JSON config file (path taken from CONFIG or -c / -config)
//  2. Environment variables
//  3. Command-line flags
//
// The entry point is [GetStructuredConfig].
package config
