// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service applies catalog datasets through the explicit-key
// helper of package store.
package service

import (
	"context"

	"github.com/ritchie200/ecommerce-angular-core/models"
)

// SeedService writes datasets whose rows carry their own primary keys.
type SeedService interface {
	// Seed applies datasets in order, skipping every dataset whose table
	// already holds rows. It stops at the first failure and returns the
	// report collected so far together with the error.
	Seed(ctx context.Context, datasets ...models.Dataset) (models.SeedReport, error)

	// Import applies one dataset regardless of existing rows.
	Import(ctx context.Context, dataset models.Dataset) (models.DatasetResult, error)
}

// SeedServiceWrapper defines middleware composition for SeedService.
// Implementations wrap an existing SeedService to add behavior such as
// validating.
type SeedServiceWrapper interface {
	Wrap(SeedService) SeedService // returns a decorated SeedService applying additional behavior
}
