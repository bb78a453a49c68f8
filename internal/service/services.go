// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/ritchie200/ecommerce-angular-core/internal/logger"
	"github.com/ritchie200/ecommerce-angular-core/internal/store"
)

type Services struct {
	SeedService SeedService
}

// NewServices builds the seed service wrapped in dataset validation.
func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	seed := NewSeedService(storages.ExplicitKeys, storages.Catalog, logger)

	return &Services{
		SeedService: NewSeedValidationService().Wrap(seed),
	}
}
