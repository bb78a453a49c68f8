// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/ritchie200/ecommerce-angular-core/internal/logger"
)

// Storages groups the persistence components built on one [DB].
type Storages struct {
	Registry     *Registry
	ExplicitKeys ExplicitKeyRunner
	Catalog      CatalogRepository
}

// NewStorages wires the catalog registry, the identity inserter and the
// catalog repository around db.
func NewStorages(db *DB, schema string, ids IDGenerator, observer RunObserver, logger *logger.Logger) *Storages {
	registry := NewCatalogRegistry(schema)

	return &Storages{
		Registry:     registry,
		ExplicitKeys: NewIdentityInserter(db, registry, ids, observer, logger),
		Catalog:      NewCatalogRepository(db, registry, logger),
	}
}
