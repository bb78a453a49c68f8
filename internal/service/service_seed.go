// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/ritchie200/ecommerce-angular-core/internal/logger"
	"github.com/ritchie200/ecommerce-angular-core/internal/store"
	"github.com/ritchie200/ecommerce-angular-core/models"
)

type seedService struct {
	explicitKeys store.ExplicitKeyRunner
	catalog      store.CatalogRepository

	logger *logger.Logger
}

func NewSeedService(explicitKeys store.ExplicitKeyRunner, catalog store.CatalogRepository, logger *logger.Logger) SeedService {
	return &seedService{
		explicitKeys: explicitKeys,
		catalog:      catalog,
		logger:       logger,
	}
}

func (s *seedService) Seed(ctx context.Context, datasets ...models.Dataset) (models.SeedReport, error) {
	report := models.SeedReport{Results: make([]models.DatasetResult, 0, len(datasets))}

	for _, ds := range datasets {
		result, err := s.seedDataset(ctx, ds)
		report.Results = append(report.Results, result)
		if err != nil {
			return report, err
		}
	}

	return report, nil
}

func (s *seedService) seedDataset(ctx context.Context, ds models.Dataset) (models.DatasetResult, error) {
	log := s.logger.WithFields("entity", ds.Key, "source", ds.Source)

	count, err := s.catalog.CountRows(log.ToContext(ctx), ds.Key)
	if err != nil {
		return newResult(ds), fmt.Errorf("error checking %s before seeding: %w", ds.Key, err)
	}

	if count > 0 {
		log.Info().Int64("existing_rows", count).Msg("table already seeded, skipping")
		result := newResult(ds)
		result.Skipped = true
		return result, nil
	}

	return s.Import(ctx, ds)
}

func (s *seedService) Import(ctx context.Context, ds models.Dataset) (models.DatasetResult, error) {
	log := s.logger.WithFields("entity", ds.Key, "source", ds.Source)
	ctx = log.ToContext(ctx)
	result := newResult(ds)

	err := s.explicitKeys.RunWithExplicitKeys(ctx, ds.Key, func(ctx context.Context, tx store.Execer) error {
		inserted, err := s.catalog.InsertRows(ctx, tx, ds.Key, ds.Rows)
		if err != nil {
			return err
		}
		result.Inserted = inserted
		return nil
	})
	if err != nil {
		result.Inserted = 0
		return result, fmt.Errorf("error importing %s from %s: %w", ds.Key, ds.Source, err)
	}

	log.Info().Int("rows", result.Rows).Int64("inserted", result.Inserted).Msg("dataset imported")
	return result, nil
}

func newResult(ds models.Dataset) models.DatasetResult {
	return models.DatasetResult{
		Key:    ds.Key,
		Source: ds.Source,
		Rows:   ds.Len(),
	}
}
