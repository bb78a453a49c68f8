// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app runs one seeder job: the catalog seed followed by the
// configured explicit-key imports.
package app

import (
	"context"
	"fmt"

	"github.com/ritchie200/ecommerce-angular-core/internal/config"
	"github.com/ritchie200/ecommerce-angular-core/internal/logger"
	"github.com/ritchie200/ecommerce-angular-core/internal/service"
	"github.com/ritchie200/ecommerce-angular-core/models"
)

// DatasetLoader reads datasets from disk or from the embedded catalog.
type DatasetLoader interface {
	LoadDir(dir string) ([]models.Dataset, error)
	LoadFile(key, path string) (models.Dataset, error)
}

// MetricsPusher sends the run's metrics to a Pushgateway.
type MetricsPusher interface {
	Push(ctx context.Context, url, job string) error
}

type Seeder struct {
	seed    config.Seed
	metrics config.Metrics

	seedService service.SeedService
	loader      DatasetLoader
	pusher      MetricsPusher

	logger *logger.Logger
}

// NewSeeder constructs a Seeder. pusher may be nil.
func NewSeeder(cfg *config.StructuredConfig, seedService service.SeedService, loader DatasetLoader, pusher MetricsPusher, logger *logger.Logger) *Seeder {
	return &Seeder{
		seed:        cfg.Seed,
		metrics:     cfg.Metrics,
		seedService: seedService,
		loader:      loader,
		pusher:      pusher,
		logger:      logger,
	}
}

// Run seeds the catalog unless disabled and then applies every configured
// import in order. The returned report covers everything processed before
// the first failure. Metrics are pushed on success and on failure.
func (s *Seeder) Run(ctx context.Context) (report models.SeedReport, err error) {
	if s.seed.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.seed.Timeout)
		defer cancel()
	}

	defer s.pushMetrics(ctx)

	if !s.seed.SkipCatalog {
		datasets, err := s.loader.LoadDir(s.seed.Dir)
		if err != nil {
			return report, fmt.Errorf("error loading catalog: %w", err)
		}

		catalog, err := s.seedService.Seed(ctx, datasets...)
		report.Results = append(report.Results, catalog.Results...)
		if err != nil {
			return report, fmt.Errorf("error seeding catalog: %w", err)
		}
		s.logger.Info().
			Int("datasets", len(catalog.Results)).
			Int("skipped", catalog.Skipped()).
			Int64("inserted", catalog.Inserted()).
			Msg("catalog seeded")
	}

	for _, imp := range s.seed.Imports {
		ds, err := s.loader.LoadFile(imp.Key, imp.Path)
		if err != nil {
			return report, fmt.Errorf("error loading import %s: %w", imp.Path, err)
		}

		result, err := s.seedService.Import(ctx, ds)
		report.Results = append(report.Results, result)
		if err != nil {
			return report, err
		}
	}

	return report, nil
}

func (s *Seeder) pushMetrics(ctx context.Context) {
	if s.pusher == nil || s.metrics.PushgatewayURL == "" {
		return
	}

	// the run context may already be past its deadline
	if err := s.pusher.Push(context.WithoutCancel(ctx), s.metrics.PushgatewayURL, s.metrics.Job); err != nil {
		s.logger.Warn().Err(err).Str("url", s.metrics.PushgatewayURL).Msg("failed to push metrics")
		return
	}

	s.logger.Debug().Str("url", s.metrics.PushgatewayURL).Msg("metrics pushed")
}
