// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/ritchie200/ecommerce-angular-core/internal/validators"
	"github.com/ritchie200/ecommerce-angular-core/models"
)

// SeedValidationService rejects malformed datasets before the wrapped
// service opens a transaction for them.
type SeedValidationService struct {
	inner     SeedService
	validator validators.Validator
}

func NewSeedValidationService() SeedServiceWrapper {
	return &SeedValidationService{
		validator: validators.NewDatasetValidator(),
	}
}

// Seed validates all datasets up front so a bad file late in the list does
// not leave earlier tables seeded.
func (v *SeedValidationService) Seed(ctx context.Context, datasets ...models.Dataset) (models.SeedReport, error) {
	if len(datasets) == 0 {
		return models.SeedReport{}, ErrNoDatasetsProvided
	}

	for _, ds := range datasets {
		if err := v.validator.Validate(ctx, ds); err != nil {
			return models.SeedReport{}, fmt.Errorf("%w %s (%s): %w", ErrInvalidDataset, ds.Key, ds.Source, err)
		}
	}

	return v.inner.Seed(ctx, datasets...)
}

func (v *SeedValidationService) Import(ctx context.Context, dataset models.Dataset) (models.DatasetResult, error) {
	if err := v.validator.Validate(ctx, dataset); err != nil {
		return models.DatasetResult{}, fmt.Errorf("%w %s (%s): %w", ErrInvalidDataset, dataset.Key, dataset.Source, err)
	}

	return v.inner.Import(ctx, dataset)
}

func (v *SeedValidationService) Wrap(wrapper SeedService) SeedService {
	v.inner = wrapper
	return v
}
