// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ritchie200/ecommerce-angular-core/internal/validators"
	"github.com/ritchie200/ecommerce-angular-core/models"
)

// stubSeedService records what reaches the wrapped service.
type stubSeedService struct {
	seeded   []models.Dataset
	imported []models.Dataset
}

func (s *stubSeedService) Seed(_ context.Context, datasets ...models.Dataset) (models.SeedReport, error) {
	s.seeded = append(s.seeded, datasets...)
	return models.SeedReport{}, nil
}

func (s *stubSeedService) Import(_ context.Context, dataset models.Dataset) (models.DatasetResult, error) {
	s.imported = append(s.imported, dataset)
	return models.DatasetResult{Key: dataset.Key}, nil
}

func TestSeedValidationService_Seed_Valid(t *testing.T) {
	inner := &stubSeedService{}
	svc := NewSeedValidationService().Wrap(inner)

	_, err := svc.Seed(context.Background(), brandsDataset(), typesDataset())
	require.NoError(t, err)
	assert.Len(t, inner.seeded, 2)
}

func TestSeedValidationService_Seed_RejectsBeforeDelegating(t *testing.T) {
	inner := &stubSeedService{}
	svc := NewSeedValidationService().Wrap(inner)

	bad := typesDataset()
	bad.Rows = append(bad.Rows, []any{int64(1), "Hats"})

	_, err := svc.Seed(context.Background(), brandsDataset(), bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDataset)
	assert.ErrorIs(t, err, validators.ErrDuplicateKey)
	assert.Empty(t, inner.seeded)
}

func TestSeedValidationService_Seed_NoDatasets(t *testing.T) {
	svc := NewSeedValidationService().Wrap(&stubSeedService{})

	_, err := svc.Seed(context.Background())
	assert.ErrorIs(t, err, ErrNoDatasetsProvided)
}

func TestSeedValidationService_Import(t *testing.T) {
	inner := &stubSeedService{}
	svc := NewSeedValidationService().Wrap(inner)

	result, err := svc.Import(context.Background(), brandsDataset())
	require.NoError(t, err)
	assert.Equal(t, "ProductBrand", result.Key)

	empty := brandsDataset()
	empty.Rows = nil
	_, err = svc.Import(context.Background(), empty)
	assert.ErrorIs(t, err, validators.ErrEmptyDataset)
	assert.Len(t, inner.imported, 1)
}
