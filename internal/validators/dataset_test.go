// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ritchie200/ecommerce-angular-core/models"
)

func validDataset() models.Dataset {
	return models.Dataset{
		Key:       "ProductBrand",
		KeyColumn: "id",
		Columns:   []string{"id", "name"},
		Rows: [][]any{
			{int64(1), "Angular"},
			{int64(2), "NetCore"},
		},
		Source: "embedded:brands.json",
	}
}

func TestNewDatasetValidator(t *testing.T) {
	require.NotNil(t, NewDatasetValidator())
}

func TestDatasetValidator_Valid(t *testing.T) {
	v := NewDatasetValidator()
	ds := validDataset()

	assert.NoError(t, v.Validate(context.Background(), ds))
	assert.NoError(t, v.Validate(context.Background(), &ds))
}

func TestDatasetValidator_UnsupportedType(t *testing.T) {
	v := NewDatasetValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), "dataset"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), (*models.Dataset)(nil)), ErrUnsupportedType)
}

func TestDatasetValidator_UnknownField(t *testing.T) {
	err := NewDatasetValidator().Validate(context.Background(), validDataset(), "price")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestDatasetValidator_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(ds *models.Dataset)
		want   error
	}{
		{"empty key", func(ds *models.Dataset) { ds.Key = "" }, ErrEmptyDatasetKey},
		{"no rows", func(ds *models.Dataset) { ds.Rows = nil }, ErrEmptyDataset},
		{"key column missing", func(ds *models.Dataset) { ds.KeyColumn = "brand_id" }, ErrMissingKeyColumn},
		{"short row", func(ds *models.Dataset) { ds.Rows[1] = []any{int64(2)} }, ErrColumnCount},
		{"zero key", func(ds *models.Dataset) { ds.Rows[0][0] = int64(0) }, ErrInvalidKey},
		{"negative key", func(ds *models.Dataset) { ds.Rows[0][0] = -4 }, ErrInvalidKey},
		{"string key", func(ds *models.Dataset) { ds.Rows[0][0] = "1" }, ErrInvalidKey},
		{"nil key", func(ds *models.Dataset) { ds.Rows[0][0] = nil }, ErrInvalidKey},
		{"duplicate key", func(ds *models.Dataset) { ds.Rows[1][0] = int64(1) }, ErrDuplicateKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := validDataset()
			tt.mutate(&ds)

			err := NewDatasetValidator().Validate(context.Background(), ds)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDatasetValidator_FieldScoping(t *testing.T) {
	v := NewDatasetValidator()
	ds := validDataset()
	ds.Rows[1][0] = int64(1)

	assert.NoError(t, v.Validate(context.Background(), ds, FieldKey, FieldRows, FieldColumns))
	assert.ErrorIs(t, v.Validate(context.Background(), ds, FieldKeys), ErrDuplicateKey)
}

func TestDatasetValidator_MixedIntegerKinds(t *testing.T) {
	ds := validDataset()
	ds.Rows[0][0] = 7
	ds.Rows[1][0] = int32(8)

	assert.NoError(t, NewDatasetValidator().Validate(context.Background(), ds))
}
