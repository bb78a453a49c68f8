// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/ritchie200/ecommerce-angular-core/models"
)

// Field names accepted by [DatasetValidator].
const (
	// FieldKey targets the dataset's entity key.
	FieldKey = "key"

	// FieldRows requires at least one row.
	FieldRows = "rows"

	// FieldColumns checks that the key column is present and every row has
	// one value per column.
	FieldColumns = "columns"

	// FieldKeys checks that every key is a positive integer and unique.
	FieldKeys = "keys"
)

// DatasetValidator validates [models.Dataset] values.
type DatasetValidator struct{}

// NewDatasetValidator constructs a DatasetValidator and returns it as the
// Validator interface.
func NewDatasetValidator() Validator {
	return &DatasetValidator{}
}

// Validate accepts models.Dataset and *models.Dataset. Without fields all
// checks run in the order key, rows, columns, keys.
func (v *DatasetValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Dataset:
		return v.validateDataset(ctx, value, fields...)
	case *models.Dataset:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateDataset(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *DatasetValidator) validateDataset(_ context.Context, ds models.Dataset, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKey, FieldRows, FieldColumns, FieldKeys}
	}

	for _, f := range fields {
		switch f {
		case FieldKey:
			if ds.Key == "" {
				return ErrEmptyDatasetKey
			}
		case FieldRows:
			if ds.Len() == 0 {
				return fmt.Errorf("%w: %s", ErrEmptyDataset, ds.Key)
			}
		case FieldColumns:
			if ds.KeyIndex() < 0 {
				return fmt.Errorf("%w: %s.%s", ErrMissingKeyColumn, ds.Key, ds.KeyColumn)
			}
			for i, row := range ds.Rows {
				if len(row) != len(ds.Columns) {
					return fmt.Errorf("%w: %s row %d has %d values, want %d",
						ErrColumnCount, ds.Key, i, len(row), len(ds.Columns))
				}
			}
		case FieldKeys:
			if err := validateKeys(ds); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateKeys(ds models.Dataset) error {
	idx := ds.KeyIndex()
	if idx < 0 {
		return fmt.Errorf("%w: %s.%s", ErrMissingKeyColumn, ds.Key, ds.KeyColumn)
	}

	seen := make(map[int64]int, ds.Len())
	for i, row := range ds.Rows {
		if idx >= len(row) {
			return fmt.Errorf("%w: %s row %d", ErrColumnCount, ds.Key, i)
		}

		key, ok := positiveKey(row[idx])
		if !ok {
			return fmt.Errorf("%w: %s row %d has %v", ErrInvalidKey, ds.Key, i, row[idx])
		}

		if first, dup := seen[key]; dup {
			return fmt.Errorf("%w: %s key %d in rows %d and %d", ErrDuplicateKey, ds.Key, key, first, i)
		}
		seen[key] = i
	}

	return nil
}

func positiveKey(v any) (int64, bool) {
	var key int64
	switch k := v.(type) {
	case int64:
		key = k
	case int:
		key = int64(k)
	case int32:
		key = int64(k)
	default:
		return 0, false
	}

	return key, key > 0
}
