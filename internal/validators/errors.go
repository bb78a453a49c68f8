// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyDatasetKey  = errors.New("dataset entity key is required")
	ErrEmptyDataset     = errors.New("dataset has no rows")
	ErrMissingKeyColumn = errors.New("dataset does not carry its key column")
	ErrColumnCount      = errors.New("row width does not match dataset columns")
	ErrInvalidKey       = errors.New("key must be a positive integer")
	ErrDuplicateKey     = errors.New("duplicate key in dataset")
)
