// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataset     = errors.New("invalid dataset")
	ErrNoDatasetsProvided = errors.New("no datasets provided")
)
