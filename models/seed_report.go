// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DatasetResult describes what happened to a single [Dataset] during a seed
// or import run.
type DatasetResult struct {
	// Key is the entity type of the dataset.
	Key string `json:"key"`

	// Source is copied from [Dataset.Source].
	Source string `json:"source"`

	// Rows is the number of rows the dataset contained.
	Rows int `json:"rows"`

	// Inserted is the number of rows the database reported as inserted.
	Inserted int64 `json:"inserted"`

	// Skipped is true when the target table already held rows and the
	// dataset was not applied.
	Skipped bool `json:"skipped"`
}

// SeedReport aggregates the per-dataset results of a seed run in the order
// the datasets were processed.
type SeedReport struct {
	Results []DatasetResult `json:"results"`
}

// Inserted returns the total number of inserted rows across all datasets.
func (r SeedReport) Inserted() int64 {
	var total int64
	for _, res := range r.Results {
		total += res.Inserted
	}

	return total
}

// Skipped returns the number of datasets that were skipped.
func (r SeedReport) Skipped() int {
	var n int
	for _, res := range r.Results {
		if res.Skipped {
			n++
		}
	}

	return n
}
