// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Dataset is a batch of rows destined for one catalog table, every row
// carrying its primary key explicitly.
//
// Rows are positional: Rows[i][j] is the value of Columns[j]. The loader in
// package seed guarantees that Columns matches the table descriptor
// registered for Key, so repositories can insert rows without re-mapping.
type Dataset struct {
	// Key is the logical entity type the rows belong to (e.g. "Product").
	// It is resolved to a physical table through the store registry.
	Key string

	// KeyColumn names the identity column whose values are supplied
	// explicitly by every row.
	KeyColumn string

	// Columns lists the insertable columns in row order.
	Columns []string

	// Rows holds the row values aligned with Columns.
	Rows [][]any

	// Source describes where the dataset came from (file path or
	// "embedded:<name>"). Used only for logging and reports.
	Source string
}

// KeyIndex returns the position of KeyColumn inside Columns, or -1 when the
// dataset does not carry its key column.
func (d Dataset) KeyIndex() int {
	for i, c := range d.Columns {
		if c == d.KeyColumn {
			return i
		}
	}

	return -1
}

// Len returns the number of rows in the dataset.
func (d Dataset) Len() int {
	return len(d.Rows)
}
