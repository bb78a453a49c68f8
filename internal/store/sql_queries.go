// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// buildInsertRowsQuery builds one multi-row INSERT of rows into desc's table.
// Every row must hold exactly one value per registered column.
func buildInsertRowsQuery(dialect Dialect, desc TableDescriptor, rows [][]any) (string, []any, error) {
	if len(rows) == 0 {
		return "", nil, ErrEmptyBatch
	}

	columns := make([]string, len(desc.Columns))
	for i, c := range desc.Columns {
		columns[i] = dialect.QuoteIdent(c)
	}

	builder := sq.Insert(dialect.QualifiedTable(desc)).
		Columns(columns...).
		PlaceholderFormat(dialect.PlaceholderFormat())

	for i, row := range rows {
		if len(row) != len(desc.Columns) {
			return "", nil, fmt.Errorf("%w: row %d has %d values, table %s has %d columns",
				ErrColumnMismatch, i, len(row), desc, len(desc.Columns))
		}
		builder = builder.Values(row...)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildCountRowsQuery builds SELECT COUNT(*) for desc's table.
func buildCountRowsQuery(dialect Dialect, desc TableDescriptor) (string, []any, error) {
	query, args, err := sq.Select("COUNT(*)").
		From(dialect.QualifiedTable(desc)).
		PlaceholderFormat(dialect.PlaceholderFormat()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// chunkRows splits rows into consecutive slices of at most size rows.
func chunkRows(rows [][]any, size int) [][][]any {
	if size < 1 {
		size = 1
	}

	chunks := make([][][]any, 0, (len(rows)+size-1)/size)
	for start := 0; start < len(rows); start += size {
		end := min(start+size, len(rows))
		chunks = append(chunks, rows[start:end])
	}

	return chunks
}
