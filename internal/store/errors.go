// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
)

// Sentinel errors for registry and configuration problems.
var (
	// ErrUnmappedType is matched (via errors.Is) by every [UnmappedTypeError].
	ErrUnmappedType = errors.New("entity type has no table mapping")

	// ErrDuplicateMapping is returned when an entity key is registered twice.
	ErrDuplicateMapping = errors.New("entity type is already mapped")

	// ErrInvalidDescriptor is returned when a table descriptor misses its
	// table name, key column or columns, or lists the key column twice.
	ErrInvalidDescriptor = errors.New("invalid table descriptor")

	// ErrUnsupportedDriver is returned for a database driver with no dialect.
	ErrUnsupportedDriver = errors.New("unsupported database driver")

	// ErrMigrationsUnsupported is returned when migrations are requested
	// for a dialect that has no embedded migrations.
	ErrMigrationsUnsupported = errors.New("migrations are not available for this dialect")

	// ErrNilBatch is returned when RunWithExplicitKeys gets no batch.
	ErrNilBatch = errors.New("insert batch is nil")
)

// Low-level database operation errors. These are returned (or wrapped) when
// a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrEmptyBatch is returned when InsertRows receives no rows.
	ErrEmptyBatch = errors.New("no rows to insert")

	// ErrColumnMismatch is returned when a row does not have exactly one
	// value per registered column.
	ErrColumnMismatch = errors.New("row values do not match table columns")

	// ErrRollingBackTransaction is joined to the original failure when the
	// rollback itself fails.
	ErrRollingBackTransaction = errors.New("failed to roll back transaction")

	// ErrRestoringKeyGeneration is joined to the original failure when
	// automatic key generation could not be restored on the session after a
	// rollback. The connection is discarded in that case.
	ErrRestoringKeyGeneration = errors.New("failed to restore automatic key generation")
)

// UnmappedTypeError reports an entity key that has no table descriptor in
// the registry. It is a programmer or configuration error and is returned
// before any connection is touched.
type UnmappedTypeError struct {
	Key string
}

func (e *UnmappedTypeError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnmappedType, e.Key)
}

// Is reports whether target is [ErrUnmappedType].
func (e *UnmappedTypeError) Is(target error) bool {
	return target == ErrUnmappedType
}

// Phase names the step of an identity-insert run that failed.
type Phase string

const (
	PhaseBegin             Phase = "begin"
	PhaseDisableGeneration Phase = "disable_generation"
	PhaseInsertBatch       Phase = "insert_batch"
	PhaseEnableGeneration  Phase = "enable_generation"
	PhaseCommit            Phase = "commit"
)

// StorageEngineError wraps a failure of an identity-insert run. By the time
// it reaches the caller the transaction has been rolled back and automatic
// key generation is enabled again.
type StorageEngineError struct {
	// Phase is the step that failed.
	Phase Phase

	// Table is the schema-qualified table of the run.
	Table string

	// Classification tells whether the underlying database error is
	// transient. The identity-insert helper never retries on its own.
	Classification ErrorClassification

	// Err is the underlying error.
	Err error
}

func (e *StorageEngineError) Error() string {
	return fmt.Sprintf("identity insert on %s failed at %s: %v", e.Table, e.Phase, e.Err)
}

func (e *StorageEngineError) Unwrap() error {
	return e.Err
}

// Retryable reports whether the underlying error was classified as transient.
func (e *StorageEngineError) Retryable() bool {
	return e.Classification == Retryable
}
