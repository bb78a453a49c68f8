// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"github.com/ritchie200/ecommerce-angular-core/internal/logger"
)

// Outcomes reported to [RunObserver].
const (
	OutcomeCommitted  = "committed"
	OutcomeRolledBack = "rolled_back"
	OutcomeUnmapped   = "unmapped"
)

// IdentityInserter runs insert batches that supply their own primary keys.
//
// For the duration of a batch it switches the target table's identity column
// from generated to explicit keys and switches it back afterwards, all inside
// one transaction on one dedicated connection. Whatever happens, the table
// is left with automatic key generation enabled.
type IdentityInserter struct {
	db       *DB
	registry *Registry
	observer RunObserver
	ids      IDGenerator
	locks    *tableLocks
	logger   *logger.Logger
}

// NewIdentityInserter constructs an [IdentityInserter]. observer may be nil.
func NewIdentityInserter(db *DB, registry *Registry, ids IDGenerator, observer RunObserver, logger *logger.Logger) *IdentityInserter {
	logger.Debug().Msg("creating identity inserter")
	return &IdentityInserter{
		db:       db,
		registry: registry,
		observer: observer,
		ids:      ids,
		locks:    newTableLocks(),
		logger:   logger,
	}
}

// RunWithExplicitKeys disables automatic key generation for the table mapped
// to entityKey, runs batch, re-enables generation and commits.
//
// An unknown entityKey fails with [*UnmappedTypeError] before any connection
// is acquired. Any later failure rolls the transaction back and is returned
// as [*StorageEngineError] naming the failed [Phase]. Every statement the
// batch issues through tx shares the transaction.
//
// Concurrent calls for the same table are serialized within the process.
// Separate processes must coordinate on their own.
func (i *IdentityInserter) RunWithExplicitKeys(ctx context.Context, entityKey string, batch InsertBatch) (err error) {
	desc, err := i.registry.Lookup(entityKey)
	if err != nil {
		i.observe(entityKey, OutcomeUnmapped, 0)
		return err
	}

	if batch == nil {
		return fmt.Errorf("%w: entity %q", ErrNilBatch, entityKey)
	}

	dialect := i.db.Dialect()
	table := dialect.QualifiedTable(desc)
	log := logger.FromContext(ctx).WithFields("table", desc.String(), "run_id", i.ids.Generate())

	unlock := i.locks.lock(table)
	defer unlock()

	started := time.Now()
	defer func() {
		outcome := OutcomeCommitted
		if err != nil {
			outcome = OutcomeRolledBack
		}
		i.observe(desc.String(), outcome, time.Since(started))
	}()

	conn, err := i.db.Conn(ctx)
	if err != nil {
		return i.fail(log, PhaseBegin, desc, err)
	}
	defer conn.Close()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return i.fail(log, PhaseBegin, desc, err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := i.rollback(ctx, log, conn, tx, desc); rbErr != nil {
			err = errors.Join(err, rbErr)
		}
	}()

	log.Debug().Msg("switching to explicit keys")
	if _, err = tx.ExecContext(ctx, dialect.ExplicitKeysStatement(desc, true)); err != nil {
		return i.fail(log, PhaseDisableGeneration, desc, err)
	}

	if err = batch(ctx, tx); err != nil {
		return i.fail(log, PhaseInsertBatch, desc, err)
	}

	log.Debug().Msg("restoring generated keys")
	if _, err = tx.ExecContext(ctx, dialect.ExplicitKeysStatement(desc, false)); err != nil {
		return i.fail(log, PhaseEnableGeneration, desc, err)
	}

	if err = tx.Commit(); err != nil {
		return i.fail(log, PhaseCommit, desc, err)
	}
	committed = true

	log.Info().Dur("elapsed", time.Since(started)).Msg("explicit key batch committed")
	return nil
}

// rollback rolls tx back and, for engines that keep the toggle as session
// state, restores generated keys on conn. If that restore fails, conn is
// discarded rather than returned to the pool.
func (i *IdentityInserter) rollback(ctx context.Context, log *logger.Logger, conn *sql.Conn, tx *sql.Tx, desc TableDescriptor) error {
	var errs []error

	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		errs = append(errs, fmt.Errorf("%w: %w", ErrRollingBackTransaction, err))
	}

	dialect := i.db.Dialect()
	if dialect.SessionScopedToggle() {
		restore := dialect.ExplicitKeysStatement(desc, false)
		if _, err := conn.ExecContext(context.WithoutCancel(ctx), restore); err != nil {
			errs = append(errs, fmt.Errorf("%w: %w", ErrRestoringKeyGeneration, err))
			_ = conn.Raw(func(any) error { return driver.ErrBadConn })
		}
	}

	log.Warn().Msg("explicit key batch rolled back")
	return errors.Join(errs...)
}

func (i *IdentityInserter) fail(log *logger.Logger, phase Phase, desc TableDescriptor, err error) error {
	engineErr := &StorageEngineError{
		Phase:          phase,
		Table:          desc.String(),
		Classification: i.db.Classify(err),
		Err:            err,
	}

	log.Err(err).
		Str("func", "IdentityInserter.RunWithExplicitKeys").
		Str("phase", string(phase)).
		Str("sqlstate", postgresError(err)).
		Stringer("classification", engineErr.Classification).
		Msg("explicit key batch failed")

	return engineErr
}

func (i *IdentityInserter) observe(table, outcome string, elapsed time.Duration) {
	if i.observer != nil {
		i.observer.ObserveRun(table, outcome, elapsed)
	}
}
