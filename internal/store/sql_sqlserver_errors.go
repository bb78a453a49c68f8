// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	mssql "github.com/microsoft/go-mssqldb"
)

// SQL Server error numbers the store reacts to.
const (
	mssqlDeadlockVictim       = 1205
	mssqlLockTimeout          = 1222
	mssqlDatabaseUnavailable  = 40613
	mssqlServiceBusy          = 40501
	mssqlCannotOpenDatabase   = 4060
	mssqlIdentityInsertOff    = 544
	mssqlIdentityInsertOnElse = 8107
	mssqlUniqueKeyViolation   = 2627
	mssqlDuplicateKeyRow      = 2601
)

// SQLServerErrorClassifier implements [ErrorClassificator] for SQL Server
// by inspecting mssql.Error numbers.
type SQLServerErrorClassifier struct{}

// NewSQLServerErrorClassifier constructs a [SQLServerErrorClassifier].
func NewSQLServerErrorClassifier() *SQLServerErrorClassifier {
	return &SQLServerErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *SQLServerErrorClassifier) Classify(err error) ErrorClassification {
	number, ok := sqlServerErrorNumber(err)
	if !ok {
		return NonRetryable
	}

	switch number {
	case mssqlDeadlockVictim,
		mssqlLockTimeout,
		mssqlDatabaseUnavailable,
		mssqlServiceBusy,
		mssqlCannotOpenDatabase:
		return Retryable
	case mssqlIdentityInsertOff,
		mssqlIdentityInsertOnElse,
		mssqlUniqueKeyViolation,
		mssqlDuplicateKeyRow:
		// fails the same way on every attempt
		return NonRetryable
	}

	return NonRetryable
}

func sqlServerErrorNumber(err error) (int32, bool) {
	var msErr mssql.Error
	if errors.As(err, &msErr) {
		return msErr.Number, true
	}

	var msErrPtr *mssql.Error
	if errors.As(err, &msErrPtr) && msErrPtr != nil {
		return msErrPtr.Number, true
	}

	return 0, false
}
