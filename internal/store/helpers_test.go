package store

import (
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/ritchie200/ecommerce-angular-core/internal/logger"
)

func newTestDB(t *testing.T, dialect Dialect, classifier ErrorClassificator) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return newDBFromSQL(sqlDB, dialect, classifier), mock
}

func newDBFromSQL(sqlDB *sql.DB, dialect Dialect, classifier ErrorClassificator) *DB {
	return &DB{
		DB:                 sqlDB,
		dialect:            dialect,
		errorClassificator: classifier,
		logger:             logger.Nop(),
	}
}

type fixedIDs struct{}

func (fixedIDs) Generate() string { return "run-1" }

type observedRun struct {
	table   string
	outcome string
}

type runRecorder struct {
	mu   sync.Mutex
	runs []observedRun
}

func (r *runRecorder) ObserveRun(table, outcome string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs = append(r.runs, observedRun{table: table, outcome: outcome})
}
