package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ritchie200/ecommerce-angular-core/internal/logger"
)

func newTestInserter(t *testing.T, dialect Dialect, registry *Registry) (*IdentityInserter, sqlmock.Sqlmock, *runRecorder) {
	t.Helper()

	var classifier ErrorClassificator = NewPostgresErrorClassifier()
	if dialect.SessionScopedToggle() {
		classifier = NewSQLServerErrorClassifier()
	}

	db, mock := newTestDB(t, dialect, classifier)
	rec := &runRecorder{}

	return NewIdentityInserter(db, registry, fixedIDs{}, rec, logger.Nop()), mock, rec
}

func ordersRegistry(schema, table string) *Registry {
	r := NewRegistry()
	r.MustRegister("Order", TableDescriptor{
		Schema:    schema,
		Name:      table,
		KeyColumn: "Id",
		Columns:   []string{"Id", "BuyerEmail"},
	})
	return r
}

func TestRunWithExplicitKeys_Postgres_Success(t *testing.T) {
	inserter, mock, rec := newTestInserter(t, PostgresDialect{}, NewCatalogRegistry("public"))

	mock.ExpectBegin()
	mock.ExpectExec(`ALTER TABLE "public"."product_brands" ALTER COLUMN "id" SET GENERATED BY DEFAULT`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO "public"."product_brands" ("id","name") VALUES ($1,$2),($3,$4)`).
		WithArgs(1, "Angular", 2, "NetCore").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`ALTER TABLE "public"."product_brands" ALTER COLUMN "id" SET GENERATED ALWAYS`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := inserter.RunWithExplicitKeys(context.Background(), EntityProductBrand, func(ctx context.Context, tx Execer) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO "public"."product_brands" ("id","name") VALUES ($1,$2),($3,$4)`,
			1, "Angular", 2, "NetCore")
		return err
	})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, []observedRun{{table: "public.product_brands", outcome: OutcomeCommitted}}, rec.runs)
}

func TestRunWithExplicitKeys_SQLServer_OrdersWithKnownIDs(t *testing.T) {
	inserter, mock, _ := newTestInserter(t, SQLServerDialect{}, ordersRegistry("dbo", "Orders"))

	mock.ExpectBegin()
	mock.ExpectExec("SET IDENTITY_INSERT [dbo].[Orders] ON").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO [dbo].[Orders] ([Id],[BuyerEmail]) VALUES (@p1,@p2)").
		WithArgs(100, "a@example.com").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO [dbo].[Orders] ([Id],[BuyerEmail]) VALUES (@p1,@p2)").
		WithArgs(101, "b@example.com").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("SET IDENTITY_INSERT [dbo].[Orders] OFF").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := inserter.RunWithExplicitKeys(context.Background(), "Order", func(ctx context.Context, tx Execer) error {
		if _, err := tx.ExecContext(ctx, "INSERT INTO [dbo].[Orders] ([Id],[BuyerEmail]) VALUES (@p1,@p2)", 100, "a@example.com"); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, "INSERT INTO [dbo].[Orders] ([Id],[BuyerEmail]) VALUES (@p1,@p2)", 101, "b@example.com")
		return err
	})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRunWithExplicitKeys_BatchError_Postgres(t *testing.T) {
	inserter, mock, rec := newTestInserter(t, PostgresDialect{}, NewCatalogRegistry("public"))
	batchErr := &pgconn.PgError{Code: pgerrcode.UniqueViolation}

	mock.ExpectBegin()
	mock.ExpectExec(`ALTER TABLE "public"."products" ALTER COLUMN "id" SET GENERATED BY DEFAULT`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := inserter.RunWithExplicitKeys(context.Background(), EntityProduct, func(context.Context, Execer) error {
		return batchErr
	})

	require.Error(t, err)
	var engineErr *StorageEngineError
	require.ErrorAs(t, err, &engineErr)
	assert.Equal(t, PhaseInsertBatch, engineErr.Phase)
	assert.Equal(t, "public.products", engineErr.Table)
	assert.False(t, engineErr.Retryable())
	assert.ErrorIs(t, err, batchErr)
	require.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, []observedRun{{table: "public.products", outcome: OutcomeRolledBack}}, rec.runs)
}

func TestRunWithExplicitKeys_BatchError_SQLServerRestoresAfterRollback(t *testing.T) {
	inserter, mock, _ := newTestInserter(t, SQLServerDialect{}, ordersRegistry("dbo", "Orders"))
	batchErr := errors.New("duplicate key")

	mock.ExpectBegin()
	mock.ExpectExec("SET IDENTITY_INSERT [dbo].[Orders] ON").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()
	mock.ExpectExec("SET IDENTITY_INSERT [dbo].[Orders] OFF").WillReturnResult(sqlmock.NewResult(0, 0))

	err := inserter.RunWithExplicitKeys(context.Background(), "Order", func(context.Context, Execer) error {
		return batchErr
	})

	var engineErr *StorageEngineError
	require.ErrorAs(t, err, &engineErr)
	assert.Equal(t, PhaseInsertBatch, engineErr.Phase)
	assert.ErrorIs(t, err, batchErr)
	assert.NotErrorIs(t, err, ErrRestoringKeyGeneration)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRunWithExplicitKeys_SQLServerRestoreFails(t *testing.T) {
	inserter, mock, _ := newTestInserter(t, SQLServerDialect{}, ordersRegistry("dbo", "Orders"))

	mock.ExpectBegin()
	mock.ExpectExec("SET IDENTITY_INSERT [dbo].[Orders] ON").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()
	mock.ExpectExec("SET IDENTITY_INSERT [dbo].[Orders] OFF").WillReturnError(errors.New("connection reset"))

	err := inserter.RunWithExplicitKeys(context.Background(), "Order", func(context.Context, Execer) error {
		return errors.New("boom")
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRestoringKeyGeneration)
	var engineErr *StorageEngineError
	require.ErrorAs(t, err, &engineErr)
	assert.Equal(t, PhaseInsertBatch, engineErr.Phase)
}

func TestRunWithExplicitKeys_UnmappedType(t *testing.T) {
	inserter, mock, rec := newTestInserter(t, PostgresDialect{}, NewCatalogRegistry("public"))
	called := false

	err := inserter.RunWithExplicitKeys(context.Background(), "Invoice", func(context.Context, Execer) error {
		called = true
		return nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnmappedType)
	var unmapped *UnmappedTypeError
	require.ErrorAs(t, err, &unmapped)
	assert.Equal(t, "Invoice", unmapped.Key)
	assert.False(t, called)
	require.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, []observedRun{{table: "Invoice", outcome: OutcomeUnmapped}}, rec.runs)
}

func TestRunWithExplicitKeys_NilBatch(t *testing.T) {
	inserter, mock, _ := newTestInserter(t, PostgresDialect{}, NewCatalogRegistry("public"))

	err := inserter.RunWithExplicitKeys(context.Background(), EntityProduct, nil)

	assert.ErrorIs(t, err, ErrNilBatch)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRunWithExplicitKeys_BeginFails(t *testing.T) {
	inserter, mock, _ := newTestInserter(t, PostgresDialect{}, NewCatalogRegistry("public"))
	beginErr := &pgconn.PgError{Code: pgerrcode.CannotConnectNow}

	mock.ExpectBegin().WillReturnError(beginErr)

	err := inserter.RunWithExplicitKeys(context.Background(), EntityProduct, func(context.Context, Execer) error {
		t.Fatal("batch must not run")
		return nil
	})

	var engineErr *StorageEngineError
	require.ErrorAs(t, err, &engineErr)
	assert.Equal(t, PhaseBegin, engineErr.Phase)
	assert.True(t, engineErr.Retryable())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRunWithExplicitKeys_DisableFails(t *testing.T) {
	inserter, mock, _ := newTestInserter(t, PostgresDialect{}, NewCatalogRegistry("public"))
	lockErr := &pgconn.PgError{Code: pgerrcode.LockNotAvailable}

	mock.ExpectBegin()
	mock.ExpectExec(`ALTER TABLE "public"."products" ALTER COLUMN "id" SET GENERATED BY DEFAULT`).
		WillReturnError(lockErr)
	mock.ExpectRollback()

	err := inserter.RunWithExplicitKeys(context.Background(), EntityProduct, func(context.Context, Execer) error {
		t.Fatal("batch must not run")
		return nil
	})

	var engineErr *StorageEngineError
	require.ErrorAs(t, err, &engineErr)
	assert.Equal(t, PhaseDisableGeneration, engineErr.Phase)
	assert.True(t, engineErr.Retryable())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRunWithExplicitKeys_EnableFails(t *testing.T) {
	inserter, mock, _ := newTestInserter(t, PostgresDialect{}, NewCatalogRegistry("public"))

	mock.ExpectBegin()
	mock.ExpectExec(`ALTER TABLE "public"."products" ALTER COLUMN "id" SET GENERATED BY DEFAULT`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`ALTER TABLE "public"."products" ALTER COLUMN "id" SET GENERATED ALWAYS`).
		WillReturnError(errors.New("lost connection"))
	mock.ExpectRollback()

	err := inserter.RunWithExplicitKeys(context.Background(), EntityProduct, func(context.Context, Execer) error {
		return nil
	})

	var engineErr *StorageEngineError
	require.ErrorAs(t, err, &engineErr)
	assert.Equal(t, PhaseEnableGeneration, engineErr.Phase)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRunWithExplicitKeys_CommitFails(t *testing.T) {
	inserter, mock, rec := newTestInserter(t, PostgresDialect{}, NewCatalogRegistry("public"))
	commitErr := &pgconn.PgError{Code: pgerrcode.SerializationFailure}

	mock.ExpectBegin()
	mock.ExpectExec(`ALTER TABLE "public"."products" ALTER COLUMN "id" SET GENERATED BY DEFAULT`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`ALTER TABLE "public"."products" ALTER COLUMN "id" SET GENERATED ALWAYS`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit().WillReturnError(commitErr)

	err := inserter.RunWithExplicitKeys(context.Background(), EntityProduct, func(context.Context, Execer) error {
		return nil
	})

	var engineErr *StorageEngineError
	require.ErrorAs(t, err, &engineErr)
	assert.Equal(t, PhaseCommit, engineErr.Phase)
	assert.True(t, engineErr.Retryable())
	assert.ErrorIs(t, err, commitErr)
	require.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, OutcomeRolledBack, rec.runs[0].outcome)
}

func TestRunWithExplicitKeys_SequentialRuns(t *testing.T) {
	inserter, mock, rec := newTestInserter(t, PostgresDialect{}, NewCatalogRegistry("public"))
	const insert = `INSERT INTO "public"."product_types" ("id","name") VALUES ($1,$2)`

	for _, id := range []int{1, 2} {
		mock.ExpectBegin()
		mock.ExpectExec(`ALTER TABLE "public"."product_types" ALTER COLUMN "id" SET GENERATED BY DEFAULT`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(insert).WithArgs(id, "Boards").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`ALTER TABLE "public"."product_types" ALTER COLUMN "id" SET GENERATED ALWAYS`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()
	}

	for _, id := range []int{1, 2} {
		err := inserter.RunWithExplicitKeys(context.Background(), EntityProductType, func(ctx context.Context, tx Execer) error {
			_, err := tx.ExecContext(ctx, insert, id, "Boards")
			return err
		})
		require.NoError(t, err)
	}

	require.NoError(t, mock.ExpectationsWereMet())
	assert.Len(t, rec.runs, 2)
}

func TestRunWithExplicitKeys_NilObserver(t *testing.T) {
	db, mock := newTestDB(t, PostgresDialect{}, nil)
	inserter := NewIdentityInserter(db, NewCatalogRegistry("public"), fixedIDs{}, nil, logger.Nop())

	err := inserter.RunWithExplicitKeys(context.Background(), "Invoice", func(context.Context, Execer) error { return nil })

	assert.ErrorIs(t, err, ErrUnmappedType)
	require.NoError(t, mock.ExpectationsWereMet())
}
