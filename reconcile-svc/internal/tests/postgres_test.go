package tests

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tandoor-ordering/reconcile-svc/internal/domain"
	"tandoor-ordering/reconcile-svc/internal/storage"
)

var reconciliationColumns = []string{
	"id", "order_id", "session_id", "payment_method", "payment_id", "total", "reason",
	"status", "occurred_at", "created_at", "resolved_at", "resolution_note",
}

func setupRepository(t *testing.T) (*storage.PostgresRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return storage.NewPostgresRepository(db), mock
}

func sampleRecord() *domain.Reconciliation {
	return &domain.Reconciliation{
		OrderID:       "42",
		SessionID:     "3f1c2a7e-9b4d-4c1e-8f6a-2d5b7c9e0a13",
		PaymentMethod: "card",
		PaymentID:     "pi_1",
		Total:         decimal.RequireFromString("32.01"),
		Reason:        "confirm-payment: ordering backend unavailable",
		OccurredAt:    time.Date(2026, time.October, 19, 21, 3, 0, 0, time.UTC),
	}
}

func TestPostgresRepository_Insert(t *testing.T) {
	insertQuery := regexp.QuoteMeta("INSERT INTO payment_reconciliations")
	createdAt := time.Date(2026, time.October, 19, 21, 3, 1, 0, time.UTC)

	tests := []struct {
		name         string
		prepareMocks func(mock sqlmock.Sqlmock)
		wantCreated  bool
		wantErr      bool
	}{
		{
			name: "new_record",
			prepareMocks: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(insertQuery).
					WithArgs("42", "3f1c2a7e-9b4d-4c1e-8f6a-2d5b7c9e0a13", "card", "pi_1", "32.01",
						"confirm-payment: ordering backend unavailable", sqlmock.AnyArg()).
					WillReturnRows(sqlmock.NewRows([]string{"id", "status", "created_at"}).AddRow(7, "open", createdAt))
			},
			wantCreated: true,
		},
		{
			name: "duplicate_is_skipped",
			prepareMocks: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(insertQuery).WillReturnRows(sqlmock.NewRows([]string{"id", "status", "created_at"}))
			},
		},
		{
			name: "database_error",
			prepareMocks: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(insertQuery).WillReturnError(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo, mock := setupRepository(t)
			testCase.prepareMocks(mock)

			rec := sampleRecord()
			created, err := repo.Insert(context.Background(), rec)

			if testCase.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.wantCreated, created)
			if testCase.wantCreated {
				assert.Equal(t, int64(7), rec.ID)
				assert.Equal(t, domain.StatusOpen, rec.Status)
				assert.True(t, createdAt.Equal(rec.CreatedAt))
			}
		})
	}
}

func TestPostgresRepository_List(t *testing.T) {
	repo, mock := setupRepository(t)
	occurred := time.Date(2026, time.October, 19, 21, 3, 0, 0, time.UTC)
	resolved := occurred.Add(time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta("FROM payment_reconciliations")).
		WithArgs("open").
		WillReturnRows(sqlmock.NewRows(reconciliationColumns).
			AddRow(8, "43", "s2", "paypal", "PAYPAL-1", "18.50", "verify-paypal: timeout", "open", occurred, occurred, nil, "").
			AddRow(7, "42", "s1", "card", "pi_1", "32.01", "confirm-payment: 502", "resolved", occurred, occurred, resolved, "confirmed in CRM"))

	recs, err := repo.List(context.Background(), domain.StatusOpen)

	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "43", recs[0].OrderID)
	assert.True(t, recs[0].Total.Equal(decimal.RequireFromString("18.50")))
	assert.Nil(t, recs[0].ResolvedAt)
	assert.Equal(t, domain.StatusResolved, recs[1].Status)
	require.NotNil(t, recs[1].ResolvedAt)
	assert.True(t, resolved.Equal(*recs[1].ResolvedAt))
}

func TestPostgresRepository_ListEmpty(t *testing.T) {
	repo, mock := setupRepository(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM payment_reconciliations")).
		WithArgs("").
		WillReturnRows(sqlmock.NewRows(reconciliationColumns))

	recs, err := repo.List(context.Background(), "")

	require.NoError(t, err)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestPostgresRepository_Resolve(t *testing.T) {
	updateQuery := regexp.QuoteMeta("UPDATE payment_reconciliations")
	getQuery := regexp.QuoteMeta("WHERE id = $1")
	occurred := time.Date(2026, time.October, 19, 21, 3, 0, 0, time.UTC)
	at := occurred.Add(2 * time.Hour)

	tests := []struct {
		name         string
		prepareMocks func(mock sqlmock.Sqlmock)
		wantErr      error
	}{
		{
			name: "resolved",
			prepareMocks: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(updateQuery).
					WithArgs(int64(7), at, "refunded").
					WillReturnRows(sqlmock.NewRows(reconciliationColumns).
						AddRow(7, "42", "s1", "card", "pi_1", "32.01", "", "resolved", occurred, occurred, at, "refunded"))
			},
		},
		{
			name: "already_resolved",
			prepareMocks: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(updateQuery).WillReturnError(sql.ErrNoRows)
				mock.ExpectQuery(getQuery).WithArgs(int64(7)).
					WillReturnRows(sqlmock.NewRows(reconciliationColumns).
						AddRow(7, "42", "s1", "card", "pi_1", "32.01", "", "resolved", occurred, occurred, at, "refunded"))
			},
			wantErr: domain.ErrAlreadyResolved,
		},
		{
			name: "missing",
			prepareMocks: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(updateQuery).WillReturnError(sql.ErrNoRows)
				mock.ExpectQuery(getQuery).WithArgs(int64(7)).WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo, mock := setupRepository(t)
			testCase.prepareMocks(mock)

			rec, err := repo.Resolve(context.Background(), 7, "refunded", at)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.StatusResolved, rec.Status)
			assert.Equal(t, "refunded", rec.ResolutionNote)
		})
	}
}

func TestMigrationSource(t *testing.T) {
	src, err := storage.MigrationSource()
	require.NoError(t, err)
	defer src.Close()

	version, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)

	up, identifier, err := src.ReadUp(version)
	require.NoError(t, err)
	defer up.Close()
	assert.Equal(t, "create_payment_reconciliations", identifier)

	schema, err := io.ReadAll(up)
	require.NoError(t, err)
	assert.Contains(t, string(schema), "UNIQUE (order_id, payment_id)")
}
