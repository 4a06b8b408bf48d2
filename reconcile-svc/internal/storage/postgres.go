package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"tandoor-ordering/reconcile-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

const reconciliationColumns = `id, order_id, session_id, payment_method, payment_id, total, reason,
		status, occurred_at, created_at, resolved_at, resolution_note`

// Insert stores rec unless a record for the same order and payment exists.
// It reports whether a row was written.
func (r *PostgresRepository) Insert(ctx context.Context, rec *domain.Reconciliation) (bool, error) {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO payment_reconciliations
			(order_id, session_id, payment_method, payment_id, total, reason, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (order_id, payment_id) DO NOTHING
		RETURNING id, status, created_at
	`, rec.OrderID, rec.SessionID, rec.PaymentMethod, rec.PaymentID, rec.Total, rec.Reason, rec.OccurredAt).
		Scan(&rec.ID, &rec.Status, &rec.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// List returns reconciliations newest first. An empty status lists all of them.
func (r *PostgresRepository) List(ctx context.Context, status domain.Status) ([]domain.Reconciliation, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+reconciliationColumns+`
		FROM payment_reconciliations
		WHERE $1::text = '' OR status = $1
		ORDER BY created_at DESC
	`, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recs := []domain.Reconciliation{}
	for rows.Next() {
		rec, err := scanReconciliation(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, *rec)
	}
	return recs, rows.Err()
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*domain.Reconciliation, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT `+reconciliationColumns+`
		FROM payment_reconciliations
		WHERE id = $1
	`, id)
	rec, err := scanReconciliation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return rec, err
}

// Resolve closes an open reconciliation.
func (r *PostgresRepository) Resolve(ctx context.Context, id int64, note string, at time.Time) (*domain.Reconciliation, error) {
	row := r.DB.QueryRowContext(ctx, `
		UPDATE payment_reconciliations
		SET status = 'resolved', resolved_at = $2, resolution_note = $3
		WHERE id = $1 AND status = 'open'
		RETURNING `+reconciliationColumns, id, at, note)
	rec, err := scanReconciliation(row)
	if !errors.Is(err, sql.ErrNoRows) {
		return rec, err
	}

	existing, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.Status == domain.StatusResolved {
		return nil, domain.ErrAlreadyResolved
	}
	return nil, fmt.Errorf("resolve reconciliation %d: no rows updated", id)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReconciliation(s scanner) (*domain.Reconciliation, error) {
	var (
		rec        domain.Reconciliation
		resolvedAt sql.NullTime
	)
	if err := s.Scan(&rec.ID, &rec.OrderID, &rec.SessionID, &rec.PaymentMethod, &rec.PaymentID, &rec.Total,
		&rec.Reason, &rec.Status, &rec.OccurredAt, &rec.CreatedAt, &resolvedAt, &rec.ResolutionNote); err != nil {
		return nil, err
	}
	if resolvedAt.Valid {
		rec.ResolvedAt = &resolvedAt.Time
	}
	return &rec, nil
}
