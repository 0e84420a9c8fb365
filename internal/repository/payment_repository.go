package repository

import (
	"context"
	"time"

	"asada-api/internal/model"
	apperrors "asada-api/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PaymentRepository interface {
	Upsert(ctx context.Context, payment *model.Payment) (*model.Payment, error)
	ListByEventID(ctx context.Context, eventID int) ([]*model.Payment, error)
	FindByID(ctx context.Context, id int) (*model.Payment, error)
	UpdateStatus(ctx context.Context, id int, status model.PaymentStatus) (*model.Payment, error)
	Delete(ctx context.Context, id int) error
}

type PaymentRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewPaymentRepository(pool *pgxpool.Pool) PaymentRepository {
	return &PaymentRepositoryImpl{
		pool: pool,
	}
}

const paymentColumns = `id, event_id, from_attendee_id, to_attendee_id, amount_cents, status, created_at, updated_at`

func scanPayment(row pgx.Row, payment *model.Payment) error {
	return row.Scan(
		&payment.ID,
		&payment.EventID,
		&payment.FromAttendeeID,
		&payment.ToAttendeeID,
		&payment.AmountCents,
		&payment.Status,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)
}

// Upsert records a settlement in one atomic statement: a second
// payment between the same pair updates amount and status instead of
// inserting a duplicate, with no read-then-write race window.
func (r *PaymentRepositoryImpl) Upsert(ctx context.Context, payment *model.Payment) (*model.Payment, error) {
	query := `
		INSERT INTO payments (event_id, from_attendee_id, to_attendee_id, amount_cents, status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (event_id, from_attendee_id, to_attendee_id) DO UPDATE
		SET amount_cents = EXCLUDED.amount_cents,
			status = EXCLUDED.status,
			updated_at = $6
		RETURNING ` + paymentColumns + `
	`
	err := scanPayment(r.pool.QueryRow(ctx, query,
		payment.EventID, payment.FromAttendeeID, payment.ToAttendeeID,
		payment.AmountCents, payment.Status, time.Now().UTC(),
	), payment)
	if err != nil {
		return nil, err
	}
	return payment, nil
}

func (r *PaymentRepositoryImpl) ListByEventID(ctx context.Context, eventID int) ([]*model.Payment, error) {
	query := `
		SELECT p.id, p.event_id, p.from_attendee_id, p.to_attendee_id,
				p.amount_cents, p.status, p.created_at, p.updated_at,
				f.name, t.name
		FROM payments p
		JOIN attendees f ON f.id = p.from_attendee_id
		JOIN attendees t ON t.id = p.to_attendee_id
		WHERE p.event_id = $1
		ORDER BY p.created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]*model.Payment, 0)
	for rows.Next() {
		var payment model.Payment
		err := rows.Scan(
			&payment.ID,
			&payment.EventID,
			&payment.FromAttendeeID,
			&payment.ToAttendeeID,
			&payment.AmountCents,
			&payment.Status,
			&payment.CreatedAt,
			&payment.UpdatedAt,
			&payment.FromName,
			&payment.ToName,
		)
		if err != nil {
			return nil, err
		}
		payments = append(payments, &payment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}

func (r *PaymentRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE id = $1
	`

	var payment model.Payment
	err := scanPayment(r.pool.QueryRow(ctx, query, id), &payment)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrPaymentNotFound
		}
		return nil, err
	}

	return &payment, nil
}

func (r *PaymentRepositoryImpl) UpdateStatus(ctx context.Context, id int, status model.PaymentStatus) (*model.Payment, error) {
	query := `
		UPDATE payments
		SET status = $1, updated_at = $2
		WHERE id = $3
		RETURNING ` + paymentColumns + `
	`

	var payment model.Payment
	err := scanPayment(r.pool.QueryRow(ctx, query, status, time.Now().UTC(), id), &payment)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrPaymentNotFound
		}
		return nil, err
	}

	return &payment, nil
}

func (r *PaymentRepositoryImpl) Delete(ctx context.Context, id int) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrPaymentNotFound
	}

	return nil
}
