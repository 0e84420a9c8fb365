package repository

import (
	"context"

	"asada-api/internal/model"
	apperrors "asada-api/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReceiptRepository interface {
	Create(ctx context.Context, receipt *model.Receipt) (*model.Receipt, error)
	FindByID(ctx context.Context, id int) (*model.Receipt, error)
	ListByExpenseID(ctx context.Context, expenseID int) ([]*model.Receipt, error)
	ListByEventID(ctx context.Context, eventID int) ([]*model.Receipt, error)
	Delete(ctx context.Context, id int) error
}

type ReceiptRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewReceiptRepository(pool *pgxpool.Pool) ReceiptRepository {
	return &ReceiptRepositoryImpl{
		pool: pool,
	}
}

const receiptColumns = `id, expense_id, url, object_name, created_at`

func scanReceipt(row pgx.Row, receipt *model.Receipt) error {
	return row.Scan(
		&receipt.ID,
		&receipt.ExpenseID,
		&receipt.URL,
		&receipt.ObjectName,
		&receipt.CreatedAt,
	)
}

func (r *ReceiptRepositoryImpl) Create(ctx context.Context, receipt *model.Receipt) (*model.Receipt, error) {
	query := `
		INSERT INTO expense_receipts (expense_id, url, object_name)
		VALUES ($1, $2, $3)
		RETURNING ` + receiptColumns + `
	`
	err := scanReceipt(r.pool.QueryRow(ctx, query,
		receipt.ExpenseID, receipt.URL, receipt.ObjectName,
	), receipt)
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

func (r *ReceiptRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Receipt, error) {
	query := `
		SELECT ` + receiptColumns + `
		FROM expense_receipts
		WHERE id = $1
	`

	var receipt model.Receipt
	err := scanReceipt(r.pool.QueryRow(ctx, query, id), &receipt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrReceiptNotFound
		}
		return nil, err
	}

	return &receipt, nil
}

func (r *ReceiptRepositoryImpl) ListByExpenseID(ctx context.Context, expenseID int) ([]*model.Receipt, error) {
	query := `
		SELECT ` + receiptColumns + `
		FROM expense_receipts
		WHERE expense_id = $1
		ORDER BY created_at ASC
	`
	return r.list(ctx, query, expenseID)
}

func (r *ReceiptRepositoryImpl) ListByEventID(ctx context.Context, eventID int) ([]*model.Receipt, error) {
	query := `
		SELECT x.id, x.expense_id, x.url, x.object_name, x.created_at
		FROM expense_receipts x
		JOIN expenses e ON e.id = x.expense_id
		WHERE e.event_id = $1
		ORDER BY x.created_at ASC
	`
	return r.list(ctx, query, eventID)
}

func (r *ReceiptRepositoryImpl) list(ctx context.Context, query string, arg interface{}) ([]*model.Receipt, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	receipts := make([]*model.Receipt, 0)
	for rows.Next() {
		var receipt model.Receipt
		if err := scanReceipt(rows, &receipt); err != nil {
			return nil, err
		}
		receipts = append(receipts, &receipt)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return receipts, nil
}

func (r *ReceiptRepositoryImpl) Delete(ctx context.Context, id int) error {
	query := `
		DELETE FROM expense_receipts
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrReceiptNotFound
	}

	return nil
}
