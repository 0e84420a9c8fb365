package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"asada-api/internal/model"
	apperrors "asada-api/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ExpenseRepository interface {
	Create(ctx context.Context, tx pgx.Tx, expense *model.Expense) (*model.Expense, error)
	ListByEventID(ctx context.Context, eventID int) ([]*model.Expense, error)
	FindByID(ctx context.Context, id int) (*model.Expense, error)
	Update(ctx context.Context, tx pgx.Tx, id int, params model.UpdateExpenseParams) (*model.Expense, error)
	Delete(ctx context.Context, id int) error
	CountByEventID(ctx context.Context, eventID int) (int, int64, error)

	ReplaceExclusions(ctx context.Context, tx pgx.Tx, expenseID int, attendeeIDs []int) error
	ListExclusionsByEventID(ctx context.Context, eventID int) (map[int][]int, error)
}

type ExpenseRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewExpenseRepository(pool *pgxpool.Pool) ExpenseRepository {
	return &ExpenseRepositoryImpl{
		pool: pool,
	}
}

const expenseColumns = `id, event_id, payer_id, description, amount_cents, created_at, updated_at`

func (r *ExpenseRepositoryImpl) Create(ctx context.Context, tx pgx.Tx, expense *model.Expense) (*model.Expense, error) {
	query := `
		INSERT INTO expenses (event_id, payer_id, description, amount_cents)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + expenseColumns + `
	`
	err := tx.QueryRow(ctx, query,
		expense.EventID, expense.PayerID, expense.Description, expense.AmountCents,
	).Scan(
		&expense.ID,
		&expense.EventID,
		&expense.PayerID,
		&expense.Description,
		&expense.AmountCents,
		&expense.CreatedAt,
		&expense.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return expense, nil
}

func (r *ExpenseRepositoryImpl) ListByEventID(ctx context.Context, eventID int) ([]*model.Expense, error) {
	query := `
		SELECT e.id, e.event_id, e.payer_id, e.description, e.amount_cents,
				e.created_at, e.updated_at, a.name
		FROM expenses e
		LEFT JOIN attendees a ON a.id = e.payer_id
		WHERE e.event_id = $1
		ORDER BY e.created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := make([]*model.Expense, 0)
	for rows.Next() {
		var expense model.Expense
		err := rows.Scan(
			&expense.ID,
			&expense.EventID,
			&expense.PayerID,
			&expense.Description,
			&expense.AmountCents,
			&expense.CreatedAt,
			&expense.UpdatedAt,
			&expense.PayerName,
		)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, &expense)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return expenses, nil
}

func (r *ExpenseRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE id = $1
	`

	var expense model.Expense
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&expense.ID,
		&expense.EventID,
		&expense.PayerID,
		&expense.Description,
		&expense.AmountCents,
		&expense.CreatedAt,
		&expense.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, err
	}

	return &expense, nil
}

func (r *ExpenseRepositoryImpl) Update(ctx context.Context, tx pgx.Tx, id int, params model.UpdateExpenseParams) (*model.Expense, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if params.Description != nil {
		sets = append(sets, fmt.Sprintf("description = $%d", argPos))
		args = append(args, *params.Description)
		argPos++
	}

	if params.AmountCents != nil {
		sets = append(sets, fmt.Sprintf("amount_cents = $%d", argPos))
		args = append(args, *params.AmountCents)
		argPos++
	}

	if params.ClearPayer {
		sets = append(sets, "payer_id = NULL")
	} else if params.PayerID != nil {
		sets = append(sets, fmt.Sprintf("payer_id = $%d", argPos))
		args = append(args, *params.PayerID)
		argPos++
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	sets = append(sets, fmt.Sprintf("updated_at = $%d", argPos))
	args = append(args, time.Now().UTC())
	argPos++

	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE expenses
		SET %s
		WHERE id = $%d
		RETURNING `+expenseColumns+`
	`, strings.Join(sets, ", "), argPos)

	var expense model.Expense
	err := tx.QueryRow(ctx, query, args...).Scan(
		&expense.ID,
		&expense.EventID,
		&expense.PayerID,
		&expense.Description,
		&expense.AmountCents,
		&expense.CreatedAt,
		&expense.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, err
	}

	return &expense, nil
}

func (r *ExpenseRepositoryImpl) Delete(ctx context.Context, id int) error {
	query := `
		DELETE FROM expenses
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrExpenseNotFound
	}

	return nil
}

func (r *ExpenseRepositoryImpl) CountByEventID(ctx context.Context, eventID int) (int, int64, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(amount_cents), 0)
		FROM expenses
		WHERE event_id = $1
	`

	var count int
	var total int64
	if err := r.pool.QueryRow(ctx, query, eventID).Scan(&count, &total); err != nil {
		return 0, 0, err
	}
	return count, total, nil
}

// ReplaceExclusions swaps the excluded-attendee set of an expense.
// The set is stored and surfaced through the API but does not feed the
// balance computation.
func (r *ExpenseRepositoryImpl) ReplaceExclusions(ctx context.Context, tx pgx.Tx, expenseID int, attendeeIDs []int) error {
	if _, err := tx.Exec(ctx, `DELETE FROM expense_exclusions WHERE expense_id = $1`, expenseID); err != nil {
		return err
	}

	for _, attendeeID := range attendeeIDs {
		_, err := tx.Exec(ctx, `
			INSERT INTO expense_exclusions (expense_id, attendee_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, expenseID, attendeeID)
		if err != nil {
			return err
		}
	}

	return nil
}

func (r *ExpenseRepositoryImpl) ListExclusionsByEventID(ctx context.Context, eventID int) (map[int][]int, error) {
	query := `
		SELECT x.expense_id, x.attendee_id
		FROM expense_exclusions x
		JOIN expenses e ON e.id = x.expense_id
		WHERE e.event_id = $1
		ORDER BY x.expense_id, x.attendee_id
	`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exclusions := make(map[int][]int)
	for rows.Next() {
		var expenseID, attendeeID int
		if err := rows.Scan(&expenseID, &attendeeID); err != nil {
			return nil, err
		}
		exclusions[expenseID] = append(exclusions[expenseID], attendeeID)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return exclusions, nil
}
