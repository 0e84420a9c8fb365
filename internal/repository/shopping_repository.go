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

type ShoppingRepository interface {
	Create(ctx context.Context, item *model.ShoppingItem) (*model.ShoppingItem, error)
	ListByEventID(ctx context.Context, eventID int) ([]*model.ShoppingItem, error)
	FindByID(ctx context.Context, id int) (*model.ShoppingItem, error)
	Update(ctx context.Context, id int, params model.UpdateShoppingItemParams) (*model.ShoppingItem, error)
	Delete(ctx context.Context, id int) error
	CountByEventID(ctx context.Context, eventID int) (int, int, error)
}

type ShoppingRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewShoppingRepository(pool *pgxpool.Pool) ShoppingRepository {
	return &ShoppingRepositoryImpl{
		pool: pool,
	}
}

const shoppingColumns = `id, event_id, category_id, name, quantity, unit, purchased, created_at, updated_at`

func scanShoppingItem(row pgx.Row, item *model.ShoppingItem) error {
	return row.Scan(
		&item.ID,
		&item.EventID,
		&item.CategoryID,
		&item.Name,
		&item.Quantity,
		&item.Unit,
		&item.Purchased,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
}

func (r *ShoppingRepositoryImpl) Create(ctx context.Context, item *model.ShoppingItem) (*model.ShoppingItem, error) {
	query := `
		INSERT INTO shopping_items (event_id, category_id, name, quantity, unit)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + shoppingColumns + `
	`
	err := scanShoppingItem(r.pool.QueryRow(ctx, query,
		item.EventID, item.CategoryID, item.Name, item.Quantity, item.Unit,
	), item)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *ShoppingRepositoryImpl) ListByEventID(ctx context.Context, eventID int) ([]*model.ShoppingItem, error) {
	query := `
		SELECT s.id, s.event_id, s.category_id, s.name, s.quantity, s.unit,
				s.purchased, s.created_at, s.updated_at, c.name
		FROM shopping_items s
		LEFT JOIN categories c ON c.id = s.category_id
		WHERE s.event_id = $1
		ORDER BY c.sort_order NULLS LAST, s.created_at ASC
	`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*model.ShoppingItem, 0)
	for rows.Next() {
		var item model.ShoppingItem
		err := rows.Scan(
			&item.ID,
			&item.EventID,
			&item.CategoryID,
			&item.Name,
			&item.Quantity,
			&item.Unit,
			&item.Purchased,
			&item.CreatedAt,
			&item.UpdatedAt,
			&item.CategoryName,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *ShoppingRepositoryImpl) FindByID(ctx context.Context, id int) (*model.ShoppingItem, error) {
	query := `
		SELECT ` + shoppingColumns + `
		FROM shopping_items
		WHERE id = $1
	`

	var item model.ShoppingItem
	err := scanShoppingItem(r.pool.QueryRow(ctx, query, id), &item)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrShoppingItemNotFound
		}
		return nil, err
	}

	return &item, nil
}

func (r *ShoppingRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateShoppingItemParams) (*model.ShoppingItem, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if params.Name != nil {
		sets = append(sets, fmt.Sprintf("name = $%d", argPos))
		args = append(args, *params.Name)
		argPos++
	}

	if params.Quantity != nil {
		sets = append(sets, fmt.Sprintf("quantity = $%d", argPos))
		args = append(args, *params.Quantity)
		argPos++
	}

	if params.Unit != nil {
		sets = append(sets, fmt.Sprintf("unit = $%d", argPos))
		args = append(args, *params.Unit)
		argPos++
	}

	if params.CategoryID != nil {
		sets = append(sets, fmt.Sprintf("category_id = $%d", argPos))
		args = append(args, *params.CategoryID)
		argPos++
	}

	if params.Purchased != nil {
		sets = append(sets, fmt.Sprintf("purchased = $%d", argPos))
		args = append(args, *params.Purchased)
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
		UPDATE shopping_items
		SET %s
		WHERE id = $%d
		RETURNING `+shoppingColumns+`
	`, strings.Join(sets, ", "), argPos)

	var item model.ShoppingItem
	err := scanShoppingItem(r.pool.QueryRow(ctx, query, args...), &item)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrShoppingItemNotFound
		}
		return nil, err
	}

	return &item, nil
}

func (r *ShoppingRepositoryImpl) Delete(ctx context.Context, id int) error {
	query := `
		DELETE FROM shopping_items
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrShoppingItemNotFound
	}

	return nil
}

func (r *ShoppingRepositoryImpl) CountByEventID(ctx context.Context, eventID int) (int, int, error) {
	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE purchased)
		FROM shopping_items
		WHERE event_id = $1
	`

	var total, purchased int
	if err := r.pool.QueryRow(ctx, query, eventID).Scan(&total, &purchased); err != nil {
		return 0, 0, err
	}
	return total, purchased, nil
}
