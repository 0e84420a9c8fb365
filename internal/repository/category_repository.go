package repository

import (
	"context"
	"fmt"
	"strings"

	"asada-api/internal/model"
	apperrors "asada-api/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CategoryRepository manages the global reference data: shopping
// categories and the suggested items under them.
type CategoryRepository interface {
	List(ctx context.Context) ([]*model.Category, error)
	FindByID(ctx context.Context, id int) (*model.Category, error)
	Create(ctx context.Context, category *model.Category) (*model.Category, error)
	Update(ctx context.Context, id int, name *string, sortOrder *int) (*model.Category, error)
	Delete(ctx context.Context, id int) error

	ListSuggestions(ctx context.Context, categoryID int) ([]*model.SuggestedItem, error)
	CreateSuggestion(ctx context.Context, item *model.SuggestedItem) (*model.SuggestedItem, error)
	DeleteSuggestion(ctx context.Context, id int) error
}

type CategoryRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) CategoryRepository {
	return &CategoryRepositoryImpl{
		pool: pool,
	}
}

func (r *CategoryRepositoryImpl) List(ctx context.Context) ([]*model.Category, error) {
	query := `
		SELECT id, name, sort_order
		FROM categories
		ORDER BY sort_order ASC, name ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]*model.Category, 0)
	for rows.Next() {
		var category model.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.SortOrder); err != nil {
			return nil, err
		}
		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *CategoryRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Category, error) {
	query := `
		SELECT id, name, sort_order
		FROM categories
		WHERE id = $1
	`

	var category model.Category
	err := r.pool.QueryRow(ctx, query, id).Scan(&category.ID, &category.Name, &category.SortOrder)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, err
	}

	return &category, nil
}

func (r *CategoryRepositoryImpl) Create(ctx context.Context, category *model.Category) (*model.Category, error) {
	query := `
		INSERT INTO categories (name, sort_order)
		VALUES ($1, $2)
		RETURNING id, name, sort_order
	`
	err := r.pool.QueryRow(ctx, query, category.Name, category.SortOrder).
		Scan(&category.ID, &category.Name, &category.SortOrder)
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (r *CategoryRepositoryImpl) Update(ctx context.Context, id int, name *string, sortOrder *int) (*model.Category, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if name != nil {
		sets = append(sets, fmt.Sprintf("name = $%d", argPos))
		args = append(args, *name)
		argPos++
	}

	if sortOrder != nil {
		sets = append(sets, fmt.Sprintf("sort_order = $%d", argPos))
		args = append(args, *sortOrder)
		argPos++
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE categories
		SET %s
		WHERE id = $%d
		RETURNING id, name, sort_order
	`, strings.Join(sets, ", "), argPos)

	var category model.Category
	err := r.pool.QueryRow(ctx, query, args...).Scan(&category.ID, &category.Name, &category.SortOrder)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, err
	}

	return &category, nil
}

func (r *CategoryRepositoryImpl) Delete(ctx context.Context, id int) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrCategoryNotFound
	}

	return nil
}

func (r *CategoryRepositoryImpl) ListSuggestions(ctx context.Context, categoryID int) ([]*model.SuggestedItem, error) {
	query := `
		SELECT id, category_id, name, unit
		FROM suggested_items
		WHERE category_id = $1
		ORDER BY name ASC
	`

	rows, err := r.pool.Query(ctx, query, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*model.SuggestedItem, 0)
	for rows.Next() {
		var item model.SuggestedItem
		if err := rows.Scan(&item.ID, &item.CategoryID, &item.Name, &item.Unit); err != nil {
			return nil, err
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *CategoryRepositoryImpl) CreateSuggestion(ctx context.Context, item *model.SuggestedItem) (*model.SuggestedItem, error) {
	query := `
		INSERT INTO suggested_items (category_id, name, unit)
		VALUES ($1, $2, $3)
		RETURNING id, category_id, name, unit
	`
	err := r.pool.QueryRow(ctx, query, item.CategoryID, item.Name, item.Unit).
		Scan(&item.ID, &item.CategoryID, &item.Name, &item.Unit)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *CategoryRepositoryImpl) DeleteSuggestion(ctx context.Context, id int) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM suggested_items WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrSuggestionNotFound
	}

	return nil
}
