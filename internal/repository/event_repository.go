package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"asada-api/internal/model"
	apperrors "asada-api/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	FindByID(ctx context.Context, id int) (*model.Event, error)
	FindByPublicID(ctx context.Context, publicID string) (*model.Event, error)
	Update(ctx context.Context, id int, params model.UpdateEventParams) (*model.Event, error)
	Cancel(ctx context.Context, id int) (*model.Event, error)
	Delete(ctx context.Context, id int) error
}

type EventRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &EventRepositoryImpl{
		pool: pool,
	}
}

const eventColumns = `id, public_id, title, starts_at, location, maps_url, description, cancelled_at, created_at, updated_at`

func scanEvent(row pgx.Row, event *model.Event) error {
	return row.Scan(
		&event.ID,
		&event.PublicID,
		&event.Title,
		&event.StartsAt,
		&event.Location,
		&event.MapsURL,
		&event.Description,
		&event.CancelledAt,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	query := `
		INSERT INTO events (public_id, title, starts_at, location, maps_url, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + eventColumns + `
	`
	err := scanEvent(r.pool.QueryRow(ctx, query,
		event.PublicID, event.Title, event.StartsAt,
		event.Location, event.MapsURL, event.Description,
	), event)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrPublicIDTaken
		}
		return nil, err
	}
	return event, nil
}

func (r *EventRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE id = $1
	`

	var event model.Event
	err := scanEvent(r.pool.QueryRow(ctx, query, id), &event)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	return &event, nil
}

func (r *EventRepositoryImpl) FindByPublicID(ctx context.Context, publicID string) (*model.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE public_id = $1
	`

	var event model.Event
	err := scanEvent(r.pool.QueryRow(ctx, query, publicID), &event)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	return &event, nil
}

func (r *EventRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateEventParams) (*model.Event, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if params.Title != nil {
		sets = append(sets, fmt.Sprintf("title = $%d", argPos))
		args = append(args, *params.Title)
		argPos++
	}

	if params.StartsAt != nil {
		sets = append(sets, fmt.Sprintf("starts_at = $%d", argPos))
		args = append(args, *params.StartsAt)
		argPos++
	}

	if params.Location != nil {
		sets = append(sets, fmt.Sprintf("location = $%d", argPos))
		args = append(args, *params.Location)
		argPos++
	}

	if params.MapsURL != nil {
		sets = append(sets, fmt.Sprintf("maps_url = $%d", argPos))
		args = append(args, *params.MapsURL)
		argPos++
	}

	if params.Description != nil {
		sets = append(sets, fmt.Sprintf("description = $%d", argPos))
		args = append(args, *params.Description)
		argPos++
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	// add updated_at
	sets = append(sets, fmt.Sprintf("updated_at = $%d", argPos))
	args = append(args, time.Now().UTC())
	argPos++

	// add id
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE events
		SET %s
		WHERE id = $%d
		RETURNING `+eventColumns+`
	`, strings.Join(sets, ", "), argPos)

	var event model.Event
	err := scanEvent(r.pool.QueryRow(ctx, query, args...), &event)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	return &event, nil
}

func (r *EventRepositoryImpl) Cancel(ctx context.Context, id int) (*model.Event, error) {
	// Idempotent: cancelling an already-cancelled event keeps the
	// original timestamp.
	query := `
		UPDATE events
		SET cancelled_at = COALESCE(cancelled_at, $1), updated_at = $1
		WHERE id = $2
		RETURNING ` + eventColumns + `
	`

	var event model.Event
	err := scanEvent(r.pool.QueryRow(ctx, query, time.Now().UTC(), id), &event)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	return &event, nil
}

func (r *EventRepositoryImpl) Delete(ctx context.Context, id int) error {
	query := `
		DELETE FROM events
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}
