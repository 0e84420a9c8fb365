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

type AttendeeRepository interface {
	Create(ctx context.Context, attendee *model.Attendee) (*model.Attendee, error)
	ListByEventID(ctx context.Context, eventID int) ([]*model.Attendee, error)
	FindByID(ctx context.Context, id int) (*model.Attendee, error)
	Update(ctx context.Context, id int, params model.UpdateAttendeeParams) (*model.Attendee, error)
	Delete(ctx context.Context, id int) error
	CountByEventID(ctx context.Context, eventID int) (int, error)
}

type AttendeeRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewAttendeeRepository(pool *pgxpool.Pool) AttendeeRepository {
	return &AttendeeRepositoryImpl{
		pool: pool,
	}
}

const attendeeColumns = `id, event_id, name, exclude_from_split, created_at, updated_at`

func scanAttendee(row pgx.Row, attendee *model.Attendee) error {
	return row.Scan(
		&attendee.ID,
		&attendee.EventID,
		&attendee.Name,
		&attendee.ExcludeFromSplit,
		&attendee.CreatedAt,
		&attendee.UpdatedAt,
	)
}

func (r *AttendeeRepositoryImpl) Create(ctx context.Context, attendee *model.Attendee) (*model.Attendee, error) {
	query := `
		INSERT INTO attendees (event_id, name, exclude_from_split)
		VALUES ($1, $2, $3)
		RETURNING ` + attendeeColumns + `
	`
	err := scanAttendee(r.pool.QueryRow(ctx, query,
		attendee.EventID, attendee.Name, attendee.ExcludeFromSplit,
	), attendee)
	if err != nil {
		return nil, err
	}
	return attendee, nil
}

func (r *AttendeeRepositoryImpl) ListByEventID(ctx context.Context, eventID int) ([]*model.Attendee, error) {
	query := `
		SELECT ` + attendeeColumns + `
		FROM attendees
		WHERE event_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attendees := make([]*model.Attendee, 0)
	for rows.Next() {
		var attendee model.Attendee
		if err := scanAttendee(rows, &attendee); err != nil {
			return nil, err
		}
		attendees = append(attendees, &attendee)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return attendees, nil
}

func (r *AttendeeRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Attendee, error) {
	query := `
		SELECT ` + attendeeColumns + `
		FROM attendees
		WHERE id = $1
	`

	var attendee model.Attendee
	err := scanAttendee(r.pool.QueryRow(ctx, query, id), &attendee)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrAttendeeNotFound
		}
		return nil, err
	}

	return &attendee, nil
}

func (r *AttendeeRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateAttendeeParams) (*model.Attendee, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if params.Name != nil {
		sets = append(sets, fmt.Sprintf("name = $%d", argPos))
		args = append(args, *params.Name)
		argPos++
	}

	if params.ExcludeFromSplit != nil {
		sets = append(sets, fmt.Sprintf("exclude_from_split = $%d", argPos))
		args = append(args, *params.ExcludeFromSplit)
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
		UPDATE attendees
		SET %s
		WHERE id = $%d
		RETURNING `+attendeeColumns+`
	`, strings.Join(sets, ", "), argPos)

	var attendee model.Attendee
	err := scanAttendee(r.pool.QueryRow(ctx, query, args...), &attendee)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrAttendeeNotFound
		}
		return nil, err
	}

	return &attendee, nil
}

func (r *AttendeeRepositoryImpl) Delete(ctx context.Context, id int) error {
	query := `
		DELETE FROM attendees
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrAttendeeNotFound
	}

	return nil
}

func (r *AttendeeRepositoryImpl) CountByEventID(ctx context.Context, eventID int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM attendees
		WHERE event_id = $1
	`

	var count int
	if err := r.pool.QueryRow(ctx, query, eventID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
