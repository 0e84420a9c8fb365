package repository

import (
	"context"
	"time"

	"asada-api/internal/model"
	apperrors "asada-api/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BankInfoRepository interface {
	Upsert(ctx context.Context, info *model.BankInfo) (*model.BankInfo, error)
	FindByAttendeeID(ctx context.Context, attendeeID int) (*model.BankInfo, error)
	DeleteByAttendeeID(ctx context.Context, attendeeID int) error
}

type BankInfoRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewBankInfoRepository(pool *pgxpool.Pool) BankInfoRepository {
	return &BankInfoRepositoryImpl{
		pool: pool,
	}
}

const bankInfoColumns = `id, attendee_id, holder_name, bank_name, clabe, account_number, created_at, updated_at`

func scanBankInfo(row pgx.Row, info *model.BankInfo) error {
	return row.Scan(
		&info.ID,
		&info.AttendeeID,
		&info.HolderName,
		&info.BankName,
		&info.CLABE,
		&info.AccountNumber,
		&info.CreatedAt,
		&info.UpdatedAt,
	)
}

// Upsert keeps one row per attendee: a second save replaces the first
// in a single statement.
func (r *BankInfoRepositoryImpl) Upsert(ctx context.Context, info *model.BankInfo) (*model.BankInfo, error) {
	query := `
		INSERT INTO bank_infos (attendee_id, holder_name, bank_name, clabe, account_number)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (attendee_id) DO UPDATE
		SET holder_name = EXCLUDED.holder_name,
			bank_name = EXCLUDED.bank_name,
			clabe = EXCLUDED.clabe,
			account_number = EXCLUDED.account_number,
			updated_at = $6
		RETURNING ` + bankInfoColumns + `
	`
	err := scanBankInfo(r.pool.QueryRow(ctx, query,
		info.AttendeeID, info.HolderName, info.BankName,
		info.CLABE, info.AccountNumber, time.Now().UTC(),
	), info)
	if err != nil {
		return nil, err
	}
	return info, nil
}

func (r *BankInfoRepositoryImpl) FindByAttendeeID(ctx context.Context, attendeeID int) (*model.BankInfo, error) {
	query := `
		SELECT ` + bankInfoColumns + `
		FROM bank_infos
		WHERE attendee_id = $1
	`

	var info model.BankInfo
	err := scanBankInfo(r.pool.QueryRow(ctx, query, attendeeID), &info)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrBankInfoNotFound
		}
		return nil, err
	}

	return &info, nil
}

func (r *BankInfoRepositoryImpl) DeleteByAttendeeID(ctx context.Context, attendeeID int) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM bank_infos WHERE attendee_id = $1`, attendeeID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrBankInfoNotFound
	}

	return nil
}
