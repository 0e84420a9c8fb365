package service

import (
	"context"

	"asada-api/internal/model"
	"asada-api/internal/repository"
	"asada-api/internal/storage"
	apperrors "asada-api/pkg/app_errors"
	"asada-api/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"io"
)

type CreateExpenseInput struct {
	Description         string
	AmountCents         int64
	PayerID             *int
	ExcludedAttendeeIDs []int
}

type UpdateExpenseInput struct {
	Params              model.UpdateExpenseParams
	ExcludedAttendeeIDs []int
	// ReplaceExclusions distinguishes "clear the set" from "leave it".
	ReplaceExclusions bool
}

type ExpenseService interface {
	Create(ctx context.Context, eventPublicID string, input CreateExpenseInput) (*model.Expense, error)
	ListByEventPublicID(ctx context.Context, eventPublicID string) ([]*model.Expense, error)
	Update(ctx context.Context, id int, input UpdateExpenseInput) (*model.Expense, error)
	Delete(ctx context.Context, id int) error

	AddReceipt(ctx context.Context, expenseID int, reader io.Reader, contentType string, size int64) (*model.Receipt, error)
	DeleteReceipt(ctx context.Context, receiptID int) error
}

type ExpenseServiceImpl struct {
	pool         *pgxpool.Pool
	repo         repository.ExpenseRepository
	receiptRepo  repository.ReceiptRepository
	attendeeRepo repository.AttendeeRepository
	eventRepo    repository.EventRepository
	store        storage.ReceiptStore
}

func NewExpenseService(
	pool *pgxpool.Pool,
	repo repository.ExpenseRepository,
	receiptRepo repository.ReceiptRepository,
	attendeeRepo repository.AttendeeRepository,
	eventRepo repository.EventRepository,
	store storage.ReceiptStore,
) ExpenseService {
	return &ExpenseServiceImpl{
		pool:         pool,
		repo:         repo,
		receiptRepo:  receiptRepo,
		attendeeRepo: attendeeRepo,
		eventRepo:    eventRepo,
		store:        store,
	}
}

func (s *ExpenseServiceImpl) Create(ctx context.Context, eventPublicID string, input CreateExpenseInput) (*model.Expense, error) {
	event, err := s.eventRepo.FindByPublicID(ctx, eventPublicID)
	if err != nil {
		return nil, err
	}

	if input.PayerID != nil {
		if err := s.checkAttendeeInEvent(ctx, *input.PayerID, event.ID); err != nil {
			return nil, err
		}
	}
	for _, attendeeID := range input.ExcludedAttendeeIDs {
		if err := s.checkAttendeeInEvent(ctx, attendeeID, event.ID); err != nil {
			return nil, err
		}
	}

	expense := &model.Expense{
		EventID:     event.ID,
		PayerID:     input.PayerID,
		Description: input.Description,
		AmountCents: input.AmountCents,
	}

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	created, err := s.repo.Create(ctx, tx, expense)
	if err != nil {
		return nil, err
	}

	if len(input.ExcludedAttendeeIDs) > 0 {
		if err := s.repo.ReplaceExclusions(ctx, tx, created.ID, input.ExcludedAttendeeIDs); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	created.ReceiptURLs = []string{}
	created.ExcludedAttendeeIDs = input.ExcludedAttendeeIDs
	if created.ExcludedAttendeeIDs == nil {
		created.ExcludedAttendeeIDs = []int{}
	}
	return created, nil
}

func (s *ExpenseServiceImpl) ListByEventPublicID(ctx context.Context, eventPublicID string) ([]*model.Expense, error) {
	event, err := s.eventRepo.FindByPublicID(ctx, eventPublicID)
	if err != nil {
		return nil, err
	}

	expenses, err := s.repo.ListByEventID(ctx, event.ID)
	if err != nil {
		return nil, err
	}

	receipts, err := s.receiptRepo.ListByEventID(ctx, event.ID)
	if err != nil {
		return nil, err
	}

	exclusions, err := s.repo.ListExclusionsByEventID(ctx, event.ID)
	if err != nil {
		return nil, err
	}

	urlsByExpense := make(map[int][]string)
	for _, receipt := range receipts {
		urlsByExpense[receipt.ExpenseID] = append(urlsByExpense[receipt.ExpenseID], receipt.URL)
	}

	for _, expense := range expenses {
		expense.ReceiptURLs = urlsByExpense[expense.ID]
		if expense.ReceiptURLs == nil {
			expense.ReceiptURLs = []string{}
		}
		expense.ExcludedAttendeeIDs = exclusions[expense.ID]
		if expense.ExcludedAttendeeIDs == nil {
			expense.ExcludedAttendeeIDs = []int{}
		}
	}

	return expenses, nil
}

func (s *ExpenseServiceImpl) Update(ctx context.Context, id int, input UpdateExpenseInput) (*model.Expense, error) {
	expense, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Params.PayerID != nil {
		if err := s.checkAttendeeInEvent(ctx, *input.Params.PayerID, expense.EventID); err != nil {
			return nil, err
		}
	}
	for _, attendeeID := range input.ExcludedAttendeeIDs {
		if err := s.checkAttendeeInEvent(ctx, attendeeID, expense.EventID); err != nil {
			return nil, err
		}
	}

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	updated := expense
	hasFieldChanges := input.Params.Description != nil || input.Params.AmountCents != nil ||
		input.Params.PayerID != nil || input.Params.ClearPayer
	if hasFieldChanges {
		updated, err = s.repo.Update(ctx, tx, id, input.Params)
		if err != nil {
			return nil, err
		}
	} else if !input.ReplaceExclusions {
		return nil, apperrors.ErrInvalidInput
	}

	if input.ReplaceExclusions {
		if err := s.repo.ReplaceExclusions(ctx, tx, id, input.ExcludedAttendeeIDs); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *ExpenseServiceImpl) Delete(ctx context.Context, id int) error {
	receipts, err := s.receiptRepo.ListByExpenseID(ctx, id)
	if err != nil {
		return err
	}

	// Receipt rows cascade with the expense row.
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	// Stored files are best-effort: an orphaned file is cheap, a failed
	// delete must not resurrect the expense.
	log := logger.WithComponent("service")
	for _, receipt := range receipts {
		if err := s.store.Remove(ctx, receipt.ObjectName); err != nil {
			log.Warn("Failed to remove receipt file",
				zap.String("objectName", receipt.ObjectName), zap.Error(err))
		}
	}

	return nil
}

func (s *ExpenseServiceImpl) AddReceipt(ctx context.Context, expenseID int, reader io.Reader, contentType string, size int64) (*model.Receipt, error) {
	expense, err := s.repo.FindByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}

	url, objectName, err := s.store.Save(ctx, reader, contentType, size)
	if err != nil {
		return nil, err
	}

	receipt := &model.Receipt{
		ExpenseID:  expense.ID,
		URL:        url,
		ObjectName: objectName,
	}

	created, err := s.receiptRepo.Create(ctx, receipt)
	if err != nil {
		// Row insert failed; drop the stored file so it doesn't leak.
		if removeErr := s.store.Remove(ctx, objectName); removeErr != nil {
			logger.WithComponent("service").Warn("Failed to remove orphaned receipt file",
				zap.String("objectName", objectName), zap.Error(removeErr))
		}
		return nil, err
	}

	return created, nil
}

func (s *ExpenseServiceImpl) DeleteReceipt(ctx context.Context, receiptID int) error {
	receipt, err := s.receiptRepo.FindByID(ctx, receiptID)
	if err != nil {
		return err
	}

	if err := s.receiptRepo.Delete(ctx, receipt.ID); err != nil {
		return err
	}

	if err := s.store.Remove(ctx, receipt.ObjectName); err != nil {
		logger.WithComponent("service").Warn("Failed to remove receipt file",
			zap.String("objectName", receipt.ObjectName), zap.Error(err))
	}

	return nil
}

func (s *ExpenseServiceImpl) checkAttendeeInEvent(ctx context.Context, attendeeID, eventID int) error {
	attendee, err := s.attendeeRepo.FindByID(ctx, attendeeID)
	if err != nil {
		return err
	}
	if attendee.EventID != eventID {
		return apperrors.ErrAttendeeNotFound
	}
	return nil
}
