package service

import (
	"context"

	"asada-api/internal/model"
	"asada-api/internal/repository"
	apperrors "asada-api/pkg/app_errors"
	"asada-api/pkg/shortid"
)

// public ID generation retries a handful of times on the off chance a
// 10-char base62 ID collides.
const publicIDAttempts = 3

type EventService interface {
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	GetByPublicID(ctx context.Context, publicID string) (*model.Event, error)
	UpdateByPublicID(ctx context.Context, publicID string, params model.UpdateEventParams) (*model.Event, error)
	CancelByPublicID(ctx context.Context, publicID string) (*model.Event, error)
	DeleteByPublicID(ctx context.Context, publicID string) error
	SummaryByPublicID(ctx context.Context, publicID string) (*model.EventSummary, error)
}

type EventServiceImpl struct {
	repo         repository.EventRepository
	attendeeRepo repository.AttendeeRepository
	expenseRepo  repository.ExpenseRepository
	shoppingRepo repository.ShoppingRepository
}

func NewEventService(
	repo repository.EventRepository,
	attendeeRepo repository.AttendeeRepository,
	expenseRepo repository.ExpenseRepository,
	shoppingRepo repository.ShoppingRepository,
) EventService {
	return &EventServiceImpl{
		repo:         repo,
		attendeeRepo: attendeeRepo,
		expenseRepo:  expenseRepo,
		shoppingRepo: shoppingRepo,
	}
}

func (s *EventServiceImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	var lastErr error
	for i := 0; i < publicIDAttempts; i++ {
		publicID, err := shortid.New()
		if err != nil {
			return nil, err
		}
		event.PublicID = publicID

		created, err := s.repo.Create(ctx, event)
		if err == apperrors.ErrPublicIDTaken {
			lastErr = err
			continue
		}
		if err != nil {
			return nil, err
		}
		return created, nil
	}
	return nil, lastErr
}

func (s *EventServiceImpl) GetByPublicID(ctx context.Context, publicID string) (*model.Event, error) {
	return s.repo.FindByPublicID(ctx, publicID)
}

func (s *EventServiceImpl) UpdateByPublicID(ctx context.Context, publicID string, params model.UpdateEventParams) (*model.Event, error) {
	event, err := s.repo.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, event.ID, params)
}

func (s *EventServiceImpl) CancelByPublicID(ctx context.Context, publicID string) (*model.Event, error) {
	event, err := s.repo.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	return s.repo.Cancel(ctx, event.ID)
}

func (s *EventServiceImpl) DeleteByPublicID(ctx context.Context, publicID string) error {
	event, err := s.repo.FindByPublicID(ctx, publicID)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, event.ID)
}

func (s *EventServiceImpl) SummaryByPublicID(ctx context.Context, publicID string) (*model.EventSummary, error) {
	event, err := s.repo.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}

	attendeeCount, err := s.attendeeRepo.CountByEventID(ctx, event.ID)
	if err != nil {
		return nil, err
	}

	expenseCount, totalCents, err := s.expenseRepo.CountByEventID(ctx, event.ID)
	if err != nil {
		return nil, err
	}

	itemCount, purchasedCount, err := s.shoppingRepo.CountByEventID(ctx, event.ID)
	if err != nil {
		return nil, err
	}

	return &model.EventSummary{
		AttendeeCount:  attendeeCount,
		ExpenseCount:   expenseCount,
		TotalCents:     totalCents,
		ItemCount:      itemCount,
		PurchasedCount: purchasedCount,
	}, nil
}
