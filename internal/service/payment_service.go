package service

import (
	"context"

	"asada-api/internal/model"
	"asada-api/internal/repository"
	apperrors "asada-api/pkg/app_errors"
)

type PaymentService interface {
	Upsert(ctx context.Context, eventPublicID string, payment *model.Payment) (*model.Payment, error)
	ListByEventPublicID(ctx context.Context, eventPublicID string) ([]*model.Payment, error)
	UpdateStatus(ctx context.Context, id int, status model.PaymentStatus) (*model.Payment, error)
	Delete(ctx context.Context, id int) error
}

type PaymentServiceImpl struct {
	repo         repository.PaymentRepository
	eventRepo    repository.EventRepository
	attendeeRepo repository.AttendeeRepository
}

func NewPaymentService(
	repo repository.PaymentRepository,
	eventRepo repository.EventRepository,
	attendeeRepo repository.AttendeeRepository,
) PaymentService {
	return &PaymentServiceImpl{
		repo:         repo,
		eventRepo:    eventRepo,
		attendeeRepo: attendeeRepo,
	}
}

func (s *PaymentServiceImpl) Upsert(ctx context.Context, eventPublicID string, payment *model.Payment) (*model.Payment, error) {
	if payment.FromAttendeeID == payment.ToAttendeeID {
		return nil, apperrors.ErrInvalidInput
	}

	event, err := s.eventRepo.FindByPublicID(ctx, eventPublicID)
	if err != nil {
		return nil, err
	}

	for _, attendeeID := range []int{payment.FromAttendeeID, payment.ToAttendeeID} {
		attendee, err := s.attendeeRepo.FindByID(ctx, attendeeID)
		if err != nil {
			return nil, err
		}
		if attendee.EventID != event.ID {
			return nil, apperrors.ErrAttendeeNotFound
		}
	}

	payment.EventID = event.ID
	if payment.Status == "" {
		payment.Status = model.PaymentStatusPending
	}
	if !payment.Status.IsValid() {
		return nil, apperrors.ErrInvalidInput
	}

	return s.repo.Upsert(ctx, payment)
}

func (s *PaymentServiceImpl) ListByEventPublicID(ctx context.Context, eventPublicID string) ([]*model.Payment, error) {
	event, err := s.eventRepo.FindByPublicID(ctx, eventPublicID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByEventID(ctx, event.ID)
}

func (s *PaymentServiceImpl) UpdateStatus(ctx context.Context, id int, status model.PaymentStatus) (*model.Payment, error) {
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidInput
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *PaymentServiceImpl) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
