package service

import (
	"context"

	"asada-api/internal/model"
	"asada-api/internal/repository"
)

type AttendeeService interface {
	Create(ctx context.Context, eventPublicID string, attendee *model.Attendee) (*model.Attendee, error)
	ListByEventPublicID(ctx context.Context, eventPublicID string) ([]*model.Attendee, error)
	Update(ctx context.Context, id int, params model.UpdateAttendeeParams) (*model.Attendee, error)
	Delete(ctx context.Context, id int) error
}

type AttendeeServiceImpl struct {
	repo      repository.AttendeeRepository
	eventRepo repository.EventRepository
}

func NewAttendeeService(repo repository.AttendeeRepository, eventRepo repository.EventRepository) AttendeeService {
	return &AttendeeServiceImpl{repo: repo, eventRepo: eventRepo}
}

func (s *AttendeeServiceImpl) Create(ctx context.Context, eventPublicID string, attendee *model.Attendee) (*model.Attendee, error) {
	event, err := s.eventRepo.FindByPublicID(ctx, eventPublicID)
	if err != nil {
		return nil, err
	}
	attendee.EventID = event.ID
	return s.repo.Create(ctx, attendee)
}

func (s *AttendeeServiceImpl) ListByEventPublicID(ctx context.Context, eventPublicID string) ([]*model.Attendee, error) {
	event, err := s.eventRepo.FindByPublicID(ctx, eventPublicID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByEventID(ctx, event.ID)
}

func (s *AttendeeServiceImpl) Update(ctx context.Context, id int, params model.UpdateAttendeeParams) (*model.Attendee, error) {
	return s.repo.Update(ctx, id, params)
}

func (s *AttendeeServiceImpl) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
