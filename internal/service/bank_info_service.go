package service

import (
	"context"

	"asada-api/internal/model"
	"asada-api/internal/repository"
)

type BankInfoService interface {
	Upsert(ctx context.Context, info *model.BankInfo) (*model.BankInfo, error)
	GetByAttendeeID(ctx context.Context, attendeeID int) (*model.BankInfo, error)
	DeleteByAttendeeID(ctx context.Context, attendeeID int) error
}

type BankInfoServiceImpl struct {
	repo         repository.BankInfoRepository
	attendeeRepo repository.AttendeeRepository
}

func NewBankInfoService(repo repository.BankInfoRepository, attendeeRepo repository.AttendeeRepository) BankInfoService {
	return &BankInfoServiceImpl{repo: repo, attendeeRepo: attendeeRepo}
}

func (s *BankInfoServiceImpl) Upsert(ctx context.Context, info *model.BankInfo) (*model.BankInfo, error) {
	if _, err := s.attendeeRepo.FindByID(ctx, info.AttendeeID); err != nil {
		return nil, err
	}
	return s.repo.Upsert(ctx, info)
}

func (s *BankInfoServiceImpl) GetByAttendeeID(ctx context.Context, attendeeID int) (*model.BankInfo, error) {
	if _, err := s.attendeeRepo.FindByID(ctx, attendeeID); err != nil {
		return nil, err
	}
	return s.repo.FindByAttendeeID(ctx, attendeeID)
}

func (s *BankInfoServiceImpl) DeleteByAttendeeID(ctx context.Context, attendeeID int) error {
	if _, err := s.attendeeRepo.FindByID(ctx, attendeeID); err != nil {
		return err
	}
	return s.repo.DeleteByAttendeeID(ctx, attendeeID)
}
