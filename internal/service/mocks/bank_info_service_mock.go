package mocks

import (
	"context"

	"asada-api/internal/model"

	"github.com/stretchr/testify/mock"
)

type BankInfoServiceMock struct {
	mock.Mock
}

func (m *BankInfoServiceMock) Upsert(ctx context.Context, info *model.BankInfo) (*model.BankInfo, error) {
	args := m.Called(ctx, info)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BankInfo), args.Error(1)
}

func (m *BankInfoServiceMock) GetByAttendeeID(ctx context.Context, attendeeID int) (*model.BankInfo, error) {
	args := m.Called(ctx, attendeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BankInfo), args.Error(1)
}

func (m *BankInfoServiceMock) DeleteByAttendeeID(ctx context.Context, attendeeID int) error {
	args := m.Called(ctx, attendeeID)
	return args.Error(0)
}
