package mocks

import (
	"context"

	"asada-api/internal/model"

	"github.com/stretchr/testify/mock"
)

type AttendeeServiceMock struct {
	mock.Mock
}

func (m *AttendeeServiceMock) Create(ctx context.Context, eventPublicID string, attendee *model.Attendee) (*model.Attendee, error) {
	args := m.Called(ctx, eventPublicID, attendee)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Attendee), args.Error(1)
}

func (m *AttendeeServiceMock) ListByEventPublicID(ctx context.Context, eventPublicID string) ([]*model.Attendee, error) {
	args := m.Called(ctx, eventPublicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Attendee), args.Error(1)
}

func (m *AttendeeServiceMock) Update(ctx context.Context, id int, params model.UpdateAttendeeParams) (*model.Attendee, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Attendee), args.Error(1)
}

func (m *AttendeeServiceMock) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
