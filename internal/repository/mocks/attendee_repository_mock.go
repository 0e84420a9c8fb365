package mocks

import (
	"context"

	"asada-api/internal/model"

	"github.com/stretchr/testify/mock"
)

type AttendeeRepositoryMock struct {
	mock.Mock
}

func (m *AttendeeRepositoryMock) Create(ctx context.Context, attendee *model.Attendee) (*model.Attendee, error) {
	args := m.Called(ctx, attendee)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Attendee), args.Error(1)
}

func (m *AttendeeRepositoryMock) ListByEventID(ctx context.Context, eventID int) ([]*model.Attendee, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Attendee), args.Error(1)
}

func (m *AttendeeRepositoryMock) FindByID(ctx context.Context, id int) (*model.Attendee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Attendee), args.Error(1)
}

func (m *AttendeeRepositoryMock) Update(ctx context.Context, id int, params model.UpdateAttendeeParams) (*model.Attendee, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Attendee), args.Error(1)
}

func (m *AttendeeRepositoryMock) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *AttendeeRepositoryMock) CountByEventID(ctx context.Context, eventID int) (int, error) {
	args := m.Called(ctx, eventID)
	return args.Int(0), args.Error(1)
}
