package mocks

import (
	"context"

	"asada-api/internal/model"

	"github.com/stretchr/testify/mock"
)

type PaymentServiceMock struct {
	mock.Mock
}

func (m *PaymentServiceMock) Upsert(ctx context.Context, eventPublicID string, payment *model.Payment) (*model.Payment, error) {
	args := m.Called(ctx, eventPublicID, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}

func (m *PaymentServiceMock) ListByEventPublicID(ctx context.Context, eventPublicID string) ([]*model.Payment, error) {
	args := m.Called(ctx, eventPublicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Payment), args.Error(1)
}

func (m *PaymentServiceMock) UpdateStatus(ctx context.Context, id int, status model.PaymentStatus) (*model.Payment, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}

func (m *PaymentServiceMock) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
