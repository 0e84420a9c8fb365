package mocks

import (
	"context"

	"asada-api/internal/model"

	"github.com/stretchr/testify/mock"
)

type ReceiptRepositoryMock struct {
	mock.Mock
}

func (m *ReceiptRepositoryMock) Create(ctx context.Context, receipt *model.Receipt) (*model.Receipt, error) {
	args := m.Called(ctx, receipt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Receipt), args.Error(1)
}

func (m *ReceiptRepositoryMock) FindByID(ctx context.Context, id int) (*model.Receipt, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Receipt), args.Error(1)
}

func (m *ReceiptRepositoryMock) ListByExpenseID(ctx context.Context, expenseID int) ([]*model.Receipt, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Receipt), args.Error(1)
}

func (m *ReceiptRepositoryMock) ListByEventID(ctx context.Context, eventID int) ([]*model.Receipt, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Receipt), args.Error(1)
}

func (m *ReceiptRepositoryMock) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
