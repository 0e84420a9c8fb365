package mocks

import (
	"context"
	"io"

	"asada-api/internal/model"
	"asada-api/internal/service"

	"github.com/stretchr/testify/mock"
)

type ExpenseServiceMock struct {
	mock.Mock
}

func (m *ExpenseServiceMock) Create(ctx context.Context, eventPublicID string, input service.CreateExpenseInput) (*model.Expense, error) {
	args := m.Called(ctx, eventPublicID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Expense), args.Error(1)
}

func (m *ExpenseServiceMock) ListByEventPublicID(ctx context.Context, eventPublicID string) ([]*model.Expense, error) {
	args := m.Called(ctx, eventPublicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Expense), args.Error(1)
}

func (m *ExpenseServiceMock) Update(ctx context.Context, id int, input service.UpdateExpenseInput) (*model.Expense, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Expense), args.Error(1)
}

func (m *ExpenseServiceMock) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ExpenseServiceMock) AddReceipt(ctx context.Context, expenseID int, reader io.Reader, contentType string, size int64) (*model.Receipt, error) {
	args := m.Called(ctx, expenseID, reader, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Receipt), args.Error(1)
}

func (m *ExpenseServiceMock) DeleteReceipt(ctx context.Context, receiptID int) error {
	args := m.Called(ctx, receiptID)
	return args.Error(0)
}
