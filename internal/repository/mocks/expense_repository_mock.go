package mocks

import (
	"context"

	"asada-api/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

type ExpenseRepositoryMock struct {
	mock.Mock
}

func (m *ExpenseRepositoryMock) Create(ctx context.Context, tx pgx.Tx, expense *model.Expense) (*model.Expense, error) {
	args := m.Called(ctx, tx, expense)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Expense), args.Error(1)
}

func (m *ExpenseRepositoryMock) ListByEventID(ctx context.Context, eventID int) ([]*model.Expense, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Expense), args.Error(1)
}

func (m *ExpenseRepositoryMock) FindByID(ctx context.Context, id int) (*model.Expense, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Expense), args.Error(1)
}

func (m *ExpenseRepositoryMock) Update(ctx context.Context, tx pgx.Tx, id int, params model.UpdateExpenseParams) (*model.Expense, error) {
	args := m.Called(ctx, tx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Expense), args.Error(1)
}

func (m *ExpenseRepositoryMock) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ExpenseRepositoryMock) CountByEventID(ctx context.Context, eventID int) (int, int64, error) {
	args := m.Called(ctx, eventID)
	return args.Int(0), args.Get(1).(int64), args.Error(2)
}

func (m *ExpenseRepositoryMock) ReplaceExclusions(ctx context.Context, tx pgx.Tx, expenseID int, attendeeIDs []int) error {
	args := m.Called(ctx, tx, expenseID, attendeeIDs)
	return args.Error(0)
}

func (m *ExpenseRepositoryMock) ListExclusionsByEventID(ctx context.Context, eventID int) (map[int][]int, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int][]int), args.Error(1)
}
