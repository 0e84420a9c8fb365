package mocks

import (
	"context"

	"asada-api/internal/model"

	"github.com/stretchr/testify/mock"
)

type ShoppingRepositoryMock struct {
	mock.Mock
}

func (m *ShoppingRepositoryMock) Create(ctx context.Context, item *model.ShoppingItem) (*model.ShoppingItem, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ShoppingItem), args.Error(1)
}

func (m *ShoppingRepositoryMock) ListByEventID(ctx context.Context, eventID int) ([]*model.ShoppingItem, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ShoppingItem), args.Error(1)
}

func (m *ShoppingRepositoryMock) FindByID(ctx context.Context, id int) (*model.ShoppingItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ShoppingItem), args.Error(1)
}

func (m *ShoppingRepositoryMock) Update(ctx context.Context, id int, params model.UpdateShoppingItemParams) (*model.ShoppingItem, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ShoppingItem), args.Error(1)
}

func (m *ShoppingRepositoryMock) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ShoppingRepositoryMock) CountByEventID(ctx context.Context, eventID int) (int, int, error) {
	args := m.Called(ctx, eventID)
	return args.Int(0), args.Int(1), args.Error(2)
}
