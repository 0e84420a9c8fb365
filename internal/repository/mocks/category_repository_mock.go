package mocks

import (
	"context"

	"asada-api/internal/model"

	"github.com/stretchr/testify/mock"
)

type CategoryRepositoryMock struct {
	mock.Mock
}

func (m *CategoryRepositoryMock) List(ctx context.Context) ([]*model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Category), args.Error(1)
}

func (m *CategoryRepositoryMock) FindByID(ctx context.Context, id int) (*model.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *CategoryRepositoryMock) Create(ctx context.Context, category *model.Category) (*model.Category, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *CategoryRepositoryMock) Update(ctx context.Context, id int, name *string, sortOrder *int) (*model.Category, error) {
	args := m.Called(ctx, id, name, sortOrder)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *CategoryRepositoryMock) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CategoryRepositoryMock) ListSuggestions(ctx context.Context, categoryID int) ([]*model.SuggestedItem, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.SuggestedItem), args.Error(1)
}

func (m *CategoryRepositoryMock) CreateSuggestion(ctx context.Context, item *model.SuggestedItem) (*model.SuggestedItem, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SuggestedItem), args.Error(1)
}

func (m *CategoryRepositoryMock) DeleteSuggestion(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
