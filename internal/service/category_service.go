package service

import (
	"context"

	"asada-api/internal/model"
	"asada-api/internal/repository"
)

type CategoryService interface {
	List(ctx context.Context) ([]*model.Category, error)
	Create(ctx context.Context, category *model.Category) (*model.Category, error)
	Update(ctx context.Context, id int, name *string, sortOrder *int) (*model.Category, error)
	Delete(ctx context.Context, id int) error

	ListSuggestions(ctx context.Context, categoryID int) ([]*model.SuggestedItem, error)
	CreateSuggestion(ctx context.Context, item *model.SuggestedItem) (*model.SuggestedItem, error)
	DeleteSuggestion(ctx context.Context, id int) error
}

type CategoryServiceImpl struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &CategoryServiceImpl{repo: repo}
}

func (s *CategoryServiceImpl) List(ctx context.Context) ([]*model.Category, error) {
	return s.repo.List(ctx)
}

func (s *CategoryServiceImpl) Create(ctx context.Context, category *model.Category) (*model.Category, error) {
	return s.repo.Create(ctx, category)
}

func (s *CategoryServiceImpl) Update(ctx context.Context, id int, name *string, sortOrder *int) (*model.Category, error) {
	return s.repo.Update(ctx, id, name, sortOrder)
}

func (s *CategoryServiceImpl) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *CategoryServiceImpl) ListSuggestions(ctx context.Context, categoryID int) ([]*model.SuggestedItem, error) {
	if _, err := s.repo.FindByID(ctx, categoryID); err != nil {
		return nil, err
	}
	return s.repo.ListSuggestions(ctx, categoryID)
}

func (s *CategoryServiceImpl) CreateSuggestion(ctx context.Context, item *model.SuggestedItem) (*model.SuggestedItem, error) {
	if _, err := s.repo.FindByID(ctx, item.CategoryID); err != nil {
		return nil, err
	}
	return s.repo.CreateSuggestion(ctx, item)
}

func (s *CategoryServiceImpl) DeleteSuggestion(ctx context.Context, id int) error {
	return s.repo.DeleteSuggestion(ctx, id)
}
