package service

import (
	"context"

	"asada-api/internal/model"
	"asada-api/internal/repository"
)

type ShoppingService interface {
	Create(ctx context.Context, eventPublicID string, item *model.ShoppingItem) (*model.ShoppingItem, error)
	ListByEventPublicID(ctx context.Context, eventPublicID string) ([]*model.ShoppingItem, error)
	Update(ctx context.Context, id int, params model.UpdateShoppingItemParams) (*model.ShoppingItem, error)
	Delete(ctx context.Context, id int) error
}

type ShoppingServiceImpl struct {
	repo         repository.ShoppingRepository
	eventRepo    repository.EventRepository
	categoryRepo repository.CategoryRepository
}

func NewShoppingService(
	repo repository.ShoppingRepository,
	eventRepo repository.EventRepository,
	categoryRepo repository.CategoryRepository,
) ShoppingService {
	return &ShoppingServiceImpl{
		repo:         repo,
		eventRepo:    eventRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *ShoppingServiceImpl) Create(ctx context.Context, eventPublicID string, item *model.ShoppingItem) (*model.ShoppingItem, error) {
	event, err := s.eventRepo.FindByPublicID(ctx, eventPublicID)
	if err != nil {
		return nil, err
	}

	if item.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *item.CategoryID); err != nil {
			return nil, err
		}
	}

	item.EventID = event.ID
	return s.repo.Create(ctx, item)
}

func (s *ShoppingServiceImpl) ListByEventPublicID(ctx context.Context, eventPublicID string) ([]*model.ShoppingItem, error) {
	event, err := s.eventRepo.FindByPublicID(ctx, eventPublicID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByEventID(ctx, event.ID)
}

func (s *ShoppingServiceImpl) Update(ctx context.Context, id int, params model.UpdateShoppingItemParams) (*model.ShoppingItem, error) {
	if params.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *params.CategoryID); err != nil {
			return nil, err
		}
	}
	return s.repo.Update(ctx, id, params)
}

func (s *ShoppingServiceImpl) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
