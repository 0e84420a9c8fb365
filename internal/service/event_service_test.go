package service_test

import (
	"context"
	"testing"

	"asada-api/internal/model"
	"asada-api/internal/repository/mocks"
	"asada-api/internal/service"
	apperrors "asada-api/pkg/app_errors"
	"asada-api/pkg/shortid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newEventService(t *testing.T) (service.EventService, *mocks.EventRepositoryMock, *mocks.AttendeeRepositoryMock, *mocks.ExpenseRepositoryMock, *mocks.ShoppingRepositoryMock) {
	t.Helper()
	eventRepo := new(mocks.EventRepositoryMock)
	attendeeRepo := new(mocks.AttendeeRepositoryMock)
	expenseRepo := new(mocks.ExpenseRepositoryMock)
	shoppingRepo := new(mocks.ShoppingRepositoryMock)
	svc := service.NewEventService(eventRepo, attendeeRepo, expenseRepo, shoppingRepo)
	return svc, eventRepo, attendeeRepo, expenseRepo, shoppingRepo
}

func TestEventService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - assigns a fresh public ID", func(t *testing.T) {
		svc, eventRepo, _, _, _ := newEventService(t)

		eventRepo.On("Create", ctx, mock.AnythingOfType("*model.Event")).
			Return(&model.Event{ID: 1, PublicID: "aB3xY9Zk01", Title: "Asada de marzo"}, nil).Once()

		created, err := svc.Create(ctx, &model.Event{Title: "Asada de marzo"})

		require.NoError(t, err)
		assert.True(t, shortid.Valid(created.PublicID))
		eventRepo.AssertExpectations(t)
	})

	t.Run("Success - retries when the generated ID collides", func(t *testing.T) {
		svc, eventRepo, _, _, _ := newEventService(t)

		eventRepo.On("Create", ctx, mock.AnythingOfType("*model.Event")).
			Return(nil, apperrors.ErrPublicIDTaken).Once()
		eventRepo.On("Create", ctx, mock.AnythingOfType("*model.Event")).
			Return(&model.Event{ID: 1, PublicID: "aB3xY9Zk01"}, nil).Once()

		created, err := svc.Create(ctx, &model.Event{Title: "Asada"})

		require.NoError(t, err)
		assert.Equal(t, "aB3xY9Zk01", created.PublicID)
		eventRepo.AssertNumberOfCalls(t, "Create", 2)
	})

	t.Run("Failure - gives up after repeated collisions", func(t *testing.T) {
		svc, eventRepo, _, _, _ := newEventService(t)

		eventRepo.On("Create", ctx, mock.AnythingOfType("*model.Event")).
			Return(nil, apperrors.ErrPublicIDTaken).Times(3)

		created, err := svc.Create(ctx, &model.Event{Title: "Asada"})

		assert.Nil(t, created)
		assert.ErrorIs(t, err, apperrors.ErrPublicIDTaken)
		eventRepo.AssertNumberOfCalls(t, "Create", 3)
	})
}

func TestEventService_GetByPublicID(t *testing.T) {
	ctx := context.Background()

	t.Run("Failure - unknown ID surfaces not found", func(t *testing.T) {
		svc, eventRepo, _, _, _ := newEventService(t)

		eventRepo.On("FindByPublicID", ctx, "zzzzzzzzzz").
			Return(nil, apperrors.ErrEventNotFound).Once()

		event, err := svc.GetByPublicID(ctx, "zzzzzzzzzz")

		assert.Nil(t, event)
		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})
}

func TestEventService_SummaryByPublicID(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - aggregates counts across repositories", func(t *testing.T) {
		svc, eventRepo, attendeeRepo, expenseRepo, shoppingRepo := newEventService(t)

		eventRepo.On("FindByPublicID", ctx, "aB3xY9Zk01").
			Return(&model.Event{ID: 7, PublicID: "aB3xY9Zk01"}, nil).Once()
		attendeeRepo.On("CountByEventID", ctx, 7).Return(5, nil).Once()
		expenseRepo.On("CountByEventID", ctx, 7).Return(3, int64(45000), nil).Once()
		shoppingRepo.On("CountByEventID", ctx, 7).Return(8, 2, nil).Once()

		summary, err := svc.SummaryByPublicID(ctx, "aB3xY9Zk01")

		require.NoError(t, err)
		assert.Equal(t, 5, summary.AttendeeCount)
		assert.Equal(t, 3, summary.ExpenseCount)
		assert.Equal(t, int64(45000), summary.TotalCents)
		assert.Equal(t, 8, summary.ItemCount)
		assert.Equal(t, 2, summary.PurchasedCount)
	})
}
