package mocks

import (
	"context"

	"asada-api/internal/settle"

	"github.com/stretchr/testify/mock"
)

type BalanceServiceMock struct {
	mock.Mock
}

func (m *BalanceServiceMock) SheetByEventPublicID(ctx context.Context, eventPublicID string) (*settle.Sheet, error) {
	args := m.Called(ctx, eventPublicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settle.Sheet), args.Error(1)
}
