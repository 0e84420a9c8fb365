package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

type ReceiptStoreMock struct {
	mock.Mock
}

func (m *ReceiptStoreMock) Save(ctx context.Context, reader io.Reader, contentType string, size int64) (string, string, error) {
	args := m.Called(ctx, reader, contentType, size)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *ReceiptStoreMock) Remove(ctx context.Context, objectName string) error {
	args := m.Called(ctx, objectName)
	return args.Error(0)
}
