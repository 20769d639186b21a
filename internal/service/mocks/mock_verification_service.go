package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"matchapi/internal/model"
)

type MockVerificationService struct {
	mock.Mock
}

func (m *MockVerificationService) Upload(ctx context.Context, userID, category string, r io.Reader, originalFilename, contentType string, size int64) (*model.VerificationDocument, error) {
	args := m.Called(ctx, userID, category, r, originalFilename, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VerificationDocument), args.Error(1)
}

func (m *MockVerificationService) List(ctx context.Context, userID string) ([]model.VerificationDocument, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.VerificationDocument), args.Error(1)
}
