package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"matchapi/internal/model"
)

type MockVerificationRepository struct {
	mock.Mock
}

func (m *MockVerificationRepository) Create(ctx context.Context, doc *model.VerificationDocument) (*model.VerificationDocument, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VerificationDocument), args.Error(1)
}

func (m *MockVerificationRepository) ListByUser(ctx context.Context, userID string) ([]model.VerificationDocument, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.VerificationDocument), args.Error(1)
}
