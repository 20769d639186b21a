package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"matchapi/internal/model"
)

type MockDirectoryService struct {
	mock.Mock
}

func (m *MockDirectoryService) FetchProfiles(ctx context.Context) ([]model.UserProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UserProfile), args.Error(1)
}

func (m *MockDirectoryService) Search(query string, profiles []model.UserProfile) []model.UserProfile {
	args := m.Called(query, profiles)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.UserProfile)
}
