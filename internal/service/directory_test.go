package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchapi/internal/apperr"
	"matchapi/internal/model"
	repoMocks "matchapi/internal/repository/mocks"
)

func TestDirectoryService_FetchProfiles(t *testing.T) {
	ctx := context.Background()

	t.Run("snapshot", func(t *testing.T) {
		mRepo := new(repoMocks.MockProfileRepository)
		svc := NewDirectoryService(mRepo)

		profiles := []model.UserProfile{{UserID: "u1"}, {UserID: "u2"}}
		mRepo.On("ListAll", ctx).Return(profiles, nil)

		got, err := svc.FetchProfiles(ctx)
		require.NoError(t, err)
		assert.Equal(t, profiles, got)
	})

	t.Run("transport failure yields empty set and network error", func(t *testing.T) {
		mRepo := new(repoMocks.MockProfileRepository)
		svc := NewDirectoryService(mRepo)

		mRepo.On("ListAll", ctx).Return(nil, errors.New("connection reset"))

		got, err := svc.FetchProfiles(ctx)
		assert.True(t, apperr.IsNetwork(err))
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestDirectoryService_Search(t *testing.T) {
	svc := NewDirectoryService(new(repoMocks.MockProfileRepository))

	tanaka := model.UserProfile{Name: "Tanaka", Prefecture: "東京都", City: "港区"}
	a := model.UserProfile{Name: "A", Prefecture: "東京都", City: "港区"}
	b := model.UserProfile{Name: "B", Prefecture: "大阪府", City: "大阪市北区"}
	all := []model.UserProfile{tanaka, a, b}

	t.Run("empty query is identity", func(t *testing.T) {
		assert.Equal(t, all, svc.Search("", all))
		assert.Equal(t, all, svc.Search("   ", all))
	})

	t.Run("case-insensitive name match", func(t *testing.T) {
		assert.Equal(t, []model.UserProfile{tanaka}, svc.Search("tanaka", all))
		assert.Equal(t, []model.UserProfile{tanaka}, svc.Search("TANAKA", all))
	})

	t.Run("location match", func(t *testing.T) {
		assert.Equal(t, []model.UserProfile{tanaka, a}, svc.Search("東京", all))
		assert.Equal(t, []model.UserProfile{b}, svc.Search("大阪府", all))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, svc.Search("沖縄", all))
	})

	t.Run("idempotent", func(t *testing.T) {
		first := svc.Search("東京", all)
		second := svc.Search("東京", all)
		assert.Equal(t, first, second)
	})
}
