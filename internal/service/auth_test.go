package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"matchapi/internal/apperr"
	"matchapi/internal/config"
	"matchapi/internal/model"
	"matchapi/internal/repository"
	repoMocks "matchapi/internal/repository/mocks"
	"matchapi/internal/token"
)

// fakeDenylist is an in-memory token.Denylist for tests.
type fakeDenylist struct {
	mu      sync.Mutex
	revoked map[string]struct{}
}

func newFakeDenylist() *fakeDenylist {
	return &fakeDenylist{revoked: make(map[string]struct{})}
}

func (d *fakeDenylist) Revoke(_ context.Context, tokenID string, _ time.Duration) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.revoked[tokenID] = struct{}{}
	return nil
}

func (d *fakeDenylist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.revoked[tokenID]
	return ok, nil
}

func newTestTokenManager(t *testing.T) *token.Manager {
	t.Helper()
	m, err := token.NewManager(config.AuthConfig{JWTSecret: "test-secret", TokenTTL: time.Hour})
	require.NoError(t, err)
	return m
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user and default profile", func(t *testing.T) {
		mUsers := new(repoMocks.MockUserRepository)
		mProfiles := new(repoMocks.MockProfileRepository)
		svc := NewAuthService(mUsers, mProfiles, newTestTokenManager(t), newFakeDenylist())

		mUsers.On("Create", ctx, mock.MatchedBy(func(u *model.User) bool {
			return u.Email == "a@example.com" && u.PasswordHash != "" && u.PasswordHash != "pw123456"
		})).Return(&model.User{ID: "user-1", Email: "a@example.com"}, nil)

		mProfiles.On("Upsert", ctx, mock.MatchedBy(func(p *model.UserProfile) bool {
			return p.UserID == "user-1" &&
				p.Name == "ゲスト" &&
				p.Age == 18 &&
				p.Prefecture == "北海道" &&
				p.City == "札幌市中央区"
		})).Return(&model.UserProfile{UserID: "user-1"}, nil)

		sess, err := svc.Register(ctx, "a@example.com", "pw123456")

		require.NoError(t, err)
		assert.Equal(t, "user-1", sess.UserID)
		assert.NotEmpty(t, sess.Token)
		mUsers.AssertExpectations(t)
		mProfiles.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mUsers := new(repoMocks.MockUserRepository)
		mProfiles := new(repoMocks.MockProfileRepository)
		svc := NewAuthService(mUsers, mProfiles, newTestTokenManager(t), newFakeDenylist())

		mUsers.On("Create", ctx, mock.Anything).Return(nil, repository.ErrDuplicateEmail)

		sess, err := svc.Register(ctx, "a@example.com", "pw123456")

		assert.True(t, apperr.IsAuth(err))
		assert.Nil(t, sess)
	})

	t.Run("malformed input", func(t *testing.T) {
		svc := NewAuthService(new(repoMocks.MockUserRepository), new(repoMocks.MockProfileRepository), newTestTokenManager(t), newFakeDenylist())

		_, err := svc.Register(ctx, "not-an-email", "pw123456")
		assert.True(t, apperr.IsValidation(err))

		_, err = svc.Register(ctx, "a@example.com", "short")
		assert.True(t, apperr.IsValidation(err))
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("pw123456"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &model.User{ID: "user-1", Email: "a@example.com", PasswordHash: string(hash)}

	t.Run("valid credentials", func(t *testing.T) {
		mUsers := new(repoMocks.MockUserRepository)
		svc := NewAuthService(mUsers, new(repoMocks.MockProfileRepository), newTestTokenManager(t), newFakeDenylist())

		mUsers.On("FindByEmail", ctx, "a@example.com").Return(user, nil)

		sess, err := svc.Login(ctx, "a@example.com", "pw123456")

		require.NoError(t, err)
		assert.Equal(t, "user-1", sess.UserID)
		assert.NotEmpty(t, sess.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		mUsers := new(repoMocks.MockUserRepository)
		svc := NewAuthService(mUsers, new(repoMocks.MockProfileRepository), newTestTokenManager(t), newFakeDenylist())

		mUsers.On("FindByEmail", ctx, "a@example.com").Return(user, nil)

		sess, err := svc.Login(ctx, "a@example.com", "wrong-password")

		assert.True(t, apperr.IsAuth(err))
		assert.Nil(t, sess)
	})

	t.Run("unknown email", func(t *testing.T) {
		mUsers := new(repoMocks.MockUserRepository)
		svc := NewAuthService(mUsers, new(repoMocks.MockProfileRepository), newTestTokenManager(t), newFakeDenylist())

		mUsers.On("FindByEmail", ctx, "missing@example.com").Return(nil, sql.ErrNoRows)

		sess, err := svc.Login(ctx, "missing@example.com", "pw123456")

		assert.True(t, apperr.IsAuth(err))
		assert.Nil(t, sess)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	tm := newTestTokenManager(t)
	denylist := newFakeDenylist()
	svc := NewAuthService(new(repoMocks.MockUserRepository), new(repoMocks.MockProfileRepository), tm, denylist)

	signed, claims, err := tm.Issue("user-1")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, signed))

	revoked, err := denylist.IsRevoked(ctx, claims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)

	err = svc.Logout(ctx, "garbage-token")
	assert.True(t, apperr.IsAuth(err))
}
