package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"matchapi/internal/apperr"
	"matchapi/internal/model"
	"matchapi/internal/repository"
	"matchapi/internal/token"
)

const minPasswordLen = 8

// Session is the result of a successful registration or login.
type Session struct {
	UserID string `json:"user_id"`
	Token  string `json:"token"`
}

// AuthService defines the identity use cases: register, login, logout.
type AuthService interface {
	// Register creates an account and its default profile, and returns a
	// fresh session. A taken email fails with an auth error.
	Register(ctx context.Context, email, password string) (*Session, error)

	// Login verifies credentials and returns a fresh session.
	Login(ctx context.Context, email, password string) (*Session, error)

	// Logout revokes the session token until its natural expiry.
	Logout(ctx context.Context, rawToken string) error
}

type authService struct {
	users    repository.UserRepository
	profiles repository.ProfileRepository
	tokens   *token.Manager
	denylist token.Denylist
}

// NewAuthService constructs a new AuthService.
func NewAuthService(users repository.UserRepository, profiles repository.ProfileRepository, tokens *token.Manager, denylist token.Denylist) AuthService {
	return &authService{users: users, profiles: profiles, tokens: tokens, denylist: denylist}
}

func (s *authService) Register(ctx context.Context, email, password string) (*Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, apperr.Validation("email is malformed")
	}
	if len(password) < minPasswordLen {
		return nil, apperr.Validationf("password must be at least %d characters", minPasswordLen)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Network("hash password", err)
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	stored, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperr.Auth("email already registered")
		}
		return nil, apperr.Network("create user", err)
	}

	// The profile record exists from the first write after registration;
	// write the defaults now so the member is immediately visible.
	profile := model.DefaultProfile(stored.ID)
	profile.UpdatedAt = time.Now().UTC()
	if _, err := s.profiles.Upsert(ctx, profile); err != nil {
		return nil, apperr.Network("create default profile", err)
	}

	return s.newSession(stored.ID)
}

func (s *authService) Login(ctx context.Context, email, password string) (*Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, apperr.Validation("email and password are required")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.Auth("invalid credentials")
		}
		return nil, apperr.Network("find user", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperr.Auth("invalid credentials")
	}

	return s.newSession(user.ID)
}

func (s *authService) Logout(ctx context.Context, rawToken string) error {
	claims, err := s.tokens.Verify(rawToken)
	if err != nil {
		return apperr.Auth("invalid session token")
	}
	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining <= 0 {
		// Already expired; nothing to revoke.
		return nil
	}
	if err := s.denylist.Revoke(ctx, claims.ID, remaining); err != nil {
		return apperr.Network("revoke token", err)
	}
	return nil
}

func (s *authService) newSession(userID string) (*Session, error) {
	signed, _, err := s.tokens.Issue(userID)
	if err != nil {
		return nil, apperr.Network("issue token", err)
	}
	return &Session{UserID: userID, Token: signed}, nil
}
