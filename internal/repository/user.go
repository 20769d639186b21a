package repository

import (
	"context"
	"errors"

	"matchapi/internal/model"
)

// ErrDuplicateEmail is returned by Create when the email is already registered.
var ErrDuplicateEmail = errors.New("email already registered")

// UserRepository defines data access for account credentials.
type UserRepository interface {
	// Create inserts a new user row. Returns ErrDuplicateEmail when the
	// email is taken.
	Create(ctx context.Context, u *model.User) (*model.User, error)

	// FindByEmail returns a user by email, or sql.ErrNoRows when absent.
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// FindByID returns a user by id, or sql.ErrNoRows when absent.
	FindByID(ctx context.Context, id string) (*model.User, error)
}
