package repository

import (
	"context"

	"matchapi/internal/model"
)

// ProfileRepository defines data access for member profiles.
type ProfileRepository interface {
	// Upsert inserts the profile row or replaces an existing one for the
	// same user id, and returns the stored record.
	Upsert(ctx context.Context, p *model.UserProfile) (*model.UserProfile, error)

	// FindByUserID returns the profile for a user, or sql.ErrNoRows when
	// the user has not written one yet.
	FindByUserID(ctx context.Context, userID string) (*model.UserProfile, error)

	// ListAll returns every visible profile, most recently updated first.
	ListAll(ctx context.Context) ([]model.UserProfile, error)
}
