package repository

import (
	"context"

	"matchapi/internal/model"
)

// VerificationRepository defines data access for verification documents.
// Records are append-only: a re-upload supersedes earlier rows for the same
// user and category but never mutates them.
type VerificationRepository interface {
	// Create inserts a new verification document record.
	Create(ctx context.Context, doc *model.VerificationDocument) (*model.VerificationDocument, error)

	// ListByUser returns a user's document records, newest first.
	ListByUser(ctx context.Context, userID string) ([]model.VerificationDocument, error)
}
