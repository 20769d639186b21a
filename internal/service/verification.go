package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"time"

	"github.com/google/uuid"

	"matchapi/internal/apperr"
	"matchapi/internal/model"
	"matchapi/internal/repository"
	"matchapi/internal/storage"
)

// VerificationService defines the use cases for identity-document uploads.
type VerificationService interface {
	// Upload stores the document in object storage under a categorized,
	// client-generated path, records its metadata, and returns the record
	// with a presigned download URL. Storage is rolled back if the
	// metadata write fails. Re-uploading a category supersedes earlier
	// records; it never mutates them.
	Upload(ctx context.Context, userID, category string, r io.Reader, originalFilename, contentType string, size int64) (*model.VerificationDocument, error)

	// List returns the user's document records, newest first.
	List(ctx context.Context, userID string) ([]model.VerificationDocument, error)
}

type verificationService struct {
	store         storage.Storage
	repo          repository.VerificationRepository
	presignExpiry time.Duration
}

// NewVerificationService constructs a new VerificationService.
func NewVerificationService(store storage.Storage, repo repository.VerificationRepository, presignExpiry time.Duration) VerificationService {
	return &verificationService{store: store, repo: repo, presignExpiry: presignExpiry}
}

func (s *verificationService) Upload(ctx context.Context, userID, category string, r io.Reader, originalFilename, contentType string, size int64) (*model.VerificationDocument, error) {
	if userID == "" {
		return nil, apperr.Validation("user id is required")
	}
	if !slices.Contains(model.VerificationCategories, category) {
		return nil, apperr.Validationf("unknown document category %q", category)
	}
	if r == nil || size == 0 {
		return nil, apperr.Validation("document is empty")
	}

	// Client-generated key makes a whole-operation retry idempotent.
	ext := filepath.Ext(originalFilename)
	key := filepath.ToSlash(filepath.Join("verifications", category, uuid.NewString()+ext))

	objInfo, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"user-id":           userID,
			"original-filename": originalFilename,
		},
	})
	if err != nil {
		return nil, apperr.Network("upload to storage", err)
	}

	url, err := s.store.PresignGet(ctx, key, s.presignExpiry)
	if err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, apperr.Network(fmt.Sprintf("presign failed: %v; rollback delete failed", err), delErr)
		}
		return nil, apperr.Network("presign download url", err)
	}

	doc := &model.VerificationDocument{
		ID:          uuid.NewString(),
		UserID:      userID,
		Category:    category,
		StoragePath: objInfo.Key,
		DownloadURL: url,
		Size:        objInfo.Size,
		ContentType: objInfo.ContentType,
		CreatedAt:   time.Now().UTC(),
	}
	stored, err := s.repo.Create(ctx, doc)
	if err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, apperr.Network(fmt.Sprintf("db save failed: %v; rollback delete failed", err), delErr)
		}
		return nil, apperr.Network("db save failed", err)
	}
	return stored, nil
}

func (s *verificationService) List(ctx context.Context, userID string) ([]model.VerificationDocument, error) {
	if userID == "" {
		return nil, apperr.Validation("user id is required")
	}
	docs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Network("list documents", err)
	}
	return docs, nil
}
