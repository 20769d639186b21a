package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"time"

	"github.com/google/uuid"

	"matchapi/internal/apperr"
	"matchapi/internal/gazetteer"
	"matchapi/internal/model"
	"matchapi/internal/repository"
	"matchapi/internal/storage"
)

// ProfileUpdate carries the mutable profile fields of an edit operation.
type ProfileUpdate struct {
	Name       string `json:"name"`
	Age        int    `json:"age"`
	Gender     string `json:"gender"`
	Prefecture string `json:"prefecture"`
	City       string `json:"city"`
	Disability string `json:"disability"`
	Bio        string `json:"bio"`
}

// ProfileService defines the use cases around a member's own profile.
type ProfileService interface {
	// Get returns the user's profile. A user who has never written one
	// gets the registration defaults.
	Get(ctx context.Context, userID string) (*model.UserProfile, error)

	// Update validates and persists a profile edit. A city that does not
	// belong to the selected prefecture is reset to that prefecture's
	// first entry rather than rejected.
	Update(ctx context.Context, userID string, in ProfileUpdate) (*model.UserProfile, error)

	// UploadPhoto stores a new profile image and points the profile at it.
	UploadPhoto(ctx context.Context, userID string, r io.Reader, originalFilename, contentType string, size int64) (*model.UserProfile, error)
}

type profileService struct {
	repo          repository.ProfileRepository
	store         storage.Storage
	presignExpiry time.Duration
}

// NewProfileService constructs a new ProfileService.
func NewProfileService(repo repository.ProfileRepository, store storage.Storage, presignExpiry time.Duration) ProfileService {
	return &profileService{repo: repo, store: store, presignExpiry: presignExpiry}
}

func (s *profileService) Get(ctx context.Context, userID string) (*model.UserProfile, error) {
	if userID == "" {
		return nil, apperr.Validation("user id is required")
	}
	p, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.DefaultProfile(userID), nil
		}
		return nil, apperr.Network("read profile", err)
	}
	return p, nil
}

func (s *profileService) Update(ctx context.Context, userID string, in ProfileUpdate) (*model.UserProfile, error) {
	if userID == "" {
		return nil, apperr.Validation("user id is required")
	}
	if in.Name == "" {
		return nil, apperr.Validation("name is required")
	}
	if in.Age < model.MinAge || in.Age > model.MaxAge {
		return nil, apperr.Validationf("age must be between %d and %d", model.MinAge, model.MaxAge)
	}
	if !slices.Contains(model.Genders, in.Gender) {
		return nil, apperr.Validation("unknown gender")
	}
	if !slices.Contains(model.Disabilities, in.Disability) {
		return nil, apperr.Validation("unknown disability category")
	}
	if !gazetteer.ValidPrefecture(in.Prefecture) {
		return nil, apperr.Validation("unknown prefecture")
	}

	city := in.City
	if !gazetteer.ValidCity(in.Prefecture, city) {
		// Prefecture changed under the city selection; fall back to the
		// prefecture's first city.
		city = gazetteer.DefaultCity(in.Prefecture)
	}

	// Keep an existing photo reference across edits.
	photoURL := ""
	if cur, err := s.repo.FindByUserID(ctx, userID); err == nil {
		photoURL = cur.PhotoURL
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.Network("read profile", err)
	}

	p := &model.UserProfile{
		UserID:     userID,
		Name:       in.Name,
		Age:        in.Age,
		Gender:     in.Gender,
		Prefecture: in.Prefecture,
		City:       city,
		Disability: in.Disability,
		Bio:        in.Bio,
		PhotoURL:   photoURL,
		UpdatedAt:  time.Now().UTC(),
	}
	stored, err := s.repo.Upsert(ctx, p)
	if err != nil {
		return nil, apperr.Network("write profile", err)
	}
	return stored, nil
}

func (s *profileService) UploadPhoto(ctx context.Context, userID string, r io.Reader, originalFilename, contentType string, size int64) (*model.UserProfile, error) {
	if userID == "" {
		return nil, apperr.Validation("user id is required")
	}
	if r == nil || size == 0 {
		return nil, apperr.Validation("photo is empty")
	}

	ext := filepath.Ext(originalFilename)
	key := filepath.ToSlash(filepath.Join("profiles", uuid.NewString()+ext))

	if _, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata:    map[string]string{"user-id": userID},
	}); err != nil {
		return nil, apperr.Network("upload photo", err)
	}

	url, err := s.store.PresignGet(ctx, key, s.presignExpiry)
	if err != nil {
		// The object is uploaded; the user can retry URL generation by
		// re-uploading under a new key without losing anything.
		return nil, apperr.Network(fmt.Sprintf("presign photo %s", key), err)
	}

	cur, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	cur.PhotoURL = url
	cur.UpdatedAt = time.Now().UTC()

	stored, err := s.repo.Upsert(ctx, cur)
	if err != nil {
		return nil, apperr.Network("write profile", err)
	}
	return stored, nil
}
