package service

import (
	"context"
	"strings"

	"matchapi/internal/apperr"
	"matchapi/internal/model"
	"matchapi/internal/repository"
)

// DirectoryService covers member discovery: a one-shot snapshot fetch
// followed by client-side filtering. No ranking, no pagination.
type DirectoryService interface {
	// FetchProfiles returns a snapshot of every visible profile.
	// Transport failure surfaces as a network error with an empty result,
	// never a panic.
	FetchProfiles(ctx context.Context) ([]model.UserProfile, error)

	// Search filters profiles by a case-insensitive substring match
	// against the name or the prefecture+city location. An empty query
	// returns the input unchanged. Pure: same inputs, same output.
	Search(query string, profiles []model.UserProfile) []model.UserProfile
}

type directoryService struct {
	profiles repository.ProfileRepository
}

// NewDirectoryService constructs a new DirectoryService.
func NewDirectoryService(profiles repository.ProfileRepository) DirectoryService {
	return &directoryService{profiles: profiles}
}

func (s *directoryService) FetchProfiles(ctx context.Context) ([]model.UserProfile, error) {
	items, err := s.profiles.ListAll(ctx)
	if err != nil {
		return []model.UserProfile{}, apperr.Network("fetch profiles", err)
	}
	return items, nil
}

func (s *directoryService) Search(query string, profiles []model.UserProfile) []model.UserProfile {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return profiles
	}
	out := make([]model.UserProfile, 0, len(profiles))
	for _, p := range profiles {
		name := strings.ToLower(p.Name)
		location := strings.ToLower(p.Location())
		if strings.Contains(name, q) || strings.Contains(location, q) {
			out = append(out, p)
		}
	}
	return out
}
