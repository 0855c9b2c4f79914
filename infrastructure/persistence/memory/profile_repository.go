// Package memory holds in-process repository implementations used by local
// development and tests.
package memory

import (
	"context"
	"sync"

	"journeymap/application/ports"
	"journeymap/domain/core/entities"
	apperrors "journeymap/pkg/errors"
)

// ProfileRepository is an in-memory ports.ProfileRepository.
type ProfileRepository struct {
	mu       sync.RWMutex
	profiles map[string]*entities.Profile
}

// NewProfileRepository creates an empty in-memory repository.
func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{
		profiles: make(map[string]*entities.Profile),
	}
}

// GetProfile returns the stored profile or a NotFound error.
func (r *ProfileRepository) GetProfile(ctx context.Context, userID string) (*entities.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.profiles[userID]
	if !ok {
		return nil, apperrors.NewNotFoundError("User")
	}
	copied := *profile
	return &copied, nil
}

// SaveProfile stores the profile keyed by its user id.
func (r *ProfileRepository) SaveProfile(ctx context.Context, profile *entities.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *profile
	r.profiles[profile.User.ID] = &copied
	return nil
}

var _ ports.ProfileRepository = (*ProfileRepository)(nil)
