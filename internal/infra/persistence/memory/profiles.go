package memory

import (
	"context"

	"kanakku/internal/domain/entity"
	"kanakku/internal/domain/repository"

	"github.com/pkg/errors"
)

// FindProfileByUID implements repository.ProfileRepository.
func (s *Store) FindProfileByUID(_ context.Context, uid string) (*entity.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.profiles[uid]
	if !ok {
		return nil, errors.WithStack(repository.ErrProfileNotFound)
	}
	found := *profile

	return &found, nil
}

// UpsertProfile implements repository.ProfileRepository.
func (s *Store) UpsertProfile(_ context.Context, uid string, patch *entity.ProfilePatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, ok := s.profiles[uid]
	if !ok {
		createdAt := patch.UpdatedAt
		profile = &entity.Profile{UID: uid, CreatedAt: &createdAt}
		s.profiles[uid] = profile
	}
	profile.Email = patch.Email
	if patch.Name != nil {
		profile.Name = *patch.Name
	}
	if patch.Address != nil {
		profile.Address = *patch.Address
	}
	if patch.Phone != nil {
		profile.Phone = *patch.Phone
	}
	updatedAt := patch.UpdatedAt
	profile.UpdatedAt = &updatedAt

	return nil
}
