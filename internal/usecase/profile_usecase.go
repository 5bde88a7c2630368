// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"kanakku/internal/domain/entity"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	// GetProfile returns the stored profile, or a transient default built from the identity.
	GetProfile(ctx context.Context, identity *entity.Identity) (*entity.Profile, error)

	// UpdateProfile merges the input into the caller's profile, creating it on first write.
	UpdateProfile(ctx context.Context, identity *entity.Identity, input *UpdateProfileInput) (*entity.Profile, error)
}

// UpdateProfileInput defines the data accepted by a profile update.
type UpdateProfileInput struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,max=200"`
	Address *string `json:"address,omitempty" validate:"omitempty,max=500"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,max=32"`
}
