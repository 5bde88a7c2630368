package repository

import (
	"context"

	"kanakku/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrProfileNotFound is returned when the user has never saved a profile.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the ledger store operations on user profiles.
type ProfileRepository interface {
	FindProfileByUID(ctx context.Context, uid string) (*entity.Profile, error)

	// UpsertProfile merges the patch into the profile document, creating it when absent.
	UpsertProfile(ctx context.Context, uid string, patch *entity.ProfilePatch) error
}
