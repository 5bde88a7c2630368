package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "kanakku/internal/delivery/context"
	"kanakku/internal/domain/entity"
	"kanakku/internal/domain/repository"
	"kanakku/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const profileNotSetUp = "Profile not set up"

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: params.ProfileRepo,
		logger:      params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the stored profile. A user who never saved one gets a
// default built from the identity, which is not persisted.
func (srv *profileService) GetProfile(ctx context.Context, identity *entity.Identity) (*entity.Profile, error) {
	if identity == nil {
		return nil, requireUser("")
	}
	if err := requireUser(identity.UID); err != nil {
		return nil, err
	}

	profile, err := srv.profileRepo.FindProfileByUID(ctx, identity.UID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			srv.log(ctx).Debug("Profile not set up, returning default")

			return &entity.Profile{
				UID:         identity.UID,
				Email:       identity.Email,
				Name:        identity.Name,
				Description: profileNotSetUp,
			}, nil
		}

		return nil, errors.Wrap(err, "failed to get profile")
	}
	profile.UID = identity.UID

	return profile, nil
}

// UpdateProfile merges the input into the caller's profile. The email always
// comes from the verified identity.
func (srv *profileService) UpdateProfile(ctx context.Context, identity *entity.Identity, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	if identity == nil {
		return nil, requireUser("")
	}
	if err := requireUser(identity.UID); err != nil {
		return nil, err
	}

	patch := &entity.ProfilePatch{
		Email:     identity.Email,
		Name:      input.Name,
		Address:   input.Address,
		Phone:     input.Phone,
		UpdatedAt: time.Now().UTC(),
	}
	if err := srv.profileRepo.UpsertProfile(ctx, identity.UID, patch); err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}
	srv.log(ctx).Info("Profile updated")

	return srv.GetProfile(ctx, identity)
}
