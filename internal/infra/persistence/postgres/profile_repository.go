package postgres

import (
	"context"

	"kanakku/internal/domain/entity"
	"kanakku/internal/domain/repository"
	"kanakku/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// FindProfileByUID retrieves the stored profile of a user.
func (repo *profileRepository) FindProfileByUID(ctx context.Context, uid string) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("uid = ?", uid).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(repository.ErrProfileNotFound)
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return toProfileDomain(&profileM), nil
}

// UpsertProfile inserts the profile or, on conflict, updates only the email,
// the updated timestamp and the fields present in the patch.
func (repo *profileRepository) UpsertProfile(ctx context.Context, uid string, patch *entity.ProfilePatch) error {
	profileM := &model.ProfileModel{
		UID:       uid,
		Email:     patch.Email,
		CreatedAt: patch.UpdatedAt,
		UpdatedAt: patch.UpdatedAt,
	}
	columns := []string{"email", "updated_at"}
	if patch.Name != nil {
		profileM.Name = *patch.Name
		columns = append(columns, "name")
	}
	if patch.Address != nil {
		profileM.Address = *patch.Address
		columns = append(columns, "address")
	}
	if patch.Phone != nil {
		profileM.Phone = *patch.Phone
		columns = append(columns, "phone")
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "uid"}},
			DoUpdates: clause.AssignmentColumns(columns),
		}).
		Create(profileM).Error; err != nil {
		return classifyWriteError(err, "failed to upsert profile")
	}

	return nil
}

// toProfileDomain converts a GORM ProfileModel to a domain Profile entity.
func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	createdAt := data.CreatedAt.UTC()
	updatedAt := data.UpdatedAt.UTC()

	return &entity.Profile{
		UID:       data.UID,
		Email:     data.Email,
		Name:      data.Name,
		Address:   data.Address,
		Phone:     data.Phone,
		CreatedAt: &createdAt,
		UpdatedAt: &updatedAt,
	}
}
