// Package postgres contains the concrete implementation of the ledger store using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"kanakku/internal/domain/entity"
	"kanakku/internal/domain/repository"
	"kanakku/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// shopRepository implements the repository.ShopRepository interface.
type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(db *gorm.DB) repository.ShopRepository {
	return &shopRepository{
		db: db,
	}
}

// CreateShop inserts a shop under a generated ID.
func (repo *shopRepository) CreateShop(ctx context.Context, shop *entity.Shop) error {
	shop.ID = uuid.NewString()
	shopM := fromShopDomain(shop)

	if err := repo.db.WithContext(ctx).Create(shopM).Error; err != nil {
		return classifyWriteError(err, "failed to create shop")
	}

	return nil
}

// UpsertShop writes the shop at its ID, replacing every column on conflict.
func (repo *shopRepository) UpsertShop(ctx context.Context, shop *entity.Shop) error {
	shopM := fromShopDomain(shop)

	if err := repo.db.WithContext(ctx).
		Clauses(upsertOnID()).
		Create(shopM).Error; err != nil {
		return classifyWriteError(err, "failed to upsert shop")
	}

	return nil
}

// FindShopByID retrieves a shop by ID regardless of its active flag.
func (repo *shopRepository) FindShopByID(ctx context.Context, id string) (*entity.Shop, error) {
	var shopM model.ShopModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&shopM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(repository.ErrShopNotFound)
		}

		return nil, errors.Wrap(err, "failed to find shop by ID")
	}

	return toShopDomain(&shopM), nil
}

// FindActiveShopsByUser retrieves the user's active shops, oldest first.
func (repo *shopRepository) FindActiveShopsByUser(ctx context.Context, userID string) ([]*entity.Shop, error) {
	var shopModels []*model.ShopModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at ASC").
		Find(&shopModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active shops by user")
	}

	shops := make([]*entity.Shop, 0, len(shopModels))
	for _, shopM := range shopModels {
		shops = append(shops, toShopDomain(shopM))
	}

	return shops, nil
}

// CountActiveShopsByUser counts the user's active shops.
func (repo *shopRepository) CountActiveShopsByUser(ctx context.Context, userID string) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ShopModel{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count active shops")
	}

	return count, nil
}

// FindShopIDsByUser lists the IDs of every shop the user owns.
func (repo *shopRepository) FindShopIDsByUser(ctx context.Context, userID string) ([]string, error) {
	ids := make([]string, 0)

	if err := repo.db.WithContext(ctx).
		Model(&model.ShopModel{}).
		Where("user_id = ?", userID).
		Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find shop IDs by user")
	}

	return ids, nil
}

// UpdateShop applies the non-nil fields of the patch.
func (repo *shopRepository) UpdateShop(ctx context.Context, id string, patch *entity.ShopPatch) error {
	if patch.IsEmpty() {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ShopModel{}).
		Where("id = ?", id).
		Updates(shopPatchColumns(patch))

	if result.Error != nil {
		return classifyWriteError(result.Error, "failed to update shop")
	}

	if result.RowsAffected == 0 {
		return errors.WithStack(repository.ErrShopNotFound)
	}

	return nil
}

// upsertOnID replaces every column when a row with the same primary key exists.
func upsertOnID() clause.OnConflict {
	return clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}
}

// --- Mapper Functions ---

func shopPatchColumns(patch *entity.ShopPatch) map[string]any {
	columns := make(map[string]any)
	if patch.Name != nil {
		columns["name"] = *patch.Name
	}
	if patch.OwnerName != nil {
		columns["owner_name"] = *patch.OwnerName
	}
	if patch.ContactNumber != nil {
		columns["contact_number"] = *patch.ContactNumber
	}
	if patch.Address != nil {
		columns["address"] = *patch.Address
	}
	if patch.UPIID != nil {
		columns["upi_id"] = *patch.UPIID
	}
	if patch.IsActive != nil {
		columns["is_active"] = *patch.IsActive
	}

	return columns
}

// toShopDomain converts a GORM ShopModel to a domain Shop entity.
func toShopDomain(data *model.ShopModel) *entity.Shop {
	if data == nil {
		return nil
	}

	return &entity.Shop{
		ID:            data.ID,
		UserID:        data.UserID,
		Name:          data.Name,
		OwnerName:     data.OwnerName,
		ContactNumber: data.ContactNumber,
		Address:       data.Address,
		UPIID:         data.UPIID,
		IsActive:      data.IsActive,
		CreatedAt:     data.CreatedAt.UTC(),
	}
}

// fromShopDomain converts a domain Shop entity to a GORM ShopModel.
func fromShopDomain(data *entity.Shop) *model.ShopModel {
	if data == nil {
		return nil
	}

	return &model.ShopModel{
		ID:            data.ID,
		UserID:        data.UserID,
		Name:          data.Name,
		OwnerName:     data.OwnerName,
		ContactNumber: data.ContactNumber,
		Address:       data.Address,
		UPIID:         data.UPIID,
		IsActive:      data.IsActive,
		CreatedAt:     nonZeroTime(data.CreatedAt),
	}
}

func nonZeroTime(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}

	return t
}
