package postgres

import (
	"context"

	"kanakku/internal/domain/entity"
	"kanakku/internal/domain/repository"
	"kanakku/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// CreateProduct inserts a product under a generated ID.
func (repo *productRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	product.ID = uuid.NewString()

	if err := repo.db.WithContext(ctx).Create(fromProductDomain(product)).Error; err != nil {
		return classifyWriteError(err, "failed to create product")
	}

	return nil
}

// UpsertProduct writes the product at its ID.
func (repo *productRepository) UpsertProduct(ctx context.Context, product *entity.Product) error {
	if err := repo.db.WithContext(ctx).
		Clauses(upsertOnID()).
		Create(fromProductDomain(product)).Error; err != nil {
		return classifyWriteError(err, "failed to upsert product")
	}

	return nil
}

// FindProductByID retrieves a product by ID regardless of its active flag.
func (repo *productRepository) FindProductByID(ctx context.Context, id string) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(repository.ErrProductNotFound)
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindActiveProducts retrieves active products matching the filter, oldest first.
func (repo *productRepository) FindActiveProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", filter.UserID, true)
	if filter.ShopID != "" {
		query = query.Where("shop_id = ?", filter.ShopID)
	}

	if err := query.Order("created_at ASC").Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// FindProductIDsByShop lists IDs of the user's products in a shop.
func (repo *productRepository) FindProductIDsByShop(ctx context.Context, userID, shopID string) ([]string, error) {
	ids := make([]string, 0)

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("user_id = ? AND shop_id = ?", userID, shopID).
		Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find product IDs by shop")
	}

	return ids, nil
}

// FindProductIDsByUser lists IDs of every product the user owns.
func (repo *productRepository) FindProductIDsByUser(ctx context.Context, userID string) ([]string, error) {
	ids := make([]string, 0)

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("user_id = ?", userID).
		Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find product IDs by user")
	}

	return ids, nil
}

// UpdateProduct applies the non-nil fields of the patch.
func (repo *productRepository) UpdateProduct(ctx context.Context, id string, patch *entity.ProductPatch) error {
	if patch.IsEmpty() {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Updates(productPatchColumns(patch))

	if result.Error != nil {
		return classifyWriteError(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return errors.WithStack(repository.ErrProductNotFound)
	}

	return nil
}

// --- Mapper Functions ---

func productPatchColumns(patch *entity.ProductPatch) map[string]any {
	columns := make(map[string]any)
	if patch.Name != nil {
		columns["name"] = *patch.Name
	}
	if patch.Price != nil {
		columns["price"] = *patch.Price
	}
	if patch.Quantity != nil {
		columns["quantity"] = *patch.Quantity
	}
	if patch.ImagePath != nil {
		columns["image_path"] = *patch.ImagePath
	}
	if patch.PurchasedAt != nil {
		columns["purchased_at"] = *patch.PurchasedAt
	}
	if patch.IsActive != nil {
		columns["is_active"] = *patch.IsActive
	}

	return columns
}

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		ShopID:      data.ShopID,
		UserID:      data.UserID,
		Name:        data.Name,
		Price:       data.Price,
		Quantity:    data.Quantity,
		ImagePath:   data.ImagePath,
		PurchasedAt: data.PurchasedAt.UTC(),
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt.UTC(),
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		ShopID:      data.ShopID,
		UserID:      data.UserID,
		Name:        data.Name,
		Price:       data.Price,
		Quantity:    data.Quantity,
		ImagePath:   data.ImagePath,
		PurchasedAt: nonZeroTime(data.PurchasedAt),
		IsActive:    data.IsActive,
		CreatedAt:   nonZeroTime(data.CreatedAt),
	}
}
