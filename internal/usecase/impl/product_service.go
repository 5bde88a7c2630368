package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "kanakku/internal/delivery/context"
	"kanakku/internal/domain/entity"
	domainerrors "kanakku/internal/domain/errors"
	"kanakku/internal/domain/repository"
	"kanakku/internal/domain/service"
	"kanakku/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type productService struct {
	shopRepo        repository.ShopRepository
	productRepo     repository.ProductRepository
	transactionRepo repository.TransactionRepository
	batchWriter     repository.BatchWriter
	imageStorage    service.ImageStorage
	publisher       service.EventPublisher
	logger          *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ShopRepo        repository.ShopRepository
	ProductRepo     repository.ProductRepository
	TransactionRepo repository.TransactionRepository
	BatchWriter     repository.BatchWriter
	ImageStorage    service.ImageStorage   `optional:"true"`
	Publisher       service.EventPublisher `optional:"true"`
	Logger          *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		shopRepo:        params.ShopRepo,
		productRepo:     params.ProductRepo,
		transactionRepo: params.TransactionRepo,
		batchWriter:     params.BatchWriter,
		imageStorage:    params.ImageStorage,
		publisher:       params.Publisher,
		logger:          params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct records a product bought on credit from one of the caller's shops.
func (srv *productService) CreateProduct(ctx context.Context, userID string, input *usecase.CreateProductInput) (*usecase.CreateProductOutput, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	if isBlank(input.ShopID) || isBlank(input.Name) {
		return nil, validationError("Shop ID and Name are required")
	}

	now := time.Now().UTC()
	purchasedAt, err := parseDateOr(input.PurchasedAt, now, "purchasedAt")
	if err != nil {
		return nil, err
	}
	if _, err := parentShop(ctx, srv.shopRepo, userID, input.ShopID); err != nil {
		return nil, err
	}

	product := &entity.Product{
		ID:          input.ID,
		ShopID:      input.ShopID,
		UserID:      userID,
		Name:        input.Name,
		Price:       input.Price.NonNegative(),
		Quantity:    coerceQuantity(input.Quantity),
		ImagePath:   input.ImagePath,
		PurchasedAt: purchasedAt,
		IsActive:    true,
		CreatedAt:   now,
	}

	if input.ID != "" {
		existing, err := srv.productRepo.FindProductByID(ctx, input.ID)
		if err != nil && !errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(err, "failed to find product")
		}
		if existing != nil {
			if err := requireOwner(existing.UserID, userID); err != nil {
				return nil, err
			}
		}
	}

	if input.Image != nil {
		ref, err := srv.saveImage(ctx, userID, input.Image)
		if err != nil {
			return nil, err
		}
		product.ImagePath = ref
	}

	if input.ID == "" {
		if err := srv.productRepo.CreateProduct(ctx, product); err != nil {
			return nil, errors.Wrap(err, "failed to create product")
		}
		srv.log(ctx).Info("Product created", slog.String("productID", product.ID), slog.String("shopID", product.ShopID))

		return &usecase.CreateProductOutput{Product: product}, nil
	}

	if err := srv.productRepo.UpsertProduct(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to upsert product")
	}
	srv.log(ctx).Info("Product upserted", slog.String("productID", product.ID), slog.String("shopID", product.ShopID))

	return &usecase.CreateProductOutput{Product: product, Upserted: true}, nil
}

func (srv *productService) saveImage(ctx context.Context, userID string, image *usecase.ImageUpload) (string, error) {
	if srv.imageStorage == nil {
		return "", errors.WithStack(domainerrors.ErrImageRejected.WithDetails("image uploads are not configured"))
	}

	ref, err := srv.imageStorage.Save(ctx, userID, image.Filename, image.Reader)
	if err != nil {
		if errors.Is(err, domainerrors.ErrImageRejected) {
			srv.log(ctx).Warn("Product image rejected", slog.String("filename", image.Filename), slog.Any("error", err))

			return "", err
		}

		return "", errors.Wrap(err, "failed to store product image")
	}

	return ref, nil
}

// ListProducts returns the caller's active products, optionally for one shop.
func (srv *productService) ListProducts(ctx context.Context, userID, shopID string) ([]*entity.Product, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	products, err := srv.productRepo.FindActiveProducts(ctx, entity.ProductFilter{UserID: userID, ShopID: shopID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}
	if products == nil {
		products = []*entity.Product{}
	}

	return products, nil
}

// UpdateProduct applies a partial update to a product owned by the caller.
func (srv *productService) UpdateProduct(ctx context.Context, userID, productID string, input *usecase.UpdateProductInput) (*entity.Product, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	if input.Name != nil && isBlank(*input.Name) {
		return nil, validationError("Name cannot be empty")
	}

	patch := &entity.ProductPatch{
		Name:      input.Name,
		ImagePath: input.ImagePath,
		IsActive:  input.IsActive,
	}
	if input.Price.Present {
		price := input.Price.NonNegative()
		patch.Price = &price
	}
	if input.Quantity.Present {
		quantity := coerceQuantity(input.Quantity)
		patch.Quantity = &quantity
	}
	if input.PurchasedAt != nil {
		purchasedAt, err := parseDateOr(*input.PurchasedAt, time.Now().UTC(), "purchasedAt")
		if err != nil {
			return nil, err
		}
		patch.PurchasedAt = &purchasedAt
	}

	product, err := ownedProduct(ctx, srv.productRepo, userID, productID)
	if err != nil {
		return nil, err
	}
	if !patch.IsEmpty() {
		if err := srv.productRepo.UpdateProduct(ctx, productID, patch); err != nil {
			return nil, errors.Wrap(err, "failed to update product")
		}
	}
	patch.Apply(product)

	return product, nil
}

// DeleteProduct soft-deletes the product and every transaction referencing it
// in a single atomic batch.
func (srv *productService) DeleteProduct(ctx context.Context, userID, productID string) (*usecase.CascadeResult, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	if _, err := ownedProduct(ctx, srv.productRepo, userID, productID); err != nil {
		return nil, err
	}

	txnIDs, err := srv.transactionRepo.FindTransactionIDsByRelatedProduct(ctx, userID, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find related transactions")
	}

	batch := repository.NewBatch()
	batch.Deactivate(entity.CollectionProducts, productID)
	for _, id := range txnIDs {
		batch.Deactivate(entity.CollectionTransactions, id)
	}

	logger := srv.log(ctx)
	if err := srv.batchWriter.Commit(ctx, batch); err != nil {
		logger.Error("Product delete batch failed", slog.String("productID", productID), slog.Int("size", batch.Len()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to commit product delete")
	}

	result := &usecase.CascadeResult{Products: 1, Transactions: len(txnIDs), Batches: 1}
	logger.Info("Product deleted", slog.String("productID", productID), slog.Int("transactions", result.Transactions))

	publishLedgerEvent(ctx, srv.publisher, logger, &entity.LedgerEvent{
		Type:     entity.LedgerEventProductDeleted,
		UserID:   userID,
		EntityID: productID,
		Affected: result.Total(),
	})

	return result, nil
}
