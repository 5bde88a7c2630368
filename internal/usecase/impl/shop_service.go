// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"kanakku/config"
	deliverycontext "kanakku/internal/delivery/context"
	"kanakku/internal/domain/entity"
	"kanakku/internal/domain/repository"
	"kanakku/internal/domain/service"
	"kanakku/internal/usecase"
	"kanakku/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultCurrency = "INR"

type shopService struct {
	shopRepo        repository.ShopRepository
	productRepo     repository.ProductRepository
	transactionRepo repository.TransactionRepository
	batchWriter     repository.BatchWriter
	qrCodeService   service.QRCodeService
	publisher       service.EventPublisher
	batchSize       int
	cascadeProducts bool
	paymentCurrency string
	logger          *slog.Logger
}

// ShopServiceParams holds dependencies for ShopService, injected by Fx.
type ShopServiceParams struct {
	fx.In

	ShopRepo        repository.ShopRepository
	ProductRepo     repository.ProductRepository
	TransactionRepo repository.TransactionRepository
	BatchWriter     repository.BatchWriter
	QRCodeService   service.QRCodeService
	Publisher       service.EventPublisher `optional:"true"`
	Config          *config.Config
	Logger          *slog.Logger
}

// NewShopService is the constructor for shopService.
func NewShopService(params ShopServiceParams) usecase.ShopUsecase {
	srv := &shopService{
		shopRepo:        params.ShopRepo,
		productRepo:     params.ProductRepo,
		transactionRepo: params.TransactionRepo,
		batchWriter:     params.BatchWriter,
		qrCodeService:   params.QRCodeService,
		publisher:       params.Publisher,
		paymentCurrency: defaultCurrency,
		logger:          params.Logger,
	}
	if params.Config != nil {
		if params.Config.Ledger != nil {
			srv.batchSize = params.Config.Ledger.BatchSize
			srv.cascadeProducts = params.Config.Ledger.CascadeProductsOnShopDelete
		}
		if params.Config.QRCode != nil && params.Config.QRCode.Currency != "" {
			srv.paymentCurrency = params.Config.QRCode.Currency
		}
	}

	return srv
}

func (srv *shopService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateShop creates a shop owned by the caller, or upserts it at an explicit ID.
func (srv *shopService) CreateShop(ctx context.Context, userID string, input *usecase.CreateShopInput) (*usecase.CreateShopOutput, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	if isBlank(input.Name) {
		return nil, validationError("Shop Name is required")
	}

	shop := &entity.Shop{
		ID:            input.ID,
		UserID:        userID,
		Name:          input.Name,
		OwnerName:     input.OwnerName,
		ContactNumber: input.ContactNumber,
		Address:       input.Address,
		UPIID:         input.UPIID,
		IsActive:      true,
		CreatedAt:     time.Now().UTC(),
	}

	if input.ID == "" {
		if err := srv.shopRepo.CreateShop(ctx, shop); err != nil {
			return nil, errors.Wrap(err, "failed to create shop")
		}
		srv.log(ctx).Info("Shop created", slog.String("shopID", shop.ID))

		return &usecase.CreateShopOutput{Shop: shop}, nil
	}

	existing, err := srv.shopRepo.FindShopByID(ctx, input.ID)
	if err != nil && !errors.Is(err, repository.ErrShopNotFound) {
		return nil, errors.Wrap(err, "failed to find shop")
	}
	if existing != nil {
		if err := requireOwner(existing.UserID, userID); err != nil {
			srv.log(ctx).Warn("Rejected upsert over foreign shop", slog.String("shopID", input.ID))

			return nil, err
		}
	}
	if err := srv.shopRepo.UpsertShop(ctx, shop); err != nil {
		return nil, errors.Wrap(err, "failed to upsert shop")
	}
	srv.log(ctx).Info("Shop upserted", slog.String("shopID", shop.ID))

	return &usecase.CreateShopOutput{Shop: shop, Upserted: true}, nil
}

// ListShops returns the caller's active shops.
func (srv *shopService) ListShops(ctx context.Context, userID string) ([]*entity.Shop, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	shops, err := srv.shopRepo.FindActiveShopsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shops")
	}
	if shops == nil {
		shops = []*entity.Shop{}
	}

	return shops, nil
}

// UpdateShop applies a partial update to a shop owned by the caller.
func (srv *shopService) UpdateShop(ctx context.Context, userID, shopID string, input *usecase.UpdateShopInput) (*entity.Shop, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	if input.Name != nil && isBlank(*input.Name) {
		return nil, validationError("Shop Name cannot be empty")
	}

	shop, err := ownedShop(ctx, srv.shopRepo, userID, shopID)
	if err != nil {
		return nil, err
	}

	patch := &entity.ShopPatch{
		Name:          input.Name,
		OwnerName:     input.OwnerName,
		ContactNumber: input.ContactNumber,
		Address:       input.Address,
		UPIID:         input.UPIID,
		IsActive:      input.IsActive,
	}
	if !patch.IsEmpty() {
		if err := srv.shopRepo.UpdateShop(ctx, shopID, patch); err != nil {
			return nil, errors.Wrap(err, "failed to update shop")
		}
	}
	patch.Apply(shop)

	return shop, nil
}

// DeleteShop soft-deletes the shop and every transaction recorded against it.
func (srv *shopService) DeleteShop(ctx context.Context, userID, shopID string) (*usecase.CascadeResult, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	if _, err := ownedShop(ctx, srv.shopRepo, userID, shopID); err != nil {
		return nil, err
	}

	txnIDs, err := srv.transactionRepo.FindTransactionIDsByShop(ctx, userID, shopID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shop transactions")
	}
	var productIDs []string
	if srv.cascadeProducts {
		productIDs, err = srv.productRepo.FindProductIDsByShop(ctx, userID, shopID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find shop products")
		}
	}

	logger := srv.log(ctx)
	start := time.Now()
	writer := newChunkedWriter(srv.batchWriter, srv.batchSize, logger)

	if err := writer.Deactivate(ctx, entity.CollectionShops, shopID); err != nil {
		return nil, err
	}
	for _, id := range txnIDs {
		if err := writer.Deactivate(ctx, entity.CollectionTransactions, id); err != nil {
			return nil, err
		}
	}
	for _, id := range productIDs {
		if err := writer.Deactivate(ctx, entity.CollectionProducts, id); err != nil {
			return nil, err
		}
	}
	if err := writer.Flush(ctx); err != nil {
		return nil, err
	}

	result := &usecase.CascadeResult{
		Shops:        1,
		Products:     len(productIDs),
		Transactions: len(txnIDs),
		Batches:      writer.Batches(),
	}
	logger.Info("Shop deleted",
		slog.String("shopID", shopID),
		slog.Int("transactions", result.Transactions),
		slog.Int("products", result.Products),
		slog.Int("batches", result.Batches),
		slog.String("elapsed", util.FormatDuration(time.Since(start))),
	)

	publishLedgerEvent(ctx, srv.publisher, logger, &entity.LedgerEvent{
		Type:     entity.LedgerEventShopDeleted,
		UserID:   userID,
		EntityID: shopID,
		Affected: result.Total(),
	})

	return result, nil
}

// PaymentQR renders a UPI QR code paying the shop.
func (srv *shopService) PaymentQR(ctx context.Context, userID, shopID string, amount *float64) ([]byte, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	shop, err := ownedShop(ctx, srv.shopRepo, userID, shopID)
	if err != nil {
		return nil, err
	}
	if isBlank(shop.UPIID) {
		return nil, validationError("shop has no UPI ID")
	}

	req := &entity.PaymentRequest{
		PayeeVPA:  shop.UPIID,
		PayeeName: shop.Name,
		Currency:  srv.paymentCurrency,
	}
	if amount != nil {
		if *amount < 0 {
			return nil, validationError("amount cannot be negative")
		}
		req.Amount = *amount
	} else {
		amounts, err := srv.transactionRepo.FindActiveTransactionAmounts(ctx, entity.TransactionFilter{UserID: userID, ShopID: shopID})
		if err != nil {
			return nil, errors.Wrap(err, "failed to read shop transactions")
		}
		if balance := foldBalance(amounts); balance.currentBalance().IsPositive() {
			req.Amount = balance.currentBalance().InexactFloat64()
		}
	}

	png, err := srv.qrCodeService.GeneratePaymentQR(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate payment QR")
	}

	return png, nil
}
