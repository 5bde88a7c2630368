package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"kanakku/config"
	"kanakku/internal/domain/entity"
	"kanakku/internal/domain/service"
	"kanakku/internal/infra/persistence/memory"
	"kanakku/internal/usecase"

	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(ledger config.LedgerConfig) *config.Config {
	return &config.Config{
		Ledger: &ledger,
		QRCode: &config.QRCodeConfig{Currency: "INR"},
	}
}

// ledgerFixtures wires every ledger service to one in-memory store.
type ledgerFixtures struct {
	store        *memory.Store
	shops        usecase.ShopUsecase
	products     usecase.ProductUsecase
	transactions usecase.TransactionUsecase
	analytics    usecase.AnalyticsUsecase
	account      usecase.AccountUsecase
	profiles     usecase.ProfileUsecase
}

type ledgerOptions struct {
	ledger    config.LedgerConfig
	storeOpts []memory.Option
	publisher service.EventPublisher
	images    service.ImageStorage
	qrCodes   service.QRCodeService
}

func createTestLedger(t *testing.T, opts ledgerOptions) ledgerFixtures {
	t.Helper()

	store := memory.NewStore(opts.storeOpts...)
	cfg := newTestConfig(opts.ledger)
	logger := newDiscardLogger()

	return ledgerFixtures{
		store: store,
		shops: NewShopService(ShopServiceParams{
			ShopRepo:        store,
			ProductRepo:     store,
			TransactionRepo: store,
			BatchWriter:     store,
			QRCodeService:   opts.qrCodes,
			Publisher:       opts.publisher,
			Config:          cfg,
			Logger:          logger,
		}),
		products: NewProductService(ProductServiceParams{
			ShopRepo:        store,
			ProductRepo:     store,
			TransactionRepo: store,
			BatchWriter:     store,
			ImageStorage:    opts.images,
			Publisher:       opts.publisher,
			Logger:          logger,
		}),
		transactions: NewTransactionService(TransactionServiceParams{
			ShopRepo:        store,
			TransactionRepo: store,
			BatchWriter:     store,
			Logger:          logger,
		}),
		analytics: NewAnalyticsService(AnalyticsServiceParams{
			ShopRepo:        store,
			ProductRepo:     store,
			TransactionRepo: store,
			Logger:          logger,
		}),
		account: NewAccountService(AccountServiceParams{
			ShopRepo:        store,
			ProductRepo:     store,
			TransactionRepo: store,
			BatchWriter:     store,
			Publisher:       opts.publisher,
			Config:          cfg,
			Logger:          logger,
		}),
		profiles: NewProfileService(ProfileServiceParams{
			ProfileRepo: store,
			Logger:      logger,
		}),
	}
}

func (f ledgerFixtures) mustCreateShop(t *testing.T, userID, name string) *entity.Shop {
	t.Helper()

	out, err := f.shops.CreateShop(context.Background(), userID, &usecase.CreateShopInput{Name: name, UPIID: "shop@upi"})
	require.NoError(t, err)

	return out.Shop
}

func (f ledgerFixtures) mustCreateTransaction(t *testing.T, userID, shopID string, amount float64, txnType entity.TransactionType) *entity.Transaction {
	t.Helper()

	input := &usecase.CreateTransactionInput{ShopID: shopID, Type: txnType}
	input.Amount.Value, input.Amount.Present, input.Amount.Valid = amount, true, true

	out, err := f.transactions.CreateTransaction(context.Background(), userID, input)
	require.NoError(t, err)

	return out.Transaction
}

func (f ledgerFixtures) mustCreateProduct(t *testing.T, userID, shopID, name string, price float64, quantity int64) *entity.Product {
	t.Helper()

	input := &usecase.CreateProductInput{ShopID: shopID, Name: name}
	input.Price.Value, input.Price.Present, input.Price.Valid = price, true, true
	input.Quantity.Value, input.Quantity.Present, input.Quantity.Valid = float64(quantity), true, true

	out, err := f.products.CreateProduct(context.Background(), userID, input)
	require.NoError(t, err)

	return out.Product
}
