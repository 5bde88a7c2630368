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

type accountService struct {
	shopRepo        repository.ShopRepository
	productRepo     repository.ProductRepository
	transactionRepo repository.TransactionRepository
	batchWriter     repository.BatchWriter
	publisher       service.EventPublisher
	batchSize       int
	includeProducts bool
	logger          *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	ShopRepo        repository.ShopRepository
	ProductRepo     repository.ProductRepository
	TransactionRepo repository.TransactionRepository
	BatchWriter     repository.BatchWriter
	Publisher       service.EventPublisher `optional:"true"`
	Config          *config.Config
	Logger          *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	srv := &accountService{
		shopRepo:        params.ShopRepo,
		productRepo:     params.ProductRepo,
		transactionRepo: params.TransactionRepo,
		batchWriter:     params.BatchWriter,
		publisher:       params.Publisher,
		logger:          params.Logger,
	}
	if params.Config != nil && params.Config.Ledger != nil {
		srv.batchSize = params.Config.Ledger.BatchSize
		srv.includeProducts = params.Config.Ledger.ResetIncludesProducts
	}

	return srv
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ResetAccount hard-deletes every shop and transaction owned by the caller.
// Products are kept unless the ledger is configured to include them. The
// profile document is never touched.
func (srv *accountService) ResetAccount(ctx context.Context, userID string) (*usecase.CascadeResult, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	shopIDs, err := srv.shopRepo.FindShopIDsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shops")
	}
	txnIDs, err := srv.transactionRepo.FindTransactionIDsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find transactions")
	}
	var productIDs []string
	if srv.includeProducts {
		productIDs, err = srv.productRepo.FindProductIDsByUser(ctx, userID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find products")
		}
	}

	logger := srv.log(ctx)
	logger.Warn("Resetting account",
		slog.Int("shops", len(shopIDs)),
		slog.Int("transactions", len(txnIDs)),
		slog.Int("products", len(productIDs)),
	)
	start := time.Now()
	writer := newChunkedWriter(srv.batchWriter, srv.batchSize, logger)

	deletes := []struct {
		collection entity.Collection
		ids        []string
	}{
		{collection: entity.CollectionShops, ids: shopIDs},
		{collection: entity.CollectionTransactions, ids: txnIDs},
		{collection: entity.CollectionProducts, ids: productIDs},
	}
	for _, d := range deletes {
		for _, id := range d.ids {
			if err := writer.Delete(ctx, d.collection, id); err != nil {
				return nil, err
			}
		}
	}
	if err := writer.Flush(ctx); err != nil {
		return nil, err
	}

	result := &usecase.CascadeResult{
		Shops:        len(shopIDs),
		Products:     len(productIDs),
		Transactions: len(txnIDs),
		Batches:      writer.Batches(),
	}
	logger.Info("Account reset",
		slog.Int("deleted", result.Total()),
		slog.Int("batches", result.Batches),
		slog.String("elapsed", util.FormatDuration(time.Since(start))),
	)

	publishLedgerEvent(ctx, srv.publisher, logger, &entity.LedgerEvent{
		Type:     entity.LedgerEventAccountReset,
		UserID:   userID,
		Affected: result.Total(),
	})

	return result, nil
}
