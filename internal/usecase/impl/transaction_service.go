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

type transactionService struct {
	shopRepo        repository.ShopRepository
	transactionRepo repository.TransactionRepository
	batchWriter     repository.BatchWriter
	logger          *slog.Logger
}

// TransactionServiceParams holds dependencies for TransactionService, injected by Fx.
type TransactionServiceParams struct {
	fx.In

	ShopRepo        repository.ShopRepository
	TransactionRepo repository.TransactionRepository
	BatchWriter     repository.BatchWriter
	Logger          *slog.Logger
}

// NewTransactionService is the constructor for transactionService.
func NewTransactionService(params TransactionServiceParams) usecase.TransactionUsecase {
	return &transactionService{
		shopRepo:        params.ShopRepo,
		transactionRepo: params.TransactionRepo,
		batchWriter:     params.BatchWriter,
		logger:          params.Logger,
	}
}

func (srv *transactionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateTransaction records a purchase or payment against one of the caller's shops.
func (srv *transactionService) CreateTransaction(ctx context.Context, userID string, input *usecase.CreateTransactionInput) (*usecase.CreateTransactionOutput, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	if isBlank(input.ShopID) || !input.Amount.Present || input.Type == "" {
		return nil, validationError("Shop ID, Amount, and Type are required")
	}
	if !input.Amount.Valid {
		return nil, validationError("amount must be a number")
	}
	txnType, ok := entity.ParseTransactionType(input.Type)
	if !ok {
		return nil, validationError("type must be purchase or payment")
	}

	now := time.Now().UTC()
	date, err := parseDateOr(input.Date, now, "date")
	if err != nil {
		return nil, err
	}
	if _, err := parentShop(ctx, srv.shopRepo, userID, input.ShopID); err != nil {
		return nil, err
	}

	txn := &entity.Transaction{
		ID:               input.ID,
		ShopID:           input.ShopID,
		UserID:           userID,
		Amount:           input.Amount.Value,
		Type:             txnType,
		Date:             date,
		Note:             input.Note,
		RelatedProductID: input.RelatedProductID,
		IsActive:         true,
		CreatedAt:        now,
	}

	if input.ID == "" {
		if err := srv.transactionRepo.CreateTransaction(ctx, txn); err != nil {
			return nil, errors.Wrap(err, "failed to create transaction")
		}
		srv.log(ctx).Info("Transaction created", slog.String("transactionID", txn.ID), slog.String("type", string(txn.Type)))

		return &usecase.CreateTransactionOutput{Transaction: txn}, nil
	}

	existing, err := srv.transactionRepo.FindTransactionByID(ctx, input.ID)
	if err != nil && !errors.Is(err, repository.ErrTransactionNotFound) {
		return nil, errors.Wrap(err, "failed to find transaction")
	}
	if existing != nil {
		if err := requireOwner(existing.UserID, userID); err != nil {
			return nil, err
		}
	}
	if err := srv.transactionRepo.UpsertTransaction(ctx, txn); err != nil {
		return nil, errors.Wrap(err, "failed to upsert transaction")
	}
	srv.log(ctx).Info("Transaction upserted", slog.String("transactionID", txn.ID), slog.String("type", string(txn.Type)))

	return &usecase.CreateTransactionOutput{Transaction: txn, Upserted: true}, nil
}

// ListTransactions returns the caller's active transactions, optionally for one shop.
func (srv *transactionService) ListTransactions(ctx context.Context, userID, shopID string) ([]*entity.Transaction, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	txns, err := srv.transactionRepo.FindActiveTransactions(ctx, entity.TransactionFilter{UserID: userID, ShopID: shopID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}
	if txns == nil {
		txns = []*entity.Transaction{}
	}

	return txns, nil
}

// DeleteTransaction soft-deletes one transaction owned by the caller.
func (srv *transactionService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	if err := requireUser(userID); err != nil {
		return err
	}
	if _, err := ownedTransaction(ctx, srv.transactionRepo, userID, transactionID); err != nil {
		return err
	}

	batch := repository.NewBatch()
	batch.Deactivate(entity.CollectionTransactions, transactionID)
	if err := srv.batchWriter.Commit(ctx, batch); err != nil {
		return errors.Wrap(err, "failed to delete transaction")
	}
	srv.log(ctx).Info("Transaction deleted", slog.String("transactionID", transactionID))

	return nil
}
