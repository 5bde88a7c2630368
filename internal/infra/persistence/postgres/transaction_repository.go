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

// transactionRepository implements the repository.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository is the constructor for transactionRepository.
func NewTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// CreateTransaction inserts a transaction under a generated ID.
func (repo *transactionRepository) CreateTransaction(ctx context.Context, txn *entity.Transaction) error {
	txn.ID = uuid.NewString()

	if err := repo.db.WithContext(ctx).Create(fromTransactionDomain(txn)).Error; err != nil {
		return classifyWriteError(err, "failed to create transaction")
	}

	return nil
}

// UpsertTransaction writes the transaction at its ID.
func (repo *transactionRepository) UpsertTransaction(ctx context.Context, txn *entity.Transaction) error {
	if err := repo.db.WithContext(ctx).
		Clauses(upsertOnID()).
		Create(fromTransactionDomain(txn)).Error; err != nil {
		return classifyWriteError(err, "failed to upsert transaction")
	}

	return nil
}

// FindTransactionByID retrieves a transaction by ID regardless of its active flag.
func (repo *transactionRepository) FindTransactionByID(ctx context.Context, id string) (*entity.Transaction, error) {
	var txnM model.TransactionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&txnM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(repository.ErrTransactionNotFound)
		}

		return nil, errors.Wrap(err, "failed to find transaction by ID")
	}

	return toTransactionDomain(&txnM), nil
}

// FindActiveTransactions retrieves active transactions matching the filter, oldest first.
func (repo *transactionRepository) FindActiveTransactions(ctx context.Context, filter entity.TransactionFilter) ([]*entity.Transaction, error) {
	var txnModels []*model.TransactionModel

	if err := repo.activeQuery(ctx, filter).
		Order("created_at ASC").
		Find(&txnModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active transactions")
	}

	txns := make([]*entity.Transaction, 0, len(txnModels))
	for _, txnM := range txnModels {
		txns = append(txns, toTransactionDomain(txnM))
	}

	return txns, nil
}

// FindActiveTransactionAmounts reads only amount and type of active transactions.
func (repo *transactionRepository) FindActiveTransactionAmounts(ctx context.Context, filter entity.TransactionFilter) ([]entity.TransactionAmount, error) {
	var rows []model.TransactionAmountModel

	if err := repo.activeQuery(ctx, filter).
		Select("amount", "type").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to read transaction amounts")
	}

	amounts := make([]entity.TransactionAmount, 0, len(rows))
	for _, row := range rows {
		amounts = append(amounts, entity.TransactionAmount{
			Amount: row.Amount,
			Type:   entity.TransactionType(row.Type),
		})
	}

	return amounts, nil
}

// FindTransactionIDsByShop lists IDs of the user's transactions in a shop.
func (repo *transactionRepository) FindTransactionIDsByShop(ctx context.Context, userID, shopID string) ([]string, error) {
	return repo.pluckIDs(ctx, "failed to find transaction IDs by shop",
		"user_id = ? AND shop_id = ?", userID, shopID)
}

// FindTransactionIDsByRelatedProduct lists IDs of the user's transactions linked to a product.
func (repo *transactionRepository) FindTransactionIDsByRelatedProduct(ctx context.Context, userID, productID string) ([]string, error) {
	return repo.pluckIDs(ctx, "failed to find transaction IDs by product",
		"user_id = ? AND related_product_id = ?", userID, productID)
}

// FindTransactionIDsByUser lists IDs of every transaction the user owns.
func (repo *transactionRepository) FindTransactionIDsByUser(ctx context.Context, userID string) ([]string, error) {
	return repo.pluckIDs(ctx, "failed to find transaction IDs by user",
		"user_id = ?", userID)
}

func (repo *transactionRepository) activeQuery(ctx context.Context, filter entity.TransactionFilter) *gorm.DB {
	query := repo.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("user_id = ? AND is_active = ?", filter.UserID, true)
	if filter.ShopID != "" {
		query = query.Where("shop_id = ?", filter.ShopID)
	}

	return query
}

func (repo *transactionRepository) pluckIDs(ctx context.Context, msg, where string, args ...any) ([]string, error) {
	ids := make([]string, 0)

	if err := repo.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where(where, args...).
		Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, msg)
	}

	return ids, nil
}

// --- Mapper Functions ---

// toTransactionDomain converts a GORM TransactionModel to a domain Transaction entity.
// Legacy numeric types are normalized on read.
func toTransactionDomain(data *model.TransactionModel) *entity.Transaction {
	if data == nil {
		return nil
	}

	txnType, ok := entity.ParseTransactionType(data.Type)
	if !ok {
		txnType = entity.TransactionType(data.Type)
	}

	return &entity.Transaction{
		ID:               data.ID,
		ShopID:           data.ShopID,
		UserID:           data.UserID,
		Amount:           data.Amount,
		Type:             txnType,
		Date:             data.Date.UTC(),
		Note:             data.Note,
		RelatedProductID: data.RelatedProductID,
		IsActive:         data.IsActive,
		CreatedAt:        data.CreatedAt.UTC(),
	}
}

// fromTransactionDomain converts a domain Transaction entity to a GORM TransactionModel.
func fromTransactionDomain(data *entity.Transaction) *model.TransactionModel {
	if data == nil {
		return nil
	}

	return &model.TransactionModel{
		ID:               data.ID,
		ShopID:           data.ShopID,
		UserID:           data.UserID,
		Amount:           data.Amount,
		Type:             string(data.Type),
		Date:             nonZeroTime(data.Date),
		Note:             data.Note,
		RelatedProductID: data.RelatedProductID,
		IsActive:         data.IsActive,
		CreatedAt:        nonZeroTime(data.CreatedAt),
	}
}
