package postgres

import (
	"context"
	"fmt"

	"kanakku/internal/domain/constants"
	"kanakku/internal/domain/entity"
	"kanakku/internal/domain/repository"
	"kanakku/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// gormBatchWriter implements repository.BatchWriter with one database
// transaction per batch.
type gormBatchWriter struct {
	db *gorm.DB
}

// NewBatchWriter is the constructor for gormBatchWriter.
func NewBatchWriter(db *gorm.DB) repository.BatchWriter {
	return &gormBatchWriter{db: db}
}

// MaxOperations returns the per-commit operation bound.
func (w *gormBatchWriter) MaxOperations() int {
	return constants.PostgresMaxBatchOperations
}

// batchGroup is the set of IDs sharing one collection and operation kind.
type batchGroup struct {
	collection entity.Collection
	kind       repository.OpKind
	ids        []string
}

// Commit runs every operation of the batch in a single transaction. Operations
// on the same collection and kind are folded into one statement.
func (w *gormBatchWriter) Commit(ctx context.Context, batch *repository.Batch) error {
	if batch.Len() > w.MaxOperations() {
		return errors.Wrapf(repository.ErrBatchTooLarge, "%d > %d", batch.Len(), w.MaxOperations())
	}
	if batch.Len() == 0 {
		return nil
	}

	tx := w.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	for _, group := range groupOps(batch) {
		if err := applyGroup(tx, group); err != nil {
			if rbErr := tx.Rollback().Error; rbErr != nil {
				return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
			}

			return err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}

func groupOps(batch *repository.Batch) []*batchGroup {
	type key struct {
		collection entity.Collection
		kind       repository.OpKind
	}

	index := make(map[key]*batchGroup)
	seen := make(map[key]map[string]struct{})
	groups := make([]*batchGroup, 0)
	for _, op := range batch.Ops() {
		k := key{collection: op.Collection, kind: op.Kind}
		group, ok := index[k]
		if !ok {
			group = &batchGroup{collection: op.Collection, kind: op.Kind}
			index[k] = group
			seen[k] = make(map[string]struct{})
			groups = append(groups, group)
		}
		if _, dup := seen[k][op.ID]; dup {
			continue
		}
		seen[k][op.ID] = struct{}{}
		group.ids = append(group.ids, op.ID)
	}

	return groups
}

func applyGroup(tx *gorm.DB, group *batchGroup) error {
	target, keyColumn, notFound, err := tableFor(group.collection)
	if err != nil {
		return err
	}
	where := keyColumn + " IN ?"

	switch group.kind {
	case repository.OpDeactivate:
		result := tx.Model(target).Where(where, group.ids).Update("is_active", false)
		if result.Error != nil {
			return errors.Wrapf(result.Error, "failed to deactivate %s", group.collection)
		}
		if result.RowsAffected < int64(len(group.ids)) {
			return errors.Wrapf(notFound, "deactivated %d of %d %s", result.RowsAffected, len(group.ids), group.collection)
		}
	case repository.OpDelete:
		if err := tx.Where(where, group.ids).Delete(target).Error; err != nil {
			return errors.Wrapf(err, "failed to delete %s", group.collection)
		}
	default:
		return errors.Errorf("unknown batch operation %d", group.kind)
	}

	return nil
}

func tableFor(collection entity.Collection) (target any, keyColumn string, notFound error, err error) {
	switch collection {
	case entity.CollectionShops:
		return &model.ShopModel{}, "id", repository.ErrShopNotFound, nil
	case entity.CollectionProducts:
		return &model.ProductModel{}, "id", repository.ErrProductNotFound, nil
	case entity.CollectionTransactions:
		return &model.TransactionModel{}, "id", repository.ErrTransactionNotFound, nil
	case entity.CollectionUsers:
		return &model.ProfileModel{}, "uid", repository.ErrProfileNotFound, nil
	default:
		return nil, "", nil, errors.Errorf("unknown collection %q", collection)
	}
}
