package firestore

import (
	"context"

	"kanakku/internal/domain/constants"
	"kanakku/internal/domain/repository"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// BatchWriter commits ledger batches as Firestore transactions.
type BatchWriter struct{ *Store }

var _ repository.BatchWriter = BatchWriter{}

// MaxOperations returns the Firestore per-commit write limit.
func (w BatchWriter) MaxOperations() int {
	return constants.FirestoreMaxBatchOperations
}

// Commit writes every operation of the batch atomically. A deactivate on a
// missing document fails the whole batch.
func (w BatchWriter) Commit(ctx context.Context, batch *repository.Batch) error {
	if batch.Len() > w.MaxOperations() {
		return errors.Wrapf(repository.ErrBatchTooLarge, "%d > %d", batch.Len(), w.MaxOperations())
	}
	if batch.Len() == 0 {
		return nil
	}

	err := w.client.RunTransaction(ctx, func(_ context.Context, tx *fs.Transaction) error {
		for _, op := range batch.Ops() {
			ref := w.collection(op.Collection).Doc(op.ID)

			var err error
			switch op.Kind {
			case repository.OpDeactivate:
				err = tx.Update(ref, []fs.Update{{Path: fieldIsActive, Value: false}})
			case repository.OpDelete:
				err = tx.Delete(ref)
			default:
				err = errors.Errorf("unknown batch operation %d", op.Kind)
			}
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "failed to commit %d operations", batch.Len())
	}

	return nil
}
