package impl

import (
	"context"
	"log/slog"

	"kanakku/internal/domain/constants"
	"kanakku/internal/domain/entity"
	"kanakku/internal/domain/repository"

	"github.com/pkg/errors"
)

// batchLimit caps the configured chunk size at the store's commit limit.
func batchLimit(configured, storeMax int) int {
	if storeMax <= 0 {
		storeMax = constants.FirestoreMaxBatchOperations
	}
	if configured > 0 && configured < storeMax {
		return configured
	}

	return storeMax
}

// chunkedWriter queues writes and commits them in batches of at most limit
// operations. Each batch is atomic; a failure leaves earlier batches committed.
type chunkedWriter struct {
	writer repository.BatchWriter
	limit  int
	logger *slog.Logger

	batch     *repository.Batch
	committed int
	written   int
}

func newChunkedWriter(writer repository.BatchWriter, configured int, logger *slog.Logger) *chunkedWriter {
	return &chunkedWriter{
		writer: writer,
		limit:  batchLimit(configured, writer.MaxOperations()),
		logger: logger,
		batch:  repository.NewBatch(),
	}
}

func (w *chunkedWriter) Deactivate(ctx context.Context, collection entity.Collection, id string) error {
	w.batch.Deactivate(collection, id)

	return w.flushIfFull(ctx)
}

func (w *chunkedWriter) Delete(ctx context.Context, collection entity.Collection, id string) error {
	w.batch.Delete(collection, id)

	return w.flushIfFull(ctx)
}

func (w *chunkedWriter) flushIfFull(ctx context.Context) error {
	if w.batch.Len() >= w.limit {
		return w.commit(ctx)
	}

	return nil
}

// Flush commits the remaining queued writes.
func (w *chunkedWriter) Flush(ctx context.Context) error {
	if w.batch.Len() == 0 {
		return nil
	}

	return w.commit(ctx)
}

func (w *chunkedWriter) commit(ctx context.Context) error {
	size := w.batch.Len()
	if err := w.writer.Commit(ctx, w.batch); err != nil {
		w.logger.Error("Batch commit failed",
			slog.Int("batch", w.committed+1),
			slog.Int("size", size),
			slog.Int("committedWrites", w.written),
			slog.Any("error", err),
		)

		return errors.Wrapf(err, "failed to commit batch %d", w.committed+1)
	}
	w.committed++
	w.written += size
	w.batch = repository.NewBatch()
	w.logger.Debug("Batch committed", slog.Int("batch", w.committed), slog.Int("size", size))

	return nil
}

// Batches returns the number of committed batches.
func (w *chunkedWriter) Batches() int {
	return w.committed
}
