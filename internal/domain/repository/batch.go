package repository

import (
	"context"

	"kanakku/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrBatchTooLarge is returned when a batch exceeds the store's per-commit limit.
var ErrBatchTooLarge = errors.New("batch exceeds maximum operation count")

// OpKind is the kind of write carried by a batch operation.
type OpKind int

const (
	// OpDeactivate sets isActive=false on the document.
	OpDeactivate OpKind = iota + 1
	// OpDelete removes the document.
	OpDelete
)

// WriteOp is a single document write inside a batch.
type WriteOp struct {
	Collection entity.Collection
	ID         string
	Kind       OpKind
}

// Batch collects writes that a BatchWriter commits atomically.
type Batch struct {
	ops []WriteOp
}

// NewBatch returns an empty batch.
func NewBatch() *Batch {
	return &Batch{}
}

// Deactivate queues a soft delete.
func (b *Batch) Deactivate(collection entity.Collection, id string) {
	b.ops = append(b.ops, WriteOp{Collection: collection, ID: id, Kind: OpDeactivate})
}

// Delete queues a hard delete.
func (b *Batch) Delete(collection entity.Collection, id string) {
	b.ops = append(b.ops, WriteOp{Collection: collection, ID: id, Kind: OpDelete})
}

// Len returns the number of queued operations.
func (b *Batch) Len() int {
	return len(b.ops)
}

// Ops returns the queued operations in insertion order.
func (b *Batch) Ops() []WriteOp {
	return b.ops
}

// BatchWriter commits batches atomically. Callers must keep every batch within
// MaxOperations; larger batches are rejected with ErrBatchTooLarge.
type BatchWriter interface {
	MaxOperations() int
	Commit(ctx context.Context, batch *Batch) error
}
