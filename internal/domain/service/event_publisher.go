package service

import (
	"context"

	"kanakku/internal/domain/entity"
)

// EventPublisher defines the interface for publishing ledger events to a message queue
type EventPublisher interface {
	// PublishLedgerEvent publishes an audit event for a completed destructive operation
	PublishLedgerEvent(ctx context.Context, event *entity.LedgerEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
