package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "kanakku/internal/delivery/context"
	"kanakku/internal/domain/entity"
	"kanakku/internal/domain/service"
)

// publishLedgerEvent emits an audit event. Failures are logged only; the
// ledger write has already committed.
func publishLedgerEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *entity.LedgerEvent) {
	if publisher == nil {
		return
	}
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	event.OccurredAt = time.Now().UTC()

	if err := publisher.PublishLedgerEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish ledger event",
			slog.String("type", string(event.Type)),
			slog.String("entityID", event.EntityID),
			slog.Any("error", err),
		)
	}
}
