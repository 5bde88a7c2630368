package usecase

import (
	"context"

	"kanakku/internal/domain/entity"
)

// AnalyticsUsecase defines the balance aggregation operations.
type AnalyticsUsecase interface {
	// Dashboard folds every active transaction of the user into one summary.
	Dashboard(ctx context.Context, userID string) (*entity.DashboardSummary, error)

	// ShopBalance folds the active transactions of one shop and reports its product total.
	ShopBalance(ctx context.Context, userID, shopID string) (*entity.ShopBalance, error)
}
