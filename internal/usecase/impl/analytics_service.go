package impl

import (
	"context"
	"log/slog"

	deliverycontext "kanakku/internal/delivery/context"
	"kanakku/internal/domain/entity"
	"kanakku/internal/domain/repository"
	"kanakku/internal/usecase"
	"kanakku/internal/util"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// balance accumulates purchase and payment totals exactly.
type balance struct {
	purchase decimal.Decimal
	paid     decimal.Decimal
}

func (b balance) currentBalance() decimal.Decimal {
	return b.purchase.Sub(b.paid)
}

// decimalAmount converts a stored amount, reading NaN and infinities as zero.
func decimalAmount(f float64) decimal.Decimal {
	return decimal.NewFromFloat(util.Finite(f))
}

// foldBalance sums purchases and payments. Legacy numeric types are accepted and
// unknown types are skipped.
func foldBalance(amounts []entity.TransactionAmount) balance {
	var b balance
	for _, a := range amounts {
		t, ok := entity.ParseTransactionType(a.Type)
		if !ok {
			continue
		}
		switch t {
		case entity.TransactionTypePurchase:
			b.purchase = b.purchase.Add(decimalAmount(a.Amount))
		case entity.TransactionTypePayment:
			b.paid = b.paid.Add(decimalAmount(a.Amount))
		}
	}

	return b
}

type analyticsService struct {
	shopRepo        repository.ShopRepository
	productRepo     repository.ProductRepository
	transactionRepo repository.TransactionRepository
	logger          *slog.Logger
}

// AnalyticsServiceParams holds dependencies for AnalyticsService, injected by Fx.
type AnalyticsServiceParams struct {
	fx.In

	ShopRepo        repository.ShopRepository
	ProductRepo     repository.ProductRepository
	TransactionRepo repository.TransactionRepository
	Logger          *slog.Logger
}

// NewAnalyticsService is the constructor for analyticsService.
func NewAnalyticsService(params AnalyticsServiceParams) usecase.AnalyticsUsecase {
	return &analyticsService{
		shopRepo:        params.ShopRepo,
		productRepo:     params.ProductRepo,
		transactionRepo: params.TransactionRepo,
		logger:          params.Logger,
	}
}

func (srv *analyticsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Dashboard returns the caller's shop count and balance over active transactions.
func (srv *analyticsService) Dashboard(ctx context.Context, userID string) (*entity.DashboardSummary, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	shopCount, err := srv.shopRepo.CountActiveShopsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count shops")
	}
	amounts, err := srv.transactionRepo.FindActiveTransactionAmounts(ctx, entity.TransactionFilter{UserID: userID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to read transactions")
	}

	b := foldBalance(amounts)
	srv.log(ctx).Debug("Dashboard computed", slog.Int64("shops", shopCount), slog.Int("transactions", len(amounts)))

	return &entity.DashboardSummary{
		ShopCount:      shopCount,
		TotalPurchase:  b.purchase.InexactFloat64(),
		TotalPaid:      b.paid.InexactFloat64(),
		CurrentBalance: b.currentBalance().InexactFloat64(),
	}, nil
}

// ShopBalance returns the balance of one shop owned by the caller together with
// the value of its active products.
func (srv *analyticsService) ShopBalance(ctx context.Context, userID, shopID string) (*entity.ShopBalance, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	if _, err := ownedShop(ctx, srv.shopRepo, userID, shopID); err != nil {
		return nil, err
	}

	amounts, err := srv.transactionRepo.FindActiveTransactionAmounts(ctx, entity.TransactionFilter{UserID: userID, ShopID: shopID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to read shop transactions")
	}
	products, err := srv.productRepo.FindActiveProducts(ctx, entity.ProductFilter{UserID: userID, ShopID: shopID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to read shop products")
	}

	productTotal := decimal.Zero
	for _, p := range products {
		productTotal = productTotal.Add(decimalAmount(p.Price).Mul(decimal.NewFromInt(p.Quantity)))
	}

	b := foldBalance(amounts)

	return &entity.ShopBalance{
		ShopID:         shopID,
		TotalPurchase:  b.purchase.InexactFloat64(),
		TotalPaid:      b.paid.InexactFloat64(),
		CurrentBalance: b.currentBalance().InexactFloat64(),
		ProductTotal:   productTotal.InexactFloat64(),
	}, nil
}
