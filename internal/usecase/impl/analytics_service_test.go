package impl

import (
	"context"
	"math"
	"testing"

	"kanakku/internal/domain/entity"
	domainerrors "kanakku/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoldBalance(t *testing.T) {
	tests := []struct {
		name         string
		amounts      []entity.TransactionAmount
		wantPurchase float64
		wantPaid     float64
	}{
		{name: "empty"},
		{
			name: "string types",
			amounts: []entity.TransactionAmount{
				{Amount: 500, Type: entity.TransactionTypePurchase},
				{Amount: 200, Type: entity.TransactionTypePayment},
			},
			wantPurchase: 500,
			wantPaid:     200,
		},
		{
			name: "legacy codes",
			amounts: []entity.TransactionAmount{
				{Amount: 40, Type: "0"},
				{Amount: 15, Type: "1"},
			},
			wantPurchase: 40,
			wantPaid:     15,
		},
		{
			name: "unknown types ignored",
			amounts: []entity.TransactionAmount{
				{Amount: 40, Type: "refund"},
				{Amount: 15, Type: "7"},
				{Amount: 10, Type: entity.TransactionTypePayment},
			},
			wantPaid: 10,
		},
		{
			name: "non-finite amounts read as zero",
			amounts: []entity.TransactionAmount{
				{Amount: math.NaN(), Type: entity.TransactionTypePurchase},
				{Amount: math.Inf(1), Type: entity.TransactionTypePayment},
				{Amount: 5, Type: entity.TransactionTypePurchase},
			},
			wantPurchase: 5,
		},
		{
			name: "decimal sums are exact",
			amounts: []entity.TransactionAmount{
				{Amount: 0.1, Type: entity.TransactionTypePurchase},
				{Amount: 0.2, Type: entity.TransactionTypePurchase},
			},
			wantPurchase: 0.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := foldBalance(tt.amounts)
			assert.Equal(t, tt.wantPurchase, b.purchase.InexactFloat64())
			assert.Equal(t, tt.wantPaid, b.paid.InexactFloat64())
			assert.Equal(t, tt.wantPurchase-tt.wantPaid, b.currentBalance().InexactFloat64())
		})
	}
}

func TestAnalyticsService_Dashboard_ScenarioRameshTraders(t *testing.T) {
	fx := createTestLedger(t, ledgerOptions{})
	ctx := context.Background()
	shop := fx.mustCreateShop(t, "U", "Ramesh Traders")
	fx.mustCreateTransaction(t, "U", shop.ID, 500, entity.TransactionTypePurchase)
	fx.mustCreateTransaction(t, "U", shop.ID, 200, entity.TransactionTypePayment)

	want := &entity.DashboardSummary{ShopCount: 1, TotalPurchase: 500, TotalPaid: 200, CurrentBalance: 300}

	first, err := fx.analytics.Dashboard(ctx, "U")
	require.NoError(t, err)
	assert.Equal(t, want, first)

	second, err := fx.analytics.Dashboard(ctx, "U")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Empty(t, fx.store.CommittedBatchSizes())

	_, err = fx.shops.DeleteShop(ctx, "U", shop.ID)
	require.NoError(t, err)

	shops, err := fx.shops.ListShops(ctx, "U")
	require.NoError(t, err)
	assert.Empty(t, shops)

	txns, err := fx.transactions.ListTransactions(ctx, "U", "")
	require.NoError(t, err)
	assert.Empty(t, txns)

	after, err := fx.analytics.Dashboard(ctx, "U")
	require.NoError(t, err)
	assert.Equal(t, &entity.DashboardSummary{}, after)
}

func TestAnalyticsService_Dashboard_LegacyAndInactive(t *testing.T) {
	fx := createTestLedger(t, ledgerOptions{})
	ctx := context.Background()
	shop := fx.mustCreateShop(t, "u1", "Ramesh Traders")
	fx.store.PutRawTransaction(&entity.Transaction{ID: "legacy-0", UserID: "u1", ShopID: shop.ID, Amount: 100, Type: "0", IsActive: true})
	fx.store.PutRawTransaction(&entity.Transaction{ID: "legacy-1", UserID: "u1", ShopID: shop.ID, Amount: 30, Type: "1", IsActive: true})
	fx.store.PutRawTransaction(&entity.Transaction{ID: "inactive", UserID: "u1", ShopID: shop.ID, Amount: 999, Type: entity.TransactionTypePurchase, IsActive: false})
	fx.store.PutRawTransaction(&entity.Transaction{ID: "foreign", UserID: "u2", ShopID: shop.ID, Amount: 999, Type: entity.TransactionTypePurchase, IsActive: true})

	summary, err := fx.analytics.Dashboard(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, &entity.DashboardSummary{ShopCount: 1, TotalPurchase: 100, TotalPaid: 30, CurrentBalance: 70}, summary)

	_, err = fx.analytics.Dashboard(ctx, "")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAnalyticsService_ShopBalance(t *testing.T) {
	fx := createTestLedger(t, ledgerOptions{})
	ctx := context.Background()
	shop := fx.mustCreateShop(t, "u1", "Ramesh Traders")
	other := fx.mustCreateShop(t, "u1", "Other")
	fx.mustCreateTransaction(t, "u1", shop.ID, 500, entity.TransactionTypePurchase)
	fx.mustCreateTransaction(t, "u1", shop.ID, 120, entity.TransactionTypePayment)
	fx.mustCreateTransaction(t, "u1", other.ID, 1000, entity.TransactionTypePurchase)
	fx.mustCreateProduct(t, "u1", shop.ID, "Rice", 40, 3)
	fx.mustCreateProduct(t, "u1", shop.ID, "Oil", 12.5, 2)
	fx.mustCreateProduct(t, "u1", other.ID, "Sugar", 99, 9)

	got, err := fx.analytics.ShopBalance(ctx, "u1", shop.ID)
	require.NoError(t, err)
	assert.Equal(t, &entity.ShopBalance{
		ShopID:         shop.ID,
		TotalPurchase:  500,
		TotalPaid:      120,
		CurrentBalance: 380,
		ProductTotal:   145,
	}, got)

	_, err = fx.analytics.ShopBalance(ctx, "u2", shop.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = fx.analytics.ShopBalance(ctx, "u1", "missing")
	assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
}
