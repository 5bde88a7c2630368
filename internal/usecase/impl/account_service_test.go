package impl

import (
	"context"
	"testing"

	"kanakku/config"
	"kanakku/internal/domain/entity"
	domainerrors "kanakku/internal/domain/errors"
	"kanakku/internal/domain/repository"
	"kanakku/internal/infra/persistence/memory"
	mockService "kanakku/internal/mocks/service"
	"kanakku/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func seedAccount(t *testing.T, fx ledgerFixtures, userID string) (shop *entity.Shop, product *entity.Product) {
	t.Helper()

	shop = fx.mustCreateShop(t, userID, "Ramesh Traders")
	inactive := fx.mustCreateShop(t, userID, "Closed")
	_, err := fx.shops.DeleteShop(context.Background(), userID, inactive.ID)
	require.NoError(t, err)

	fx.mustCreateTransaction(t, userID, shop.ID, 500, entity.TransactionTypePurchase)
	fx.mustCreateTransaction(t, userID, shop.ID, 200, entity.TransactionTypePayment)
	product = fx.mustCreateProduct(t, userID, shop.ID, "Rice", 40, 2)

	return shop, product
}

func TestAccountService_ResetAccount_KeepsProductsByDefault(t *testing.T) {
	fx := createTestLedger(t, ledgerOptions{})
	ctx := context.Background()
	shop, product := seedAccount(t, fx, "u1")
	otherShop, _ := seedAccount(t, fx, "u2")

	name := "Anand"
	_, err := fx.profiles.UpdateProfile(ctx, &entity.Identity{UID: "u1", Email: "a@example.com"}, &usecase.UpdateProfileInput{Name: &name})
	require.NoError(t, err)

	result, err := fx.account.ResetAccount(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Shops)
	assert.Equal(t, 2, result.Transactions)
	assert.Equal(t, 0, result.Products)

	_, err = fx.store.FindShopByID(ctx, shop.ID)
	assert.True(t, errors.Is(err, repository.ErrShopNotFound))

	ids, err := fx.store.FindTransactionIDsByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, ids)

	stored, err := fx.store.FindProductByID(ctx, product.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsActive)

	profile, err := fx.profiles.GetProfile(ctx, &entity.Identity{UID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, "Anand", profile.Name)

	_, err = fx.store.FindShopByID(ctx, otherShop.ID)
	require.NoError(t, err)
	otherTxns, err := fx.store.FindTransactionIDsByUser(ctx, "u2")
	require.NoError(t, err)
	assert.Len(t, otherTxns, 2)
}

func TestAccountService_ResetAccount_IncludesProductsWhenConfigured(t *testing.T) {
	fx := createTestLedger(t, ledgerOptions{ledger: config.LedgerConfig{ResetIncludesProducts: true}})
	ctx := context.Background()
	_, product := seedAccount(t, fx, "u1")

	result, err := fx.account.ResetAccount(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Products)

	_, err = fx.store.FindProductByID(ctx, product.ID)
	assert.True(t, errors.Is(err, repository.ErrProductNotFound))
}

func TestAccountService_ResetAccount_Chunks(t *testing.T) {
	publisher := mockService.NewMockEventPublisher(t)
	fx := createTestLedger(t, ledgerOptions{
		storeOpts: []memory.Option{memory.WithMaxOperations(5)},
		publisher: publisher,
	})
	ctx := context.Background()
	for range 3 {
		shop := fx.mustCreateShop(t, "u1", "Shop")
		for range 3 {
			fx.mustCreateTransaction(t, "u1", shop.ID, 1, entity.TransactionTypePurchase)
		}
	}

	publisher.EXPECT().
		PublishLedgerEvent(mock.Anything, mock.MatchedBy(func(e *entity.LedgerEvent) bool {
			return e.Type == entity.LedgerEventAccountReset && e.UserID == "u1" && e.Affected == 12
		})).
		Return(nil)

	result, err := fx.account.ResetAccount(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, result.Batches)
	assert.Equal(t, []int{5, 5, 2}, fx.store.CommittedBatchSizes())
}

func TestAccountService_ResetAccount_EmptyAndUnauthorized(t *testing.T) {
	fx := createTestLedger(t, ledgerOptions{})
	ctx := context.Background()

	result, err := fx.account.ResetAccount(ctx, "nobody")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Total())
	assert.Equal(t, 0, result.Batches)

	_, err = fx.account.ResetAccount(ctx, "")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
