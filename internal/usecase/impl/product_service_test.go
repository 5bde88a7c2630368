package impl

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"kanakku/internal/domain/entity"
	domainerrors "kanakku/internal/domain/errors"
	"kanakku/internal/infra/persistence/memory"
	mockService "kanakku/internal/mocks/service"
	"kanakku/internal/usecase"
	"kanakku/internal/util"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func number(v float64) util.Number {
	return util.Number{Value: v, Present: true, Valid: true}
}

func TestProductService_CreateProduct_CoercesNumbers(t *testing.T) {
	fx := createTestLedger(t, ledgerOptions{})
	ctx := context.Background()
	shop := fx.mustCreateShop(t, "u1", "Ramesh Traders")

	tests := []struct {
		name         string
		price        util.Number
		quantity     util.Number
		wantPrice    float64
		wantQuantity int64
	}{
		{name: "valid", price: number(12.5), quantity: number(3), wantPrice: 12.5, wantQuantity: 3},
		{name: "missing", wantPrice: 0, wantQuantity: 0},
		{name: "negative", price: number(-4), quantity: number(-2), wantPrice: 0, wantQuantity: 0},
		{name: "invalid", price: util.Number{Present: true}, quantity: util.Number{Present: true}, wantPrice: 0, wantQuantity: 0},
		{name: "fractional quantity truncated", price: number(10), quantity: number(2.9), wantPrice: 10, wantQuantity: 2},
		{name: "quantity above int64 saturates", price: number(1), quantity: number(1e20), wantPrice: 1, wantQuantity: math.MaxInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := fx.products.CreateProduct(ctx, "u1", &usecase.CreateProductInput{
				ShopID:   shop.ID,
				Name:     "Rice",
				Price:    tt.price,
				Quantity: tt.quantity,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantPrice, out.Product.Price)
			assert.Equal(t, tt.wantQuantity, out.Product.Quantity)
			assert.True(t, out.Product.IsActive)
			assert.False(t, out.Product.PurchasedAt.IsZero())
		})
	}
}

func TestProductService_CreateProduct_Guard(t *testing.T) {
	fx := createTestLedger(t, ledgerOptions{})
	ctx := context.Background()
	shop := fx.mustCreateShop(t, "u1", "Ramesh Traders")

	tests := []struct {
		name    string
		userID  string
		input   *usecase.CreateProductInput
		wantErr error
	}{
		{name: "foreign shop", userID: "u2", input: &usecase.CreateProductInput{ShopID: shop.ID, Name: "Rice"}, wantErr: domainerrors.ErrShopAccessDenied},
		{name: "missing shop", userID: "u1", input: &usecase.CreateProductInput{ShopID: "nope", Name: "Rice"}, wantErr: domainerrors.ErrShopAccessDenied},
		{name: "missing name", userID: "u1", input: &usecase.CreateProductInput{ShopID: shop.ID}, wantErr: domainerrors.ErrValidationFailed},
		{name: "missing shop id", userID: "u1", input: &usecase.CreateProductInput{Name: "Rice"}, wantErr: domainerrors.ErrValidationFailed},
		{name: "bad date", userID: "u1", input: &usecase.CreateProductInput{ShopID: shop.ID, Name: "Rice", PurchasedAt: "last week"}, wantErr: domainerrors.ErrValidationFailed},
		{name: "no identity", userID: "", input: &usecase.CreateProductInput{ShopID: shop.ID, Name: "Rice"}, wantErr: domainerrors.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.products.CreateProduct(ctx, tt.userID, tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	products, err := fx.store.FindProductIDsByUser(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestProductService_CreateProduct_PurchasedAt(t *testing.T) {
	fx := createTestLedger(t, ledgerOptions{})
	shop := fx.mustCreateShop(t, "u1", "Ramesh Traders")

	out, err := fx.products.CreateProduct(context.Background(), "u1", &usecase.CreateProductInput{
		ShopID:      shop.ID,
		Name:        "Rice",
		PurchasedAt: "2024-03-01",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), out.Product.PurchasedAt)
}

func TestProductService_CreateProduct_ExplicitID(t *testing.T) {
	fx := createTestLedger(t, ledgerOptions{})
	ctx := context.Background()
	shop := fx.mustCreateShop(t, "u1", "Ramesh Traders")

	for _, name := range []string{"Rice", "Basmati Rice"} {
		out, err := fx.products.CreateProduct(ctx, "u1", &usecase.CreateProductInput{ID: "p-1", ShopID: shop.ID, Name: name})
		require.NoError(t, err)
		assert.True(t, out.Upserted)
	}

	products, err := fx.products.ListProducts(ctx, "u1", "")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Basmati Rice", products[0].Name)
}

func TestProductService_CreateProduct_WithImage(t *testing.T) {
	images := mockService.NewMockImageStorage(t)
	fx := createTestLedger(t, ledgerOptions{images: images})
	ctx := context.Background()
	shop := fx.mustCreateShop(t, "u1", "Ramesh Traders")

	images.EXPECT().
		Save(mock.Anything, "u1", "rice.png", mock.Anything).
		Return("products/u1/abc.png", nil).
		Once()

	out, err := fx.products.CreateProduct(ctx, "u1", &usecase.CreateProductInput{
		ShopID: shop.ID,
		Name:   "Rice",
		Image:  &usecase.ImageUpload{Filename: "rice.png", Reader: strings.NewReader("png")},
	})
	require.NoError(t, err)
	assert.Equal(t, "products/u1/abc.png", out.Product.ImagePath)

	images.EXPECT().
		Save(mock.Anything, "u1", "notes.txt", mock.Anything).
		Return("", errors.WithStack(domainerrors.ErrImageRejected.WithDetails("text/plain"))).
		Once()

	_, err = fx.products.CreateProduct(ctx, "u1", &usecase.CreateProductInput{
		ShopID: shop.ID,
		Name:   "Notes",
		Image:  &usecase.ImageUpload{Filename: "notes.txt", Reader: strings.NewReader("hello")},
	})
	assert.ErrorIs(t, err, domainerrors.ErrImageRejected)
}

func TestProductService_CreateProduct_ImageAfterOwnershipCheck(t *testing.T) {
	images := mockService.NewMockImageStorage(t)
	fx := createTestLedger(t, ledgerOptions{images: images})
	shop := fx.mustCreateShop(t, "u1", "Ramesh Traders")

	_, err := fx.products.CreateProduct(context.Background(), "u2", &usecase.CreateProductInput{
		ShopID: shop.ID,
		Name:   "Rice",
		Image:  &usecase.ImageUpload{Filename: "rice.png", Reader: strings.NewReader("png")},
	})
	assert.ErrorIs(t, err, domainerrors.ErrShopAccessDenied)
	images.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProductService_UpdateProduct(t *testing.T) {
	fx := createTestLedger(t, ledgerOptions{})
	ctx := context.Background()
	shop := fx.mustCreateShop(t, "u1", "Ramesh Traders")
	product := fx.mustCreateProduct(t, "u1", shop.ID, "Rice", 40, 2)

	updated, err := fx.products.UpdateProduct(ctx, "u1", product.ID, &usecase.UpdateProductInput{
		Price:    number(45),
		Quantity: util.Number{Present: true},
	})
	require.NoError(t, err)
	assert.Equal(t, 45.0, updated.Price)
	assert.Equal(t, int64(0), updated.Quantity)
	assert.Equal(t, "Rice", updated.Name)
	assert.Equal(t, shop.ID, updated.ShopID)

	_, err = fx.products.UpdateProduct(ctx, "u2", product.ID, &usecase.UpdateProductInput{Name: strPtr("Stolen")})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = fx.products.UpdateProduct(ctx, "u1", "missing", &usecase.UpdateProductInput{Name: strPtr("x")})
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)

	stored, err := fx.store.FindProductByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rice", stored.Name)
	assert.Equal(t, 45.0, stored.Price)
}

func TestProductService_DeleteProduct_DeactivatesRelatedTransactions(t *testing.T) {
	publisher := mockService.NewMockEventPublisher(t)
	fx := createTestLedger(t, ledgerOptions{publisher: publisher})
	ctx := context.Background()
	shop := fx.mustCreateShop(t, "u1", "Ramesh Traders")
	product := fx.mustCreateProduct(t, "u1", shop.ID, "Rice", 40, 2)
	other := fx.mustCreateProduct(t, "u1", shop.ID, "Dal", 90, 1)

	for _, related := range []string{product.ID, product.ID, other.ID} {
		input := &usecase.CreateTransactionInput{ShopID: shop.ID, Amount: number(10), Type: entity.TransactionTypePayment, RelatedProductID: related}
		_, err := fx.transactions.CreateTransaction(ctx, "u1", input)
		require.NoError(t, err)
	}

	publisher.EXPECT().
		PublishLedgerEvent(mock.Anything, mock.MatchedBy(func(e *entity.LedgerEvent) bool {
			return e.Type == entity.LedgerEventProductDeleted && e.EntityID == product.ID && e.Affected == 3
		})).
		Return(nil)

	result, err := fx.products.DeleteProduct(ctx, "u1", product.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Transactions)
	assert.Equal(t, []int{3}, fx.store.CommittedBatchSizes())

	products, err := fx.products.ListProducts(ctx, "u1", "")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, other.ID, products[0].ID)

	txns, err := fx.transactions.ListTransactions(ctx, "u1", "")
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, other.ID, txns[0].RelatedProductID)
}

func TestProductService_DeleteProduct_SingleBatchOverBoundFails(t *testing.T) {
	fx := createTestLedger(t, ledgerOptions{storeOpts: []memory.Option{memory.WithMaxOperations(3)}})
	ctx := context.Background()
	shop := fx.mustCreateShop(t, "u1", "Ramesh Traders")
	product := fx.mustCreateProduct(t, "u1", shop.ID, "Rice", 40, 2)
	for range 3 {
		input := &usecase.CreateTransactionInput{ShopID: shop.ID, Amount: number(10), Type: entity.TransactionTypePayment, RelatedProductID: product.ID}
		_, err := fx.transactions.CreateTransaction(ctx, "u1", input)
		require.NoError(t, err)
	}

	_, err := fx.products.DeleteProduct(ctx, "u1", product.ID)
	require.Error(t, err)
	var appErr domainerrors.AppError
	assert.False(t, errors.As(err, &appErr), "store failures surface as internal errors")

	stored, err := fx.store.FindProductByID(ctx, product.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsActive)
	assert.Empty(t, fx.store.CommittedBatchSizes())
}

func TestProductService_DeleteProduct_Foreign(t *testing.T) {
	fx := createTestLedger(t, ledgerOptions{})
	ctx := context.Background()
	shop := fx.mustCreateShop(t, "u1", "Ramesh Traders")
	product := fx.mustCreateProduct(t, "u1", shop.ID, "Rice", 40, 2)

	_, err := fx.products.DeleteProduct(ctx, "u2", product.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = fx.products.DeleteProduct(ctx, "u1", "missing")
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)

	stored, err := fx.store.FindProductByID(ctx, product.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsActive)
}
