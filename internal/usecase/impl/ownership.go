package impl

import (
	"context"

	"kanakku/internal/domain/entity"
	domainerrors "kanakku/internal/domain/errors"
	"kanakku/internal/domain/repository"

	"github.com/pkg/errors"
)

// requireUser rejects requests without a verified identity.
func requireUser(userID string) error {
	if userID == "" {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return nil
}

// requireOwner rejects access to an entity owned by another user.
func requireOwner(ownerID, userID string) error {
	if ownerID != userID {
		return errors.WithStack(domainerrors.ErrForbidden)
	}

	return nil
}

// ownedShop loads a shop the caller is about to change or read.
func ownedShop(ctx context.Context, shops repository.ShopRepository, userID, shopID string) (*entity.Shop, error) {
	shop, err := shops.FindShopByID(ctx, shopID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, errors.WithStack(domainerrors.ErrShopNotFound)
		}

		return nil, errors.Wrap(err, "failed to find shop")
	}
	if err := requireOwner(shop.UserID, userID); err != nil {
		return nil, err
	}

	return shop, nil
}

// parentShop loads the shop a new product or transaction is attached to. A
// missing shop is denied the same way as a foreign one.
func parentShop(ctx context.Context, shops repository.ShopRepository, userID, shopID string) (*entity.Shop, error) {
	shop, err := shops.FindShopByID(ctx, shopID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, errors.WithStack(domainerrors.ErrShopAccessDenied)
		}

		return nil, errors.Wrap(err, "failed to find shop")
	}
	if shop.UserID != userID {
		return nil, errors.WithStack(domainerrors.ErrShopAccessDenied)
	}

	return shop, nil
}

func ownedProduct(ctx context.Context, products repository.ProductRepository, userID, productID string) (*entity.Product, error) {
	product, err := products.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.WithStack(domainerrors.ErrProductNotFound)
		}

		return nil, errors.Wrap(err, "failed to find product")
	}
	if err := requireOwner(product.UserID, userID); err != nil {
		return nil, err
	}

	return product, nil
}

func ownedTransaction(ctx context.Context, txns repository.TransactionRepository, userID, txnID string) (*entity.Transaction, error) {
	txn, err := txns.FindTransactionByID(ctx, txnID)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return nil, errors.WithStack(domainerrors.ErrTransactionNotFound)
		}

		return nil, errors.Wrap(err, "failed to find transaction")
	}
	if err := requireOwner(txn.UserID, userID); err != nil {
		return nil, err
	}

	return txn, nil
}
