package firestore

import (
	"context"
	"time"

	"kanakku/internal/domain/entity"
	"kanakku/internal/domain/repository"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// ShopRepository implements repository.ShopRepository.
type ShopRepository struct{ *Store }

// ProductRepository implements repository.ProductRepository.
type ProductRepository struct{ *Store }

// TransactionRepository implements repository.TransactionRepository.
type TransactionRepository struct{ *Store }

// ProfileRepository implements repository.ProfileRepository.
type ProfileRepository struct{ *Store }

var (
	_ repository.ShopRepository        = ShopRepository{}
	_ repository.ProductRepository     = ProductRepository{}
	_ repository.TransactionRepository = TransactionRepository{}
	_ repository.ProfileRepository     = ProfileRepository{}
)

// --- shops ---

func (r ShopRepository) CreateShop(ctx context.Context, shop *entity.Shop) error {
	id, err := r.create(ctx, entity.CollectionShops, shopData(shop))
	if err != nil {
		return err
	}
	shop.ID = id

	return nil
}

func (r ShopRepository) UpsertShop(ctx context.Context, shop *entity.Shop) error {
	return r.upsert(ctx, entity.CollectionShops, shop.ID, shopData(shop))
}

func (r ShopRepository) FindShopByID(ctx context.Context, id string) (*entity.Shop, error) {
	data, ok, err := r.getData(ctx, entity.CollectionShops, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.WithStack(repository.ErrShopNotFound)
	}

	return shopFromData(id, data), nil
}

func (r ShopRepository) FindActiveShopsByUser(ctx context.Context, userID string) ([]*entity.Shop, error) {
	shops := make([]*entity.Shop, 0)
	err := each(ctx, r.activeByUser(entity.CollectionShops, userID, ""), func(snap *fs.DocumentSnapshot) {
		shops = append(shops, shopFromData(snap.Ref.ID, snap.Data()))
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active shops")
	}
	sortByCreatedAt(shops, func(s *entity.Shop) time.Time { return s.CreatedAt })

	return shops, nil
}

func (r ShopRepository) CountActiveShopsByUser(ctx context.Context, userID string) (int64, error) {
	return count(ctx, r.activeByUser(entity.CollectionShops, userID, ""))
}

func (r ShopRepository) FindShopIDsByUser(ctx context.Context, userID string) ([]string, error) {
	return ids(ctx, r.collection(entity.CollectionShops).Where(fieldUserID, "==", userID))
}

func (r ShopRepository) UpdateShop(ctx context.Context, id string, patch *entity.ShopPatch) error {
	return r.update(ctx, entity.CollectionShops, id, shopUpdates(patch), repository.ErrShopNotFound)
}

// --- products ---

func (r ProductRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	id, err := r.create(ctx, entity.CollectionProducts, productData(product))
	if err != nil {
		return err
	}
	product.ID = id

	return nil
}

func (r ProductRepository) UpsertProduct(ctx context.Context, product *entity.Product) error {
	return r.upsert(ctx, entity.CollectionProducts, product.ID, productData(product))
}

func (r ProductRepository) FindProductByID(ctx context.Context, id string) (*entity.Product, error) {
	data, ok, err := r.getData(ctx, entity.CollectionProducts, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.WithStack(repository.ErrProductNotFound)
	}

	return productFromData(id, data), nil
}

func (r ProductRepository) FindActiveProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	products := make([]*entity.Product, 0)
	err := each(ctx, r.activeByUser(entity.CollectionProducts, filter.UserID, filter.ShopID), func(snap *fs.DocumentSnapshot) {
		products = append(products, productFromData(snap.Ref.ID, snap.Data()))
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active products")
	}
	sortByCreatedAt(products, func(p *entity.Product) time.Time { return p.CreatedAt })

	return products, nil
}

func (r ProductRepository) FindProductIDsByShop(ctx context.Context, userID, shopID string) ([]string, error) {
	return ids(ctx, r.collection(entity.CollectionProducts).
		Where(fieldShopID, "==", shopID).
		Where(fieldUserID, "==", userID))
}

func (r ProductRepository) FindProductIDsByUser(ctx context.Context, userID string) ([]string, error) {
	return ids(ctx, r.collection(entity.CollectionProducts).Where(fieldUserID, "==", userID))
}

func (r ProductRepository) UpdateProduct(ctx context.Context, id string, patch *entity.ProductPatch) error {
	return r.update(ctx, entity.CollectionProducts, id, productUpdates(patch), repository.ErrProductNotFound)
}

// --- transactions ---

func (r TransactionRepository) CreateTransaction(ctx context.Context, txn *entity.Transaction) error {
	id, err := r.create(ctx, entity.CollectionTransactions, transactionData(txn))
	if err != nil {
		return err
	}
	txn.ID = id

	return nil
}

func (r TransactionRepository) UpsertTransaction(ctx context.Context, txn *entity.Transaction) error {
	return r.upsert(ctx, entity.CollectionTransactions, txn.ID, transactionData(txn))
}

func (r TransactionRepository) FindTransactionByID(ctx context.Context, id string) (*entity.Transaction, error) {
	data, ok, err := r.getData(ctx, entity.CollectionTransactions, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.WithStack(repository.ErrTransactionNotFound)
	}

	return transactionFromData(id, data), nil
}

func (r TransactionRepository) FindActiveTransactions(ctx context.Context, filter entity.TransactionFilter) ([]*entity.Transaction, error) {
	txns := make([]*entity.Transaction, 0)
	err := each(ctx, r.activeByUser(entity.CollectionTransactions, filter.UserID, filter.ShopID), func(snap *fs.DocumentSnapshot) {
		txns = append(txns, transactionFromData(snap.Ref.ID, snap.Data()))
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active transactions")
	}
	sortByCreatedAt(txns, func(t *entity.Transaction) time.Time { return t.CreatedAt })

	return txns, nil
}

func (r TransactionRepository) FindActiveTransactionAmounts(ctx context.Context, filter entity.TransactionFilter) ([]entity.TransactionAmount, error) {
	amounts := make([]entity.TransactionAmount, 0)
	q := r.activeByUser(entity.CollectionTransactions, filter.UserID, filter.ShopID).
		Select(fieldAmount, fieldType)
	err := each(ctx, q, func(snap *fs.DocumentSnapshot) {
		amounts = append(amounts, amountFromData(snap.Data()))
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to read transaction amounts")
	}

	return amounts, nil
}

func (r TransactionRepository) FindTransactionIDsByShop(ctx context.Context, userID, shopID string) ([]string, error) {
	return ids(ctx, r.collection(entity.CollectionTransactions).
		Where(fieldShopID, "==", shopID).
		Where(fieldUserID, "==", userID))
}

func (r TransactionRepository) FindTransactionIDsByRelatedProduct(ctx context.Context, userID, productID string) ([]string, error) {
	return ids(ctx, r.collection(entity.CollectionTransactions).
		Where(fieldRelatedProductID, "==", productID).
		Where(fieldUserID, "==", userID))
}

func (r TransactionRepository) FindTransactionIDsByUser(ctx context.Context, userID string) ([]string, error) {
	return ids(ctx, r.collection(entity.CollectionTransactions).Where(fieldUserID, "==", userID))
}

// --- profiles ---

func (r ProfileRepository) FindProfileByUID(ctx context.Context, uid string) (*entity.Profile, error) {
	data, ok, err := r.getData(ctx, entity.CollectionUsers, uid)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.WithStack(repository.ErrProfileNotFound)
	}

	return profileFromData(uid, data), nil
}

// UpsertProfile merges the patch and stamps createdAt on the first write.
func (r ProfileRepository) UpsertProfile(ctx context.Context, uid string, patch *entity.ProfilePatch) error {
	ref := r.collection(entity.CollectionUsers).Doc(uid)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *fs.Transaction) error {
		data := profileData(patch)

		_, err := tx.Get(ref)
		switch {
		case isNotFound(err):
			data[fieldCreatedAt] = formatTime(patch.UpdatedAt)
		case err != nil:
			return err
		}

		return tx.Set(ref, data, fs.MergeAll)
	})
	if err != nil {
		return errors.Wrapf(err, "failed to upsert profile %s", uid)
	}

	return nil
}
