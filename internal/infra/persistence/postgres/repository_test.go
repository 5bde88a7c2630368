package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"kanakku/internal/domain/entity"
	domainerrors "kanakku/internal/domain/errors"
	"kanakku/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var shopColumns = []string{"id", "user_id", "name", "owner_name", "contact_number", "address", "upi_id", "is_active", "created_at"}

func TestShopRepository_FindShopByID(t *testing.T) {
	t.Run("finds existing shop", func(t *testing.T) {
		db, mock, _ := newMockDB(t)
		repo := NewShopRepository(db)
		createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

		rows := sqlmock.NewRows(shopColumns).
			AddRow("s1", "u1", "Ramesh Traders", "Ramesh", "9845012345", "Market Road", "ramesh@upi", true, createdAt)
		mock.ExpectQuery(`SELECT \* FROM "shops" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("s1", 1).
			WillReturnRows(rows)

		shop, err := repo.FindShopByID(context.Background(), "s1")

		require.NoError(t, err)
		assert.Equal(t, &entity.Shop{
			ID:            "s1",
			UserID:        "u1",
			Name:          "Ramesh Traders",
			OwnerName:     "Ramesh",
			ContactNumber: "9845012345",
			Address:       "Market Road",
			UPIID:         "ramesh@upi",
			IsActive:      true,
			CreatedAt:     createdAt,
		}, shop)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps missing row to ErrShopNotFound", func(t *testing.T) {
		db, mock, _ := newMockDB(t)
		repo := NewShopRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "shops" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("missing", 1).
			WillReturnRows(sqlmock.NewRows(shopColumns))

		shop, err := repo.FindShopByID(context.Background(), "missing")

		assert.Nil(t, shop)
		assert.True(t, errors.Is(err, repository.ErrShopNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestShopRepository_CreateShop(t *testing.T) {
	db, mock, _ := newMockDB(t)
	repo := NewShopRepository(db)

	mock.ExpectExec(`INSERT INTO "shops"`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	shop := &entity.Shop{UserID: "u1", Name: "Ramesh Traders", IsActive: true}
	err := repo.CreateShop(context.Background(), shop)

	require.NoError(t, err)
	assert.NotEmpty(t, shop.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShopRepository_UpsertShop(t *testing.T) {
	t.Run("writes on conflict update", func(t *testing.T) {
		db, mock, _ := newMockDB(t)
		repo := NewShopRepository(db)

		mock.ExpectExec(`INSERT INTO "shops" .* ON CONFLICT \("id"\) DO UPDATE SET`).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.UpsertShop(context.Background(), &entity.Shop{ID: "s1", UserID: "u1", Name: "Ramesh Traders"})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not null violation becomes validation error", func(t *testing.T) {
		db, mock, _ := newMockDB(t)
		repo := NewShopRepository(db)

		mock.ExpectExec(`INSERT INTO "shops"`).
			WillReturnError(errors.New(`ERROR: null value in column "name" violates not-null constraint (SQLSTATE 23502)`))

		err := repo.UpsertShop(context.Background(), &entity.Shop{ID: "s1", UserID: "u1"})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("other failures become internal errors", func(t *testing.T) {
		db, mock, _ := newMockDB(t)
		repo := NewShopRepository(db)

		mock.ExpectExec(`INSERT INTO "shops"`).
			WillReturnError(errors.New("connection reset by peer"))

		err := repo.UpsertShop(context.Background(), &entity.Shop{ID: "s1", UserID: "u1", Name: "x"})

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, 500, appErr.HTTPCode())
		assert.Equal(t, "INTERNAL_ERROR", appErr.ErrorCode())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestShopRepository_CountActiveShopsByUser(t *testing.T) {
	db, mock, _ := newMockDB(t)
	repo := NewShopRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "shops" WHERE user_id = \$1 AND is_active = \$2`).
		WithArgs("u1", true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountActiveShopsByUser(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShopRepository_UpdateShop(t *testing.T) {
	t.Run("missing shop", func(t *testing.T) {
		db, mock, _ := newMockDB(t)
		repo := NewShopRepository(db)
		name := "New name"

		mock.ExpectExec(`UPDATE "shops" SET .* WHERE id = `).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateShop(context.Background(), "missing", &entity.ShopPatch{Name: &name})

		assert.True(t, errors.Is(err, repository.ErrShopNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty patch touches nothing", func(t *testing.T) {
		db, mock, _ := newMockDB(t)
		repo := NewShopRepository(db)

		err := repo.UpdateShop(context.Background(), "s1", &entity.ShopPatch{})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTransactionRepository_FindActiveTransactionAmounts(t *testing.T) {
	db, mock, _ := newMockDB(t)
	repo := NewTransactionRepository(db)

	rows := sqlmock.NewRows([]string{"amount", "type"}).
		AddRow(500.0, "purchase").
		AddRow(200.0, "payment").
		AddRow(40.0, "0")
	mock.ExpectQuery(`SELECT .*amount.*type.* FROM "transactions" WHERE .*user_id = \$1 AND is_active = \$2.*shop_id = \$3`).
		WithArgs("u1", true, "s1").
		WillReturnRows(rows)

	amounts, err := repo.FindActiveTransactionAmounts(context.Background(), entity.TransactionFilter{UserID: "u1", ShopID: "s1"})

	require.NoError(t, err)
	assert.Equal(t, []entity.TransactionAmount{
		{Amount: 500, Type: entity.TransactionTypePurchase},
		{Amount: 200, Type: entity.TransactionTypePayment},
		{Amount: 40, Type: "0"},
	}, amounts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_FindTransactionByID_NormalizesLegacyType(t *testing.T) {
	db, mock, _ := newMockDB(t)
	repo := NewTransactionRepository(db)
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "shop_id", "user_id", "amount", "type", "date", "note", "related_product_id", "is_active", "created_at"}).
		AddRow("t1", "s1", "u1", 75.5, "1", now, "cash", "", true, now)
	mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE id = \$1 ORDER BY .* LIMIT .*`).
		WithArgs("t1", 1).
		WillReturnRows(rows)

	txn, err := repo.FindTransactionByID(context.Background(), "t1")

	require.NoError(t, err)
	assert.Equal(t, entity.TransactionTypePayment, txn.Type)
	assert.Equal(t, 75.5, txn.Amount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_FindTransactionIDsByRelatedProduct(t *testing.T) {
	db, mock, _ := newMockDB(t)
	repo := NewTransactionRepository(db)

	mock.ExpectQuery(`SELECT "id" FROM "transactions" WHERE user_id = \$1 AND related_product_id = \$2`).
		WithArgs("u1", "p1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("t1").AddRow("t2"))

	ids, err := repo.FindTransactionIDsByRelatedProduct(context.Background(), "u1", "p1")

	require.NoError(t, err)
	assert.Equal(t, []string{"t1", "t2"}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_UpsertProfile(t *testing.T) {
	db, mock, _ := newMockDB(t)
	repo := NewProfileRepository(db)
	name := "Anand Stores"

	mock.ExpectExec(`INSERT INTO "users" .* ON CONFLICT \("uid"\) DO UPDATE SET "email"="excluded"."email","updated_at"="excluded"."updated_at","name"="excluded"."name"`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.UpsertProfile(context.Background(), "u1", &entity.ProfilePatch{
		Email:     "a@example.com",
		Name:      &name,
		UpdatedAt: time.Now().UTC(),
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_FindProfileByUID_NotFound(t *testing.T) {
	db, mock, _ := newMockDB(t)
	repo := NewProfileRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE uid = \$1`).
		WithArgs("u1", 1).
		WillReturnRows(sqlmock.NewRows([]string{"uid"}))

	_, err := repo.FindProfileByUID(context.Background(), "u1")

	assert.True(t, errors.Is(err, repository.ErrProfileNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}
