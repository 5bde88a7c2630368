// Package persistence selects the ledger store backend.
package persistence

import (
	"context"
	"log/slog"

	"kanakku/config"
	"kanakku/internal/domain/constants"
	"kanakku/internal/domain/lifecycle"
	"kanakku/internal/domain/repository"
	"kanakku/internal/errors"
	"kanakku/internal/infra/firebaseapp"
	"kanakku/internal/infra/persistence/firestore"
	"kanakku/internal/infra/persistence/memory"
	"kanakku/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// StoreParams holds dependencies for the ledger store, injected by Fx
type StoreParams struct {
	fx.In

	Lc       fx.Lifecycle
	Config   *config.Config
	Logger   *slog.Logger
	Firebase *firebaseapp.Lazy
}

// Repositories exposes the ledger repositories of the configured backend.
type Repositories struct {
	fx.Out

	Shops        repository.ShopRepository
	Products     repository.ProductRepository
	Transactions repository.TransactionRepository
	Profiles     repository.ProfileRepository
	BatchWriter  repository.BatchWriter
}

// NewRepositories opens the store named by store.driver.
func NewRepositories(params StoreParams) (Repositories, error) {
	driver := constants.StoreDriverFirestore
	if params.Config.Store != nil && params.Config.Store.Driver != "" {
		driver = params.Config.Store.Driver
	}

	logger := params.Logger.With(slog.String("store", driver))

	switch driver {
	case constants.StoreDriverFirestore:
		return newFirestoreRepositories(params, logger)
	case constants.StoreDriverPostgres:
		return newPostgresRepositories(params, logger)
	case constants.StoreDriverMemory:
		logger.Warn("Using in-memory ledger store, data is lost on restart")

		return memoryRepositories(memory.NewStore()), nil
	default:
		return Repositories{}, errors.Errorf("unknown store driver: %s", driver)
	}
}

func newFirestoreRepositories(params StoreParams, logger *slog.Logger) (Repositories, error) {
	app, err := params.Firebase.Get()
	if err != nil {
		return Repositories{}, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	client, err := app.Firestore(ctx)
	if err != nil {
		return Repositories{}, err
	}
	store := firestore.NewStore(client)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("Closing Firestore client")

			return store.Close()
		},
	})
	logger.Info("Ledger store ready")

	return Repositories{
		Shops:        firestore.ShopRepository{Store: store},
		Products:     firestore.ProductRepository{Store: store},
		Transactions: firestore.TransactionRepository{Store: store},
		Profiles:     firestore.ProfileRepository{Store: store},
		BatchWriter:  firestore.BatchWriter{Store: store},
	}, nil
}

func newPostgresRepositories(params StoreParams, logger *slog.Logger) (Repositories, error) {
	db, err := postgres.New(postgres.Params{
		Lifecycle: params.Lc,
		Config:    params.Config,
		Logger:    params.Logger,
	})
	if err != nil {
		return Repositories{}, err
	}
	logger.Info("Ledger store ready")

	return Repositories{
		Shops:        postgres.NewShopRepository(db),
		Products:     postgres.NewProductRepository(db),
		Transactions: postgres.NewTransactionRepository(db),
		Profiles:     postgres.NewProfileRepository(db),
		BatchWriter:  postgres.NewBatchWriter(db),
	}, nil
}

func memoryRepositories(store *memory.Store) Repositories {
	return Repositories{
		Shops:        store,
		Products:     store,
		Transactions: store,
		Profiles:     store,
		BatchWriter:  store,
	}
}

// Module provides the ledger repositories.
var Module = fx.Module("persistence",
	fx.Provide(NewRepositories),
)
